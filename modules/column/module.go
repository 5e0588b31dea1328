package column

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/vk/composergo/composer"
	"github.com/vk/composergo/internal/widget"
)

// Module implements the widget.Module interface for this package.
type Module struct{}

// Build returns the builder for the 'column' widget. It reads the required
// 'items' key, a list of registered widget names, recalls each one against
// the same context and stacks the results vertically.
func Build(r *widget.Registry) widget.Builder {
	return func(ctx context.Context, c *composer.Context) (widget.Widget, error) {
		items, found, err := composer.Get[[]string](c, "items")
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, fmt.Errorf("column: missing required context key %q", "items")
		}

		rendered := make([]string, 0, len(items))
		for _, name := range items {
			w, err := r.Recall(ctx, name, c)
			if err != nil {
				return nil, fmt.Errorf("column item %q: %w", name, err)
			}
			rendered = append(rendered, w.Render())
		}

		return widget.Raw(lipgloss.JoinVertical(lipgloss.Left, rendered...)), nil
	}
}

// Register registers the builder with the registry.
func (m *Module) Register(r *widget.Registry) {
	r.Define("column", Build(r))
}
