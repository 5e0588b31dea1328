package card

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/vk/composergo/composer"
	"github.com/vk/composergo/internal/widget"
)

// Module implements the widget.Module interface for this package.
type Module struct{}

// Build returns the builder for the 'card' widget. A card reads 'title'
// (optional) and 'body' (required) from its context and composes its content
// by recalling the 'text' builder with a derived child context, so the body
// honors text's own contract.
func Build(r *widget.Registry) widget.Builder {
	return func(ctx context.Context, c *composer.Context) (widget.Widget, error) {
		body, found, err := composer.Get[string](c, "body")
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, fmt.Errorf("card: missing required context key %q", "body")
		}

		title, err := composer.GetOr(c, "title", "")
		if err != nil {
			return nil, err
		}

		child := composer.NewContext(
			composer.WithParent(c),
			composer.WithValues(map[string]any{"content": body}),
		)
		inner, err := r.Recall(ctx, "text", child)
		if err != nil {
			return nil, err
		}

		var parts []string
		if title != "" {
			parts = append(parts, widget.TitleStyle.Render(title))
		}
		parts = append(parts, inner.Render())

		content := lipgloss.JoinVertical(lipgloss.Left, parts...)
		return widget.Raw(widget.CardStyle.Render(content)), nil
	}
}

// Register registers the builder with the registry.
func (m *Module) Register(r *widget.Registry) {
	r.Define("card", Build(r))
}
