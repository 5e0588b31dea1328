package text

import (
	"context"
	"fmt"

	"github.com/vk/composergo/composer"
	"github.com/vk/composergo/internal/widget"
)

// Module implements the widget.Module interface for this package.
type Module struct{}

// Text renders a single run of body text.
type Text struct {
	Content string
	Bold    bool
}

// Render implements widget.Widget.
func (t *Text) Render() string {
	if t.Bold {
		return widget.BoldStyle.Render(t.Content)
	}
	return widget.TextStyle.Render(t.Content)
}

// Build is the builder for the 'text' widget. It reads the required 'content'
// key and the optional 'bold' key from the context.
func Build(ctx context.Context, c *composer.Context) (widget.Widget, error) {
	content, found, err := composer.Get[string](c, "content")
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("text: missing required context key %q", "content")
	}

	bold, err := composer.GetOr(c, "bold", false)
	if err != nil {
		return nil, err
	}

	return &Text{Content: content, Bold: bold}, nil
}

// Register registers the builder with the registry.
func (m *Module) Register(r *widget.Registry) {
	r.Define("text", Build)
}
