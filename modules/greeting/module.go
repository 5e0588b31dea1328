package greeting

import (
	"context"

	"github.com/vk/composergo/composer"
	"github.com/vk/composergo/internal/widget"
)

// Module implements the widget.Module interface for this package.
type Module struct{}

// Greeting renders a salutation for a named audience.
type Greeting struct {
	Name string
}

// Render implements widget.Widget.
func (g *Greeting) Render() string {
	return widget.TextStyle.Render("Hello, " + g.Name + "!")
}

// Build is the builder for the 'greeting' widget. The 'name' key defaults to
// "World" when the context does not provide one.
func Build(ctx context.Context, c *composer.Context) (widget.Widget, error) {
	name, err := composer.GetOr(c, "name", "World")
	if err != nil {
		return nil, err
	}
	return &Greeting{Name: name}, nil
}

// Register registers the builder with the registry.
func (m *Module) Register(r *widget.Registry) {
	r.Define("greeting", Build)
}
