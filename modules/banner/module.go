package banner

import (
	"context"
	"fmt"

	"github.com/vk/composergo/composer"
	"github.com/vk/composergo/internal/widget"
)

// Module implements the widget.Module interface for this package.
type Module struct{}

// Banner renders a framed heading.
type Banner struct {
	Title string
}

// Render implements widget.Widget.
func (b *Banner) Render() string {
	return widget.BannerStyle.Render(b.Title)
}

// Build is the builder for the 'banner' widget. It reads the required 'title'
// key from the context.
func Build(ctx context.Context, c *composer.Context) (widget.Widget, error) {
	title, found, err := composer.Get[string](c, "title")
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("banner: missing required context key %q", "title")
	}
	return &Banner{Title: title}, nil
}

// Register registers the builder with the registry.
func (m *Module) Register(r *widget.Registry) {
	r.Define("banner", Build)
}
