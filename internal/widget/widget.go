// Package widget defines the renderable output type produced by builders and
// the lipgloss styles shared by the built-in widget modules.
package widget

import "github.com/vk/composergo/composer"

// Widget is the renderable unit a builder produces. The composition core
// treats it as an opaque value; only the rendering shell calls Render.
type Widget interface {
	Render() string
}

// Registry is the builder registry instantiated for terminal widgets.
type Registry = composer.Registry[Widget]

// Builder produces a terminal widget from a context.
type Builder = composer.Builder[Widget]

// NewRegistry creates an empty widget registry.
func NewRegistry() *Registry {
	return composer.NewRegistry[Widget]()
}

// Module is the interface that all built-in widget modules implement to be
// registered.
type Module interface {
	Register(r *Registry)
}

// Raw is the simplest Widget: a pre-rendered string.
type Raw string

// Render implements Widget.
func (r Raw) Render() string {
	return string(r)
}
