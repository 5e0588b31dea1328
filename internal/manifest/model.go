package manifest

import "github.com/vk/composergo/composer"

// Scene is the format-agnostic representation of a `scene` block.
type Scene struct {
	Name   string
	Root   string
	Values map[string]any
}

// NewContext builds a fresh context node seeded with the scene's values. Each
// call returns an independent node so one rendering pass cannot leak writes
// into the next.
func (s *Scene) NewContext() *composer.Context {
	return composer.NewContext(composer.WithValues(s.Values))
}

// Model is the unified representation of all loaded scene definitions,
// in file-then-declaration order.
type Model struct {
	Scenes []*Scene
}

// Scene returns the scene registered under name, if any.
func (m *Model) Scene(name string) (*Scene, bool) {
	for _, s := range m.Scenes {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}
