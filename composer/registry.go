package composer

import (
	"context"
	"log/slog"
)

// Builder produces one unit of output from a context. The output type is
// opaque to the registry; builders are free to recall other registered
// builders with derived child contexts.
type Builder[W any] func(ctx context.Context, c *Context) (W, error)

// Registry holds named builders for a single application instance and invokes
// them on demand. Enumeration order is the order names were first defined.
type Registry[W any] struct {
	builders map[string]Builder[W]
	names    []string
}

// NewRegistry creates and initializes a new, empty Registry instance.
func NewRegistry[W any]() *Registry[W] {
	return &Registry[W]{
		builders: make(map[string]Builder[W]),
	}
}

// Define registers builder under name, overwriting any prior definition. A
// redefined name keeps its original enumeration position.
func (r *Registry[W]) Define(name string, builder Builder[W]) {
	if _, exists := r.builders[name]; !exists {
		r.names = append(r.names, name)
	}
	slog.Debug("Defining builder.", "name", name)
	r.builders[name] = builder
}

// Undefine removes the builder registered under name. Absent names are a
// no-op.
func (r *Registry[W]) Undefine(name string) {
	if _, exists := r.builders[name]; !exists {
		return
	}
	delete(r.builders, name)
	for i, n := range r.names {
		if n == name {
			r.names = append(r.names[:i], r.names[i+1:]...)
			break
		}
	}
}

// IsDefined reports whether a builder is registered under name.
func (r *Registry[W]) IsDefined(name string) bool {
	_, exists := r.builders[name]
	return exists
}

// Clear removes all definitions.
func (r *Registry[W]) Clear() {
	r.builders = make(map[string]Builder[W])
	r.names = nil
}

// DefinedNames returns the registered names in first-definition order. The
// slice is a copy; mutating it does not affect the registry.
func (r *Registry[W]) DefinedNames() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Recall invokes the builder registered under name. When c is nil the ambient
// context is resolved from ctx at this moment, so a Recall issued inside a
// deferred rendering callback sees the environment of that callback, not of
// the definition site. A nil c with no ambient context in scope returns
// ErrNoAmbientContext; an unknown name returns *UndefinedBuilderError.
func (r *Registry[W]) Recall(ctx context.Context, name string, c *Context) (W, error) {
	var zero W

	builder, exists := r.builders[name]
	if !exists {
		return zero, &UndefinedBuilderError{Name: name}
	}

	if c == nil {
		ambient, ok := FromAmbient(ctx)
		if !ok {
			return zero, ErrNoAmbientContext
		}
		c = ambient
	}

	return builder(ctx, c)
}
