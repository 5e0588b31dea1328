package composer

import "context"

// key is an unexported type to prevent collisions with context keys from
// other packages.
type key struct{}

// ambientKey is the key for the ambient *Context in a context.Context.
var ambientKey = key{}

// WithAmbient returns a new context.Context that publishes c to descendant
// call positions, where Recall can resolve it without an explicit argument.
// Publishing never transfers ownership: the node's lifecycle stays with its
// creator.
func WithAmbient(ctx context.Context, c *Context) context.Context {
	return context.WithValue(ctx, ambientKey, c)
}

// FromAmbient extracts the nearest published context node, if any.
func FromAmbient(ctx context.Context) (*Context, bool) {
	c, ok := ctx.Value(ambientKey).(*Context)
	return c, ok
}
