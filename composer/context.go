package composer

import "reflect"

// entry is a single stored value together with the runtime type captured at
// the moment of assignment.
type entry struct {
	value any
	typ   reflect.Type
}

// Context is one node of a hierarchical key/value space. Keys are resolved
// against the local node first and then up the parent chain; writes always
// land on the local node. A Context does not own its parent.
type Context struct {
	entries  map[string]entry
	parent   *Context
	batching bool

	subs      []subscriber
	nextSubID uint64
}

// Option is a modifier applied during Context construction.
type Option func(*Context)

// WithParent returns an option that links the new node to a parent for
// lookup delegation.
func WithParent(parent *Context) Option {
	return func(c *Context) {
		c.parent = parent
	}
}

// WithValues returns an option that seeds the new node with initial entries.
// Each value's runtime type is captured at construction time.
func WithValues(values map[string]any) Option {
	return func(c *Context) {
		for key, val := range values {
			c.entries[key] = entry{value: val, typ: reflect.TypeOf(val)}
		}
	}
}

// NewContext creates a new context node with optional configuration.
func NewContext(opts ...Option) *Context {
	c := &Context{
		entries: make(map[string]entry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Parent returns the node this context delegates lookups to, or nil.
func (c *Context) Parent() *Context {
	return c.parent
}

// Read returns the unwrapped value for key from the nearest node that defines
// it, walking the parent chain. The second return reports whether any node
// had the key.
func (c *Context) Read(key string) (any, bool) {
	for node := c; node != nil; node = node.parent {
		if e, ok := node.entries[key]; ok {
			return e.value, true
		}
	}
	return nil, false
}

// Write sets or overwrites the entry for key on this node only; it never
// touches an ancestor. Outside a batch the committed change is announced to
// observers immediately, inside a batch the announcement is deferred until
// EndBatch.
func (c *Context) Write(key string, value any) {
	c.entries[key] = entry{value: value, typ: reflect.TypeOf(value)}
	if !c.batching {
		c.notify()
	}
}

// Get resolves key the same way Read does, then checks the found entry's
// declared type against T. A missing key yields (zero, false, nil). A stored
// nil is the absence sentinel: it yields the zero value without a fault. Any
// other value whose declared type is not assignable to T yields a
// *TypeMismatchError, whether the entry lives on the node itself or on an
// ancestor. The nearest definition always wins; lookup never continues past
// a node that defines the key.
func Get[T any](c *Context, key string) (T, bool, error) {
	var zero T
	for node := c; node != nil; node = node.parent {
		e, ok := node.entries[key]
		if !ok {
			continue
		}
		if e.value == nil {
			return zero, true, nil
		}
		val, ok := e.value.(T)
		if !ok {
			return zero, false, &TypeMismatchError{
				Key:      key,
				Expected: reflect.TypeOf((*T)(nil)).Elem(),
				Actual:   e.typ,
			}
		}
		return val, true, nil
	}
	return zero, false, nil
}

// GetOr resolves key like Get but substitutes fallback when the key is absent.
// Type mismatches still surface as errors.
func GetOr[T any](c *Context, key string, fallback T) (T, error) {
	val, found, err := Get[T](c, key)
	if err != nil {
		return fallback, err
	}
	if !found {
		return fallback, nil
	}
	return val, nil
}

// BeginBatch puts the node into batching mode, deferring change notification
// until EndBatch. Calling it while already batching keeps batching active;
// there is no nesting counter.
func (c *Context) BeginBatch() {
	c.batching = true
}

// EndBatch leaves batching mode and announces exactly one committed change,
// regardless of how many writes the batch held, including none. Ending a
// batch that was never begun is a *TransactionError.
func (c *Context) EndBatch() error {
	if !c.batching {
		return &TransactionError{Message: "EndBatch called without a matching BeginBatch"}
	}
	c.batching = false
	c.notify()
	return nil
}

// IsEmpty reports whether this node holds zero local entries. Ancestors are
// not counted.
func (c *Context) IsEmpty() bool {
	return len(c.entries) == 0
}
