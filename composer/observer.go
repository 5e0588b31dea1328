package composer

import "github.com/google/go-cmp/cmp"

// subscriber pairs an observer callback with an identity used for removal.
type subscriber struct {
	id uint64
	fn func()
}

// Subscribe registers fn to be invoked synchronously, in subscription order,
// every time a change is committed on this node: once per write outside a
// batch, once per EndBatch. The returned cancel function removes the
// subscription and is safe to call more than once.
func (c *Context) Subscribe(fn func()) (cancel func()) {
	c.nextSubID++
	id := c.nextSubID
	c.subs = append(c.subs, subscriber{id: id, fn: fn})

	return func() {
		for i, sub := range c.subs {
			if sub.id == id {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

// notify announces a committed change to every current observer. The list is
// copied first so that an observer unsubscribing mid-notification does not
// skip its neighbors.
func (c *Context) notify() {
	subs := make([]subscriber, len(c.subs))
	copy(subs, c.subs)
	for _, sub := range subs {
		sub.fn()
	}
}

// Watch subscribes a memoized selector to the node. It computes a baseline
// value immediately, then recomputes on every committed change and invokes
// onChange only when the newly computed value differs from the previous one.
// Changes to unrelated keys therefore never reach onChange. Equality is
// structural, via go-cmp. The returned cancel function detaches the watcher.
func Watch[T any](c *Context, compute func(*Context) T, onChange func(T)) (cancel func()) {
	last := compute(c)
	return c.Subscribe(func() {
		next := compute(c)
		if !cmp.Equal(last, next) {
			last = next
			onChange(next)
		}
	})
}
