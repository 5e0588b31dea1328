// Package composer provides the widget-composition core: a registry of named
// builder functions and a hierarchical, type-checked key/value context that
// parametrizes them.
//
// The Registry maps human-readable names to builder functions and invokes them
// on demand against a Context. The Context is a chain of nodes: a lookup checks
// the local node first and then walks the parent chain, while writes always land
// on the local node. Every stored value carries the runtime type captured at
// write time, and typed reads fail loudly on a mismatch instead of silently
// returning nothing.
//
// Committed writes notify subscribed observers synchronously. A batch started
// with BeginBatch defers notification so that a group of writes raises exactly
// one notification when EndBatch commits it.
//
// The package performs no locking. A Context is designed for a single logical
// writer per rendering turn; callers that share a node across goroutines must
// provide their own synchronization.
package composer
