// Package app wires the application together: it builds an isolated logger,
// registers the built-in widget modules into a fresh registry, loads the
// scene manifests, validates that every scene's root builder exists, and
// renders the requested scenes to the output writer.
package app
