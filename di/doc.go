// Package di provides a small named-provider resolution container.
//
// A Container holds a registry of provider Specs keyed by name. Each Spec
// declares a lifetime, a Build function, and the named arguments the build
// needs — literal values, references to other registered keys, or
// configuration leaves populated via Configure. Resolve walks the reference
// graph depth-first and hands each Build a fully-resolved argument set.
//
// Lifetimes encode a sharing policy, not a timing policy:
//
//   - Singleton: one instance, shared by every consumer, created lazily on
//     first resolution and cached for the container's lifetime.
//   - Transient: the consumer gets an instance it does not share; a new one
//     is constructed on every resolution.
//
// Overrides exist so tests can replace any node of the graph without
// editing the registry permanently:
//
//	ov, err := c.Override("api_client", stub)
//	if err != nil { ... }
//	defer ov.Release()
//
// While active, every resolution of the key — direct or transitive — yields
// the replacement. Overrides form a stack and must be released in reverse
// acquisition order (LIFO); releasing out of order is a deterministic
// OverrideOrderError and leaves the container state untouched.
//
// The container is intended for single-threaded composition roots and
// single-test-at-a-time override scopes. A mutex still guards the
// check-then-create sequence on the singleton cache so accidental
// cross-goroutine use does not double-construct.
package di
