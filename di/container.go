package di

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/sghaida/dikit/config"
)

// Container holds a registry of provider Specs keyed by name and resolves
// any key into a fully constructed object graph. Create one with New,
// populate it with Register and Configure, then call Resolve.
//
// Registration and configuration are only accepted before the first
// resolution; afterwards the registry is frozen and only Override can
// change what a key yields.
type Container struct {
	mu sync.Mutex

	specs map[string]Spec
	conf  map[string]any

	// cache holds singleton instances, populated on first resolution.
	cache map[string]any

	// overrides holds the per-key replacement stacks; scopes is the global
	// acquisition order used to enforce LIFO release.
	overrides map[string][]*Override
	scopes    []*Override

	started bool
}

// New creates an empty container.
func New() *Container {
	return &Container{
		specs:     make(map[string]Spec),
		conf:      make(map[string]any),
		cache:     make(map[string]any),
		overrides: make(map[string][]*Override),
	}
}

// Register adds or replaces the Spec for key. It fails with StartedError
// once the container has begun resolving, and with NilBuildError if the
// Spec has no Build function.
func (c *Container) Register(key string, spec Spec) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return StartedError{Op: "register", Key: key}
	}
	if spec.Build == nil {
		return NilBuildError{Key: key}
	}

	c.specs[key] = spec
	return nil
}

// Configure populates named configuration leaves from src. Each leaf is
// resolved eagerly: a required leaf missing from the source, or a value
// that fails conversion, is reported here — before any resolution — rather
// than surfacing as a nil deep inside a constructor.
//
// Like Register, Configure is rejected with StartedError after the first
// resolution.
func (c *Container) Configure(src config.Source, leaves ...config.Leaf) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return StartedError{Op: "configure"}
	}

	for _, leaf := range leaves {
		v, ok, err := leaf.Resolve(src)
		if err != nil {
			return err
		}
		if ok {
			c.conf[leaf.Name] = v
		}
	}
	return nil
}

// Resolve returns the instance for key, constructing it and any referenced
// dependencies as needed. The first call freezes the registry.
//
// Singleton keys return the identical cached instance on every call after
// the first; Transient keys construct a new instance every call. An active
// override for key — or for anything key depends on — shadows the normal
// result regardless of lifetime.
func (c *Container) Resolve(key string) (any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.started = true
	return c.resolve(key, nil)
}

// resolve is the internal resolver. path holds the keys currently under
// construction, outermost first; c.mu must be held.
func (c *Container) resolve(key string, path []string) (any, error) {
	for _, seen := range path {
		if seen == key {
			cycle := append(append(make([]string, 0, len(path)+1), path...), key)
			return nil, CycleError{Path: cycle}
		}
	}

	if stack := c.overrides[key]; len(stack) > 0 {
		return stack[len(stack)-1].instance(append(path, key))
	}

	spec, ok := c.specs[key]
	if !ok {
		return nil, UnknownKeyError{Key: key}
	}

	if spec.Lifetime == Singleton {
		if inst, ok := c.cache[key]; ok {
			return inst, nil
		}
	}

	inst, err := c.construct(key, spec, append(path, key))
	if err != nil {
		return nil, err
	}

	if spec.Lifetime == Singleton {
		c.cache[key] = inst
	}
	return inst, nil
}

// construct resolves every declared argument of spec depth-first and then
// runs Build. path already includes key; c.mu must be held.
func (c *Container) construct(key string, spec Spec, path []string) (any, error) {
	args := make(Args, len(spec.Uses))
	for name, arg := range spec.Uses {
		switch arg.kind {
		case argValue:
			args[name] = arg.value
		case argRef:
			v, err := c.resolve(arg.key, path)
			if err != nil {
				return nil, err
			}
			args[name] = v
		case argConfig:
			v, ok := c.conf[arg.key]
			if !ok {
				return nil, UnconfiguredError{Name: arg.key}
			}
			args[name] = v
		}
	}

	inst, err := spec.Build(args)
	if err != nil {
		return nil, fmt.Errorf("di: building %q: %w", key, err)
	}
	return inst, nil
}

// Resolve is a generic helper that resolves key and type-asserts the
// result. It is the recommended way to retrieve values:
//
//	svc, err := di.Resolve[*user.Service](c, "service")
func Resolve[T any](c *Container, key string) (T, error) {
	var zero T

	v, err := c.Resolve(key)
	if err != nil {
		return zero, err
	}

	out, ok := v.(T)
	if !ok {
		want := reflect.TypeOf((*T)(nil)).Elem()
		return zero, fmt.Errorf("di: key %q resolved to %T, want %s", key, v, want)
	}
	return out, nil
}
