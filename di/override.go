package di

// Override is a scoped handle for a temporary provider replacement pushed
// by [Container.Override]. While it is active, every resolution of its key
// — direct or transitive — yields the replacement instead of the normal
// Spec's result, regardless of lifetime.
//
// Release restores the prior state exactly: a singleton instance cached
// before the override survives untouched. Handles must be released in
// reverse acquisition order; Release is an ordinary method so it can sit in
// a defer and run on every exit path.
type Override struct {
	c   *Container
	key string

	// Replacement: either a Spec constructed on demand, or a literal value
	// returned as-is.
	spec   Spec
	value  any
	isSpec bool

	// Singleton replacement specs cache on the handle, never on the
	// container, so releasing the override discards the instance.
	cached   any
	hasCache bool

	released bool
}

// Override pushes a temporary replacement for key's provider. replacement
// is either a [Spec] (constructed per its own lifetime, cached on the
// handle) or any other value (returned verbatim on every resolution).
//
// The key must be registered; overriding an unknown key fails with
// OverrideUnknownKeyError. Overriding the same key twice is allowed — the
// innermost replacement wins — but handles must unwind LIFO.
func (c *Container) Override(key string, replacement any) (*Override, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.specs[key]; !ok {
		return nil, OverrideUnknownKeyError{Key: key}
	}

	o := &Override{c: c, key: key}
	if spec, ok := replacement.(Spec); ok {
		if spec.Build == nil {
			return nil, NilBuildError{Key: key}
		}
		o.spec = spec
		o.isSpec = true
	} else {
		o.value = replacement
	}

	c.overrides[key] = append(c.overrides[key], o)
	c.scopes = append(c.scopes, o)
	return o, nil
}

// Release removes the override and restores the container's previous
// resolution behavior for the key. It fails with OverrideReleasedError on a
// second call and with OverrideOrderError when a more recently acquired
// override is still active; a failed release changes nothing.
func (o *Override) Release() error {
	c := o.c
	c.mu.Lock()
	defer c.mu.Unlock()

	if o.released {
		return OverrideReleasedError{Key: o.key}
	}
	if len(c.scopes) == 0 || c.scopes[len(c.scopes)-1] != o {
		return OverrideOrderError{Key: o.key}
	}

	c.scopes = c.scopes[:len(c.scopes)-1]

	stack := c.overrides[o.key]
	stack = stack[:len(stack)-1]
	if len(stack) == 0 {
		delete(c.overrides, o.key)
	} else {
		c.overrides[o.key] = stack
	}

	o.released = true
	return nil
}

// instance yields the replacement for one resolution. path already
// includes the overridden key; c.mu must be held.
func (o *Override) instance(path []string) (any, error) {
	if !o.isSpec {
		return o.value, nil
	}

	if o.spec.Lifetime == Singleton && o.hasCache {
		return o.cached, nil
	}

	inst, err := o.c.construct(o.key, o.spec, path)
	if err != nil {
		return nil, err
	}

	if o.spec.Lifetime == Singleton {
		o.cached = inst
		o.hasCache = true
	}
	return inst, nil
}
