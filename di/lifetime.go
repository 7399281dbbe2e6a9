package di

// Lifetime controls how many instances of a provider the container creates.
type Lifetime int

const (
	// Singleton is the default lifetime. The Build function runs at most
	// once; the resulting instance is cached and shared by every consumer.
	Singleton Lifetime = iota

	// Transient constructs a new instance on every resolution. Transient
	// construction may still read other keys' singleton caches.
	Transient
)

// String returns the human-readable name of the lifetime.
func (l Lifetime) String() string {
	switch l {
	case Singleton:
		return "singleton"
	case Transient:
		return "transient"
	default:
		return "unknown"
	}
}
