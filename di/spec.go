package di

// Args is the fully-resolved argument set passed to a Spec's Build function.
// Keys match the names declared in Spec.Uses.
type Args map[string]any

// Any returns the raw argument value for name, or nil if absent.
func (a Args) Any(name string) any { return a[name] }

// String returns the argument as a string, or "" if absent or not a string.
// The container only calls Build after every declared argument resolved, so
// a zero value here means the Spec declared the wrong type, not a missing
// dependency.
func (a Args) String(name string) string {
	s, _ := a[name].(string)
	return s
}

// Int returns the argument as an int, or 0 if absent or not an int.
func (a Args) Int(name string) int {
	i, _ := a[name].(int)
	return i
}

type argKind int

const (
	argValue argKind = iota
	argRef
	argConfig
)

// Arg declares how a single named argument of a Spec is obtained.
// Construct one with Value, Ref, or Config.
type Arg struct {
	kind  argKind
	key   string
	value any
}

// Value declares a literal argument passed to Build verbatim.
func Value(v any) Arg { return Arg{kind: argValue, value: v} }

// Ref declares an argument resolved from another registered key.
// References form the dependency graph; the graph must be acyclic.
func Ref(key string) Arg { return Arg{kind: argRef, key: key} }

// Config declares an argument read from a configuration leaf populated via
// [Container.Configure]. Resolving a Spec whose leaf was never configured
// fails with UnconfiguredError rather than passing nil into Build.
func Config(name string) Arg { return Arg{kind: argConfig, key: name} }

// Uses maps argument names to their declarations.
type Uses map[string]Arg

// Spec is a declarative recipe for one dependency: under what sharing
// policy it is constructed, which named arguments its constructor needs,
// and the constructor itself.
type Spec struct {
	Lifetime Lifetime
	Uses     Uses
	Build    func(Args) (any, error)
}
