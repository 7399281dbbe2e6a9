package di

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrResolution is the category for failures while resolving a key:
	// unregistered keys and dependency cycles. Match with errors.Is.
	ErrResolution = errors.New("di: resolution error")

	// ErrConfiguration is the category for registration and configuration
	// failures: late registration, nil builders, unconfigured leaves.
	ErrConfiguration = errors.New("di: configuration error")

	// ErrOverrideMisuse is the category for override protocol violations:
	// out-of-LIFO release, double release, overriding unregistered keys.
	ErrOverrideMisuse = errors.New("di: override misuse")
)

// UnknownKeyError is returned when no provider is registered for the
// requested key.
type UnknownKeyError struct{ Key string }

// Error implements the error interface.
func (e UnknownKeyError) Error() string {
	// Example: di: no provider registered for key "service"
	return "di: no provider registered for key " + strconv.Quote(e.Key)
}

// Unwrap marks the error as a resolution failure.
func (e UnknownKeyError) Unwrap() error { return ErrResolution }

// CycleError is returned when the provider graph contains a cycle. Path
// holds the offending chain, starting and ending at the repeated key.
type CycleError struct{ Path []string }

// Error implements the error interface.
func (e CycleError) Error() string {
	// Example: di: dependency cycle: a -> b -> a
	return "di: dependency cycle: " + strings.Join(e.Path, " -> ")
}

// Unwrap marks the error as a resolution failure.
func (e CycleError) Unwrap() error { return ErrResolution }

// StartedError is returned when Register or Configure is called after the
// container has begun resolving. Mutating the registry at that point would
// leave the singleton cache inconsistent.
type StartedError struct {
	Op  string // "register" or "configure"
	Key string // registered key, empty for configure
}

// Error implements the error interface.
func (e StartedError) Error() string {
	// Example: di: register "service" after first resolution
	if e.Key == "" {
		return "di: " + e.Op + " after first resolution"
	}
	return "di: " + e.Op + " " + strconv.Quote(e.Key) + " after first resolution"
}

// Unwrap marks the error as a configuration failure.
func (e StartedError) Unwrap() error { return ErrConfiguration }

// NilBuildError is returned when a Spec without a Build function is
// registered or used as an override replacement.
type NilBuildError struct{ Key string }

// Error implements the error interface.
func (e NilBuildError) Error() string {
	// Example: di: spec for key "service" has no Build function
	return "di: spec for key " + strconv.Quote(e.Key) + " has no Build function"
}

// Unwrap marks the error as a configuration failure.
func (e NilBuildError) Unwrap() error { return ErrConfiguration }

// UnconfiguredError is returned when a Spec references a configuration leaf
// that was never populated via Configure.
type UnconfiguredError struct{ Name string }

// Error implements the error interface.
func (e UnconfiguredError) Error() string {
	// Example: di: configuration leaf "api_key" not populated
	return "di: configuration leaf " + strconv.Quote(e.Name) + " not populated"
}

// Unwrap marks the error as a configuration failure.
func (e UnconfiguredError) Unwrap() error { return ErrConfiguration }

// OverrideUnknownKeyError is returned when Override targets a key with no
// registered provider.
type OverrideUnknownKeyError struct{ Key string }

// Error implements the error interface.
func (e OverrideUnknownKeyError) Error() string {
	// Example: di: override of unregistered key "api_client"
	return "di: override of unregistered key " + strconv.Quote(e.Key)
}

// Unwrap marks the error as override misuse.
func (e OverrideUnknownKeyError) Unwrap() error { return ErrOverrideMisuse }

// OverrideOrderError is returned when an override is released while a more
// recently acquired override is still active. Scopes unwind strictly LIFO;
// the failed release leaves every override in place.
type OverrideOrderError struct{ Key string }

// Error implements the error interface.
func (e OverrideOrderError) Error() string {
	// Example: di: override for key "api_client" released out of order
	return "di: override for key " + strconv.Quote(e.Key) + " released out of order"
}

// Unwrap marks the error as override misuse.
func (e OverrideOrderError) Unwrap() error { return ErrOverrideMisuse }

// OverrideReleasedError is returned when Release is called twice on the
// same override handle.
type OverrideReleasedError struct{ Key string }

// Error implements the error interface.
func (e OverrideReleasedError) Error() string {
	// Example: di: override for key "api_client" already released
	return "di: override for key " + strconv.Quote(e.Key) + " already released"
}

// Unwrap marks the error as override misuse.
func (e OverrideReleasedError) Unwrap() error { return ErrOverrideMisuse }
