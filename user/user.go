// Package user holds the dependent service of the tutorial: business logic
// that transforms API records into domain values, with its client injected
// at construction time.
package user

// User is the domain model, separate from the raw API record it is built
// from.
type User struct {
	ID     int
	Name   string
	Email  string
	Active bool
}
