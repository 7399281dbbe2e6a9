// Package dikit is a tutorial module on Dependency Inversion and Dependency
// Injection in Go.
//
// The repository walks the same tiny application through a progression of
// wiring styles:
//
//   - examples/v1: tightly coupled — components construct their own
//     dependencies and read the environment directly. Shows the problem.
//   - examples/v2: constructor injection — dependencies are passed in as
//     parameters and assembled once in the composition root.
//   - examples/v3: container-managed — a declarative registry of providers
//     with Singleton/Transient lifetimes, configuration leaves, and scoped
//     overrides.
//   - user package tests: the payoff — swapping a stub client for the real
//     one without touching the service under test.
//
// The interesting code lives in the di package (the resolution container).
// Everything else — the API client, the user service, the mock — is kept
// deliberately small so the wiring stays visible.
//
// See subpackages:
//   - di: the resolution container
//   - config: key/value sources and typed configuration leaves
//   - contract: the capability interfaces services depend on
//   - httpapi: API client implementations and an in-repo test server
//   - user: the dependent service the examples exercise
//   - mock: stub client for test isolation
//   - examples/*: runnable mains for each step
package dikit
