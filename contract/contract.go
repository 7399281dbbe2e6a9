// Package contract holds the capability interfaces the tutorial's services
// depend on, plus the Record payload they exchange.
//
// The original pattern is a structural one — "I need something with this
// shape" — which Go expresses as small interfaces declared on the consuming
// side. Concrete clients and test stubs satisfy them implicitly; there is
// no registration step.
package contract

// APIClient is the capability an API-backed consumer requires: readable
// configuration plus one fetch operation. Absence of a record is
// represented by an empty Record, never by an error — how the record is
// actually fetched (HTTP, simulated, stubbed) is the implementation's
// business.
type APIClient interface {
	APIKey() string
	Timeout() int
	Get(endpoint string) Record
}

// Service is the capability a service consumer requires: access to the
// API client the service was constructed with.
type Service interface {
	Client() APIClient
}
