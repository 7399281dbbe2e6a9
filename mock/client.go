// Package mock provides shared stub implementations of the contract
// interfaces for use in tests. Each stub is constructed with literal field
// values and a configurable response — no mocking framework involved.
package mock

import "github.com/sghaida/dikit/contract"

// APIClient is a stub contract.APIClient. Get always returns Response and
// records the requested endpoint in Calls so tests can assert how the
// consumer used the client.
type APIClient struct {
	Key         string
	TimeoutSecs int

	// Response is returned from every Get call. Leave nil/empty to
	// simulate "not found".
	Response contract.Record

	// Calls records every endpoint passed to Get, in order.
	Calls []string
}

// APIKey implements contract.APIClient.
func (m *APIClient) APIKey() string { return m.Key }

// Timeout implements contract.APIClient.
func (m *APIClient) Timeout() int { return m.TimeoutSecs }

// Get implements contract.APIClient.
func (m *APIClient) Get(endpoint string) contract.Record {
	m.Calls = append(m.Calls, endpoint)
	return m.Response
}
