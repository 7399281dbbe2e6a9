// Package httpapi holds the leaf service of the tutorial: API clients that
// satisfy contract.APIClient, and a small in-repo server they can be
// pointed at.
package httpapi

import (
	"strconv"
	"strings"

	"github.com/sghaida/dikit/contract"
)

// Client is the simulated API client. It is constructed from exactly two
// values, stores them verbatim, and performs no I/O and no validation —
// parsing and defaulting of the timeout happen at the configuration layer,
// never here.
type Client struct {
	apiKey  string
	timeout int
}

// NewClient constructs a Client from its configuration values.
func NewClient(apiKey string, timeout int) *Client {
	return &Client{apiKey: apiKey, timeout: timeout}
}

// APIKey implements contract.APIClient.
func (c *Client) APIKey() string { return c.apiKey }

// Timeout implements contract.APIClient.
func (c *Client) Timeout() int { return c.timeout }

// Get returns a simulated record for /users/{id} endpoints and an empty
// record for anything else. A real implementation would issue an HTTP
// request; see RemoteClient.
func (c *Client) Get(endpoint string) contract.Record {
	const prefix = "/users/"
	if !strings.HasPrefix(endpoint, prefix) {
		return contract.Record{}
	}

	id, err := strconv.Atoi(strings.TrimPrefix(endpoint, prefix))
	if err != nil {
		return contract.Record{}
	}

	return contract.Record{
		"id":     id,
		"name":   "User " + strconv.Itoa(id),
		"email":  "user" + strconv.Itoa(id) + "@example.com",
		"active": true,
	}
}
