package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sghaida/dikit/contract"
)

// RemoteClient satisfies contract.APIClient over real HTTP. The configured
// timeout bounds the whole request; the API key travels in the X-API-Key
// header. Per the contract, absence — a transport failure, a non-200
// status, or an undecodable body — is an empty record, not an error.
type RemoteClient struct {
	baseURL string
	apiKey  string
	timeout int
	httpc   *http.Client
}

// NewRemoteClient constructs a RemoteClient for the API at baseURL.
func NewRemoteClient(baseURL, apiKey string, timeout int) *RemoteClient {
	return &RemoteClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		timeout: timeout,
		httpc:   &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}
}

// APIKey implements contract.APIClient.
func (c *RemoteClient) APIKey() string { return c.apiKey }

// Timeout implements contract.APIClient.
func (c *RemoteClient) Timeout() int { return c.timeout }

// Get implements contract.APIClient.
func (c *RemoteClient) Get(endpoint string) contract.Record {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return contract.Record{}
	}
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return contract.Record{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return contract.Record{}
	}

	var rec contract.Record
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return contract.Record{}
	}
	return rec
}
