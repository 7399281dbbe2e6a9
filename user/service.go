package user

import (
	"strconv"

	"github.com/sghaida/dikit/contract"
)

// Service looks up users through an injected contract.APIClient. Because
// the client arrives via the constructor, production wires a real client
// and tests wire a stub — the service itself never changes.
type Service struct {
	client contract.APIClient
}

// NewService constructs a Service around the given client.
func NewService(client contract.APIClient) *Service {
	return &Service{client: client}
}

// Client returns the injected API client, satisfying contract.Service.
func (s *Service) Client() contract.APIClient { return s.client }

// GetUser fetches a user by id. An empty backing record is an explicit
// not-found — ok is false and no error is involved. A present record
// missing the "active" field defaults to an active user.
func (s *Service) GetUser(id int) (*User, bool) {
	rec := s.client.Get("/users/" + strconv.Itoa(id))
	if rec.Empty() {
		return nil, false
	}

	uid, _ := rec.Int("id")
	name, _ := rec.String("name")
	email, _ := rec.String("email")

	return &User{
		ID:     uid,
		Name:   name,
		Email:  email,
		Active: rec.Bool("active", true),
	}, true
}

// IsActive reports whether the user exists and is active.
func (s *Service) IsActive(id int) bool {
	u, ok := s.GetUser(id)
	return ok && u.Active
}
