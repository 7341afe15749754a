package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Role names the Identity variant on the wire.
type Role string

const (
	RoleBuyer Role = "buyer"
	RoleAdmin Role = "admin"
)

// Identity is the resolved actor of a session: either a Buyer or an Admin.
// The set of variants is closed; switch on the concrete type.
type Identity interface {
	Role() Role
	isIdentity()
}

// Buyer is an anonymous shopper identified by delivery details.
type Buyer struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

func (Buyer) Role() Role  { return RoleBuyer }
func (Buyer) isIdentity() {}

// Admin is an operator whose credentials were verified.
type Admin struct {
	Authenticated bool `json:"is_authenticated"`
}

func (Admin) Role() Role  { return RoleAdmin }
func (Admin) isIdentity() {}

// NewAdmin returns the only Admin value a session may hold.
func NewAdmin() Admin {
	return Admin{Authenticated: true}
}

type identityEnvelope struct {
	Role            Role   `json:"role"`
	Name            string `json:"name,omitempty"`
	Address         string `json:"address,omitempty"`
	IsAuthenticated bool   `json:"is_authenticated,omitempty"`
}

// EncodeIdentity serializes id for session storage.
func EncodeIdentity(id Identity) ([]byte, error) {
	var env identityEnvelope
	switch v := id.(type) {
	case Buyer:
		env = identityEnvelope{Role: RoleBuyer, Name: v.Name, Address: v.Address}
	case Admin:
		env = identityEnvelope{Role: RoleAdmin, IsAuthenticated: v.Authenticated}
	default:
		return nil, fmt.Errorf("unknown identity %T", id)
	}
	return json.Marshal(env)
}

// DecodeIdentity parses a stored identity. Anything that could not have been
// produced by a successful identification is rejected.
func DecodeIdentity(data []byte) (Identity, error) {
	var env identityEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode identity: %w", err)
	}

	switch env.Role {
	case RoleBuyer, "":
		// an empty role is the buyer-only shape written by older clients
		b := Buyer{Name: strings.TrimSpace(env.Name), Address: strings.TrimSpace(env.Address)}
		if b.Name == "" || b.Address == "" {
			return nil, fmt.Errorf("decode identity: buyer without name or address")
		}
		return b, nil
	case RoleAdmin:
		if !env.IsAuthenticated {
			return nil, fmt.Errorf("decode identity: unauthenticated admin")
		}
		return NewAdmin(), nil
	default:
		return nil, fmt.Errorf("decode identity: unknown role %q", env.Role)
	}
}
