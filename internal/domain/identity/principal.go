package identity

import "github.com/google/uuid"

// Principal is the authenticated caller as extracted from the access token.
type Principal struct {
	Subject uuid.UUID
	Role    Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
