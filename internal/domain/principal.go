package domain

import (
	"slices"

	"github.com/google/uuid"
)

// Principal is the authenticated caller of an operation. It is resolved by
// the inbound adapter from a bearer token and passed to use cases that need
// an author or a permission check.
type Principal struct {
	UserID      uuid.UUID
	Permissions []string
}

// HasPermission reports whether the principal was granted the given code.
func (p Principal) HasPermission(code string) bool {
	return slices.Contains(p.Permissions, code)
}
