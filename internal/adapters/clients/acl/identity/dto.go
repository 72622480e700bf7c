// Package identity implements the Anti-Corruption Layer translators for the
// downstream identity service's user resources.
package identity

// LookupRequestDTO matches the downstream UserLookupRequest schema.
type LookupRequestDTO struct {
	IDs []string `json:"ids"`
}

// UserDTO matches the downstream User schema. Only the fields the read
// models show are decoded.
type UserDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// LookupResponseDTO matches the downstream UserLookupResponse schema.
type LookupResponseDTO struct {
	Users []UserDTO `json:"users"`
}
