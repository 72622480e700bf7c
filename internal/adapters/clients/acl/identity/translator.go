package identity

import (
	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-service/internal/ports"
)

// ToLookupRequest converts user ids to the downstream lookup request.
func ToLookupRequest(ids []uuid.UUID) LookupRequestDTO {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return LookupRequestDTO{IDs: out}
}

// ToUserInfoList converts a downstream lookup response to port values.
// Entries whose id is not a UUID are dropped; the directory contract already
// allows unknown users to be omitted.
func ToUserInfoList(dto LookupResponseDTO) []ports.UserInfo {
	users := make([]ports.UserInfo, 0, len(dto.Users))
	for _, u := range dto.Users {
		id, err := uuid.Parse(u.ID)
		if err != nil {
			continue
		}
		users = append(users, ports.UserInfo{ID: id, Username: u.Username})
	}
	return users
}
