package ports

import (
	"context"

	"github.com/google/uuid"
)

// UserInfo is the subset of an identity-service user the read models show.
type UserInfo struct {
	ID       uuid.UUID
	Username string
}

// UserDirectory resolves user ids to display data. It is implemented by the
// identity ACL client and is only used to assemble read models.
type UserDirectory interface {
	// GetUserInfo returns the users it knows among ids. Unknown ids are
	// omitted rather than reported as errors.
	GetUserInfo(ctx context.Context, ids []uuid.UUID) ([]UserInfo, error)
}
