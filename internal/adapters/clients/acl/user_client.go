package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-service/internal/adapters/clients/acl/identity"
	"github.com/jsamuelsen11/project-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/project-service/internal/ports"
)

const lookupPath = "/api/v1/users/lookup"

// Compile-time interface check.
var _ ports.UserDirectory = (*UserClient)(nil)

// UserClient resolves user ids against the downstream identity service.
type UserClient struct {
	client *httpclient.Client
	req    *Requester
}

// NewUserClient creates a UserClient backed by the given HTTP client.
func NewUserClient(client *httpclient.Client, logger *slog.Logger) *UserClient {
	return &UserClient{client: client, req: NewRequester(client, logger)}
}

// GetUserInfo looks up ids in a single batched request. An empty input makes
// no network call.
func (c *UserClient) GetUserInfo(ctx context.Context, ids []uuid.UUID) ([]ports.UserInfo, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var dto identity.LookupResponseDTO
	if err := c.req.Do(ctx, http.MethodPost, lookupPath, http.StatusOK, identity.ToLookupRequest(ids), &dto); err != nil {
		return nil, fmt.Errorf("looking up %d users: %w", len(ids), err)
	}

	return identity.ToUserInfoList(dto), nil
}

// Name returns the identifier used when this component is registered with
// the health registry.
func (c *UserClient) Name() string {
	return c.client.Name()
}

// HealthCheck reports the identity service's availability from the circuit
// breaker state. No network call is made.
func (c *UserClient) HealthCheck(ctx context.Context) error {
	return c.client.HealthCheck(ctx)
}
