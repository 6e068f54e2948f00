package client

import (
	"context"

	"github.com/dmitrijs2005/netops/internal/client/models"
)

// AuthClient performs the three remote operations of the auth backend.
// Implementations never panic across the boundary; every failure is returned
// as an error wrapping ErrTransport or ErrParse.
type AuthClient interface {
	Register(ctx context.Context, fullName, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	FetchProfile(ctx context.Context, userID string) (*models.UserProfile, error)
}
