package users

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByUserID(ctx context.Context, userID string) (*User, error)
	// UpdateProfile merges p into the stored user atomically and returns
	// the result.
	UpdateProfile(ctx context.Context, userID string, p ProfileUpdate) (*User, error)
}
