package services

import (
	"errors"
	"fmt"
)

// Messages shown in the Error phase.
const (
	MsgGeneric        = "An error occurred"
	MsgSignInRequired = "You need to sign in first"
	MsgUserIDMissing  = "User ID is empty"
)

var (
	// ErrPrecondition marks failures detected locally, before any network call.
	ErrPrecondition = errors.New("precondition failed")

	ErrSignInRequired = fmt.Errorf("%w: sign-in required", ErrPrecondition)
	ErrUserIDMissing  = fmt.Errorf("%w: user id missing", ErrPrecondition)
)

func preconditionMessage(err error) string {
	switch {
	case errors.Is(err, ErrSignInRequired):
		return MsgSignInRequired
	case errors.Is(err, ErrUserIDMissing):
		return MsgUserIDMissing
	}
	return MsgGeneric
}
