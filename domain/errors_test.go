package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"
)

func TestUserError(t *testing.T) {
	req := require.New(t)

	cause := errors.New("execution reverted")
	err := NewUserError(ErrReadFailed, "Failed to load listings", cause)
	wrapped := xerrors.Errorf("list: %w", err)

	req.True(errors.Is(wrapped, ErrReadFailed))
	req.False(errors.Is(wrapped, ErrNotFound))
	req.Equal("Failed to load listings", UserMessage(wrapped))
	req.Equal("boom", UserMessage(errors.New("boom")))
	req.Equal("", UserMessage(nil))
}

func TestIsValidationError(t *testing.T) {
	req := require.New(t)
	req.True(IsValidationError(ErrMissingFields))
	req.True(IsValidationError(NewUserError(ErrInvalidAddress, "Contract address must start with 0x", nil)))
	req.False(IsValidationError(ErrTxFailed))
}
