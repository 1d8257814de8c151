package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrValidation       = errors.New("validation error")
	ErrInvalidID        = errors.New("invalid identifier")
	ErrNotFound         = errors.New("not found")
	ErrTimeout          = errors.New("store timeout")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// storeError classifies a driver failure into ErrTimeout or ErrStoreUnavailable,
// keeping the cause in the chain.
func storeError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || mongo.IsTimeout(err) {
		return fmt.Errorf("%s: %w: %w", op, ErrTimeout, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}
