package service

import (
	"context"
	"errors"
)

// ErrLockHeld is returned by Locker.Lock when another holder owns the key.
var ErrLockHeld = errors.New("lock already held")

// Unlock releases a lock obtained from Locker.
type Unlock func(ctx context.Context) error

// Locker provides short-lived exclusive locks keyed by string.
type Locker interface {
	// Lock acquires key without waiting. It returns ErrLockHeld if the key is taken.
	Lock(ctx context.Context, key string) (Unlock, error)
}
