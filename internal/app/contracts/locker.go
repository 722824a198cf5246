package contracts

import (
	"context"
	"time"
)

// LockerService hands out owner-tokened Redis locks. Booking serialises on a
// per doctor-date-time key and the availability warmer elects its leader with it.
type LockerService interface {
	// TryLock returns the owner token when the lock was taken and false when
	// somebody else holds key.
	TryLock(ctx context.Context, key string, expiration time.Duration) (acquired bool, token string, err error)
	Unlock(ctx context.Context, key, token string) error
	Refresh(ctx context.Context, key, token string, expiration time.Duration) error
}
