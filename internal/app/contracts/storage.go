package contracts

import (
	"context"
	"time"
)

// Storage keeps exported schedules in object storage and hands out
// time-limited download links for them.
type Storage interface {
	UploadJSON(ctx context.Context, bucketName, objectName string, body []byte) (string, error)
	GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error)
}
