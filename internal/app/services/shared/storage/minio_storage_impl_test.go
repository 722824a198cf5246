package storage

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinioStorage_GetObjectUrlWithExpiryTime(t *testing.T) {
	client, err := minio.New("localhost:9000", &minio.Options{
		Creds:  credentials.NewStaticV4("access", "secret", ""),
		Region: "us-east-1",
	})
	require.NoError(t, err)

	store := NewMinioStorage(client)
	url, err := store.GetObjectUrlWithExpiryTime(context.Background(), "schedule-exports", "schedule_dr123456_20250101_090000.json", time.Hour)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "http://localhost:9000/schedule-exports/schedule_dr123456_20250101_090000.json?"))
	assert.Contains(t, url, "X-Amz-Expires=3600")
}
