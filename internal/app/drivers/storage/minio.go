package storage

import (
	"context"
	"fmt"
	"telecare-service/internal/app/config"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// NewMinio builds the client and makes sure every bucket in buckets exists.
func NewMinio(driverConfig *config.DriverConfig, log *zap.Logger, buckets ...string) *minio.Client {
	endPoint := fmt.Sprintf("%s:%s", driverConfig.Minio.Host, driverConfig.Minio.Port)
	minioClient, err := minio.New(endPoint, &minio.Options{
		Creds:  credentials.NewStaticV4(driverConfig.Minio.Username, driverConfig.Minio.Password, ""),
		Secure: driverConfig.Minio.UseSSL,
	})
	if err != nil {
		log.Fatal("Failed to initialize Minio Client", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, bucket := range buckets {
		exists, err := minioClient.BucketExists(ctx, bucket)
		if err != nil {
			log.Fatal("Failed to check minio bucket", zap.String("bucket_name", bucket), zap.Error(err))
		}
		if exists {
			continue
		}
		err = minioClient.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
		if err != nil {
			log.Fatal("Failed to create minio bucket", zap.String("bucket_name", bucket), zap.Error(err))
		}
		log.Info("Created minio bucket", zap.String("bucket_name", bucket))
	}

	log.Info("Successfully connected to minio")
	return minioClient
}
