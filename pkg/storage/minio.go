// Package storage provides access to the MinIO bucket holding dataset objects.
package storage

import (
	"context"
	"io"

	"github.com/hardeep652/sihhackathon/internal/config"
	"github.com/hardeep652/sihhackathon/pkg/log"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioClient is the global MinIO client instance.
var MinioClient *minio.Client

// InitMinIO initializes the MinIO client and verifies the dataset bucket exists.
func InitMinIO(cfg config.MinIOConfig) {
	var err error

	MinioClient, err = minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		log.Fatal("failed to initialize MinIO client", err)
	}

	log.Info("MinIO client initialized successfully")

	ctx := context.Background()
	exists, err := MinioClient.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		log.Fatal("failed to check MinIO bucket", err)
	}
	if !exists {
		// The dataset bucket is provisioned out of band; a missing bucket
		// means the dataset object cannot exist either.
		log.Fatalf("MinIO bucket '%s' does not exist", cfg.BucketName)
	}
	log.Infof("MinIO bucket '%s' is available", cfg.BucketName)
}

// FetchObject opens the named object in the dataset bucket for reading.
// The caller owns the returned reader and must close it.
func FetchObject(ctx context.Context, bucketName, objectName string) (io.ReadCloser, error) {
	obj, err := MinioClient.GetObject(ctx, bucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		log.Errorf("failed to fetch object '%s' from bucket '%s': %v", objectName, bucketName, err)
		return nil, err
	}
	return obj, nil
}
