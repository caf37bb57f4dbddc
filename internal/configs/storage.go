package config

import (
	"log"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"todo-hub.com/todo-hub/internal/storage"
)

func NewStorageClient(cfg Config) *storage.MinioStorage {
	client, err := minio.New(cfg.StorageEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.StorageAccessKey, cfg.StorageSecretKey, ""),
		Secure: cfg.StorageUseSSL,
	})
	if err != nil {
		log.Fatalf("failed to create storage client: %v", err)
	}

	return storage.NewMinioStorage(client, cfg.StorageBucket)
}
