package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"adaptive_learning_backend/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ArtifactStore 读取训练产物（模型工件）。支持本地目录和 MinIO 两种后端。
type ArtifactStore interface {
	Fetch(ctx context.Context, name string) (io.ReadCloser, error)
}

// LocalArtifactStore 本地目录实现
type LocalArtifactStore struct {
	Dir string
}

func (s *LocalArtifactStore) Fetch(_ context.Context, name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.Dir, name))
}

// MinioArtifactStore 对象存储实现
type MinioArtifactStore struct {
	Client *minio.Client
	Bucket string
}

func (s *MinioArtifactStore) Fetch(ctx context.Context, name string) (io.ReadCloser, error) {
	obj, err := s.Client.GetObject(ctx, s.Bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	// GetObject 懒加载，Stat 一次让缺失对象尽早报错
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		return nil, err
	}
	return obj, nil
}

func NewArtifactStore(cfg *config.StorageConfig) (ArtifactStore, error) {
	switch cfg.Type {
	case "minio":
		client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
			Secure: cfg.MinioUseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("init minio artifact store: %w", err)
		}
		return &MinioArtifactStore{Client: client, Bucket: cfg.MinioBucket}, nil
	default:
		dir := cfg.LocalPath
		if dir == "" {
			dir = "models"
		}
		return &LocalArtifactStore{Dir: dir}, nil
	}
}
