package storage

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rogerio-castellano/grillaway/internal/config"
	"github.com/rogerio-castellano/grillaway/internal/db"
	"github.com/rogerio-castellano/grillaway/internal/redissvc"
)

// Open builds the Store selected by cfg.Driver.
func Open(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	switch cfg.Driver {
	case "memory":
		return NewMemoryStore(), nil
	case "file":
		return NewFileStore(cfg.Path)
	case "sqlite":
		sqlDB, err := db.OpenSQLite(filepath.Join(cfg.Path, "grillaway.db"))
		if err != nil {
			return nil, err
		}
		store, err := NewSQLiteStore(ctx, sqlDB)
		if err != nil {
			sqlDB.Close()
			return nil, err
		}
		return store, nil
	case "postgres":
		sqlDB, err := db.Connect(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		store, err := NewPostgresStore(ctx, sqlDB)
		if err != nil {
			sqlDB.Close()
			return nil, err
		}
		return store, nil
	case "redis":
		svc, err := redissvc.Connect(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, err
		}
		return NewRedisStore(svc), nil
	case "s3":
		return NewS3Store(ctx, S3Config{
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			Endpoint:  cfg.S3Endpoint,
			PathStyle: cfg.S3PathStyle,
		})
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
