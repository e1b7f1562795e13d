package handlers_integrated_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/rogerio-castellano/grillaway/internal/config"
	api "github.com/rogerio-castellano/grillaway/internal/http"
	"github.com/rogerio-castellano/grillaway/internal/shop"
	"github.com/rogerio-castellano/grillaway/internal/storage"
	"github.com/rogerio-castellano/grillaway/pkg/logger"
)

// backend opens the same storage twice across a simulated restart.
type backend struct {
	name string
	cfg  config.StorageConfig
}

// backends lists the drivers to run against. Postgres and Redis join when
// DATABASE_URL / REDIS_ADDR point at a live server.
func backends(t *testing.T) []backend {
	t.Helper()

	dir := t.TempDir()
	list := []backend{
		{name: "file", cfg: config.StorageConfig{Driver: "file", Path: dir + "/file"}},
		{name: "sqlite", cfg: config.StorageConfig{Driver: "sqlite", Path: dir + "/sqlite"}},
	}
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		list = append(list, backend{name: "postgres", cfg: config.StorageConfig{Driver: "postgres", DSN: dsn}})
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		list = append(list, backend{name: "redis", cfg: config.StorageConfig{Driver: "redis", RedisAddr: addr}})
	}

	// shared servers keep data between runs, so every run gets fresh keys
	prefix := fmt.Sprintf("it_%d_", time.Now().UnixNano())
	for i := range list {
		list[i].cfg.Prefix = prefix
	}
	return list
}

// boot builds a router over a freshly opened store, the way main does.
func boot(t *testing.T, b backend) (http.Handler, *shop.Shop) {
	t.Helper()

	ctx := context.Background()
	store, err := storage.Open(ctx, b.cfg)
	if err != nil {
		t.Fatalf("could not open %s storage: %v", b.name, err)
	}
	t.Cleanup(func() { store.Close() })

	s, err := shop.New(ctx, storage.NewAdapter(store, b.cfg.Prefix), shop.Options{Logger: logger.Discard()})
	if err != nil {
		t.Fatalf("could not load shop over %s: %v", b.name, err)
	}
	return api.NewRouter(api.Deps{Shop: s, Logger: logger.Discard()}), s
}

func send(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
