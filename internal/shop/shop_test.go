package shop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rogerio-castellano/grillaway/internal/storage"
	"github.com/stretchr/testify/require"
)

var errStoreDown = errors.New("store down")

// flakyStore wraps a MemoryStore and fails writes while down is set.
type flakyStore struct {
	*storage.MemoryStore
	down bool
}

func (s *flakyStore) Set(ctx context.Context, key string, value []byte) error {
	if s.down {
		return errStoreDown
	}
	return s.MemoryStore.Set(ctx, key, value)
}

type fixture struct {
	shop  *Shop
	store *flakyStore
	ctx   context.Context
}

func newFixture(t *testing.T, opts ...func(*Options)) *fixture {
	t.Helper()

	store := &flakyStore{MemoryStore: storage.NewMemoryStore()}
	seq := 0
	o := Options{
		Shipping: DefaultShippingPolicy(),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		OrderID: func() string {
			seq++
			return fmt.Sprintf("ORD-%05d", 10000+seq)
		},
		Now: func() time.Time { return time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC) },
	}
	for _, fn := range opts {
		fn(&o)
	}

	s, err := New(context.Background(), storage.NewAdapter(store, "grillaway_"), o)
	require.NoError(t, err)
	return &fixture{shop: s, store: store, ctx: context.Background()}
}

func (f *fixture) adapter() *storage.Adapter {
	return storage.NewAdapter(f.store, "grillaway_")
}
