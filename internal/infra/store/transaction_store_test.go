//go:build unit

package store_test

import (
	"context"
	"os"
	"testing"
	"time"

	"travel-booking/internal/infra/store"
	"travel-booking/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 5, 20, 10, 30, 0, 0, time.UTC)

	t.Run("purchases and refunds append in order", func(t *testing.T) {
		cfg := testStoreConfig(t)
		s := store.NewTransactionStore(cfg, clock.NewMockClock(now), testLogger)

		require.NoError(t, s.RecordPurchase(ctx, 500001, 42, 415))
		require.NoError(t, s.RecordRefund(ctx, 500001, 42, 290))

		all, err := s.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)

		assert.Equal(t, store.TransactionPurchase, all[0].Type)
		assert.Equal(t, int64(415), all[0].Amount)
		assert.Equal(t, int64(500001), all[0].ReservationID)
		assert.Equal(t, int64(42), all[0].CustomerID)

		assert.Equal(t, store.TransactionRefund, all[1].Type)
		assert.Equal(t, int64(290), all[1].Amount)
	})

	t.Run("records are plain comma-separated lines", func(t *testing.T) {
		cfg := testStoreConfig(t)
		s := store.NewTransactionStore(cfg, clock.NewMockClock(now), testLogger)

		require.NoError(t, s.RecordPurchase(ctx, 500001, 42, 415))

		raw, err := os.ReadFile(cfg.Path(cfg.TransactionsFile))
		require.NoError(t, err)
		assert.Equal(t, "2025-05-20,415,500001,42,Purchase\n", string(raw))
	})

	t.Run("malformed lines are skipped on read", func(t *testing.T) {
		cfg := testStoreConfig(t)
		s := store.NewTransactionStore(cfg, clock.NewMockClock(now), testLogger)

		require.NoError(t, s.RecordPurchase(ctx, 500001, 42, 415))
		path := cfg.Path(cfg.TransactionsFile)
		f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
		require.NoError(t, err)
		_, err = f.WriteString("not,a,valid,record\n")
		require.NoError(t, err)
		require.NoError(t, f.Close())
		require.NoError(t, s.RecordRefund(ctx, 500001, 42, 290))

		all, err := s.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("missing file reads as empty trail", func(t *testing.T) {
		s := store.NewTransactionStore(testStoreConfig(t), clock.NewMockClock(now), testLogger)
		all, err := s.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}
