//go:build unit

package store_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/store"
	"travel-booking/internal/pkg/config"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func testStoreConfig(t *testing.T) config.StoreConfig {
	t.Helper()
	return config.NewTestConfig(t.TempDir()).Store
}

func draft(start, end time.Time) store.PackageDraft {
	return store.PackageDraft{
		Kind:      catalog.KindCustom,
		HotelID:   100001,
		FlightID:  100002,
		TaxiID:    100003,
		StartDate: start,
		EndDate:   end,
		TotalCost: 415,
	}
}

func TestPackageStore(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)

	t.Run("first package on an empty store gets id 400001", func(t *testing.T) {
		s := store.NewPackageStore(testStoreConfig(t), testLogger)

		pkg, err := s.Create(ctx, draft(start, end))
		require.NoError(t, err)
		assert.Equal(t, int64(400001), pkg.ID())
	})

	t.Run("ids are strictly increasing and unique", func(t *testing.T) {
		s := store.NewPackageStore(testStoreConfig(t), testLogger)

		var prev int64
		for range 5 {
			pkg, err := s.Create(ctx, draft(start, end))
			require.NoError(t, err)
			assert.Greater(t, pkg.ID(), prev)
			prev = pkg.ID()
		}
	})

	t.Run("reload reproduces the id to package mapping", func(t *testing.T) {
		cfg := testStoreConfig(t)
		s := store.NewPackageStore(cfg, testLogger)

		for range 3 {
			_, err := s.Create(ctx, draft(start, end))
			require.NoError(t, err)
		}
		before, err := s.FindAll(ctx)
		require.NoError(t, err)

		// A fresh store over the same file sees the same catalog and
		// continues the sequence at max+1.
		reloaded := store.NewPackageStore(cfg, testLogger)
		after, err := reloaded.FindAll(ctx)
		require.NoError(t, err)

		toMap := func(pkgs []*catalog.Package) map[int64]string {
			m := make(map[int64]string, len(pkgs))
			for _, p := range pkgs {
				m[p.ID()] = p.Kind().String() + "/" + p.StartDate().Format("2006-01-02")
			}
			return m
		}
		if diff := cmp.Diff(toMap(before), toMap(after)); diff != "" {
			t.Errorf("catalog mismatch after reload (-before +after):\n%s", diff)
		}

		next, err := reloaded.Create(ctx, draft(start, end))
		require.NoError(t, err)
		assert.Equal(t, int64(400004), next.ID())
	})

	t.Run("missing file reads as empty store", func(t *testing.T) {
		s := store.NewPackageStore(testStoreConfig(t), testLogger)
		all, err := s.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("malformed lines are skipped, remaining records load", func(t *testing.T) {
		cfg := testStoreConfig(t)
		path := cfg.Path(cfg.PackagesFile)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		content := "400001,custom,100001,100002,100003,415,2025-06-01,2025-06-03\n" +
			"garbage line\n" +
			"400002,offered,100001,100002,100003,not-a-number,2025-06-01,2025-06-03\n" +
			"400003,offered,100001,100002,100003,500,2025-07-01,2025-07-04\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		s := store.NewPackageStore(cfg, testLogger)
		all, err := s.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, int64(400001), all[0].ID())
		assert.Equal(t, int64(400003), all[1].ID())

		// Sequence recovers past the highest surviving id.
		pkg, err := s.Create(ctx, draft(start, end))
		require.NoError(t, err)
		assert.Equal(t, int64(400004), pkg.ID())
	})

	t.Run("update and delete rewrite the catalog", func(t *testing.T) {
		s := store.NewPackageStore(testStoreConfig(t), testLogger)

		pkg, err := s.Create(ctx, draft(start, end))
		require.NoError(t, err)

		require.NoError(t, pkg.Replace(200001, 200002, 200003, start, end, 999))
		require.NoError(t, s.Update(ctx, pkg))

		got, err := s.FindByID(ctx, pkg.ID())
		require.NoError(t, err)
		assert.Equal(t, int64(999), got.TotalCost())

		require.NoError(t, s.Delete(ctx, pkg.ID()))
		_, err = s.FindByID(ctx, pkg.ID())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("discount overrides live in memory only", func(t *testing.T) {
		cfg := testStoreConfig(t)
		s := store.NewPackageStore(cfg, testLogger)

		pkg, err := s.Create(ctx, draft(start, end))
		require.NoError(t, err)

		discounted, err := s.ApplyDiscount(ctx, pkg.ID(), 15)
		require.NoError(t, err)
		assert.Equal(t, int64(352), discounted.DiscountedPrice())

		// Visible on later reads from the same store.
		got, err := s.FindByID(ctx, pkg.ID())
		require.NoError(t, err)
		assert.Equal(t, int64(352), got.DiscountedPrice())

		// Gone after a restart; the file has no discount column.
		restarted := store.NewPackageStore(cfg, testLogger)
		fresh, err := restarted.FindByID(ctx, pkg.ID())
		require.NoError(t, err)
		assert.Equal(t, int64(415), fresh.DiscountedPrice())

		// An edit resets it too.
		require.NoError(t, got.Replace(got.HotelID(), got.FlightID(), got.TaxiID(), start, end, 415))
		require.NoError(t, s.Update(ctx, got))
		edited, err := s.FindByID(ctx, pkg.ID())
		require.NoError(t, err)
		assert.Equal(t, int64(415), edited.DiscountedPrice())
	})

	t.Run("deleting an unknown package is a typed failure", func(t *testing.T) {
		s := store.NewPackageStore(testStoreConfig(t), testLogger)
		err := s.Delete(ctx, 400999)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
