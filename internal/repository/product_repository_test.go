package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-importer/internal/domain"
	"catalog-importer/internal/repository"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool      { return &b }

func TestPostgresProductRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := repository.NewPostgresProductRepository(tdb.Pool)
	ctx := context.Background()

	t.Run("BulkUpsert inserts new rows", func(t *testing.T) {
		tdb.TruncateTables(t, "products")

		err := repo.BulkUpsert(ctx, []domain.ProductRow{
			{SKU: "A1", Name: "Widget", Price: f64Ptr(9.99)},
			{SKU: "B2", Name: "Gadget", Description: strPtr("desc"), Price: f64Ptr(1.50)},
		})
		require.NoError(t, err)

		products, total, err := repo.List(ctx, domain.ProductFilter{})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, products, 2)
	})

	t.Run("BulkUpsert updates on case-insensitive SKU conflict", func(t *testing.T) {
		tdb.TruncateTables(t, "products")

		require.NoError(t, repo.BulkUpsert(ctx, []domain.ProductRow{
			{SKU: "A1", Name: "Widget", Price: f64Ptr(9.99)},
		}))

		first, _, err := repo.List(ctx, domain.ProductFilter{SKU: "a1"})
		require.NoError(t, err)
		require.Len(t, first, 1)

		require.NoError(t, repo.BulkUpsert(ctx, []domain.ProductRow{
			{SKU: "a1", Name: "Widget v2", Description: strPtr("desc"), Price: f64Ptr(12.50)},
		}))

		after, total, err := repo.List(ctx, domain.ProductFilter{SKU: "A1"})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, after, 1)
		assert.Equal(t, "A1", after[0].SKU, "stored SKU keeps the original casing")
		assert.Equal(t, "Widget v2", after[0].Name)
		require.NotNil(t, after[0].Description)
		assert.Equal(t, "desc", *after[0].Description)
		require.NotNil(t, after[0].Price)
		assert.InDelta(t, 12.50, *after[0].Price, 0.001)
		assert.Equal(t, first[0].CreatedAt, after[0].CreatedAt, "created_at preserved on update")
		assert.True(t, after[0].UpdatedAt.After(first[0].UpdatedAt) || after[0].UpdatedAt.Equal(first[0].UpdatedAt))
	})

	t.Run("BulkUpsert resolves in-batch duplicates last-value-wins", func(t *testing.T) {
		tdb.TruncateTables(t, "products")

		err := repo.BulkUpsert(ctx, []domain.ProductRow{
			{SKU: "A1", Name: "Widget", Price: f64Ptr(9.99)},
			{SKU: "a1", Name: "Widget v2", Description: strPtr("desc"), Price: f64Ptr(12.50)},
		})
		require.NoError(t, err)

		products, total, err := repo.List(ctx, domain.ProductFilter{})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, products, 1)
		assert.Equal(t, "Widget v2", products[0].Name)
		require.NotNil(t, products[0].Price)
		assert.InDelta(t, 12.50, *products[0].Price, 0.001)
	})

	t.Run("BulkUpsert with empty batch is a no-op", func(t *testing.T) {
		require.NoError(t, repo.BulkUpsert(ctx, nil))
	})

	t.Run("Create rejects case-insensitive duplicate SKU", func(t *testing.T) {
		tdb.TruncateTables(t, "products")

		p := &domain.Product{SKU: "DUP-1", Name: "First", Active: true}
		require.NoError(t, repo.Create(ctx, p))
		assert.NotZero(t, p.ID)

		dup := &domain.Product{SKU: "dup-1", Name: "Second", Active: true}
		err := repo.Create(ctx, dup)
		assert.ErrorIs(t, err, repository.ErrConflict)
	})

	t.Run("GetByID and Update", func(t *testing.T) {
		tdb.TruncateTables(t, "products")

		p := &domain.Product{SKU: "U1", Name: "Before", Active: true}
		require.NoError(t, repo.Create(ctx, p))

		got, err := repo.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "Before", got.Name)

		got.Name = "After"
		got.Price = f64Ptr(3.25)
		got.Active = false
		require.NoError(t, repo.Update(ctx, got))

		updated, err := repo.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "After", updated.Name)
		assert.False(t, updated.Active)
		require.NotNil(t, updated.Price)
		assert.InDelta(t, 3.25, *updated.Price, 0.001)
	})

	t.Run("GetByID missing returns ErrNotFound", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 999999)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("List filters by active and paginates", func(t *testing.T) {
		tdb.TruncateTables(t, "products")

		for i := 0; i < 5; i++ {
			p := &domain.Product{SKU: string(rune('A'+i)) + "-sku", Name: "Item", Active: i%2 == 0}
			require.NoError(t, repo.Create(ctx, p))
		}

		active, total, err := repo.List(ctx, domain.ProductFilter{Active: boolPtr(true)})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, active, 3)

		page, total, err := repo.List(ctx, domain.ProductFilter{Page: 2, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		assert.Len(t, page, 2)
	})

	t.Run("Delete and DeleteAll", func(t *testing.T) {
		tdb.TruncateTables(t, "products")

		p := &domain.Product{SKU: "D1", Name: "Doomed", Active: true}
		require.NoError(t, repo.Create(ctx, p))

		require.NoError(t, repo.Delete(ctx, p.ID))
		assert.ErrorIs(t, repo.Delete(ctx, p.ID), repository.ErrNotFound)

		for i := 0; i < 3; i++ {
			require.NoError(t, repo.Create(ctx, &domain.Product{SKU: string(rune('X'+i)), Name: "Bulk", Active: true}))
		}
		deleted, err := repo.DeleteAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), deleted)
	})
}
