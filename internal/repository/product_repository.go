package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"catalog-importer/internal/domain"
)

const uniqueViolation = "23505"

// PostgresProductRepository implements ProductRepository using PostgreSQL.
type PostgresProductRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresProductRepository creates a new PostgresProductRepository.
func NewPostgresProductRepository(pool *pgxpool.Pool) *PostgresProductRepository {
	return &PostgresProductRepository{pool: pool}
}

// BulkUpsert writes one batch as a single multi-row INSERT ... ON CONFLICT
// statement in its own transaction. Rows that share a case-insensitive SKU
// within the batch are collapsed to the last occurrence first: a single
// statement may not touch the same conflict target twice, and last-value-wins
// is the required resolution anyway.
func (r *PostgresProductRepository) BulkUpsert(ctx context.Context, rows []domain.ProductRow) error {
	rows = dedupeBySKU(rows)
	if len(rows) == 0 {
		return nil
	}

	var values []string
	args := make([]interface{}, 0, len(rows)*4)
	argNum := 1
	for _, row := range rows {
		values = append(values, fmt.Sprintf("($%d, $%d, $%d, $%d)", argNum, argNum+1, argNum+2, argNum+3))
		args = append(args, row.SKU, row.Name, row.Description, row.Price)
		argNum += 4
	}

	query := fmt.Sprintf(`
		INSERT INTO products (sku, name, description, price, active, created_at, updated_at)
		SELECT sku, name, description, price::numeric, true, now(), now()
		FROM (VALUES %s) AS t(sku, name, description, price)
		ON CONFLICT ((lower(sku))) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			price = EXCLUDED.price,
			updated_at = now()
	`, strings.Join(values, ", "))

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("bulk upsert: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// dedupeBySKU keeps the last occurrence per case-insensitive SKU, preserving
// the position of the first occurrence so file order stays meaningful.
func dedupeBySKU(rows []domain.ProductRow) []domain.ProductRow {
	if len(rows) < 2 {
		return rows
	}

	index := make(map[string]int, len(rows))
	out := make([]domain.ProductRow, 0, len(rows))
	for _, row := range rows {
		key := strings.ToLower(row.SKU)
		if i, ok := index[key]; ok {
			out[i] = row
			continue
		}
		index[key] = len(out)
		out = append(out, row)
	}
	return out
}

// Create inserts a new product. Returns ErrConflict if the SKU already exists
// under case-insensitive comparison.
func (r *PostgresProductRepository) Create(ctx context.Context, p *domain.Product) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO products (sku, name, description, price, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
		RETURNING id, created_at, updated_at
	`, p.SKU, p.Name, p.Description, p.Price, p.Active).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrConflict
		}
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

// GetByID returns a product by primary key, or ErrNotFound.
func (r *PostgresProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	err := r.pool.QueryRow(ctx, `
		SELECT id, sku, name, description, price, active, created_at, updated_at
		FROM products
		WHERE id = $1
	`, id).Scan(&p.ID, &p.SKU, &p.Name, &p.Description, &p.Price, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List returns a page of products matching the filter plus the total count.
func (r *PostgresProductRepository) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, int, error) {
	var conds []string
	var args []interface{}
	argNum := 1

	if filter.SKU != "" {
		conds = append(conds, fmt.Sprintf("lower(sku) = lower($%d)", argNum))
		args = append(args, filter.SKU)
		argNum++
	}
	if filter.Name != "" {
		conds = append(conds, fmt.Sprintf("name ILIKE $%d", argNum))
		args = append(args, "%"+filter.Name+"%")
		argNum++
	}
	if filter.Active != nil {
		conds = append(conds, fmt.Sprintf("active = $%d", argNum))
		args = append(args, *filter.Active)
		argNum++
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT count(*) FROM products"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	query := fmt.Sprintf(
		"SELECT id, sku, name, description, price, active, created_at, updated_at FROM products%s ORDER BY id DESC LIMIT $%d OFFSET $%d",
		where, argNum, argNum+1,
	)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.Description, &p.Price, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("read products: %w", err)
	}

	return products, total, nil
}

// Update overwrites the mutable fields of a product and refreshes updated_at.
// Returns ErrConflict when the new SKU collides case-insensitively with
// another product.
func (r *PostgresProductRepository) Update(ctx context.Context, p *domain.Product) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE products
		SET sku = $2, name = $3, description = $4, price = $5, active = $6, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`, p.ID, p.SKU, p.Name, p.Description, p.Price, p.Active).Scan(&p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrConflict
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete removes a product by id, or returns ErrNotFound.
func (r *PostgresProductRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAll removes every product and returns the number deleted.
func (r *PostgresProductRepository) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM products")
	if err != nil {
		return 0, fmt.Errorf("delete all products: %w", err)
	}
	return tag.RowsAffected(), nil
}
