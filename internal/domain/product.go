package domain

import "time"

// Product represents a catalog entry. SKU uniqueness is case-insensitive and
// enforced by the store through a functional index on lower(sku).
type Product struct {
	ID          int64     `json:"id"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductRow is one parsed data row from an import file, before it reaches the
// catalog store. Raw fields are retained for error reporting.
type ProductRow struct {
	SKU         string   `json:"sku"`
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

// ProductFilter holds the optional filters for listing products.
type ProductFilter struct {
	SKU      string
	Name     string
	Active   *bool
	Page     int
	PageSize int
}

// Event types emitted on catalog mutations.
const (
	EventProductCreated      = "product.created"
	EventProductUpdated      = "product.updated"
	EventProductDeleted      = "product.deleted"
	EventProductsBulkDeleted = "products.bulk_deleted"
	EventImportCompleted     = "import.completed"
)
