package validator

import (
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"catalog-importer/internal/domain"
)

// RawRow is one unparsed data row keyed by header column name.
type RawRow map[string]string

// Validator parses and validates import file rows.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// rowInput carries the trimmed fields through ozzo validation.
type rowInput struct {
	SKU   string
	Name  string
	Price string
}

// ParseRow validates a raw row and converts it into a ProductRow. SKU and
// name are trimmed and required; price is an optional non-negative decimal
// (blank means null). A returned error means the row is rejected, never that
// the import should stop.
func (v *Validator) ParseRow(raw RawRow) (domain.ProductRow, error) {
	input := rowInput{
		SKU:   strings.TrimSpace(raw["sku"]),
		Name:  strings.TrimSpace(raw["name"]),
		Price: strings.TrimSpace(raw["price"]),
	}

	err := validation.ValidateStruct(&input,
		validation.Field(&input.SKU,
			validation.Required.Error("sku_required"),
		),
		validation.Field(&input.Name,
			validation.Required.Error("name_required"),
		),
		validation.Field(&input.Price,
			validation.By(priceRule),
		),
	)
	if err != nil {
		return domain.ProductRow{}, err
	}

	row := domain.ProductRow{
		SKU:  input.SKU,
		Name: input.Name,
	}

	if desc, ok := raw["description"]; ok {
		row.Description = &desc
	}

	if input.Price != "" {
		price, _ := strconv.ParseFloat(input.Price, 64)
		row.Price = &price
	}

	return row, nil
}

// priceRule accepts a blank price or a non-negative decimal.
func priceRule(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	price, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return validation.NewError("invalid_price", "price must be a decimal number")
	}
	if price < 0 {
		return validation.NewError("negative_price", "price must not be negative")
	}
	return nil
}
