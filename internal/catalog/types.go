package catalog

import "catalog-api/internal/model"

// --- UseCase Inputs ---

type ReadItemInput struct {
	ItemID string
	// Q carries the raw query parameter. nil means it was not supplied.
	Q *string
}

type CreateItemInput struct {
	Item model.Item
}

type ReplaceItemInput struct {
	ItemID int
	Item   model.Item
}

// --- UseCase Outputs ---

type ReadItemOutput struct {
	ItemID string
	// Q is nil when the query parameter was absent or empty, in which
	// case the response omits the field entirely.
	Q *string
}

type CreateItemOutput struct {
	Item model.Item
	// PriceWithTax is set only when Tax is present and non-zero.
	PriceWithTax *float64
}

type ReplaceItemOutput struct {
	ItemID int
	Item   model.Item
}
