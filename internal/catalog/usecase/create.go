package usecase

import (
	"context"

	"catalog-api/internal/catalog"
)

// Create echoes the decoded item. When tax is present and non-zero it
// also computes price_with_tax as the plain sum of price and tax.
func (uc *implUseCase) Create(ctx context.Context, input catalog.CreateItemInput) (catalog.CreateItemOutput, error) {
	out := catalog.CreateItemOutput{Item: input.Item}

	if tax := input.Item.Tax; tax != nil && *tax != 0 {
		total := input.Item.Price + *tax
		out.PriceWithTax = &total
	}

	return out, nil
}
