package usecase

import (
	"context"

	"catalog-api/internal/catalog"
)

// Read echoes the item ID and, when supplied and non-empty, the q
// query parameter. The ID is free text: no coercion, no store lookup.
func (uc *implUseCase) Read(ctx context.Context, input catalog.ReadItemInput) (catalog.ReadItemOutput, error) {
	out := catalog.ReadItemOutput{ItemID: input.ItemID}

	if input.Q != nil && *input.Q != "" {
		out.Q = input.Q
	}

	return out, nil
}
