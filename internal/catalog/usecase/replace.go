package usecase

import (
	"context"

	"catalog-api/internal/catalog"
)

// Replace merges the integer item ID with the decoded item fields.
// Nothing is persisted; the record lives only for this request.
func (uc *implUseCase) Replace(ctx context.Context, input catalog.ReplaceItemInput) (catalog.ReplaceItemOutput, error) {
	return catalog.ReplaceItemOutput{
		ItemID: input.ItemID,
		Item:   input.Item,
	}, nil
}
