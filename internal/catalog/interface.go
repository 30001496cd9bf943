package catalog

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Item operations
	Read(ctx context.Context, input ReadItemInput) (ReadItemOutput, error)
	Create(ctx context.Context, input CreateItemInput) (CreateItemOutput, error)
	Replace(ctx context.Context, input ReplaceItemInput) (ReplaceItemOutput, error)
}
