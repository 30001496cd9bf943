package usecase

import (
	"catalog-api/internal/catalog"
	"catalog-api/pkg/log"
)

// implUseCase is the private implementation of catalog.UseCase.
type implUseCase struct {
	l log.Logger
}

var _ catalog.UseCase = (*implUseCase)(nil)

// New creates a new catalog UseCase implementation.
func New(l log.Logger) *implUseCase {
	return &implUseCase{
		l: l,
	}
}
