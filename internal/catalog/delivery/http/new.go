package http

import (
	"github.com/gin-gonic/gin"

	"catalog-api/internal/catalog"
	"catalog-api/pkg/log"
)

// Handler is the public interface for the catalog HTTP delivery layer.
type Handler interface {
	Read(c *gin.Context)
	Create(c *gin.Context)
	Replace(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc catalog.UseCase
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the catalog domain.
func New(l log.Logger, uc catalog.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
