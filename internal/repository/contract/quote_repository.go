package contract

import (
	"context"

	"islamic-quotes-be/internal/entity"
	"islamic-quotes-be/internal/repository/specification"
)

type QuoteRepository interface {
	// FindAll returns the quotes satisfying every specification, in catalog order.
	FindAll(ctx context.Context, specs ...specification.Specification) ([]entity.Quote, error)
	// FindById returns nil without error when no quote has the id.
	FindById(ctx context.Context, id int) (*entity.Quote, error)
	// FindCategories returns distinct categories in first-occurrence order.
	FindCategories(ctx context.Context) ([]string, error)
	Stats(ctx context.Context) (*entity.CatalogStats, error)
}
