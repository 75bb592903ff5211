package ports

import (
	"context"

	"github.com/leaflink/storefront/internal/core/domain"
)

// ItemInput carries the catalog fields accepted on create and update.
type ItemInput struct {
	Name        string
	Description string
	Quantity    int
	Price       float64
	Image       string
}

// ItemService defines use-case operations over the product catalog.
type ItemService interface {
	Create(ctx context.Context, in ItemInput) (*domain.Item, error)
	Get(ctx context.Context, id string) (*domain.Item, error)
	List(ctx context.Context) ([]*domain.Item, error)
	Update(ctx context.Context, id string, in ItemInput) (*domain.Item, error)
	Delete(ctx context.Context, id string) error
}
