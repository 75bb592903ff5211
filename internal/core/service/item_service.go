package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/leaflink/storefront/internal/core/domain"
	"github.com/leaflink/storefront/internal/core/ports"
)

// ItemService implements catalog use cases.
type ItemService struct {
	repo ports.ItemRepository
	log  zerolog.Logger
}

func NewItemService(repo ports.ItemRepository, log zerolog.Logger) *ItemService {
	return &ItemService{repo: repo, log: log}
}

func (s *ItemService) Create(ctx context.Context, in ports.ItemInput) (*domain.Item, error) {
	item := &domain.Item{
		Name:        in.Name,
		Description: in.Description,
		Quantity:    in.Quantity,
		Price:       in.Price,
		Image:       in.Image,
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("item_id", created.ID).Str("name", created.Name).Msg("item created")
	return created, nil
}

func (s *ItemService) Get(ctx context.Context, id string) (*domain.Item, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ItemService) List(ctx context.Context) ([]*domain.Item, error) {
	return s.repo.FindAll(ctx)
}

// Update applies a partial update; zero values keep the stored field.
func (s *ItemService) Update(ctx context.Context, id string, in ports.ItemInput) (*domain.Item, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		item.Name = in.Name
	}
	if in.Description != "" {
		item.Description = in.Description
	}
	if in.Quantity != 0 {
		item.Quantity = in.Quantity
	}
	if in.Price != 0 {
		item.Price = in.Price
	}
	if in.Image != "" {
		item.Image = in.Image
	}

	return s.repo.Update(ctx, item)
}

func (s *ItemService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
