package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/leaflink/storefront/internal/core/domain"
	"github.com/leaflink/storefront/internal/core/ports"
)

type stubItemRepo struct {
	items  map[string]*domain.Item
	nextID int
}

func newStubItemRepo() *stubItemRepo {
	return &stubItemRepo{items: make(map[string]*domain.Item)}
}

func (r *stubItemRepo) Create(_ context.Context, item *domain.Item) (*domain.Item, error) {
	r.nextID++
	clone := *item
	clone.ID = fmt.Sprintf("i%d", r.nextID)
	r.items[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubItemRepo) FindByID(_ context.Context, id string) (*domain.Item, error) {
	if item, ok := r.items[id]; ok {
		clone := *item
		return &clone, nil
	}
	return nil, domain.ErrItemNotFound
}

func (r *stubItemRepo) FindAll(_ context.Context) ([]*domain.Item, error) {
	out := make([]*domain.Item, 0, len(r.items))
	for _, item := range r.items {
		clone := *item
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubItemRepo) Update(_ context.Context, item *domain.Item) (*domain.Item, error) {
	if _, ok := r.items[item.ID]; !ok {
		return nil, domain.ErrItemNotFound
	}
	clone := *item
	r.items[item.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubItemRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrItemNotFound
	}
	delete(r.items, id)
	return nil
}

func TestItemService_CreateAndGet(t *testing.T) {
	svc := NewItemService(newStubItemRepo(), zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.ItemInput{
		Name:        "Earl Grey",
		Description: "Bergamot-scented black tea",
		Quantity:    120,
		Price:       850,
		Image:       "earl-grey.jpg",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Earl Grey" || got.Quantity != 120 {
		t.Fatalf("unexpected item: %+v", got)
	}
}

func TestItemService_Update_Partial(t *testing.T) {
	repo := newStubItemRepo()
	svc := NewItemService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.ItemInput{
		Name: "Green Tea", Description: "Sencha", Quantity: 50, Price: 600, Image: "green.jpg",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, ports.ItemInput{Price: 650})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Price != 650 {
		t.Fatalf("price not updated: %v", updated.Price)
	}
	if updated.Name != "Green Tea" || updated.Quantity != 50 {
		t.Fatalf("unrelated fields changed: %+v", updated)
	}
}

func TestItemService_Delete_NotFound(t *testing.T) {
	svc := NewItemService(newStubItemRepo(), zerolog.Nop())

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}
