package ports

import (
	"context"

	"github.com/leaflink/storefront/internal/core/domain"
)

// PaymentRepository defines persistence operations for captured payments.
type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
	FindByID(ctx context.Context, id string) (*domain.Payment, error)
	FindAll(ctx context.Context) ([]*domain.Payment, error)
	UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) (*domain.Payment, error)
	Delete(ctx context.Context, id string) error
}
