package ports

import (
	"context"

	"github.com/leaflink/storefront/internal/core/domain"
)

// CartLineInput is a single checkout line.
type CartLineInput struct {
	ItemName string
	Price    float64
	Quantity int
}

// CreatePaymentInput carries the checkout payload. CardNumber arrives raw and
// is masked before persistence; the CVV is verified upstream and discarded.
type CreatePaymentInput struct {
	UserID     string
	CardHolder string
	CardNumber string
	TotalPrice float64
	CartItems  []CartLineInput
}

// PaymentService defines use-case operations over payment records.
type PaymentService interface {
	Create(ctx context.Context, in CreatePaymentInput) (*domain.Payment, error)
	Get(ctx context.Context, id string) (*domain.Payment, error)
	List(ctx context.Context) ([]*domain.Payment, error)
	// UpdateStatus advances the fulfilment state machine; invalid
	// transitions fail with domain.ErrInvalidStatusChange.
	UpdateStatus(ctx context.Context, id, status string) (*domain.Payment, error)
	Delete(ctx context.Context, id string) error
}
