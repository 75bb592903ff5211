package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/leaflink/storefront/internal/core/domain"
	"github.com/leaflink/storefront/internal/core/ports"
)

// PaymentService implements checkout capture and back-office payment
// management.
type PaymentService struct {
	repo ports.PaymentRepository
	log  zerolog.Logger
}

func NewPaymentService(repo ports.PaymentRepository, log zerolog.Logger) *PaymentService {
	return &PaymentService{repo: repo, log: log}
}

// Create captures a checkout. The card number is masked before the record is
// built; nothing beyond the last four digits survives.
func (s *PaymentService) Create(ctx context.Context, in ports.CreatePaymentInput) (*domain.Payment, error) {
	lines := make([]domain.CartLine, 0, len(in.CartItems))
	for _, l := range in.CartItems {
		lines = append(lines, domain.CartLine{
			ItemName: l.ItemName,
			Price:    l.Price,
			Quantity: l.Quantity,
		})
	}

	payment := &domain.Payment{
		UserID:     in.UserID,
		CardHolder: in.CardHolder,
		CardNumber: domain.MaskCard(in.CardNumber),
		TotalPrice: in.TotalPrice,
		CartItems:  lines,
		Status:     domain.PaymentDone,
	}

	created, err := s.repo.Create(ctx, payment)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("payment_id", created.ID).
		Str("user_id", created.UserID).
		Float64("total", created.TotalPrice).
		Msg("payment captured")
	return created, nil
}

func (s *PaymentService) Get(ctx context.Context, id string) (*domain.Payment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PaymentService) List(ctx context.Context) ([]*domain.Payment, error) {
	return s.repo.FindAll(ctx)
}

// UpdateStatus advances the fulfilment state machine.
func (s *PaymentService) UpdateStatus(ctx context.Context, id, status string) (*domain.Payment, error) {
	next := domain.PaymentStatus(status)
	switch next {
	case domain.PaymentDone, domain.ProceedToDelivery, domain.PaymentCompleted:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidStatusChange, status)
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !current.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidStatusChange, current.Status, next)
	}

	updated, err := s.repo.UpdateStatus(ctx, id, next)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("payment_id", id).Str("status", string(next)).Msg("payment status updated")
	return updated, nil
}

func (s *PaymentService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
