package domain

import (
	"errors"
	"strings"
	"time"
)

// PaymentStatus represents the fulfilment state of a captured payment.
type PaymentStatus string

const (
	PaymentDone       PaymentStatus = "Payment Done"
	ProceedToDelivery PaymentStatus = "Proceed to Delivery"
	PaymentCompleted  PaymentStatus = "Completed"
)

// validStatusFlow defines the allowed fulfilment transitions.
var validStatusFlow = map[PaymentStatus][]PaymentStatus{
	PaymentDone:       {ProceedToDelivery},
	ProceedToDelivery: {PaymentCompleted},
}

var ErrInvalidStatusChange = errors.New("invalid payment status change")

// CanTransitionTo reports whether moving from the current status to next is valid.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, allowed := range validStatusFlow[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// CartLine is a single purchased line item snapshot, frozen at checkout time.
type CartLine struct {
	ItemName string  `json:"item_name" bson:"item_name"`
	Price    float64 `json:"price" bson:"price"`
	Quantity int     `json:"quantity" bson:"quantity"`
}

// Payment is a captured checkout. Card numbers are masked to their last four
// digits before the record is built; the CVV is never persisted at all.
type Payment struct {
	ID         string        `json:"id"`
	UserID     string        `json:"user_id"`
	CardHolder string        `json:"card_holder"`
	CardNumber string        `json:"card_number"`
	TotalPrice float64       `json:"total_price"`
	CartItems  []CartLine    `json:"cart_items"`
	Status     PaymentStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
}

// MaskCard reduces a card number to its last four digits.
func MaskCard(number string) string {
	digits := strings.ReplaceAll(strings.TrimSpace(number), " ", "")
	if len(digits) <= 4 {
		return "****" + digits
	}
	return "**** **** **** " + digits[len(digits)-4:]
}
