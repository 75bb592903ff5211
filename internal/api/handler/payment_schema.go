package handler

type cartLineRequest struct {
	ItemName string  `json:"item_name" validate:"required"`
	Price    float64 `json:"price"     validate:"required,gt=0"`
	Quantity int     `json:"quantity"  validate:"required,gt=0"`
}

// createPaymentRequest is the checkout payload. The CVV is accepted for
// upstream verification but never persisted; the card number is masked to
// its last four digits before storage.
type createPaymentRequest struct {
	CardHolder string            `json:"card_holder" validate:"required"`
	CardNumber string            `json:"card_number" validate:"required,min=12"`
	ExpiryDate string            `json:"expiry_date" validate:"required"`
	CVV        string            `json:"cvv"         validate:"required,min=3"`
	TotalPrice float64           `json:"total_price" validate:"required,gt=0"`
	CartItems  []cartLineRequest `json:"cart_items"  validate:"required,min=1,dive"`
}

type updatePaymentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
