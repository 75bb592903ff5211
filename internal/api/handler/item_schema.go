package handler

type createItemRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description" validate:"required"`
	Quantity    int     `json:"quantity"    validate:"required,gt=0"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Image       string  `json:"image"       validate:"required"`
}

// updateItemRequest allows partial updates: zero values keep the stored field.
type updateItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity" validate:"omitempty,gt=0"`
	Price       float64 `json:"price"    validate:"omitempty,gt=0"`
	Image       string  `json:"image"`
}
