package handler

type createEmployeeRequest struct {
	Name       string  `json:"name"        validate:"required"`
	Mobile     string  `json:"mobile"      validate:"required"`
	EmployeeID string  `json:"employee_id" validate:"required"`
	Salary     float64 `json:"salary"      validate:"required,gt=0"`
	Title      string  `json:"title"       validate:"required"`
	Email      string  `json:"email"       validate:"required,email"`
	Birthday   string  `json:"birthday"    validate:"required"`
}

// updateEmployeeRequest allows partial updates: zero values keep the stored field.
type updateEmployeeRequest struct {
	Name       string  `json:"name"`
	Mobile     string  `json:"mobile"`
	EmployeeID string  `json:"employee_id"`
	Salary     float64 `json:"salary" validate:"omitempty,gt=0"`
	Title      string  `json:"title"`
	Email      string  `json:"email"  validate:"omitempty,email"`
	Birthday   string  `json:"birthday"`
}
