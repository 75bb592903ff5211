package domain

import "time"

// Employee is a back-office staff record, managed through the manager console.
type Employee struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Mobile     string    `json:"mobile"`
	EmployeeID string    `json:"employee_id"`
	Salary     float64   `json:"salary"`
	Title      string    `json:"title"`
	Email      string    `json:"email"`
	Birthday   string    `json:"birthday"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
