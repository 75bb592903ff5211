package ports

import (
	"context"

	"github.com/leaflink/storefront/internal/core/domain"
)

// EmployeeInput carries the staff-record fields accepted on create and update.
type EmployeeInput struct {
	Name       string
	Mobile     string
	EmployeeID string
	Salary     float64
	Title      string
	Email      string
	Birthday   string
}

// EmployeeService defines use-case operations over staff records.
type EmployeeService interface {
	Create(ctx context.Context, in EmployeeInput) (*domain.Employee, error)
	Get(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context) ([]*domain.Employee, error)
	Update(ctx context.Context, id string, in EmployeeInput) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
}
