package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/leaflink/storefront/internal/core/domain"
	"github.com/leaflink/storefront/internal/core/ports"
)

// EmployeeService implements staff-record use cases for the manager console.
type EmployeeService struct {
	repo ports.EmployeeRepository
	log  zerolog.Logger
}

func NewEmployeeService(repo ports.EmployeeRepository, log zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, log: log}
}

func (s *EmployeeService) Create(ctx context.Context, in ports.EmployeeInput) (*domain.Employee, error) {
	created, err := s.repo.Create(ctx, &domain.Employee{
		Name:       in.Name,
		Mobile:     in.Mobile,
		EmployeeID: in.EmployeeID,
		Salary:     in.Salary,
		Title:      in.Title,
		Email:      in.Email,
		Birthday:   in.Birthday,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("employee_id", created.ID).Msg("employee created")
	return created, nil
}

func (s *EmployeeService) Get(ctx context.Context, id string) (*domain.Employee, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EmployeeService) List(ctx context.Context) ([]*domain.Employee, error) {
	return s.repo.FindAll(ctx)
}

func (s *EmployeeService) Update(ctx context.Context, id string, in ports.EmployeeInput) (*domain.Employee, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		e.Name = in.Name
	}
	if in.Mobile != "" {
		e.Mobile = in.Mobile
	}
	if in.EmployeeID != "" {
		e.EmployeeID = in.EmployeeID
	}
	if in.Salary != 0 {
		e.Salary = in.Salary
	}
	if in.Title != "" {
		e.Title = in.Title
	}
	if in.Email != "" {
		e.Email = in.Email
	}
	if in.Birthday != "" {
		e.Birthday = in.Birthday
	}

	return s.repo.Update(ctx, e)
}

func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
