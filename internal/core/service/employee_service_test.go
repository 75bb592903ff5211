package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/leaflink/storefront/internal/core/domain"
	"github.com/leaflink/storefront/internal/core/ports"
)

type stubEmployeeRepo struct {
	employees map[string]*domain.Employee
	nextID    int
}

func newStubEmployeeRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{employees: make(map[string]*domain.Employee)}
}

func (r *stubEmployeeRepo) Create(_ context.Context, e *domain.Employee) (*domain.Employee, error) {
	r.nextID++
	clone := *e
	clone.ID = fmt.Sprintf("e%d", r.nextID)
	r.employees[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubEmployeeRepo) FindByID(_ context.Context, id string) (*domain.Employee, error) {
	if e, ok := r.employees[id]; ok {
		clone := *e
		return &clone, nil
	}
	return nil, domain.ErrEmployeeNotFound
}

func (r *stubEmployeeRepo) FindAll(_ context.Context) ([]*domain.Employee, error) {
	out := make([]*domain.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		clone := *e
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubEmployeeRepo) Update(_ context.Context, e *domain.Employee) (*domain.Employee, error) {
	if _, ok := r.employees[e.ID]; !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	clone := *e
	r.employees[e.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubEmployeeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.employees[id]; !ok {
		return domain.ErrEmployeeNotFound
	}
	delete(r.employees, id)
	return nil
}

func TestEmployeeService_CreateUpdateDelete(t *testing.T) {
	svc := NewEmployeeService(newStubEmployeeRepo(), zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.EmployeeInput{
		Name:       "Nimal Silva",
		Mobile:     "0711111111",
		EmployeeID: "EMP-014",
		Salary:     85000,
		Title:      "Line Supervisor",
		Email:      "nimal@leaflink.lk",
		Birthday:   "1988-04-12",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, ports.EmployeeInput{Salary: 92000})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Salary != 92000 {
		t.Fatalf("salary not updated: %v", updated.Salary)
	}
	if updated.Name != "Nimal Silva" {
		t.Fatalf("name changed unexpectedly: %q", updated.Name)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound after delete, got %v", err)
	}
}
