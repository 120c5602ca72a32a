// Package memory is an in-memory store implementation for tests and
// local development.
package memory

import (
	"context"
	"sync"

	"paydesk/internal/domain/directory"
	"paydesk/internal/domain/payroll"
)

type Store struct {
	mu        sync.RWMutex
	employees []directory.Employee
	payslips  []payroll.Payslip
}

func New() *Store {
	return &Store{}
}

func (s *Store) LoadEmployees(_ context.Context) ([]directory.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]directory.Employee, len(s.employees))
	copy(out, s.employees)
	return out, nil
}

func (s *Store) SaveEmployees(_ context.Context, employees []directory.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employees = make([]directory.Employee, len(employees))
	copy(s.employees, employees)
	return nil
}

func (s *Store) LoadPayslips(_ context.Context) ([]payroll.Payslip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]payroll.Payslip, len(s.payslips))
	copy(out, s.payslips)
	return out, nil
}

func (s *Store) SavePayslips(_ context.Context, payslips []payroll.Payslip) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payslips = make([]payroll.Payslip, len(payslips))
	copy(s.payslips, payslips)
	return nil
}
