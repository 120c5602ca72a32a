// Package file persists both collections as JSON documents on disk,
// one file per collection, mirroring the browser local-storage layout
// the dashboard originally used.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"paydesk/internal/domain/directory"
	"paydesk/internal/domain/payroll"
)

const (
	employeesFile = "employees.json"
	payslipsFile  = "payslips.json"
)

type Store struct {
	mu  sync.Mutex
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) LoadEmployees(_ context.Context) ([]directory.Employee, error) {
	var employees []directory.Employee
	if err := s.read(employeesFile, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (s *Store) SaveEmployees(_ context.Context, employees []directory.Employee) error {
	return s.write(employeesFile, employees)
}

func (s *Store) LoadPayslips(_ context.Context) ([]payroll.Payslip, error) {
	var payslips []payroll.Payslip
	if err := s.read(payslipsFile, &payslips); err != nil {
		return nil, err
	}
	return payslips, nil
}

func (s *Store) SavePayslips(_ context.Context, payslips []payroll.Payslip) error {
	return s.write(payslipsFile, payslips)
}

// read unmarshals one collection file. A missing file is an empty
// collection; a corrupt file is an error the caller sees.
func (s *Store) read(name string, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// write replaces the whole collection file. The temp-file rename keeps
// a concurrent reader from observing a partial document.
func (s *Store) write(name string, collection any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}
