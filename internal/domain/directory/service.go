package directory

import (
	"context"
	"strings"
	"sync"
)

// ChangePublisher signals directory readers that the stored collections
// changed and any derived view must be re-queried.
type ChangePublisher interface {
	Publish()
}

// StoreLock serializes a whole-collection read-modify-write cycle.
// Every service that writes through the same store must share one
// lock, or concurrent saves lose updates.
type StoreLock struct {
	sync.Mutex
}

type Service struct {
	store StoreAPI
	bus   ChangePublisher
	lock  *StoreLock
}

// NewService wires the directory against a store. A nil lock gets a
// private one; callers sharing the store with other services pass the
// shared lock instead.
func NewService(store StoreAPI, bus ChangePublisher, lock *StoreLock) *Service {
	if lock == nil {
		lock = &StoreLock{}
	}
	return &Service{store: store, bus: bus, lock: lock}
}

func (s *Service) List(ctx context.Context) ([]Employee, error) {
	return s.store.LoadEmployees(ctx)
}

func (s *Service) Get(ctx context.Context, employeeID string) (Employee, error) {
	employees, err := s.store.LoadEmployees(ctx)
	if err != nil {
		return Employee{}, err
	}
	for _, emp := range employees {
		if emp.ID == employeeID {
			return emp, nil
		}
	}
	return Employee{}, ErrEmployeeNotFound
}

// Upsert merges emp into the directory by ID and persists the whole
// collection back. Directory size only grows when the ID is new.
func (s *Service) Upsert(ctx context.Context, emp Employee) (Employee, error) {
	emp.ID = strings.TrimSpace(emp.ID)
	if emp.ID == "" {
		return Employee{}, ErrMissingEmployeeID
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	employees, err := s.store.LoadEmployees(ctx)
	if err != nil {
		return Employee{}, err
	}

	employees = Upsert(employees, emp)
	if err := s.store.SaveEmployees(ctx, employees); err != nil {
		return Employee{}, err
	}

	if s.bus != nil {
		s.bus.Publish()
	}

	for _, stored := range employees {
		if stored.ID == emp.ID {
			return stored, nil
		}
	}
	return emp, nil
}
