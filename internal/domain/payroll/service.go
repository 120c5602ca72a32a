package payroll

import (
	"context"
	"time"

	"paydesk/internal/domain/directory"
)

type Service struct {
	store           StoreAPI
	bus             directory.ChangePublisher
	duplicatePolicy string
	lock            *directory.StoreLock
}

// NewService wires the payslip ledger against a store. duplicatePolicy
// is DuplicateAllow or DuplicateReject; anything else falls back to
// DuplicateAllow, the historical behavior. A nil lock gets a private
// one; callers sharing the store with the directory service pass the
// shared lock instead.
func NewService(store StoreAPI, bus directory.ChangePublisher, duplicatePolicy string, lock *directory.StoreLock) *Service {
	if duplicatePolicy != DuplicateReject {
		duplicatePolicy = DuplicateAllow
	}
	if lock == nil {
		lock = &directory.StoreLock{}
	}
	return &Service{store: store, bus: bus, duplicatePolicy: duplicatePolicy, lock: lock}
}

// SavePayslip builds the employee and payslip records from a submission,
// upserts the employee into the directory, appends the payslip to the
// ledger and persists both collections whole. The whole cycle holds the
// store lock so concurrent submissions cannot overwrite each other.
// Subscribers are notified after a successful write.
func (s *Service) SavePayslip(ctx context.Context, sub Submission) (directory.Employee, Payslip, error) {
	emp, slip := Build(sub, time.Now())

	s.lock.Lock()
	defer s.lock.Unlock()

	employees, err := s.store.LoadEmployees(ctx)
	if err != nil {
		return directory.Employee{}, Payslip{}, err
	}
	payslips, err := s.store.LoadPayslips(ctx)
	if err != nil {
		return directory.Employee{}, Payslip{}, err
	}

	if s.duplicatePolicy == DuplicateReject {
		for _, existing := range payslips {
			if existing.EmployeeID == slip.EmployeeID &&
				existing.Month == slip.Month &&
				existing.FinancialYear == slip.FinancialYear {
				return directory.Employee{}, Payslip{}, ErrDuplicatePayslip
			}
		}
	}

	employees = directory.Upsert(employees, emp)
	payslips = append(payslips, slip)

	if err := s.store.SaveEmployees(ctx, employees); err != nil {
		return directory.Employee{}, Payslip{}, err
	}
	if err := s.store.SavePayslips(ctx, payslips); err != nil {
		return directory.Employee{}, Payslip{}, err
	}

	if s.bus != nil {
		s.bus.Publish()
	}

	for _, stored := range employees {
		if stored.ID == emp.ID {
			emp = stored
			break
		}
	}
	return emp, slip, nil
}

// HistoryEntry is one payslip joined with its employee record and the
// derived totals. Employee is nil when the referenced ID is missing
// from the directory; such entries are surfaced, never silently
// reattributed to another employee.
type HistoryEntry struct {
	Payslip  Payslip
	Employee *directory.Employee
	Totals   Totals
}

// History returns the payslips whose stored financial year and month
// both exactly equal the selected values, in ledger insertion order.
// The result is recomputed from the store on every call.
func (s *Service) History(ctx context.Context, financialYear, month string) ([]HistoryEntry, error) {
	payslips, err := s.store.LoadPayslips(ctx)
	if err != nil {
		return nil, err
	}
	employees, err := s.store.LoadEmployees(ctx)
	if err != nil {
		return nil, err
	}

	index := directory.Index(employees)
	entries := make([]HistoryEntry, 0)
	for _, slip := range payslips {
		if slip.FinancialYear != financialYear || slip.Month != month {
			continue
		}
		entries = append(entries, s.join(slip, index))
	}
	return entries, nil
}

// Get looks a single payslip up by ID and joins it like History does.
func (s *Service) Get(ctx context.Context, payslipID string) (HistoryEntry, error) {
	payslips, err := s.store.LoadPayslips(ctx)
	if err != nil {
		return HistoryEntry{}, err
	}
	employees, err := s.store.LoadEmployees(ctx)
	if err != nil {
		return HistoryEntry{}, err
	}

	index := directory.Index(employees)
	for _, slip := range payslips {
		if slip.ID == payslipID {
			return s.join(slip, index), nil
		}
	}
	return HistoryEntry{}, ErrPayslipNotFound
}

func (s *Service) join(slip Payslip, index map[string]directory.Employee) HistoryEntry {
	entry := HistoryEntry{Payslip: slip, Totals: ComputeTotals(slip)}
	if emp, ok := index[slip.EmployeeID]; ok {
		entry.Employee = &emp
	}
	return entry
}
