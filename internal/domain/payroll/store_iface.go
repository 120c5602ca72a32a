package payroll

import (
	"context"

	"paydesk/internal/domain/directory"
)

// StoreAPI is the single persistence boundary shared by the employee
// directory and the payslip ledger. Both collections are read and
// written whole, as ordered lists; the append/merge semantics live in
// the services, not in the store.
type StoreAPI interface {
	directory.StoreAPI
	LoadPayslips(ctx context.Context) ([]Payslip, error)
	SavePayslips(ctx context.Context, payslips []Payslip) error
}
