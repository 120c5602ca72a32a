package payroll

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"paydesk/internal/domain/directory"
)

// Submission is one "Save Payslip" form: the employee identity fields,
// the resolved pay period and the raw earning/deduction line items.
type Submission struct {
	Name        string
	EmployeeID  string
	BankDetails string
	TaxNumber   string
	PFNumber    string
	UTINumber   string
	Period      Period
	Earnings    EarningsInput
	Deductions  DeductionsInput
}

// Build turns a submission into the employee record to upsert and the
// payslip record to append. A blank employee ID gets a fresh UUID, used
// for both records so the payslip reference always resolves. The payslip
// itself always gets a new ID; re-submitting the same period makes a new
// ledger entry, never an overwrite.
func Build(sub Submission, now time.Time) (directory.Employee, Payslip) {
	employeeID := strings.TrimSpace(sub.EmployeeID)
	if employeeID == "" {
		employeeID = uuid.NewString()
	}

	emp := directory.Employee{
		ID:          employeeID,
		Name:        strings.TrimSpace(sub.Name),
		BankDetails: strings.TrimSpace(sub.BankDetails),
		TaxNumber:   strings.TrimSpace(sub.TaxNumber),
		PFNumber:    strings.TrimSpace(sub.PFNumber),
		UTINumber:   strings.TrimSpace(sub.UTINumber),
	}

	slip := Payslip{
		ID:            uuid.NewString(),
		EmployeeID:    employeeID,
		Month:         sub.Period.Month,
		FinancialYear: sub.Period.FinancialYear(),
		Earnings:      sub.Earnings.Parse(),
		Deductions:    sub.Deductions.Parse(),
		CreatedAt:     now.UTC(),
	}
	return emp, slip
}
