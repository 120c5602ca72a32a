// Package seed loads the demo dataset the dashboard ships with, so a
// fresh install has something to show in the history view.
package seed

import (
	"context"
	"time"

	"paydesk/internal/domain/directory"
	"paydesk/internal/domain/payroll"
)

// Seed inserts the demo employees and payslips when the respective
// collection is empty. Existing data is never touched.
func Seed(ctx context.Context, store payroll.StoreAPI) error {
	employees, err := store.LoadEmployees(ctx)
	if err != nil {
		return err
	}
	if len(employees) == 0 {
		if err := store.SaveEmployees(ctx, demoEmployees()); err != nil {
			return err
		}
	}

	payslips, err := store.LoadPayslips(ctx)
	if err != nil {
		return err
	}
	if len(payslips) == 0 {
		if err := store.SavePayslips(ctx, demoPayslips()); err != nil {
			return err
		}
	}
	return nil
}

func demoEmployees() []directory.Employee {
	return []directory.Employee{
		{
			ID:          "EMP001",
			Name:        "Rahul Sharma",
			Department:  "Engineering",
			BankDetails: "HDFC Bank 50100223344556",
			TaxNumber:   "ABCPS1234F",
			PFNumber:    "MH/12345/678",
			UTINumber:   "UTI-001122",
		},
		{
			ID:          "EMP002",
			Name:        "Priya Patel",
			Department:  "Finance",
			BankDetails: "ICICI Bank 00230145678901",
			TaxNumber:   "XYZPP5678K",
			PFNumber:    "MH/12345/679",
			UTINumber:   "UTI-003344",
		},
	}
}

func demoPayslips() []payroll.Payslip {
	created := time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC)
	return []payroll.Payslip{
		{
			ID:            "b1f1c8e2-1f4a-4d26-9a64-0b7e12a90001",
			EmployeeID:    "EMP001",
			Month:         "April",
			FinancialYear: "2024-2025",
			Earnings: payroll.Earnings{
				BasicSalary:       45000,
				HRA:               12000,
				Conveyance:        1600,
				DearnessAllowance: 3000,
				Overtime:          0,
				Bonus:             2500,
			},
			Deductions: payroll.Deductions{
				ProvidentFund:   5400,
				ESI:             0,
				ProfessionalTax: 200,
				SalaryAdvance:   0,
				TDS:             3200,
				OtherDeduction:  0,
			},
			CreatedAt: created,
		},
		{
			ID:            "b1f1c8e2-1f4a-4d26-9a64-0b7e12a90002",
			EmployeeID:    "EMP002",
			Month:         "April",
			FinancialYear: "2024-2025",
			Earnings: payroll.Earnings{
				BasicSalary:       38000,
				HRA:               10000,
				Conveyance:        1600,
				DearnessAllowance: 2500,
				Overtime:          1200,
				Bonus:             0,
			},
			Deductions: payroll.Deductions{
				ProvidentFund:   4560,
				ESI:             0,
				ProfessionalTax: 200,
				SalaryAdvance:   1000,
				TDS:             2100,
				OtherDeduction:  0,
			},
			CreatedAt: created,
		},
	}
}
