package payroll

import "errors"

var (
	ErrPayslipNotFound    = errors.New("payslip not found")
	ErrUnresolvedEmployee = errors.New("payslip references an unknown employee")
	ErrDuplicatePayslip   = errors.New("a payslip already exists for this employee and period")
)
