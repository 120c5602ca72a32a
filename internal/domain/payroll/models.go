package payroll

import "time"

// Earnings holds the six fixed earning line items of a payslip.
// Amounts are plain figures in the payslip currency, defaulted to 0.
type Earnings struct {
	BasicSalary       float64 `json:"basicSalary"`
	HRA               float64 `json:"hra"`
	Conveyance        float64 `json:"conveyance"`
	DearnessAllowance float64 `json:"dearnessAllowance"`
	Overtime          float64 `json:"overtime"`
	Bonus             float64 `json:"bonus"`
}

// Deductions holds the six fixed deduction line items of a payslip.
type Deductions struct {
	ProvidentFund   float64 `json:"providentFund"`
	ESI             float64 `json:"esi"`
	ProfessionalTax float64 `json:"professionalTax"`
	SalaryAdvance   float64 `json:"salaryAdvance"`
	TDS             float64 `json:"tds"`
	OtherDeduction  float64 `json:"otherDeduction"`
}

// Payslip is one immutable ledger entry. Totals are never stored, they
// are recomputed from the line items on every read.
type Payslip struct {
	ID            string     `json:"id"`
	EmployeeID    string     `json:"employeeId"`
	Month         string     `json:"month"`
	FinancialYear string     `json:"financialYear"`
	Earnings      Earnings   `json:"earnings"`
	Deductions    Deductions `json:"deductions"`
	CreatedAt     time.Time  `json:"createdAt"`
}

type Totals struct {
	TotalEarnings   float64 `json:"totalEarnings"`
	TotalDeductions float64 `json:"totalDeductions"`
	NetSalary       float64 `json:"netSalary"`
}

// AmountLine pairs a display name with a stored amount, in the fixed
// payslip layout order.
type AmountLine struct {
	Name   string
	Amount float64
}

func (e Earnings) Lines() []AmountLine {
	return []AmountLine{
		{"Basic Salary", e.BasicSalary},
		{"HRA", e.HRA},
		{"Conveyance", e.Conveyance},
		{"Dearness Allowance", e.DearnessAllowance},
		{"Overtime", e.Overtime},
		{"Bonus", e.Bonus},
	}
}

func (d Deductions) Lines() []AmountLine {
	return []AmountLine{
		{"Provident Fund", d.ProvidentFund},
		{"ESI", d.ESI},
		{"Professional Tax", d.ProfessionalTax},
		{"Salary Advance", d.SalaryAdvance},
		{"TDS", d.TDS},
		{"Other Deduction", d.OtherDeduction},
	}
}
