package payroll

// EarningsInput carries the raw form text for the six earning lines.
// Anything that does not parse as a decimal number becomes 0.
type EarningsInput struct {
	BasicSalary       string `json:"basicSalary"`
	HRA               string `json:"hra"`
	Conveyance        string `json:"conveyance"`
	DearnessAllowance string `json:"dearnessAllowance"`
	Overtime          string `json:"overtime"`
	Bonus             string `json:"bonus"`
}

type DeductionsInput struct {
	ProvidentFund   string `json:"providentFund"`
	ESI             string `json:"esi"`
	ProfessionalTax string `json:"professionalTax"`
	SalaryAdvance   string `json:"salaryAdvance"`
	TDS             string `json:"tds"`
	OtherDeduction  string `json:"otherDeduction"`
}

func (in EarningsInput) LineItems() []LineItem {
	return []LineItem{
		{"Basic Salary", in.BasicSalary},
		{"HRA", in.HRA},
		{"Conveyance", in.Conveyance},
		{"Dearness Allowance", in.DearnessAllowance},
		{"Overtime", in.Overtime},
		{"Bonus", in.Bonus},
	}
}

func (in DeductionsInput) LineItems() []LineItem {
	return []LineItem{
		{"Provident Fund", in.ProvidentFund},
		{"ESI", in.ESI},
		{"Professional Tax", in.ProfessionalTax},
		{"Salary Advance", in.SalaryAdvance},
		{"TDS", in.TDS},
		{"Other Deduction", in.OtherDeduction},
	}
}

func (in EarningsInput) Parse() Earnings {
	return Earnings{
		BasicSalary:       ParseAmount(in.BasicSalary).InexactFloat64(),
		HRA:               ParseAmount(in.HRA).InexactFloat64(),
		Conveyance:        ParseAmount(in.Conveyance).InexactFloat64(),
		DearnessAllowance: ParseAmount(in.DearnessAllowance).InexactFloat64(),
		Overtime:          ParseAmount(in.Overtime).InexactFloat64(),
		Bonus:             ParseAmount(in.Bonus).InexactFloat64(),
	}
}

func (in DeductionsInput) Parse() Deductions {
	return Deductions{
		ProvidentFund:   ParseAmount(in.ProvidentFund).InexactFloat64(),
		ESI:             ParseAmount(in.ESI).InexactFloat64(),
		ProfessionalTax: ParseAmount(in.ProfessionalTax).InexactFloat64(),
		SalaryAdvance:   ParseAmount(in.SalaryAdvance).InexactFloat64(),
		TDS:             ParseAmount(in.TDS).InexactFloat64(),
		OtherDeduction:  ParseAmount(in.OtherDeduction).InexactFloat64(),
	}
}
