package payroll

import (
	"strings"

	"github.com/shopspring/decimal"
)

// LineItem is one named free-text amount as entered on the payslip form.
type LineItem struct {
	Name   string
	Amount string
}

// ParseAmount reads a free-text amount as a base-10 decimal the way a
// lenient form field does: the longest numeric prefix counts, so
// "12abc" is 12. Input with no numeric prefix contributes 0; it never
// fails.
func ParseAmount(raw string) decimal.Decimal {
	prefix := numericPrefix(strings.TrimSpace(raw))
	if prefix == "" {
		return decimal.Zero
	}
	value, err := decimal.NewFromString(prefix)
	if err != nil {
		return decimal.Zero
	}
	return value
}

// numericPrefix returns the longest leading run of raw that forms a
// number: optional sign, integer digits, fraction, exponent.
func numericPrefix(raw string) string {
	i, n := 0, len(raw)
	if i < n && (raw[i] == '+' || raw[i] == '-') {
		i++
	}
	digits := false
	for i < n && raw[i] >= '0' && raw[i] <= '9' {
		i++
		digits = true
	}
	if i < n && raw[i] == '.' {
		j := i + 1
		for j < n && raw[j] >= '0' && raw[j] <= '9' {
			j++
		}
		// The dot only counts with fraction digits behind it.
		if j > i+1 {
			i = j
			digits = true
		}
	}
	if !digits {
		return ""
	}
	if i < n && (raw[i] == 'e' || raw[i] == 'E') {
		j := i + 1
		if j < n && (raw[j] == '+' || raw[j] == '-') {
			j++
		}
		k := j
		for k < n && raw[k] >= '0' && raw[k] <= '9' {
			k++
		}
		if k > j {
			i = k
		}
	}
	return raw[:i]
}

// SumAmounts adds the parsed line items in list order and rounds the
// total to 2 decimal places.
func SumAmounts(items []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(ParseAmount(item.Amount))
	}
	return sum.Round(2)
}

// SubmissionTotals derives the totals straight from the raw form text,
// the same figures the entry form previews before saving.
func SubmissionTotals(earnings EarningsInput, deductions DeductionsInput) Totals {
	gross := SumAmounts(earnings.LineItems())
	ded := SumAmounts(deductions.LineItems())
	net := gross.Sub(ded).Round(2)
	return Totals{
		TotalEarnings:   gross.InexactFloat64(),
		TotalDeductions: ded.InexactFloat64(),
		NetSalary:       net.InexactFloat64(),
	}
}

// ComputeTotals derives gross earnings, total deductions and net salary
// from a stored payslip. Net salary is gross minus deductions and may be
// negative; it is never clamped.
func ComputeTotals(p Payslip) Totals {
	gross := sumLines(p.Earnings.Lines())
	deductions := sumLines(p.Deductions.Lines())
	net := gross.Sub(deductions).Round(2)
	return Totals{
		TotalEarnings:   gross.InexactFloat64(),
		TotalDeductions: deductions.InexactFloat64(),
		NetSalary:       net.InexactFloat64(),
	}
}

func sumLines(lines []AmountLine) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range lines {
		sum = sum.Add(decimal.NewFromFloat(line.Amount))
	}
	return sum.Round(2)
}
