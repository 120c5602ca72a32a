package payroll

import "testing"

func TestSumAmountsSampleScenario(t *testing.T) {
	earnings := EarningsInput{BasicSalary: "30000", HRA: "5000", Conveyance: "", Bonus: "abc"}
	deductions := DeductionsInput{TDS: "2000"}

	gross := SumAmounts(earnings.LineItems())
	if gross.String() != "35000" {
		t.Fatalf("expected gross 35000, got %s", gross)
	}

	total := SumAmounts(deductions.LineItems())
	if total.String() != "2000" {
		t.Fatalf("expected deductions 2000, got %s", total)
	}

	slip := Payslip{Earnings: earnings.Parse(), Deductions: deductions.Parse()}
	totals := ComputeTotals(slip)
	if totals.TotalEarnings != 35000 {
		t.Fatalf("expected total earnings 35000, got %v", totals.TotalEarnings)
	}
	if totals.TotalDeductions != 2000 {
		t.Fatalf("expected total deductions 2000, got %v", totals.TotalDeductions)
	}
	if totals.NetSalary != 33000 {
		t.Fatalf("expected net salary 33000, got %v", totals.NetSalary)
	}
}

func TestParseAmountInvalidInputIsZero(t *testing.T) {
	for _, raw := range []string{"", "   ", "abc", "N/A", "--5", ".x", "e5"} {
		if got := ParseAmount(raw); !got.IsZero() {
			t.Fatalf("expected %q to parse as 0, got %s", raw, got)
		}
	}
}

func TestParseAmountKeepsNumericPrefix(t *testing.T) {
	cases := map[string]string{
		"12abc":   "12",
		"12,000":  "12",
		"3.5x":    "3.5",
		"12.":     "12",
		"-7.25 ₹": "-7.25",
		"1e2kg":   "100",
		"  40 ":   "40",
	}
	for raw, want := range cases {
		if got := ParseAmount(raw); got.String() != want {
			t.Fatalf("expected %q to parse as %s, got %s", raw, want, got)
		}
	}
}

func TestParseAmountAcceptsNegatives(t *testing.T) {
	if got := ParseAmount("-150.25"); got.String() != "-150.25" {
		t.Fatalf("expected -150.25, got %s", got)
	}
}

func TestSumAmountsRoundsToTwoPlaces(t *testing.T) {
	items := []LineItem{
		{"a", "0.105"},
		{"b", "0.10"},
	}
	if got := SumAmounts(items); got.String() != "0.21" {
		t.Fatalf("expected 0.21, got %s", got)
	}
}

func TestSubmissionTotalsMatchesStoredTotals(t *testing.T) {
	earnings := EarningsInput{BasicSalary: "30000", HRA: "5000", Bonus: "abc"}
	deductions := DeductionsInput{TDS: "2000", OtherDeduction: "150.555x"}

	preview := SubmissionTotals(earnings, deductions)
	if preview.TotalEarnings != 35000 {
		t.Fatalf("expected total earnings 35000, got %v", preview.TotalEarnings)
	}
	if preview.TotalDeductions != 2150.56 {
		t.Fatalf("expected total deductions 2150.56, got %v", preview.TotalDeductions)
	}

	stored := ComputeTotals(Payslip{Earnings: earnings.Parse(), Deductions: deductions.Parse()})
	if preview.NetSalary != stored.NetSalary {
		t.Fatalf("expected preview net %v to match stored net %v", preview.NetSalary, stored.NetSalary)
	}
}

func TestComputeTotalsNegativeNet(t *testing.T) {
	slip := Payslip{
		Earnings:   Earnings{BasicSalary: 1000},
		Deductions: Deductions{SalaryAdvance: 1500, TDS: 250.50},
	}
	totals := ComputeTotals(slip)
	if totals.NetSalary != -750.50 {
		t.Fatalf("expected net -750.50, got %v", totals.NetSalary)
	}
}

func TestSumAmountsOrderIndependentResult(t *testing.T) {
	forward := []LineItem{{"a", "10.10"}, {"b", "20.20"}, {"c", "30.30"}}
	reversed := []LineItem{{"c", "30.30"}, {"b", "20.20"}, {"a", "10.10"}}
	if !SumAmounts(forward).Equal(SumAmounts(reversed)) {
		t.Fatal("expected sum to be independent of line order")
	}
}
