package payroll

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
)

// GeneratePayslipPDF renders the fixed payslip layout for one ledger
// entry and writes it under dir, returning the file path. A payslip
// whose employee reference does not resolve is an error, not a guess.
func (s *Service) GeneratePayslipPDF(ctx context.Context, payslipID, dir string) (string, error) {
	entry, err := s.Get(ctx, payslipID)
	if err != nil {
		return "", err
	}
	if entry.Employee == nil {
		return "", ErrUnresolvedEmployee
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	filePath := filepath.Join(dir, entry.Payslip.ID+".pdf")

	emp := *entry.Employee
	slip := entry.Payslip
	totals := entry.Totals

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", emp.Name, emp.ID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Department: %s", emp.Department))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s %s", slip.Month, slip.FinancialYear))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Earnings")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range slip.Earnings.Lines() {
		pdf.Cell(90, 7, line.Name)
		pdf.CellFormat(40, 7, fmt.Sprintf("%.2f", line.Amount), "", 0, "R", false, 0, "")
		pdf.Ln(7)
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(90, 7, "Total Earnings")
	pdf.CellFormat(40, 7, fmt.Sprintf("%.2f", totals.TotalEarnings), "", 0, "R", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Deductions")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range slip.Deductions.Lines() {
		pdf.Cell(90, 7, line.Name)
		pdf.CellFormat(40, 7, fmt.Sprintf("%.2f", line.Amount), "", 0, "R", false, 0, "")
		pdf.Ln(7)
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(90, 7, "Total Deductions")
	pdf.CellFormat(40, 7, fmt.Sprintf("%.2f", totals.TotalDeductions), "", 0, "R", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(90, 8, "Net Salary Transferred")
	pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", totals.NetSalary), "", 0, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}
	return filePath, nil
}
