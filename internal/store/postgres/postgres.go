// Package postgres backs the directory and ledger with PostgreSQL.
// It keeps the whole-collection read/replace semantics of the store
// boundary: saves rewrite the table inside one transaction, loads
// return rows in stored order.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"paydesk/internal/domain/directory"
	"paydesk/internal/domain/payroll"
)

type Store struct {
	DB *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) LoadEmployees(ctx context.Context) ([]directory.Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, department, bank_details, tax_number, pf_number, uti_number
    FROM employees
    ORDER BY ord
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []directory.Employee
	for rows.Next() {
		var emp directory.Employee
		if err := rows.Scan(&emp.ID, &emp.Name, &emp.Department, &emp.BankDetails, &emp.TaxNumber, &emp.PFNumber, &emp.UTINumber); err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (s *Store) SaveEmployees(ctx context.Context, employees []directory.Employee) error {
	return pgx.BeginFunc(ctx, s.DB, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "DELETE FROM employees"); err != nil {
			return err
		}
		for i, emp := range employees {
			_, err := tx.Exec(ctx, `
        INSERT INTO employees (ord, id, name, department, bank_details, tax_number, pf_number, uti_number)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
      `, i, emp.ID, emp.Name, emp.Department, emp.BankDetails, emp.TaxNumber, emp.PFNumber, emp.UTINumber)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) LoadPayslips(ctx context.Context) ([]payroll.Payslip, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, month, financial_year,
           basic_salary, hra, conveyance, dearness_allowance, overtime, bonus,
           provident_fund, esi, professional_tax, salary_advance, tds, other_deduction,
           created_at
    FROM payslips
    ORDER BY ord
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payslips []payroll.Payslip
	for rows.Next() {
		var slip payroll.Payslip
		err := rows.Scan(
			&slip.ID, &slip.EmployeeID, &slip.Month, &slip.FinancialYear,
			&slip.Earnings.BasicSalary, &slip.Earnings.HRA, &slip.Earnings.Conveyance,
			&slip.Earnings.DearnessAllowance, &slip.Earnings.Overtime, &slip.Earnings.Bonus,
			&slip.Deductions.ProvidentFund, &slip.Deductions.ESI, &slip.Deductions.ProfessionalTax,
			&slip.Deductions.SalaryAdvance, &slip.Deductions.TDS, &slip.Deductions.OtherDeduction,
			&slip.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		payslips = append(payslips, slip)
	}
	return payslips, rows.Err()
}

func (s *Store) SavePayslips(ctx context.Context, payslips []payroll.Payslip) error {
	return pgx.BeginFunc(ctx, s.DB, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "DELETE FROM payslips"); err != nil {
			return err
		}
		for i, slip := range payslips {
			_, err := tx.Exec(ctx, `
        INSERT INTO payslips (ord, id, employee_id, month, financial_year,
                              basic_salary, hra, conveyance, dearness_allowance, overtime, bonus,
                              provident_fund, esi, professional_tax, salary_advance, tds, other_deduction,
                              created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
      `, i, slip.ID, slip.EmployeeID, slip.Month, slip.FinancialYear,
				slip.Earnings.BasicSalary, slip.Earnings.HRA, slip.Earnings.Conveyance,
				slip.Earnings.DearnessAllowance, slip.Earnings.Overtime, slip.Earnings.Bonus,
				slip.Deductions.ProvidentFund, slip.Deductions.ESI, slip.Deductions.ProfessionalTax,
				slip.Deductions.SalaryAdvance, slip.Deductions.TDS, slip.Deductions.OtherDeduction,
				slip.CreatedAt)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
