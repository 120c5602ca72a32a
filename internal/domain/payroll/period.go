package payroll

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Period is a structured pay period: a calendar month name and the year
// the financial year starts in.
type Period struct {
	Month string `json:"month"`
	Year  int    `json:"year"`
}

// FinancialYear renders the 12-month accounting period the year opens,
// formatted "<year>-<year+1>".
func (p Period) FinancialYear() string {
	return fmt.Sprintf("%d-%d", p.Year, p.Year+1)
}

// ParsePayPeriod reads the legacy free-text pay period, e.g. "March 2024".
// The first whitespace-separated token is the month, the second the year.
// Missing or unusable tokens degrade to January and the current year;
// malformed input never fails.
func ParsePayPeriod(raw string, now time.Time) Period {
	period := Period{Month: DefaultMonth, Year: now.Year()}

	parts := strings.Fields(raw)
	if len(parts) >= 1 {
		period.Month = parts[0]
	}
	if len(parts) >= 2 {
		if year, err := strconv.Atoi(parts[1]); err == nil {
			period.Year = year
		}
	}
	return period
}
