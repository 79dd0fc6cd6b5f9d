package Models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	MaxOvertimeHours = 24
	maxHoursPlaces   = 4
)

type OvertimeEntry struct {
	EmpID string          `json:"emp_id" validate:"required"`
	Date  string          `json:"date" validate:"required,datetime=2006-01-02"`
	Hours decimal.Decimal `json:"hours" validate:"gte=0,lte=24"`
}

// NewOvertimeEntry parses hours as a decimal, so "0.1" is stored as 0.1 and
// not as a float approximation.
func NewOvertimeEntry(empID, date, hours string) (OvertimeEntry, error) {
	parsed, problem := parseHours(hours)

	entry := OvertimeEntry{
		EmpID: strings.TrimSpace(empID),
		Date:  strings.TrimSpace(date),
		Hours: parsed,
	}
	err := Validate(entry)
	if problem != "" {
		err = withField(err, "hours", problem)
	}
	if err != nil {
		return OvertimeEntry{}, err
	}
	return entry, nil
}

// parseHours returns zero and a message when value is not a usable hour count.
// Magnitude and scale are checked on the exponent before any conversion, so
// inputs like "1e5000000" never get expanded.
func parseHours(value string) (decimal.Decimal, string) {
	parsed, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, "hours must be a number"
	}
	if parsed.Sign() == 0 {
		return decimal.Zero, ""
	}

	exp := parsed.Exponent()
	switch {
	case parsed.Sign() < 0 && (exp > 2 || exp < -maxHoursPlaces || parsed.Coefficient().BitLen() > 64):
		return decimal.Zero, "hours must be 0 or greater"
	case exp < -maxHoursPlaces:
		return decimal.Zero, fmt.Sprintf("hours must have at most %d decimal places", maxHoursPlaces)
	case exp > 2 || parsed.Coefficient().BitLen() > 64:
		return decimal.Zero, fmt.Sprintf("hours must be %d or less", MaxOvertimeHours)
	}
	return parsed, ""
}

func (o OvertimeEntry) Row() []string {
	return []string{o.EmpID, o.Date, o.Hours.String()}
}

// OvertimeEntryFromRow fails only when the stored hours are not a number.
// An empty hours cell decodes as zero.
func OvertimeEntryFromRow(columns, row []string) (OvertimeEntry, error) {
	entry := OvertimeEntry{
		EmpID: cell(columns, row, "emp_id"),
		Date:  cell(columns, row, "date"),
	}

	hours := strings.TrimSpace(cell(columns, row, "hours"))
	if hours == "" {
		return entry, nil
	}
	parsed, err := decimal.NewFromString(hours)
	if err != nil {
		return OvertimeEntry{}, fmt.Errorf("overtime row for %q: hours %q is not a number: %w", entry.EmpID, hours, err)
	}
	entry.Hours = parsed
	return entry, nil
}
