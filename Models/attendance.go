package Models

import "strings"

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04:05"
)

// AttendanceRecord is one check-in event. Duplicates are allowed.
type AttendanceRecord struct {
	EmpID   string `json:"emp_id" validate:"required"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	TimeIn  string `json:"time_in" validate:"required,datetime=15:04:05"`
	TimeOut string `json:"time_out" validate:"required,datetime=15:04:05"`
}

func NewAttendanceRecord(empID, date, timeIn, timeOut string) (AttendanceRecord, error) {
	record := AttendanceRecord{
		EmpID:   strings.TrimSpace(empID),
		Date:    strings.TrimSpace(date),
		TimeIn:  normalizeClock(timeIn),
		TimeOut: normalizeClock(timeOut),
	}
	if err := Validate(record); err != nil {
		return AttendanceRecord{}, err
	}
	return record, nil
}

func (a AttendanceRecord) Row() []string {
	return []string{a.EmpID, a.Date, a.TimeIn, a.TimeOut}
}

// normalizeClock widens browser "HH:MM" time inputs to HH:MM:SS.
func normalizeClock(value string) string {
	value = strings.TrimSpace(value)
	if len(value) == len("15:04") && strings.Count(value, ":") == 1 {
		return value + ":00"
	}
	return value
}

func AttendanceRecordFromRow(columns, row []string) (AttendanceRecord, error) {
	return AttendanceRecord{
		EmpID:   cell(columns, row, "emp_id"),
		Date:    cell(columns, row, "date"),
		TimeIn:  cell(columns, row, "time_in"),
		TimeOut: cell(columns, row, "time_out"),
	}, nil
}
