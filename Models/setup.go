package Models

import (
	"HRKeeper/RecordStore"
)

// Table file names inside the data directory.
const (
	EmployeesFile  = "employees.csv"
	AttendanceFile = "attendance.csv"
	LeavesFile     = "leaves.csv"
	OvertimeFile   = "overtime.csv"
)

// Column schemas. The order is the on-disk column order.
var (
	EmployeeSchema   = RecordStore.Schema{"emp_id", "name", "department"}
	AttendanceSchema = RecordStore.Schema{"emp_id", "date", "time_in", "time_out"}
	LeaveSchema      = RecordStore.Schema{"emp_id", "leave_type", "start_date", "end_date", "status"}
	OvertimeSchema   = RecordStore.Schema{"emp_id", "date", "hours"}
)

// Stores groups the four table stores of one data directory.
type Stores struct {
	Employees  RecordStore.Store
	Attendance RecordStore.Store
	Leaves     RecordStore.Store
	Overtime   RecordStore.Store
}

func Connect(dataDir string) Stores {
	return Stores{
		Employees:  RecordStore.NewStore("employees", dataDir, EmployeesFile, EmployeeSchema),
		Attendance: RecordStore.NewStore("attendance", dataDir, AttendanceFile, AttendanceSchema),
		Leaves:     RecordStore.NewStore("leaves", dataDir, LeavesFile, LeaveSchema),
		Overtime:   RecordStore.NewStore("overtime", dataDir, OvertimeFile, OvertimeSchema),
	}
}

// All returns the stores in menu order.
func (s Stores) All() []RecordStore.Store {
	return []RecordStore.Store{s.Employees, s.Attendance, s.Leaves, s.Overtime}
}

// ByName finds a store by its table name.
func (s Stores) ByName(name string) (RecordStore.Store, bool) {
	for _, store := range s.All() {
		if store.Name == name {
			return store, true
		}
	}
	return RecordStore.Store{}, false
}

// cell returns the named column of row, or "" when the file has no such column.
func cell(columns, row []string, name string) string {
	i := RecordStore.Table{Columns: columns}.Column(name)
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
