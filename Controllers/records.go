package Controllers

import (
	"bytes"
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"HRKeeper/Models"
)

type employeeInput struct {
	EmpID      string `json:"emp_id" form:"emp_id"`
	Name       string `json:"name" form:"name"`
	Department string `json:"department" form:"department"`
}

type attendanceInput struct {
	EmpID   string `json:"emp_id" form:"emp_id"`
	Date    string `json:"date" form:"date"`
	TimeIn  string `json:"time_in" form:"time_in"`
	TimeOut string `json:"time_out" form:"time_out"`
}

type leaveInput struct {
	EmpID     string `json:"emp_id" form:"emp_id"`
	LeaveType string `json:"leave_type" form:"leave_type"`
	StartDate string `json:"start_date" form:"start_date"`
	EndDate   string `json:"end_date" form:"end_date"`
}

type overtimeInput struct {
	EmpID string      `json:"emp_id" form:"emp_id"`
	Date  string      `json:"date" form:"date"`
	Hours hoursString `json:"hours" form:"hours"`
}

// hoursString accepts hours as a JSON number or string.
type hoursString string

func (h *hoursString) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(data, []byte(`"`)) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*h = hoursString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*h = hoursString(n)
	return nil
}

func parseBody(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		return &Models.ValidationError{Fields: map[string]string{"body": "request body could not be parsed"}}
	}
	return nil
}

// EmployeeController handles the Employees view and API
type EmployeeController struct {
	tableController
}

func NewEmployeeController(stores Models.Stores) *EmployeeController {
	return &EmployeeController{tableController{
		store:   stores.Employees,
		view:    page{View: "employees", Title: "Employee Management", ListTitle: "Employee List", Active: "employees"},
		success: "Employee added successfully!",
		newRow: func(ctx *fiber.Ctx) ([]string, error) {
			var input employeeInput
			if err := parseBody(ctx, &input); err != nil {
				return nil, err
			}
			employee, err := Models.NewEmployee(input.EmpID, input.Name, input.Department)
			if err != nil {
				return nil, err
			}
			return employee.Row(), nil
		},
		decode: func(columns, row []string) (interface{}, error) {
			return Models.EmployeeFromRow(columns, row)
		},
	}}
}

// AttendanceController handles the Attendance view and API
type AttendanceController struct {
	tableController
}

func NewAttendanceController(stores Models.Stores) *AttendanceController {
	return &AttendanceController{tableController{
		store:     stores.Attendance,
		employees: stores.Employees,
		view:      page{View: "attendance", Title: "Attendance", ListTitle: "Attendance Records", Active: "attendance"},
		success:   "Attendance recorded!",
		newRow: func(ctx *fiber.Ctx) ([]string, error) {
			var input attendanceInput
			if err := parseBody(ctx, &input); err != nil {
				return nil, err
			}
			record, err := Models.NewAttendanceRecord(input.EmpID, input.Date, input.TimeIn, input.TimeOut)
			if err != nil {
				return nil, err
			}
			return record.Row(), nil
		},
		decode: func(columns, row []string) (interface{}, error) {
			return Models.AttendanceRecordFromRow(columns, row)
		},
	}}
}

// LeaveController handles the Leave Management view and API
type LeaveController struct {
	tableController
}

func NewLeaveController(stores Models.Stores) *LeaveController {
	return &LeaveController{tableController{
		store:     stores.Leaves,
		employees: stores.Employees,
		view:      page{View: "leaves", Title: "Leave Management", ListTitle: "Leave Requests", Active: "leaves"},
		success:   "Leave request submitted!",
		newRow: func(ctx *fiber.Ctx) ([]string, error) {
			var input leaveInput
			if err := parseBody(ctx, &input); err != nil {
				return nil, err
			}
			request, err := Models.NewLeaveRequest(input.EmpID, input.LeaveType, input.StartDate, input.EndDate)
			if err != nil {
				return nil, err
			}
			return request.Row(), nil
		},
		decode: func(columns, row []string) (interface{}, error) {
			return Models.LeaveRequestFromRow(columns, row)
		},
	}}
}

// OvertimeController handles the Overtime view and API
type OvertimeController struct {
	tableController
}

func NewOvertimeController(stores Models.Stores) *OvertimeController {
	return &OvertimeController{tableController{
		store:     stores.Overtime,
		employees: stores.Employees,
		view:      page{View: "overtime", Title: "Overtime Logging", ListTitle: "Overtime Records", Active: "overtime"},
		success:   "Overtime logged!",
		newRow: func(ctx *fiber.Ctx) ([]string, error) {
			var input overtimeInput
			if err := parseBody(ctx, &input); err != nil {
				return nil, err
			}
			entry, err := Models.NewOvertimeEntry(input.EmpID, input.Date, string(input.Hours))
			if err != nil {
				return nil, err
			}
			return entry.Row(), nil
		},
		decode: func(columns, row []string) (interface{}, error) {
			return Models.OvertimeEntryFromRow(columns, row)
		},
	}}
}
