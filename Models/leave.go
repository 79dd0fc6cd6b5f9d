package Models

import "strings"

const (
	LeaveVacation  = "Vacation"
	LeaveSick      = "Sick"
	LeaveEmergency = "Emergency"

	LeaveStatusPending = "Pending"
)

// LeaveTypes lists the accepted leave types in form order.
var LeaveTypes = []string{LeaveVacation, LeaveSick, LeaveEmergency}

// LeaveRequest is written once with status Pending. Nothing transitions it.
type LeaveRequest struct {
	EmpID     string `json:"emp_id" validate:"required"`
	LeaveType string `json:"leave_type" validate:"required,oneof=Vacation Sick Emergency"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Status    string `json:"status" validate:"required"`
}

func NewLeaveRequest(empID, leaveType, startDate, endDate string) (LeaveRequest, error) {
	request := LeaveRequest{
		EmpID:     strings.TrimSpace(empID),
		LeaveType: strings.TrimSpace(leaveType),
		StartDate: strings.TrimSpace(startDate),
		EndDate:   strings.TrimSpace(endDate),
		Status:    LeaveStatusPending,
	}
	if err := Validate(request); err != nil {
		return LeaveRequest{}, err
	}
	return request, nil
}

func (l LeaveRequest) Row() []string {
	return []string{l.EmpID, l.LeaveType, l.StartDate, l.EndDate, l.Status}
}

// LeaveRequestFromRow keeps the stored status as written, whatever its case.
func LeaveRequestFromRow(columns, row []string) (LeaveRequest, error) {
	return LeaveRequest{
		EmpID:     cell(columns, row, "emp_id"),
		LeaveType: cell(columns, row, "leave_type"),
		StartDate: cell(columns, row, "start_date"),
		EndDate:   cell(columns, row, "end_date"),
		Status:    cell(columns, row, "status"),
	}, nil
}
