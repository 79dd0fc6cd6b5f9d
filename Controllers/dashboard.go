package Controllers

import (
	"github.com/gofiber/fiber/v2"

	"HRKeeper/Models"
)

// Summary holds the four dashboard counters
type Summary struct {
	TotalEmployees  int `json:"total_employees"`
	TotalAttendance int `json:"total_attendance"`
	PendingLeaves   int `json:"pending_leaves"`
	TotalOvertime   int `json:"total_overtime"`
}

// DashboardController handles the dashboard view and API
type DashboardController struct {
	Stores Models.Stores
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(stores Models.Stores) *DashboardController {
	return &DashboardController{Stores: stores}
}

// Summarize reloads all four tables and counts them.
func (c *DashboardController) Summarize() (Summary, error) {
	var summary Summary

	employees, err := c.Stores.Employees.Load()
	if err != nil {
		return summary, err
	}
	attendance, err := c.Stores.Attendance.Load()
	if err != nil {
		return summary, err
	}
	leaves, err := c.Stores.Leaves.Load()
	if err != nil {
		return summary, err
	}
	overtime, err := c.Stores.Overtime.Load()
	if err != nil {
		return summary, err
	}

	summary.TotalEmployees = employees.Len()
	summary.TotalAttendance = attendance.Len()
	// Exact, case-sensitive match
	summary.PendingLeaves = leaves.Count("status", Models.LeaveStatusPending)
	summary.TotalOvertime = overtime.Len()
	return summary, nil
}

// Page renders the dashboard metrics
func (c *DashboardController) Page(ctx *fiber.Ctx) error {
	p := page{View: "dashboard", Title: "HR Dashboard", Active: "dashboard"}

	summary, err := c.Summarize()
	if err != nil {
		p, status := p.withError(err)
		return render(ctx, status, p)
	}

	p.Extra = fiber.Map{"Summary": summary}
	return render(ctx, fiber.StatusOK, p)
}

// Metrics returns the dashboard counters as JSON
func (c *DashboardController) Metrics(ctx *fiber.Ctx) error {
	summary, err := c.Summarize()
	if err != nil {
		return jsonError(ctx, err)
	}
	return ctx.JSON(summary)
}
