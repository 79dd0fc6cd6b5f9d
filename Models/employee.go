package Models

import "strings"

type Employee struct {
	EmpID      string `json:"emp_id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Department string `json:"department"`
}

func NewEmployee(empID, name, department string) (Employee, error) {
	employee := Employee{
		EmpID:      strings.TrimSpace(empID),
		Name:       strings.TrimSpace(name),
		Department: strings.TrimSpace(department),
	}
	if err := Validate(employee); err != nil {
		return Employee{}, err
	}
	return employee, nil
}

// Row encodes the employee in EmployeeSchema order.
func (e Employee) Row() []string {
	return []string{e.EmpID, e.Name, e.Department}
}

// EmployeeFromRow decodes a stored row by column name. Stored rows are not re-validated.
func EmployeeFromRow(columns, row []string) (Employee, error) {
	return Employee{
		EmpID:      cell(columns, row, "emp_id"),
		Name:       cell(columns, row, "name"),
		Department: cell(columns, row, "department"),
	}, nil
}
