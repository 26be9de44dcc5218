package employee

// Employee is the store representation of an employee row. ID and CreatedAt
// are assigned by the store on insert and passed through untouched.
type Employee struct {
	ID         string `json:"id,omitempty"`
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	CreatedAt  string `json:"created_at,omitempty"`
}
