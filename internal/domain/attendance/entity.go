package attendance

// Record is the store representation of an attendance row, one per
// (employee_id, date) pair. ID and CreatedAt are assigned by the store.
type Record struct {
	ID         int64  `json:"id,omitempty"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at,omitempty"`
}

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)
