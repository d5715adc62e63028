package handler

import "time"

// --- Request / Response types ---

type createTaskRequest struct {
	// EmployeeID optionally pre-assigns an employee. The owning customer is
	// always the creator's own profile; any supplied owner is ignored.
	EmployeeID string `json:"employee_id"`
	Report     string `json:"report"`
}

type updateTaskRequest struct {
	EmployeeID *string `json:"employee_id"`
	Status     *string `json:"status" validate:"omitempty,oneof=waiting in_progress completed"`
	Report     *string `json:"report"`
}

type taskResponse struct {
	ID          string     `json:"id"`
	CustomerID  string     `json:"customer_id"`
	EmployeeID  string     `json:"employee_id,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Report      string     `json:"report"`
}

type listTasksResponse struct {
	Data []taskResponse `json:"data"`
}
