package domain

import (
	"errors"
	"time"
)

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	StatusWaiting    TaskStatus = "waiting"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
)

// validTransitions defines the allowed state machine transitions.
// StatusCompleted is terminal.
var validTransitions = map[TaskStatus][]TaskStatus{
	StatusWaiting:    {StatusInProgress, StatusCompleted},
	StatusInProgress: {StatusCompleted},
}

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrEmptyReport        = errors.New("report must not be empty when completing a task")
	ErrUnknownEmployee    = errors.New("assigned employee does not exist")
	ErrForbidden          = errors.New("access forbidden")
	ErrDeleteForbidden    = errors.New("task deletion is forbidden")
	ErrTokenRevoked       = errors.New("token revoked")
)

// CanTransitionTo reports whether a transition from current status to next is
// valid. A status may always be re-saved unchanged.
func (s TaskStatus) CanTransitionTo(next TaskStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Valid reports whether s is one of the known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusWaiting, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Task is the work item: owned by exactly one customer, optionally assigned
// to one employee. EmployeeID empty means unassigned.
type Task struct {
	ID          string     `json:"id"`
	CustomerID  string     `json:"customer_id"`
	EmployeeID  string     `json:"employee_id,omitempty"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Report      string     `json:"report"`
}

// Assigned reports whether the task has an assigned employee.
func (t *Task) Assigned() bool { return t.EmployeeID != "" }

// AssignedTo reports whether the task is assigned to the given employee.
func (t *Task) AssignedTo(employeeID string) bool {
	return t.EmployeeID != "" && t.EmployeeID == employeeID
}

// Validate enforces the entity-level save invariant: a task may only carry
// status completed while its report is non-empty. Repositories call this
// before every write so the rule holds regardless of caller.
func (t *Task) Validate() error {
	if t.Status == StatusCompleted && t.Report == "" {
		return ErrEmptyReport
	}
	return nil
}
