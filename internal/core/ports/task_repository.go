package ports

import (
	"context"

	"github.com/Vladoochka/ProjectTask/internal/core/authz"
	"github.com/Vladoochka/ProjectTask/internal/core/domain"
)

// TaskRepository defines persistence operations for tasks. Implementations
// must call Task.Validate before every write so the completed-requires-report
// invariant holds at the storage boundary regardless of caller.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	// FindByID retrieves a task inside the given visibility scope. A task
	// outside the scope is reported as domain.ErrTaskNotFound.
	FindByID(ctx context.Context, id string, scope authz.Scope) (*domain.Task, error)
	// List returns all tasks inside the scope, newest first.
	List(ctx context.Context, scope authz.Scope) ([]*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) (*domain.Task, error)
	// DeleteByCustomer removes every task owned by the customer (cascade).
	DeleteByCustomer(ctx context.Context, customerID string) error
	// UnassignEmployee clears the assignee reference on every task assigned
	// to the employee, leaving the tasks themselves intact.
	UnassignEmployee(ctx context.Context, employeeID string) error
}
