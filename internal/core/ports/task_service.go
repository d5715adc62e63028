package ports

import (
	"context"

	"github.com/Vladoochka/ProjectTask/internal/core/domain"
)

// CreateTaskInput carries the caller-writable fields at creation. Status
// always starts at waiting and the owner always comes from the actor.
type CreateTaskInput struct {
	EmployeeID string
	Report     string
}

// UpdateTaskInput carries the writable task fields. Nil means "leave as is".
// The owning customer is never writable; assignment, status, and report are.
type UpdateTaskInput struct {
	EmployeeID *string
	Status     *string
	Report     *string
}

// TaskMetrics receives task lifecycle counters from the service layer. The
// transport layer supplies the Prometheus-backed implementation.
type TaskMetrics interface {
	TaskCreated()
	TaskClosed()
	AuthzDenied(rule string)
}

// TaskService defines the task use cases. Every operation takes the resolved
// actor; visibility and mutation rules are enforced here, not in transport.
type TaskService interface {
	// List returns the actor's visible tasks. An actor with no profile gets
	// an empty, non-error result.
	List(ctx context.Context, actor domain.Actor) ([]*domain.Task, error)
	// Create requires a customer actor; the owner is stamped from the
	// actor's own profile, caller-supplied owners are ignored.
	Create(ctx context.Context, actor domain.Actor, input CreateTaskInput) (*domain.Task, error)
	Get(ctx context.Context, actor domain.Actor, id string) (*domain.Task, error)
	Update(ctx context.Context, actor domain.Actor, id string, input UpdateTaskInput) (*domain.Task, error)
	// Close sets status completed and stamps the completion time. It
	// requires authentication only: any identity may close any task by id.
	Close(ctx context.Context, id string) (*domain.Task, error)
}
