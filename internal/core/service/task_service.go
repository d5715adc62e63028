package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Vladoochka/ProjectTask/internal/core/authz"
	"github.com/Vladoochka/ProjectTask/internal/core/domain"
	"github.com/Vladoochka/ProjectTask/internal/core/ports"
)

type TaskService struct {
	repo      ports.TaskRepository
	employees ports.EmployeeRepository
	metrics   ports.TaskMetrics
	logger    zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, employees ports.EmployeeRepository, metrics ports.TaskMetrics, logger zerolog.Logger) *TaskService {
	if metrics == nil {
		metrics = noopTaskMetrics{}
	}
	return &TaskService{repo: repo, employees: employees, metrics: metrics, logger: logger}
}

type noopTaskMetrics struct{}

func (noopTaskMetrics) TaskCreated() {}

func (noopTaskMetrics) TaskClosed() {}

func (noopTaskMetrics) AuthzDenied(string) {}

// List returns the tasks visible to the actor. An actor with neither profile
// gets an empty result without touching the repository.
func (s *TaskService) List(ctx context.Context, actor domain.Actor) ([]*domain.Task, error) {
	scope := authz.VisibilityScope(actor)
	if scope.Empty {
		return []*domain.Task{}, nil
	}
	return s.repo.List(ctx, scope)
}

// Create creates a task owned by the actor's own customer profile.
func (s *TaskService) Create(ctx context.Context, actor domain.Actor, input ports.CreateTaskInput) (*domain.Task, error) {
	if !actor.IsCustomer() {
		return nil, domain.ErrForbidden
	}

	if input.EmployeeID != "" {
		if err := s.checkAssignee(ctx, input.EmployeeID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	task := &domain.Task{
		CustomerID: actor.Customer.ID,
		EmployeeID: input.EmployeeID,
		Status:     domain.StatusWaiting,
		Report:     input.Report,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		s.logger.Error().Err(err).Str("customer_id", task.CustomerID).Msg("failed to create task")
		return nil, err
	}

	s.metrics.TaskCreated()
	s.logger.Info().Str("task_id", created.ID).Str("customer_id", created.CustomerID).Msg("task created")
	return created, nil
}

// Get retrieves a single task inside the actor's visible set. Tasks outside
// it surface as not found, never as forbidden.
func (s *TaskService) Get(ctx context.Context, actor domain.Actor, id string) (*domain.Task, error) {
	scope := authz.VisibilityScope(actor)
	if scope.Empty {
		return nil, domain.ErrTaskNotFound
	}
	return s.repo.FindByID(ctx, id, scope)
}

// Update applies the writable fields to a visible task, gated by the
// authorization pipeline and the status state machine.
func (s *TaskService) Update(ctx context.Context, actor domain.Actor, id string, input ports.UpdateTaskInput) (*domain.Task, error) {
	task, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if ok, rule := authz.CanModify(actor, task); !ok {
		s.metrics.AuthzDenied(rule)
		s.logger.Debug().Str("task_id", id).Str("rule", rule).Str("user_id", actor.UserID).Msg("task update denied")
		return nil, domain.ErrForbidden
	}

	if input.Status != nil {
		next := domain.TaskStatus(*input.Status)
		if !next.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidTransition, *input.Status)
		}
		if !task.Status.CanTransitionTo(next) {
			return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, task.Status, next)
		}
		task.Status = next
	}
	if input.EmployeeID != nil {
		if *input.EmployeeID != "" {
			if err := s.checkAssignee(ctx, *input.EmployeeID); err != nil {
				return nil, err
			}
		}
		task.EmployeeID = *input.EmployeeID
	}
	if input.Report != nil {
		task.Report = *input.Report
	}
	task.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, task)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("task_id", id).Str("status", string(updated.Status)).Msg("task updated")
	return updated, nil
}

// Close sets status completed and stamps the completion time, then persists.
// Deliberately no per-caller authorization beyond authentication: any
// identity may close any task by id. The entity-level invariant still makes
// this fail while the report is empty.
func (s *TaskService) Close(ctx context.Context, id string) (*domain.Task, error) {
	task, err := s.repo.FindByID(ctx, id, authz.Scope{All: true})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	task.Status = domain.StatusCompleted
	task.CompletedAt = &now
	task.UpdatedAt = now

	closed, err := s.repo.Update(ctx, task)
	if err != nil {
		return nil, err
	}

	s.metrics.TaskClosed()
	s.logger.Info().Str("task_id", id).Msg("task closed")
	return closed, nil
}

// checkAssignee verifies the employee being assigned actually exists. A
// missing profile becomes ErrUnknownEmployee; other lookup failures propagate.
func (s *TaskService) checkAssignee(ctx context.Context, employeeID string) error {
	if _, err := s.employees.FindByID(ctx, employeeID); err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return fmt.Errorf("%w: %q", domain.ErrUnknownEmployee, employeeID)
		}
		return err
	}
	return nil
}
