package ports

import (
	"context"

	"github.com/Vladoochka/ProjectTask/internal/core/domain"
)

// CreateIdentityInput carries the identity fields shared by both profile
// creation operations.
type CreateIdentityInput struct {
	Username string
	FullName string
	Email    string
	Phone    string
	Password string
}

// CreateCustomerInput creates an identity with the customer role plus its
// profile in one operation.
type CreateCustomerInput struct {
	Identity CreateIdentityInput
}

// CreateEmployeeInput creates an identity with the employee role plus its
// profile in one operation.
type CreateEmployeeInput struct {
	Identity          CreateIdentityInput
	CanAccessAllTasks bool
	PhotoID           string
}

// ProfileService implements customer/employee onboarding and the cascade
// contract on profile deletion. Both create operations require an employee
// actor: accounts are onboarded by employees, never self-registered.
type ProfileService interface {
	CreateCustomer(ctx context.Context, actor domain.Actor, input CreateCustomerInput) (*domain.Customer, error)
	ListCustomers(ctx context.Context, actor domain.Actor) ([]*domain.Customer, error)
	CreateEmployee(ctx context.Context, actor domain.Actor, input CreateEmployeeInput) (*domain.Employee, error)
	// ListEmployees is restricted to customer actors.
	ListEmployees(ctx context.Context, actor domain.Actor) ([]*domain.Employee, error)
	// DeleteCustomer cascades: owned tasks first, then profile and identity.
	DeleteCustomer(ctx context.Context, customerID string) error
	// DeleteEmployee unassigns the employee's tasks, then removes profile
	// and identity. Tasks survive.
	DeleteEmployee(ctx context.Context, employeeID string) error
}

// ActorResolver resolves an authenticated user id into a full actor. A user
// with no matching profile resolves to a profile-less actor, not an error.
type ActorResolver interface {
	Resolve(ctx context.Context, userID string) (domain.Actor, error)
}
