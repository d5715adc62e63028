package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Vladoochka/ProjectTask/internal/core/domain"
	"github.com/Vladoochka/ProjectTask/internal/core/ports"
)

// ProfileService implements customer/employee onboarding, listings, and the
// cascade contract on deletion. Mongo has no foreign-key cascades, so the
// cascade steps are orchestrated here.
type ProfileService struct {
	users     ports.UserRepository
	customers ports.CustomerRepository
	employees ports.EmployeeRepository
	tasks     ports.TaskRepository
	logger    zerolog.Logger
}

func NewProfileService(
	users ports.UserRepository,
	customers ports.CustomerRepository,
	employees ports.EmployeeRepository,
	tasks ports.TaskRepository,
	logger zerolog.Logger,
) *ProfileService {
	return &ProfileService{
		users:     users,
		customers: customers,
		employees: employees,
		tasks:     tasks,
		logger:    logger,
	}
}

// CreateCustomer creates a customer-role identity plus its profile. Only an
// employee actor may onboard accounts; customers cannot self-register.
func (s *ProfileService) CreateCustomer(ctx context.Context, actor domain.Actor, input ports.CreateCustomerInput) (*domain.Customer, error) {
	if !actor.IsEmployee() {
		return nil, domain.ErrForbidden
	}

	user, err := s.createIdentity(ctx, input.Identity, domain.RoleCustomer)
	if err != nil {
		return nil, err
	}

	customer, err := s.customers.Create(ctx, &domain.Customer{UserID: user.ID, User: user})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("customer_id", customer.ID).Str("username", user.Username).Msg("customer onboarded")
	return customer, nil
}

func (s *ProfileService) ListCustomers(ctx context.Context, _ domain.Actor) ([]*domain.Customer, error) {
	return s.customers.List(ctx)
}

// CreateEmployee creates an employee-role identity plus its profile. Gated on
// the actor already being an employee, same as CreateCustomer; there is no
// bootstrap path from an empty system through the API.
func (s *ProfileService) CreateEmployee(ctx context.Context, actor domain.Actor, input ports.CreateEmployeeInput) (*domain.Employee, error) {
	if !actor.IsEmployee() {
		return nil, domain.ErrForbidden
	}

	user, err := s.createIdentity(ctx, input.Identity, domain.RoleEmployee)
	if err != nil {
		return nil, err
	}

	employee, err := s.employees.Create(ctx, &domain.Employee{
		UserID:            user.ID,
		CanAccessAllTasks: input.CanAccessAllTasks,
		PhotoID:           input.PhotoID,
		User:              user,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("employee_id", employee.ID).Str("username", user.Username).Msg("employee onboarded")
	return employee, nil
}

// ListEmployees is restricted to customer actors.
func (s *ProfileService) ListEmployees(ctx context.Context, actor domain.Actor) ([]*domain.Employee, error) {
	if !actor.IsCustomer() {
		return nil, domain.ErrForbidden
	}
	return s.employees.List(ctx)
}

// DeleteCustomer cascades: owned tasks first, then the profile, then the
// identity.
func (s *ProfileService) DeleteCustomer(ctx context.Context, customerID string) error {
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return err
	}

	if err := s.tasks.DeleteByCustomer(ctx, customerID); err != nil {
		return err
	}
	if err := s.customers.Delete(ctx, customerID); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, customer.UserID); err != nil {
		return err
	}

	s.logger.Info().Str("customer_id", customerID).Msg("customer deleted with owned tasks")
	return nil
}

// DeleteEmployee clears the employee's task assignments (tasks survive as
// unassigned), then removes the profile and identity.
func (s *ProfileService) DeleteEmployee(ctx context.Context, employeeID string) error {
	employee, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		return err
	}

	if err := s.tasks.UnassignEmployee(ctx, employeeID); err != nil {
		return err
	}
	if err := s.employees.Delete(ctx, employeeID); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, employee.UserID); err != nil {
		return err
	}

	s.logger.Info().Str("employee_id", employeeID).Msg("employee deleted, tasks unassigned")
	return nil
}

func (s *ProfileService) createIdentity(ctx context.Context, input ports.CreateIdentityInput, role string) (*domain.User, error) {
	if input.Username == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return s.users.Create(ctx, &domain.User{
		Username:     input.Username,
		FullName:     input.FullName,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// Resolve builds the actor for an authenticated user id: the identity plus
// whichever profile matches its role. A user with no profile record resolves
// to a profile-less actor with empty visibility, which is a defined outcome.
// Any other repository failure propagates; it must not masquerade as a
// missing profile.
func (s *ProfileService) Resolve(ctx context.Context, userID string) (domain.Actor, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return domain.Actor{}, err
	}

	actor := domain.Actor{UserID: user.ID, Role: user.Role}
	switch user.Role {
	case domain.RoleCustomer:
		customer, err := s.customers.FindByUserID(ctx, user.ID)
		if err != nil {
			if !errors.Is(err, domain.ErrProfileNotFound) {
				return domain.Actor{}, err
			}
			break
		}
		actor.Customer = customer
	case domain.RoleEmployee:
		employee, err := s.employees.FindByUserID(ctx, user.ID)
		if err != nil {
			if !errors.Is(err, domain.ErrProfileNotFound) {
				return domain.Actor{}, err
			}
			break
		}
		actor.Employee = employee
	}
	return actor, nil
}
