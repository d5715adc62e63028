package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/Vladoochka/ProjectTask/internal/core/domain"
	"github.com/Vladoochka/ProjectTask/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory identity and profile stubs, shared by the package tests.
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	clone := *user
	clone.ID = fmt.Sprintf("user_%d", r.nextID)
	r.users[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			clone := *user
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubCustomerRepo struct {
	customers map[string]*domain.Customer
	nextID    int
	findErr   error // if set, lookups return this error
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[string]*domain.Customer)}
}

func (r *stubCustomerRepo) Create(_ context.Context, customer *domain.Customer) (*domain.Customer, error) {
	r.nextID++
	clone := *customer
	clone.ID = fmt.Sprintf("cust_%d", r.nextID)
	r.customers[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id string) (*domain.Customer, error) {
	customer, ok := r.customers[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	clone := *customer
	return &clone, nil
}

func (r *stubCustomerRepo) FindByUserID(_ context.Context, userID string) (*domain.Customer, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, customer := range r.customers {
		if customer.UserID == userID {
			clone := *customer
			return &clone, nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

func (r *stubCustomerRepo) List(_ context.Context) ([]*domain.Customer, error) {
	out := []*domain.Customer{}
	for _, customer := range r.customers {
		clone := *customer
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubCustomerRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.customers[id]; !ok {
		return domain.ErrProfileNotFound
	}
	delete(r.customers, id)
	return nil
}

type stubEmployeeRepo struct {
	employees map[string]*domain.Employee
	nextID    int
	findErr   error // if set, lookups return this error
}

func newStubEmployeeRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{employees: make(map[string]*domain.Employee)}
}

func (r *stubEmployeeRepo) Create(_ context.Context, employee *domain.Employee) (*domain.Employee, error) {
	r.nextID++
	clone := *employee
	clone.ID = fmt.Sprintf("emp_%d", r.nextID)
	r.employees[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubEmployeeRepo) FindByID(_ context.Context, id string) (*domain.Employee, error) {
	employee, ok := r.employees[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	clone := *employee
	return &clone, nil
}

func (r *stubEmployeeRepo) FindByUserID(_ context.Context, userID string) (*domain.Employee, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, employee := range r.employees {
		if employee.UserID == userID {
			clone := *employee
			return &clone, nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

func (r *stubEmployeeRepo) List(_ context.Context) ([]*domain.Employee, error) {
	out := []*domain.Employee{}
	for _, employee := range r.employees {
		clone := *employee
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubEmployeeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.employees[id]; !ok {
		return domain.ErrProfileNotFound
	}
	delete(r.employees, id)
	return nil
}

// ---------------------------------------------------------------------------
// Fixture
// ---------------------------------------------------------------------------

type profileFixture struct {
	users     *stubUserRepo
	customers *stubCustomerRepo
	employees *stubEmployeeRepo
	tasks     *stubTaskRepo
	svc       *ProfileService
}

func newProfileFixture() *profileFixture {
	f := &profileFixture{
		users:     newStubUserRepo(),
		customers: newStubCustomerRepo(),
		employees: newStubEmployeeRepo(),
		tasks:     newStubTaskRepo(),
	}
	f.svc = NewProfileService(f.users, f.customers, f.employees, f.tasks, discardLogger)
	return f
}

func identityInput(username string) ports.CreateIdentityInput {
	return ports.CreateIdentityInput{
		Username: username,
		FullName: "Test Person",
		Email:    username + "@example.com",
		Phone:    "5551234",
		Password: "s3cret-pass",
	}
}

// ---------------------------------------------------------------------------
// Onboarding
// ---------------------------------------------------------------------------

func TestProfileService_CreateCustomer(t *testing.T) {
	f := newProfileFixture()

	customer, err := f.svc.CreateCustomer(context.Background(), asEmployee("emp_1", false), ports.CreateCustomerInput{
		Identity: identityInput("alice"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if customer.ID == "" || customer.UserID == "" {
		t.Fatalf("customer not fully populated: %+v", customer)
	}
	if customer.User == nil || customer.User.Role != domain.RoleCustomer {
		t.Fatalf("identity must carry the customer role: %+v", customer.User)
	}

	user := f.users.users[customer.UserID]
	if user == nil {
		t.Fatal("identity was not persisted")
	}
	if user.PasswordHash == "s3cret-pass" {
		t.Error("password must be stored hashed")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-pass")) != nil {
		t.Error("stored hash must verify against the original password")
	}
}

func TestProfileService_CreateEmployee(t *testing.T) {
	f := newProfileFixture()

	employee, err := f.svc.CreateEmployee(context.Background(), asEmployee("emp_1", false), ports.CreateEmployeeInput{
		Identity:          identityInput("bob"),
		CanAccessAllTasks: true,
		PhotoID:           "photo_7",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !employee.CanAccessAllTasks || employee.PhotoID != "photo_7" {
		t.Fatalf("employee fields not persisted: %+v", employee)
	}
	if employee.User == nil || employee.User.Role != domain.RoleEmployee {
		t.Fatalf("identity must carry the employee role: %+v", employee.User)
	}
}

func TestProfileService_OnboardingRequiresEmployeeActor(t *testing.T) {
	f := newProfileFixture()

	cases := []struct {
		name  string
		actor domain.Actor
	}{
		{"customer", asCustomer("cust_1")},
		{"no profile", domain.Actor{UserID: "u_1", Role: domain.RoleEmployee}},
		{"anonymous", domain.Actor{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := f.svc.CreateCustomer(context.Background(), tc.actor, ports.CreateCustomerInput{Identity: identityInput("x")}); !errors.Is(err, domain.ErrForbidden) {
				t.Errorf("CreateCustomer: expected ErrForbidden, got %v", err)
			}
			if _, err := f.svc.CreateEmployee(context.Background(), tc.actor, ports.CreateEmployeeInput{Identity: identityInput("y")}); !errors.Is(err, domain.ErrForbidden) {
				t.Errorf("CreateEmployee: expected ErrForbidden, got %v", err)
			}
		})
	}
	if len(f.users.users) != 0 {
		t.Errorf("denied onboarding must not persist identities, found %d", len(f.users.users))
	}
}

func TestProfileService_DuplicateUsername(t *testing.T) {
	f := newProfileFixture()
	operator := asEmployee("emp_1", false)

	if _, err := f.svc.CreateCustomer(context.Background(), operator, ports.CreateCustomerInput{Identity: identityInput("alice")}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := f.svc.CreateCustomer(context.Background(), operator, ports.CreateCustomerInput{Identity: identityInput("alice")})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestProfileService_BlankCredentialsRejected(t *testing.T) {
	f := newProfileFixture()
	operator := asEmployee("emp_1", false)

	input := identityInput("carol")
	input.Password = ""
	if _, err := f.svc.CreateCustomer(context.Background(), operator, ports.CreateCustomerInput{Identity: input}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("blank password: expected ErrInvalidCredentials, got %v", err)
	}

	input = identityInput("")
	if _, err := f.svc.CreateCustomer(context.Background(), operator, ports.CreateCustomerInput{Identity: input}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("blank username: expected ErrInvalidCredentials, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Listings
// ---------------------------------------------------------------------------

func TestProfileService_ListEmployeesCustomerOnly(t *testing.T) {
	f := newProfileFixture()
	f.employees.employees["emp_1"] = &domain.Employee{ID: "emp_1", UserID: "u_1"}

	employees, err := f.svc.ListEmployees(context.Background(), asCustomer("cust_1"))
	if err != nil {
		t.Fatalf("customer listing: %v", err)
	}
	if len(employees) != 1 {
		t.Fatalf("expected 1 employee, got %d", len(employees))
	}

	if _, err := f.svc.ListEmployees(context.Background(), asEmployee("emp_1", false)); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("employee must not list employees, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Deletion cascades
// ---------------------------------------------------------------------------

func TestProfileService_DeleteCustomerCascades(t *testing.T) {
	f := newProfileFixture()

	customer, err := f.svc.CreateCustomer(context.Background(), asEmployee("emp_1", false), ports.CreateCustomerInput{Identity: identityInput("alice")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	seedTask(f.tasks, customer.ID, "", domain.StatusWaiting)
	seedTask(f.tasks, customer.ID, "emp_1", domain.StatusInProgress)
	survivor := seedTask(f.tasks, "cust_other", "", domain.StatusWaiting)

	if err := f.svc.DeleteCustomer(context.Background(), customer.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, ok := f.customers.customers[customer.ID]; ok {
		t.Error("profile must be removed")
	}
	if _, ok := f.users.users[customer.UserID]; ok {
		t.Error("identity must be removed")
	}
	for id, task := range f.tasks.tasks {
		if task.CustomerID == customer.ID {
			t.Errorf("owned task %s must be removed", id)
		}
	}
	if _, ok := f.tasks.tasks[survivor.ID]; !ok {
		t.Error("other customers' tasks must survive")
	}
}

func TestProfileService_DeleteEmployeeUnassigns(t *testing.T) {
	f := newProfileFixture()

	employee, err := f.svc.CreateEmployee(context.Background(), asEmployee("emp_0", false), ports.CreateEmployeeInput{Identity: identityInput("bob")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	assigned := seedTask(f.tasks, "cust_1", employee.ID, domain.StatusInProgress)
	foreign := seedTask(f.tasks, "cust_1", "emp_other", domain.StatusInProgress)

	if err := f.svc.DeleteEmployee(context.Background(), employee.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, ok := f.employees.employees[employee.ID]; ok {
		t.Error("profile must be removed")
	}
	if _, ok := f.users.users[employee.UserID]; ok {
		t.Error("identity must be removed")
	}
	if got := f.tasks.tasks[assigned.ID]; got.EmployeeID != "" {
		t.Errorf("task must be unassigned, still points at %q", got.EmployeeID)
	}
	if got := f.tasks.tasks[foreign.ID]; got.EmployeeID != "emp_other" {
		t.Error("other employees' assignments must be untouched")
	}
}

func TestProfileService_DeleteMissingProfile(t *testing.T) {
	f := newProfileFixture()

	if err := f.svc.DeleteCustomer(context.Background(), "cust_ghost"); !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
	if err := f.svc.DeleteEmployee(context.Background(), "emp_ghost"); !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Actor resolution
// ---------------------------------------------------------------------------

func TestProfileService_ResolveCustomer(t *testing.T) {
	f := newProfileFixture()
	customer, err := f.svc.CreateCustomer(context.Background(), asEmployee("emp_1", false), ports.CreateCustomerInput{Identity: identityInput("alice")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	actor, err := f.svc.Resolve(context.Background(), customer.UserID)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !actor.IsCustomer() {
		t.Fatalf("expected customer actor, got %+v", actor)
	}
	if actor.Customer.ID != customer.ID {
		t.Errorf("resolved profile mismatch: %q vs %q", actor.Customer.ID, customer.ID)
	}
}

func TestProfileService_ResolveEmployeeWithOverride(t *testing.T) {
	f := newProfileFixture()
	employee, err := f.svc.CreateEmployee(context.Background(), asEmployee("emp_0", false), ports.CreateEmployeeInput{
		Identity:          identityInput("bob"),
		CanAccessAllTasks: true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	actor, err := f.svc.Resolve(context.Background(), employee.UserID)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !actor.IsEmployee() || !actor.HasOverride() {
		t.Fatalf("expected override employee actor, got %+v", actor)
	}
}

func TestProfileService_ResolveWithoutProfile(t *testing.T) {
	f := newProfileFixture()
	user, err := f.users.Create(context.Background(), &domain.User{Username: "orphan", Role: domain.RoleCustomer})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	actor, err := f.svc.Resolve(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("missing profile must not be an error: %v", err)
	}
	if actor.IsCustomer() || actor.IsEmployee() {
		t.Fatalf("expected profile-less actor, got %+v", actor)
	}
	if actor.UserID != user.ID || actor.Role != domain.RoleCustomer {
		t.Errorf("identity fields must still be populated: %+v", actor)
	}
}

func TestProfileService_ResolveProfileLookupFailure(t *testing.T) {
	f := newProfileFixture()
	customer, err := f.svc.CreateCustomer(context.Background(), asEmployee("emp_1", false), ports.CreateCustomerInput{Identity: identityInput("alice")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	employee, err := f.svc.CreateEmployee(context.Background(), asEmployee("emp_1", false), ports.CreateEmployeeInput{Identity: identityInput("bob")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// An infrastructure failure must propagate, not resolve as a
	// profile-less actor.
	storeErr := errors.New("connection reset by peer")
	f.customers.findErr = storeErr
	if _, err := f.svc.Resolve(context.Background(), customer.UserID); !errors.Is(err, storeErr) {
		t.Fatalf("customer lookup failure must propagate, got %v", err)
	}

	f.employees.findErr = storeErr
	if _, err := f.svc.Resolve(context.Background(), employee.UserID); !errors.Is(err, storeErr) {
		t.Fatalf("employee lookup failure must propagate, got %v", err)
	}
}

func TestProfileService_ResolveUnknownUser(t *testing.T) {
	f := newProfileFixture()
	if _, err := f.svc.Resolve(context.Background(), "user_ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
