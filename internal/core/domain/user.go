package domain

import "time"

const (
	RoleCustomer = "customer"
	RoleEmployee = "employee"
)

// User models an identity in the system. Role is fixed at creation; no
// operation changes it.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Customer is the one-to-one profile extension of a customer-role identity.
type Customer struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	User   *User  `json:"user,omitempty"`
}

// Employee is the one-to-one profile extension of an employee-role identity.
// CanAccessAllTasks grants visibility and mutation across all tasks
// regardless of assignment.
type Employee struct {
	ID                string `json:"id"`
	UserID            string `json:"user_id"`
	CanAccessAllTasks bool   `json:"can_access_all_tasks"`
	PhotoID           string `json:"photo_id,omitempty"`
	User              *User  `json:"user,omitempty"`
}

// Actor is a resolved requester: an identity paired with the profile matching
// its role. Pairing the two in one value keeps a role without a backing
// profile out of the authorization checks. An actor with neither profile is
// valid and sees an empty task set.
type Actor struct {
	UserID   string
	Role     string
	Customer *Customer
	Employee *Employee
}

// CustomerActor builds an actor from a customer profile.
func CustomerActor(c *Customer) Actor {
	return Actor{UserID: c.UserID, Role: RoleCustomer, Customer: c}
}

// EmployeeActor builds an actor from an employee profile.
func EmployeeActor(e *Employee) Actor {
	return Actor{UserID: e.UserID, Role: RoleEmployee, Employee: e}
}

func (a Actor) IsCustomer() bool { return a.Customer != nil }

func (a Actor) IsEmployee() bool { return a.Employee != nil }

// HasOverride reports whether the actor is an employee with the
// access-all-tasks flag.
func (a Actor) HasOverride() bool {
	return a.Employee != nil && a.Employee.CanAccessAllTasks
}
