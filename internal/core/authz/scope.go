package authz

import "github.com/Vladoochka/ProjectTask/internal/core/domain"

// Scope describes which tasks an actor may see. Repositories translate it
// into a storage query; CanView applies it to a loaded task.
type Scope struct {
	// All grants unfiltered visibility (employee with override).
	All bool
	// CustomerID, when non-empty, restricts to tasks owned by this customer.
	CustomerID string
	// EmployeeID, when non-empty, restricts to tasks assigned to this
	// employee or to unassigned tasks.
	EmployeeID string
	// Empty means the actor has no profile: a defined, non-error empty set.
	Empty bool
}

// VisibilityScope derives the task visibility for an actor.
func VisibilityScope(actor domain.Actor) Scope {
	switch {
	case actor.IsCustomer():
		return Scope{CustomerID: actor.Customer.ID}
	case actor.HasOverride():
		return Scope{All: true}
	case actor.IsEmployee():
		return Scope{EmployeeID: actor.Employee.ID}
	default:
		return Scope{Empty: true}
	}
}

// CanView reports whether a task falls inside the scope. Callers surface a
// not-found, never a forbidden, when this returns false, so invisible tasks
// do not leak existence.
func (s Scope) CanView(task *domain.Task) bool {
	switch {
	case s.Empty:
		return false
	case s.All:
		return true
	case s.CustomerID != "":
		return task.CustomerID == s.CustomerID
	case s.EmployeeID != "":
		return !task.Assigned() || task.AssignedTo(s.EmployeeID)
	}
	return false
}
