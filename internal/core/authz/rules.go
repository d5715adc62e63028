// Package authz contains the task authorization core: an ordered list of
// rules evaluated over (actor, task, action), short-circuiting on the first
// verdict, and the visibility scope used to filter list/read queries.
package authz

import "github.com/Vladoochka/ProjectTask/internal/core/domain"

// Action classifies the request for rule evaluation purposes.
type Action int

const (
	ActionRead Action = iota
	ActionWrite
)

// Verdict is the outcome of a single rule.
type Verdict int

const (
	// Skip means the rule does not apply; evaluation continues.
	Skip Verdict = iota
	Allow
	Deny
)

// Rule is a single authorization predicate. Rules are evaluated in order;
// the first Allow or Deny wins.
type Rule struct {
	Name  string
	Check func(actor domain.Actor, task *domain.Task, action Action) Verdict
}

// taskRules mirrors the mutation precedence: the terminal-state check runs
// before anything else, then the waiting-claim rule for unassigned or
// self-assigned tasks, then owner/override access for tasks held by another
// employee.
var taskRules = []Rule{
	{Name: "read_always", Check: readAlways},
	{Name: "read_only_if_completed", Check: readOnlyIfCompleted},
	{Name: "modify_when_waiting", Check: modifyWhenWaiting},
	{Name: "owner_or_override", Check: ownerOrOverride},
}

// CanModify runs the task rule pipeline for a write. The default, when no
// rule fires, is deny.
func CanModify(actor domain.Actor, task *domain.Task) (bool, string) {
	return evaluate(actor, task, ActionWrite)
}

func evaluate(actor domain.Actor, task *domain.Task, action Action) (bool, string) {
	for _, r := range taskRules {
		switch r.Check(actor, task, action) {
		case Allow:
			return true, r.Name
		case Deny:
			return false, r.Name
		}
	}
	return false, "default_deny"
}

// readAlways: safe methods are always allowed once the task is inside the
// actor's visible set.
func readAlways(_ domain.Actor, _ *domain.Task, action Action) Verdict {
	if action == ActionRead {
		return Allow
	}
	return Skip
}

// readOnlyIfCompleted: completed is a terminal, read-only state.
func readOnlyIfCompleted(_ domain.Actor, task *domain.Task, _ Action) Verdict {
	if task.Status == domain.StatusCompleted {
		return Deny
	}
	return Skip
}

// modifyWhenWaiting: an unassigned task, or one assigned to the requesting
// employee, may be modified only while it still waits for an executor. This
// is the claiming path; any other status blocks it.
func modifyWhenWaiting(actor domain.Actor, task *domain.Task, _ Action) Verdict {
	selfAssigned := actor.IsEmployee() && task.AssignedTo(actor.Employee.ID)
	if !task.Assigned() || selfAssigned {
		if task.Status == domain.StatusWaiting {
			return Allow
		}
		return Deny
	}
	return Skip
}

// ownerOrOverride: a task held by a different employee may be modified by the
// customer who owns it, or by an employee with the access-all override.
func ownerOrOverride(actor domain.Actor, task *domain.Task, _ Action) Verdict {
	if actor.IsCustomer() && task.CustomerID == actor.Customer.ID {
		return Allow
	}
	if actor.HasOverride() {
		return Allow
	}
	return Deny
}
