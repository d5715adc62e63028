package domain

import (
	"errors"
	"testing"
)

func TestTaskStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from TaskStatus
		to   TaskStatus
		want bool
	}{
		{StatusWaiting, StatusInProgress, true},
		{StatusWaiting, StatusCompleted, true},
		{StatusInProgress, StatusCompleted, true},
		{StatusInProgress, StatusWaiting, false},
		{StatusCompleted, StatusWaiting, false},
		{StatusCompleted, StatusInProgress, false},
		// re-saving the same status is always allowed
		{StatusWaiting, StatusWaiting, true},
		{StatusCompleted, StatusCompleted, true},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestTask_Validate_CompletedRequiresReport(t *testing.T) {
	task := &Task{Status: StatusCompleted, Report: ""}
	if err := task.Validate(); !errors.Is(err, ErrEmptyReport) {
		t.Fatalf("expected ErrEmptyReport, got %v", err)
	}

	task.Report = "done"
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got %v", err)
	}
}

func TestTask_Validate_EmptyReportAllowedBeforeCompletion(t *testing.T) {
	for _, status := range []TaskStatus{StatusWaiting, StatusInProgress} {
		task := &Task{Status: status, Report: ""}
		if err := task.Validate(); err != nil {
			t.Errorf("status %s with empty report must be valid, got %v", status, err)
		}
	}
}

func TestTask_AssignedTo(t *testing.T) {
	task := &Task{EmployeeID: "emp_1"}
	if !task.Assigned() {
		t.Error("task with employee must be assigned")
	}
	if !task.AssignedTo("emp_1") {
		t.Error("expected AssignedTo(emp_1) to be true")
	}
	if task.AssignedTo("emp_2") {
		t.Error("expected AssignedTo(emp_2) to be false")
	}

	unassigned := &Task{}
	if unassigned.Assigned() {
		t.Error("task without employee must be unassigned")
	}
	if unassigned.AssignedTo("") {
		t.Error("unassigned task must not report assignment to the empty id")
	}
}
