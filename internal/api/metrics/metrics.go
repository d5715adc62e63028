// Package metrics defines and registers the custom Prometheus metrics for the
// task-assignment API. It is the single source of truth for metric names,
// labels, and help strings; registration happens via promauto at import time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tasksystem"

// TasksCreatedTotal counts newly created tasks.
var TasksCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_created_total",
		Help:      "Total number of tasks created.",
	},
)

// TasksClosedTotal counts tasks closed through the close operation.
var TasksClosedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_closed_total",
		Help:      "Total number of tasks closed.",
	},
)

// AuthzDenialsTotal counts mutation attempts rejected by the authorization
// pipeline.
// Label:
//   - rule: the name of the rule that produced the denial (e.g. "read_only_if_completed")
var AuthzDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denials_total",
		Help:      "Total number of task mutations denied, by rule.",
	},
	[]string{"rule"},
)

// TaskRecorder bridges the service layer's metrics port onto the Prometheus
// counters above.
type TaskRecorder struct{}

func (TaskRecorder) TaskCreated() { TasksCreatedTotal.Inc() }

func (TaskRecorder) TaskClosed() { TasksClosedTotal.Inc() }

func (TaskRecorder) AuthzDenied(rule string) { AuthzDenialsTotal.WithLabelValues(rule).Inc() }

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)
