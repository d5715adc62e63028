package handler

import "github.com/Vladoochka/ProjectTask/internal/core/domain"

// --- Service result → HTTP response ---

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		CustomerID:  t.CustomerID,
		EmployeeID:  t.EmployeeID,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt.UTC(),
		UpdatedAt:   t.UpdatedAt.UTC(),
		CompletedAt: t.CompletedAt,
		Report:      t.Report,
	}
}

func toListTasksResponse(tasks []*domain.Task) listTasksResponse {
	items := make([]taskResponse, len(tasks))
	for i, t := range tasks {
		items[i] = toTaskResponse(t)
	}
	return listTasksResponse{Data: items}
}
