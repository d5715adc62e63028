package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Vladoochka/ProjectTask/internal/core/domain"
	"github.com/Vladoochka/ProjectTask/internal/core/ports"
)

// TaskHandler handles HTTP requests for task operations.
type TaskHandler struct {
	service  ports.TaskService
	resolver ports.ActorResolver
}

func NewTaskHandler(service ports.TaskService, resolver ports.ActorResolver) *TaskHandler {
	return &TaskHandler{service: service, resolver: resolver}
}

// List handles GET /v1/tasks — the actor's visible task set.
//
// @Summary      List visible tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listTasksResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	actor, err := resolveActor(c, h.resolver)
	if err != nil {
		return err
	}

	tasks, err := h.service.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListTasksResponse(tasks))
}

// Create handles POST /v1/tasks. Requires a customer profile.
//
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTaskRequest  true  "Task details"
// @Success      201   {object}  taskResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	actor, err := resolveActor(c, h.resolver)
	if err != nil {
		return err
	}

	task, err := h.service.Create(c.Request().Context(), actor, ports.CreateTaskInput{
		EmployeeID: req.EmployeeID,
		Report:     req.Report,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toTaskResponse(task))
}

// Get handles GET /v1/tasks/:id.
//
// @Summary      Retrieve a task
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task id"
// @Success      200  {object}  taskResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/tasks/{id} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	actor, err := resolveActor(c, h.resolver)
	if err != nil {
		return err
	}

	task, err := h.service.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// Update handles PUT/PATCH /v1/tasks/:id. The response carries the refreshed
// update timestamp.
//
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Task id"
// @Param        body  body      updateTaskRequest  true  "Writable fields"
// @Success      200   {object}  taskResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/tasks/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	actor, err := resolveActor(c, h.resolver)
	if err != nil {
		return err
	}

	task, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), ports.UpdateTaskInput{
		EmployeeID: req.EmployeeID,
		Status:     req.Status,
		Report:     req.Report,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// Delete handles DELETE /v1/tasks/:id. Task deletion is forbidden for every
// role and status; the refusal happens before any lookup so it cannot leak
// whether the id exists.
//
// @Summary      Delete a task (always forbidden)
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task id"
// @Failure      403  {object}  errorResponse
// @Router       /v1/tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	return domain.ErrDeleteForbidden
}

// Close handles POST /v1/tasks/:id/close. Requires authentication only: any
// identity may close any task by id. The empty-report invariant still
// rejects closing an unreported task.
//
// @Summary      Close a task
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task id"
// @Success      200  {object}  taskResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/tasks/{id}/close [post]
func (h *TaskHandler) Close(c echo.Context) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}

	task, err := h.service.Close(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponse(task))
}
