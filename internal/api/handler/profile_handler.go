package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Vladoochka/ProjectTask/internal/core/domain"
	"github.com/Vladoochka/ProjectTask/internal/core/ports"
)

// ProfileHandler handles customer and employee onboarding and listings.
type ProfileHandler struct {
	service  ports.ProfileService
	resolver ports.ActorResolver
}

func NewProfileHandler(service ports.ProfileService, resolver ports.ActorResolver) *ProfileHandler {
	return &ProfileHandler{service: service, resolver: resolver}
}

// CreateCustomer handles POST /v1/customers.
//
// @Summary      Create a customer profile with its identity
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCustomerRequest  true  "Customer details"
// @Success      201   {object}  customerResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/customers [post]
func (h *ProfileHandler) CreateCustomer(c echo.Context) error {
	var req createCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actor, err := resolveActor(c, h.resolver)
	if err != nil {
		return err
	}

	customer, err := h.service.CreateCustomer(c.Request().Context(), actor, ports.CreateCustomerInput{
		Identity: toIdentityInput(req.User),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toCustomerResponse(customer))
}

// ListCustomers handles GET /v1/customers.
//
// @Summary      List customer profiles
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   customerResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/customers [get]
func (h *ProfileHandler) ListCustomers(c echo.Context) error {
	actor, err := resolveActor(c, h.resolver)
	if err != nil {
		return err
	}

	customers, err := h.service.ListCustomers(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	out := make([]customerResponse, len(customers))
	for i, customer := range customers {
		out[i] = toCustomerResponse(customer)
	}
	return c.JSON(http.StatusOK, out)
}

// CreateEmployee handles POST /v1/employees.
//
// @Summary      Create an employee profile with its identity
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEmployeeRequest  true  "Employee details"
// @Success      201   {object}  employeeResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/employees [post]
func (h *ProfileHandler) CreateEmployee(c echo.Context) error {
	var req createEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actor, err := resolveActor(c, h.resolver)
	if err != nil {
		return err
	}

	employee, err := h.service.CreateEmployee(c.Request().Context(), actor, ports.CreateEmployeeInput{
		Identity:          toIdentityInput(req.User),
		CanAccessAllTasks: req.CanAccessAllTasks,
		PhotoID:           req.PhotoID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toEmployeeResponse(employee))
}

// ListEmployees handles GET /v1/employees. Customers only.
//
// @Summary      List employee profiles
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   employeeResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/employees [get]
func (h *ProfileHandler) ListEmployees(c echo.Context) error {
	actor, err := resolveActor(c, h.resolver)
	if err != nil {
		return err
	}

	employees, err := h.service.ListEmployees(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	out := make([]employeeResponse, len(employees))
	for i, employee := range employees {
		out[i] = toEmployeeResponse(employee)
	}
	return c.JSON(http.StatusOK, out)
}

// --- Mappers ---

func toIdentityInput(r identityRequest) ports.CreateIdentityInput {
	return ports.CreateIdentityInput{
		Username: r.Username,
		FullName: r.FullName,
		Email:    r.Email,
		Phone:    r.Phone,
		Password: r.Password,
	}
}

func toIdentityResponse(u *domain.User) *identityResponse {
	if u == nil {
		return nil
	}
	return &identityResponse{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Email:    u.Email,
		Phone:    u.Phone,
		Role:     u.Role,
	}
}

func toCustomerResponse(c *domain.Customer) customerResponse {
	return customerResponse{ID: c.ID, User: toIdentityResponse(c.User)}
}

func toEmployeeResponse(e *domain.Employee) employeeResponse {
	return employeeResponse{
		ID:                e.ID,
		CanAccessAllTasks: e.CanAccessAllTasks,
		PhotoID:           e.PhotoID,
		User:              toIdentityResponse(e.User),
	}
}
