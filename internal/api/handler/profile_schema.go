package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type identityRequest struct {
	Username string `json:"username"  validate:"required"`
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email"     validate:"required,email"`
	Phone    string `json:"phone"     validate:"required"`
	Password string `json:"password"  validate:"required,min=8"`
}

type createCustomerRequest struct {
	User identityRequest `json:"user" validate:"required"`
}

type createEmployeeRequest struct {
	User              identityRequest `json:"user" validate:"required"`
	CanAccessAllTasks bool            `json:"can_access_all_tasks"`
	PhotoID           string          `json:"photo_id"`
}

type identityResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

type customerResponse struct {
	ID   string            `json:"id"`
	User *identityResponse `json:"user,omitempty"`
}

type employeeResponse struct {
	ID                string            `json:"id"`
	CanAccessAllTasks bool              `json:"can_access_all_tasks"`
	PhotoID           string            `json:"photo_id,omitempty"`
	User              *identityResponse `json:"user,omitempty"`
}
