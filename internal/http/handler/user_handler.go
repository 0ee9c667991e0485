package handler

import (
	"net/http"

	"github.com/devNevtis/salesToolsAdminSpace/internal/domain"
	"github.com/devNevtis/salesToolsAdminSpace/internal/repository"
	"github.com/devNevtis/salesToolsAdminSpace/internal/service"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService *service.UserService
	logger      *zap.Logger
}

func NewUserHandler(userService *service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// List godoc
// @Summary List users
// @Description Get paginated list of users with optional filters
// @Tags Users
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Param search query string false "Search by name or email"
// @Param role query string false "Filter by role" Enums(owner, manager, sale)
// @Param companyId query string false "Filter by company ID"
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.UserDTO}
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /users [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePaging(r)

	filter := repository.UserFilter{
		Search: r.URL.Query().Get("search"),
	}
	if role := r.URL.Query().Get("role"); role != "" {
		if !domain.KnownRole(domain.UserRole(role)) {
			respondWithError(w, http.StatusBadRequest, "Invalid role filter")
			return
		}
		filter.Role = domain.UserRole(role)
	}
	if companyID := r.URL.Query().Get("companyId"); companyID != "" {
		id, err := uuid.Parse(companyID)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid companyId filter")
			return
		}
		filter.CompanyID = &id
	}

	result, err := h.userService.List(r.Context(), page, pageSize, filter)
	if err != nil {
		handleServiceError(w, h.logger, err, "list users")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// ListManagers godoc
// @Summary List managers
// @Description Get manager users for the salesperson form's manager picker
// @Tags Users
// @Produce json
// @Param companyId query string false "Filter by company ID"
// @Success 200 {array} domain.UserDTO
// @Failure 400 {object} domain.ErrorResponse
// @Router /users/managers [get]
func (h *UserHandler) ListManagers(w http.ResponseWriter, r *http.Request) {
	var companyID *uuid.UUID
	if raw := r.URL.Query().Get("companyId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid companyId filter")
			return
		}
		companyID = &id
	}

	managers, err := h.userService.ListManagers(r.Context(), companyID)
	if err != nil {
		handleServiceError(w, h.logger, err, "list managers")
		return
	}
	respondJSON(w, http.StatusOK, managers)
}

// Get godoc
// @Summary Get user
// @Description Get a user by ID
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} domain.UserDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err, "get user")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// Create godoc
// @Summary Create user
// @Description Validate and create a new user. The payload's role tag selects the schema variant.
// @Tags Users
// @Accept json
// @Produce json
// @Param user body domain.UserInput true "User payload"
// @Success 201 {object} domain.UserDTO
// @Failure 400 {object} domain.APIError
// @Failure 409 {object} domain.ErrorResponse
// @Router /users [post]
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, "")
}

// CreateOwner godoc
// @Summary Create owner
// @Description Create a user whose role must be owner
// @Tags Users
// @Accept json
// @Produce json
// @Param user body domain.UserInput true "Owner payload"
// @Success 201 {object} domain.UserDTO
// @Failure 400 {object} domain.APIError
// @Failure 409 {object} domain.ErrorResponse
// @Router /users/owner [post]
func (h *UserHandler) CreateOwner(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, domain.RoleOwner)
}

// CreateManager godoc
// @Summary Create manager
// @Description Create a user whose role must be manager
// @Tags Users
// @Accept json
// @Produce json
// @Param user body domain.UserInput true "Manager payload"
// @Success 201 {object} domain.UserDTO
// @Failure 400 {object} domain.APIError
// @Failure 409 {object} domain.ErrorResponse
// @Router /users/manager [post]
func (h *UserHandler) CreateManager(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, domain.RoleManager)
}

// CreateSale godoc
// @Summary Create salesperson
// @Description Create a user whose role must be sale
// @Tags Users
// @Accept json
// @Produce json
// @Param user body domain.UserInput true "Salesperson payload"
// @Success 201 {object} domain.UserDTO
// @Failure 400 {object} domain.APIError
// @Failure 409 {object} domain.ErrorResponse
// @Router /users/sale [post]
func (h *UserHandler) CreateSale(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, domain.RoleSale)
}

func (h *UserHandler) create(w http.ResponseWriter, r *http.Request, endpointRole domain.UserRole) {
	var in domain.UserInput
	if !decodeBody(w, r, &in) {
		return
	}

	user, err := h.userService.Create(r.Context(), &in, endpointRole)
	if err != nil {
		handleServiceError(w, h.logger, err, "create user")
		return
	}
	respondJSON(w, http.StatusCreated, user)
}

// Update godoc
// @Summary Update user
// @Description Validate and update an existing user. Role cannot be changed. Omitting the password keeps the current one.
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body domain.UserInput true "User payload"
// @Success 200 {object} domain.UserDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /users/{id} [put]
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	var in domain.UserInput
	if !decodeBody(w, r, &in) {
		return
	}

	user, err := h.userService.Update(r.Context(), id, &in)
	if err != nil {
		handleServiceError(w, h.logger, err, "update user")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// Delete godoc
// @Summary Delete user
// @Description Delete a user. A manager with salespeople assigned cannot be deleted.
// @Tags Users
// @Param id path string true "User ID"
// @Success 204 "No Content"
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.userService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.logger, err, "delete user")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
