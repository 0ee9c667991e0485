package handler

import (
	"net/http"
	"strconv"

	"github.com/devNevtis/salesToolsAdminSpace/internal/domain"
	"github.com/devNevtis/salesToolsAdminSpace/internal/service"
	"go.uber.org/zap"
)

type CompanyHandler struct {
	companyService *service.CompanyService
	logger         *zap.Logger
}

func NewCompanyHandler(companyService *service.CompanyService, logger *zap.Logger) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
		logger:         logger,
	}
}

// List godoc
// @Summary List companies
// @Description Get paginated list of companies
// @Tags Companies
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Param search query string false "Search by name or email"
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.CompanyDTO}
// @Failure 500 {object} domain.ErrorResponse
// @Router /companies [get]
func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePaging(r)
	search := r.URL.Query().Get("search")

	result, err := h.companyService.List(r.Context(), page, pageSize, search)
	if err != nil {
		handleServiceError(w, h.logger, err, "list companies")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// Get godoc
// @Summary Get company
// @Description Get a company by ID including its user count
// @Tags Companies
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} domain.CompanyDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /companies/{id} [get]
func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	company, err := h.companyService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err, "get company")
		return
	}
	respondJSON(w, http.StatusOK, company)
}

// Create godoc
// @Summary Create company
// @Description Validate and create a new company
// @Tags Companies
// @Accept json
// @Produce json
// @Param company body domain.CompanyInput true "Company payload"
// @Success 201 {object} domain.CompanyDTO
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.ErrorResponse
// @Router /companies [post]
func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in domain.CompanyInput
	if !decodeBody(w, r, &in) {
		return
	}

	company, err := h.companyService.Create(r.Context(), &in)
	if err != nil {
		handleServiceError(w, h.logger, err, "create company")
		return
	}
	respondJSON(w, http.StatusCreated, company)
}

// Update godoc
// @Summary Update company
// @Description Validate and update an existing company
// @Tags Companies
// @Accept json
// @Produce json
// @Param id path string true "Company ID"
// @Param company body domain.CompanyInput true "Company payload"
// @Success 200 {object} domain.CompanyDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.ErrorResponse
// @Router /companies/{id} [put]
func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	var in domain.CompanyInput
	if !decodeBody(w, r, &in) {
		return
	}

	company, err := h.companyService.Update(r.Context(), id, &in)
	if err != nil {
		handleServiceError(w, h.logger, err, "update company")
		return
	}
	respondJSON(w, http.StatusOK, company)
}

// UpdateStages godoc
// @Summary Update pipeline stages
// @Description Replace a company's sales-funnel stages
// @Tags Companies
// @Accept json
// @Produce json
// @Param id path string true "Company ID"
// @Param stages body domain.UpdateStagesRequest true "Stage list"
// @Success 200 {object} domain.CompanyDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.ErrorResponse
// @Router /companies/{id}/stages [put]
func (h *CompanyHandler) UpdateStages(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	var req domain.UpdateStagesRequest
	if !decodeBody(w, r, &req) {
		return
	}

	company, err := h.companyService.UpdateStages(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "update stages")
		return
	}
	respondJSON(w, http.StatusOK, company)
}

// Delete godoc
// @Summary Delete company
// @Description Delete a company and all its users
// @Tags Companies
// @Param id path string true "Company ID"
// @Success 204 "No Content"
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /companies/{id} [delete]
func (h *CompanyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.companyService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.logger, err, "delete company")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListUsers godoc
// @Summary List company users
// @Description Get all users belonging to a company
// @Tags Companies
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {array} domain.UserDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /companies/{id}/users [get]
func (h *CompanyHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	users, err := h.companyService.ListUsers(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err, "list company users")
		return
	}
	respondJSON(w, http.StatusOK, users)
}

// parsePaging reads page/pageSize query parameters with sane bounds
func parsePaging(r *http.Request) (int, int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 200 {
		pageSize = 200
	}
	return page, pageSize
}
