package handler

import (
	"net/http"

	"github.com/devNevtis/salesToolsAdminSpace/internal/service"
	"go.uber.org/zap"
)

type PBXHandler struct {
	pbxService *service.PBXService
	logger     *zap.Logger
}

func NewPBXHandler(pbxService *service.PBXService, logger *zap.Logger) *PBXHandler {
	return &PBXHandler{
		pbxService: pbxService,
		logger:     logger,
	}
}

// ListDomains godoc
// @Summary List PBX domains
// @Description Get mirrored PBX tenant domains for the company form's domain picker
// @Tags PBX
// @Produce json
// @Param enabled query bool false "Only enabled domains"
// @Success 200 {array} domain.PBXDomainDTO
// @Failure 500 {object} domain.ErrorResponse
// @Router /pbx/domains [get]
func (h *PBXHandler) ListDomains(w http.ResponseWriter, r *http.Request) {
	enabledOnly := r.URL.Query().Get("enabled") == "true"

	domains, err := h.pbxService.ListDomains(r.Context(), enabledOnly)
	if err != nil {
		handleServiceError(w, h.logger, err, "list pbx domains")
		return
	}
	respondJSON(w, http.StatusOK, domains)
}

// SyncDomains godoc
// @Summary Sync PBX domains
// @Description Refresh the local mirror from the upstream PBX directory
// @Tags PBX
// @Produce json
// @Success 200 {object} map[string]int
// @Failure 503 {object} domain.ErrorResponse
// @Router /pbx/domains/sync [post]
func (h *PBXHandler) SyncDomains(w http.ResponseWriter, r *http.Request) {
	count, err := h.pbxService.Sync(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err, "sync pbx domains")
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"synced": count})
}
