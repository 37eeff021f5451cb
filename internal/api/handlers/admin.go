package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/collabmatch/backend/internal/api/middleware"
	"github.com/collabmatch/backend/internal/domain"
)

type AdminHandler struct {
	maintenance *middleware.Maintenance
}

func NewAdminHandler(maintenance *middleware.Maintenance) *AdminHandler {
	return &AdminHandler{maintenance: maintenance}
}

type MaintenanceRequest struct {
	Enabled bool `json:"enabled"`
}

// SetMaintenance flips the maintenance gate at runtime.
func (h *AdminHandler) SetMaintenance(w http.ResponseWriter, r *http.Request) {
	var req MaintenanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", domain.ErrValidation))
		return
	}

	h.maintenance.SetEnabled(req.Enabled)
	writeJSON(w, http.StatusOK, "Maintenance mode updated", map[string]bool{"enabled": req.Enabled})
}
