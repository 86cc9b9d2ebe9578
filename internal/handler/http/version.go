package http

import (
	"net/http"

	"github.com/MKhiriev/refgame/internal/utils"
)

func (h *Handler) getBuildInfo(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetBuildInfo(r.Context())

	utils.WriteJSON(w, info, http.StatusOK)
}
