package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/refgame/internal/logger"
	"github.com/MKhiriev/refgame/internal/store"
	"github.com/MKhiriev/refgame/internal/utils"
	"github.com/MKhiriev/refgame/models"
)

func (h *Handler) saveRun(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var run models.Run
	if err := json.NewDecoder(r.Body).Decode(&run); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.RunService.SaveRun(ctx, userID, run); err != nil {
		log.Err(err).Str("run_id", run.RunID).Msg("saving run failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	log.Info().Str("run_id", run.RunID).Msg("run uploaded")
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) listRuns(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var filter store.RunFilter
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = models.RunStatus(status)
	}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		parsed, err := strconv.ParseUint(limit, 10, 64)
		if err != nil {
			log.Err(err).Str("limit", limit).Msg("invalid limit query parameter")
			http.Error(w, "invalid limit query parameter", http.StatusBadRequest)
			return
		}
		filter.Limit = parsed
	}

	items, err := h.services.RunService.ListRuns(ctx, userID, filter)
	if err != nil {
		log.Err(err).Msg("listing runs failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) getRun(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	run, err := h.services.RunService.GetRun(ctx, userID, chi.URLParam(r, "runID"))
	if err != nil {
		log.Err(err).Msg("getting run failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, run, http.StatusOK)
}

func (h *Handler) saveEpisodes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var upload models.EpisodeBatchUpload
	if err := json.NewDecoder(r.Body).Decode(&upload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	runID := chi.URLParam(r, "runID")
	if err := h.services.RunService.SaveEpisodes(ctx, userID, runID, upload.Episodes); err != nil {
		log.Err(err).Str("run_id", runID).Msg("saving episodes failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	log.Info().Str("run_id", runID).Int("episodes", len(upload.Episodes)).Msg("episodes uploaded")
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) getEpisodes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	phase := models.Phase(r.URL.Query().Get("phase"))
	episodes, err := h.services.RunService.GetEpisodes(ctx, userID, chi.URLParam(r, "runID"), phase)
	if err != nil {
		log.Err(err).Msg("getting episodes failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.EpisodeBatchUpload{Episodes: episodes}, http.StatusOK)
}

func (h *Handler) getMetrics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	report, err := h.services.RunService.GetMetrics(ctx, userID, chi.URLParam(r, "runID"))
	if err != nil {
		log.Err(err).Msg("getting metrics failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}
