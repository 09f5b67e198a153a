package handlers

import (
	"errors"
	"net/http"

	"github.com/estla/skillserver/internal/adapter"
	"github.com/estla/skillserver/internal/adapter/utils"
	"github.com/estla/skillserver/internal/job"
)

// ReloadHandler godoc
// @Summary      Rebuild the content index
// @Description  Queues a background rebuild of the index and returns a job ID to track it.
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Success      202  {object}  api.InitJobResponse  "Reload queued"
// @Failure      401  {object}  api.JobResponse      "Missing or wrong admin token"
// @Failure      503  {object}  api.JobResponse      "Reload queue is full"
// @Router       /api/reload [post]
func (h *Handler) ReloadHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	queued, err := h.jobs.EnqueueReload(r.Context(), traceId(r.Context()))
	if errors.Is(err, job.ErrQueueFull) {
		WriteErrorResponse(w, http.StatusServiceUnavailable, "", "Reload queue is full, try again later")
		return
	}
	if err != nil {
		h.logger.With("traceId", traceId(r.Context())).Error("Could not queue reload", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "", "Could not queue reload")
		return
	}
	writeJsonResponse(w, http.StatusAccepted, adapter.ToInitJobResponse(queued.Id))
}

// GetStatusHandler godoc
// @Summary      Get reload job status
// @Description  Retrieves the current status of a reload job using its ID.
// @Tags         Admin
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  api.JobResponse  "Current state of the job"
// @Failure      404  {object}  api.JobResponse  "Job not found"
// @Router       /status/{id} [get]
func (h *Handler) GetStatusHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	idString := utils.GetChiURLParam(r, "id")
	result, isFound := h.jobs.GetJob(r.Context(), idString)
	if !isFound {
		WriteErrorResponse(w, http.StatusNotFound, idString, "Job not found")
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToAPIResponse(result))
}

// IndexStatsHandler godoc
// @Summary      Index statistics
// @Description  Generation and document counts of the live index.
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  api.IndexStatsResponse
// @Router       /api/index [get]
func (h *Handler) IndexStatsHandler(w http.ResponseWriter, r *http.Request) {
	writeJsonResponse(w, http.StatusOK, adapter.ToIndexStatsResponse(h.content.Stats()))
}
