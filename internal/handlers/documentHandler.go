package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/estla/skillserver/internal/adapter"
	"github.com/estla/skillserver/internal/adapter/utils"
	"github.com/estla/skillserver/internal/api"
	"github.com/estla/skillserver/internal/content"
	"github.com/estla/skillserver/internal/domain/document"
)

// HealthHandler godoc
// @Summary      Liveness probe
// @Tags         Health
// @Produce      json
// @Success      200  {object}  api.HealthResponse
// @Router       /health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJsonResponse(w, http.StatusOK, api.HealthResponse{Status: "alive"})
}

// ListDocumentsHandler godoc
// @Summary      List documents of a category
// @Tags         Documents
// @Produce      json
// @Param        category  query     string  true  "QnA, Selftest or Products"
// @Success      200       {object}  api.DocumentListResponse
// @Failure      400       {object}  api.JobResponse  "Unknown category"
// @Router       /api/documents [get]
func (h *Handler) ListDocumentsHandler(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("category")
	category, ok := document.ParseCategory(raw)
	if !ok {
		WriteErrorResponse(w, http.StatusBadRequest, raw, "Unknown category")
		return
	}
	records, err := h.content.GetByCategory(r.Context(), category)
	if err != nil {
		h.writeContentError(w, r, err, raw)
		return
	}
	writeJsonResponse(w, http.StatusOK, api.DocumentListResponse{
		Category:  string(category),
		Count:     len(records),
		Documents: adapter.ToDocumentList(records),
	})
}

// SearchDocumentsHandler godoc
// @Summary      Tiered title search
// @Tags         Documents
// @Produce      json
// @Param        q    query     string  true  "Query"
// @Success      200  {object}  api.DocumentListResponse
// @Router       /api/search [get]
func (h *Handler) SearchDocumentsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	records, err := h.content.Search(r.Context(), q)
	if err != nil {
		h.writeContentError(w, r, err, q)
		return
	}
	writeJsonResponse(w, http.StatusOK, api.DocumentListResponse{
		Query:     q,
		Count:     len(records),
		Documents: adapter.ToDocumentList(records),
	})
}

// SearchContentHandler godoc
// @Summary      Full-text search over summaries
// @Tags         Documents
// @Produce      json
// @Param        q      query     string  true   "Query"
// @Param        limit  query     int     false  "Maximum hits"
// @Success      200    {object}  api.DocumentListResponse
// @Failure      400    {object}  api.JobResponse  "Missing query or bad limit"
// @Router       /api/search/content [get]
func (h *Handler) SearchContentHandler(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		WriteErrorResponse(w, http.StatusBadRequest, "", "q is required")
		return
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			WriteErrorResponse(w, http.StatusBadRequest, raw, "limit must be a positive number")
			return
		}
		limit = n
	}
	hits, err := h.content.SearchContent(r.Context(), q, limit)
	if err != nil {
		h.writeContentError(w, r, err, q)
		return
	}
	writeJsonResponse(w, http.StatusOK, api.DocumentListResponse{
		Query:     q,
		Count:     len(hits),
		Documents: adapter.ToContentHitList(hits),
	})
}

// GetDocumentHandler godoc
// @Summary      Read a document as markdown
// @Tags         Documents
// @Produce      json
// @Param        title  path      string  true  "Document title"
// @Success      200    {object}  api.MarkdownResponse
// @Failure      404    {object}  api.JobResponse  "Document not found"
// @Router       /api/documents/{title} [get]
func (h *Handler) GetDocumentHandler(w http.ResponseWriter, r *http.Request) {
	title := utils.GetChiURLParam(r, "title")
	doc, err := h.content.ReadDocument(r.Context(), title)
	if err != nil {
		h.writeContentError(w, r, err, title)
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToMarkdownResponse(doc))
}

func (h *Handler) writeContentError(w http.ResponseWriter, r *http.Request, err error, id string) {
	switch {
	case errors.Is(err, content.ErrNotReady):
		WriteErrorResponse(w, http.StatusServiceUnavailable, id, "Index is not ready")
	case errors.Is(err, content.ErrDocumentNotFound):
		WriteErrorResponse(w, http.StatusNotFound, id, "Document not found")
	default:
		h.logger.With("traceId", traceId(r.Context())).Error("Content request failed", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, id, "Internal error")
	}
}
