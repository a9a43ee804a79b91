package gateway

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"legalease/internal/artifact"
	"legalease/internal/dashboard"
	"legalease/internal/encode"
)

// maxUploadBytes bounds the multipart form buffer, not the document itself;
// larger files spill to disk.
const maxUploadBytes = 64 << 20

type handlers struct {
	ctrl   *dashboard.Controller
	logger *zap.Logger
}

func (h *handlers) runAnalysis(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httpError(w, http.StatusBadRequest, "malformed upload")
		return
	}
	if err := h.ctrl.SetMode(artifact.KindAnalysis); err != nil {
		httpError(w, http.StatusConflict, err.Error())
		return
	}
	if !h.stage(w, r, 0, "document") {
		return
	}
	h.ctrl.ClearFile(1)
	h.run(w, r)
}

func (h *handlers) runComparison(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httpError(w, http.StatusBadRequest, "malformed upload")
		return
	}
	if err := h.ctrl.SetMode(artifact.KindComparison); err != nil {
		httpError(w, http.StatusConflict, err.Error())
		return
	}
	if !h.stage(w, r, 0, "baseline") || !h.stage(w, r, 1, "candidate") {
		return
	}
	h.run(w, r)
}

// stage pulls one multipart file into the controller slot. Reports false
// after writing the HTTP error.
func (h *handlers) stage(w http.ResponseWriter, r *http.Request, slot int, field string) bool {
	file, header, err := r.FormFile(field)
	if err != nil {
		httpError(w, http.StatusBadRequest, "missing file field: "+field)
		return false
	}
	defer file.Close()
	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/pdf"
	}
	if err := h.ctrl.StageFile(slot, header.Filename, file, mimeType); err != nil {
		switch {
		case errors.Is(err, dashboard.ErrBusy):
			httpError(w, http.StatusConflict, "an action is already in flight")
		case errors.Is(err, encode.ErrRead):
			httpError(w, http.StatusBadRequest, "document could not be read")
		default:
			httpError(w, http.StatusInternalServerError, "staging failed")
		}
		return false
	}
	return true
}

func (h *handlers) run(w http.ResponseWriter, r *http.Request) {
	err := h.ctrl.Run(r.Context())
	switch {
	case errors.Is(err, dashboard.ErrBusy):
		httpError(w, http.StatusConflict, "an action is already in flight")
		return
	case errors.Is(err, dashboard.ErrNotStaged):
		httpError(w, http.StatusBadRequest, "required files not staged")
		return
	}
	// Remote failures land in the Error phase; the snapshot carries the
	// user-facing message either way.
	writeJSON(w, http.StatusOK, h.ctrl.Snapshot())
}

func (h *handlers) state(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.ctrl.Snapshot())
}

func (h *handlers) reset(w http.ResponseWriter, r *http.Request) {
	h.ctrl.Reset()
	writeJSON(w, http.StatusOK, h.ctrl.Snapshot())
}

func (h *handlers) setLanguage(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Language string `json:"language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Language == "" {
		httpError(w, http.StatusBadRequest, "missing language")
		return
	}
	h.ctrl.SetLanguage(body.Language)
	writeJSON(w, http.StatusOK, h.ctrl.Snapshot())
}

func (h *handlers) listHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.ctrl.History())
}

func (h *handlers) getHistory(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.ctrl.HistoryEntry(chi.URLParam(r, "id"))
	if !ok {
		httpError(w, http.StatusNotFound, "unknown history entry")
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (h *handlers) openHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.ctrl.OpenHistory(chi.URLParam(r, "id")); err != nil {
		httpError(w, http.StatusNotFound, "unknown history entry")
		return
	}
	writeJSON(w, http.StatusOK, h.ctrl.Snapshot())
}

func (h *handlers) deleteHistory(w http.ResponseWriter, r *http.Request) {
	h.ctrl.DeleteHistory(chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, h.ctrl.History())
}

func (h *handlers) exportMarkdown(w http.ResponseWriter, r *http.Request) {
	text, err := h.ctrl.ExportMarkdown()
	if err != nil {
		httpError(w, http.StatusNotFound, "no result to export")
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="LegalEase_Report.md"`)
	_, _ = w.Write([]byte(text))
}

func (h *handlers) exportPrint(w http.ResponseWriter, r *http.Request) {
	text, err := h.ctrl.ExportPrint()
	if err != nil {
		httpError(w, http.StatusNotFound, "no result to export")
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(text))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func httpError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
