package api

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/OpenAiTx/MiniExam/internal/backup"
)

// maxUploadBytes caps the size of imported backup archives.
const maxUploadBytes = 32 << 20

type ImportBackupResponse struct {
	Errors []backup.ValidationError `json:"errors,omitempty"`
	Status string                   `json:"status,omitempty"`
}

// GET /backup/export
func (h *Handler) exportBackupJSON(w http.ResponseWriter, r *http.Request) {
	b, err := h.app.ExportBackup(r.Context())
	if h.handleStoreError(w, err, "backup") {
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="miniexam-backup.json"`)
	respondJSON(w, http.StatusOK, backup.NewExport(*b))
}

// GET /backup/export.zip
func (h *Handler) exportBackupZip(w http.ResponseWriter, r *http.Request) {
	b, err := h.app.ExportBackup(r.Context())
	if h.handleStoreError(w, err, "backup") {
		return
	}

	var buf bytes.Buffer
	if err := backup.WriteZip(&buf, b); err != nil {
		h.logger.Error("zip export failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to build archive")
		return
	}

	filename := "miniexam-backup-" + time.Now().Format("2006-01-02") + ".zip"
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// GET /backup/export/stats
func (h *Handler) exportStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.app.AllStats(r.Context())
	if h.handleStoreError(w, err, "stats") {
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="question-stats.json"`)
	respondJSON(w, http.StatusOK, stats)
}

// GET /backup/export/results
func (h *Handler) exportResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.app.Results(r.Context())
	if h.handleStoreError(w, err, "results") {
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="exam-results.json"`)
	respondJSON(w, http.StatusOK, results)
}

// POST /backup/import
func (h *Handler) importBackupJSON(w http.ResponseWriter, r *http.Request) {
	var b backup.Backup
	if !decodeJSON(w, r, &b) {
		return
	}
	h.applyBackup(w, r, &b)
}

// POST /backup/import.zip
func (h *Handler) importBackupZip(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxUploadBytes))
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	b, err := backup.ReadZip(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		respondError(w, http.StatusBadRequest, "not a valid backup archive")
		return
	}
	h.applyBackup(w, r, b)
}

func (h *Handler) applyBackup(w http.ResponseWriter, r *http.Request, b *backup.Backup) {
	errs, err := h.app.ImportBackup(r.Context(), b)
	if h.handleStoreError(w, err, "backup") {
		return
	}
	if len(errs) > 0 {
		respondJSON(w, http.StatusBadRequest, ImportBackupResponse{Errors: errs})
		return
	}
	respondJSON(w, http.StatusOK, ImportBackupResponse{Status: "imported"})
}

// DELETE /data
func (h *Handler) clearAllData(w http.ResponseWriter, r *http.Request) {
	if !requireConfirm(w, r) {
		return
	}
	if err := h.app.ClearAllData(r.Context()); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to clear data")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
