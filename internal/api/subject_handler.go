package api

import (
	"net/http"

	"github.com/OpenAiTx/MiniExam/internal/domain/subject"
)

// GET /subjects
func (h *Handler) listSubjects(w http.ResponseWriter, r *http.Request) {
	subjects, err := h.app.Subjects(r.Context())
	if h.handleStoreError(w, err, "subjects") {
		return
	}
	respondJSON(w, http.StatusOK, subjects)
}

// PUT /subjects
func (h *Handler) saveSubjects(w http.ResponseWriter, r *http.Request) {
	var subjects []subject.Subject
	if !decodeJSON(w, r, &subjects) {
		return
	}
	for _, s := range subjects {
		if s.ID == "" || s.Name == "" {
			respondError(w, http.StatusBadRequest, "every subject needs an id and a name")
			return
		}
	}
	if err := h.app.SaveSubjects(r.Context(), subjects); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to save subjects")
		return
	}
	respondJSON(w, http.StatusOK, subjects)
}
