package api

import (
	"net/http"
	"strconv"

	"github.com/OpenAiTx/MiniExam/internal/backup"
	"github.com/OpenAiTx/MiniExam/internal/domain/question"
)

// ── Request / Response types ────────────────────────────────────────────────

type ImportQuestionsRequest struct {
	Questions []question.Question `json:"questions"`
	Policy    backup.MergePolicy  `json:"policy"`
}

type ImportQuestionsResponse struct {
	Questions []question.Question      `json:"questions"`
	Errors    []backup.ValidationError `json:"errors,omitempty"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

func pathQuestionID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("questionID"), 10, 64)
	if err != nil || id == 0 {
		respondError(w, http.StatusBadRequest, "invalid question id")
		return 0, false
	}
	return id, true
}

// GET /subjects/{subjectID}/questions
func (h *Handler) listQuestions(w http.ResponseWriter, r *http.Request) {
	questions := h.app.Questions(r.Context(), r.PathValue("subjectID"))
	respondJSON(w, http.StatusOK, questions)
}

// PUT /subjects/{subjectID}/questions
func (h *Handler) saveQuestions(w http.ResponseWriter, r *http.Request) {
	var questions []question.Question
	if !decodeJSON(w, r, &questions) {
		return
	}
	if errs := backup.ValidateQuestions(questions); len(errs) > 0 {
		respondJSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
		return
	}
	if err := h.app.SaveQuestions(r.Context(), r.PathValue("subjectID"), questions); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to save questions")
		return
	}
	respondJSON(w, http.StatusOK, questions)
}

// PUT /subjects/{subjectID}/questions/{questionID}
func (h *Handler) updateQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathQuestionID(w, r)
	if !ok {
		return
	}
	var q question.Question
	if !decodeJSON(w, r, &q) {
		return
	}
	q.ID = id
	if err := q.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.app.UpdateQuestion(r.Context(), r.PathValue("subjectID"), q); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to update question")
		return
	}
	respondJSON(w, http.StatusOK, q)
}

// DELETE /subjects/{subjectID}/questions/{questionID}
func (h *Handler) deleteQuestion(w http.ResponseWriter, r *http.Request) {
	if !requireConfirm(w, r) {
		return
	}
	id, ok := pathQuestionID(w, r)
	if !ok {
		return
	}
	if err := h.app.DeleteQuestion(r.Context(), r.PathValue("subjectID"), id); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete question")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /subjects/{subjectID}/questions/import
func (h *Handler) importQuestions(w http.ResponseWriter, r *http.Request) {
	var req ImportQuestionsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	merged, errs, err := h.app.ImportQuestions(r.Context(), r.PathValue("subjectID"), req.Questions, req.Policy)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(errs) > 0 {
		respondJSON(w, http.StatusBadRequest, ImportQuestionsResponse{Errors: errs})
		return
	}
	respondJSON(w, http.StatusOK, ImportQuestionsResponse{Questions: merged})
}

// POST /subjects/{subjectID}/questions/reset
func (h *Handler) resetQuestions(w http.ResponseWriter, r *http.Request) {
	if !requireConfirm(w, r) {
		return
	}
	questions, err := h.app.ResetQuestions(r.Context(), r.PathValue("subjectID"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to reset questions")
		return
	}
	respondJSON(w, http.StatusOK, questions)
}

// GET /subjects/{subjectID}/questions/export
func (h *Handler) exportQuestions(w http.ResponseWriter, r *http.Request) {
	subjectID := r.PathValue("subjectID")
	questions := h.app.Questions(r.Context(), subjectID)
	w.Header().Set("Content-Disposition", `attachment; filename="questions-`+subjectID+`.json"`)
	respondJSON(w, http.StatusOK, questions)
}

// GET /subjects/{subjectID}/stats
func (h *Handler) listStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.app.SubjectStats(r.Context(), r.PathValue("subjectID"))
	if h.handleStoreError(w, err, "stats") {
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// POST /subjects/{subjectID}/stats/{questionID}/important
func (h *Handler) toggleImportant(w http.ResponseWriter, r *http.Request) {
	id, ok := pathQuestionID(w, r)
	if !ok {
		return
	}
	subjectID := r.PathValue("subjectID")
	if err := h.app.ToggleImportant(r.Context(), subjectID, id); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to toggle importance")
		return
	}
	stats, err := h.app.SubjectStats(r.Context(), subjectID)
	if h.handleStoreError(w, err, "stats") {
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// GET /subjects/{subjectID}/accuracy
func (h *Handler) listAccuracy(w http.ResponseWriter, r *http.Request) {
	listing, err := h.app.SubjectAccuracy(r.Context(), r.PathValue("subjectID"))
	if h.handleStoreError(w, err, "stats") {
		return
	}
	respondJSON(w, http.StatusOK, listing)
}

// DELETE /subjects/{subjectID}/stats/{questionID}
func (h *Handler) clearQuestionStats(w http.ResponseWriter, r *http.Request) {
	if !requireConfirm(w, r) {
		return
	}
	id, ok := pathQuestionID(w, r)
	if !ok {
		return
	}
	if err := h.app.ClearQuestionStats(r.Context(), r.PathValue("subjectID"), id); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to clear stats")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
