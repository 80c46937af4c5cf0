package api

import (
	"errors"
	"net/http"

	"github.com/OpenAiTx/MiniExam/internal/domain/examsession"
	"github.com/OpenAiTx/MiniExam/internal/domain/question"
)

// ── Request / Response types ────────────────────────────────────────────────

type StartSessionRequest struct {
	SubjectID string           `json:"subjectId"`
	Mode      examsession.Mode `json:"mode"`
	Count     int              `json:"count,omitempty"`
}

type SelectAnswerRequest struct {
	Answer        string `json:"answer"`
	AllowMultiple bool   `json:"allowMultiple"`
}

type JumpRequest struct {
	Index int `json:"index"`
}

type SessionResponse struct {
	ID        string              `json:"id"`
	SubjectID string              `json:"subjectId"`
	Mode      examsession.Mode    `json:"mode"`
	Questions []question.Question `json:"questions"`
	Index     int                 `json:"index"`
	Selected  []string            `json:"selected"`
	Scored    bool                `json:"scored"`
	Correct   bool                `json:"correct"`
}

type SubmitAnswerResponse struct {
	Correct     bool   `json:"correct"`
	Explanation string `json:"explanation"`
}

// AdvanceResponse carries either the next cursor state or, once the
// last question is answered, the finished result.
type AdvanceResponse struct {
	Session *SessionResponse    `json:"session,omitempty"`
	Result  *examsession.Result `json:"result,omitempty"`
}

type RemoveQuestionResponse struct {
	Session *SessionResponse `json:"session,omitempty"`
	Ended   bool             `json:"ended"`
}

func sessionResponse(s *examsession.Session) *SessionResponse {
	return &SessionResponse{
		ID:        s.ID,
		SubjectID: s.SubjectID,
		Mode:      s.Mode,
		Questions: s.Questions,
		Index:     s.Index(),
		Selected:  s.Selected(),
		Scored:    s.Scored(),
		Correct:   s.Correct(),
	}
}

// handleSessionError maps domain sentinels to HTTP responses. Returns
// true if an error was handled.
func (h *Handler) handleSessionError(w http.ResponseWriter, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, examsession.ErrNoQuestions),
		errors.Is(err, examsession.ErrNoMatches),
		errors.Is(err, examsession.ErrNoSelection),
		errors.Is(err, examsession.ErrNothingAnswered):
		respondError(w, http.StatusBadRequest, err.Error())
		return true
	case errors.Is(err, examsession.ErrAlreadyScored):
		respondError(w, http.StatusConflict, err.Error())
		return true
	default:
		return h.handleStoreError(w, err, "session")
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// POST /sessions
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.SubjectID == "" {
		respondError(w, http.StatusBadRequest, "subjectId is required")
		return
	}

	session, err := h.app.StartSession(r.Context(), req.SubjectID, req.Mode, req.Count)
	if h.handleSessionError(w, err) {
		return
	}
	respondJSON(w, http.StatusCreated, sessionResponse(session))
}

// GET /sessions/{sessionID}
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.app.Session(r.PathValue("sessionID"))
	if h.handleSessionError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, sessionResponse(session))
}

// POST /sessions/{sessionID}/answers
func (h *Handler) selectAnswer(w http.ResponseWriter, r *http.Request) {
	var req SelectAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	sessionID := r.PathValue("sessionID")
	if err := h.app.Select(sessionID, req.Answer, req.AllowMultiple); h.handleSessionError(w, err) {
		return
	}
	session, err := h.app.Session(sessionID)
	if h.handleSessionError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, sessionResponse(session))
}

// POST /sessions/{sessionID}/submit
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	correct, explanation, err := h.app.Submit(r.Context(), r.PathValue("sessionID"))
	if h.handleSessionError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, SubmitAnswerResponse{Correct: correct, Explanation: explanation})
}

// POST /sessions/{sessionID}/next
func (h *Handler) nextQuestion(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")
	result, err := h.app.Advance(r.Context(), sessionID)
	if h.handleSessionError(w, err) {
		return
	}
	if result != nil {
		respondJSON(w, http.StatusOK, AdvanceResponse{Result: result})
		return
	}
	session, err := h.app.Session(sessionID)
	if h.handleSessionError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, AdvanceResponse{Session: sessionResponse(session)})
}

// POST /sessions/{sessionID}/previous
func (h *Handler) previousQuestion(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")
	if err := h.app.Retreat(sessionID); h.handleSessionError(w, err) {
		return
	}
	session, err := h.app.Session(sessionID)
	if h.handleSessionError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, sessionResponse(session))
}

// POST /sessions/{sessionID}/jump
func (h *Handler) jumpToQuestion(w http.ResponseWriter, r *http.Request) {
	var req JumpRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	sessionID := r.PathValue("sessionID")
	if err := h.app.Jump(sessionID, req.Index); h.handleSessionError(w, err) {
		return
	}
	session, err := h.app.Session(sessionID)
	if h.handleSessionError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, sessionResponse(session))
}

// POST /sessions/{sessionID}/end
func (h *Handler) endSession(w http.ResponseWriter, r *http.Request) {
	result, err := h.app.EndEarly(r.Context(), r.PathValue("sessionID"))
	if h.handleSessionError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// DELETE /sessions/{sessionID}/current-question
func (h *Handler) removeCurrentQuestion(w http.ResponseWriter, r *http.Request) {
	if !requireConfirm(w, r) {
		return
	}
	sessionID := r.PathValue("sessionID")
	ended, err := h.app.RemoveCurrentQuestion(r.Context(), sessionID)
	if h.handleSessionError(w, err) {
		return
	}
	if ended {
		respondJSON(w, http.StatusOK, RemoveQuestionResponse{Ended: true})
		return
	}
	session, err := h.app.Session(sessionID)
	if h.handleSessionError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, RemoveQuestionResponse{Session: sessionResponse(session)})
}

// GET /results
func (h *Handler) listResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.app.Results(r.Context())
	if h.handleStoreError(w, err, "results") {
		return
	}
	respondJSON(w, http.StatusOK, results)
}
