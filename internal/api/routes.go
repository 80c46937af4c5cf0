// internal/api/routes.go
package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Subjects
	mux.HandleFunc("GET /subjects", h.listSubjects)
	mux.HandleFunc("PUT /subjects", h.saveSubjects)

	// Question banks
	mux.HandleFunc("GET /subjects/{subjectID}/questions", h.listQuestions)
	mux.HandleFunc("PUT /subjects/{subjectID}/questions", h.saveQuestions)
	mux.HandleFunc("PUT /subjects/{subjectID}/questions/{questionID}", h.updateQuestion)
	mux.HandleFunc("DELETE /subjects/{subjectID}/questions/{questionID}", h.deleteQuestion)
	mux.HandleFunc("POST /subjects/{subjectID}/questions/import", h.importQuestions)
	mux.HandleFunc("POST /subjects/{subjectID}/questions/reset", h.resetQuestions)
	mux.HandleFunc("GET /subjects/{subjectID}/questions/export", h.exportQuestions)

	// Per-question stats
	mux.HandleFunc("GET /subjects/{subjectID}/stats", h.listStats)
	mux.HandleFunc("GET /subjects/{subjectID}/accuracy", h.listAccuracy)
	mux.HandleFunc("POST /subjects/{subjectID}/stats/{questionID}/important", h.toggleImportant)
	mux.HandleFunc("DELETE /subjects/{subjectID}/stats/{questionID}", h.clearQuestionStats)

	// Exam sessions
	mux.HandleFunc("POST /sessions", h.startSession)
	mux.HandleFunc("GET /sessions/{sessionID}", h.getSession)
	mux.HandleFunc("POST /sessions/{sessionID}/answers", h.selectAnswer)
	mux.HandleFunc("POST /sessions/{sessionID}/submit", h.submitAnswer)
	mux.HandleFunc("POST /sessions/{sessionID}/next", h.nextQuestion)
	mux.HandleFunc("POST /sessions/{sessionID}/previous", h.previousQuestion)
	mux.HandleFunc("POST /sessions/{sessionID}/jump", h.jumpToQuestion)
	mux.HandleFunc("POST /sessions/{sessionID}/end", h.endSession)
	mux.HandleFunc("DELETE /sessions/{sessionID}/current-question", h.removeCurrentQuestion)

	// Exam history
	mux.HandleFunc("GET /results", h.listResults)

	// Backup
	mux.HandleFunc("GET /backup/export", h.exportBackupJSON)
	mux.HandleFunc("GET /backup/export.zip", h.exportBackupZip)
	mux.HandleFunc("GET /backup/export/stats", h.exportStats)
	mux.HandleFunc("GET /backup/export/results", h.exportResults)
	mux.HandleFunc("POST /backup/import", h.importBackupJSON)
	mux.HandleFunc("POST /backup/import.zip", h.importBackupZip)
	mux.HandleFunc("DELETE /data", h.clearAllData)
}
