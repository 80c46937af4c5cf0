package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/OpenAiTx/MiniExam/internal/domain/examsession"
	"github.com/OpenAiTx/MiniExam/internal/domain/question"
)

// ErrSessionNotFound means the session id is unknown or the session
// already completed.
var ErrSessionNotFound = errors.New("session not found")

// StartSession loads the subject's bank and stats and opens a new exam
// attempt.
func (a *App) StartSession(ctx context.Context, subjectID string, mode examsession.Mode, count int) (*examsession.Session, error) {
	questions := a.loader.Load(ctx, subjectID)
	stats, err := a.SubjectStats(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	session, err := examsession.Start(subjectID, questions, stats, mode, count)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	a.sessions[session.ID] = session
	a.mu.Unlock()
	return session, nil
}

// Session looks up a running session.
func (a *App) Session(sessionID string) (*examsession.Session, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	s, ok := a.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Select updates the pending selection on the session's current
// question.
func (a *App) Select(sessionID, answer string, allowMultiple bool) error {
	s, err := a.Session(sessionID)
	if err != nil {
		return err
	}
	s.SelectAnswer(answer, allowMultiple)
	return nil
}

// Submit scores the current question and flushes the stat update. A
// fill-in question with no text, or only whitespace, is rejected with
// ErrNoSelection before anything is recorded.
func (a *App) Submit(ctx context.Context, sessionID string) (bool, string, error) {
	s, err := a.Session(sessionID)
	if err != nil {
		return false, "", err
	}

	cur, _ := s.Current()
	if cur.Type == question.TypeFillInTheBlanks {
		sel := s.Selected()
		if len(sel) == 0 || strings.TrimSpace(sel[0]) == "" {
			return false, "", examsession.ErrNoSelection
		}
	}
	correct, explanation, err := s.Submit()
	if err != nil {
		return false, "", err
	}

	if err := a.recordAttempt(ctx, s.SubjectID, cur.ID, correct); err != nil {
		a.logger.Error("failed to flush stats", "session", sessionID, "question", cur.ID, "error", err)
	}
	return correct, explanation, nil
}

// Jump moves the session cursor; out-of-range is a no-op.
func (a *App) Jump(sessionID string, index int) error {
	s, err := a.Session(sessionID)
	if err != nil {
		return err
	}
	s.JumpTo(index)
	return nil
}

// Retreat moves back one question.
func (a *App) Retreat(sessionID string) error {
	s, err := a.Session(sessionID)
	if err != nil {
		return err
	}
	s.Retreat()
	return nil
}

// Advance moves forward, or completes the exam from the last question.
// A non-nil result means the session finished and was persisted to
// history.
func (a *App) Advance(ctx context.Context, sessionID string) (*examsession.Result, error) {
	s, err := a.Session(sessionID)
	if err != nil {
		return nil, err
	}
	result, err := s.Advance()
	if err != nil || result == nil {
		return nil, err
	}
	if err := a.appendResult(ctx, sessionID, result); err != nil {
		return nil, err
	}
	return result, nil
}

// EndEarly finalizes the exam with the answers given so far.
func (a *App) EndEarly(ctx context.Context, sessionID string) (*examsession.Result, error) {
	s, err := a.Session(sessionID)
	if err != nil {
		return nil, err
	}
	result, err := s.EndEarly()
	if err != nil {
		return nil, err
	}
	if err := a.appendResult(ctx, sessionID, result); err != nil {
		return nil, err
	}
	return result, nil
}

// RemoveCurrentQuestion permanently deletes the session's current
// question from the persisted bank, purges its stats, and drops it from
// the running snapshot. It reports whether the session ended because no
// questions remain (no result is produced in that case).
func (a *App) RemoveCurrentQuestion(ctx context.Context, sessionID string) (bool, error) {
	s, err := a.Session(sessionID)
	if err != nil {
		return false, err
	}

	removedID, empty := s.RemoveCurrent()
	if removedID != 0 {
		if err := a.DeleteQuestion(ctx, s.SubjectID, removedID); err != nil {
			return false, err
		}
	}
	if empty {
		a.dropSession(sessionID)
	}
	return empty, nil
}

func (a *App) recordAttempt(ctx context.Context, subjectID string, questionID int64, isCorrect bool) error {
	allStats, err := a.stats.Get(ctx)
	if err != nil {
		return err
	}
	if allStats == nil {
		allStats = make(map[string][]question.Stats)
	}
	allStats[subjectID] = question.RecordAttempt(allStats[subjectID], questionID, isCorrect, time.Now())
	return a.stats.Put(ctx, allStats)
}

// appendResult prepends the result to history and retires the session.
func (a *App) appendResult(ctx context.Context, sessionID string, result *examsession.Result) error {
	history, err := a.results.Get(ctx)
	if err != nil {
		return err
	}
	history = append([]examsession.Result{*result}, history...)
	if err := a.results.Put(ctx, history); err != nil {
		return err
	}
	a.dropSession(sessionID)
	return nil
}

func (a *App) dropSession(sessionID string) {
	a.mu.Lock()
	delete(a.sessions, sessionID)
	a.mu.Unlock()
}
