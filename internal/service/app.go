// Package service coordinates the domain components against the
// key-value store. Every mutation is flushed to the store before the
// call returns; the running process is the only writer.
package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/OpenAiTx/MiniExam/internal/backup"
	"github.com/OpenAiTx/MiniExam/internal/bank"
	"github.com/OpenAiTx/MiniExam/internal/domain/examsession"
	"github.com/OpenAiTx/MiniExam/internal/domain/question"
	"github.com/OpenAiTx/MiniExam/internal/domain/subject"
	"github.com/OpenAiTx/MiniExam/internal/store"
)

type App struct {
	kv     store.KV
	loader *bank.Loader
	logger *slog.Logger

	subjects *store.Repository[[]subject.Subject]
	stats    *store.Repository[map[string][]question.Stats]
	results  *store.Repository[[]examsession.Result]

	mu       sync.Mutex
	sessions map[string]*examsession.Session
}

func New(kv store.KV, loader *bank.Loader, logger *slog.Logger) *App {
	return &App{
		kv:       kv,
		loader:   loader,
		logger:   logger,
		subjects: store.NewRepository[[]subject.Subject](kv, store.KeySubjects),
		stats:    store.NewRepository[map[string][]question.Stats](kv, store.KeyStats),
		results:  store.NewRepository[[]examsession.Result](kv, store.KeyExamResults),
		sessions: make(map[string]*examsession.Session),
	}
}

// Subjects returns the stored catalogue, or the bundled defaults when
// nothing custom has been saved.
func (a *App) Subjects(ctx context.Context) ([]subject.Subject, error) {
	stored, err := a.subjects.Get(ctx)
	if err != nil {
		a.logger.Error("failed to load custom subjects", "error", err)
		return subject.Defaults(), nil
	}
	if len(stored) > 0 {
		return stored, nil
	}
	return subject.Defaults(), nil
}

// SaveSubjects replaces the subject catalogue. Question banks, stats,
// and results of removed subjects are left in place.
func (a *App) SaveSubjects(ctx context.Context, subjects []subject.Subject) error {
	return a.subjects.Put(ctx, subjects)
}

// Questions returns the subject's question bank, custom over default.
// An empty result means the bank could not be loaded; callers surface
// that as a notice.
func (a *App) Questions(ctx context.Context, subjectID string) []question.Question {
	return a.loader.Load(ctx, subjectID)
}

// SaveQuestions replaces the subject's custom bank.
func (a *App) SaveQuestions(ctx context.Context, subjectID string, questions []question.Question) error {
	return a.loader.Save(ctx, subjectID, questions)
}

// UpdateQuestion replaces a question by id in the stored bank and in
// the live session snapshots showing it, so an edit made mid-exam is
// visible on the next display.
func (a *App) UpdateQuestion(ctx context.Context, subjectID string, q question.Question) error {
	bankQuestions := a.loader.Load(ctx, subjectID)
	for i := range bankQuestions {
		if bankQuestions[i].ID == q.ID {
			bankQuestions[i] = q
		}
	}
	if err := a.loader.Save(ctx, subjectID, bankQuestions); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	for _, s := range a.sessions {
		if s.SubjectID != subjectID {
			continue
		}
		for i := range s.Questions {
			if s.Questions[i].ID == q.ID {
				s.Questions[i] = q
			}
		}
	}
	return nil
}

// DeleteQuestion permanently removes a question from the bank and
// purges its stat entry.
func (a *App) DeleteQuestion(ctx context.Context, subjectID string, questionID int64) error {
	bankQuestions := a.loader.Load(ctx, subjectID)
	remaining := make([]question.Question, 0, len(bankQuestions))
	for _, q := range bankQuestions {
		if q.ID != questionID {
			remaining = append(remaining, q)
		}
	}
	if err := a.loader.Save(ctx, subjectID, remaining); err != nil {
		return err
	}
	return a.removeStat(ctx, subjectID, questionID)
}

// ResetQuestions restores the subject's bundled default bank and wipes
// the subject's stats.
func (a *App) ResetQuestions(ctx context.Context, subjectID string) ([]question.Question, error) {
	defaults, err := a.loader.ResetToDefault(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	allStats, err := a.stats.Get(ctx)
	if err != nil {
		return nil, err
	}
	delete(allStats, subjectID)
	if err := a.stats.Put(ctx, allStats); err != nil {
		return nil, err
	}
	return defaults, nil
}

// ImportQuestions validates an uploaded question array and merges it
// into the subject's bank under the chosen policy. A non-empty error
// list means the batch was rejected and nothing was applied.
func (a *App) ImportQuestions(ctx context.Context, subjectID string, uploaded []question.Question, policy backup.MergePolicy) ([]question.Question, []backup.ValidationError, error) {
	if errs := backup.ValidateQuestions(uploaded); len(errs) > 0 {
		return nil, errs, nil
	}

	existing := a.loader.Load(ctx, subjectID)
	merged, err := backup.Merge(existing, uploaded, policy)
	if err != nil {
		return nil, nil, err
	}
	if err := a.loader.Save(ctx, subjectID, merged); err != nil {
		return nil, nil, err
	}
	return merged, nil, nil
}

// SubjectStats returns the stat entries for one subject.
func (a *App) SubjectStats(ctx context.Context, subjectID string) ([]question.Stats, error) {
	allStats, err := a.stats.Get(ctx)
	if err != nil {
		return nil, err
	}
	return allStats[subjectID], nil
}

// ToggleImportant flips a question's importance flag.
func (a *App) ToggleImportant(ctx context.Context, subjectID string, questionID int64) error {
	allStats, err := a.stats.Get(ctx)
	if err != nil {
		return err
	}
	if allStats == nil {
		allStats = make(map[string][]question.Stats)
	}
	allStats[subjectID] = question.ToggleImportant(allStats[subjectID], questionID)
	return a.stats.Put(ctx, allStats)
}

// ClearQuestionStats deletes one question's stat entry.
func (a *App) ClearQuestionStats(ctx context.Context, subjectID string, questionID int64) error {
	return a.removeStat(ctx, subjectID, questionID)
}

// QuestionAccuracy joins a stat entry to its question's text for the
// statistics view.
type QuestionAccuracy struct {
	QuestionID     int64   `json:"questionId"`
	Question       string  `json:"question"`
	CorrectCount   int     `json:"correctCount"`
	IncorrectCount int     `json:"incorrectCount"`
	Accuracy       float64 `json:"accuracy"`
	IsImportant    bool    `json:"isImportant,omitempty"`
}

// SubjectAccuracy lists every attempted question of a subject with its
// text and accuracy ratio. Entries whose question no longer exists in
// the bank are skipped.
func (a *App) SubjectAccuracy(ctx context.Context, subjectID string) ([]QuestionAccuracy, error) {
	stats, err := a.SubjectStats(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]question.Question)
	for _, q := range a.loader.Load(ctx, subjectID) {
		byID[q.ID] = q
	}

	listing := make([]QuestionAccuracy, 0, len(stats))
	for _, s := range stats {
		q, ok := byID[s.QuestionID]
		if !ok {
			continue
		}
		entry := QuestionAccuracy{
			QuestionID:     s.QuestionID,
			Question:       q.Question,
			CorrectCount:   s.CorrectCount,
			IncorrectCount: s.IncorrectCount,
			IsImportant:    s.IsImportant,
		}
		if total := s.CorrectCount + s.IncorrectCount; total > 0 {
			entry.Accuracy = float64(s.CorrectCount) / float64(total)
		}
		listing = append(listing, entry)
	}
	return listing, nil
}

// AllStats returns every subject's stat entries.
func (a *App) AllStats(ctx context.Context) (map[string][]question.Stats, error) {
	return a.stats.Get(ctx)
}

// Results returns the exam history, newest first.
func (a *App) Results(ctx context.Context) ([]examsession.Result, error) {
	return a.results.Get(ctx)
}

// ClearAllData wipes every stat entry and the whole exam history.
// Question banks and subjects survive.
func (a *App) ClearAllData(ctx context.Context) error {
	if err := a.stats.Put(ctx, map[string][]question.Stats{}); err != nil {
		return err
	}
	return a.results.Put(ctx, []examsession.Result{})
}

func (a *App) removeStat(ctx context.Context, subjectID string, questionID int64) error {
	allStats, err := a.stats.Get(ctx)
	if err != nil {
		return err
	}
	if allStats == nil {
		return nil
	}
	allStats[subjectID] = question.RemoveStat(allStats[subjectID], questionID)
	return a.stats.Put(ctx, allStats)
}
