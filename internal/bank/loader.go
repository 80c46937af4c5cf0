// Package bank loads and persists per-subject question banks. Custom
// (stored) questions take precedence over the bundled default set.
package bank

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/OpenAiTx/MiniExam/internal/domain/question"
	"github.com/OpenAiTx/MiniExam/internal/store"
)

// DefaultSource provides the bundled default question set for a
// subject.
type DefaultSource interface {
	Load(ctx context.Context, subjectID string) ([]question.Question, error)
}

// FSSource reads default question files named questions-{subjectId}.json
// from a filesystem, typically os.DirFS over the assets directory.
type FSSource struct {
	fsys fs.FS
}

func NewFSSource(fsys fs.FS) *FSSource {
	return &FSSource{fsys: fsys}
}

func (s *FSSource) Load(_ context.Context, subjectID string) ([]question.Question, error) {
	raw, err := fs.ReadFile(s.fsys, fmt.Sprintf("questions-%s.json", subjectID))
	if err != nil {
		return nil, err
	}
	var questions []question.Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// Loader resolves a subject's question bank.
type Loader struct {
	kv       store.KV
	defaults DefaultSource
	logger   *slog.Logger
}

func NewLoader(kv store.KV, defaults DefaultSource, logger *slog.Logger) *Loader {
	return &Loader{kv: kv, defaults: defaults, logger: logger}
}

// Load returns the subject's questions: the stored custom bank when one
// exists and is non-empty, otherwise the bundled default set. Load
// failures degrade to an empty list; the caller surfaces that as a
// notice, not a fatal error.
func (l *Loader) Load(ctx context.Context, subjectID string) []question.Question {
	raw, err := l.kv.Get(ctx, store.QuestionsKey(subjectID))
	if err == nil {
		var custom []question.Question
		if jsonErr := json.Unmarshal(raw, &custom); jsonErr != nil {
			l.logger.Error("corrupt custom question bank", "subject", subjectID, "error", jsonErr)
		} else if len(custom) > 0 {
			return custom
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		l.logger.Error("failed to load custom questions", "subject", subjectID, "error", err)
	}

	defaults, err := l.defaults.Load(ctx, subjectID)
	if err != nil {
		l.logger.Error("failed to load default questions", "subject", subjectID, "error", err)
		return nil
	}
	return defaults
}

// Save stores the subject's custom bank.
func (l *Loader) Save(ctx context.Context, subjectID string, questions []question.Question) error {
	raw, err := json.Marshal(questions)
	if err != nil {
		return err
	}
	return l.kv.Set(ctx, store.QuestionsKey(subjectID), raw)
}

// ResetToDefault discards the custom bank and returns the bundled
// default set.
func (l *Loader) ResetToDefault(ctx context.Context, subjectID string) ([]question.Question, error) {
	if err := l.kv.Delete(ctx, store.QuestionsKey(subjectID)); err != nil {
		return nil, err
	}
	return l.defaults.Load(ctx, subjectID)
}
