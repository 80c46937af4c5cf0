package service

import (
	"context"

	"github.com/OpenAiTx/MiniExam/internal/backup"
	"github.com/OpenAiTx/MiniExam/internal/domain/question"
)

// ExportBackup assembles the full transferable snapshot: the subject
// catalogue, every subject's resolved question bank, all stats, and the
// result history.
func (a *App) ExportBackup(ctx context.Context) (*backup.Backup, error) {
	subjects, err := a.Subjects(ctx)
	if err != nil {
		return nil, err
	}

	questions := make(map[string][]question.Question, len(subjects))
	for _, s := range subjects {
		if bankQuestions := a.loader.Load(ctx, s.ID); len(bankQuestions) > 0 {
			questions[s.ID] = bankQuestions
		}
	}

	allStats, err := a.stats.Get(ctx)
	if err != nil {
		return nil, err
	}
	history, err := a.results.Get(ctx)
	if err != nil {
		return nil, err
	}

	return &backup.Backup{
		Subjects:      subjects,
		Questions:     questions,
		QuestionStats: allStats,
		ExamResults:   history,
	}, nil
}

// ImportBackup validates the snapshot and applies every category it
// carries, replacing current data wholesale. A non-empty error list
// means the import was rejected and nothing was changed.
func (a *App) ImportBackup(ctx context.Context, b *backup.Backup) ([]backup.ValidationError, error) {
	if errs := b.Validate(); len(errs) > 0 {
		return errs, nil
	}

	if b.Subjects != nil {
		if err := a.subjects.Put(ctx, b.Subjects); err != nil {
			return nil, err
		}
	}
	for subjectID, questions := range b.Questions {
		if err := a.loader.Save(ctx, subjectID, questions); err != nil {
			return nil, err
		}
	}
	if b.QuestionStats != nil {
		if err := a.stats.Put(ctx, b.QuestionStats); err != nil {
			return nil, err
		}
	}
	if b.ExamResults != nil {
		if err := a.results.Put(ctx, b.ExamResults); err != nil {
			return nil, err
		}
	}
	return nil, nil
}
