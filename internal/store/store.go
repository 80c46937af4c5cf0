package store

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("not found")
)

// Storage keys. Question banks are partitioned by subject id.
const (
	KeySubjects    = "custom-subjects"
	KeyStats       = "question-stats"
	KeyExamResults = "exam-results"
)

// QuestionsKey returns the bank key for one subject.
func QuestionsKey(subjectID string) string {
	return "custom-questions-" + subjectID
}

// KV is the string-keyed get/set/delete contract everything persists
// through. Get returns ErrNotFound for absent keys.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
