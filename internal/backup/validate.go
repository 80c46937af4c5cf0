package backup

import (
	"fmt"

	"github.com/OpenAiTx/MiniExam/internal/domain/examsession"
	"github.com/OpenAiTx/MiniExam/internal/domain/question"
	"github.com/OpenAiTx/MiniExam/internal/domain/subject"
)

// Backup is the full transferable snapshot. Any subset of the fields
// may be present; question banks and stats are keyed by subject id.
type Backup struct {
	Subjects      []subject.Subject              `json:"subjects,omitempty"`
	Questions     map[string][]question.Question `json:"questions,omitempty"`
	QuestionStats map[string][]question.Stats    `json:"questionStats,omitempty"`
	ExamResults   []examsession.Result           `json:"examResults,omitempty"`
}

// Empty reports whether the backup holds no data at all.
func (b *Backup) Empty() bool {
	return len(b.Subjects) == 0 && len(b.Questions) == 0 &&
		len(b.QuestionStats) == 0 && len(b.ExamResults) == 0
}

// ValidationError locates one offending record in an uploaded batch.
type ValidationError struct {
	Path    string `json:"path"` // e.g. questions["network"][2]
	ID      int64  `json:"id,omitempty"` // offending record id when known
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("%s (id: %d): %s", e.Path, e.ID, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidateQuestions checks an uploaded question array for a
// single-subject import. All violations are collected; a non-empty
// return rejects the whole batch with no partial application.
func ValidateQuestions(uploaded []question.Question) []ValidationError {
	var errs []ValidationError
	for i, q := range uploaded {
		if err := q.Validate(); err != nil {
			errs = append(errs, ValidationError{
				Path:    fmt.Sprintf("questions[%d]", i),
				ID:      q.ID,
				Message: err.Error(),
			})
		}
	}
	return errs
}

// Validate checks a full backup before any of it is applied. A backup
// carrying no categories at all is rejected outright.
func (b *Backup) Validate() []ValidationError {
	var errs []ValidationError

	if b.Empty() {
		return []ValidationError{{Path: "backup", Message: "no importable data found"}}
	}

	for i, s := range b.Subjects {
		if s.ID == "" {
			errs = append(errs, ValidationError{Path: fmt.Sprintf("subjects[%d]", i), Message: "missing id"})
		}
		if s.Name == "" {
			errs = append(errs, ValidationError{Path: fmt.Sprintf("subjects[%d]", i), Message: "missing name"})
		}
	}

	for subjectID, questions := range b.Questions {
		for i, q := range questions {
			if q.ID == 0 {
				errs = append(errs, ValidationError{
					Path:    fmt.Sprintf("questions[%q][%d]", subjectID, i),
					Message: "missing id",
				})
			}
			if q.Question == "" {
				errs = append(errs, ValidationError{
					Path:    fmt.Sprintf("questions[%q][%d]", subjectID, i),
					ID:      q.ID,
					Message: "missing question text",
				})
			}
			if !q.Type.Valid() {
				errs = append(errs, ValidationError{
					Path:    fmt.Sprintf("questions[%q][%d]", subjectID, i),
					ID:      q.ID,
					Message: fmt.Sprintf("invalid type %q", q.Type),
				})
			}
			if q.CorrectAnswer == nil {
				errs = append(errs, ValidationError{
					Path:    fmt.Sprintf("questions[%q][%d]", subjectID, i),
					ID:      q.ID,
					Message: "missing correctAnswer array",
				})
			}
		}
	}

	for subjectID, stats := range b.QuestionStats {
		for i, s := range stats {
			if s.QuestionID == 0 {
				errs = append(errs, ValidationError{
					Path:    fmt.Sprintf("questionStats[%q][%d]", subjectID, i),
					Message: "missing questionId",
				})
			}
			if s.CorrectCount < 0 || s.IncorrectCount < 0 {
				errs = append(errs, ValidationError{
					Path:    fmt.Sprintf("questionStats[%q][%d]", subjectID, i),
					ID:      s.QuestionID,
					Message: "negative counter",
				})
			}
		}
	}

	for i, r := range b.ExamResults {
		if r.ID == "" {
			errs = append(errs, ValidationError{Path: fmt.Sprintf("examResults[%d]", i), Message: "missing id"})
		}
		if r.SubjectID == "" {
			errs = append(errs, ValidationError{Path: fmt.Sprintf("examResults[%d]", i), Message: "missing subjectId"})
		}
		if r.Answers == nil {
			errs = append(errs, ValidationError{Path: fmt.Sprintf("examResults[%d]", i), Message: "missing answers array"})
		}
	}

	return errs
}
