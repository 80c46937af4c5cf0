package examsession

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/OpenAiTx/MiniExam/internal/domain/question"
)

// AnswerRecord is a denormalized per-question snapshot inside a Result.
// Copies, not references: history stays valid after the question is
// edited or deleted.
type AnswerRecord struct {
	QuestionID     int64         `json:"questionId"`
	Question       string        `json:"question"`
	QuestionType   question.Type `json:"questionType"`
	SelectedAnswer []string      `json:"selectedAnswer"`
	CorrectAnswer  []string      `json:"correctAnswer"`
	IsCorrect      bool          `json:"isCorrect"`
	Explanation    string        `json:"explanation"`
}

// Result is the immutable record of one completed exam.
type Result struct {
	ID             string         `json:"id"`
	Date           int64          `json:"date"` // unix milliseconds
	Score          int            `json:"score"`
	TotalQuestions int            `json:"totalQuestions"`
	CorrectAnswers int            `json:"correctAnswers"`
	TimeSpent      int64          `json:"timeSpent"` // milliseconds
	SubjectID      string         `json:"subjectId"`
	Answers        []AnswerRecord `json:"answers"`
}

// finish builds the result over the full session snapshot, not just the
// answered questions. Answers are deduped by question id (first
// submission wins, so the duplicate appended for the in-flight current
// question is ignored), unanswered questions score as wrong with an
// empty selection, and correctness is recomputed with the sorted
// set-equality rule for every type.
func (s *Session) finish(answers []Answer) *Result {
	now := time.Now()
	byID := make(map[int64]Answer, len(answers))
	for _, a := range answers {
		if _, seen := byID[a.QuestionID]; !seen {
			byID[a.QuestionID] = a
		}
	}

	correctCount := 0
	records := make([]AnswerRecord, len(s.Questions))
	for i, q := range s.Questions {
		selected := []string{}
		isCorrect := false
		if a, ok := byID[q.ID]; ok {
			selected = append(selected, a.Answer...)
			isCorrect = question.SetsEqual(a.Answer, q.CorrectAnswer)
		}
		if isCorrect {
			correctCount++
		}
		records[i] = AnswerRecord{
			QuestionID:     q.ID,
			Question:       q.Question,
			QuestionType:   q.Type,
			SelectedAnswer: selected,
			CorrectAnswer:  q.CorrectAnswer,
			IsCorrect:      isCorrect,
			Explanation:    q.Explanation,
		}
	}

	return &Result{
		ID:             uuid.NewString(),
		Date:           now.UnixMilli(),
		Score:          int(math.Round(float64(correctCount) / float64(len(s.Questions)) * 100)),
		TotalQuestions: len(s.Questions),
		CorrectAnswers: correctCount,
		TimeSpent:      now.Sub(s.startedAt).Milliseconds(),
		SubjectID:      s.SubjectID,
		Answers:        records,
	}
}
