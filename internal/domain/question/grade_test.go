package question_test

import (
	"testing"

	"github.com/OpenAiTx/MiniExam/internal/domain/question"
)

func choiceQuestion(id int64, qtype question.Type, correct ...string) question.Question {
	return question.Question{
		ID:       id,
		Question: "q",
		Type:     qtype,
		Options: []question.Option{
			{Label: "A", Text: "a"},
			{Label: "B", Text: "b"},
			{Label: "C", Text: "c"},
			{Label: "D", Text: "d"},
		},
		CorrectAnswer: correct,
		Explanation:   "because",
	}
}

func fillInQuestion(id int64, accepted ...string) question.Question {
	return question.Question{
		ID:            id,
		Question:      "q",
		Type:          question.TypeFillInTheBlanks,
		CorrectAnswer: accepted,
		Explanation:   "because",
	}
}

func TestGrade_SingleChoice(t *testing.T) {
	q := choiceQuestion(1, question.TypeSingle, "B")

	if !question.Grade(q, []string{"B"}) {
		t.Error("expected B to be correct")
	}
	if question.Grade(q, []string{"A"}) {
		t.Error("expected A to be wrong")
	}
	if question.Grade(q, nil) {
		t.Error("expected empty selection to be wrong")
	}
}

func TestGrade_MultipleChoice_OrderIndependent(t *testing.T) {
	q := choiceQuestion(1, question.TypeMultiple, "A", "C")

	if !question.Grade(q, []string{"C", "A"}) {
		t.Error("expected [C A] to match [A C]")
	}
}

func TestGrade_MultipleChoice_ExtraOrMissingLabelsAreWrong(t *testing.T) {
	q := choiceQuestion(1, question.TypeMultiple, "A", "C")

	if question.Grade(q, []string{"A"}) {
		t.Error("missing label should be wrong")
	}
	if question.Grade(q, []string{"A", "C", "D"}) {
		t.Error("extra label should be wrong")
	}
}

func TestGrade_FillIn_CaseAndWhitespaceInsensitive(t *testing.T) {
	q := fillInQuestion(1, "TCP", "tcp")

	if !question.Grade(q, []string{" tcp "}) {
		t.Error(`expected " tcp " to match accepted answers`)
	}
	if !question.Grade(q, []string{"TCP"}) {
		t.Error("expected exact token to match")
	}
	if question.Grade(q, []string{"udp"}) {
		t.Error("expected udp to be wrong")
	}
	if question.Grade(q, nil) {
		t.Error("expected empty input to be wrong")
	}
}

func TestSetsEqual_DuplicateSensitive(t *testing.T) {
	if question.SetsEqual([]string{"A", "A"}, []string{"A"}) {
		t.Error("duplicate label should not equal single label")
	}
	if !question.SetsEqual([]string{"B", "A"}, []string{"A", "B"}) {
		t.Error("order should not matter")
	}
}

func TestValidate(t *testing.T) {
	valid := choiceQuestion(1, question.TypeSingle, "A")
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*question.Question)
	}{
		{"missing id", func(q *question.Question) { q.ID = 0 }},
		{"missing text", func(q *question.Question) { q.Question = " " }},
		{"bad type", func(q *question.Question) { q.Type = "essay" }},
		{"nil correctAnswer", func(q *question.Question) { q.CorrectAnswer = nil }},
		{"missing explanation", func(q *question.Question) { q.Explanation = "" }},
		{"choice without options", func(q *question.Question) { q.Options = nil }},
	}
	for _, tc := range cases {
		q := choiceQuestion(1, question.TypeSingle, "A")
		tc.mutate(&q)
		if err := q.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestValidate_FillInNeedsNoOptions(t *testing.T) {
	if err := fillInQuestion(1, "ack").Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
