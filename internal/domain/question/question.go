package question

import (
	"errors"
	"fmt"
	"strings"
)

type Type string

const (
	TypeSingle          Type = "single"
	TypeMultiple        Type = "multiple"
	TypeFillInTheBlanks Type = "fill_in_the_blanks"
)

// Valid reports whether t is one of the known question types.
func (t Type) Valid() bool {
	switch t {
	case TypeSingle, TypeMultiple, TypeFillInTheBlanks:
		return true
	}
	return false
}

// Option is one selectable choice. Labels are unique within a question.
type Option struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Question is a single exam question. For choice types CorrectAnswer
// holds option labels; for fill-in-the-blank it holds the accepted
// answer strings (matched case-insensitively) and Options is empty.
type Question struct {
	ID            int64    `json:"id"`
	Question      string   `json:"question"`
	Type          Type     `json:"type"`
	Options       []Option `json:"options"`
	CorrectAnswer []string `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
	Chapter       string   `json:"chapter,omitempty"`
}

// Validate checks the structural invariants a stored question must hold.
func (q Question) Validate() error {
	if q.ID == 0 {
		return errors.New("missing id")
	}
	if strings.TrimSpace(q.Question) == "" {
		return errors.New("missing question text")
	}
	if !q.Type.Valid() {
		return fmt.Errorf("invalid type %q", q.Type)
	}
	if q.CorrectAnswer == nil {
		return errors.New("missing correctAnswer array")
	}
	if strings.TrimSpace(q.Explanation) == "" {
		return errors.New("missing explanation")
	}
	if q.Type != TypeFillInTheBlanks && len(q.Options) == 0 {
		return errors.New("choice question has no options")
	}
	return nil
}

// IDs returns the question ids in order.
func IDs(questions []Question) []int64 {
	ids := make([]int64, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	return ids
}
