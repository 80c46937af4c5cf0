package question_test

import (
	"testing"
	"time"

	"github.com/OpenAiTx/MiniExam/internal/domain/question"
)

func TestRecordAttempt_CreatesEntry(t *testing.T) {
	now := time.Now()
	stats := question.RecordAttempt(nil, 7, true, now)

	if len(stats) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(stats))
	}
	s := stats[0]
	if s.QuestionID != 7 || s.CorrectCount != 1 || s.IncorrectCount != 0 {
		t.Errorf("unexpected entry: %+v", s)
	}
	if s.LastAttempt != now.UnixMilli() {
		t.Errorf("expected lastAttempt %d, got %d", now.UnixMilli(), s.LastAttempt)
	}
}

func TestRecordAttempt_IncrementsExactlyOneCounter(t *testing.T) {
	now := time.Now()
	stats := []question.Stats{{QuestionID: 7, CorrectCount: 2, IncorrectCount: 1, IsImportant: true}}

	updated := question.RecordAttempt(stats, 7, false, now)

	s := updated[0]
	if s.CorrectCount != 2 {
		t.Errorf("correct count changed: %d", s.CorrectCount)
	}
	if s.IncorrectCount != 2 {
		t.Errorf("expected incorrect count 2, got %d", s.IncorrectCount)
	}
	if !s.IsImportant {
		t.Error("importance flag lost on attempt")
	}
	// input untouched
	if stats[0].IncorrectCount != 1 {
		t.Error("input slice was mutated")
	}
}

func TestToggleImportant_NewEntryHasZeroCounts(t *testing.T) {
	stats := question.ToggleImportant(nil, 3)

	if len(stats) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(stats))
	}
	s := stats[0]
	if !s.IsImportant || s.CorrectCount != 0 || s.IncorrectCount != 0 {
		t.Errorf("unexpected entry: %+v", s)
	}
}

func TestToggleImportant_FlipsBack(t *testing.T) {
	stats := question.ToggleImportant(nil, 3)
	stats = question.ToggleImportant(stats, 3)

	if stats[0].IsImportant {
		t.Error("expected flag cleared after second toggle")
	}
	if len(stats) != 1 {
		t.Errorf("toggle should not duplicate entries, got %d", len(stats))
	}
}

func TestRemoveStat(t *testing.T) {
	stats := []question.Stats{{QuestionID: 1}, {QuestionID: 2}, {QuestionID: 3}}

	updated := question.RemoveStat(stats, 2)

	if len(updated) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(updated))
	}
	for _, s := range updated {
		if s.QuestionID == 2 {
			t.Error("entry 2 should have been removed")
		}
	}
}
