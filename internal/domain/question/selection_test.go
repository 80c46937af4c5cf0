package question_test

import (
	"testing"

	"github.com/OpenAiTx/MiniExam/internal/domain/question"
)

func bank(n int) []question.Question {
	questions := make([]question.Question, n)
	for i := range questions {
		questions[i] = choiceQuestion(int64(i+1), question.TypeSingle, "A")
	}
	return questions
}

func idsOf(questions []question.Question) map[int64]bool {
	ids := make(map[int64]bool, len(questions))
	for _, q := range questions {
		ids[q.ID] = true
	}
	return ids
}

func TestWrong(t *testing.T) {
	questions := bank(4)
	stats := []question.Stats{
		{QuestionID: 1, IncorrectCount: 1},
		{QuestionID: 2, CorrectCount: 3},
		{QuestionID: 3, IncorrectCount: 2},
	}

	wrong := question.Wrong(stats, questions)
	got := idsOf(wrong)
	if len(wrong) != 2 || !got[1] || !got[3] {
		t.Errorf("expected questions 1 and 3, got %v", got)
	}
}

func TestUnattempted_AnyStatEntryCountsAsAttempted(t *testing.T) {
	questions := bank(3)
	// Question 2 was only ever marked important: zero counts, but it
	// has an entry, so it is not unattempted.
	stats := []question.Stats{
		{QuestionID: 1, CorrectCount: 1},
		{QuestionID: 2, IsImportant: true},
	}

	unattempted := question.Unattempted(stats, questions)
	if len(unattempted) != 1 || unattempted[0].ID != 3 {
		t.Errorf("expected only question 3, got %v", idsOf(unattempted))
	}
}

func TestImportant(t *testing.T) {
	questions := bank(3)
	stats := []question.Stats{
		{QuestionID: 1, IsImportant: true},
		{QuestionID: 2},
	}

	important := question.Important(stats, questions)
	if len(important) != 1 || important[0].ID != 1 {
		t.Errorf("expected only question 1, got %v", idsOf(important))
	}
}

func TestFrequentlyWrong_IsSubsetOfWrong(t *testing.T) {
	questions := bank(5)
	stats := []question.Stats{
		{QuestionID: 1, IncorrectCount: 1},
		{QuestionID: 2, IncorrectCount: 2},
		{QuestionID: 3, IncorrectCount: 5},
	}

	wrong := idsOf(question.Wrong(stats, questions))
	frequent := question.FrequentlyWrong(stats, questions)

	if len(frequent) != 2 {
		t.Fatalf("expected 2 frequently wrong questions, got %d", len(frequent))
	}
	for _, q := range frequent {
		if !wrong[q.ID] {
			t.Errorf("question %d frequently wrong but not wrong", q.ID)
		}
	}
}

func TestUnattemptedAndWrongAreDisjoint(t *testing.T) {
	questions := bank(6)
	stats := []question.Stats{
		{QuestionID: 2, IncorrectCount: 1},
		{QuestionID: 4, CorrectCount: 1},
	}

	wrong := idsOf(question.Wrong(stats, questions))
	for _, q := range question.Unattempted(stats, questions) {
		if wrong[q.ID] {
			t.Errorf("question %d is both unattempted and wrong", q.ID)
		}
	}
}

func TestRandomSample_ReturnsAllWhenCountExceedsBank(t *testing.T) {
	questions := bank(5)
	sample := question.RandomSample(10, questions)

	if len(sample) != 5 {
		t.Fatalf("expected all 5 questions, got %d", len(sample))
	}
	seen := idsOf(sample)
	for _, q := range questions {
		if !seen[q.ID] {
			t.Errorf("question %d missing from full sample", q.ID)
		}
	}
}

func TestRandomSample_Truncates(t *testing.T) {
	sample := question.RandomSample(3, bank(10))
	if len(sample) != 3 {
		t.Errorf("expected 3 questions, got %d", len(sample))
	}
	if len(idsOf(sample)) != 3 {
		t.Error("sample contains duplicates")
	}
}

func TestRandomSample_NegativeCountSelectsNothing(t *testing.T) {
	if got := question.RandomSample(-1, bank(3)); len(got) != 0 {
		t.Errorf("RandomSample(-1) returned %d questions, want 0", len(got))
	}
}

func TestShuffle_DoesNotMutateInput(t *testing.T) {
	questions := bank(20)
	question.Shuffle(questions)
	for i, q := range questions {
		if q.ID != int64(i+1) {
			t.Fatal("input slice was mutated")
		}
	}
}

func TestShuffle_ChangesOrder(t *testing.T) {
	questions := bank(20)
	first := question.Shuffle(questions)
	for i := 0; i < 10; i++ {
		next := question.Shuffle(questions)
		for j := range next {
			if next[j].ID != first[j].ID {
				return
			}
		}
	}
	t.Error("expected shuffled order to differ across runs")
}
