package question

import "math/rand"

// Selection filters derive the named practice subsets from a subject's
// question list and stats. None of them mutate their inputs; an empty
// result is a no-op signal for the caller, not an error.

// Wrong returns the questions answered incorrectly at least once.
func Wrong(stats []Stats, questions []Question) []Question {
	ids := make(map[int64]struct{})
	for _, s := range stats {
		if s.IncorrectCount > 0 {
			ids[s.QuestionID] = struct{}{}
		}
	}
	return withIDs(questions, ids)
}

// Unattempted returns the questions with no stat entry at all. A
// zero-count entry created by marking a question important still counts
// as attempted.
func Unattempted(stats []Stats, questions []Question) []Question {
	attempted := make(map[int64]struct{}, len(stats))
	for _, s := range stats {
		attempted[s.QuestionID] = struct{}{}
	}
	var out []Question
	for _, q := range questions {
		if _, ok := attempted[q.ID]; !ok {
			out = append(out, q)
		}
	}
	return out
}

// Important returns the questions flagged important.
func Important(stats []Stats, questions []Question) []Question {
	ids := make(map[int64]struct{})
	for _, s := range stats {
		if s.IsImportant {
			ids[s.QuestionID] = struct{}{}
		}
	}
	return withIDs(questions, ids)
}

// FrequentlyWrong returns the questions answered incorrectly at least
// twice.
func FrequentlyWrong(stats []Stats, questions []Question) []Question {
	ids := make(map[int64]struct{})
	for _, s := range stats {
		if s.IncorrectCount >= 2 {
			ids[s.QuestionID] = struct{}{}
		}
	}
	return withIDs(questions, ids)
}

// RandomSample returns up to n questions drawn without replacement, in
// shuffled order. A count below zero selects nothing.
func RandomSample(n int, questions []Question) []Question {
	shuffled := Shuffle(questions)
	if n < 0 {
		n = 0
	}
	if n < len(shuffled) {
		shuffled = shuffled[:n]
	}
	return shuffled
}

// Shuffle returns a new slice with the questions in random order.
func Shuffle(questions []Question) []Question {
	shuffled := make([]Question, len(questions))
	copy(shuffled, questions)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

func withIDs(questions []Question, ids map[int64]struct{}) []Question {
	var out []Question
	for _, q := range questions {
		if _, ok := ids[q.ID]; ok {
			out = append(out, q)
		}
	}
	return out
}
