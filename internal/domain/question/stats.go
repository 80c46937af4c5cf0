package question

import "time"

// Stats tracks one question's answering history within a subject.
type Stats struct {
	QuestionID     int64 `json:"questionId"`
	CorrectCount   int   `json:"correctCount"`
	IncorrectCount int   `json:"incorrectCount"`
	LastAttempt    int64 `json:"lastAttempt,omitempty"` // unix milliseconds
	IsImportant    bool  `json:"isImportant,omitempty"`
}

// RecordAttempt upserts the stat entry for questionID, incrementing
// exactly one counter and stamping the attempt time. The importance
// flag and the other counter are left untouched.
func RecordAttempt(stats []Stats, questionID int64, isCorrect bool, now time.Time) []Stats {
	out := append([]Stats(nil), stats...)
	for i := range out {
		if out[i].QuestionID != questionID {
			continue
		}
		if isCorrect {
			out[i].CorrectCount++
		} else {
			out[i].IncorrectCount++
		}
		out[i].LastAttempt = now.UnixMilli()
		return out
	}
	entry := Stats{QuestionID: questionID, LastAttempt: now.UnixMilli()}
	if isCorrect {
		entry.CorrectCount = 1
	} else {
		entry.IncorrectCount = 1
	}
	return append(out, entry)
}

// ToggleImportant flips the importance flag, creating a zero-count
// entry if the question has never been attempted.
func ToggleImportant(stats []Stats, questionID int64) []Stats {
	out := append([]Stats(nil), stats...)
	for i := range out {
		if out[i].QuestionID == questionID {
			out[i].IsImportant = !out[i].IsImportant
			return out
		}
	}
	return append(out, Stats{QuestionID: questionID, IsImportant: true})
}

// RemoveStat deletes the entry for questionID. Destructive: the
// counters are not recoverable from exam history.
func RemoveStat(stats []Stats, questionID int64) []Stats {
	var out []Stats
	for _, s := range stats {
		if s.QuestionID != questionID {
			out = append(out, s)
		}
	}
	return out
}
