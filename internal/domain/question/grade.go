package question

import (
	"sort"
	"strings"
)

// Grade reports whether the selected answers are correct for q at
// submission time. Fill-in-the-blank answers match any accepted token
// after trimming and case folding; choice answers must equal the
// correct label set exactly (order-independent, extras count as wrong).
func Grade(q Question, selected []string) bool {
	if q.Type == TypeFillInTheBlanks {
		var given string
		if len(selected) > 0 {
			given = strings.ToLower(strings.TrimSpace(selected[0]))
		}
		for _, accepted := range q.CorrectAnswer {
			if strings.ToLower(strings.TrimSpace(accepted)) == given {
				return true
			}
		}
		return false
	}
	return SetsEqual(selected, q.CorrectAnswer)
}

// SetsEqual compares two answer lists as sorted sequences. It is
// duplicate-sensitive: ["A","A"] does not equal ["A"].
func SetsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}
