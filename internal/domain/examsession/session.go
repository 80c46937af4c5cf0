package examsession

import (
	"errors"
	"time"

	"github.com/OpenAiTx/MiniExam/internal/domain/question"
	"github.com/OpenAiTx/MiniExam/internal/id"
)

type Mode string

const (
	ModeAll             Mode = "all"
	ModeRandom          Mode = "random"
	ModeWrong           Mode = "wrong"
	ModeUnattempted     Mode = "unattempted"
	ModeImportant       Mode = "important"
	ModeFrequentlyWrong Mode = "frequently-wrong"
)

var (
	// ErrNoQuestions means the subject's question bank is empty.
	ErrNoQuestions = errors.New("no questions loaded")
	// ErrNoMatches means the mode's selection filter produced nothing.
	// Not a failure: the caller surfaces a message and stays put.
	ErrNoMatches = errors.New("no questions match the selected mode")
	// ErrAlreadyScored means the current question was already submitted.
	ErrAlreadyScored = errors.New("question already scored")
	// ErrNoSelection means submit was called with nothing selected.
	ErrNoSelection = errors.New("no answer selected")
	// ErrNothingAnswered means the exam cannot finish because not a
	// single question was answered.
	ErrNothingAnswered = errors.New("no questions answered yet")
)

// Answer is one submitted answer, keyed by question id.
type Answer struct {
	QuestionID int64    `json:"questionId"`
	Answer     []string `json:"answer"`
}

// Session drives a single exam attempt over a fixed snapshot of
// questions. It is not safe for concurrent use; the application runs at
// most one session at a time and serializes transitions on user events.
type Session struct {
	ID        string
	SubjectID string
	Mode      Mode
	Questions []question.Question

	index      int
	selected   []string
	answers    []Answer
	showAnswer bool
	correct    bool
	startedAt  time.Time
}

// Start snapshots the question set for one attempt. Targeted modes
// (wrong, unattempted, important, frequently-wrong) keep the filter's
// order; "all" shuffles the whole bank; "random" shuffles and truncates
// to count.
func Start(subjectID string, questions []question.Question, stats []question.Stats, mode Mode, count int) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	var snapshot []question.Question
	switch mode {
	case ModeWrong:
		snapshot = question.Wrong(stats, questions)
	case ModeUnattempted:
		snapshot = question.Unattempted(stats, questions)
	case ModeImportant:
		snapshot = question.Important(stats, questions)
	case ModeFrequentlyWrong:
		snapshot = question.FrequentlyWrong(stats, questions)
	case ModeRandom:
		snapshot = question.RandomSample(count, questions)
	default:
		mode = ModeAll
		snapshot = question.Shuffle(questions)
	}
	if len(snapshot) == 0 {
		return nil, ErrNoMatches
	}

	return &Session{
		ID:        id.GenerateID(),
		SubjectID: subjectID,
		Mode:      mode,
		Questions: snapshot,
		startedAt: time.Now(),
	}, nil
}

// Current returns the question at the cursor.
func (s *Session) Current() (question.Question, bool) {
	if s.index < 0 || s.index >= len(s.Questions) {
		return question.Question{}, false
	}
	return s.Questions[s.index], true
}

// Index returns the cursor position.
func (s *Session) Index() int { return s.index }

// Selected returns the pending selection for the current question.
func (s *Session) Selected() []string {
	return append([]string(nil), s.selected...)
}

// Scored reports whether the current question has been submitted.
func (s *Session) Scored() bool { return s.showAnswer }

// Correct reports the correctness of the current scored question.
// Meaningful only while Scored is true.
func (s *Session) Correct() bool { return s.correct }

// Answers returns the submissions recorded so far, in order.
func (s *Session) Answers() []Answer {
	return append([]Answer(nil), s.answers...)
}

// SelectAnswer updates the pending selection. Single-answer and
// fill-in-the-blank questions replace the selection; multiple-answer
// questions toggle membership. Once the current question is scored the
// selection is locked and this is a no-op.
func (s *Session) SelectAnswer(answer string, allowMultiple bool) {
	if s.showAnswer {
		return
	}
	if !allowMultiple {
		s.selected = []string{answer}
		return
	}
	for i, a := range s.selected {
		if a == answer {
			s.selected = append(s.selected[:i], s.selected[i+1:]...)
			return
		}
	}
	s.selected = append(s.selected, answer)
}

// Submit scores the pending selection against the current question,
// records it, and locks the question until the session restarts. The
// caller feeds the result to the stats reconciler and shows the
// explanation.
func (s *Session) Submit() (bool, string, error) {
	cur, ok := s.Current()
	if !ok {
		return false, "", ErrNoQuestions
	}
	if s.showAnswer {
		return false, "", ErrAlreadyScored
	}
	if len(s.selected) == 0 && cur.Type != question.TypeFillInTheBlanks {
		return false, "", ErrNoSelection
	}

	correct := question.Grade(cur, s.selected)
	s.answers = append(s.answers, Answer{QuestionID: cur.ID, Answer: append([]string(nil), s.selected...)})
	s.showAnswer = true
	s.correct = correct
	return correct, cur.Explanation, nil
}

// JumpTo moves the cursor. Out-of-range indexes are a silent no-op. If
// the target was already answered its submission and correctness are
// restored for display; otherwise the pending selection is cleared. The
// answer map is never changed.
func (s *Session) JumpTo(index int) {
	if index < 0 || index >= len(s.Questions) {
		return
	}
	target := s.Questions[index]
	if prev, ok := s.answerFor(target.ID); ok {
		s.selected = append([]string(nil), prev.Answer...)
		s.showAnswer = true
		s.correct = question.Grade(target, prev.Answer)
	} else {
		s.selected = nil
		s.showAnswer = false
		s.correct = false
	}
	s.index = index
}

// Retreat moves back one question.
func (s *Session) Retreat() {
	if s.index > 0 {
		s.JumpTo(s.index - 1)
	}
}

// Advance moves forward one question, or completes the exam when the
// cursor is already on the last question. Completion uses every scored
// answer plus the current question's in-flight answer if it was scored
// but not yet flushed; with nothing answered it returns
// ErrNothingAnswered and the session stays open.
func (s *Session) Advance() (*Result, error) {
	if s.index < len(s.Questions)-1 {
		s.JumpTo(s.index + 1)
		return nil, nil
	}

	answered := s.answeredInSnapshot()
	if s.showAnswer {
		if cur, ok := s.Current(); ok {
			answered = append(answered, Answer{QuestionID: cur.ID, Answer: append([]string(nil), s.selected...)})
		}
	}
	if len(answered) == 0 {
		return nil, ErrNothingAnswered
	}
	return s.finish(answered), nil
}

// EndEarly finalizes the exam with whatever was answered so far. It is
// rejected when nothing has been answered or selected yet.
func (s *Session) EndEarly() (*Result, error) {
	answered := s.answeredInSnapshot()
	if s.showAnswer && len(s.selected) > 0 {
		if cur, ok := s.Current(); ok {
			answered = append(answered, Answer{QuestionID: cur.ID, Answer: append([]string(nil), s.selected...)})
		}
	}
	if len(answered) == 0 {
		return nil, ErrNothingAnswered
	}
	return s.finish(answered), nil
}

// RemoveCurrent drops the current question from the session snapshot,
// clamping the cursor back into range. It returns the removed question
// id and whether the session ran out of questions; the caller persists
// the bank change and purges the question's stats. A zero id means no
// question was current and nothing was removed. When the session is
// emptied no result is produced.
func (s *Session) RemoveCurrent() (int64, bool) {
	cur, ok := s.Current()
	if !ok {
		return 0, true
	}

	remaining := make([]question.Question, 0, len(s.Questions)-1)
	for _, q := range s.Questions {
		if q.ID != cur.ID {
			remaining = append(remaining, q)
		}
	}
	s.Questions = remaining

	if len(s.Questions) == 0 {
		return cur.ID, true
	}
	if s.index >= len(s.Questions) {
		s.index = len(s.Questions) - 1
	}
	s.selected = nil
	s.showAnswer = false
	s.correct = false
	return cur.ID, false
}

func (s *Session) answerFor(questionID int64) (Answer, bool) {
	for _, a := range s.answers {
		if a.QuestionID == questionID {
			return a, true
		}
	}
	return Answer{}, false
}

// answeredInSnapshot filters the answer list down to questions still in
// the session (removed questions drop out).
func (s *Session) answeredInSnapshot() []Answer {
	inSession := make(map[int64]struct{}, len(s.Questions))
	for _, q := range s.Questions {
		inSession[q.ID] = struct{}{}
	}
	var out []Answer
	for _, a := range s.answers {
		if _, ok := inSession[a.QuestionID]; ok {
			out = append(out, a)
		}
	}
	return out
}
