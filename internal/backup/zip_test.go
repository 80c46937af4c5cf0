package backup_test

import (
	"archive/zip"
	"bytes"
	"reflect"
	"testing"

	"github.com/OpenAiTx/MiniExam/internal/backup"
	"github.com/OpenAiTx/MiniExam/internal/domain/examsession"
	"github.com/OpenAiTx/MiniExam/internal/domain/question"
	"github.com/OpenAiTx/MiniExam/internal/domain/subject"
)

func sampleBackup() *backup.Backup {
	return &backup.Backup{
		Subjects: []subject.Subject{
			{ID: "network", Name: "Networking", Description: "d", Icon: "🌐"},
		},
		Questions: map[string][]question.Question{
			"network": {uploadQuestion(1, "What is a router?")},
		},
		QuestionStats: map[string][]question.Stats{
			"network": {{QuestionID: 1, CorrectCount: 2, IncorrectCount: 1, LastAttempt: 1700000000000}},
		},
		ExamResults: []examsession.Result{{
			ID:             "r1",
			Date:           1700000000000,
			Score:          100,
			TotalQuestions: 1,
			CorrectAnswers: 1,
			TimeSpent:      60000,
			SubjectID:      "network",
			Answers: []examsession.AnswerRecord{{
				QuestionID:     1,
				Question:       "What is a router?",
				QuestionType:   question.TypeSingle,
				SelectedAnswer: []string{"A"},
				CorrectAnswer:  []string{"A"},
				IsCorrect:      true,
				Explanation:    "e",
			}},
		}},
	}
}

func TestZip_RoundTrip(t *testing.T) {
	original := sampleBackup()

	var buf bytes.Buffer
	if err := backup.WriteZip(&buf, original); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	restored, err := backup.ReadZip(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	if !reflect.DeepEqual(original.Subjects, restored.Subjects) {
		t.Errorf("subjects diverged:\n%+v\n%+v", original.Subjects, restored.Subjects)
	}
	if !reflect.DeepEqual(original.Questions, restored.Questions) {
		t.Errorf("questions diverged:\n%+v\n%+v", original.Questions, restored.Questions)
	}
	if !reflect.DeepEqual(original.QuestionStats, restored.QuestionStats) {
		t.Errorf("stats diverged:\n%+v\n%+v", original.QuestionStats, restored.QuestionStats)
	}
	if !reflect.DeepEqual(original.ExamResults, restored.ExamResults) {
		t.Errorf("results diverged:\n%+v\n%+v", original.ExamResults, restored.ExamResults)
	}

	if errs := restored.Validate(); len(errs) != 0 {
		t.Errorf("round-tripped backup failed validation: %v", errs)
	}
}

func TestZip_ContainsExpectedLayout(t *testing.T) {
	var buf bytes.Buffer
	if err := backup.WriteZip(&buf, sampleBackup()); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("not a zip archive: %v", err)
	}

	names := make(map[string]bool)
	for _, f := range zr.File {
		names[f.Name] = true
	}
	for _, want := range []string{
		"metadata.json",
		"subjects.json",
		"questions/network.json",
		"stats/network.json",
		"exam-results.json",
		"README.txt",
	} {
		if !names[want] {
			t.Errorf("archive missing %s (has %v)", want, names)
		}
	}
}

func TestReadZip_ToleratesMissingCategories(t *testing.T) {
	// Archive with only a question bank.
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("questions/network.json")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Write([]byte(`[{"id":1,"question":"q","type":"single","options":[{"label":"A","text":"a"}],"correctAnswer":["A"],"explanation":"e"}]`)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	b, err := backup.ReadZip(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if b.Subjects != nil || b.QuestionStats != nil || b.ExamResults != nil {
		t.Error("absent categories should stay nil")
	}
	if len(b.Questions["network"]) != 1 {
		t.Errorf("expected 1 question, got %v", b.Questions)
	}
	if errs := b.Validate(); len(errs) != 0 {
		t.Errorf("partial archive should validate, got %v", errs)
	}
}

func TestReadZip_EmptyArchiveFailsValidation(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	b, err := backup.ReadZip(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if errs := b.Validate(); len(errs) == 0 {
		t.Error("archive with no data must be rejected")
	}
}

func TestReadZip_Garbage(t *testing.T) {
	raw := []byte("definitely not a zip")
	if _, err := backup.ReadZip(bytes.NewReader(raw), int64(len(raw))); err == nil {
		t.Error("expected error for non-zip input")
	}
}
