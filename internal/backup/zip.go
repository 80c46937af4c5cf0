package backup

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/OpenAiTx/MiniExam/internal/domain/question"
)

// ZIP archive layout:
//
//	metadata.json       manifest (version, export date)
//	subjects.json       subject catalogue
//	questions/{id}.json one question array per subject
//	stats/{id}.json     one stats array per subject
//	exam-results.json   full result history
//	README.txt          human-oriented notes, ignored on import
//
// Import tolerates any subset of these being absent; an archive with
// none of them is rejected by Validate.

type metadata struct {
	Version     string `json:"version"`
	ExportDate  string `json:"exportDate"`
	Description string `json:"description"`
}

const archiveVersion = "2.0"

// WriteZip serializes the backup into a ZIP archive.
func WriteZip(w io.Writer, b *Backup) error {
	zw := zip.NewWriter(w)

	meta := metadata{
		Version:     archiveVersion,
		ExportDate:  time.Now().UTC().Format(time.RFC3339),
		Description: "exam system full backup",
	}
	if err := writeJSONEntry(zw, "metadata.json", meta); err != nil {
		return err
	}

	if err := writeJSONEntry(zw, "subjects.json", b.Subjects); err != nil {
		return err
	}

	for subjectID, questions := range b.Questions {
		if err := writeJSONEntry(zw, "questions/"+subjectID+".json", questions); err != nil {
			return err
		}
	}
	for subjectID, stats := range b.QuestionStats {
		if err := writeJSONEntry(zw, "stats/"+subjectID+".json", stats); err != nil {
			return err
		}
	}

	if err := writeJSONEntry(zw, "exam-results.json", b.ExamResults); err != nil {
		return err
	}

	readme := fmt.Sprintf(
		"Exam system backup\n\nExported: %s\nSubjects: %d\nResult records: %d\n\nImport this archive from the settings screen. Importing replaces current data.\n",
		meta.ExportDate, len(b.Subjects), len(b.ExamResults),
	)
	f, err := zw.Create("README.txt")
	if err != nil {
		return err
	}
	if _, err := f.Write([]byte(readme)); err != nil {
		return err
	}

	return zw.Close()
}

// ReadZip parses a backup archive. Absent categories come back as nil
// fields, meaning nothing to import for that category.
func ReadZip(r io.ReaderAt, size int64) (*Backup, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("not a valid zip archive: %w", err)
	}

	b := &Backup{}
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		name := path.Clean(f.Name)
		switch {
		case name == "subjects.json":
			if err := readJSONEntry(f, &b.Subjects); err != nil {
				return nil, err
			}
		case name == "exam-results.json":
			if err := readJSONEntry(f, &b.ExamResults); err != nil {
				return nil, err
			}
		case strings.HasPrefix(name, "questions/") && strings.HasSuffix(name, ".json"):
			subjectID := strings.TrimSuffix(path.Base(name), ".json")
			if b.Questions == nil {
				b.Questions = make(map[string][]question.Question)
			}
			var questions []question.Question
			if err := readJSONEntry(f, &questions); err != nil {
				return nil, err
			}
			b.Questions[subjectID] = questions
		case strings.HasPrefix(name, "stats/") && strings.HasSuffix(name, ".json"):
			subjectID := strings.TrimSuffix(path.Base(name), ".json")
			if b.QuestionStats == nil {
				b.QuestionStats = make(map[string][]question.Stats)
			}
			var stats []question.Stats
			if err := readJSONEntry(f, &stats); err != nil {
				return nil, err
			}
			b.QuestionStats[subjectID] = stats
		}
	}
	return b, nil
}

func writeJSONEntry(zw *zip.Writer, name string, v any) error {
	f, err := zw.Create(name)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func readJSONEntry(f *zip.File, v any) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	raw, err := io.ReadAll(rc)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%s: %w", f.Name, err)
	}
	return nil
}
