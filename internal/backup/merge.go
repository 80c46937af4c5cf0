// Package backup merges, validates, and serializes bulk snapshots of
// subjects, question banks, stats, and exam results.
package backup

import (
	"fmt"

	"github.com/OpenAiTx/MiniExam/internal/domain/question"
	"github.com/OpenAiTx/MiniExam/internal/id"
)

// MergePolicy selects how an uploaded question set is reconciled
// against the existing bank.
type MergePolicy string

const (
	// PolicyReset discards the existing bank; the upload becomes the
	// bank verbatim.
	PolicyReset MergePolicy = "reset"
	// PolicyUpdate replaces existing questions that share an uploaded
	// id in place and appends the rest.
	PolicyUpdate MergePolicy = "update"
	// PolicyRegenerate never overwrites: colliding uploads are appended
	// under a freshly allocated id.
	PolicyRegenerate MergePolicy = "regenerate"
)

// Merge reconciles uploaded questions into the existing bank under the
// given policy. Inputs are not mutated.
func Merge(existing, uploaded []question.Question, policy MergePolicy) ([]question.Question, error) {
	switch policy {
	case PolicyReset:
		return append([]question.Question(nil), uploaded...), nil
	case PolicyUpdate:
		return updateMerge(existing, uploaded), nil
	case PolicyRegenerate:
		return regenerateMerge(existing, uploaded), nil
	}
	return nil, fmt.Errorf("unknown merge policy %q", policy)
}

// updateMerge keeps existing positions: a question whose id appears in
// the upload is replaced in place, and uploads with unseen ids are
// appended in upload order.
func updateMerge(existing, uploaded []question.Question) []question.Question {
	replacements := make(map[int64]question.Question, len(uploaded))
	existingIDs := make(map[int64]struct{}, len(existing))
	for _, q := range existing {
		existingIDs[q.ID] = struct{}{}
	}
	for _, q := range uploaded {
		if _, ok := existingIDs[q.ID]; ok {
			replacements[q.ID] = q
		}
	}

	merged := make([]question.Question, 0, len(existing)+len(uploaded))
	for _, q := range existing {
		if r, ok := replacements[q.ID]; ok {
			merged = append(merged, r)
		} else {
			merged = append(merged, q)
		}
	}
	for _, q := range uploaded {
		if _, ok := existingIDs[q.ID]; !ok {
			merged = append(merged, q)
		}
	}
	return merged
}

// regenerateMerge grows the bank by the full upload: unseen ids are
// appended as-is, colliding ids are appended as new questions under ids
// allocated clear of every id in play.
func regenerateMerge(existing, uploaded []question.Question) []question.Question {
	alloc := id.NewAllocator(question.IDs(existing))
	existingIDs := make(map[int64]struct{}, len(existing))
	for _, q := range existing {
		existingIDs[q.ID] = struct{}{}
	}
	for _, q := range uploaded {
		if _, ok := existingIDs[q.ID]; !ok {
			alloc.Reserve(q.ID)
		}
	}

	var fresh, regenerated []question.Question
	for _, q := range uploaded {
		if _, ok := existingIDs[q.ID]; ok {
			q.ID = alloc.Next()
			regenerated = append(regenerated, q)
		} else {
			fresh = append(fresh, q)
		}
	}

	merged := make([]question.Question, 0, len(existing)+len(uploaded))
	merged = append(merged, existing...)
	merged = append(merged, fresh...)
	merged = append(merged, regenerated...)
	return merged
}
