// Package stories declares the story partitions that make up the corpus.
// Each partition is an independently authored array of records grouped by
// source book; Partitions wires them together in canonical order. The
// declarations are pure data; all aggregation and validation lives in the
// corpus package.
package stories

import "github.com/heartmarshall/biblestories-backend/internal/corpus"

// Volume names used across all partitions.
const (
	VolumeOld = "Old Testament"
	VolumeNew = "New Testament"
)

// Partitions returns every partition in canonical declared order:
// Old Testament books first, then New Testament books. This order is load
// bearing: the story-of-the-day rotation depends on it being stable across
// runs.
func Partitions() []corpus.Partition {
	return []corpus.Partition{
		genesis,
		exodus,
		joshua,
		firstSamuel,
		firstKings,
		daniel,
		jonah,
		matthew,
		luke,
		john,
		acts,
	}
}

func strptr(s string) *string { return &s }
