// Package corpus aggregates independently authored story partitions into one
// ordered, immutable corpus and answers read-only queries against it.
//
// Build runs exactly once per process (or test fixture); the resulting Corpus
// is shared, read-only, and needs no synchronization. All query operations
// are pure and total: a non-matching query yields an empty result, never an
// error.
package corpus

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/biblestories-backend/internal/domain"
)

// Partition is one independently authored group of stories, grouped by
// source book. Partitions are pure data; Build wires them together in a
// fixed, declared order.
type Partition struct {
	Book    string
	Stories []domain.Story
}

// Grouping names a story field usable for equality filtering and distinct
// enumeration.
type Grouping string

const (
	GroupingVolume   Grouping = "volume"
	GroupingCategory Grouping = "category"
)

// Corpus is the aggregated, ordered, immutable collection of all stories.
type Corpus struct {
	stories []domain.Story
	byID    map[string]int
	books   []string
}

// Build concatenates the partitions in the order given and validates the
// result: every story must satisfy its completeness contract and no two
// stories may share an id, regardless of which partition declared them.
// Any violation fails construction with a *domain.IntegrityError; a corpus
// that failed this check must never serve queries.
func Build(partitions ...Partition) (*Corpus, error) {
	var problems []string

	total := 0
	for _, p := range partitions {
		total += len(p.Stories)
	}

	c := &Corpus{
		stories: make([]domain.Story, 0, total),
		byID:    make(map[string]int, total),
	}

	seenBooks := make(map[string]bool, len(partitions))
	for _, p := range partitions {
		if !seenBooks[p.Book] {
			seenBooks[p.Book] = true
			c.books = append(c.books, p.Book)
		}
		for _, s := range p.Stories {
			if err := s.Validate(); err != nil {
				problems = append(problems, fmt.Sprintf("story %q (book %s): %v", s.ID, p.Book, err))
				continue
			}
			if prev, dup := c.byID[s.ID]; dup {
				problems = append(problems, fmt.Sprintf(
					"duplicate story id %q (already declared at corpus index %d)", s.ID, prev))
				continue
			}
			c.byID[s.ID] = len(c.stories)
			c.stories = append(c.stories, s)
		}
	}

	if len(problems) > 0 {
		return nil, &domain.IntegrityError{Problems: problems}
	}
	if len(c.stories) == 0 {
		return nil, &domain.IntegrityError{Problems: []string{"corpus is empty"}}
	}

	return c, nil
}

// Len returns the total story count, equal to the sum of all partition
// lengths.
func (c *Corpus) Len() int {
	return len(c.stories)
}

// Stories returns all stories in corpus order. The returned slice is a copy;
// callers cannot mutate the corpus through it.
func (c *Corpus) Stories() []domain.Story {
	out := make([]domain.Story, len(c.stories))
	copy(out, c.stories)
	return out
}

// ByID returns the story with the given id. The second return value is
// false when no story has that id; absence is a valid result, not an error.
func (c *Corpus) ByID(id string) (domain.Story, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Story{}, false
	}
	return c.stories[i], true
}

// ByGrouping returns all stories whose grouping field equals value, in
// corpus order. The match is case-sensitive and exact. An unknown grouping
// or a non-matching value yields an empty slice.
func (c *Corpus) ByGrouping(g Grouping, value string) []domain.Story {
	out := []domain.Story{}
	for _, s := range c.stories {
		if groupingValue(s, g) == value {
			out = append(out, s)
		}
	}
	return out
}

// DistinctValues returns every distinct value of the grouping field, in
// first-seen corpus order, without duplicates.
//
// Note: book listing deliberately does NOT go through this helper. Books
// preserves declared partition order instead of first-seen story order.
func (c *Corpus) DistinctValues(g Grouping) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, s := range c.stories {
		v := groupingValue(s, g)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// Books returns the source book names in the order the partitions were
// declared and wired together.
func (c *Corpus) Books() []string {
	out := make([]string, len(c.books))
	copy(out, c.books)
	return out
}

// Search returns all stories where the query appears as a case-insensitive
// substring of the title, summary, reference, or any key figure. Results
// keep corpus order; there is no relevance ranking.
func (c *Corpus) Search(query string) []domain.Story {
	q := strings.ToLower(query)
	out := []domain.Story{}
	for _, s := range c.stories {
		if storyMatches(s, q) {
			out = append(out, s)
		}
	}
	return out
}

func storyMatches(s domain.Story, q string) bool {
	if strings.Contains(strings.ToLower(s.Title), q) ||
		strings.Contains(strings.ToLower(s.Summary), q) ||
		strings.Contains(strings.ToLower(s.Reference), q) {
		return true
	}
	for _, f := range s.KeyFigures {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func groupingValue(s domain.Story, g Grouping) string {
	switch g {
	case GroupingVolume:
		return s.Volume
	case GroupingCategory:
		return s.Category
	default:
		return ""
	}
}
