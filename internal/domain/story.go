package domain

import "fmt"

// Story is one richly annotated narrative record. Stories are declared as
// literal data, aggregated into the corpus once at startup, and never
// mutated afterwards.
type Story struct {
	// ID is globally unique across the whole corpus, not just within the
	// partition that declared the story.
	ID        string
	Title     string
	Reference string
	Volume    string
	Category  string
	Summary   string

	// KeyElements preserves narrative order; it is a sequence, not a set.
	KeyElements []string

	// CrossPattern maps narrative elements to their applications.
	CrossPattern []CrossRef

	Dimensions Dimensions

	// RelatedStories are free-text cross references, not resolved ids.
	// They are opaque display strings.
	RelatedStories []string

	// KeyFigures and Setting are optional: a nil/absent value means
	// "not curated", which is meaningful and not an error.
	KeyFigures []string
	Setting    *string
}

// CrossRef is one (element, mapped application) pair of a story's cross
// pattern. Both sides are required.
type CrossRef struct {
	Element     string
	Application string
}

// Dimensions is the fixed six-facet interpretive annotation of a story.
// A story is not valid unless every facet is populated; this is a
// completeness contract, not an optional annotation.
type Dimensions struct {
	Literal        string
	Typological    string
	Personal       string
	Communal       string
	Eschatological string // future-facing facet
	Cosmic         string // past-facing facet
}

// facets returns the dimension values paired with their facet names,
// in canonical order.
func (d Dimensions) facets() []struct{ Name, Value string } {
	return []struct{ Name, Value string }{
		{"literal", d.Literal},
		{"typological", d.Typological},
		{"personal", d.Personal},
		{"communal", d.Communal},
		{"eschatological", d.Eschatological},
		{"cosmic", d.Cosmic},
	}
}

// Complete reports whether all six facets are populated.
func (d Dimensions) Complete() bool {
	for _, f := range d.facets() {
		if f.Value == "" {
			return false
		}
	}
	return true
}

// MissingFacets returns the names of unpopulated facets, in canonical order.
func (d Dimensions) MissingFacets() []string {
	var missing []string
	for _, f := range d.facets() {
		if f.Value == "" {
			missing = append(missing, f.Name)
		}
	}
	return missing
}

// Validate checks the story's completeness contract: required string fields
// are non-empty, cross pattern pairs have no empty sides, and all six
// dimension facets are populated. Optional fields (KeyFigures, Setting)
// are not checked.
func (s Story) Validate() error {
	var errs []FieldError

	required := []struct{ field, value string }{
		{"id", s.ID},
		{"title", s.Title},
		{"reference", s.Reference},
		{"volume", s.Volume},
		{"category", s.Category},
		{"summary", s.Summary},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, FieldError{Field: r.field, Message: "required"})
		}
	}

	for i, cr := range s.CrossPattern {
		if cr.Element == "" || cr.Application == "" {
			errs = append(errs, FieldError{
				Field:   "cross_pattern",
				Message: fmt.Sprintf("pair %d has an empty side", i),
			})
		}
	}

	for _, facet := range s.Dimensions.MissingFacets() {
		errs = append(errs, FieldError{
			Field:   "dimensions." + facet,
			Message: "required",
		})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
