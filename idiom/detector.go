package idiom

import (
	"log/slog"
	"sort"

	"github.com/contextbridge/idiomate"
)

// Detector scans text for idiom occurrences using a catalog and rejects
// literal usages through per-idiom context validation.
type Detector struct {
	catalog *Catalog
	logger  *slog.Logger
}

// DetectorOption is a functional option for configuring the Detector.
type DetectorOption func(*Detector)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) DetectorOption {
	return func(d *Detector) {
		d.logger = logger
	}
}

// NewDetector creates a detector over the given catalog.
func NewDetector(catalog *Catalog, opts ...DetectorOption) *Detector {
	d := &Detector{
		catalog: catalog,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect returns the idiom occurrences in text for a canonical language
// code, sorted by start offset and pairwise non-overlapping.
//
// Every pattern match is validated against its ten-word context window
// before it is accepted. Overlaps between validated matches resolve
// deterministically: the longest match wins, ties go to the leftmost
// start, and remaining ties to the lexicographically smaller canonical
// form. Languages without registered patterns yield no spans.
func (d *Detector) Detect(text, lang string) []idiomate.Span {
	patterns := d.catalog.Patterns(lang)
	if len(patterns) == 0 {
		return nil
	}

	var candidates []idiomate.Span
	for _, p := range patterns {
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			span := idiomate.Span{
				Canonical: p.canonical,
				Start:     loc[0],
				End:       loc[1],
				Text:      text[loc[0]:loc[1]],
			}
			if !d.catalog.validate(p.canonical, contextWindow(text, span)) {
				d.logger.Info("rejected idiom match due to literal context",
					"idiom", p.canonical, "match", span.Text)
				continue
			}
			candidates = append(candidates, span)
		}
	}

	return resolveOverlaps(candidates)
}

// resolveOverlaps picks a deterministic non-overlapping subset of the
// validated candidates and returns it sorted by start offset.
func resolveOverlaps(candidates []idiomate.Span) []idiomate.Span {
	if len(candidates) == 0 {
		return nil
	}

	// Longest-match-wins, then leftmost-start, then canonical form.
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Len() != b.Len() {
			return a.Len() > b.Len()
		}
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return a.Canonical < b.Canonical
	})

	var accepted []idiomate.Span
	for _, candidate := range candidates {
		overlaps := false
		for _, kept := range accepted {
			if candidate.Overlaps(kept) {
				overlaps = true
				break
			}
		}
		if !overlaps {
			accepted = append(accepted, candidate)
		}
	}

	sort.Slice(accepted, func(i, j int) bool {
		return accepted[i].Start < accepted[j].Start
	})
	return accepted
}

// Verify Detector implements the engine's detector interface
var _ idiomate.IdiomDetector = (*Detector)(nil)
