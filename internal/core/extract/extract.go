// Package extract pulls the scheduling entities out of normalized text:
// a date phrase, a time phrase, and a department
package extract

import (
	"context"
	"regexp"
	"time"

	"frontdesk/internal/core/registry"
	"frontdesk/internal/core/temporal"
	perr "frontdesk/internal/platform/errors"
)

// timePhraseRe is deliberately loose, a bare number still reads as a time
// candidate here and the scorer grades its quality separately
var timePhraseRe = regexp.MustCompile(`(?i)\b\d{1,2}(:\d{2})?\s*(am|pm)?\b`)

// Entities are the raw phrases found in the text, empty when absent
type Entities struct {
	Date       string `json:"date,omitempty"`
	Time       string `json:"time,omitempty"`
	Department string `json:"department,omitempty"`
}

// Result is the extraction outcome with its confidence grade
type Result struct {
	Entities   Entities `json:"entities"`
	Confidence float64  `json:"entities_confidence"`
}

// Extractor finds entities using the department registry and a temporal parser
type Extractor struct {
	registry *registry.Registry
	parser   temporal.Parser
	scorer   Scorer
}

// Option tunes an Extractor
type Option func(*Extractor)

// WithScorer swaps the confidence scorer
func WithScorer(s Scorer) Option {
	return func(x *Extractor) { x.scorer = s }
}

// New constructs an Extractor
func New(reg *registry.Registry, parser temporal.Parser, opts ...Option) *Extractor {
	x := &Extractor{registry: reg, parser: parser, scorer: DefaultScorer{}}
	for _, o := range opts {
		o(x)
	}
	return x
}

// Extract finds the entities in text relative to ref
// ambiguous dates are read forward of ref, a note says "friday" and means the
// coming one. An error is returned only for parser engine faults, an input
// with no entities yields an empty Result with low confidence
func (x *Extractor) Extract(ctx context.Context, text string, ref time.Time) (Result, error) {
	matches, err := x.parser.Parse(ctx, text, ref, temporal.Options{PreferFuture: true})
	if err != nil {
		return Result{}, perr.Wrap(err, perr.ErrorCodeUnknown, "extract temporal entities")
	}

	var ents Entities
	sig := Signals{}

	if len(matches) > 0 {
		ents.Date = matches[0].Span
		sig.HasStructuredDate = true
		sig.DateComponents = matches[0].Components

		// prefer a time phrase inside the matched span, fall back to the whole text
		ents.Time = timePhraseRe.FindString(matches[0].Span)
		if ents.Time == "" {
			ents.Time = timePhraseRe.FindString(text)
		}
	} else {
		ents.Time = timePhraseRe.FindString(text)
	}

	if m, ok := x.registry.Find(text); ok {
		ents.Department = m.Name
		sig.DepartmentExact = m.Exact
	}

	sig.DatePhrase = ents.Date
	sig.TimePhrase = ents.Time
	sig.Department = ents.Department

	return Result{Entities: ents, Confidence: x.scorer.Score(sig)}, nil
}
