// Package temporal defines the date/time parsing port shared by the
// extraction and resolution stages. Implementations live under adapters
package temporal

import (
	"context"
	"time"
)

// Components records which calendar fields the source text stated explicitly
// fields left false were implied from the reference time
type Components struct {
	Year     bool
	Month    bool
	Day      bool
	Hour     bool
	Minute   bool
	Meridiem bool
}

// Count returns the number of explicitly stated fields
// Meridiem is a qualifier on Hour and is not counted on its own
func (c Components) Count() int {
	n := 0
	for _, known := range []bool{c.Year, c.Month, c.Day, c.Hour, c.Minute} {
		if known {
			n++
		}
	}
	return n
}

// CivilTime is a wall clock reading without a zone
// reconstruct it in a target zone with In
type CivilTime struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
}

// In materializes the civil reading in loc
func (c CivilTime) In(loc *time.Location) time.Time {
	return time.Date(c.Year, c.Month, c.Day, c.Hour, c.Minute, 0, 0, loc)
}

// Match is one temporal mention found in text
type Match struct {
	// Span is the matched fragment, covering both date and time words when present
	Span string
	// Index is the byte offset of Span within the input
	Index int
	// Components flags which fields Span stated explicitly
	Components Components
	// Civil is the full wall clock reading, unstated fields filled from the reference
	Civil CivilTime
}

// Options tunes a parse
type Options struct {
	// PreferFuture rolls ambiguous readings forward past the reference time
	PreferFuture bool
}

// Parser extracts temporal mentions from text relative to ref
type Parser interface {
	Parse(ctx context.Context, text string, ref time.Time, opts Options) ([]Match, error)
}
