package resolve

import (
	"math"
	"regexp"

	"frontdesk/internal/core/temporal"
)

// Signals are the resolution facts a Scorer grades
type Signals struct {
	Components temporal.Components
	DatePhrase string
	TimePhrase string
}

// Scorer grades resolution quality into a confidence
type Scorer interface {
	Score(sig Signals) float64
}

var (
	fullClockRe   = regexp.MustCompile(`(?i)\d{1,2}:\d{2}\s*(am|pm)`)
	hourClockRe   = regexp.MustCompile(`(?i)\d{1,2}\s*(am|pm)`)
	numericDateRe = regexp.MustCompile(`\b\d{4}-\d{1,2}-\d{1,2}\b|\b\d{1,2}/\d{1,2}(/\d{2,4})?\b`)
	weekdayWordRe = regexp.MustCompile(`(?i)\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
)

// DefaultScorer starts at 0.70 and accumulates independent quality bonuses
//
// +0.10 full calendar date stated, +0.05 hour (+0.03 minute on top),
// +0.05 meridiem, +0.05 three or more stated components, +0.05 H:MM
// am/pm time phrase else +0.03 H am/pm, +0.05 numeric date phrase else
// +0.03 weekday. Cap 0.95, and four stated components with an explicit
// hour and meridiem never score below 0.90
type DefaultScorer struct{}

// Score implements Scorer
func (DefaultScorer) Score(sig Signals) float64 {
	c := sig.Components
	conf := 0.70

	if c.Year && c.Month && c.Day {
		conf += 0.10
	}
	if c.Hour {
		conf += 0.05
		if c.Minute {
			conf += 0.03
		}
	}
	if c.Meridiem {
		conf += 0.05
	}
	if c.Count() >= 3 {
		conf += 0.05
	}

	switch {
	case fullClockRe.MatchString(sig.TimePhrase):
		conf += 0.05
	case hourClockRe.MatchString(sig.TimePhrase):
		conf += 0.03
	}

	switch {
	case numericDateRe.MatchString(sig.DatePhrase):
		conf += 0.05
	case weekdayWordRe.MatchString(sig.DatePhrase):
		conf += 0.03
	}

	conf = math.Min(0.95, conf)
	if c.Count() >= 4 && c.Hour && c.Meridiem && conf < 0.90 {
		conf = 0.90
	}

	return math.Round(conf*100) / 100
}
