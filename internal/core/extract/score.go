package extract

import (
	"math"
	"regexp"

	"frontdesk/internal/core/temporal"
)

// Signals are the extraction facts a Scorer grades
type Signals struct {
	DatePhrase        string
	DateComponents    temporal.Components
	HasStructuredDate bool
	TimePhrase        string
	Department        string
	DepartmentExact   bool
}

// Scorer grades extraction quality into a 0..1 confidence
type Scorer interface {
	Score(sig Signals) float64
}

var (
	fullTimeRe  = regexp.MustCompile(`(?i)\d{1,2}:\d{2}\s*(am|pm)`)
	hourMeridRe = regexp.MustCompile(`(?i)\d{1,2}\s*(am|pm)`)
)

// DefaultScorer grades each entity in tiers and adds a completeness bonus
//
// date:       0.40 well formed, 0.35 partial, 0.30 bare phrase
// time:       0.30 h:mm+meridiem, 0.25 hour+meridiem, 0.20 bare
// department: 0.20 canonical name, 0.15 synonym
// all three found caps at 0.85 after a 0.05 bonus, floor 0.30 when
// anything was found, overall cap 0.90
type DefaultScorer struct{}

// Score implements Scorer
func (DefaultScorer) Score(sig Signals) float64 {
	conf := 0.0
	entities := 0

	if sig.DatePhrase != "" {
		entities++
		switch {
		case sig.HasStructuredDate && componentWeight(sig.DateComponents) >= 2:
			conf += 0.40
		case sig.HasStructuredDate:
			conf += 0.35
		default:
			conf += 0.30
		}
	}

	if sig.TimePhrase != "" {
		entities++
		switch {
		case fullTimeRe.MatchString(sig.TimePhrase):
			conf += 0.30
		case hourMeridRe.MatchString(sig.TimePhrase):
			conf += 0.25
		default:
			conf += 0.20
		}
	}

	if sig.Department != "" {
		entities++
		if sig.DepartmentExact {
			conf += 0.20
		} else {
			conf += 0.15
		}
	}

	if entities == 3 {
		conf = math.Min(0.85, conf+0.05)
	}
	if entities > 0 {
		conf = math.Max(0.30, conf)
	}
	conf = math.Min(0.90, conf)

	return math.Round(conf*100) / 100
}

// componentWeight counts stated fields with meridiem included, a phrase like
// "3 pm" states two things about the moment it names
func componentWeight(c temporal.Components) int {
	n := c.Count()
	if c.Meridiem {
		n++
	}
	return n
}
