// Package timeparse implements the temporal parsing port on top of the
// olebedev/when natural language date parser, with a pre-pass for explicit
// calendar dates and a post-pass for clock times that when tends to miss
package timeparse

import (
	"context"
	"strings"
	"time"

	"frontdesk/internal/core/temporal"
	perr "frontdesk/internal/platform/errors"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// Engine is a temporal.Parser backed by when
// it is safe for concurrent use
type Engine struct {
	w *when.Parser
}

// New constructs an Engine with the english and common rule sets
func New() *Engine {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &Engine{w: w}
}

// Parse finds the primary temporal mention in text relative to ref
// unstated date fields default to the reference date and unstated clock
// fields default to noon, mirroring how people read appointment notes
func (e *Engine) Parse(ctx context.Context, text string, ref time.Time, opts temporal.Options) ([]temporal.Match, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	loc := ref.Location()
	comps := temporal.Components{}
	civil := temporal.CivilTime{
		Year:   ref.Year(),
		Month:  ref.Month(),
		Day:    ref.Day(),
		Hour:   12,
		Minute: 0,
	}

	spanStart, spanEnd := -1, -1
	extend := func(start, end int) {
		if spanStart < 0 || start < spanStart {
			spanStart = start
		}
		if end > spanEnd {
			spanEnd = end
		}
	}

	dateFound := false
	explicitDate := false

	// 1 explicit calendar dates win over relative phrasing
	if ed, ok := findExplicitDate(text, ref); ok {
		civil.Year, civil.Month, civil.Day = ed.year, ed.month, ed.day
		comps.Year, comps.Month, comps.Day = ed.yearKnown, true, true
		extend(ed.start, ed.end)
		dateFound = true
		explicitDate = true
	}

	// 2 relative expressions via when
	if !dateFound {
		r, err := e.w.Parse(text, ref)
		if err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "parse temporal expression")
		}
		if r != nil {
			rt := r.Time.In(loc)
			civil.Year, civil.Month, civil.Day = rt.Year(), rt.Month(), rt.Day()
			// take when's clock only when a time rule actually moved it off the reference
			if rt.Hour() != ref.Hour() || rt.Minute() != ref.Minute() {
				civil.Hour, civil.Minute = rt.Hour(), rt.Minute()
				comps.Hour = true
			}
			inferDateComponents(r.Text, &comps)
			extend(r.Index, r.Index+len(r.Text))
			dateFound = comps.Year || comps.Month || comps.Day
		}
	}

	// 3 clock regex overrides whatever clock reading we have so far
	if cl, ok := findClock(text); ok {
		civil.Hour, civil.Minute = cl.hour, cl.minute
		comps.Hour = true
		comps.Minute = cl.minuteKnown
		comps.Meridiem = cl.meridiem
		extend(cl.start, cl.end)
	}

	if spanStart < 0 {
		return nil, nil
	}

	if opts.PreferFuture {
		civil = rollForward(civil, comps, ref, loc, dateFound, explicitDate, text[spanStart:spanEnd])
	}

	m := temporal.Match{
		Span:       text[spanStart:spanEnd],
		Index:      spanStart,
		Components: comps,
		Civil:      civil,
	}
	return []temporal.Match{m}, nil
}

// rollForward nudges ambiguous past readings forward of the reference time
// explicit past phrasing like "last friday" is left alone
func rollForward(civil temporal.CivilTime, comps temporal.Components, ref time.Time, loc *time.Location, dateFound, explicitDate bool, span string) temporal.CivilTime {
	t := civil.In(loc)
	if !t.Before(ref) {
		return civil
	}
	lower := strings.ToLower(span)
	if strings.Contains(lower, "last") || strings.Contains(lower, "yesterday") {
		return civil
	}

	switch {
	case !dateFound:
		// clock only, read it as the next occurrence
		t = t.AddDate(0, 0, 1)
	case explicitDate && !comps.Year:
		// "september 15" with the date already behind us means next year
		t = t.AddDate(1, 0, 0)
	case comps.Day && !comps.Month:
		// weekday or relative day, walk forward to the next occurrence
		for i := 0; i < 14 && t.Before(ref); i++ {
			t = t.AddDate(0, 0, 1)
		}
	}

	return temporal.CivilTime{
		Year:   t.Year(),
		Month:  t.Month(),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
	}
}
