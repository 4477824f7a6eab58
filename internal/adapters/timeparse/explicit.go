package timeparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// explicitDate is a calendar date stated outright in the text
type explicitDate struct {
	year      int
	month     time.Month
	day       int
	yearKnown bool
	start     int
	end       int
}

const monthNames = `january|february|march|april|may|june|july|august|september|october|november|december`

var (
	// 2026-09-15
	isoDateRe = regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`)
	// 9/15 or 9/15/2026
	slashDateRe = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?\b`)
	// september 15, september 15th 2026
	monthDayRe = regexp.MustCompile(`(?i)\b(` + monthNames + `)\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s+(\d{4}))?\b`)
	// 15 september, 15th of september 2026
	dayMonthRe = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?(` + monthNames + `)\b(?:,?\s+(\d{4}))?`)
)

var monthIndex = func() map[string]time.Month {
	names := strings.Split(monthNames, "|")
	m := make(map[string]time.Month, len(names))
	for i, n := range names {
		m[n] = time.Month(i + 1)
	}
	return m
}()

// findExplicitDate returns the earliest explicitly written calendar date in text
// missing years default to the reference year
func findExplicitDate(text string, ref time.Time) (explicitDate, bool) {
	best := explicitDate{start: -1}

	consider := func(cand explicitDate, ok bool) {
		if !ok {
			return
		}
		if best.start < 0 || cand.start < best.start {
			best = cand
		}
	}

	if loc := isoDateRe.FindStringSubmatchIndex(text); loc != nil {
		consider(buildDate(text, loc, ref, 1, 2, 3, isoOrder))
	}
	if loc := slashDateRe.FindStringSubmatchIndex(text); loc != nil {
		consider(buildDate(text, loc, ref, 3, 1, 2, slashOrder))
	}
	if loc := monthDayRe.FindStringSubmatchIndex(text); loc != nil {
		consider(buildNamedDate(text, loc, ref, 1, 2, 3))
	}
	if loc := dayMonthRe.FindStringSubmatchIndex(text); loc != nil {
		consider(buildNamedDate(text, loc, ref, 2, 1, 3))
	}

	if best.start < 0 {
		return explicitDate{}, false
	}
	return best, true
}

type dateOrder int

const (
	isoOrder dateOrder = iota
	slashOrder
)

func group(text string, loc []int, n int) (string, bool) {
	if 2*n+1 >= len(loc) || loc[2*n] < 0 {
		return "", false
	}
	return text[loc[2*n]:loc[2*n+1]], true
}

// buildDate assembles a numeric date match, yg/mg/dg are submatch group numbers
func buildDate(text string, loc []int, ref time.Time, yg, mg, dg int, _ dateOrder) (explicitDate, bool) {
	ms, _ := group(text, loc, mg)
	ds, _ := group(text, loc, dg)
	month, _ := strconv.Atoi(ms)
	day, _ := strconv.Atoi(ds)
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return explicitDate{}, false
	}

	ed := explicitDate{
		year:  ref.Year(),
		month: time.Month(month),
		day:   day,
		start: loc[0],
		end:   loc[1],
	}
	if ys, ok := group(text, loc, yg); ok {
		y, _ := strconv.Atoi(ys)
		if y < 100 {
			y += 2000
		}
		ed.year = y
		ed.yearKnown = true
	}
	return ed, true
}

// buildNamedDate assembles a date whose month is written out
func buildNamedDate(text string, loc []int, ref time.Time, mg, dg, yg int) (explicitDate, bool) {
	ms, _ := group(text, loc, mg)
	ds, _ := group(text, loc, dg)
	month, ok := monthIndex[strings.ToLower(ms)]
	if !ok {
		return explicitDate{}, false
	}
	day, _ := strconv.Atoi(ds)
	if day < 1 || day > 31 {
		return explicitDate{}, false
	}

	ed := explicitDate{
		year:  ref.Year(),
		month: month,
		day:   day,
		start: loc[0],
		end:   loc[1],
	}
	if ys, ok := group(text, loc, yg); ok {
		y, _ := strconv.Atoi(ys)
		ed.year = y
		ed.yearKnown = true
	}
	return ed, true
}
