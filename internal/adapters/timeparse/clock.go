package timeparse

import (
	"regexp"
	"strconv"

	"frontdesk/internal/core/temporal"
)

// clockMatch is a time of day stated in the text
type clockMatch struct {
	hour        int
	minute      int
	minuteKnown bool
	meridiem    bool
	start       int
	end         int
}

var (
	// 3:30 pm, 15:30
	hourMinuteRe = regexp.MustCompile(`(?i)\b(\d{1,2}):(\d{2})\s*(am|pm)?\b`)
	// 3 pm
	hourMeridiemRe = regexp.MustCompile(`(?i)\b(\d{1,2})\s*(am|pm)\b`)
	noonRe         = regexp.MustCompile(`(?i)\bnoon\b`)
	midnightRe     = regexp.MustCompile(`(?i)\bmidnight\b`)

	yearTokenRe = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	monthNameRe = regexp.MustCompile(`(?i)\b(` + monthNames + `)\b`)
	weekdayRe   = regexp.MustCompile(`(?i)\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	relativeRe  = regexp.MustCompile(`(?i)\b(today|tonight|tomorrow|yesterday)\b`)
	dayDigitRe  = regexp.MustCompile(`\b\d{1,2}\b`)
)

// findClock returns the first stated clock time in text
// a bare number does not count, it needs a colon, a meridiem, or a keyword
func findClock(text string) (clockMatch, bool) {
	if loc := hourMinuteRe.FindStringSubmatchIndex(text); loc != nil {
		hs, _ := group(text, loc, 1)
		ms, _ := group(text, loc, 2)
		hour, _ := strconv.Atoi(hs)
		minute, _ := strconv.Atoi(ms)
		if hour > 23 || minute > 59 {
			return clockMatch{}, false
		}
		cl := clockMatch{hour: hour, minute: minute, minuteKnown: true, start: loc[0], end: loc[1]}
		if mer, ok := group(text, loc, 3); ok {
			cl.meridiem = true
			cl.hour = applyMeridiem(hour, mer)
		}
		return cl, true
	}

	if loc := hourMeridiemRe.FindStringSubmatchIndex(text); loc != nil {
		hs, _ := group(text, loc, 1)
		mer, _ := group(text, loc, 2)
		hour, _ := strconv.Atoi(hs)
		if hour > 12 {
			return clockMatch{}, false
		}
		return clockMatch{
			hour:     applyMeridiem(hour, mer),
			meridiem: true,
			start:    loc[0],
			end:      loc[1],
		}, true
	}

	if loc := noonRe.FindStringIndex(text); loc != nil {
		return clockMatch{hour: 12, start: loc[0], end: loc[1]}, true
	}
	if loc := midnightRe.FindStringIndex(text); loc != nil {
		return clockMatch{hour: 0, start: loc[0], end: loc[1]}, true
	}

	return clockMatch{}, false
}

func applyMeridiem(hour int, mer string) int {
	switch mer[0] {
	case 'p', 'P':
		if hour < 12 {
			return hour + 12
		}
	case 'a', 'A':
		if hour == 12 {
			return 0
		}
	}
	return hour
}

// inferDateComponents flags which calendar fields the matched span states
func inferDateComponents(span string, comps *temporal.Components) {
	if yearTokenRe.MatchString(span) {
		comps.Year = true
	}
	if monthNameRe.MatchString(span) {
		comps.Month = true
		if dayDigitRe.MatchString(span) {
			comps.Day = true
		}
	}
	if weekdayRe.MatchString(span) || relativeRe.MatchString(span) {
		comps.Day = true
	}
}
