package textnorm

import "regexp"

// tokenFixes maps garbled or abbreviated tokens to their expanded forms.
// Lookup happens after lowercasing and after stripping punctuation from the
// token, so only lowercase bare-word keys can ever match.
var tokenFixes = map[string]string{
	// abbreviations
	"nxt":      "next",
	"tmrw":     "tomorrow",
	"tdy":      "today",
	"appt":     "appointment",
	"dr":       "doctor",
	"dent":     "dentist",
	"cardio":   "cardiologist",
	"derm":     "dermatologist",
	"phys":     "physician",
	"clnc":     "clinic",
	"hosp":     "hospital",
	"med":      "medical",
	"chk":      "check",
	"chkup":    "checkup",
	"exam":     "examination",
	"consult":  "consultation",
	"followup": "follow up",

	// single-character OCR confusions
	"l": "1",

	// weekday abbreviations
	"mon":   "monday",
	"tue":   "tuesday",
	"tues":  "tuesday",
	"wed":   "wednesday",
	"thu":   "thursday",
	"thur":  "thursday",
	"thurs": "thursday",
	"fri":   "friday",
	"sat":   "saturday",
	"sun":   "sunday",

	// month abbreviations
	"jan":  "january",
	"feb":  "february",
	"mar":  "march",
	"apr":  "april",
	"jun":  "june",
	"jul":  "july",
	"aug":  "august",
	"sep":  "september",
	"sept": "september",
	"oct":  "october",
	"nov":  "november",
	"dec":  "december",
}

// spacingRule rejoins tokens that OCR or hurried typing ran together
type spacingRule struct {
	re   *regexp.Regexp
	repl string
}

// spacingRules run in order, each over the full text
// the order matters: later rules assume earlier splits already happened
var spacingRules = []spacingRule{
	// "3pm" -> "3 pm"
	{regexp.MustCompile(`(?i)(\d+)(am|pm)`), "${1} ${2}"},
	// "nextfriday" -> "next friday"
	{regexp.MustCompile(`(?i)\b(next|last|this)(monday|tuesday|wednesday|thursday|friday|saturday|sunday)`), "${1} ${2}"},
	// "dentistappt" -> "dentist appointment"
	{regexp.MustCompile(`(?i)\b(dentist|doctor|cardio|derm|physician)(appointment|appt)`), "${1} appointment"},
	// "3:30pm" -> "3:30 pm"
	{regexp.MustCompile(`(?i)(\d+:\d+)(am|pm)`), "${1} ${2}"},
	// "friday@3" -> "friday at 3"
	{regexp.MustCompile(`(?i)([a-zA-Z])@(\d)`), "${1} at ${2}"},
	// "dentistnext" -> "dentist next"
	{regexp.MustCompile(`(?i)\b(dentist|doctor|cardio|derm|physician)(next|last|this|tomorrow|today)`), "${1} ${2}"},
	// "bookdentist" -> "book dentist"
	{regexp.MustCompile(`(?i)\b(book|schedule|make)(dentist|doctor|cardio|derm|physician|appointment)`), "${1} ${2}"},
	// "3pmappointment" -> "3pm appointment"
	{regexp.MustCompile(`(?i)(\d+(?::\d+)?\s*(?:am|pm))(appointment|appt)`), "${1} appointment"},
	// "friday3pm" -> "friday 3pm"
	{regexp.MustCompile(`(?i)\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday)(\d)`), "${1} ${2}"},
	// "3pmat" -> "3pm at"
	{regexp.MustCompile(`(?i)(\d+(?::\d+)?\s*(?:am|pm))at`), "${1} at"},
}

var (
	wsRe      = regexp.MustCompile(`\s+`)
	nonWordRe = regexp.MustCompile(`[^\w]`)
	wordRe    = regexp.MustCompile(`[\w]`)
	atRe      = regexp.MustCompile(`\s*@\s*`)
	ampRe     = regexp.MustCompile(`\s*&\s*`)
	amRe      = regexp.MustCompile(`(?i)\bam\b`)
	pmRe      = regexp.MustCompile(`(?i)\bpm\b`)
)
