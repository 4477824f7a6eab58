// Package resolve turns extracted date and time phrases into a single
// absolute appointment slot in the clinic timezone
package resolve

import (
	"context"
	"errors"
	"strings"
	"time"

	"frontdesk/internal/core/temporal"
	perr "frontdesk/internal/platform/errors"
)

// Clarification messages are stable strings, clients key UI hints off them
const (
	MsgMissingPhrase = "Missing date or time to normalize"
	MsgUnparseable   = "Unable to parse date/time"
	MsgPastDate      = "Date/time is in the past"
)

// ClarificationError reports an input the resolver cannot act on
// the requester can recover by resubmitting a clearer phrase
type ClarificationError struct {
	Message string
}

func (e *ClarificationError) Error() string { return e.Message }

// AsClarification unwraps err into a ClarificationError if it is one
func AsClarification(err error) (*ClarificationError, bool) {
	var ce *ClarificationError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// Normalized is the resolved appointment slot
type Normalized struct {
	Date string `json:"date"` // YYYY-MM-DD
	Time string `json:"time"` // HH:mm, 24 hour
	TZ   string `json:"tz"`
}

// Result pairs the slot with the resolver's own confidence
type Result struct {
	Normalized Normalized `json:"normalized"`
	Confidence float64    `json:"normalized_confidence"`
}

// Resolver reconstructs civil parser output as wall clock time in a fixed zone
type Resolver struct {
	parser temporal.Parser
	loc    *time.Location
	tzName string
	scorer Scorer
	now    func() time.Time
}

// Option tunes a Resolver
type Option func(*Resolver)

// WithScorer swaps the confidence scorer
func WithScorer(s Scorer) Option {
	return func(r *Resolver) { r.scorer = s }
}

// WithNow fixes the clock, for deterministic tests
func WithNow(now func() time.Time) Option {
	return func(r *Resolver) { r.now = now }
}

// New constructs a Resolver targeting loc
// tzName is the identifier echoed in responses, usually loc.String()
func New(parser temporal.Parser, loc *time.Location, tzName string, opts ...Option) *Resolver {
	r := &Resolver{
		parser: parser,
		loc:    loc,
		tzName: tzName,
		scorer: DefaultScorer{},
		now:    time.Now,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Resolve combines the phrases, parses them relative to now in the target
// zone, and rejects results that are not strictly in the future
//
// The parser output is civil components, they are reconstructed directly as a
// wall clock reading in the target zone rather than converted from another
// zone, converting would shift every result by the zone offset difference
func (r *Resolver) Resolve(ctx context.Context, datePhrase, timePhrase string) (Result, error) {
	if datePhrase == "" || timePhrase == "" {
		return Result{}, &ClarificationError{Message: MsgMissingPhrase}
	}

	now := r.now().In(r.loc)

	combined := datePhrase
	if !strings.Contains(datePhrase, timePhrase) {
		combined = datePhrase + " " + timePhrase
	}

	matches, err := r.parser.Parse(ctx, combined, now, temporal.Options{})
	if err != nil {
		return Result{}, perr.Wrap(err, perr.ErrorCodeUnknown, "resolve date/time")
	}
	if len(matches) == 0 {
		return Result{}, &ClarificationError{Message: MsgUnparseable}
	}

	m := matches[0]
	t := m.Civil.In(r.loc)
	if !t.After(now) {
		return Result{}, &ClarificationError{Message: MsgPastDate}
	}

	conf := r.scorer.Score(Signals{
		Components: m.Components,
		DatePhrase: datePhrase,
		TimePhrase: timePhrase,
	})

	return Result{
		Normalized: Normalized{
			Date: t.Format("2006-01-02"),
			Time: t.Format("15:04"),
			TZ:   r.tzName,
		},
		Confidence: conf,
	}, nil
}
