// Package domain holds the parse module's types and ports
package domain

import (
	"frontdesk/internal/core/extract"
	"frontdesk/internal/core/textnorm"
)

// Status tags a pipeline outcome
type Status string

// Pipeline outcome states
const (
	StatusOK                 Status = "ok"
	StatusNeedsClarification Status = "needs_clarification"
	StatusError              Status = "error"
)

// Appointment is the final structured booking request
type Appointment struct {
	Department string `json:"department"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	TZ         string `json:"tz"`
}

// Diagnostics carries stage data back to the caller on clarification
// outcomes so a UI can hint at what was missing
type Diagnostics struct {
	RawText               string           `json:"raw_text,omitempty"`
	RecognitionConfidence float64          `json:"recognition_confidence,omitempty"`
	Preprocessing         *textnorm.Result `json:"preprocessing,omitempty"`
	Extraction            *extract.Result  `json:"extraction,omitempty"`
}

// Outcome is the single terminal result of one pipeline run
// exactly one of the status arms is populated
type Outcome struct {
	Status      Status
	Appointment *Appointment
	Message     string
	Diagnostics *Diagnostics
	Err         error
}
