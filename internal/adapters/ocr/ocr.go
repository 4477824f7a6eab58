// Package ocr implements image text recognition for photographed appointment
// notes, backed by the tesseract engine via gosseract
package ocr

import "context"

// Result is one recognition pass
type Result struct {
	// Text is the recognized text, trimmed
	Text string
	// TokenConfidences holds the engine's 0..100 confidence per recognized word
	TokenConfidences []float64
}

// Engine recognizes text in an image
type Engine interface {
	Recognize(ctx context.Context, image []byte) (Result, error)
}
