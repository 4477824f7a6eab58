package ocr

import (
	"math"
	"strings"
)

// schedulingKeywords boost confidence when the recognized text reads like an
// appointment note at all
var schedulingKeywords = []string{
	"appointment", "book", "schedule", "visit", "checkup",
	"doctor", "dentist", "clinic", "am", "pm", "tomorrow", "today",
}

// ScoreRecognition grades a recognition result from the engine's per token
// confidences, adjusted by how plausible the output text looks
//
// short outputs (<10 chars) score ×0.7, short average tokens (<3 chars)
// ×0.8, long outputs with healthy tokens ×1.1. Floor 0.30, ceiling 0.95,
// with a +0.05 boost toward 0.90 when scheduling keywords are present
func ScoreRecognition(res Result) float64 {
	conf := 0.85
	if len(res.TokenConfidences) > 0 {
		sum := 0.0
		for _, c := range res.TokenConfidences {
			sum += c
		}
		conf = sum / float64(len(res.TokenConfidences)) / 100
	}

	text := strings.TrimSpace(res.Text)
	tokens := strings.Fields(text)
	avgTokenLen := 0.0
	if len(tokens) > 0 {
		total := 0
		for _, tok := range tokens {
			total += len(tok)
		}
		avgTokenLen = float64(total) / float64(len(tokens))
	}

	switch {
	case len(text) < 10:
		conf *= 0.7
	case avgTokenLen < 3:
		conf *= 0.8
	case len(text) > 20 && avgTokenLen > 4:
		conf *= 1.1
	}

	conf = math.Max(0.30, math.Min(0.95, conf))

	if conf < 0.90 && containsKeyword(text) {
		conf = math.Min(0.90, conf+0.05)
	}

	return math.Round(conf*100) / 100
}

func containsKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range schedulingKeywords {
		for _, tok := range strings.Fields(lower) {
			if strings.Trim(tok, ".,!?:;") == kw {
				return true
			}
		}
	}
	return false
}
