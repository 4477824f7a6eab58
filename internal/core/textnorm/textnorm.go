// Package textnorm provides a deterministic text normalizer for raw scheduling
// requests before entity extraction
// Pipeline order
// 1 Spacing repair, splits tokens OCR ran together
// 2 Token correction, lowercases and expands abbreviations and OCR confusions
// 3 Formatting normalization, whitespace collapse and symbol expansion
//
// Each step that changed the text is recorded as a Correction, and the overall
// confidence decays by 0.1 per recorded step with a floor of 0.6
package textnorm

import (
	"math"
	"strings"
)

// Correction records one pipeline step that altered the text
type Correction struct {
	Type        string `json:"type"`
	Original    string `json:"original"`
	Corrected   string `json:"corrected"`
	Description string `json:"description"`
}

// Result is the outcome of preprocessing one input
type Result struct {
	Original       string       `json:"original_text"`
	Processed      string       `json:"processed_text"`
	Corrections    []Correction `json:"corrections"`
	Confidence     float64      `json:"confidence"`
	HasCorrections bool         `json:"has_corrections"`
}

// Normalizer is stateless and safe for concurrent use
type Normalizer struct{}

// New constructs a Normalizer
func New() *Normalizer { return &Normalizer{} }

// Preprocess runs the full pipeline over raw text and reports what changed
func (n *Normalizer) Preprocess(raw string) Result {
	if raw == "" {
		return Result{Original: raw, Processed: raw, Confidence: 0}
	}

	var corrections []Correction
	current := raw

	// 1 spacing repair
	spaced := expandSpacing(current)
	if spaced != current {
		corrections = append(corrections, Correction{
			Type:        "spacing",
			Original:    current,
			Corrected:   spaced,
			Description: "Added missing spaces",
		})
		current = spaced
	}

	// 2 token correction, lowercasing counts as a change
	corrected := correctTokens(current)
	if corrected != current {
		corrections = append(corrections, Correction{
			Type:        "ocr_correction",
			Original:    current,
			Corrected:   corrected,
			Description: "Corrected OCR character misrecognitions",
		})
		current = corrected
	}

	// 3 formatting normalization
	tidied := tidyFormatting(current)
	if tidied != current {
		corrections = append(corrections, Correction{
			Type:        "normalization",
			Original:    current,
			Corrected:   tidied,
			Description: "Normalized text formatting",
		})
		current = tidied
	}

	conf := math.Max(0.6, 1-float64(len(corrections))*0.1)

	return Result{
		Original:       raw,
		Processed:      current,
		Corrections:    corrections,
		Confidence:     math.Round(conf*100) / 100,
		HasCorrections: len(corrections) > 0,
	}
}

// expandSpacing applies each spacing rule in order over the whole text
func expandSpacing(s string) string {
	out := s
	for _, rule := range spacingRules {
		out = rule.re.ReplaceAllString(out, rule.repl)
	}
	return out
}

// correctTokens lowercases the text and expands each token through the fix table
// punctuation is stripped for the lookup and re-appended after the expansion
func correctTokens(s string) string {
	lower := strings.ToLower(s)
	words := wsRe.Split(lower, -1)
	out := make([]string, len(words))
	for i, word := range words {
		clean := nonWordRe.ReplaceAllString(word, "")
		if fix, ok := tokenFixes[clean]; ok {
			punct := wordRe.ReplaceAllString(word, "")
			out[i] = fix + punct
			continue
		}
		out[i] = word
	}
	return strings.Join(out, " ")
}

// tidyFormatting collapses whitespace and expands @ and & into words
func tidyFormatting(s string) string {
	out := strings.TrimSpace(s)
	out = wsRe.ReplaceAllString(out, " ")
	out = atRe.ReplaceAllString(out, " at ")
	out = ampRe.ReplaceAllString(out, " and ")
	out = amRe.ReplaceAllString(out, "am")
	out = pmRe.ReplaceAllString(out, "pm")
	return out
}
