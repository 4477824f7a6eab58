// Package service runs the parse pipeline: normalize, extract, resolve
package service

import (
	"context"
	"os"
	"strings"
	"time"

	"frontdesk/internal/adapters/ocr"
	"frontdesk/internal/core/extract"
	"frontdesk/internal/core/resolve"
	"frontdesk/internal/core/textnorm"
	perr "frontdesk/internal/platform/errors"
	"frontdesk/internal/platform/logger"
	"frontdesk/internal/services/api/parse/domain"
)

// TextInputConfidence is the recognition confidence assigned to typed text,
// which skips the OCR stage entirely
const TextInputConfidence = 0.98

// MsgGateFailed is the clarification message for the entity gate
// clients key UI hints off it, keep it stable
const MsgGateFailed = "Missing entity: department or low confidence"

// gateThreshold is the minimum entities confidence to continue resolving
const gateThreshold = 0.60

// Deps are the pipeline collaborators
type Deps struct {
	Normalizer *textnorm.Normalizer
	Extractor  *extract.Extractor
	Resolver   *resolve.Resolver
	// OCR is optional, nil disables image inputs
	OCR ocr.Engine
	// Zone is the clinic timezone used as the extraction reference frame
	Zone *time.Location
	// Now is a clock seam for tests, defaults to time.Now
	Now func() time.Time
}

// Service implements domain.ParsePort
type Service struct {
	deps Deps
}

// New constructs the parse service
func New(deps Deps) *Service {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Zone == nil {
		deps.Zone = time.UTC
	}
	return &Service{deps: deps}
}

// ParseText runs the pipeline over typed text
func (s *Service) ParseText(ctx context.Context, text string) domain.Outcome {
	return s.run(ctx, strings.TrimSpace(text), TextInputConfidence)
}

// ParseImage recognizes a spooled note photo and runs the pipeline over it
func (s *Service) ParseImage(ctx context.Context, imagePath string) domain.Outcome {
	if s.deps.OCR == nil {
		return errOutcome(perr.Recognitionf("image recognition is not enabled"))
	}

	data, err := os.ReadFile(imagePath)
	if err != nil {
		return errOutcome(perr.Wrap(err, perr.ErrorCodeRecognition, "read uploaded image"))
	}

	res, err := s.deps.OCR.Recognize(ctx, data)
	if err != nil {
		return errOutcome(err)
	}

	return s.run(ctx, res.Text, ocr.ScoreRecognition(res))
}

// run is the shared tail of both inputs, it never panics outward
func (s *Service) run(ctx context.Context, rawText string, recogConf float64) (out domain.Outcome) {
	defer func() {
		if v := recover(); v != nil {
			logger.C(ctx).Error().Interface("panic", v).Msg("parse pipeline panicked")
			out = errOutcome(perr.PanicErrf("parse pipeline failed"))
		}
	}()

	pre := s.deps.Normalizer.Preprocess(rawText)

	ref := s.deps.Now().In(s.deps.Zone)
	ents, err := s.deps.Extractor.Extract(ctx, pre.Processed, ref)
	if err != nil {
		return errOutcome(err)
	}

	if ents.Confidence < gateThreshold || ents.Entities.Department == "" {
		logger.C(ctx).Debug().
			Float64("entities_confidence", ents.Confidence).
			Str("department", ents.Entities.Department).
			Msg("entity gate failed")
		return domain.Outcome{
			Status:  domain.StatusNeedsClarification,
			Message: MsgGateFailed,
			Diagnostics: &domain.Diagnostics{
				RawText:               rawText,
				RecognitionConfidence: recogConf,
				Preprocessing:         &pre,
				Extraction:            &ents,
			},
		}
	}

	norm, err := s.deps.Resolver.Resolve(ctx, ents.Entities.Date, ents.Entities.Time)
	if err != nil {
		if ce, ok := resolve.AsClarification(err); ok {
			return domain.Outcome{
				Status:  domain.StatusNeedsClarification,
				Message: ce.Message,
			}
		}
		return errOutcome(err)
	}

	logger.C(ctx).Info().
		Str("department", ents.Entities.Department).
		Str("date", norm.Normalized.Date).
		Str("time", norm.Normalized.Time).
		Float64("entities_confidence", ents.Confidence).
		Float64("normalized_confidence", norm.Confidence).
		Msg("appointment parsed")

	return domain.Outcome{
		Status: domain.StatusOK,
		Appointment: &domain.Appointment{
			Department: ents.Entities.Department,
			Date:       norm.Normalized.Date,
			Time:       norm.Normalized.Time,
			TZ:         norm.Normalized.TZ,
		},
	}
}

func errOutcome(err error) domain.Outcome {
	return domain.Outcome{Status: domain.StatusError, Err: err}
}
