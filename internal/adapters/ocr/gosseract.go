package ocr

import (
	"context"
	"strings"
	"sync"

	perr "frontdesk/internal/platform/errors"

	"github.com/otiai10/gosseract/v2"
)

// Tesseract is an Engine over a single gosseract client
// the client is not safe for concurrent use, calls are serialized under mu
type Tesseract struct {
	mu     sync.Mutex
	client *gosseract.Client
}

// NewTesseract constructs a Tesseract engine for the given language code
func NewTesseract(lang string) (*Tesseract, error) {
	c := gosseract.NewClient()
	if err := c.SetLanguage(lang); err != nil {
		_ = c.Close()
		return nil, perr.Wrap(err, perr.ErrorCodeRecognition, "set ocr language")
	}
	return &Tesseract{client: c}, nil
}

// Close releases the underlying tesseract handle
func (t *Tesseract) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.client.Close()
}

// Recognize prepares the image and runs one recognition pass
func (t *Tesseract) Recognize(ctx context.Context, image []byte) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	prepared, err := prepare(image)
	if err != nil {
		return Result{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.client.SetImageFromBytes(prepared); err != nil {
		return Result{}, perr.Wrap(err, perr.ErrorCodeRecognition, "load image into ocr engine")
	}

	text, err := t.client.Text()
	if err != nil {
		return Result{}, perr.Wrap(err, perr.ErrorCodeRecognition, "recognize text")
	}

	res := Result{Text: strings.TrimSpace(text)}

	// word boxes carry the per token confidences, a failure here degrades
	// the score but not the recognition itself
	if boxes, berr := t.client.GetBoundingBoxes(gosseract.RIL_WORD); berr == nil {
		for _, b := range boxes {
			if strings.TrimSpace(b.Word) == "" {
				continue
			}
			res.TokenConfidences = append(res.TokenConfidences, b.Confidence)
		}
	}

	return res, nil
}
