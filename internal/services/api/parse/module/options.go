package module

import (
	"time"

	"frontdesk/internal/adapters/upload"
	"frontdesk/internal/platform/config"
)

// Options controls the parse pipeline wiring
type Options struct {
	// Timezone is the IANA zone appointments resolve into
	Timezone string

	// UploadDir is where note photos are spooled during recognition
	UploadDir string
	// MaxUploadBytes caps a single photo upload
	MaxUploadBytes int64

	// OCREnabled turns the image path on, text parsing works either way
	OCREnabled bool
	// OCRLanguage is the tesseract language pack
	OCRLanguage string

	// UploadRateLimit and RateWindow throttle the parse endpoint
	UploadRateLimit int
	RateWindow      time.Duration
}

// FromConfig reads with PARSE_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("PARSE_")
	return Options{
		Timezone:        c.MayString("TZ", "Asia/Kolkata"),
		UploadDir:       c.MayString("UPLOAD_DIR", "uploads"),
		MaxUploadBytes:  c.MayInt64("MAX_UPLOAD_BYTES", upload.DefaultMaxBytes),
		OCREnabled:      c.MayBool("OCR_ENABLED", true),
		OCRLanguage:     c.MayString("OCR_LANG", "eng"),
		UploadRateLimit: c.MayInt("UPLOAD_RATE_LIMIT", 20),
		RateWindow:      c.MayDuration("RATE_WINDOW", 15*time.Minute),
	}
}
