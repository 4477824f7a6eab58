package ocr

import (
	"bytes"

	perr "frontdesk/internal/platform/errors"

	"github.com/disintegration/imaging"
)

// maxWidth keeps large phone photos manageable without enlarging small scans
const maxWidth = 1600

// prepare decodes and cleans an uploaded photo for recognition:
// downscale to maxWidth, grayscale, stretch contrast, re-encode as PNG
func prepare(image []byte) ([]byte, error) {
	src, err := imaging.Decode(bytes.NewReader(image), imaging.AutoOrientation(true))
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeRecognition, "decode image")
	}

	if src.Bounds().Dx() > maxWidth {
		src = imaging.Resize(src, maxWidth, 0, imaging.Lanczos)
	}
	out := imaging.Grayscale(src)
	out = imaging.AdjustContrast(out, 20)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, out, imaging.PNG); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeRecognition, "encode prepared image")
	}
	return buf.Bytes(), nil
}
