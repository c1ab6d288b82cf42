package ocr

import (
	"bytes"
	"image"
	"image/png"
	"log"
	"math"

	_ "image/gif"
	_ "image/jpeg"

	"golang.org/x/image/draw"
)

// maxWidth bounds recognition latency: every model pass scales with
// pixel count, and phone photos easily exceed 4000px.
const maxWidth = 1000

// PrepareImage decodes the uploaded bytes and, when wider than
// maxWidth, downscales proportionally with Catmull-Rom resampling.
// Runs once per scan, before any recognizer. Returns PNG bytes ready
// for SetImageFromBytes.
func PrepareImage(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxWidth {
		ratio := float64(maxWidth) / float64(bounds.Dx())
		height := int(math.Round(float64(bounds.Dy()) * ratio))
		log.Printf("resizing image from %dpx to %dpx wide", bounds.Dx(), maxWidth)

		scaled := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, bounds, draw.Over, nil)
		img = scaled
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return buf.Bytes(), nil
}
