package scan

import (
	"encoding/base64"
	"strings"

	"github.com/fikrirozi147/halal-checker-backend/internal/catalogue"
	"github.com/fikrirozi147/halal-checker-backend/internal/ocr"
)

// TextExtractor is the slice of the OCR layer this service needs.
type TextExtractor interface {
	Extract(image []byte, region ocr.Region) ([]string, error)
}

type Service struct {
	extractor TextExtractor
	store     *catalogue.Store
}

func NewService(extractor TextExtractor, store *catalogue.Store) *Service {
	return &Service{extractor: extractor, store: store}
}

// Check runs one scan. A request with neither image nor text gets its
// own error result with a nil error; processing failures (bad base64,
// undecodable image, recognizer crash) come back as a non-nil error for
// the handler to collapse into the generic error verdict.
func (s *Service) Check(req Request) (Result, error) {
	var normalized string

	switch {
	case req.Image != "":
		imageBytes, err := base64.StdEncoding.DecodeString(req.Image)
		if err != nil {
			return Result{}, &ocr.DecodeError{Err: err}
		}
		fragments, err := s.extractor.Extract(imageBytes, ocr.ParseRegion(req.Region))
		if err != nil {
			return Result{}, err
		}
		normalized = Normalize(fragments)

	case req.Text != "":
		normalized = strings.ToLower(req.Text)

	default:
		return errorResult("No image or text sent"), nil
	}

	return Classify(normalized, s.store.Catalogue()), nil
}
