package ocr

import (
	"fmt"
	"sync"

	"github.com/otiai10/gosseract/v2"
)

// TesseractRecognizer wraps one gosseract client bound to a fixed set of
// tesseract language models. The client carries the loaded models, so it
// is built once at startup and reused for every scan; tesseract clients
// are not thread-safe, so calls are serialized with a mutex.
type TesseractRecognizer struct {
	name string

	mu     sync.Mutex
	client *gosseract.Client
}

// NewTesseractRecognizer loads the given language models into a fresh
// client. Languages use tesseract codes, e.g. "eng", "msa", "chi_sim".
func NewTesseractRecognizer(name string, languages ...string) (*TesseractRecognizer, error) {
	client := gosseract.NewClient()
	if err := client.SetLanguage(languages...); err != nil {
		client.Close()
		return nil, fmt.Errorf("load %s models: %w", name, err)
	}
	return &TesseractRecognizer{name: name, client: client}, nil
}

func (r *TesseractRecognizer) Name() string { return r.name }

// Recognize runs one OCR pass and returns one fragment per detected
// text line, dropping bounding boxes and confidences.
func (r *TesseractRecognizer) Recognize(image []byte) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.client.SetImageFromBytes(image); err != nil {
		return nil, fmt.Errorf("set image: %w", err)
	}

	boxes, err := r.client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return nil, fmt.Errorf("read text: %w", err)
	}

	fragments := make([]string, 0, len(boxes))
	for _, b := range boxes {
		if b.Word != "" {
			fragments = append(fragments, b.Word)
		}
	}
	return fragments, nil
}

func (r *TesseractRecognizer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.client.Close()
}
