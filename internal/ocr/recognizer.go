package ocr

// Recognizer extracts text fragments from an already-prepared image.
// Position and confidence data from the underlying engine is discarded;
// only the fragment strings travel further down the pipeline.
type Recognizer interface {
	Name() string
	Recognize(image []byte) ([]string, error)
}
