package ocr

import "fmt"

// DecodeError means the request's image bytes could not be decoded.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode image: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// RecognitionError means a recognizer failed on an image that decoded
// fine. One failing recognizer aborts the whole scan; there is no
// partial-success path.
type RecognitionError struct {
	Recognizer string
	Err        error
}

func (e *RecognitionError) Error() string {
	return fmt.Sprintf("recognizer %s: %v", e.Recognizer, e.Err)
}

func (e *RecognitionError) Unwrap() error { return e.Err }
