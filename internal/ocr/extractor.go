package ocr

import "log"

// Extractor drives one scan: prepare the image once, then run the
// region-selected recognizers sequentially and concatenate their
// fragments. Sequential on purpose: each model is large, and running
// them concurrently would multiply peak memory for little latency win.
type Extractor struct {
	pool *Pool
}

func NewExtractor(pool *Pool) *Extractor {
	return &Extractor{pool: pool}
}

// Extract returns the combined fragment list in invocation order.
// Duplicates across recognizers are kept; deduplication is the
// normalizer's job. Any recognizer failure aborts the scan.
func (e *Extractor) Extract(imageData []byte, region Region) ([]string, error) {
	prepared, err := PrepareImage(imageData)
	if err != nil {
		return nil, err
	}

	var fragments []string
	for _, rec := range e.pool.ForRegion(region) {
		log.Printf("running %s recognizer", rec.Name())
		found, err := rec.Recognize(prepared)
		if err != nil {
			return nil, &RecognitionError{Recognizer: rec.Name(), Err: err}
		}
		fragments = append(fragments, found...)
	}
	return fragments, nil
}
