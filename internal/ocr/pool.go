package ocr

import (
	"fmt"
	"log"
)

// regionOrder fixes the invocation order of the script-specific passes
// when the region is ALL.
var regionOrder = []Region{RegionJapan, RegionKorea, RegionThai, RegionChina}

var regionLanguages = map[Region][]string{
	RegionJapan: {"jpn", "eng"},
	RegionKorea: {"kor", "eng"},
	RegionThai:  {"tha", "eng"},
	RegionChina: {"chi_sim", "eng"},
}

// Pool holds the fixed recognizer set: the mandatory Latin/Malay base
// pass plus one script-specific recognizer per supported region. Adding
// a script is a new map entry, not new branching.
type Pool struct {
	base     Recognizer
	byRegion map[Region]Recognizer
}

func NewPool(base Recognizer, byRegion map[Region]Recognizer) *Pool {
	return &Pool{base: base, byRegion: byRegion}
}

// NewTesseractPool builds the production pool, loading every language
// model up front. Expensive, runs once at boot.
func NewTesseractPool() (*Pool, error) {
	log.Println("loading OCR models (once per process)...")

	base, err := NewTesseractRecognizer("latin-malay", "eng", "msa")
	if err != nil {
		return nil, fmt.Errorf("ocr pool: %w", err)
	}

	byRegion := make(map[Region]Recognizer, len(regionLanguages))
	for _, region := range regionOrder {
		rec, err := NewTesseractRecognizer(string(region), regionLanguages[region]...)
		if err != nil {
			return nil, fmt.Errorf("ocr pool: %w", err)
		}
		byRegion[region] = rec
	}

	log.Println("✅ OCR models loaded")
	return NewPool(base, byRegion), nil
}

// ForRegion returns the recognizers to run, in invocation order. The
// base pass always runs first: labels mix Latin E-numbers and brand
// terms into any local script. ALL selects every specific pass;
// an unknown region selects none of them.
func (p *Pool) ForRegion(region Region) []Recognizer {
	selected := []Recognizer{p.base}
	for _, r := range regionOrder {
		if region != r && region != RegionAll {
			continue
		}
		if rec, ok := p.byRegion[r]; ok {
			selected = append(selected, rec)
		}
	}
	return selected
}
