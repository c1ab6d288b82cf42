package ocr

// Region is the caller's hint about which script, beyond Latin/Malay,
// the label may carry. Values are case-sensitive; anything unrecognized
// simply selects no extra recognizer, it is not rejected.
type Region string

const (
	RegionAll   Region = "ALL"
	RegionJapan Region = "JAPAN"
	RegionKorea Region = "KOREA"
	RegionThai  Region = "THAI"
	RegionChina Region = "CHINA"
)

// ParseRegion maps the raw request value to a Region, defaulting to ALL
// when absent.
func ParseRegion(raw string) Region {
	if raw == "" {
		return RegionAll
	}
	return Region(raw)
}
