package scan

// Request is the body of POST /check-ingredients. Image carries
// base64-encoded photo bytes; Text is the manual-input alternative.
// Exactly one of the two is expected.
type Request struct {
	Image  string `json:"image"`
	Text   string `json:"text"`
	Region string `json:"region"`
}

// Result is the verdict payload returned to the client.
type Result struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
	Color  string `json:"color"`
}

const (
	StatusHalal    = "Halal"
	StatusMushbooh = "Mushbooh"
	StatusHaram    = "Haram"
	StatusError    = "Error"
)

// Fixed display colors per verdict.
const (
	colorHalal    = "#4CAF50"
	colorMushbooh = "#FFA500"
	colorHaram    = "#FF4D4D"
	colorError    = "grey"
)

const halalReason = "Safe to consume. No haram ingredients found."

func errorResult(reason string) Result {
	return Result{Status: StatusError, Reason: reason, Color: colorError}
}
