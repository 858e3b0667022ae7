package lawlens

import "github.com/google/uuid"

// NewID generates a globally unique, time-sortable UUIDv7 (RFC 9562).
// Used for per-request analysis IDs.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// DeriveLawID builds a law identifier from an uploaded filename, used
// whenever the model output carries no lawId of its own. The filename is
// capped at 20 runes so the ID stays readable.
func DeriveLawID(filename string) string {
	runes := []rune(filename)
	if len(runes) > 20 {
		runes = runes[:20]
	}
	return "LAW-" + string(runes)
}
