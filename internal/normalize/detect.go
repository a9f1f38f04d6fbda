package normalize

import (
	"strings"

	"github.com/abadojack/whatlanggo"
)

// Detector identifies the language of a text sample.
type Detector interface {
	Detect(sample string) string
}

// WhatlangDetector detects language with whatlanggo's trigram models.
// Unreliable or failed detection falls back to "en".
type WhatlangDetector struct{}

func (WhatlangDetector) Detect(sample string) string {
	if strings.TrimSpace(sample) == "" {
		return "en"
	}
	info := whatlanggo.Detect(sample)
	code := info.Lang.Iso6391()
	if code == "" {
		return "en"
	}
	return code
}
