package transcript

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"videorag/internal/domain"
)

// Load reads a transcript file, choosing the parser by extension.
// JSON files carry an array of {"text","time"} objects; SRT files follow
// the SubRip cue format.
func Load(path string) ([]domain.Segment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".srt":
		return ParseSRT(string(data)), nil
	case ".json":
		return ParseJSON(data)
	default:
		return nil, fmt.Errorf("unsupported transcript format %q", filepath.Ext(path))
	}
}

// ParseJSON decodes a transcript from a JSON array of segments.
func ParseJSON(data []byte) ([]domain.Segment, error) {
	var segments []domain.Segment
	if err := json.Unmarshal(data, &segments); err != nil {
		return nil, fmt.Errorf("parse transcript JSON: %w", err)
	}
	return segments, nil
}

// ParseSRT parses SubRip cues into segments. Multi-line cue text becomes
// one segment per line, all labeled with the cue's start time.
//
//	1
//	00:00:00,000 --> 00:00:01,830
//	I'm happy to
//	have you here today.
func ParseSRT(text string) []domain.Segment {
	var segments []domain.Segment
	var currentTime string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isDigitOnly(line) {
			continue
		}
		if strings.Contains(line, "-->") {
			parts := strings.SplitN(line, "-->", 2)
			currentTime = formatTimestamp(strings.TrimSpace(parts[0]))
			continue
		}
		segments = append(segments, domain.Segment{Text: line, Time: currentTime})
	}
	return segments
}

// formatTimestamp shortens an SRT timestamp (HH:MM:SS,mmm) to the label
// form used in citations: MM:SS, or H:MM:SS past the first hour.
func formatTimestamp(ts string) string {
	if i := strings.IndexByte(ts, ','); i >= 0 {
		ts = ts[:i]
	}
	parts := strings.Split(ts, ":")
	if len(parts) != 3 {
		return ts
	}
	if parts[0] == "00" {
		return parts[1] + ":" + parts[2]
	}
	return strings.TrimPrefix(parts[0], "0") + ":" + parts[1] + ":" + parts[2]
}

func isDigitOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
