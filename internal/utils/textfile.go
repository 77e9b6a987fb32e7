package utils

import (
	"bufio"
	"os"
	"regexp"
	"strings"
)

// Matches leading list markers like "1.", "3)", "-" or "Scene 2:" that scene
// lists exported from writing tools tend to carry.
var listMarker = regexp.MustCompile(`^(?:[Ss]cene\s+\d+\s*[:.]|\d+\s*[.)]|[-*])\s*`)

// ReadNonEmptyLines reads a plain-text scene list, one scene per line.
// Blank lines and # comments are skipped and leading list numbering is
// stripped, so exports from outliners import cleanly.
func ReadNonEmptyLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	s := bufio.NewScanner(f)
	// Scene descriptions can run long; the default 64K token limit is kept
	// but the initial buffer is sized for typical paragraphs.
	s.Buffer(make([]byte, 0, 4096), bufio.MaxScanTokenSize)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimSpace(listMarker.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
