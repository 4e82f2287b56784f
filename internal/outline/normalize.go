package outline

import (
	"regexp"
	"strings"
)

// Line is a structural line of the outline with any wrapped continuations
// merged into it.
type Line struct {
	Number int // source line where the structural line starts (1-based)
	Text   string
	Level  Level
}

var (
	divisionReportPattern = regexp.MustCompile(`^Division \d+ Submittals Report`)
	pageMarkerPattern     = regexp.MustCompile(`^Page \d+\.\d+`)
)

// Normalizer drops page furniture and reassembles wrapped lines.
type Normalizer struct {
	// Boilerplate lists running-header prefixes to discard. They are
	// project specific, so callers supply them.
	Boilerplate []string
}

// Normalize returns the structural lines of raw in order. Discarded
// reports how many lines were dropped as page furniture.
func (n *Normalizer) Normalize(raw []string) (lines []Line, discarded int, err error) {
	for i, r := range raw {
		text := strings.TrimSpace(r)
		if text == "" {
			continue
		}
		if n.isFurniture(text) {
			discarded++
			continue
		}

		level, ok := Classify(text)
		if !ok {
			if len(lines) == 0 {
				return nil, discarded, &FormatError{Line: i + 1, Text: text, Err: ErrOrphanContinuation}
			}
			last := &lines[len(lines)-1]
			last.Text += " " + text
			continue
		}
		lines = append(lines, Line{Number: i + 1, Text: text, Level: level})
	}
	return lines, discarded, nil
}

func (n *Normalizer) isFurniture(text string) bool {
	for _, prefix := range n.Boilerplate {
		if prefix != "" && strings.HasPrefix(text, prefix) {
			return true
		}
	}
	return divisionReportPattern.MatchString(text) || pageMarkerPattern.MatchString(text)
}
