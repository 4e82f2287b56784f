package outline

import (
	"regexp"
	"strings"
)

// Snapshot is the path from the section down to one line, as it stood
// right after that line was read. Index i holds the line at level i.
type Snapshot []Line

// Depth is the number of levels on the path.
func (s Snapshot) Depth() int {
	return len(s)
}

// At returns the line at level l, or false if the path does not reach it.
func (s Snapshot) At(l Level) (Line, bool) {
	if int(l) < 0 || int(l) >= len(s) {
		return Line{}, false
	}
	return s[l], true
}

var categoryPattern = regexp.MustCompile(`^[A-Z]\. ([^:]+)`)

// Category returns the submittal type named by the level-2 line, up to its
// first colon.
func (s Snapshot) Category() (string, bool) {
	line, ok := s.At(LevelType)
	if !ok {
		return "", false
	}
	m := categoryPattern.FindStringSubmatch(line.Text)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// BuildSnapshots walks lines keeping the current path and records a copy of
// it after every line. A final empty snapshot is appended so each real
// snapshot has a successor.
func BuildSnapshots(lines []Line) ([]Snapshot, error) {
	snaps := make([]Snapshot, 0, len(lines)+1)
	stack := make([]Line, 0, MaxDepth)

	for _, line := range lines {
		depth := int(line.Level)
		if len(stack) < depth {
			return nil, &FormatError{Line: line.Number, Text: line.Text, Err: ErrLevelJump}
		}
		stack = append(stack[:depth], line)

		snap := make(Snapshot, len(stack))
		copy(snap, stack)
		snaps = append(snaps, snap)
	}
	snaps = append(snaps, Snapshot{})
	return snaps, nil
}
