// Package outline rebuilds the hierarchy of a flattened submittals outline
// and selects the leaf paths that become table rows.
package outline

import "regexp"

// Level is the depth of a structural line in the outline.
type Level int

const (
	LevelSection  Level = iota // SECTION 260500
	LevelCategory              // 1.4 ACTION SUBMITTALS
	LevelType                  // A. Product Data
	LevelItem                  // 1. Manufacturer's catalog sheets
	LevelSubItem               // a. Pump curves
)

// MaxDepth is the number of recognized levels.
const MaxDepth = int(LevelSubItem) + 1

func (l Level) String() string {
	switch l {
	case LevelSection:
		return "section"
	case LevelCategory:
		return "category"
	case LevelType:
		return "type"
	case LevelItem:
		return "item"
	case LevelSubItem:
		return "subitem"
	}
	return "unknown"
}

type levelRule struct {
	pattern *regexp.Regexp
	level   Level
}

// Evaluated in order; first match wins.
var levelRules = []levelRule{
	{regexp.MustCompile(`^SECTION \d{6}(\.\d{2})?`), LevelSection},
	{regexp.MustCompile(`^\d+\.\d+\s+(ACTION|INFORMATIONAL)\b`), LevelCategory},
	{regexp.MustCompile(`^[A-Z]\. `), LevelType},
	{regexp.MustCompile(`^\d+\. `), LevelItem},
	{regexp.MustCompile(`^[a-z]\. `), LevelSubItem},
}

// Classify returns the level of a trimmed line. ok is false when the line
// matches no numbering pattern, i.e. it continues the previous line.
func Classify(text string) (level Level, ok bool) {
	for _, r := range levelRules {
		if r.pattern.MatchString(text) {
			return r.level, true
		}
	}
	return 0, false
}
