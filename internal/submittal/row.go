// Package submittal turns leaf outline paths into submittal log rows.
package submittal

import "strings"

// Missing marks a field whose ancestor line is absent or unrecognized.
const Missing = "???"

// Row is one line of the submittal log. Rows compare equal when every
// field matches.
type Row struct {
	Section      string
	Subsection   string
	Reserved     string
	Description  string
	Action       string
	Status       string
	Jurisdiction string
}

// Header names the columns in output order.
var Header = []string{"Section", "Subsection", "Reserved", "Description", "Action", "Status", "Jurisdiction"}

// Fields returns the row's values in output order.
func (r Row) Fields() []string {
	return []string{r.Section, r.Subsection, r.Reserved, r.Description, r.Action, r.Status, r.Jurisdiction}
}

// String renders the row as a tab-separated line without a newline.
func (r Row) String() string {
	return strings.Join(r.Fields(), "\t")
}

// Dedup keeps the first occurrence of each distinct row, preserving order.
func Dedup(rows []Row) []Row {
	seen := make(map[Row]struct{}, len(rows))
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}
