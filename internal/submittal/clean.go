package submittal

import (
	"regexp"
	"strings"
)

// LEEDSummary replaces the long LEED documentation boilerplate.
const LEEDSummary = "LEED product and material documentation"

var leedBoilerplate = regexp.MustCompile(`For all permanently installed products and materials.*`)

// CleanRow trims list-lead-in and sentence punctuation from the end of each
// field and condenses LEED boilerplate. The jurisdiction tag is left alone.
func CleanRow(r Row) Row {
	r.Section = cleanField(r.Section)
	r.Subsection = cleanField(r.Subsection)
	r.Reserved = cleanField(r.Reserved)
	r.Description = cleanField(r.Description)
	r.Action = cleanField(r.Action)
	r.Status = cleanField(r.Status)
	return r
}

func cleanField(s string) string {
	s = strings.TrimSuffix(s, " as follows:")
	s = strings.TrimSuffix(s, ".")
	return leedBoilerplate.ReplaceAllLiteralString(s, LEEDSummary)
}
