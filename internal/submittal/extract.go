package submittal

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dgallion1/submittals/internal/outline"
)

// DefaultJurisdiction is the jurisdiction tag written on every row.
const DefaultJurisdiction = "NYS"

var (
	sectionPattern    = regexp.MustCompile(`^SECTION (\d{6}(?:\.\d{2})?)`)
	subsectionPattern = regexp.MustCompile(`^(\d+\.\d+)\s+(ACTION|INFORMATIONAL)\b`)
	itemPattern       = regexp.MustCompile(`^\d+\. (.+)`)

	fieldBreaks = strings.NewReplacer("\t", " ", "\r", " ", "\n", " ")
)

// Extractor builds rows from leaf snapshots.
type Extractor struct {
	Vocabulary   Vocabulary
	Jurisdiction string
}

// NewExtractor returns an Extractor using vocab and jurisdiction. A nil
// vocab means DefaultVocabulary; an empty jurisdiction means DefaultJurisdiction.
func NewExtractor(vocab Vocabulary, jurisdiction string) *Extractor {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	if jurisdiction == "" {
		jurisdiction = DefaultJurisdiction
	}
	return &Extractor{
		Vocabulary:   vocab,
		Jurisdiction: jurisdiction,
	}
}

// Extract reads the row fields from the ancestors of a leaf. mapped is
// false when the category has no status code.
func (e *Extractor) Extract(snap outline.Snapshot) (row Row, mapped bool) {
	row = Row{
		Section:      Missing,
		Subsection:   Missing,
		Description:  Missing,
		Action:       Missing,
		Status:       Missing,
		Jurisdiction: e.Jurisdiction,
	}
	mapped = true

	if m := submatch(snap, outline.LevelSection, sectionPattern); m != nil {
		row.Section = m[1]
	}
	if m := submatch(snap, outline.LevelCategory, subsectionPattern); m != nil {
		row.Subsection = m[1]
		row.Action = cases.Title(language.English).String(m[2])
	}
	if category, ok := snap.Category(); ok {
		row.Description = category
		row.Status, mapped = e.Vocabulary.Status(category)
	}
	if m := submatch(snap, outline.LevelItem, itemPattern); m != nil {
		row.Description = m[1]
	}

	row.Section = fieldBreaks.Replace(row.Section)
	row.Subsection = fieldBreaks.Replace(row.Subsection)
	row.Description = fieldBreaks.Replace(row.Description)
	row.Status = fieldBreaks.Replace(row.Status)
	return row, mapped
}

func submatch(snap outline.Snapshot, level outline.Level, re *regexp.Regexp) []string {
	line, ok := snap.At(level)
	if !ok {
		return nil
	}
	return re.FindStringSubmatch(line.Text)
}
