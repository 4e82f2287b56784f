package submittal

import "fmt"

// Status codes used by the submittal log:
//
//	SD   shop drawing
//	SAM  sample
//	CERT certification
//	DAT  product data
//	LEED LEED documentation
//	REP  report
//	OMM  operations and maintenance manual
//	OTH  other, described in comments
const (
	StatusShopDrawing = "SD"
	StatusSample      = "SAM"
	StatusCertificate = "CERT"
	StatusData        = "DAT"
	StatusLEED        = "LEED"
	StatusReport      = "REP"
	StatusManual      = "OMM"
	StatusOther       = "OTH"
)

// Vocabulary maps a submittal type name to its status code.
type Vocabulary map[string]string

// DefaultVocabulary returns the standard type-to-code table.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		"Shop Drawings":                     StatusShopDrawing,
		"Samples for Initial Selection":     StatusSample,
		"Samples for Verification":          StatusSample,
		"Samples for Verification Purposes": StatusSample,
		"Product Certificates":              StatusCertificate,
		"Material Certificates":             StatusCertificate,
		"Product Data":                      StatusData,
		"LEED v4 Submittals":                StatusLEED,
		"Evaluation Reports":                StatusReport,
		"Maintenance Data":                  StatusManual,
		"Restoration Program.":              StatusOther,
	}
}

// Status returns the code for category. Unknown categories yield an
// UNMAPPED marker naming the category and ok == false.
func (v Vocabulary) Status(category string) (code string, ok bool) {
	if code, ok := v[category]; ok {
		return code, true
	}
	return Unmapped(category), false
}

// Unmapped is the status placeholder for a category with no code.
func Unmapped(category string) string {
	return fmt.Sprintf("UNMAPPED(%s)", category)
}
