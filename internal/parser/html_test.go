package parser

import (
	"strings"
	"testing"
)

func TestHTMLParser_BlockLines(t *testing.T) {
	input := `<html><head><title>Report</title><style>p{}</style></head>
<body>
<h1>SECTION 260500</h1>
<p>1.4 ACTION SUBMITTALS</p>
<div>A. Product Data<br>for each type</div>
<table><tr><td>1. Catalog sheets</td></tr></table>
<script>var x = 1;</script>
</body></html>`
	p := &HTMLParser{}
	doc, err := p.Parse(strings.NewReader(input), "report.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"SECTION 260500",
		"1.4 ACTION SUBMITTALS",
		"A. Product Data",
		"for each type",
		"1. Catalog sheets",
	}
	if len(doc.Lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(doc.Lines), doc.Lines)
	}
	for i, w := range want {
		if strings.TrimSpace(doc.Lines[i]) != w {
			t.Errorf("line[%d]: expected %q, got %q", i, w, doc.Lines[i])
		}
	}
}
