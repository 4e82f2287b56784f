package parser

import (
	"strings"
	"testing"
)

func TestTextParser_Lines(t *testing.T) {
	input := "SECTION 260500\r\n1.4 ACTION SUBMITTALS\n\n  A. Product Data\n"
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader(input), "submittals.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Name != "submittals" {
		t.Errorf("expected name %q, got %q", "submittals", doc.Name)
	}
	want := []string{"SECTION 260500", "1.4 ACTION SUBMITTALS", "", "  A. Product Data"}
	if len(doc.Lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(doc.Lines), doc.Lines)
	}
	for i, w := range want {
		if doc.Lines[i] != w {
			t.Errorf("line[%d]: expected %q, got %q", i, w, doc.Lines[i])
		}
	}
}

func TestTextParser_DecodesWindows1252(t *testing.T) {
	// 0x92 is a right single quote and 0x96 an en dash in windows-1252.
	input := "1. Manufacturer\x92s data \x96 pumps"
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader(input), "legacy.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(doc.Lines))
	}
	if want := "1. Manufacturer’s data – pumps"; doc.Lines[0] != want {
		t.Errorf("expected %q, got %q", want, doc.Lines[0])
	}
}

func TestTextParser_UTF8Encoding(t *testing.T) {
	p := &TextParser{Encoding: "utf-8"}
	doc, err := p.Parse(strings.NewReader("1. Manufacturer’s data"), "utf8.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Lines[0] != "1. Manufacturer’s data" {
		t.Errorf("unexpected line %q", doc.Lines[0])
	}
}

func TestTextParser_UnknownEncoding(t *testing.T) {
	p := &TextParser{Encoding: "no-such-encoding"}
	if _, err := p.Parse(strings.NewReader("x"), "bad.txt"); err == nil {
		t.Fatal("expected error for unknown encoding")
	}
}

func TestTextParser_EmptyInput(t *testing.T) {
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Lines) != 0 {
		t.Errorf("expected 0 lines for empty input, got %d", len(doc.Lines))
	}
}

func TestForFile(t *testing.T) {
	tests := []struct {
		filename string
		wantErr  bool
	}{
		{"report.txt", false},
		{"report.TXT", false},
		{"report.md", false},
		{"report.html", false},
		{"report.pdf", false},
		{"report.docx", false},
		{"report.csv", true},
		{"report", true},
	}
	for _, tc := range tests {
		t.Run(tc.filename, func(t *testing.T) {
			p, err := ForFile(tc.filename, Options{})
			if tc.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tc.filename)
				}
				if IsSupportedExtension(tc.filename) {
					t.Errorf("expected %q to be unsupported", tc.filename)
				}
				return
			}
			if err != nil || p == nil {
				t.Errorf("expected parser for %q, got %v", tc.filename, err)
			}
			if !IsSupportedExtension(tc.filename) {
				t.Errorf("expected %q to be supported", tc.filename)
			}
		})
	}
}

func TestForFile_TextFallback(t *testing.T) {
	for _, name := range []string{"submittals", "report.lst", "report.csv"} {
		t.Run(name, func(t *testing.T) {
			p, err := ForFile(name, Options{TextFallback: true})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if _, ok := p.(*TextParser); !ok {
				t.Errorf("expected *TextParser, got %T", p)
			}
		})
	}

	p, err := ForFile("report.pdf", Options{TextFallback: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.(*PDFParser); !ok {
		t.Errorf("expected known extensions to keep their parser, got %T", p)
	}
}
