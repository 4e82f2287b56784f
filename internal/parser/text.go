package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// DefaultEncoding is the legacy single-byte encoding text exports use.
const DefaultEncoding = "windows-1252"

// TextParser handles plain text files. Input is decoded from Encoding so
// curly quotes and dashes in legacy exports survive as UTF-8.
type TextParser struct {
	Encoding string
}

func (p *TextParser) Parse(r io.Reader, filename string) (*Document, error) {
	label := p.Encoding
	if label == "" {
		label = DefaultEncoding
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("text encoding %q: %w", label, err)
	}

	scanner := bufio.NewScanner(transform.NewReader(r, enc.NewDecoder()))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	doc := &Document{Name: baseName(filename)}
	for scanner.Scan() {
		doc.Lines = append(doc.Lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read text: %w", err)
	}
	return doc, nil
}
