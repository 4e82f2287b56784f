// Package parser reads source documents into ordered text lines for the
// outline converter.
package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Document is a source file reduced to its text lines in reading order.
type Document struct {
	Name  string   // filename without extension
	Lines []string // untrimmed text lines
}

// Parser converts raw document bytes into a Document.
type Parser interface {
	Parse(r io.Reader, filename string) (*Document, error)
}

// Options tunes the line sources.
type Options struct {
	// Encoding is the WHATWG label of the encoding plain text files use.
	Encoding string
	// FallbackPdftotext retries PDF extraction with the pdftotext tool.
	FallbackPdftotext bool
	// TextFallback reads files with a missing or unknown extension as
	// plain text instead of rejecting them.
	TextFallback bool
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string, opts Options) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextParser{Encoding: opts.Encoding}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".pdf":
		return &PDFParser{FallbackPdftotext: opts.FallbackPdftotext}, nil
	case ".docx":
		return &DOCXParser{}, nil
	default:
		if opts.TextFallback {
			return &TextParser{Encoding: opts.Encoding}, nil
		}
		return nil, fmt.Errorf("unsupported file extension: %q", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

func baseName(filename string) string {
	return strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
}
