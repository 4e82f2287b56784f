// Package pipeline runs the outline-to-row conversion end to end.
package pipeline

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/dgallion1/submittals/internal/outline"
	"github.com/dgallion1/submittals/internal/parser"
	"github.com/dgallion1/submittals/internal/submittal"
)

// Options configures a Converter.
type Options struct {
	// Boilerplate lists running-header prefixes to discard.
	Boilerplate []string
	// Vocabulary maps submittal types to status codes. Nil means the default table.
	Vocabulary submittal.Vocabulary
	// Jurisdiction is written on every row. Empty means submittal.DefaultJurisdiction.
	Jurisdiction string
	// ItemizedCategory names the category whose itemized children are dropped.
	// Empty means outline.ShopDrawings.
	ItemizedCategory string
}

// Stats counts what each stage produced.
type Stats struct {
	RawLines        int      `json:"raw_lines"`
	Discarded       int      `json:"discarded"`
	StructuralLines int      `json:"structural_lines"`
	Snapshots       int      `json:"snapshots"`
	Leaves          int      `json:"leaves"`
	RowsExtracted   int      `json:"rows_extracted"`
	Rows            int      `json:"rows"`
	Unmapped        []string `json:"unmapped,omitempty"`
}

// Result is the output of one conversion.
type Result struct {
	Rows  []submittal.Row
	Stats Stats
}

// Converter turns outline lines into deduplicated submittal rows.
type Converter struct {
	normalizer *outline.Normalizer
	extractor  *submittal.Extractor
	itemized   string
	log        *slog.Logger
}

func NewConverter(opts Options, log *slog.Logger) *Converter {
	if log == nil {
		log = slog.Default()
	}
	itemized := opts.ItemizedCategory
	if itemized == "" {
		itemized = outline.ShopDrawings
	}
	return &Converter{
		normalizer: &outline.Normalizer{Boilerplate: opts.Boilerplate},
		extractor:  submittal.NewExtractor(opts.Vocabulary, opts.Jurisdiction),
		itemized:   itemized,
		log:        log,
	}
}

// Convert runs every stage over raw lines. Structural errors are returned
// as *outline.FormatError; unmapped categories only produce a marker in the
// status field.
func (c *Converter) Convert(raw []string) (*Result, error) {
	res := &Result{Stats: Stats{RawLines: len(raw)}}

	lines, discarded, err := c.normalizer.Normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}
	res.Stats.Discarded = discarded
	res.Stats.StructuralLines = len(lines)

	snaps, err := outline.BuildSnapshots(lines)
	if err != nil {
		return nil, fmt.Errorf("build outline: %w", err)
	}
	res.Stats.Snapshots = len(snaps) - 1

	leaves := outline.SelectLeaves(outline.FilterCategory(snaps, c.itemized))
	res.Stats.Leaves = len(leaves)

	rows := make([]submittal.Row, 0, len(leaves))
	seenUnmapped := make(map[string]bool)
	for _, leaf := range leaves {
		row, mapped := c.extractor.Extract(leaf)
		if !mapped {
			category, _ := leaf.Category()
			if !seenUnmapped[category] {
				seenUnmapped[category] = true
				res.Stats.Unmapped = append(res.Stats.Unmapped, category)
				c.log.Warn("unmapped submittal category", "category", category, "line", leaf[outline.LevelType].Number)
			}
		}
		rows = append(rows, submittal.CleanRow(row))
	}
	res.Stats.RowsExtracted = len(rows)

	res.Rows = submittal.Dedup(rows)
	res.Stats.Rows = len(res.Rows)

	c.log.Debug("converted outline",
		"raw_lines", res.Stats.RawLines,
		"structural_lines", res.Stats.StructuralLines,
		"leaves", res.Stats.Leaves,
		"rows", res.Stats.Rows,
		"duplicates", res.Stats.RowsExtracted-res.Stats.Rows,
	)
	return res, nil
}

// ConvertDocument reads filename's content from r with the parser its
// extension selects, then converts the resulting lines.
func (c *Converter) ConvertDocument(r io.Reader, filename string, popts parser.Options) (*Result, error) {
	p, err := parser.ForFile(filename, popts)
	if err != nil {
		return nil, err
	}
	doc, err := p.Parse(r, filename)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	return c.Convert(doc.Lines)
}

// ConvertBytes is ConvertDocument over an in-memory file.
func (c *Converter) ConvertBytes(data []byte, filename string, popts parser.Options) (*Result, error) {
	return c.ConvertDocument(bytes.NewReader(data), filename, popts)
}
