// Package export writes submittal rows as TSV text or an XLSX workbook.
package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/dgallion1/submittals/internal/submittal"
)

// Format selects the output encoding.
type Format string

const (
	FormatTSV  Format = "tsv"
	FormatXLSX Format = "xlsx"
)

// SheetName is the worksheet XLSX exports write to.
const SheetName = "Submittals"

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatTSV:
		return FormatTSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want tsv or xlsx)", s)
	}
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/tab-separated-values; charset=utf-8"
}

// Write encodes rows to w in format f.
func Write(w io.Writer, f Format, rows []submittal.Row) error {
	switch f {
	case FormatXLSX:
		return WriteXLSX(w, rows)
	default:
		return WriteTSV(w, rows)
	}
}

// WriteTSV writes one tab-separated line per row, with no header.
func WriteTSV(w io.Writer, rows []submittal.Row) error {
	bw := bufio.NewWriter(w)
	for _, r := range rows {
		if _, err := bw.WriteString(r.String() + "\n"); err != nil {
			return fmt.Errorf("write tsv: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write tsv: %w", err)
	}
	return nil
}

// WriteXLSX writes a workbook with a header row followed by rows.
func WriteXLSX(w io.Writer, rows []submittal.Row) error {
	f := excelize.NewFile()
	defer f.Close()

	// Rename the default sheet rather than adding a second one.
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("xlsx sheet: %w", err)
	}

	header := make([]any, len(submittal.Header))
	for i, h := range submittal.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("xlsx header: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("xlsx row %d: %w", i+1, err)
		}
		fields := r.Fields()
		values := make([]any, len(fields))
		for j, v := range fields {
			values[j] = v
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("xlsx row %d: %w", i+1, err)
		}
	}

	_ = f.SetColWidth(SheetName, "A", "B", 12) // section, subsection
	_ = f.SetColWidth(SheetName, "C", "C", 10) // reserved
	_ = f.SetColWidth(SheetName, "D", "D", 60) // description
	_ = f.SetColWidth(SheetName, "E", "G", 14) // action, status, jurisdiction

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}
