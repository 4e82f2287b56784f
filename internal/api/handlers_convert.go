package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dgallion1/submittals/internal/export"
	"github.com/dgallion1/submittals/internal/outline"
	"github.com/dgallion1/submittals/internal/parser"
	"github.com/dgallion1/submittals/internal/pipeline"
)

// handleConvert turns an uploaded report into a TSV or XLSX submittal log.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	format, err := export.ParseFormat(r.FormValue("format"))
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !parser.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	conv := s.converter
	if j := strings.TrimSpace(r.FormValue("jurisdiction")); j != "" {
		conv = pipeline.NewConverter(pipeline.Options{
			Boilerplate:  s.cfg.Boilerplate,
			Jurisdiction: j,
		}, s.log)
	}

	start := time.Now()
	res, err := conv.ConvertBytes(data, filename, parser.Options{
		Encoding:          s.cfg.Encoding,
		FallbackPdftotext: s.cfg.PDFFallbackPdftotext,
	})
	elapsed := time.Since(start).Milliseconds()
	if err != nil {
		s.stats.RecordFailure(elapsed)
		var fe *outline.FormatError
		if errors.As(err, &fe) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]any{
				"error": err.Error(),
				"line":  fe.Line,
				"text":  fe.Text,
			})
			return
		}
		s.log.Error("conversion failed", "filename", filename, "error", err)
		jsonError(w, "conversion failed: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}
	s.stats.Record(elapsed, res.Stats)

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("X-Submittal-Rows", strconv.Itoa(len(res.Rows)))
	if len(res.Stats.Unmapped) > 0 {
		w.Header().Set("X-Submittal-Unmapped", strconv.Itoa(len(res.Stats.Unmapped)))
	}
	if format == export.FormatXLSX {
		name := strings.TrimSuffix(filename, filepath.Ext(filename)) + ".xlsx"
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	}
	if err := export.Write(w, format, res.Rows); err != nil {
		s.log.Error("write response", "filename", filename, "error", err)
	}
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	// Remove any path separators that might have survived.
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
