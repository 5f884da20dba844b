package web

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"winereport/internal/logging"
	"winereport/internal/report"
)

// sampleExport is the bundled demo export, summarized by the sample route
// so consumers have a working dashboard before their first upload.
//
//go:embed sample.csv
var sampleExport []byte

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// handleCreateReport summarizes an uploaded export and returns the report
// envelope. The file arrives as multipart form field "file"; a raw
// text/csv body is accepted as a fallback.
func (s *Server) handleCreateReport(w http.ResponseWriter, r *http.Request) {
	maxSize := s.cfg.Upload.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	var (
		rep *report.Report
		err error
	)

	if perr := r.ParseMultipartForm(maxSize); perr == nil {
		file, header, ferr := r.FormFile("file")
		if ferr != nil {
			writeError(w, http.StatusBadRequest, "no file provided")
			return
		}
		defer file.Close()
		rep, err = s.service.BuildReport(r.Context(), header.Filename, file, header.Size)
	} else {
		// Raw body fallback for curl-style clients
		rep, err = s.service.BuildReport(r.Context(), "upload.csv", r.Body, r.ContentLength)
	}

	if err != nil {
		s.respondReportError(w, r, err)
		return
	}

	writeJSON(w, rep)
}

// handleSampleReport summarizes the embedded sample export.
func (s *Server) handleSampleReport(w http.ResponseWriter, r *http.Request) {
	rep, err := s.service.BuildReport(r.Context(), "sample.csv",
		bytes.NewReader(sampleExport), int64(len(sampleExport)))
	if err != nil {
		s.respondReportError(w, r, err)
		return
	}

	writeJSON(w, rep)
}

// handleListReports returns the in-memory report history, newest first.
func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.service.Recent())
}

// handleGetReport returns one retained report by ID.
func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	reportID := chi.URLParam(r, "reportID")
	if reportID == "" {
		writeError(w, http.StatusBadRequest, "missing report ID")
		return
	}

	rep, ok := s.service.Get(reportID)
	if !ok {
		writeError(w, http.StatusNotFound, "report not found")
		return
	}

	writeJSON(w, rep)
}

// respondReportError maps pipeline errors onto HTTP statuses. An empty
// export is a distinct terminal state (422), not a failure; anything else
// means the source could not be read.
func (s *Server) respondReportError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, report.ErrNoData) {
		writeError(w, http.StatusUnprocessableEntity, report.ErrNoData.Error())
		return
	}

	logging.FromContext(r.Context()).Error("report failed",
		"path", r.URL.Path,
		"error", err.Error(),
	)
	writeError(w, http.StatusBadRequest, "could not read the export")
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"error":%q}`, message)
}

// writeJSON encodes v as JSON and writes it to w.
// Encoding errors are logged since headers are already sent.
func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode error", "error", err)
	}
}
