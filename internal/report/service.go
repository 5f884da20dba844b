package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"winereport/internal/csv"
	"winereport/internal/logging"
)

// ErrTooLarge is returned by BuildReport when the export exceeds the
// configured maximum file size.
var ErrTooLarge = errors.New("export exceeds the size limit")

// contextCheckInterval is how often (in records) the aggregation pass
// checks for context cancellation. Per-record checks would cost more than
// the fold itself.
const contextCheckInterval = 1000

// Report is the envelope around one finished summary: identity, provenance,
// and the summary itself. Reports are immutable once built.
type Report struct {
	ID          string    `json:"reportId"`
	FileName    string    `json:"fileName"`
	GeneratedAt time.Time `json:"generatedAt"`
	Rows        int       `json:"rows"`
	Summary     *Summary  `json:"summary"`
}

// Service builds reports from raw export streams and keeps a bounded
// in-memory history of recent ones. History is not persistence: it is lost
// on restart and exists so consumers can re-fetch a summary they just
// generated.
type Service struct {
	maxFileSize int64
	historySize int

	mu      sync.Mutex
	history []*Report
}

// NewService creates a Service. maxFileSize caps how many bytes BuildReport
// will read; historySize bounds the retained report list.
func NewService(maxFileSize int64, historySize int) *Service {
	return &Service{
		maxFileSize: maxFileSize,
		historySize: historySize,
	}
}

// BuildReport reads an entire export from r, runs the
// tokenize-aggregate-summarize pipeline, and records the result in history.
//
// The stream is wrapped for BOM skipping and UTF-8 sanitization before
// tokenization. size is the expected byte count when known (0 otherwise).
// Returns ErrNoData when the export has no data rows after the header and
// ErrTooLarge when it exceeds the configured size cap; any other error
// means the source could not be read.
func (s *Service) BuildReport(ctx context.Context, fileName string, r io.Reader, size int64) (*Report, error) {
	logger := logging.WithFields(ctx, "file", fileName)

	if s.maxFileSize > 0 {
		// Read one byte past the cap so oversize input is detectable
		// instead of silently truncated mid-row.
		r = io.LimitReader(r, s.maxFileSize+1)
	}
	wrapped := csv.WrapForStreaming(r, size)

	data, err := io.ReadAll(wrapped)
	if err != nil {
		return nil, fmt.Errorf("reading export %s: %w", fileName, err)
	}
	if s.maxFileSize > 0 && int64(len(data)) > s.maxFileSize {
		return nil, fmt.Errorf("export %s: %w", fileName, ErrTooLarge)
	}

	records := Records(csv.Tokenize(string(data)))

	acc := NewAccumulator()
	for i, rec := range records {
		if i%contextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("summarization cancelled at record %d: %w", i, err)
			}
		}
		acc.Add(rec)
	}

	summary, err := acc.Summarize()
	if err != nil {
		logger.Warn("export produced no summary", "bytes", wrapped.BytesRead)
		return nil, err
	}

	rep := &Report{
		ID:          uuid.NewString(),
		FileName:    fileName,
		GeneratedAt: time.Now().UTC(),
		Rows:        len(records),
		Summary:     summary,
	}
	s.remember(rep)

	logger.Info("report built",
		"report_id", rep.ID,
		"rows", rep.Rows,
		"orders", summary.Totals.TotalOrders,
		"net_sales", summary.Totals.NetSales,
	)
	return rep, nil
}

// remember prepends the report, evicting the oldest past historySize.
func (s *Service) remember(rep *Report) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append([]*Report{rep}, s.history...)
	if s.historySize > 0 && len(s.history) > s.historySize {
		s.history = s.history[:s.historySize]
	}
}

// Recent returns the retained reports, newest first.
func (s *Service) Recent() []*Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Report, len(s.history))
	copy(out, s.history)
	return out
}

// Get returns a retained report by ID.
func (s *Service) Get(id string) (*Report, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rep := range s.history {
		if rep.ID == id {
			return rep, true
		}
	}
	return nil, false
}
