package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/JonMunkholm/explore/internal/dataset"
	"github.com/JonMunkholm/explore/internal/logging"
	"github.com/JonMunkholm/explore/internal/plot"
	"github.com/JonMunkholm/explore/internal/views"
)

// ErrViewNotFound is returned when a view id is not in the table's catalogue.
var ErrViewNotFound = errors.New("view not found")

// Options configures a Service. Zero values select the defaults.
type Options struct {
	MaxConcurrentIngests int
	MaxIngestWait        time.Duration
	SessionTTL           time.Duration
	MaxSessions          int
	PlotSize             plot.Size
}

// Service provides the operations behind the explore UI. It is safe for
// concurrent use.
type Service struct {
	sessions *sessionStore
	limiter  *IngestLimiter
	plotSize plot.Size
}

// NewService creates a Service.
func NewService(opts Options) *Service {
	size := opts.PlotSize
	if size.Width <= 0 || size.Height <= 0 {
		size = plot.DefaultSize
	}
	return &Service{
		sessions: newSessionStore(opts.SessionTTL, opts.MaxSessions),
		limiter:  NewIngestLimiter(opts.MaxConcurrentIngests, opts.MaxIngestWait),
		plotSize: size,
	}
}

// NewSession starts an empty session and returns its id.
func (s *Service) NewSession() string {
	return s.sessions.create()
}

// EnsureSession returns id if it names a live session, or a new session id.
func (s *Service) EnsureSession(id string) (string, bool) {
	if id != "" {
		if _, err := s.sessions.get(id); err == nil {
			return id, false
		}
	}
	return s.sessions.create(), true
}

// EndSession drops a session and its table.
func (s *Service) EndSession(id string) {
	s.sessions.remove(id)
}

// SessionCount returns the number of live sessions.
func (s *Service) SessionCount() int {
	return s.sessions.count()
}

// Limiter exposes the ingestion limiter for health reporting and shutdown.
func (s *Service) Limiter() *IngestLimiter {
	return s.limiter
}

// PlotSize returns the figure size used by RenderPlot and PlotCode.
func (s *Service) PlotSize() plot.Size {
	return s.plotSize
}

// Ingest parses up and makes the result the session's table.
// A nil upload clears the table and returns (nil, nil). Any failure also
// clears the table so a previous dataset never stays on screen next to an
// error.
func (s *Service) Ingest(ctx context.Context, sessionID string, up *dataset.Upload) (*dataset.Table, error) {
	if _, err := s.sessions.get(sessionID); err != nil {
		return nil, err
	}

	if up == nil {
		return nil, s.sessions.setTable(sessionID, nil)
	}

	if err := s.limiter.Acquire(ctx); err != nil {
		_ = s.sessions.setTable(sessionID, nil)
		return nil, fmt.Errorf("ingest %s: %w", up.Filename, err)
	}
	start := time.Now()
	table, err := dataset.Ingest(up)
	s.limiter.Release()

	if err != nil {
		_ = s.sessions.setTable(sessionID, nil)
		return nil, fmt.Errorf("ingest %s: %w", up.Filename, err)
	}

	if err := s.sessions.setTable(sessionID, table); err != nil {
		return nil, err
	}

	rows, cols := table.Shape()
	logging.WithFields(ctx, "session_id", sessionID).Info("dataset loaded",
		"file", up.Filename,
		"rows", rows,
		"columns", cols,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return table, nil
}

// Table returns the session's loaded table.
func (s *Service) Table(sessionID string) (*dataset.Table, error) {
	return s.sessions.table(sessionID)
}

// Clear unloads the session's table.
func (s *Service) Clear(sessionID string) error {
	return s.sessions.setTable(sessionID, nil)
}

// Views lists the view catalogue for the session's table.
func (s *Service) Views(sessionID string) ([]views.View, error) {
	t, err := s.sessions.table(sessionID)
	if err != nil {
		return nil, err
	}
	return views.Catalog(t), nil
}

// RunView computes one view over the session's table.
func (s *Service) RunView(sessionID, viewID string) (views.View, views.Result, error) {
	t, err := s.sessions.table(sessionID)
	if err != nil {
		return views.View{}, views.Result{}, err
	}
	v, ok := views.Lookup(t, viewID)
	if !ok {
		return views.View{}, views.Result{}, fmt.Errorf("%w: %s", ErrViewNotFound, viewID)
	}
	res, err := v.Run(t)
	if err != nil {
		return v, views.Result{}, err
	}
	return v, res, nil
}

// RenderPlot draws spec over the session's table into w.
func (s *Service) RenderPlot(sessionID string, spec plot.Spec, w io.Writer, format string) error {
	t, err := s.sessions.table(sessionID)
	if err != nil {
		return err
	}
	return plot.Render(t, spec, w, format, s.plotSize)
}

// PlotCode validates spec against the session's table and returns its
// snippet.
func (s *Service) PlotCode(sessionID string, spec plot.Spec) (string, error) {
	t, err := s.sessions.table(sessionID)
	if err != nil {
		return "", err
	}
	if err := spec.Validate(t); err != nil {
		return "", err
	}
	return spec.Code(s.plotSize), nil
}
