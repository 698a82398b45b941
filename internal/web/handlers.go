package web

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/JonMunkholm/explore/internal/core"
	"github.com/JonMunkholm/explore/internal/dataset"
	"github.com/JonMunkholm/explore/internal/logging"
	"github.com/JonMunkholm/explore/internal/plot"
	"github.com/JonMunkholm/explore/internal/web/templates"
)

// multipartMemory is how much of an upload ParseMultipartForm keeps in
// memory before spilling to a temp file.
const multipartMemory = 32 << 20

// handleIndex renders the main page from the session's table and the form
// state in the query string.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)
	page := templates.Page{Site: s.site()}

	t, err := s.service.Table(id)
	switch {
	case err == nil:
		page.Explore = s.explore(id, r.URL.Query(), t)
	case errors.Is(err, core.ErrNoTable):
	default:
		s.respondError(w, r, err, statusFor(err))
		return
	}

	s.render(w, r, http.StatusOK, templates.Index(page))
}

// handleUpload replaces the session's table with the uploaded file. An
// empty submission clears the table.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)

	up, done, err := s.readUpload(w, r)
	defer done()
	if err != nil {
		_ = s.service.Clear(id)
		s.respondError(w, r, err, statusFor(err))
		return
	}

	if _, err := s.service.Ingest(r.Context(), id, up); err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleReset unloads the session's table.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if err := s.service.Clear(sessionID(r)); err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handlePlot renders the chart named by the kind, x and y query parameters.
// format selects png (default), svg or pdf.
func (s *Server) handlePlot(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	spec := plot.Spec{Kind: plot.Kind(q.Get("kind")), X: q.Get("x"), Y: q.Get("y")}

	format := q.Get("format")
	if format == "" {
		format = "png"
	}
	contentType, ok := plot.ContentType(format)
	if !ok {
		s.respondError(w, r, fmt.Errorf("%w: unsupported format %q", plot.ErrInvalidSpec, format), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := s.service.RenderPlot(sessionID(r), spec, &buf, format); err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "no-store")
	if _, err := w.Write(buf.Bytes()); err != nil {
		logging.FromContext(r.Context()).Warn("write plot", "error", err)
	}
}

type healthResponse struct {
	Status      string             `json:"status"`
	Maintenance bool               `json:"maintenance"`
	Sessions    int                `json:"sessions"`
	Ingest      core.LimiterStatus `json:"ingest"`
}

// handleHealth reports liveness. It stays available in maintenance mode.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:      "ok",
		Maintenance: s.cfg.Site.Maintenance,
		Sessions:    s.service.SessionCount(),
		Ingest:      s.service.Limiter().Status(),
	})
}

// readUpload reads the multipart "file" field. It returns a nil upload when
// no file was chosen. The returned func releases the form and must always
// be called.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (*dataset.Upload, func(), error) {
	done := func() {}
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Upload.MaxFileSize)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, done, nil
		}
		return nil, done, fmt.Errorf("read upload: %w", err)
	}
	done = func() { _ = r.MultipartForm.RemoveAll() }

	file, header, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, done, nil
	}
	if err != nil {
		return nil, done, fmt.Errorf("read upload: %w", err)
	}

	release := done
	done = func() {
		file.Close()
		release()
	}
	return &dataset.Upload{Filename: header.Filename, Data: file}, done, nil
}
