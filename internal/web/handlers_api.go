package web

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/JonMunkholm/explore/internal/dataset"
	"github.com/JonMunkholm/explore/internal/plot"
	"github.com/JonMunkholm/explore/internal/views"
)

type columnInfo struct {
	Name    string `json:"name"`
	Dtype   string `json:"dtype"`
	NonNull int    `json:"non_null"`
	Null    int    `json:"null"`
}

type tableResponse struct {
	Loaded  bool         `json:"loaded"`
	Name    string       `json:"name,omitempty"`
	Rows    int          `json:"rows"`
	Columns int          `json:"columns"`
	Schema  []columnInfo `json:"schema,omitempty"`
	Preview *views.Frame `json:"preview,omitempty"`
}

func newTableResponse(t *dataset.Table, previewRows int) tableResponse {
	if t == nil {
		return tableResponse{}
	}
	rows, cols := t.Shape()
	resp := tableResponse{
		Loaded:  true,
		Name:    t.Name(),
		Rows:    rows,
		Columns: cols,
		Preview: views.Preview(t, previewRows),
	}
	for _, c := range t.Columns() {
		resp.Schema = append(resp.Schema, columnInfo{
			Name:    c.Name(),
			Dtype:   c.Kind().Dtype(),
			NonNull: c.Count(),
			Null:    c.NullCount(),
		})
	}
	return resp
}

type viewResponse struct {
	ID        string `json:"id"`
	Section   string `json:"section"`
	Label     string `json:"label"`
	Column    string `json:"column,omitempty"`
	CodeLabel string `json:"code_label"`
	Code      string `json:"code"`
}

func newViewResponse(v views.View) viewResponse {
	resp := viewResponse{
		ID:        v.ID,
		Section:   string(v.Section),
		Label:     v.Label,
		CodeLabel: v.CodeLabel,
		Code:      v.Code,
	}
	resp.Column, _ = views.ColumnOf(v.ID)
	return resp
}

type viewResultResponse struct {
	viewResponse
	Text   string       `json:"text"`
	Result views.Result `json:"result"`
}

type plotCodeResponse struct {
	Kind  string `json:"kind"`
	Title string `json:"title"`
	Code  string `json:"code"`
}

// handleAPITable describes the loaded table.
func (s *Server) handleAPITable(w http.ResponseWriter, r *http.Request) {
	t, err := s.service.Table(sessionID(r))
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	writeJSON(w, http.StatusOK, newTableResponse(t, s.cfg.View.PreviewMaxRows))
}

// handleAPIViews lists the view catalogue for the loaded table.
func (s *Server) handleAPIViews(w http.ResponseWriter, r *http.Request) {
	all, err := s.service.Views(sessionID(r))
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	out := make([]viewResponse, 0, len(all))
	for _, v := range all {
		out = append(out, newViewResponse(v))
	}
	writeJSON(w, http.StatusOK, out)
}

// handleAPIView runs one view. Column names may contain any character, so
// the id is taken from the escaped path when there is one.
func (s *Server) handleAPIView(w http.ResponseWriter, r *http.Request) {
	viewID := chi.URLParam(r, "viewID")
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(viewID); err == nil {
			viewID = unescaped
		}
	}

	v, res, err := s.service.RunView(sessionID(r), viewID)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	writeJSON(w, http.StatusOK, viewResultResponse{
		viewResponse: newViewResponse(v),
		Text:         res.Text(),
		Result:       res,
	})
}

// handleAPIPlotCode returns the snippet for the kind, x and y query
// parameters.
func (s *Server) handleAPIPlotCode(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	spec := plot.Spec{Kind: plot.Kind(q.Get("kind")), X: q.Get("x"), Y: q.Get("y")}

	code, err := s.service.PlotCode(sessionID(r), spec)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	writeJSON(w, http.StatusOK, plotCodeResponse{Kind: string(spec.Kind), Title: spec.Title(), Code: code})
}

// handleAPIUpload is POST /upload for API clients: the table summary on
// success, loaded=false when no file was sent.
func (s *Server) handleAPIUpload(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)

	up, done, err := s.readUpload(w, r)
	defer done()
	if err != nil {
		_ = s.service.Clear(id)
		s.respondError(w, r, err, statusFor(err))
		return
	}

	t, err := s.service.Ingest(r.Context(), id, up)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	writeJSON(w, http.StatusOK, newTableResponse(t, s.cfg.View.PreviewMaxRows))
}
