package web

import (
	"net/url"

	"github.com/JonMunkholm/explore/internal/core"
	"github.com/JonMunkholm/explore/internal/dataset"
	"github.com/JonMunkholm/explore/internal/plot"
	"github.com/JonMunkholm/explore/internal/views"
	"github.com/JonMunkholm/explore/internal/web/templates"
)

// exploreState is the explore form as submitted in the query string.
type exploreState struct {
	sections map[views.Section]bool
	views    map[string]bool
	code     map[string]bool
	plot     plot.Spec
	showPlot bool
	showCode bool
}

func parseExploreState(q url.Values) exploreState {
	return exploreState{
		sections: sections(q["section"]),
		views:    set(q["view"]),
		code:     set(q["code"]),
		plot: plot.Spec{
			Kind: plot.Kind(q.Get("plot_kind")),
			X:    q.Get("plot_x"),
			Y:    q.Get("plot_y"),
		},
		showPlot: q.Get("plot") == "1",
		showCode: q.Get("plot_code") == "1",
	}
}

// sections keeps the known section ids of values.
func sections(values []string) map[views.Section]bool {
	m := make(map[views.Section]bool, len(values))
	for _, v := range values {
		if s, ok := views.ParseSection(v); ok {
			m[s] = true
		}
	}
	return m
}

func set(values []string) map[string]bool {
	m := make(map[string]bool, len(values))
	for _, v := range values {
		m[v] = true
	}
	return m
}

// explore recomputes everything shown below the upload form from t.
func (s *Server) explore(id string, q url.Values, t *dataset.Table) *templates.Explore {
	st := parseExploreState(q)
	rows, cols := t.Shape()

	preview := views.Preview(t, s.cfg.View.PreviewMaxRows)
	e := &templates.Explore{
		Filename:  t.Name(),
		Rows:      rows,
		Cols:      cols,
		Preview:   toGrid(preview),
		Truncated: rows - len(preview.Index),
	}

	catalog := views.Catalog(t)
	for _, info := range views.Sections() {
		sec := templates.Section{
			ID:    string(info.ID),
			Label: info.Label,
			Title: info.Title,
			Open:  st.sections[info.ID],
		}
		if sec.Open {
			for _, v := range views.InSection(catalog, info.ID) {
				sec.Views = append(sec.Views, viewItem(t, v, st))
			}
			if info.ID == views.Visualization {
				sec.Plot = s.plotPanel(id, t, st)
			}
		}
		e.Sections = append(e.Sections, sec)
	}
	return e
}

func viewItem(t *dataset.Table, v views.View, st exploreState) templates.ViewItem {
	item := templates.ViewItem{
		ID:        v.ID,
		Label:     v.Label,
		CodeLabel: v.CodeLabel,
		Code:      v.Code,
		Checked:   st.views[v.ID],
		ShowCode:  st.code[v.ID],
	}
	if !item.Checked {
		return item
	}

	res, err := v.Run(t)
	if err != nil {
		item.Error = toAlert(core.MapError(err))
		return item
	}
	if res.Frame != nil {
		g := toGrid(res.Frame)
		item.Grid = &g
		res.Frame = nil
	}
	item.Output = res.Text()
	return item
}

// plotPanel fills the visualization form. Unset or unknown selections fall
// back to the first option, as a select box would.
func (s *Server) plotPanel(id string, t *dataset.Table, st exploreState) *templates.PlotPanel {
	columns := t.ColumnNames()
	spec := st.plot
	if spec.Kind != plot.Correlation {
		spec.Kind = plot.Distribution
	}
	spec.X = pick(columns, spec.X)
	if spec.Kind == plot.Correlation {
		spec.Y = pick(columns, spec.Y)
	} else {
		spec.Y = ""
	}

	p := &templates.PlotPanel{
		Columns:  columns,
		Kind:     string(spec.Kind),
		X:        spec.X,
		Y:        spec.Y,
		NeedsY:   spec.Kind == plot.Correlation,
		ShowPlot: st.showPlot,
		ShowCode: st.showCode,
		ImageURL: "/plot?" + plotQuery(spec).Encode(),
	}
	for _, k := range plot.Kinds() {
		p.Kinds = append(p.Kinds, string(k))
	}

	if p.ShowPlot || p.ShowCode {
		code, err := s.service.PlotCode(id, spec)
		if err != nil {
			p.Error = toAlert(core.MapError(err))
		}
		p.Code = code
	}
	return p
}

func pick(options []string, selected string) string {
	for _, o := range options {
		if o == selected {
			return o
		}
	}
	if len(options) > 0 {
		return options[0]
	}
	return ""
}

func plotQuery(spec plot.Spec) url.Values {
	q := url.Values{}
	q.Set("kind", string(spec.Kind))
	q.Set("x", spec.X)
	if spec.Kind == plot.Correlation {
		q.Set("y", spec.Y)
	}
	return q
}

func toGrid(f *views.Frame) templates.Grid {
	return templates.Grid{Columns: f.Columns, Index: f.Index, Rows: f.Rows}
}
