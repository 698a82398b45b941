// Package templates renders the explore pages as templ components. The
// _templ.go files are generated from the .templ sources.
package templates

//go:generate templ generate

// Site is the page chrome shared by every page.
type Site struct {
	Title   string
	Icon    string
	Caption string
}

// Alert is a user-facing error box.
type Alert struct {
	Message string
	Action  string
	Code    string
}

// Grid is a rendered data frame.
type Grid struct {
	Columns []string
	Index   []string
	Rows    [][]string
}

// ViewItem is one view checkbox with its output and code toggle.
type ViewItem struct {
	ID        string
	Label     string
	CodeLabel string
	Code      string
	Checked   bool
	ShowCode  bool

	// Output is the printed part of the result; Grid holds a frame if the
	// view produced one.
	Output string
	Grid   *Grid
	Error  *Alert
}

// PlotPanel is the state of the visualization form.
type PlotPanel struct {
	Kinds    []string
	Columns  []string
	Kind     string
	X        string
	Y        string
	NeedsY   bool
	ShowPlot bool
	ShowCode bool
	ImageURL string
	Code     string
	Error    *Alert
}

// Section is one top-level toggle of the explore form.
type Section struct {
	ID    string
	Label string
	Title string
	Open  bool
	Views []ViewItem
	Plot  *PlotPanel
}

// Explore is everything shown once a dataset is loaded.
type Explore struct {
	Filename  string
	Rows      int
	Cols      int
	Preview   Grid
	Truncated int
	Sections  []Section
}

// Page is the data for the main page.
type Page struct {
	Site    Site
	Alert   *Alert
	Explore *Explore
}
