// Package plot draws the two chart kinds of the visualization section and
// produces the seaborn snippet that reproduces each chart.
//
// Both outputs are derived from the same Spec: Render draws what Code prints,
// so the two can never disagree about the options passed to the plot call.
package plot

import (
	"errors"
	"fmt"

	"github.com/JonMunkholm/explore/internal/dataset"
	"github.com/JonMunkholm/explore/internal/snippet"
)

// Kind names a chart type as shown in the type dropdown.
type Kind string

const (
	Distribution Kind = "Distribution"
	Correlation  Kind = "Correlation"
)

// Kinds lists the chart types in dropdown order.
func Kinds() []Kind { return []Kind{Distribution, Correlation} }

var (
	// ErrInvalidSpec is wrapped by every Validate failure.
	ErrInvalidSpec = errors.New("invalid plot")
	// ErrNoData is returned when every row has a null in a plotted column.
	ErrNoData = errors.New("no values to plot")
)

// Spec selects a chart. Y is used only by Correlation.
type Spec struct {
	Kind Kind
	X    string
	Y    string
}

// Validate checks the spec against a table's columns.
func (s Spec) Validate(t *dataset.Table) error {
	switch s.Kind {
	case Distribution:
		if s.Y != "" {
			return fmt.Errorf("%w: %s takes no Y axis", ErrInvalidSpec, s.Kind)
		}
	case Correlation:
		if s.Y == "" {
			return fmt.Errorf("%w: %s needs a Y axis column", ErrInvalidSpec, s.Kind)
		}
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidSpec, s.Kind)
	}

	if s.X == "" {
		return fmt.Errorf("%w: choose a column for the X axis", ErrInvalidSpec)
	}
	for _, name := range s.columns() {
		if _, ok := t.Column(name); !ok {
			return fmt.Errorf("%w: no column named %q", ErrInvalidSpec, name)
		}
	}
	return nil
}

func (s Spec) columns() []string {
	if s.Kind == Correlation {
		return []string{s.X, s.Y}
	}
	return []string{s.X}
}

// Title returns the chart title.
func (s Spec) Title() string {
	if s.Kind == Correlation {
		return fmt.Sprintf("The %s of %s and %s", s.Kind, s.X, s.Y)
	}
	return fmt.Sprintf("The %s of %s", s.Kind, s.X)
}

// call describes the seaborn call for the spec. Render reads its options.
func (s Spec) call() snippet.Call {
	switch s.Kind {
	case Correlation:
		return snippet.Call{
			Func: "sns.scatterplot",
			Args: []snippet.Arg{
				{Name: "x", Value: snippet.Single(s.X)},
				{Name: "y", Value: snippet.Single(s.Y)},
				{Name: "data", Value: "data"},
				{Name: "ax", Value: "ax"},
			},
		}
	default:
		return snippet.Call{
			Func: "sns.histplot",
			Args: []snippet.Arg{
				{Name: "x", Value: snippet.Single(s.X)},
				{Name: "data", Value: "data"},
				{Name: "kde", Value: "True"},
				{Name: "ax", Value: "ax"},
			},
		}
	}
}

// Code returns the snippet that draws the same chart at the given size.
func (s Spec) Code(size Size) string {
	figure := snippet.Call{
		Func: "plt.subplots",
		Args: []snippet.Arg{
			{Value: "1"},
			{Name: "figsize", Value: "(" + snippet.Number(size.Width) + ", " + snippet.Number(size.Height) + ")"},
		},
	}
	return snippet.Lines(
		"fig, ax = "+figure.String(),
		"plt.title("+snippet.Double(s.Title())+")",
		s.call().String(),
		"plt.xticks(rotation='vertical')",
		"st.pyplot(fig)",
	)
}
