package plot

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/JonMunkholm/explore/internal/dataset"
)

func testTable(t *testing.T) *dataset.Table {
	t.Helper()
	table, err := dataset.NewTable("cars.csv",
		[]string{"price", "make", "doors", "used"},
		[][]string{
			{"1200.5", "ford", "4", "True"},
			{"900", "fiat", "2", "False"},
			{"", "ford", "4", "True"},
			{"4100", "audi", "", "False"},
			{"2500", "fiat", "5", "True"},
		})
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	return table
}

func TestSpec_Validate(t *testing.T) {
	table := testTable(t)
	tests := []struct {
		name    string
		spec    Spec
		wantErr bool
	}{
		{"distribution", Spec{Kind: Distribution, X: "price"}, false},
		{"correlation", Spec{Kind: Correlation, X: "price", Y: "doors"}, false},
		{"unknown kind", Spec{Kind: "Pie", X: "price"}, true},
		{"missing x", Spec{Kind: Distribution}, true},
		{"unknown column", Spec{Kind: Distribution, X: "colour"}, true},
		{"correlation without y", Spec{Kind: Correlation, X: "price"}, true},
		{"distribution with y", Spec{Kind: Distribution, X: "price", Y: "doors"}, true},
		{"unknown y column", Spec{Kind: Correlation, X: "price", Y: "colour"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate(table)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidSpec) {
				t.Errorf("Validate() error %v does not wrap ErrInvalidSpec", err)
			}
		})
	}
}

func TestSpec_Title(t *testing.T) {
	if got := (Spec{Kind: Distribution, X: "price"}).Title(); got != "The Distribution of price" {
		t.Errorf("Title() = %q", got)
	}
	if got := (Spec{Kind: Correlation, X: "price", Y: "doors"}).Title(); got != "The Correlation of price and doors" {
		t.Errorf("Title() = %q", got)
	}
}

func TestSpec_Code(t *testing.T) {
	dist := Spec{Kind: Distribution, X: "price"}.Code(DefaultSize)
	wantDist := "fig, ax = plt.subplots(1, figsize=(20, 8))\n" +
		"plt.title(\"The Distribution of price\")\n" +
		"sns.histplot(x='price', data=data, kde=True, ax=ax)\n" +
		"plt.xticks(rotation='vertical')\n" +
		"st.pyplot(fig)"
	if dist != wantDist {
		t.Errorf("distribution Code() =\n%s\nwant\n%s", dist, wantDist)
	}

	corr := Spec{Kind: Correlation, X: "price", Y: "doors"}.Code(Size{Width: 12.5, Height: 6})
	if strings.Contains(corr, "kde") {
		t.Errorf("scatter snippet passes kde:\n%s", corr)
	}
	if !strings.Contains(corr, "sns.scatterplot(x='price', y='doors', data=data, ax=ax)") {
		t.Errorf("scatter snippet missing call:\n%s", corr)
	}
	if !strings.Contains(corr, "figsize=(12.5, 6)") {
		t.Errorf("scatter snippet missing size:\n%s", corr)
	}
}

func TestSpec_CodeQuotesColumns(t *testing.T) {
	code := Spec{Kind: Distribution, X: "owner's"}.Code(DefaultSize)
	if !strings.Contains(code, `x='owner\'s'`) {
		t.Errorf("column not escaped:\n%s", code)
	}
}

func TestRender(t *testing.T) {
	table := testTable(t)
	specs := []Spec{
		{Kind: Distribution, X: "price"},
		{Kind: Distribution, X: "make"},
		{Kind: Distribution, X: "used"},
		{Kind: Correlation, X: "price", Y: "doors"},
		{Kind: Correlation, X: "make", Y: "price"},
	}
	for _, spec := range specs {
		t.Run(spec.Title(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Render(table, spec, &buf, "png", Size{Width: 4, Height: 3}); err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
				t.Error("output is not a PNG")
			}
		})
	}
}

func TestRender_SVG(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(testTable(t), Spec{Kind: Distribution, X: "doors"}, &buf, "svg", DefaultSize); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Error("output is not an SVG document")
	}
}

func TestRender_Errors(t *testing.T) {
	table := testTable(t)
	var buf bytes.Buffer

	if err := Render(table, Spec{Kind: Distribution, X: "price"}, &buf, "bmp", DefaultSize); err == nil {
		t.Error("expected error for unsupported format")
	}
	if err := Render(table, Spec{Kind: "Pie", X: "price"}, &buf, "png", DefaultSize); !errors.Is(err, ErrInvalidSpec) {
		t.Errorf("Render() error = %v, want ErrInvalidSpec", err)
	}

	empty, err := dataset.NewTable("x.csv", []string{"a"}, [][]string{{""}, {"NA"}})
	if err != nil {
		t.Fatal(err)
	}
	if err := Render(empty, Spec{Kind: Distribution, X: "a"}, &buf, "png", DefaultSize); !errors.Is(err, ErrNoData) {
		t.Errorf("Render() error = %v, want ErrNoData", err)
	}
}

func TestRender_Outlier(t *testing.T) {
	records := make([][]string, 0, 1001)
	for i := 0; i < 1000; i++ {
		records = append(records, []string{strconv.Itoa(i % 100)})
	}
	records = append(records, []string{"1e12"})
	table, err := dataset.NewTable("outlier.csv", []string{"v"}, records)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Render(table, Spec{Kind: Distribution, X: "v"}, &buf, "png", Size{Width: 4, Height: 3}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}

func TestRender_NotFinite(t *testing.T) {
	table, err := dataset.NewTable("inf.csv", []string{"v"}, [][]string{{"1"}, {"inf"}, {"3"}})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	err = Render(table, Spec{Kind: Distribution, X: "v"}, &buf, "png", DefaultSize)
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("Render() error = %v, want ErrNoData", err)
	}
	if !strings.Contains(err.Error(), "[1.0, inf] is not finite") {
		t.Errorf("error = %q", err)
	}
}

func TestContentType(t *testing.T) {
	if ct, ok := ContentType("png"); !ok || ct != "image/png" {
		t.Errorf("ContentType(png) = %q, %v", ct, ok)
	}
	if _, ok := ContentType("gif"); ok {
		t.Error("ContentType(gif) reported ok")
	}
}
