package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/explore/internal/plot"
)

func newPlotCommand(g *globals) *cobra.Command {
	var (
		kind     string
		x, y     string
		out      string
		showCode bool
	)

	cmd := &cobra.Command{
		Use:   "plot FILE",
		Short: "Render a distribution or correlation plot to a file",
		Example: `  explore plot sales.csv --kind Distribution --x price --out price.png
  explore plot sales.csv --kind Correlation --x price --y qty --out price_qty.svg --code`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := strings.TrimPrefix(strings.ToLower(filepath.Ext(out)), ".")
			if _, ok := plot.ContentType(format); !ok {
				return fmt.Errorf("--out %q: use a .png, .svg or .pdf file name", out)
			}

			cfg, err := g.loadTerminal(cmd)
			if err != nil {
				return err
			}
			s, err := openSession(cmd.Context(), cfg, args[0])
			if err != nil {
				return userError(err)
			}

			spec := plot.Spec{Kind: plot.Kind(kind), X: x, Y: y}
			code, err := s.svc.PlotCode(s.id, spec)
			if err != nil {
				return userError(err)
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := s.svc.RenderPlot(s.id, spec, f, format); err != nil {
				f.Close()
				os.Remove(out)
				return userError(err)
			}
			if err := f.Close(); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			heading(w, "%s written to %s", spec.Title(), out)
			if showCode {
				codeColor.Fprintln(w, code)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&kind, "kind", string(plot.Distribution), "plot type: Distribution or Correlation")
	f.StringVar(&x, "x", "", "column on the X axis")
	f.StringVar(&y, "y", "", "column on the Y axis (Correlation only)")
	f.StringVarP(&out, "out", "o", "", "output file (.png, .svg or .pdf)")
	f.BoolVar(&showCode, "code", false, "also print the seaborn snippet")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
