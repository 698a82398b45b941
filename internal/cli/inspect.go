package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/explore/internal/views"
)

func newInspectCommand(g *globals) *cobra.Command {
	var (
		ids      []string
		showCode bool
		all      bool
	)

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print the preview and selected views of a dataset",
		Example: `  explore inspect sales.csv
  explore inspect sales.xlsx --view rows_columns --view describe:price --code
  explore inspect sales.xls --all`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadTerminal(cmd)
			if err != nil {
				return err
			}
			s, err := openSession(cmd.Context(), cfg, args[0])
			if err != nil {
				return userError(err)
			}

			out := cmd.OutOrStdout()
			rows, cols := s.table.Shape()
			heading(out, "%s: %d rows x %d columns", s.table.Name(), rows, cols)
			fmt.Fprintln(out, "Preview:")
			fmt.Fprintln(out, views.Preview(s.table, cfg.View.PreviewMaxRows).Text())

			if all {
				ids = ids[:0]
				for _, v := range views.Catalog(s.table) {
					ids = append(ids, v.ID)
				}
			}
			for _, id := range ids {
				v, res, err := s.svc.RunView(s.id, id)
				if err != nil {
					return userError(err)
				}
				printView(out, v, res, showCode)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&ids, "view", nil, "view id to print (repeatable, see \"explore views\")")
	cmd.Flags().BoolVar(&showCode, "code", false, "also print the pandas snippet of each view")
	cmd.Flags().BoolVar(&all, "all", false, "print every view")
	return cmd
}

func printView(w io.Writer, v views.View, res views.Result, showCode bool) {
	fmt.Fprintln(w)
	labelColor.Fprintln(w, v.Label)
	fmt.Fprintln(w, res.Text())
	if showCode {
		codeColor.Fprintln(w, v.Code)
	}
}

func newViewsCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "views FILE",
		Short: "List the views available for a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadTerminal(cmd)
			if err != nil {
				return err
			}
			s, err := openSession(cmd.Context(), cfg, args[0])
			if err != nil {
				return userError(err)
			}

			all, err := s.svc.Views(s.id)
			if err != nil {
				return userError(err)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSECTION\tLABEL")
			for _, v := range all {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", v.ID, v.Section, v.Label)
			}
			return tw.Flush()
		},
	}
}
