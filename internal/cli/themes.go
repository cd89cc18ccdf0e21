package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/saulo-duarte/persona-quiz/internal/theme"
)

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the built-in quiz themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := theme.NewRegistry()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tEXTRA SECTIONS")
			for _, id := range registry.IDs() {
				t, _ := registry.Get(id)
				fmt.Fprintf(w, "%s\t%s\t%d\n", id, t.Title, len(t.ExtraSections))
			}
			return w.Flush()
		},
	}
}
