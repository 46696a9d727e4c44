package root

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shree1767/SRM-GPA-Calculator/internal/engine"
	"github.com/shree1767/SRM-GPA-Calculator/internal/ui"
)

func newGradesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grades",
		Short: "Show the grade point table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconBook, "Grade points"))
			for _, g := range engine.Grades() {
				p, _ := g.Point()
				fmt.Fprintf(out, "- %s%s %d\n", ui.Key.Render(string(g)), strings.Repeat(" ", 2-len(g)), p)
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.LabelValue("Credits", fmt.Sprintf("%d-%d", engine.MinCredit, engine.MaxCredit)))
			return nil
		},
	}

	return cmd
}
