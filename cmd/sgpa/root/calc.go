package root

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shree1767/SRM-GPA-Calculator/internal/engine"
	"github.com/shree1767/SRM-GPA-Calculator/internal/ui"
)

func newCalcCmd(opts *globalOptions) *cobra.Command {
	var verbose bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "calc [GRADE:CREDIT ...]",
		Short: "Calculate SGPA from grade:credit pairs",
		Long: `Calculate SGPA from grade:credit pairs, one argument per subject.

Grades: O A+ A B+ B C P F. Credits: whole numbers, normally 1-7.
Pairs missing a valid grade or credit are left out of the average.

Example:
  sgpa calc O:4 A:3 B+:2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([]engine.Subject, 0, len(args))
			for _, a := range args {
				rows = append(rows, engine.ParseSubject(a))
			}
			form, cleanup, err := openForm(cmd, opts, rows)
			if err != nil {
				return err
			}
			defer cleanup()

			res := form.Calculate()
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				return enc.Encode(struct {
					SGPA engine.Result `json:"sgpa"`
				}{res})
			}

			if verbose {
				t := engine.TallyOf(form.Subjects())
				for _, r := range t.Rows {
					if !r.Included {
						fmt.Fprintf(out, "%s %q:%q %s\n", ui.Muted.Render(fmt.Sprintf("#%d", r.Index+1)), r.Subject.Grade, r.Subject.Credit, ui.Muted.Render("-"))
						continue
					}
					fmt.Fprintf(out, "%s %-2s × %d = %d\n", ui.Key.Render(fmt.Sprintf("#%d", r.Index+1)), r.Subject.Grade, r.Credit, r.Point*r.Credit)
				}
				fmt.Fprintln(out, ui.LabelValue("Credits", t.TotalCredits))
				fmt.Fprintln(out, ui.LabelValue("Points", t.TotalPoints))
			}
			fmt.Fprintln(out, ui.ResultText(res.Display(), res.Valid()))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show each subject's contribution")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")

	return cmd
}
