package root

import (
	"github.com/spf13/cobra"

	"github.com/shree1767/SRM-GPA-Calculator/internal/tui"
)

func newBoardCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive form (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoard(cmd, opts)
		},
	}

	return cmd
}

func runBoard(cmd *cobra.Command, opts *globalOptions) error {
	form, cleanup, err := openForm(cmd, opts, nil)
	if err != nil {
		return err
	}
	defer cleanup()

	return tui.RunBoard(cmd.Context(), form, cmd.OutOrStdout())
}
