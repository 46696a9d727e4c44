package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shree1767/SRM-GPA-Calculator/internal/ui"
)

const Version = "0.1.0"

type globalOptions struct {
	configPath string
	dark       bool
	logFile    string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "sgpa",
		Short:         "SGPA calculator (credit-weighted grade point average)",
		Long:          "sgpa computes a semester grade point average from (grade, credit) pairs, interactively or from arguments.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoard(cmd, opts)
		},
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Config file (default ~/.sgpa.yaml)")
	flags.BoolVar(&opts.dark, "dark", false, "Start in the dark theme")
	flags.StringVar(&opts.logFile, "log-file", "", "Append logs to this file")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug|info|warn|error)")

	cmd.AddCommand(
		newBoardCmd(opts),
		newCalcCmd(opts),
		newGradesCmd(),
	)
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
