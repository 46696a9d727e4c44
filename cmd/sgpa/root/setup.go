package root

import (
	"github.com/spf13/cobra"

	"github.com/shree1767/SRM-GPA-Calculator/internal/config"
	"github.com/shree1767/SRM-GPA-Calculator/internal/engine"
	"github.com/shree1767/SRM-GPA-Calculator/internal/logging"
)

func loadConfig(cmd *cobra.Command, opts *globalOptions) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.Load(opts.configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("dark") {
		cfg.Theme = config.ThemeLight
		if opts.dark {
			cfg.Theme = config.ThemeDark
		}
	}
	if flags.Changed("log-file") {
		cfg.LogFile = opts.logFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openForm builds a Form from config and flags. A nil rows starts the form
// with its usual single empty row. cleanup closes the log file.
func openForm(cmd *cobra.Command, opts *globalOptions, rows []engine.Subject) (*engine.Form, func(), error) {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return nil, nil, err
	}
	log, cleanup, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	log.Debug().Str("command", cmd.Name()).Str("theme", cfg.Theme).Msg("starting")

	formOpts := []engine.FormOption{engine.WithLogger(log), engine.WithDark(cfg.Dark())}
	if rows != nil {
		formOpts = append(formOpts, engine.WithSubjects(rows...))
	}
	return engine.NewForm(formOpts...), cleanup, nil
}
