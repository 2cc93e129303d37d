package commands

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	outDir  string
	strict  bool
	format  bool
	verbose bool

	cfg    Config
	logger zerolog.Logger
)

// Execute runs the starkgen CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "starkgen",
		Short: "Expand contract modules into entry point plumbing",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default starkgen.toml if present)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(expandCmd(), checkCmd())
	return root
}

// setup resolves the configuration the subcommand will run with:
// defaults, then the config file, then any flags the user set.
func setup(cmd *cobra.Command) error {
	path := cfgFile
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	loaded, err := loadConfig(path, explicit)
	if err != nil {
		return err
	}
	cfg = loaded

	flags := cmd.Flags()
	if flags.Changed("out") {
		cfg.OutDir = outDir
	}
	if flags.Changed("strict") {
		cfg.Strict = strict
	}
	if flags.Changed("format") {
		cfg.Format = format
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}

	logger = newLogger(cfg.Verbose)
	return nil
}

// newLogger builds the operational logger. Diagnostics print
// separately as plain lines; the logger carries run events.
func newLogger(verbose bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(output).Level(level).With().Timestamp().Str("app", "starkgen").Logger()
}
