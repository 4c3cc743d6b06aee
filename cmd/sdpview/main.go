// Command sdpview inspects WebRTC session descriptions: it groups the lines
// into session and media sections and explains each attribute.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jwulff/sdpview/internal/config"
	"github.com/jwulff/sdpview/internal/inspect"
	"github.com/jwulff/sdpview/internal/logging"
	"github.com/jwulff/sdpview/internal/metrics"
)

var Version = "dev"

// options holds the persistent flags and the state built from them before
// a subcommand runs.
type options struct {
	configPath string
	logLevel   string
	logFile    string
	dbPath     string

	cfg    *config.Config
	closer io.Closer
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "sdpview",
		Short:         "sdpview - WebRTC session description inspector",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return opts.close()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default ~/.sdpview/config.yaml)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	flags.StringVar(&opts.dbPath, "db", "", "capture database path")

	rootCmd.AddCommand(tuiCmd(opts))
	rootCmd.AddCommand(groupsCmd(opts))
	rootCmd.AddCommand(explainCmd(opts))
	rootCmd.AddCommand(overviewCmd(opts))
	rootCmd.AddCommand(fieldsCmd(opts))
	rootCmd.AddCommand(listCmd(opts))
	rootCmd.AddCommand(mcpCmd(opts))
	rootCmd.AddCommand(configCmd(opts))

	return rootCmd
}

// setup loads the configuration, applies flag overrides and initializes
// logging. The TUI owns the terminal, so it logs nowhere unless a log file
// is configured.
func (o *options) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.logFile != "" {
		cfg.Log.File = o.logFile
	}
	if o.dbPath != "" {
		cfg.DB.Path = o.dbPath
	}
	o.cfg = cfg

	var fallback io.Writer = cmd.ErrOrStderr()
	if cmd.Name() == "tui" {
		fallback = io.Discard
	}
	closer, err := logging.Init(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	}, fallback)
	if err != nil {
		return err
	}
	o.closer = closer

	log := logging.WithComponent("cli")
	log.Debug().
		Str("command", cmd.Name()).
		Str("db", cfg.DB.Path).
		Msg("configured")
	return nil
}

func (o *options) close() error {
	if o.closer == nil {
		return nil
	}
	err := o.closer.Close()
	o.closer = nil
	return err
}

func (o *options) inspector() *inspect.Inspector {
	return inspect.NewInspector(metrics.DefaultMetrics, logging.WithComponent("inspect"), 0)
}
