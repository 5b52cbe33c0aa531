package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvminor/internal/config"
)

var version = "0.1.0"

// options are the persistent flags shared by every command.
type options struct {
	fs         vfs.FileSystem
	configPath string
	logLevel   string
	logFile    string

	cfg    *config.Config
	logOut vfs.File
}

// load reads the configuration and sets up logging. Flags override the file.
// Logs go to --log-file when set, otherwise to fallback.
func (o *options) load(cmd *cobra.Command, fallback io.Writer) error {
	cfg, err := config.Load(o.fs, o.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}

	out := fallback
	if o.logFile != "" {
		if err = o.close(); err != nil {
			return err
		}
		f, err := o.fs.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		o.logOut = f
		out = f
	}
	if err = setupLogging(cfg.Log.Level, out); err != nil {
		_ = o.close()
		return err
	}
	o.cfg = cfg
	log.Debug("configuration loaded from {{path}}", "path", o.configPath)

	return nil
}

// close releases the --log-file handle opened by load. It is safe to call
// more than once.
func (o *options) close() error {
	if o.logOut == nil {
		return nil
	}
	err := o.logOut.Close()
	o.logOut = nil
	if err != nil {
		return fmt.Errorf("close log file: %w", err)
	}

	return nil
}

// newRootCmd builds the command tree over fs.
func newRootCmd(fs vfs.FileSystem) *cobra.Command {
	opts := &options{fs: fs}

	root := &cobra.Command{
		Use:           "lvminor",
		Short:         "Explore graph minors by deletion and contraction",
		Long:          Brand.Sprint("lvminor") + ": branch a graph by deleting or contracting edges\n" + Subtle.Sprint("Every branch is relaxed by a force layout; undo walks back the history."),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("lvminor {{ .Version }}\n")

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "lvminor.toml", "configuration file (TOML)")
	pf.StringVarP(&opts.logLevel, "log-level", "L", "warn", "log level (error, warn, info, debug, trace)")
	pf.StringVar(&opts.logFile, "log-file", "", "write logs to this file instead of stderr")

	root.AddCommand(
		demoCmd(opts),
		exploreCmd(opts),
		serveCmd(opts),
	)
	// Close the log file whether or not the command succeeded.
	for _, c := range root.Commands() {
		run := c.RunE
		c.RunE = func(cmd *cobra.Command, args []string) (err error) {
			defer func() {
				if cerr := opts.close(); err == nil {
					err = cerr
				}
			}()
			return run(cmd, args)
		}
	}

	return root
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	root := newRootCmd(osfs.New())
	if err := root.Execute(); err != nil {
		Bad.Fprintf(os.Stderr, "lvminor: %v\n", err)
		os.Exit(1)
	}
}
