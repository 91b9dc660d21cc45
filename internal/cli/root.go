package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/mvp-joe/grrs/internal/config"
	"github.com/mvp-joe/grrs/internal/logging"
	"github.com/mvp-joe/grrs/internal/search"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Diagnostics printed on stderr. Scripts and tests match on these.
const (
	msgEmptyPattern = "The pattern provided is an empty string."
	msgOpenFile     = "Could not open the file `%s`"
	msgReadLine     = "Could not read line of file."
	msgWriteLine    = "Unable to write line to writer."
)

// Options holds the collaborators the root command works with.
type Options struct {
	// Fs is used to open the input file and read configuration.
	Fs afero.Fs
	// ConfigSearchDirs are searched for .grrs.yaml when --config is unset.
	ConfigSearchDirs []string
}

type rootFlags struct {
	cfgFile string
	quiet   bool
	verbose int
}

// NewRootCommand builds the grrs command.
func NewRootCommand(opts Options) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "grrs [flags] <pattern> <path>",
		Short: "Print the lines of a file that contain a pattern",
		Long: `grrs searches for a pattern in a file (located at path) and displays
the lines that contain it.

The pattern is a literal string; it is matched exactly, with no case folding
or trimming. Matching lines are printed to stdout in file order. Diagnostics
go to stderr and are controlled by -q and -v.`,
		Args:          cobra.ExactArgs(2),
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, opts, flags, args[0], args[1])
		},
	}

	cmd.SetVersionTemplate(versionTemplate())

	cmd.Flags().StringVar(&flags.cfgFile, "config", "", "config file (default is .grrs.yaml in the working or home directory)")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "silence all diagnostics")
	cmd.Flags().CountVarP(&flags.verbose, "verbose", "v", "more diagnostics: -v warnings, -vv info, -vvv debug, -vvvv trace")

	return cmd
}

// runSearch validates the arguments, opens the file and streams matching
// lines to the command's output.
func runSearch(cmd *cobra.Command, opts Options, flags *rootFlags, pattern, path string) error {
	// The pattern is checked before any configuration or file is read, so
	// its diagnostic only honours -q and -v.
	matcher, err := search.NewMatcher(pattern)
	if err != nil {
		logger, lerr := logging.New(cmd.ErrOrStderr(), logging.VerbosityFromFlags(logging.Error, flags.quiet, flags.verbose), logging.Options{})
		if lerr != nil {
			return &ExitError{Code: ExitDataErr, Err: err}
		}
		logger.Error(msgEmptyPattern)
		return &ExitError{Code: ExitDataErr, Err: err, logged: true}
	}

	cfg, err := config.NewLoader(opts.Fs, flags.cfgFile, opts.ConfigSearchDirs...).Load()
	if err != nil {
		return &ExitError{Code: ExitConfig, Err: err}
	}

	verbosity := logging.VerbosityFromFlags(cfg.Verbosity(), flags.quiet, flags.verbose)
	logger, err := logging.New(cmd.ErrOrStderr(), verbosity, cfg.LoggingOptions())
	if err != nil {
		return &ExitError{Code: ExitConfig, Err: err}
	}
	defer logger.Sync()

	logger.Debug("Starting search", zap.String("pattern", matcher.Pattern()), zap.String("path", path), zap.Stringer("verbosity", verbosity))

	f, err := opts.Fs.Open(path)
	if err != nil {
		logger.Error(fmt.Sprintf(msgOpenFile, path), zap.Error(err))
		return &ExitError{Code: ExitNoInput, Err: fmt.Errorf("could not open the file `%s`: %w", path, err), logged: true}
	}
	defer f.Close()
	logger.Info("Opened the file " + path)

	stats, err := matcher.Scan(f, cmd.OutOrStdout())
	logger.Debug("Scan finished",
		zap.Int("lines_read", stats.LinesRead),
		zap.Int("lines_matched", stats.LinesMatched))
	if err != nil {
		switch {
		case errors.Is(err, search.ErrWriteLine):
			logger.Error(msgWriteLine, zap.Error(err))
		default:
			logger.Error(msgReadLine, zap.Error(err))
		}
		return &ExitError{Code: ExitFailure, Err: err, logged: true}
	}

	return nil
}

// Execute runs the grrs command against the real filesystem and exits
// the process with the resulting code. This is called by main.main().
func Execute() {
	cmd := NewRootCommand(Options{
		Fs:               afero.NewOsFs(),
		ConfigSearchDirs: config.DefaultSearchDirs(),
	})
	err := cmd.Execute()
	os.Exit(report(cmd.ErrOrStderr(), err))
}
