package cmd

import (
	"fmt"
	"io"
	"strconv"
	"time"
	_ "time/tzdata"

	"cloud.google.com/go/civil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/msto63/quickx/foundation/core/config"
	"github.com/msto63/quickx/foundation/core/errors"
	"github.com/msto63/quickx/foundation/core/log"
	"github.com/msto63/quickx/foundation/core/log/zapsink"
	"github.com/msto63/quickx/foundation/utils/datex"
	"github.com/msto63/quickx/foundation/utils/timex"
)

// EnvPrefix prefixes environment overrides such as QUICKX_LOG_LEVEL
const EnvPrefix = "QUICKX"

// module tags CLI argument errors
const module = "quickx"

type options struct {
	cfgFile   string
	locale    string
	timezone  string
	logLevel  string
	logFormat string
	logSink   string
	verbose   bool
}

// app carries the state shared by all subcommands of one invocation
type app struct {
	opts     options
	settings config.Resolved
	logger   *log.Logger
	sink     log.Sink
	zap      *zapsink.Sink
}

// NewRootCommand builds the quickx command tree
func NewRootCommand() *cobra.Command {
	root, _ := newRoot()
	return root
}

func newRoot() (*cobra.Command, *app) {
	a := &app{}

	root := &cobra.Command{
		Use:   "quickx",
		Short: "quickx - date, time, text and sequence helpers",
		Long: `quickx exposes the quickx utility library on the command line.

Commands:
  date     - business days, weekday navigation, week and month views
  time     - timezone conversion, truncation, rounding, Unix time
  text     - substrings, base64, line endings, composite formatting
  seq      - paging and batching
  math     - decimal rounding
  version  - build information`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.opts.cfgFile, "config", "", "config file (TOML or YAML)")
	flags.StringVar(&a.opts.locale, "locale", "", "culture used for case-insensitive comparison and formatting (e.g. de-DE)")
	flags.StringVar(&a.opts.timezone, "timezone", "", "IANA timezone for \"today\" and \"now\" (default: Local)")
	flags.StringVar(&a.opts.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	flags.StringVar(&a.opts.logFormat, "log-format", "", "log format (text, json, console, logfmt)")
	flags.StringVar(&a.opts.logSink, "log-sink", "core", "log backend (core or zap)")
	flags.BoolVarP(&a.opts.verbose, "verbose", "v", false, "verbose output (log level debug)")

	root.AddCommand(
		newDateCommand(a),
		newTimeCommand(a),
		newTextCommand(a),
		newSeqCommand(a),
		newMathCommand(a),
		newVersionCommand(a),
	)
	return root, a
}

// Execute runs the command tree and reports errors on stderr
func Execute() error {
	root, a := newRoot()
	defer a.close()

	if err := root.Execute(); err != nil {
		printError(root.ErrOrStderr(), err)
		return err
	}
	return nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}

// setup resolves configuration file, environment and flags, in increasing
// precedence, and builds the logger
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Empty(EnvPrefix)
	if a.opts.cfgFile != "" {
		loaded, err := config.LoadWithOptions(a.opts.cfgFile, config.LoadOptions{EnvPrefix: EnvPrefix})
		if err != nil {
			return err
		}
		cfg = loaded
	}

	s, err := config.SettingsFrom(cfg)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("locale") {
		s.Locale = a.opts.locale
	}
	if flags.Changed("timezone") {
		s.Timezone = a.opts.timezone
	}
	if flags.Changed("log-level") {
		s.Log.Level = a.opts.logLevel
	}
	if flags.Changed("log-format") {
		s.Log.Format = a.opts.logFormat
	}
	if a.opts.verbose {
		s.Log.Level = log.LevelDebug.String()
	}

	if a.settings, err = s.Apply(); err != nil {
		return err
	}

	a.logger = a.settings.NewLogger("quickx", cmd.ErrOrStderr())
	switch a.opts.logSink {
	case "", "core":
		a.sink = a.logger
	case "zap":
		a.zap = zapsink.New(newZapLogger(cmd.ErrOrStderr(), a.settings.LogLevel))
		a.sink = a.zap
	default:
		return errors.ConfigInvalidValue("log.sink", a.opts.logSink, "expected core or zap")
	}
	return nil
}

func (a *app) close() {
	if a.zap != nil {
		_ = a.zap.Sync()
	}
	if a.logger != nil {
		a.logger.Close()
	}
}

func newZapLogger(w io.Writer, level log.Level) *zap.Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		zapsink.LevelToZap(level),
	)
	return zap.New(core)
}

// run wraps a command body in a method scope logged at debug level
func (a *app) run(method string, fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return log.WithMethodScope(a.sink, method, log.LevelDebug, func() error {
			return fn(cmd, args)
		})
	}
}

// location is the configured timezone, falling back to Local before setup
func (a *app) location() *time.Location {
	if a.settings.Location == nil {
		return time.Local
	}
	return a.settings.Location
}

// parseDate accepts an ISO date or "today"
func (a *app) parseDate(s string) (civil.Date, error) {
	if s == "today" {
		return timex.ToDate(time.Now().In(a.location())), nil
	}
	return datex.ParseISO(s)
}

// parseInstant accepts an RFC 3339 timestamp or "now"
func (a *app) parseInstant(s string) (time.Time, error) {
	if s == "now" {
		return time.Now().In(a.location()), nil
	}
	return timex.ParseISO(s)
}

func parseInt(operation, name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.InvalidInput(module, operation, name, s, "not an integer")
	}
	return n, nil
}

func parseDuration(operation, s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, errors.InvalidFormat(module, operation, s, "Go duration such as 15m or 1h30m", err)
	}
	return d, nil
}
