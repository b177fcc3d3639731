package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/ethereum/go-ethereum/log"
)

const (
	LevelFlagName  = "log.level"
	FormatFlagName = "log.format"
	ColorFlagName  = "log.color"
)

// FormatType defines a type of log format.
type FormatType string

const (
	FormatText     FormatType = "text"
	FormatTerminal FormatType = "terminal"
	FormatLogFmt   FormatType = "logfmt"
	FormatJSON     FormatType = "json"
)

var formatTypes = []FormatType{FormatText, FormatTerminal, FormatLogFmt, FormatJSON}

func (f FormatType) String() string {
	return string(f)
}

func (f *FormatType) Set(value string) error {
	for _, t := range formatTypes {
		if string(t) == value {
			*f = t
			return nil
		}
	}
	return fmt.Errorf("unrecognized log-format: %q", value)
}

// LevelFlagValue wraps a slog.Level so it can be parsed from a CLI flag.
type LevelFlagValue slog.Level

func (l LevelFlagValue) String() string {
	return log.LevelString(slog.Level(l))
}

func (l *LevelFlagValue) Set(value string) error {
	lvl, err := LevelFromString(value)
	if err != nil {
		return err
	}
	*l = LevelFlagValue(lvl)
	return nil
}

func (l LevelFlagValue) Level() slog.Level {
	return slog.Level(l)
}

// LevelFromString parses a level name, accepting the long and short names geth prints.
func LevelFromString(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "trace", "trce":
		return log.LevelTrace, nil
	case "debug", "dbug":
		return log.LevelDebug, nil
	case "info":
		return log.LevelInfo, nil
	case "warn":
		return log.LevelWarn, nil
	case "error", "eror":
		return log.LevelError, nil
	case "crit":
		return log.LevelCrit, nil
	default:
		return log.LevelInfo, fmt.Errorf("unknown level: %q", s)
	}
}

type CLIConfig struct {
	Level  slog.Level
	Color  bool
	Format FormatType
}

// DefaultCLIConfig logs at info level, in text format,
// with color when stdout is a terminal.
func DefaultCLIConfig() CLIConfig {
	return CLIConfig{
		Level:  log.LevelInfo,
		Format: FormatText,
		Color:  isatty.IsTerminal(os.Stdout.Fd()),
	}
}

func CLIFlags(envPrefix string) []cli.Flag {
	def := DefaultCLIConfig()
	level := LevelFlagValue(def.Level)
	format := def.Format
	return []cli.Flag{
		&cli.GenericFlag{
			Name:     LevelFlagName,
			Usage:    "The lowest log level that will be output",
			Value:    &level,
			EnvVars:  []string{envPrefix + "_LOG_LEVEL"},
			Category: "Logging",
		},
		&cli.GenericFlag{
			Name:     FormatFlagName,
			Usage:    "Format the log output. Supported formats: 'text', 'terminal', 'logfmt', 'json'",
			Value:    &format,
			EnvVars:  []string{envPrefix + "_LOG_FORMAT"},
			Category: "Logging",
		},
		&cli.BoolFlag{
			Name:     ColorFlagName,
			Usage:    "Color the log output if in terminal mode",
			Value:    def.Color,
			EnvVars:  []string{envPrefix + "_LOG_COLOR"},
			Category: "Logging",
		},
	}
}

func ReadCLIConfig(ctx *cli.Context) CLIConfig {
	cfg := DefaultCLIConfig()
	if v, ok := ctx.Generic(LevelFlagName).(*LevelFlagValue); ok {
		cfg.Level = v.Level()
	}
	if v, ok := ctx.Generic(FormatFlagName).(*FormatType); ok {
		cfg.Format = *v
	}
	if ctx.IsSet(ColorFlagName) {
		cfg.Color = ctx.Bool(ColorFlagName)
	}
	return cfg
}

// NewLogHandler creates a slog handler for the configured format and level.
func NewLogHandler(w io.Writer, cfg CLIConfig) slog.Handler {
	switch cfg.Format {
	case FormatJSON:
		return JSONMsHandler(w, cfg.Level)
	case FormatLogFmt:
		return LogfmtMsHandler(w, cfg.Level)
	case FormatTerminal:
		return log.NewTerminalHandlerWithLevel(w, cfg.Level, cfg.Color)
	default:
		// text: terminal output when attached to a TTY, logfmt otherwise
		if cfg.Color {
			return log.NewTerminalHandlerWithLevel(w, cfg.Level, true)
		}
		return LogfmtMsHandler(w, cfg.Level)
	}
}

func NewLogger(w io.Writer, cfg CLIConfig) log.Logger {
	return log.NewLogger(NewLogHandler(w, cfg))
}

// SetGlobalLogHandler makes the handler the geth root logger's handler,
// so library code logging through log.Root() ends up in the same stream.
func SetGlobalLogHandler(h slog.Handler) {
	log.SetDefault(log.NewLogger(h))
}

// AppOut returns the writer the CLI app writes to, or stdout outside of an app.
func AppOut(ctx *cli.Context) io.Writer {
	if ctx == nil || ctx.App == nil || ctx.App.Writer == nil {
		return os.Stdout
	}
	return ctx.App.Writer
}
