// Package logging builds the diagnostic logger used by the grrs command.
// Diagnostics always go to their own sink, never to the match output.
package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity selects how much diagnostic output is produced.
type Verbosity int

const (
	Quiet Verbosity = iota
	Error
	Warn
	Info
	Debug
	Trace
)

// ErrInvalidVerbosity indicates an unknown verbosity name
var ErrInvalidVerbosity = errors.New("invalid verbosity")

var verbosityNames = map[Verbosity]string{
	Quiet: "off",
	Error: "error",
	Warn:  "warn",
	Info:  "info",
	Debug: "debug",
	Trace: "trace",
}

func (v Verbosity) String() string {
	if name, ok := verbosityNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Verbosity(%d)", int(v))
}

// ParseVerbosity converts a level name such as "warn" into a Verbosity.
// "quiet" and "off" both mean no diagnostics.
func ParseVerbosity(name string) (Verbosity, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "quiet" {
		return Quiet, nil
	}
	for v, n := range verbosityNames {
		if n == name {
			return v, nil
		}
	}
	return Error, fmt.Errorf("%w: %q (valid: off, error, warn, info, debug, trace)", ErrInvalidVerbosity, name)
}

// VerbosityFromFlags maps -q and repeated -v flags onto a Verbosity,
// starting from base. -q wins over any number of -v.
func VerbosityFromFlags(base Verbosity, quiet bool, count int) Verbosity {
	if quiet {
		return Quiet
	}
	if count == 0 {
		return base
	}
	v := Error + Verbosity(count)
	if v > Trace {
		v = Trace
	}
	return v
}

// level returns the zap level for v. zap has no trace level, so Trace
// shares Debug.
func (v Verbosity) level() zapcore.Level {
	switch v {
	case Error:
		return zapcore.ErrorLevel
	case Warn:
		return zapcore.WarnLevel
	case Info:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// Options tune the encoder.
type Options struct {
	// Encoding is "console" (default) or "json".
	Encoding string
	// Timestamps adds an ISO8601 time field to every entry.
	Timestamps bool
}

// New builds a logger writing to w at verbosity v. A Quiet logger
// discards everything.
func New(w io.Writer, v Verbosity, opts Options) (*zap.Logger, error) {
	if v == Quiet {
		return zap.NewNop(), nil
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.StacktraceKey = ""
	encoderCfg.CallerKey = ""
	if !opts.Timestamps {
		encoderCfg.TimeKey = ""
	}

	var encoder zapcore.Encoder
	switch strings.ToLower(opts.Encoding) {
	case "", "console":
		encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	default:
		return nil, fmt.Errorf("unknown log encoding %q (valid: console, json)", opts.Encoding)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), v.level())
	return zap.New(core), nil
}
