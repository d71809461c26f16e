package logger

import (
	"fmt"
	"log"
	"os"
	"path"
	"regexp"
	"runtime"

	"github.com/fatih/color"
	"github.com/xy-planning-network/waypoint"
)

const knownFrames = 2

var waypointPathRegex = regexp.MustCompile("waypoint.*$")

// The Logger interface defines the levels a logging can occur at.
type Logger interface {
	Debug(msg string, ctx *LogContext)
	Error(msg string, ctx *LogContext)
	Fatal(msg string, ctx *LogContext)
	Info(msg string, ctx *LogContext)
	Warn(msg string, ctx *LogContext)

	LogLevel() LogLevel
}

// The SkipLogger interface defines a Logger that scrolls back
// the number of frames provided in order to ascertain the call site.
type SkipLogger interface {
	AddSkip(i int) SkipLogger
	Skip() int
	Logger
}

type LogLevel int

const (
	LogLevelUnk LogLevel = iota
	LogLevelDebug
	LogLevelInfo
	LogLevelWarn
	LogLevelError
	LogLevelFatal
)

func NewLogLevel(val string) LogLevel {
	switch val {
	case "DEBUG":
		return LogLevelDebug
	case "INFO":
		return LogLevelInfo
	case "WARN":
		return LogLevelWarn
	case "ERROR":
		return LogLevelError
	case "FATAL":
		return LogLevelFatal
	default:
		return LogLevelUnk
	}
}

func (ll LogLevel) String() string {
	return map[LogLevel]string{
		LogLevelDebug: "[DEBUG]",
		LogLevelInfo:  "[INFO]",
		LogLevelWarn:  "[WARN]",
		LogLevelError: "[ERROR]",
		LogLevelFatal: "[FATAL]",
		LogLevelUnk:   "[UNK]",
	}[ll]
}

// WaypointLogger implements Logger using log.
type WaypointLogger struct {
	skip int
	env  waypoint.Environment
	l    *log.Logger
	ll   LogLevel
}

// NewLogger constructs a WaypointLogger.
//
// Logs are printed to os.Stdout by default, using the std lib log pkg.
// The default environment is read from ENVIRONMENT, falling back to DEVELOPMENT.
// The default log level is INFO.
func NewLogger(opts ...LoggerOptFn) Logger {
	logger := log.New(os.Stdout, "", log.LstdFlags)
	l := &WaypointLogger{
		env: waypoint.EnvVarOrEnv("ENVIRONMENT", waypoint.Development),
		l:   logger,
		ll:  LogLevelInfo,
	}
	for _, opt := range opts {
		opt(l)
	}

	if sentryDsn := os.Getenv("SENTRY_DSN"); sentryDsn != "" {
		l.Info("SENTRY_DSN set, configuring SentryLogger", nil)
		return NewSentryLogger(l, sentryDsn)
	}

	return l
}

// AddSkip replaces the current number of frames to scroll back
// when logging a message.
//
// Use Skip to get the current skip amount
// when needing to add to it with AddSkip.
func (l *WaypointLogger) AddSkip(i int) SkipLogger {
	newl := *l
	newl.skip = i
	return &newl
}

// Debug writes a debug log.
func (l *WaypointLogger) Debug(msg string, ctx *LogContext) {
	if l.ll > LogLevelDebug {
		return
	}

	l.log(color.WhiteString, LogLevelDebug, msg, ctx)
}

// Error writes an error log.
func (l *WaypointLogger) Error(msg string, ctx *LogContext) {
	if l.ll > LogLevelError {
		return
	}

	l.log(color.RedString, LogLevelError, msg, ctx)
}

// Fatal writes a fatal log.
func (l *WaypointLogger) Fatal(msg string, ctx *LogContext) {
	if l.ll > LogLevelFatal {
		return
	}

	l.log(color.MagentaString, LogLevelFatal, msg, ctx)
}

// Info writes an info log.
func (l *WaypointLogger) Info(msg string, ctx *LogContext) {
	if l.ll > LogLevelInfo {
		return
	}

	l.log(color.BlueString, LogLevelInfo, msg, ctx)
}

// Warn writes a warning log.
func (l *WaypointLogger) Warn(msg string, ctx *LogContext) {
	if l.ll > LogLevelWarn {
		return
	}

	l.log(color.YellowString, LogLevelWarn, msg, ctx)
}

// LogLevel returns the LogLevel set for the WaypointLogger.
func (l *WaypointLogger) LogLevel() LogLevel { return l.ll }

// Skip returns the current amount of frames to scroll back
// when logging a message.
func (l *WaypointLogger) Skip() int { return l.skip }

// log executes printing the log message,
// including any context if available.
func (l *WaypointLogger) log(colorizer func(string, ...any) string, level LogLevel, msg string, ctx *LogContext) {
	var site string
	if ctx != nil && ctx.Caller != "" {
		site = ctx.Caller
	} else {
		// NOTE(dlk): skip the number of frames the WaypointLogger has
		// and however many the WaypointLogger is configured with
		_, file, line, _ := runtime.Caller(knownFrames + l.skip)
		site = fmt.Sprintf(callerTmpl, immediateFilepath(file), line)
	}

	msg = colorizer("%s %s '%s'", level, site, msg)
	if ctx == nil {
		l.l.Println(msg)
		return
	}

	l.l.Println(msg, "log_context:", ctx)
}

// immediateFilepath trims file down to the part a reader needs to find it.
//
// e.g.,:
// /home/dlk/waypoint/router/router.go => waypoint/router/router.go
// /home/dlk/my-project/main.go => my-project/main.go
func immediateFilepath(file string) string {
	if match := waypointPathRegex.FindString(file); match != "" {
		return match
	}

	fullPath, file := path.Split(file)
	return path.Base(fullPath) + string(os.PathSeparator) + file
}
