package logger

import (
	"io"
	"runtime"
	"time"

	"github.com/rs/zerolog"
)

var zeroLevels = map[Level]zerolog.Level{
	LevelDebug: zerolog.DebugLevel,
	LevelInfo:  zerolog.InfoLevel,
	LevelError: zerolog.ErrorLevel,
	LevelFatal: zerolog.FatalLevel,
	LevelOff:   zerolog.Disabled,
}

// ZeroLogger writes through zerolog. The API server logs JSON lines; the
// admin CLI uses the console form on stderr.
type ZeroLogger struct {
	base  zerolog.Logger
	zl    zerolog.Logger
	level Level
}

// callerHook stamps the call site of the logging statement on every event.
type callerHook struct{}

func (callerHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	if _, file, line, ok := runtime.Caller(4); ok {
		e.Str("file", file).Int("line", line)
	}
}

func NewZeroLogger(writer io.Writer, level Level, defaultFields Fields) *ZeroLogger {
	return newZeroLogger(writer, level, defaultFields, true)
}

// NewConsoleLogger renders events as plain text lines without the caller.
func NewConsoleLogger(writer io.Writer, level Level, defaultFields Fields) *ZeroLogger {
	console := zerolog.ConsoleWriter{Out: writer, NoColor: true, TimeFormat: time.TimeOnly}
	return newZeroLogger(console, level, defaultFields, false)
}

func newZeroLogger(writer io.Writer, level Level, defaultFields Fields, caller bool) *ZeroLogger {
	ctx := zerolog.New(writer).With().Timestamp()
	if len(defaultFields) > 0 {
		ctx = ctx.Fields(map[string]interface{}(defaultFields))
	}
	base := ctx.Logger()
	if caller {
		base = base.Hook(callerHook{})
	}
	l := &ZeroLogger{base: base}
	l.SetLevel(level)
	return l
}

func (l *ZeroLogger) Info(message string, properties map[string]interface{}) {
	l.zl.Info().Fields(properties).Msg(message)
}

func (l *ZeroLogger) Error(err error, properties map[string]interface{}) {
	if err == nil {
		return
	}
	l.zl.Error().Fields(properties).Err(err).Msg(err.Error())
}

// Fatal logs and exits the process.
func (l *ZeroLogger) Fatal(err error, properties map[string]interface{}) {
	l.zl.Fatal().Fields(properties).Err(err).Msg(err.Error())
}

func (l *ZeroLogger) Debug(message string, properties map[string]interface{}) {
	l.zl.Debug().Fields(properties).Msg(message)
}

func (l *ZeroLogger) SetLevel(level Level) {
	zLevel, ok := zeroLevels[level]
	if !ok {
		zLevel = zerolog.InfoLevel
	}
	l.level = level
	l.zl = l.base.Level(zLevel)
}
