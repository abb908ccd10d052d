package logging

import (
	"io"
	"os"
	"slices"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Option configures a ZerologLogger.
type Option func(*ZerologLogger)

// ZerologLogger implements Logger on top of zerolog. Output
// written to a terminal is rendered with zerolog's console writer,
// anything else receives JSON lines.
type ZerologLogger struct {
	log    zerolog.Logger
	closer io.Closer
}

// New creates a logger writing to stderr at LevelInfo unless
// overridden by opts.
func New(opts ...Option) *ZerologLogger {
	defaults := []Option{
		WithWriter(os.Stderr),
		WithLevel(LevelInfo),
	}

	l := &ZerologLogger{
		log: zerolog.New(nil).With().Timestamp().Logger(),
	}
	for _, opt := range slices.Concat(defaults, opts) {
		opt(l)
	}
	return l
}

// Discard is a logger that drops every entry. Closing it is a
// no-op.
var Discard Logger = &ZerologLogger{log: zerolog.Nop()}

// WithWriter sends output to w.
func WithWriter(w io.Writer) Option {
	return func(l *ZerologLogger) {
		out := w
		if isTerminal(w) {
			out = consoleWriter(w)
		}
		l.log = l.log.Output(out)
	}
}

// WithConsole sends human-readable output to w regardless of
// whether it is a terminal.
func WithConsole(w io.Writer, noColor bool) Option {
	return func(l *ZerologLogger) {
		cw := consoleWriter(w)
		cw.NoColor = noColor
		l.log = l.log.Output(cw)
	}
}

// WithFile appends JSON lines to the file at path. The file is
// closed by Close. A file that cannot be opened leaves the current
// output in place and is reported on it.
func WithFile(path string) Option {
	return func(l *ZerologLogger) {
		f, err := os.OpenFile(
			path,
			os.O_CREATE|os.O_WRONLY|os.O_APPEND,
			0o644,
		)
		if err != nil {
			l.log.Error().Err(err).Str("path", path).
				Msg("failed to open log file")
			return
		}
		l.log = l.log.Output(f)
		l.closer = f
	}
}

// WithLevel sets the minimum level that is emitted.
func WithLevel(level LogLevel) Option {
	return func(l *ZerologLogger) {
		l.log = l.log.Level(zerologLevel(level))
	}
}

// WithDefaultFields attaches fields to every entry.
func WithDefaultFields(fields ...Field) Option {
	return func(l *ZerologLogger) {
		l.log = l.log.With().Fields(fieldMap(fields)).Logger()
	}
}

func consoleWriter(w io.Writer) zerolog.ConsoleWriter {
	return zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
		cw.Out = w
		cw.TimeFormat = time.TimeOnly
	})
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return true
	}
	return false
}

func zerologLevel(level LogLevel) zerolog.Level {
	switch level {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.Disabled
	}
}

// Info logs at LevelInfo.
func (l *ZerologLogger) Info(msg string, fields ...Field) {
	l.write(l.log.Info(), msg, fields)
}

// Warn logs at LevelWarn.
func (l *ZerologLogger) Warn(msg string, fields ...Field) {
	l.write(l.log.Warn(), msg, fields)
}

// Error logs at LevelError.
func (l *ZerologLogger) Error(msg string, fields ...Field) {
	l.write(l.log.Error(), msg, fields)
}

// Debug logs at LevelDebug.
func (l *ZerologLogger) Debug(msg string, fields ...Field) {
	l.write(l.log.Debug(), msg, fields)
}

func (l *ZerologLogger) write(
	e *zerolog.Event, msg string, fields []Field,
) {
	if m := fieldMap(fields); m != nil {
		e = e.Fields(m)
	}
	e.Msg(msg)
}

// WithFields returns a child logger carrying fields. The child
// shares the parent's output and must not be closed separately.
func (l *ZerologLogger) WithFields(fields ...Field) Logger {
	return &ZerologLogger{
		log: l.log.With().Fields(fieldMap(fields)).Logger(),
	}
}

// Close releases the log file opened by WithFile, if any.
func (l *ZerologLogger) Close() error {
	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	return err
}
