package log

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// logControlCharReplacer escapes control characters that can be used for log injection (CWE-117).
var logControlCharReplacer = strings.NewReplacer(
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func sanitizeLogString(s string) string {
	return logControlCharReplacer.Replace(s)
}

// GoLogger implements Logger on top of the standard library logger.
//
// String values are sanitized to prevent log injection (CWE-117). The zero
// value logs Error only and writes through the standard logger.
type GoLogger struct {
	Level  Level
	out    *log.Logger
	fields []Field
	group  string
}

// NewGoLogger returns a GoLogger writing through out at the given level.
// A nil out uses the standard library's default logger.
func NewGoLogger(level Level, out *log.Logger) *GoLogger {
	return &GoLogger{Level: level, out: out}
}

// Compile-time assertion: *GoLogger implements Logger.
var _ Logger = (*GoLogger)(nil)

// Log writes a single line: "[level] msg key=value ...".
func (l *GoLogger) Log(_ context.Context, level Level, msg string, fields ...Field) {
	if !l.Enabled(level) {
		return
	}

	parts := make([]string, 0, 2+len(l.fields)+len(fields))
	parts = append(parts, "["+level.String()+"]", sanitizeLogString(msg))

	for _, f := range l.fields {
		parts = append(parts, l.formatField(f))
	}

	for _, f := range fields {
		parts = append(parts, l.formatField(f))
	}

	line := strings.Join(parts, " ")

	if l.out != nil {
		l.out.Print(line)
		return
	}

	log.Print(line)
}

func (l *GoLogger) formatField(f Field) string {
	key := f.Key
	if l.group != "" {
		key = l.group + "." + key
	}

	value := f.Value
	if s, ok := value.(string); ok {
		value = sanitizeLogString(s)
	}

	return fmt.Sprintf("%s=%v", sanitizeLogString(key), value)
}

// With returns a child logger carrying additional fields.
//
//nolint:ireturn
func (l *GoLogger) With(fields ...Field) Logger {
	if l == nil {
		return &GoLogger{fields: fields}
	}

	merged := make([]Field, 0, len(l.fields)+len(fields))
	merged = append(merged, l.fields...)
	merged = append(merged, fields...)

	return &GoLogger{Level: l.Level, out: l.out, fields: merged, group: l.group}
}

// WithGroup returns a child logger that prefixes subsequent field keys with name.
//
//nolint:ireturn
func (l *GoLogger) WithGroup(name string) Logger {
	if l == nil {
		return &GoLogger{group: name}
	}

	group := name
	if l.group != "" {
		group = l.group + "." + name
	}

	return &GoLogger{Level: l.Level, out: l.out, fields: l.fields, group: group}
}

// Enabled reports whether level is within the logger's verbosity ceiling.
func (l *GoLogger) Enabled(level Level) bool {
	if l == nil {
		return false
	}

	return l.Level >= level
}

// Sync is a no-op; the standard logger writes synchronously.
func (l *GoLogger) Sync(_ context.Context) error { return nil }
