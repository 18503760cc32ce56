package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

var levelNames = map[Level]string{
	Debug: "debug",
	Info:  "info",
	Warn:  "warn",
	Error: "error",
}

func (l Level) String() string {
	if n, ok := levelNames[l]; ok {
		return n
	}
	return "info"
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), "json") {
		return FormatJSON
	}
	return FormatText
}

type Logger interface {
	With(fields map[string]any) Logger

	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

type Options struct {
	Level  Level
	Format Format
	App    string
	Out    io.Writer // default os.Stdout
}

// sink es compartido por el logger raíz y todos sus hijos (With).
type sink struct {
	mu     sync.Mutex
	std    *log.Logger
	level  Level
	format Format
	now    func() time.Time
}

type fieldLogger struct {
	sink   *sink
	fields map[string]any
}

func New(opts Options) Logger {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	format := opts.Format
	if format == "" {
		format = FormatText
	}

	fields := map[string]any{}
	if app := strings.TrimSpace(opts.App); app != "" {
		fields["app"] = app
	}

	return &fieldLogger{
		sink: &sink{
			std:    log.New(out, "", 0),
			level:  opts.Level,
			format: format,
			now:    time.Now,
		},
		fields: fields,
	}
}

// NewFromEnv:
// - LOG_LEVEL=debug|info|warn|error (default info)
// - LOG_FORMAT=text|json (default text)
// - APP_NAME (opcional)
func NewFromEnv() Logger {
	return New(Options{
		Level:  ParseLevel(os.Getenv("LOG_LEVEL")),
		Format: ParseFormat(os.Getenv("LOG_FORMAT")),
		App:    os.Getenv("APP_NAME"),
	})
}

// Nop descarta todo.
func Nop() Logger {
	return New(Options{Level: Error + 1, Out: io.Discard})
}

func (l *fieldLogger) With(fields map[string]any) Logger {
	if len(fields) == 0 {
		return l
	}
	return &fieldLogger{sink: l.sink, fields: merge(l.fields, fields)}
}

func (l *fieldLogger) Debug(msg string, fields map[string]any) { l.write(Debug, msg, fields) }
func (l *fieldLogger) Info(msg string, fields map[string]any)  { l.write(Info, msg, fields) }
func (l *fieldLogger) Warn(msg string, fields map[string]any)  { l.write(Warn, msg, fields) }
func (l *fieldLogger) Error(msg string, fields map[string]any) { l.write(Error, msg, fields) }

func (l *fieldLogger) write(lvl Level, msg string, fields map[string]any) {
	s := l.sink
	if lvl < s.level {
		return
	}

	entry := merge(l.fields, fields)
	entry["ts"] = s.now().Format(time.RFC3339Nano)
	entry["level"] = lvl.String()
	entry["msg"] = msg

	var line string
	if s.format == FormatJSON {
		b, err := json.Marshal(entry)
		if err != nil {
			b, _ = json.Marshal(map[string]any{"level": lvl.String(), "msg": msg, "log_error": err.Error()})
		}
		line = string(b)
	} else {
		line = formatText(entry)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.std.Println(line)
}

func merge(base, extra map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		if strings.TrimSpace(k) == "" {
			continue
		}
		out[k] = v
	}
	return out
}

// formatText ordena las keys para que la salida sea estable.
func formatText(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, m[k]))
	}
	return strings.Join(parts, " ")
}
