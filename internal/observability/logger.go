package observability

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

type Fields map[string]any

// Logger writes one JSON object per line. A nil *Logger discards everything.
type Logger struct {
	service string
	out     io.Writer
	now     func() time.Time
	mu      sync.Mutex
}

func NewLogger(service string) *Logger {
	return NewLoggerTo(service, os.Stdout)
}

func NewLoggerTo(service string, out io.Writer) *Logger {
	if out == nil {
		out = io.Discard
	}
	return &Logger{
		service: strings.TrimSpace(service),
		out:     out,
		now:     time.Now,
	}
}

func (l *Logger) Info(msg string, fields Fields) {
	l.log("info", msg, fields)
}

func (l *Logger) Warn(msg string, fields Fields) {
	l.log("warn", msg, fields)
}

func (l *Logger) Error(msg string, fields Fields) {
	l.log("error", msg, fields)
}

// With returns fields merged over base; keys in extra win.
func (f Fields) With(extra Fields) Fields {
	out := make(Fields, len(f)+len(extra))
	for key, value := range f {
		out[key] = value
	}
	for key, value := range extra {
		out[key] = value
	}
	return out
}

func (l *Logger) log(level, msg string, fields Fields) {
	if l == nil {
		return
	}

	ts := l.now().UTC().Format(time.RFC3339Nano)
	entry := map[string]any{
		"ts":      ts,
		"level":   level,
		"msg":     strings.TrimSpace(msg),
		"service": l.service,
	}
	for key, value := range fields {
		cleanKey := strings.TrimSpace(key)
		if cleanKey == "" || value == nil {
			continue
		}
		if _, reserved := entry[cleanKey]; reserved {
			cleanKey = "field_" + cleanKey
		}
		switch typed := value.(type) {
		case string:
			if strings.TrimSpace(typed) == "" {
				continue
			}
		case error:
			value = typed.Error()
		}
		entry[cleanKey] = value
	}

	payload, err := json.Marshal(entry)
	if err != nil {
		payload = []byte(fmt.Sprintf(`{"ts":%q,"level":"error","msg":"logger_marshal_failed","service":%q}`, ts, l.service))
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.out.Write(append(payload, '\n'))
}
