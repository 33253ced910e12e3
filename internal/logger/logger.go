package logger

import (
	"encoding/json"
	"os"
	"sync"
	"time"
)

// Logger однострочный JSON-логгер в stdout
type Logger struct {
	service string
	mu      sync.Mutex
	out     *json.Encoder
}

type entry struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Service   string         `json:"service"`
	Action    string         `json:"action"`
	Details   map[string]any `json:"details,omitempty"`
	Error     string         `json:"error,omitempty"`
}

func New(service string) *Logger {
	return &Logger{service: service, out: json.NewEncoder(os.Stdout)}
}

func (l *Logger) log(level, action string, details map[string]any, err error) {
	e := entry{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Level:     level,
		Service:   l.service,
		Action:    action,
		Details:   details,
	}
	if err != nil {
		e.Error = err.Error()
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.out.Encode(e)
}

func (l *Logger) Info(action string, details map[string]any)  { l.log("INFO", action, details, nil) }
func (l *Logger) Debug(action string, details map[string]any) { l.log("DEBUG", action, details, nil) }
func (l *Logger) Error(action string, err error, details map[string]any) {
	l.log("ERROR", action, details, err)
}
