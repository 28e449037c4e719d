package configs

import (
	"io"
	"log/slog"
	"strings"
)

// Logger configures the structured logger. Level uses slog's syntax
// ("debug", "info", "warn", "error", optionally with an offset such as
// "info+2"); "warning" and "err" are accepted as aliases. Format is "text"
// or "json".
type Logger struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
	// AddSource annotates every record with the calling file and line.
	AddSource bool `env:"ADD_SOURCE" envDefault:"false"`
}

// SlogLevel parses Level. Unparseable levels read as info.
func (c Logger) SlogLevel() slog.Level {
	s := strings.ToLower(strings.TrimSpace(c.Level))
	switch s {
	case "warning":
		return slog.LevelWarn
	case "err":
		return slog.LevelError
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// JSON reports whether records are encoded as JSON. Any format other than
// "json" selects text.
func (c Logger) JSON() bool {
	return strings.EqualFold(strings.TrimSpace(c.Format), "json")
}

// New builds a logger writing to w.
func (c Logger) New(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel(), AddSource: c.AddSource}
	if c.JSON() {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
