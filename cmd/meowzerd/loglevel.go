package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"
)

// logLevelFlag adapts slog.Level to pflag.Value so --log-level can be set
// to one of the standard level names directly on the command line.
type logLevelFlag struct {
	level *slog.LevelVar
}

var _ pflag.Value = (*logLevelFlag)(nil)

func (f *logLevelFlag) String() string {
	if f.level == nil {
		return slog.LevelInfo.String()
	}
	return f.level.Level().String()
}

func (f *logLevelFlag) Set(s string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return fmt.Errorf("unknown log level %q: %w", s, err)
	}
	f.level.Set(l)
	return nil
}

func (f *logLevelFlag) Type() string { return "level" }
