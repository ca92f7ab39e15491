package kconfiglang

import (
	"fmt"
	"io"
	"log/slog"
)

// MakeLog returns a text logger writing to out at level, one of "debug", "info",
// "warn", "error" or "silent". The logger never reports the timestamp.
// On an unknown level it returns a logger at "warn" and an error.
func MakeLog(out io.Writer, level string) (*slog.Logger, error) {
	levels := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	var err error
	lvl, ok := levels[level]
	switch {
	case level == "silent":
		out = io.Discard
	case !ok:
		err = fmt.Errorf("invalid log level: %q", level)
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level:       lvl,
		ReplaceAttr: RemoveTime,
	})), err
}

// RemoveTime removes the "time" attribute from the output of a slog.Logger.
func RemoveTime(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}
