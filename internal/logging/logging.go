// Package logging builds the diagnostics logger. Diagnostics never go to
// stdout, which belongs to the menu.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel parses a level name such as "debug" or "warn".
func ParseLevel(s string) (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(s)
	if err != nil {
		return lvl, fmt.Errorf("logging: %w", err)
	}
	return lvl, nil
}

// New returns a console-encoded logger writing entries at or above level to w.
func New(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		lvl,
	)
	return zap.New(core), nil
}

// Open builds a logger for path, appending to the file, or for stderr when
// path is empty. The returned close func syncs and releases the file.
func Open(level, path string) (*zap.Logger, func() error, error) {
	if path == "" {
		log, err := New(level, os.Stderr)
		if err != nil {
			return nil, nil, err
		}
		return log, func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: opening %s: %w", path, err)
	}
	log, err := New(level, f)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	closeFn := func() error {
		_ = log.Sync()
		return f.Close()
	}
	return log, closeFn, nil
}

// RedactEmail masks the local part of an email for logging.
// "john.doe@example.com" → "jo***@example.com"; local parts of two
// characters or fewer are fully masked. Characters, not bytes, are counted.
func RedactEmail(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return "***@***"
	}
	if r := []rune(local); len(r) > 2 {
		return string(r[:2]) + "***@" + domain
	}
	return "***@" + domain
}
