package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jmartel/bibliofind"
)

// Ensure LoggingCompleter implements bibliofind.Completer.
var _ bibliofind.Completer = (*LoggingCompleter)(nil)

// LoggingCompleter wraps a Completer with timing and outcome logging for
// completion calls.
type LoggingCompleter struct {
	next   bibliofind.Completer
	logger *slog.Logger
}

// NewLoggingCompleter creates a new LoggingCompleter.
func NewLoggingCompleter(next bibliofind.Completer, logger *slog.Logger) *LoggingCompleter {
	return &LoggingCompleter{next: next, logger: logger}
}

// Complete delegates to the wrapped completer and logs the outcome.
func (c *LoggingCompleter) Complete(ctx context.Context, instruction string, question string) (string, error) {
	begin := time.Now()
	raw, err := c.next.Complete(ctx, instruction, question)
	if err != nil {
		c.logger.Error("complete",
			"err", err,
			"duration", time.Since(begin),
		)
		return "", err
	}

	c.logger.Info("complete",
		"instruction_chars", len(instruction),
		"response_chars", len(raw),
		"duration", time.Since(begin),
	)
	return raw, nil
}
