package logging

import (
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
)

// WatermillAdapter bridges watermill's LoggerAdapter interface onto a
// *slog.Logger, so the in-process broadcast bus (internal/chatroom) logs
// through the same structured pipeline as the rest of the server instead
// of watermill's own stdlib-log default.
type WatermillAdapter struct {
	logger *slog.Logger
}

// NewWatermillAdapter wraps logger for use as a watermill.LoggerAdapter.
func NewWatermillAdapter(logger *slog.Logger) *WatermillAdapter {
	return &WatermillAdapter{logger: logger}
}

func toArgs(fields watermill.LogFields) []any {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return args
}

func (a *WatermillAdapter) Error(msg string, err error, fields watermill.LogFields) {
	args := append(toArgs(fields), "error", err)
	a.logger.Error(msg, args...)
}

func (a *WatermillAdapter) Info(msg string, fields watermill.LogFields) {
	a.logger.Info(msg, toArgs(fields)...)
}

func (a *WatermillAdapter) Debug(msg string, fields watermill.LogFields) {
	a.logger.Debug(msg, toArgs(fields)...)
}

func (a *WatermillAdapter) Trace(msg string, fields watermill.LogFields) {
	a.logger.Debug(msg, toArgs(fields)...)
}

func (a *WatermillAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &WatermillAdapter{logger: a.logger.With(toArgs(fields)...)}
}
