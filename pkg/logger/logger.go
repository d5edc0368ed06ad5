// Package logger defines the leveled logger used across sitekit and a
// zerolog-backed implementation of it.
package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// Logger accepts a message plus alternating key/value pairs.
type Logger interface {
	Error(msg string, args ...any)
	Warn(msg string, args ...any)
	Info(msg string, args ...any)
	Debug(msg string, args ...any)
}

type ZerologHandler struct {
	logger zerolog.Logger
}

// New returns a Logger writing structured JSON lines to w.
func New(w io.Writer) *ZerologHandler {
	return &ZerologHandler{
		logger: zerolog.New(w).With().Timestamp().Logger(),
	}
}

// FromZerolog wraps an existing zerolog.Logger.
func FromZerolog(l zerolog.Logger) *ZerologHandler {
	return &ZerologHandler{logger: l}
}

func (h *ZerologHandler) Error(msg string, args ...any) {
	h.emit(h.logger.Error(), msg, args)
}

func (h *ZerologHandler) Warn(msg string, args ...any) {
	h.emit(h.logger.Warn(), msg, args)
}

func (h *ZerologHandler) Info(msg string, args ...any) {
	h.emit(h.logger.Info(), msg, args)
}

func (h *ZerologHandler) Debug(msg string, args ...any) {
	h.emit(h.logger.Debug(), msg, args)
}

func (h *ZerologHandler) emit(ev *zerolog.Event, msg string, args []any) {
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		ev = ev.Interface(key, args[i+1])
	}
	ev.Msg(msg)
}

// Nop discards everything. Useful as a default before configuration.
func Nop() *ZerologHandler {
	return &ZerologHandler{logger: zerolog.Nop()}
}
