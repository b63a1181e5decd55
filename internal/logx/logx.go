package logx

import (
	"context"

	"pkt.systems/pslog"
)

// Ctx returns the logger bound to the provided context.
func Ctx(ctx context.Context) pslog.Logger {
	return pslog.Ctx(ctx)
}

// WithBuffer annotates the logger with a buffer number and, when known, its path.
func WithBuffer(log pslog.Logger, id int, path string) pslog.Logger {
	log = log.With("buf", id)
	if path != "" {
		log = log.With("path", path)
	}
	return log
}

// WithSource annotates the logger with the source name.
func WithSource(log pslog.Logger, name string) pslog.Logger {
	if name != "" {
		log = log.With("source", name)
	}
	return log
}

// WithAction annotates the logger with the action name.
func WithAction(log pslog.Logger, name string) pslog.Logger {
	if name != "" {
		log = log.With("action", name)
	}
	return log
}
