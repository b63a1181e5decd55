package host

import (
	"context"

	"github.com/psacc/buflist/internal/model"
)

// BufferInfo is the result of the batched buffer query. CurrentID is not part
// of it; the caller supplies the current buffer separately.
type BufferInfo struct {
	WorkingDirectory string
	AlternateID      int
	Buffers          []model.BufferRecord
}

// BufferState is the live state of one buffer, fetched at action time.
type BufferState struct {
	ID       int
	Name     string
	Modified bool
	Listed   bool
}

// Host is the editor capability the buffer source depends on: one bulk query
// plus narrow per-buffer queries and a single destructive command.
type Host interface {
	// BufferInfo returns every buffer in one round-trip.
	BufferInfo(ctx context.Context) (BufferInfo, error)

	// BufferKind returns the buffer type for id, "" when the host has none.
	BufferKind(ctx context.Context, id int) (string, error)

	// BufferExists reports whether a buffer with id is still open.
	BufferExists(ctx context.Context, id int) (bool, error)

	// BufferState fetches live state for id. ok is false when the host
	// returned nothing for it.
	BufferState(ctx context.Context, id int) (state BufferState, ok bool, err error)

	// Wipeout discards the buffer, unsaved changes included.
	Wipeout(ctx context.Context, id int) error
}

// Reporter shows a diagnostic message to the user inside the host.
type Reporter interface {
	Report(ctx context.Context, msg string) error
}

// CurrentBuffer is implemented by hosts that can tell which buffer is active.
type CurrentBuffer interface {
	CurrentBuffer(ctx context.Context) (int, error)
}
