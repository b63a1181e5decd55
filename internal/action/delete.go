package action

import (
	"context"
	"fmt"

	"github.com/psacc/buflist/internal/host"
	"github.com/psacc/buflist/internal/logx"
	"github.com/psacc/buflist/internal/model"
)

// DeleteName is the registry name of the delete action.
const DeleteName = "delete"

func init() {
	Register(&deleteAction{})
}

// Outcome is the full result of a delete batch.
type Outcome struct {
	Flag   Flag
	Closed []int // buffer ids wiped, in order
	Err    error // why the batch stopped early, nil on full success
}

// DeleteAll wipes the buffers behind items in order. Every buffer is checked
// against live host state first; the first one that is gone or modified (or
// any host error) stops the batch. Buffers wiped before that stay wiped.
// Flag is FlagRefreshItems whenever at least one buffer was wiped.
func DeleteAll(ctx context.Context, h host.Host, items []model.ResultItem) Outcome {
	var out Outcome
	for _, item := range items {
		if err := deleteOne(ctx, h, item); err != nil {
			out.Err = err
			break
		}
		out.Closed = append(out.Closed, item.BufferID)
	}
	if len(out.Closed) > 0 {
		out.Flag = FlagRefreshItems
	}
	return out
}

func deleteOne(ctx context.Context, h host.Host, item model.ResultItem) error {
	id := item.BufferID

	exists, err := h.BufferExists(ctx, id)
	if err != nil {
		return fmt.Errorf("check buffer %d: %w", id, err)
	}
	if !exists {
		return &BufferGoneError{ID: id, Path: item.DisplayPath()}
	}

	state, ok, err := h.BufferState(ctx, id)
	if err != nil {
		return fmt.Errorf("fetch buffer %d: %w", id, err)
	}
	if !ok {
		return &BufferGoneError{ID: id, Path: item.DisplayPath()}
	}
	if state.Modified {
		return &BufferModifiedError{ID: id, Path: item.DisplayPath()}
	}

	if err := h.Wipeout(ctx, id); err != nil {
		return fmt.Errorf("wipe buffer %d: %w", id, err)
	}
	logx.WithBuffer(logx.Ctx(ctx), id, item.Path).Info("buffer wiped")
	return nil
}

type deleteAction struct{}

func (a *deleteAction) Name() string { return DeleteName }

// Do runs DeleteAll and reports an aborted batch to the log and, when the
// host can show messages, to the user.
func (a *deleteAction) Do(ctx context.Context, h host.Host, items []model.ResultItem) Flag {
	out := DeleteAll(ctx, h, items)
	if out.Err != nil {
		log := logx.WithAction(logx.Ctx(ctx), DeleteName)
		log.Warn("delete stopped", "err", out.Err, "closed", len(out.Closed), "requested", len(items))
		if r, ok := h.(host.Reporter); ok {
			if err := r.Report(ctx, out.Err.Error()); err != nil {
				log.Warn("report to host failed", "err", err)
			}
		}
	}
	return out.Flag
}
