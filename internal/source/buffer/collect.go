package buffer

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/psacc/buflist/internal/host"
	"github.com/psacc/buflist/internal/logx"
	"github.com/psacc/buflist/internal/model"
)

// Collect takes one snapshot of the host's buffers. A failed bulk query is
// returned as is. Listed buffers whose kind the bulk query left out are
// resolved with concurrent per-buffer queries; a failed lookup leaves the
// kind unknown instead of failing the listing.
func Collect(ctx context.Context, h host.Host, currentID int) (model.Snapshot, error) {
	info, err := h.BufferInfo(ctx)
	if err != nil {
		return model.Snapshot{}, err
	}

	snap := model.Snapshot{
		WorkingDirectory: info.WorkingDirectory,
		CurrentID:        currentID,
		AlternateID:      info.AlternateID,
		Buffers:          info.Buffers,
	}

	if err := resolveKinds(ctx, h, snap.Buffers); err != nil {
		return model.Snapshot{}, err
	}
	return snap, nil
}

// resolveKinds fills Kind for listed records that lack it. Each goroutine
// writes only its own slice element.
func resolveKinds(ctx context.Context, h host.Host, recs []model.BufferRecord) error {
	log := logx.Ctx(ctx)
	g, gctx := errgroup.WithContext(ctx)
	for i := range recs {
		rec := &recs[i]
		if rec.KindKnown || !rec.Listed {
			continue
		}
		g.Go(func() error {
			kind, err := h.BufferKind(gctx, rec.ID)
			if err != nil {
				if cerr := gctx.Err(); cerr != nil {
					return cerr
				}
				logx.WithBuffer(log, rec.ID, rec.Name).Debug("buffer kind unresolved", "err", err)
				return nil
			}
			rec.Kind = kind
			rec.KindKnown = true
			return nil
		})
	}
	return g.Wait()
}
