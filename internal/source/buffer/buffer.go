package buffer

import (
	"context"

	"github.com/psacc/buflist/internal/host"
	"github.com/psacc/buflist/internal/logx"
	"github.com/psacc/buflist/internal/model"
	"github.com/psacc/buflist/internal/source"
)

// Name is the registry name of the buffer source.
const Name = "buffer"

func init() {
	source.Register(&bufferSource{})
}

type bufferSource struct{}

func (s *bufferSource) Name() string { return Name }

func (s *bufferSource) Kind() string { return "file" }

// Gather collects and ranks the host's buffers when the stream is first
// pulled.
func (s *bufferSource) Gather(_ context.Context, h host.Host, args source.GatherArgs) *source.Stream {
	return source.NewStream(func(ctx context.Context) ([]model.ResultItem, error) {
		snap, err := Collect(ctx, h, args.CurrentID)
		if err != nil {
			return nil, err
		}
		items := Rank(snap, args.Params.OrderBy)
		logx.WithSource(logx.Ctx(ctx), Name).Debug("buffers gathered",
			"total", len(snap.Buffers), "listed", len(items), "order", string(args.Params.OrderBy))
		return items, nil
	})
}
