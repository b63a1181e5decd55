package source

import (
	"context"

	"github.com/psacc/buflist/internal/model"
)

// GatherFunc computes the whole item list in one go.
type GatherFunc func(ctx context.Context) ([]model.ResultItem, error)

// Stream is a pull-based producer. The first Next runs the gather function
// and returns its batch; every later call reports the stream as finished.
// A Stream cannot be restarted.
type Stream struct {
	gather GatherFunc
	done   bool
}

// NewStream wraps fn. fn is not called until the first Next.
func NewStream(fn GatherFunc) *Stream {
	return &Stream{gather: fn}
}

// Next returns the next batch. ok is false once the stream is finished; a
// gather error also finishes the stream.
func (s *Stream) Next(ctx context.Context) (items []model.ResultItem, ok bool, err error) {
	if s.done {
		return nil, false, nil
	}
	s.done = true
	items, err = s.gather(ctx)
	if err != nil {
		return nil, false, err
	}
	return items, true, nil
}

// Collect drains the stream into one slice.
func (s *Stream) Collect(ctx context.Context) ([]model.ResultItem, error) {
	var all []model.ResultItem
	for {
		batch, ok, err := s.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return all, nil
		}
		all = append(all, batch...)
	}
}
