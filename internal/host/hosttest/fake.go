// Package hosttest provides an in-memory host.Host for tests.
package hosttest

import (
	"context"
	"fmt"
	"sync"

	"github.com/psacc/buflist/internal/host"
	"github.com/psacc/buflist/internal/model"
)

// Fake is a thread-safe in-memory editor. Buffers are kept in insertion
// order; Wipeout removes them.
type Fake struct {
	mu sync.Mutex

	Dir       string
	Current   int
	Alternate int
	Buffers   []model.BufferRecord

	// Kinds answers BufferKind. Missing ids return "".
	Kinds map[int]string

	// Error injection.
	InfoErr  error
	KindErr  map[int]error
	StateErr error
	WipeErr  map[int]error

	// Recorded calls.
	InfoCalls int
	KindCalls []int
	Wiped     []int
	Reports   []string
}

var (
	_ host.Host          = (*Fake)(nil)
	_ host.Reporter      = (*Fake)(nil)
	_ host.CurrentBuffer = (*Fake)(nil)
)

func (f *Fake) BufferInfo(_ context.Context) (host.BufferInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.InfoCalls++
	if f.InfoErr != nil {
		return host.BufferInfo{}, f.InfoErr
	}
	bufs := make([]model.BufferRecord, len(f.Buffers))
	copy(bufs, f.Buffers)
	return host.BufferInfo{
		WorkingDirectory: f.Dir,
		AlternateID:      f.Alternate,
		Buffers:          bufs,
	}, nil
}

func (f *Fake) BufferKind(ctx context.Context, id int) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.KindCalls = append(f.KindCalls, id)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err, ok := f.KindErr[id]; ok {
		return "", err
	}
	return f.Kinds[id], nil
}

func (f *Fake) BufferExists(_ context.Context, id int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.indexOf(id) >= 0, nil
}

func (f *Fake) BufferState(_ context.Context, id int) (host.BufferState, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.StateErr != nil {
		return host.BufferState{}, false, f.StateErr
	}
	i := f.indexOf(id)
	if i < 0 {
		return host.BufferState{}, false, nil
	}
	b := f.Buffers[i]
	return host.BufferState{ID: b.ID, Name: b.Name, Modified: b.Modified, Listed: b.Listed}, true, nil
}

func (f *Fake) Wipeout(_ context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.WipeErr[id]; ok {
		return err
	}
	i := f.indexOf(id)
	if i < 0 {
		return fmt.Errorf("E516: No buffers were deleted: bwipeout! %d", id)
	}
	f.Buffers = append(f.Buffers[:i], f.Buffers[i+1:]...)
	f.Wiped = append(f.Wiped, id)
	return nil
}

func (f *Fake) Report(_ context.Context, msg string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Reports = append(f.Reports, msg)
	return nil
}

func (f *Fake) CurrentBuffer(_ context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Current, nil
}

// Has reports whether id is still present.
func (f *Fake) Has(id int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.indexOf(id) >= 0
}

func (f *Fake) indexOf(id int) int {
	for i, b := range f.Buffers {
		if b.ID == id {
			return i
		}
	}
	return -1
}
