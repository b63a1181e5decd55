// Package nvim implements host.Host over Neovim's msgpack-RPC API.
package nvim

import (
	"context"
	"fmt"

	"github.com/neovim/go-client/nvim"

	"github.com/psacc/buflist/internal/host"
	"github.com/psacc/buflist/internal/model"
)

// Options tune the host adapter.
type Options struct {
	// InlineKind makes the bulk query carry each buffer's buftype. When
	// false, kinds are resolved by the per-buffer fallback query.
	InlineKind bool
}

// Host is a host.Host backed by a Neovim RPC client.
type Host struct {
	v    *nvim.Nvim
	opts Options
	own  bool
}

var (
	_ host.Host          = (*Host)(nil)
	_ host.Reporter      = (*Host)(nil)
	_ host.CurrentBuffer = (*Host)(nil)
)

// New wraps an existing client. Close does not close it.
func New(v *nvim.Nvim, opts Options) *Host {
	return &Host{v: v, opts: opts}
}

// Dial connects to the Neovim server listening at address.
func Dial(ctx context.Context, address string, opts Options) (*Host, error) {
	v, err := nvim.Dial(address, nvim.DialContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("dial nvim at %s: %w", address, err)
	}
	return &Host{v: v, opts: opts, own: true}, nil
}

// Close closes the connection when Dial opened it.
func (h *Host) Close() error {
	if !h.own {
		return nil
	}
	return h.v.Close()
}

// bufferInfoLua builds the whole listing in one round-trip. The single
// argument says whether to include buftype.
const bufferInfoLua = `
local inline = ...
local buffers = {}
for _, b in ipairs(vim.fn.getbufinfo()) do
  local rec = {
    bufnr = b.bufnr,
    changed = b.changed == 1,
    lastused = b.lastused,
    listed = b.listed == 1,
    name = b.name,
    buftype = '',
    has_buftype = false,
  }
  if inline then
    rec.buftype = vim.api.nvim_get_option_value('buftype', { buf = b.bufnr })
    rec.has_buftype = true
  end
  table.insert(buffers, rec)
end
return { currentDir = vim.fn.getcwd(), alternateBufNr = vim.fn.bufnr('#'), buffers = buffers }
`

// bufferStateLua fetches live state for one buffer; found is false when
// getbufinfo returns nothing.
const bufferStateLua = `
local info = vim.fn.getbufinfo(...)[1]
if info == nil then
  return { found = false }
end
return { found = true, bufnr = info.bufnr, name = info.name, changed = info.changed == 1, listed = info.listed == 1 }
`

type wireBuffer struct {
	Bufnr      int    `msgpack:"bufnr"`
	Changed    bool   `msgpack:"changed"`
	LastUsed   int64  `msgpack:"lastused"`
	Listed     bool   `msgpack:"listed"`
	Name       string `msgpack:"name"`
	BufType    string `msgpack:"buftype"`
	HasBufType bool   `msgpack:"has_buftype"`
}

type wireInfo struct {
	CurrentDir     string       `msgpack:"currentDir"`
	AlternateBufNr int          `msgpack:"alternateBufNr"`
	Buffers        []wireBuffer `msgpack:"buffers"`
}

type wireState struct {
	Found   bool   `msgpack:"found"`
	Bufnr   int    `msgpack:"bufnr"`
	Name    string `msgpack:"name"`
	Changed bool   `msgpack:"changed"`
	Listed  bool   `msgpack:"listed"`
}

func (h *Host) BufferInfo(ctx context.Context) (host.BufferInfo, error) {
	if err := ctx.Err(); err != nil {
		return host.BufferInfo{}, err
	}
	var w wireInfo
	if err := h.v.ExecLua(bufferInfoLua, &w, h.opts.InlineKind); err != nil {
		return host.BufferInfo{}, fmt.Errorf("query buffers: %w", err)
	}
	return w.toBufferInfo(), nil
}

func (w wireInfo) toBufferInfo() host.BufferInfo {
	bufs := make([]model.BufferRecord, len(w.Buffers))
	for i, b := range w.Buffers {
		bufs[i] = model.BufferRecord{
			ID:        b.Bufnr,
			Modified:  b.Changed,
			LastUsed:  b.LastUsed,
			Listed:    b.Listed,
			Name:      b.Name,
			Kind:      b.BufType,
			KindKnown: b.HasBufType,
		}
	}
	return host.BufferInfo{
		WorkingDirectory: w.CurrentDir,
		AlternateID:      w.AlternateBufNr,
		Buffers:          bufs,
	}
}

func (h *Host) BufferKind(ctx context.Context, id int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var kind string
	if err := h.v.Call("getbufvar", &kind, id, "&buftype"); err != nil {
		return "", fmt.Errorf("getbufvar %d: %w", id, err)
	}
	return kind, nil
}

func (h *Host) BufferExists(ctx context.Context, id int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var n int
	if err := h.v.Call("bufexists", &n, id); err != nil {
		return false, fmt.Errorf("bufexists %d: %w", id, err)
	}
	return n != 0, nil
}

func (h *Host) BufferState(ctx context.Context, id int) (host.BufferState, bool, error) {
	if err := ctx.Err(); err != nil {
		return host.BufferState{}, false, err
	}
	var w wireState
	if err := h.v.ExecLua(bufferStateLua, &w, id); err != nil {
		return host.BufferState{}, false, fmt.Errorf("getbufinfo %d: %w", id, err)
	}
	if !w.Found {
		return host.BufferState{}, false, nil
	}
	return host.BufferState{ID: w.Bufnr, Name: w.Name, Modified: w.Changed, Listed: w.Listed}, true, nil
}

func (h *Host) Wipeout(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return h.v.Command(wipeoutCommand(id))
}

func wipeoutCommand(id int) string {
	return fmt.Sprintf("bwipeout! %d", id)
}

// Report shows msg in the editor's error area.
func (h *Host) Report(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return h.v.WritelnErr(msg)
}

func (h *Host) CurrentBuffer(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	b, err := h.v.CurrentBuffer()
	if err != nil {
		return 0, fmt.Errorf("current buffer: %w", err)
	}
	return int(b), nil
}
