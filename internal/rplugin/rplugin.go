// Package rplugin exposes the buffer source and its actions to Neovim as
// remote-plugin functions.
package rplugin

import (
	"context"
	"fmt"

	"github.com/neovim/go-client/nvim/plugin"

	"github.com/psacc/buflist/internal/action"
	"github.com/psacc/buflist/internal/host"
	nvimhost "github.com/psacc/buflist/internal/host/nvim"
	"github.com/psacc/buflist/internal/logx"
	"github.com/psacc/buflist/internal/model"
	"github.com/psacc/buflist/internal/source"
	"github.com/psacc/buflist/internal/source/buffer"
)

// Function names registered with Neovim.
const (
	FuncGather  = "BuflistGather"
	FuncDelete  = "BuflistDelete"
	FuncActions = "BuflistActions"
)

// OptionCurrent is the gather option carrying the caller's buffer number.
const OptionCurrent = "current"

// Handlers serve the remote-plugin functions against one host. ctx is the
// plugin process context; RPC handlers have none of their own.
type Handlers struct {
	ctx      context.Context
	host     host.Host
	defaults source.Params
}

// NewHandlers binds handlers to h. defaults apply when a call passes no
// orderby option.
func NewHandlers(ctx context.Context, h host.Host, defaults source.Params) *Handlers {
	return &Handlers{ctx: ctx, host: h, defaults: defaults}
}

// Register wires the handlers into p, talking back to the editor that
// started the plugin.
func Register(ctx context.Context, p *plugin.Plugin, opts nvimhost.Options, defaults source.Params) {
	h := NewHandlers(ctx, nvimhost.New(p.Nvim, opts), defaults)
	p.HandleFunction(&plugin.FunctionOptions{Name: FuncGather}, h.Gather)
	p.HandleFunction(&plugin.FunctionOptions{Name: FuncDelete}, h.Delete)
	p.HandleFunction(&plugin.FunctionOptions{Name: FuncActions}, h.Actions)
}

// Gather implements BuflistGather([{opts}]). Recognized options are
// "orderby" and "current"; a missing or zero current asks the host.
func (h *Handlers) Gather(args []map[string]interface{}) ([]model.ResultItem, error) {
	ctx := h.ctx
	log := logx.WithSource(logx.Ctx(ctx), buffer.Name)

	var opts source.Options
	if len(args) > 0 {
		opts = source.Options(args[0])
	}
	params := h.defaults
	if _, ok := opts[source.OptionOrderBy]; ok {
		var clean bool
		params, clean = source.ParamsFromOptions(opts)
		if !clean {
			log.Debug("orderby not recognized, using asc", "orderby", fmt.Sprint(opts[source.OptionOrderBy]))
		}
	}

	current := toInt(opts[OptionCurrent])
	if current == 0 {
		if cb, ok := h.host.(host.CurrentBuffer); ok {
			n, err := cb.CurrentBuffer(ctx)
			if err != nil {
				return nil, err
			}
			current = n
		}
	}

	src, ok := source.Get(buffer.Name)
	if !ok {
		return nil, fmt.Errorf("source %q not registered", buffer.Name)
	}
	items, err := src.Gather(ctx, h.host, source.GatherArgs{CurrentID: current, Params: params}).Collect(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.ResultItem{}
	}
	return items, nil
}

// Delete implements BuflistDelete(item...). It returns "refresh" when the
// caller should gather again, "none" otherwise.
func (h *Handlers) Delete(items []model.ResultItem) (string, error) {
	flag, err := action.Run(h.ctx, action.DeleteName, h.host, items)
	if err != nil {
		return "", err
	}
	return flag.String(), nil
}

// Actions implements BuflistActions().
func (h *Handlers) Actions(_ []interface{}) ([]string, error) {
	return action.Names(), nil
}

// toInt accepts the integer shapes msgpack decoding produces.
func toInt(v interface{}) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case uint64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}
