package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/psacc/buflist/internal/host"
)

// Order selects how items are sorted by last use.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// OptionOrderBy is the options key selecting the order.
const OptionOrderBy = "orderby"

// Options is the untyped option map handed in by the front end.
type Options map[string]any

// Params are the typed source parameters.
type Params struct {
	OrderBy Order
}

// DefaultParams returns the parameters used when no options are given.
func DefaultParams() Params {
	return Params{OrderBy: OrderAsc}
}

// InvalidOrderError is returned by ParseOrder for values other than asc/desc.
type InvalidOrderError struct {
	Value string
}

func (e *InvalidOrderError) Error() string {
	return fmt.Sprintf("invalid orderby %q, expected one of: asc, desc", e.Value)
}

// ParseOrder validates an order string. Empty means asc.
func ParseOrder(s string) (Order, error) {
	switch Order(strings.ToLower(strings.TrimSpace(s))) {
	case "", OrderAsc:
		return OrderAsc, nil
	case OrderDesc:
		return OrderDesc, nil
	default:
		return "", &InvalidOrderError{Value: s}
	}
}

// ParamsFromOptions reads Params out of an option map. Unrecognized keys are
// ignored and any orderby other than "desc" falls back to asc; the second
// return is false when such a fallback happened.
func ParamsFromOptions(opts Options) (Params, bool) {
	p := DefaultParams()
	raw, ok := opts[OptionOrderBy]
	if !ok || raw == nil {
		return p, true
	}
	s, isString := raw.(string)
	if !isString {
		return p, false
	}
	order, err := ParseOrder(s)
	if err != nil {
		return p, false
	}
	p.OrderBy = order
	return p, true
}

// GatherArgs is the per-request context a source gathers against.
type GatherArgs struct {
	// CurrentID is the buffer active in the caller's window. Zero means none.
	CurrentID int
	Params    Params
}

// Source produces items for the selection front end.
type Source interface {
	// Name returns the source identifier ("buffer").
	Name() string

	// Kind is the item kind downstream actions expect ("file").
	Kind() string

	// Gather returns a stream that yields the full list once, then ends.
	Gather(ctx context.Context, h host.Host, args GatherArgs) *Stream
}
