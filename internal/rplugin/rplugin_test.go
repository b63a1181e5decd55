package rplugin

import (
	"context"
	"errors"
	"testing"

	"github.com/psacc/buflist/internal/action"
	"github.com/psacc/buflist/internal/host/hosttest"
	"github.com/psacc/buflist/internal/model"
	"github.com/psacc/buflist/internal/source"
)

func testHost() *hosttest.Fake {
	return &hosttest.Fake{
		Dir:       "/proj",
		Current:   2,
		Alternate: 1,
		Buffers: []model.BufferRecord{
			{ID: 1, LastUsed: 10, Listed: true, Name: "/proj/a.go", KindKnown: true},
			{ID: 2, LastUsed: 30, Listed: true, Name: "/proj/b.go", KindKnown: true},
			{ID: 3, LastUsed: 20, Listed: true, Name: "/proj/c.go", Modified: true, KindKnown: true},
		},
	}
}

func gatherIDs(t *testing.T, h *Handlers, args []map[string]interface{}) []int {
	t.Helper()
	items, err := h.Gather(args)
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.BufferID
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestGather_Defaults(t *testing.T) {
	h := NewHandlers(context.Background(), testHost(), source.DefaultParams())

	got := gatherIDs(t, h, nil)
	if want := []int{1, 3, 2}; !equalInts(got, want) {
		t.Errorf("ids = %v, want %v", got, want)
	}
}

func TestGather_ConfiguredDefaultOrder(t *testing.T) {
	h := NewHandlers(context.Background(), testHost(), source.Params{OrderBy: source.OrderDesc})

	got := gatherIDs(t, h, []map[string]interface{}{{}})
	if want := []int{3, 1, 2}; !equalInts(got, want) {
		t.Errorf("ids = %v, want %v (desc, current last)", got, want)
	}
}

func TestGather_Options(t *testing.T) {
	tests := []struct {
		name string
		opts map[string]interface{}
		want []int
	}{
		{name: "desc with host current", opts: map[string]interface{}{"orderby": "desc"}, want: []int{3, 1, 2}},
		{name: "desc with explicit current", opts: map[string]interface{}{"orderby": "desc", "current": int64(1)}, want: []int{2, 3, 1}},
		{name: "unknown orderby falls back to asc", opts: map[string]interface{}{"orderby": "mru"}, want: []int{1, 3, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandlers(context.Background(), testHost(), source.DefaultParams())
			got := gatherIDs(t, h, []map[string]interface{}{tt.opts})
			if !equalInts(got, tt.want) {
				t.Errorf("ids = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGather_Markers(t *testing.T) {
	h := NewHandlers(context.Background(), testHost(), source.DefaultParams())
	items, err := h.Gather(nil)
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	want := []string{" 1  #   a.go", " 3    + c.go", " 2  %   b.go"}
	for i, it := range items {
		if it.Label != want[i] {
			t.Errorf("items[%d].Label = %q, want %q", i, it.Label, want[i])
		}
	}
}

func TestGather_HostError(t *testing.T) {
	fake := testHost()
	fake.InfoErr = errors.New("E5108: lua error")
	h := NewHandlers(context.Background(), fake, source.DefaultParams())

	if _, err := h.Gather(nil); !errors.Is(err, fake.InfoErr) {
		t.Fatalf("Gather err = %v, want %v", err, fake.InfoErr)
	}
}

func TestGather_EmptyIsNotNil(t *testing.T) {
	h := NewHandlers(context.Background(), &hosttest.Fake{}, source.DefaultParams())
	items, err := h.Gather(nil)
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	if items == nil {
		t.Error("Gather returned nil, want an empty list for the editor")
	}
}

func TestDelete(t *testing.T) {
	fake := testHost()
	h := NewHandlers(context.Background(), fake, source.DefaultParams())

	items, err := h.Gather(nil)
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	// items are [1, 3(modified), 2]
	got, err := h.Delete(items)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got != action.FlagRefreshItems.String() {
		t.Errorf("Delete = %q, want refresh", got)
	}
	if fake.Has(1) || !fake.Has(3) || !fake.Has(2) {
		t.Errorf("wiped %v, want only buffer 1", fake.Wiped)
	}
	if len(fake.Reports) != 1 {
		t.Errorf("reports = %v, want the modified-buffer message", fake.Reports)
	}
}

func TestDelete_GoneReturnsNone(t *testing.T) {
	fake := testHost()
	h := NewHandlers(context.Background(), fake, source.DefaultParams())

	got, err := h.Delete([]model.ResultItem{{BufferID: 99, Path: "/gone"}})
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got != action.FlagNone.String() {
		t.Errorf("Delete = %q, want none", got)
	}
}

func TestActions(t *testing.T) {
	h := NewHandlers(context.Background(), testHost(), source.DefaultParams())
	names, err := h.Actions(nil)
	if err != nil {
		t.Fatalf("Actions: %v", err)
	}
	found := false
	for _, n := range names {
		if n == action.DeleteName {
			found = true
		}
	}
	if !found {
		t.Errorf("Actions() = %v, want it to include %q", names, action.DeleteName)
	}
}

func TestToInt(t *testing.T) {
	tests := []struct {
		in   interface{}
		want int
	}{
		{int(3), 3},
		{int64(4), 4},
		{uint64(5), 5},
		{float64(6), 6},
		{"7", 0},
		{nil, 0},
	}
	for _, tt := range tests {
		if got := toInt(tt.in); got != tt.want {
			t.Errorf("toInt(%#v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
