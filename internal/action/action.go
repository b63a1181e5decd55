package action

import (
	"context"
	"fmt"
	"sort"

	"github.com/psacc/buflist/internal/host"
	"github.com/psacc/buflist/internal/model"
)

// Flag tells the caller what to do after an action ran.
type Flag int

const (
	FlagNone         Flag = iota // nothing changed
	FlagRefreshItems             // items changed; gather again
)

func (f Flag) String() string {
	if f == FlagRefreshItems {
		return "refresh"
	}
	return "none"
}

// Action operates on items a source produced earlier.
type Action interface {
	// Name returns the action identifier ("delete").
	Name() string

	// Do runs the action. Failures are reported, never returned; the flag
	// says whether the list needs to be gathered again.
	Do(ctx context.Context, h host.Host, items []model.ResultItem) Flag
}

var registry = map[string]Action{}

// Register adds an action to the global registry.
// Called from each action's init() function.
func Register(a Action) {
	registry[a.Name()] = a
}

// Get returns the action registered under name, or nil and false if none is.
func Get(name string) (Action, bool) {
	a, ok := registry[name]
	return a, ok
}

// Names returns the registered action names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run looks up name and runs it.
func Run(ctx context.Context, name string, h host.Host, items []model.ResultItem) (Flag, error) {
	a, ok := Get(name)
	if !ok {
		return FlagNone, &UnknownActionError{Name: name}
	}
	return a.Do(ctx, h, items), nil
}

// UnknownActionError is returned by Run for names nothing registered.
type UnknownActionError struct {
	Name string
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("unknown action %q", e.Name)
}
