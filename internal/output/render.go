package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/psacc/buflist/internal/action"
	"github.com/psacc/buflist/internal/model"
)

// Format represents the output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// Styles.
var (
	styleCurrent  = lipgloss.NewStyle().Bold(true)
	styleModified = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // yellow
	styleTerminal = lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // cyan
	styleFaint    = lipgloss.NewStyle().Faint(true)
)

// RenderItems outputs items in the given format. color only affects the
// table format.
func RenderItems(w io.Writer, items []model.ResultItem, format Format, color bool) error {
	switch format {
	case FormatJSON:
		if items == nil {
			items = []model.ResultItem{}
		}
		return renderJSON(w, items)
	default:
		return renderLines(w, items, color)
	}
}

func renderLines(w io.Writer, items []model.ResultItem, color bool) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "No buffers listed.")
		return err
	}
	for _, it := range items {
		line := it.Label
		if color {
			line = styleFor(it).Render(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// styleFor picks one style per line; current beats modified beats terminal.
func styleFor(it model.ResultItem) lipgloss.Style {
	switch {
	case it.IsCurrent:
		return styleCurrent
	case it.IsModified:
		return styleModified
	case it.IsTerminal:
		return styleTerminal
	case it.Path == "":
		return styleFaint
	default:
		return lipgloss.NewStyle()
	}
}

// DeleteResult is the JSON shape of a delete outcome.
type DeleteResult struct {
	Flag   string `json:"flag"`
	Closed []int  `json:"closed"`
	Error  string `json:"error,omitempty"`
}

// RenderOutcome outputs the result of a delete batch.
func RenderOutcome(w io.Writer, out action.Outcome, format Format) error {
	res := DeleteResult{Flag: out.Flag.String(), Closed: out.Closed}
	if res.Closed == nil {
		res.Closed = []int{}
	}
	if out.Err != nil {
		res.Error = out.Err.Error()
	}

	if format == FormatJSON {
		return renderJSON(w, res)
	}
	for _, id := range res.Closed {
		if _, err := fmt.Fprintf(w, "closed %d\n", id); err != nil {
			return err
		}
	}
	if res.Error != "" {
		if _, err := fmt.Fprintf(w, "stopped: %s\n", res.Error); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, res.Flag)
	return err
}

// RenderNames outputs one name per line.
func RenderNames(w io.Writer, names []string, format Format) error {
	if format == FormatJSON {
		if names == nil {
			names = []string{}
		}
		return renderJSON(w, names)
	}
	for _, n := range names {
		if _, err := fmt.Fprintln(w, n); err != nil {
			return err
		}
	}
	return nil
}

func renderJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
