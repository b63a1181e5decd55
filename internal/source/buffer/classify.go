package buffer

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/psacc/buflist/internal/model"
)

// terminalPrefix is how terminal buffers are named when the host does not
// expose a buffer type.
const terminalPrefix = "term://"

// Classify decides how a record is displayed. Terminal wins over everything,
// then unnamed, then URL-like names; anything else is a path.
func Classify(rec model.BufferRecord) model.Class {
	if isTerminal(rec) {
		return model.ClassTerminal
	}
	if rec.Name == "" {
		return model.ClassUnnamed
	}
	if isURILike(rec.Name) {
		return model.ClassURI
	}
	return model.ClassPath
}

func isTerminal(rec model.BufferRecord) bool {
	if rec.KindKnown {
		return rec.Kind == model.BufferKindTerminal
	}
	return strings.HasPrefix(rec.Name, terminalPrefix)
}

// isURILike reports whether name has a URL scheme. Absolute paths are never
// URL-like: "C:/src/a.go" parses as scheme "c".
func isURILike(name string) bool {
	if isAbsPath(name) {
		return false
	}
	u, err := url.Parse(name)
	return err == nil && u.Scheme != ""
}

func isAbsPath(p string) bool {
	if filepath.IsAbs(p) || strings.HasPrefix(p, `\\`) {
		return true
	}
	if len(p) >= 3 && p[1] == ':' && (p[2] == '\\' || p[2] == '/') {
		c := p[0]
		return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
	}
	return false
}

// displayBody is the part of the label after the markers.
func displayBody(rec model.BufferRecord, class model.Class, dir string) string {
	if rec.Name == "" {
		return model.NoName
	}
	if class != model.ClassPath {
		return rec.Name
	}
	return relativize(dir, rec.Name)
}

// relativize returns p relative to dir, or p itself when p is dir or lies
// above it.
func relativize(dir, p string) string {
	if dir == "" || !filepath.IsAbs(p) {
		return p
	}
	rel, err := filepath.Rel(dir, p)
	if err != nil {
		return p
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return p
	}
	return rel
}

// formatLabel renders "<id> <marks> <mod> <body>" with the id and the
// current/alternate marks right-aligned in two columns.
func formatLabel(id int, current, alternate, modified bool, body string) string {
	var marks string
	if current {
		marks += "%"
	}
	if alternate {
		marks += "#"
	}
	mod := " "
	if modified {
		mod = "+"
	}
	return fmt.Sprintf("%2d %2s %s %s", id, marks, mod, body)
}
