package buffer

import (
	"testing"

	"github.com/psacc/buflist/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		rec  model.BufferRecord
		want model.Class
	}{
		{
			name: "unnamed",
			rec:  model.BufferRecord{KindKnown: true},
			want: model.ClassUnnamed,
		},
		{
			name: "absolute unix path",
			rec:  model.BufferRecord{Name: "/proj/src/a.ts", KindKnown: true},
			want: model.ClassPath,
		},
		{
			name: "relative path",
			rec:  model.BufferRecord{Name: "src/a.ts"},
			want: model.ClassPath,
		},
		{
			name: "terminal by kind",
			rec:  model.BufferRecord{Name: "term://~/proj//1234:/bin/zsh", Kind: "terminal", KindKnown: true},
			want: model.ClassTerminal,
		},
		{
			name: "terminal by kind without term prefix",
			rec:  model.BufferRecord{Name: "!/bin/bash", Kind: "terminal", KindKnown: true},
			want: model.ClassTerminal,
		},
		{
			name: "terminal by prefix when kind unknown",
			rec:  model.BufferRecord{Name: "term://~//99:/bin/sh"},
			want: model.ClassTerminal,
		},
		{
			name: "term prefix ignored when kind says otherwise",
			rec:  model.BufferRecord{Name: "term://notes", Kind: "", KindKnown: true},
			want: model.ClassURI,
		},
		{
			name: "url-like name",
			rec:  model.BufferRecord{Name: "fugitive:///proj/.git//0/a.go", KindKnown: true},
			want: model.ClassURI,
		},
		{
			name: "windows drive path with slash is a path",
			rec:  model.BufferRecord{Name: "C:/Users/me/a.go", KindKnown: true},
			want: model.ClassPath,
		},
		{
			name: "windows drive path with backslash is a path",
			rec:  model.BufferRecord{Name: `D:\work\b.go`, KindKnown: true},
			want: model.ClassPath,
		},
		{
			name: "unc path is a path",
			rec:  model.BufferRecord{Name: `\\server\share\c.go`, KindKnown: true},
			want: model.ClassPath,
		},
		{
			name: "unnamed terminal stays terminal",
			rec:  model.BufferRecord{Kind: "terminal", KindKnown: true},
			want: model.ClassTerminal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.rec); got != tt.want {
				t.Errorf("Classify(%+v) = %v, want %v", tt.rec, got, tt.want)
			}
		})
	}
}

func TestRelativize(t *testing.T) {
	tests := []struct {
		name string
		dir  string
		path string
		want string
	}{
		{name: "inside dir", dir: "/proj", path: "/proj/src/a.ts", want: "src/a.ts"},
		{name: "outside dir keeps absolute", dir: "/proj", path: "/other/b.ts", want: "/other/b.ts"},
		{name: "sibling prefix keeps absolute", dir: "/proj", path: "/project/c.ts", want: "/project/c.ts"},
		{name: "parent keeps absolute", dir: "/proj/sub", path: "/proj", want: "/proj"},
		{name: "dir itself keeps absolute", dir: "/proj", path: "/proj", want: "/proj"},
		{name: "dir with trailing slash keeps absolute", dir: "/proj", path: "/proj/", want: "/proj/"},
		{name: "no dir", dir: "", path: "/proj/a.ts", want: "/proj/a.ts"},
		{name: "relative path untouched", dir: "/proj", path: "a.ts", want: "a.ts"},
		{name: "dotdot-prefixed file name inside dir", dir: "/proj", path: "/proj/..hidden", want: "..hidden"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := relativize(tt.dir, tt.path); got != tt.want {
				t.Errorf("relativize(%q, %q) = %q, want %q", tt.dir, tt.path, got, tt.want)
			}
		})
	}
}

func TestDisplayBody(t *testing.T) {
	tests := []struct {
		name string
		rec  model.BufferRecord
		want string
	}{
		{name: "unnamed", rec: model.BufferRecord{}, want: model.NoName},
		{name: "path relativized", rec: model.BufferRecord{Name: "/proj/src/a.ts"}, want: "src/a.ts"},
		{name: "terminal verbatim", rec: model.BufferRecord{Name: "term:///proj//1:/bin/sh"}, want: "term:///proj//1:/bin/sh"},
		{name: "uri verbatim", rec: model.BufferRecord{Name: "oil:///proj/src/", KindKnown: true}, want: "oil:///proj/src/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := displayBody(tt.rec, Classify(tt.rec), "/proj")
			if got != tt.want {
				t.Errorf("displayBody = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatLabel(t *testing.T) {
	tests := []struct {
		name      string
		id        int
		current   bool
		alternate bool
		modified  bool
		body      string
		want      string
	}{
		{name: "plain", id: 3, body: "a.go", want: " 3      a.go"},
		{name: "current", id: 3, current: true, body: "a.go", want: " 3  %   a.go"},
		{name: "alternate modified", id: 12, alternate: true, modified: true, body: "b.go", want: "12  # + b.go"},
		{name: "current and alternate", id: 5, current: true, alternate: true, body: "c.go", want: " 5 %#   c.go"},
		{name: "wide id", id: 123, modified: true, body: model.NoName, want: "123    + [No Name]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatLabel(tt.id, tt.current, tt.alternate, tt.modified, tt.body)
			if got != tt.want {
				t.Errorf("formatLabel = %q, want %q", got, tt.want)
			}
		})
	}
}
