package model

// BufferKindTerminal is the host's buffer type for terminal buffers.
const BufferKindTerminal = "terminal"

// NoName is the label body shown for buffers without a name.
const NoName = "[No Name]"

// BufferRecord is one buffer as reported by the host. It is a read-only
// snapshot; nothing here is refreshed after collection.
type BufferRecord struct {
	ID       int    `json:"bufnr"`
	Modified bool   `json:"changed"`
	LastUsed int64  `json:"lastused"`
	Listed   bool   `json:"listed"`
	Name     string `json:"name"`

	// Kind is the host's buffer type ("terminal", "nofile", ...). KindKnown
	// separates an ordinary buffer ("" from the host) from a host that never
	// told us.
	Kind      string `json:"buftype,omitempty"`
	KindKnown bool   `json:"-"`
}

// Snapshot is the per-request view of the host's buffer list.
type Snapshot struct {
	WorkingDirectory string         `json:"currentDir"`
	CurrentID        int            `json:"currentBufNr"`
	AlternateID      int            `json:"alternateBufNr"`
	Buffers          []BufferRecord `json:"buffers"`
}

// Class is the display classification of a buffer name.
type Class int

const (
	ClassUnnamed  Class = iota // empty name
	ClassPath                  // filesystem path, relativized for display
	ClassTerminal              // terminal pseudo-path, shown verbatim
	ClassURI                   // URL-like name (scheme://...), shown verbatim
)

func (c Class) String() string {
	switch c {
	case ClassUnnamed:
		return "unnamed"
	case ClassPath:
		return "path"
	case ClassTerminal:
		return "terminal"
	case ClassURI:
		return "uri"
	default:
		return "unknown"
	}
}

// ResultItem is one rendered line plus the data actions need to act on it.
// Field names on the wire follow the action data the editor side expects.
type ResultItem struct {
	Label       string `json:"word" msgpack:"word"`
	BufferID    int    `json:"bufNr" msgpack:"bufNr"`
	Path        string `json:"path" msgpack:"path"`
	IsCurrent   bool   `json:"isCurrent" msgpack:"isCurrent"`
	IsAlternate bool   `json:"isAlternate" msgpack:"isAlternate"`
	IsModified  bool   `json:"isModified" msgpack:"isModified"`
	IsTerminal  bool   `json:"isTerminal" msgpack:"isTerminal"`
	BufferKind  string `json:"bufferKind" msgpack:"bufferKind"`
	LastUsed    int64  `json:"lastUsed" msgpack:"lastUsed"`
}

// DisplayPath returns the recorded path, or NoName for unnamed buffers.
func (r ResultItem) DisplayPath() string {
	if r.Path == "" {
		return NoName
	}
	return r.Path
}
