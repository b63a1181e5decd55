package source

var registry []Source

// Register adds a source to the global registry.
// Called from each source's init() function.
func Register(s Source) {
	registry = append(registry, s)
}

// All returns all registered sources.
func All() []Source {
	return registry
}

// Get returns the first source registered under name.
func Get(name string) (Source, bool) {
	for _, s := range registry {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}
