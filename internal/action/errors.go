package action

import "fmt"

// BufferGoneError means the buffer was closed after the list was gathered.
type BufferGoneError struct {
	ID   int
	Path string
}

func (e *BufferGoneError) Error() string {
	return fmt.Sprintf("the buffer doesn't exist: %d: %s", e.ID, e.Path)
}

// BufferModifiedError means the buffer has unsaved changes and was left open.
type BufferModifiedError struct {
	ID   int
	Path string
}

func (e *BufferModifiedError) Error() string {
	return fmt.Sprintf("can't delete the modified buffer: %d: %s", e.ID, e.Path)
}
