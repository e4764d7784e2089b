package treehash

import "fmt"

// ErrKind classifies a traversal failure
type ErrKind int

const (
	// ErrIO indicates an open/read/mmap failure on a file
	ErrIO ErrKind = iota + 1
	// ErrEnumeration indicates a directory listing failure
	ErrEnumeration
	// ErrUnsupportedType indicates a path that is neither file, directory,
	// nor symlink (e.g. a device node or FIFO)
	ErrUnsupportedType
	// ErrInvalidEncoding indicates a symlink target or filename that is not
	// valid UTF-8
	ErrInvalidEncoding
	// ErrMetadata indicates the path could not be stat'd at all, including
	// the root path not existing
	ErrMetadata
)

// String returns the human-readable name of the error kind
func (k ErrKind) String() string {
	switch k {
	case ErrIO:
		return "io error"
	case ErrEnumeration:
		return "enumeration failed"
	case ErrUnsupportedType:
		return "unsupported file type"
	case ErrInvalidEncoding:
		return "invalid encoding"
	case ErrMetadata:
		return "metadata error"
	default:
		return "unknown error"
	}
}

// PathError is the error type returned by all hashing operations. It always
// carries the offending path so failures deep in a tree remain diagnosable.
type PathError struct {
	Kind ErrKind
	Path string
	Err  error
}

func (e *PathError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Path)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

func pathErr(kind ErrKind, path string, err error) *PathError {
	return &PathError{Kind: kind, Path: path, Err: err}
}
