package treehash

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"unicode/utf8"
)

// EntryKind classifies a visited path for trace output
type EntryKind int

const (
	EntryFile EntryKind = iota
	EntryDir
	EntryLink
)

// Tag returns the fixed 4-character trace tag for the entry kind
func (k EntryKind) Tag() string {
	switch k {
	case EntryDir:
		return "DIR "
	case EntryLink:
		return "LINK"
	default:
		return "FILE"
	}
}

// HashResult pairs a filesystem path with its computed digest as lowercase hex
type HashResult struct {
	Path string
	Hash string
}

// TraceFunc receives one call per visited entry, in visitation order. It is
// purely observational and never affects the returned digests.
type TraceFunc func(kind EntryKind, path string, hexDigest string)

// NewWriterTrace returns a TraceFunc that writes one line per entry to w in
// the form "FILE /path -> digest"
func NewWriterTrace(w io.Writer) TraceFunc {
	var mu sync.Mutex
	return func(kind EntryKind, path string, hexDigest string) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintf(w, "%s %s -> %s\n", kind.Tag(), path, hexDigest)
	}
}

// Walker computes Merkle digests over filesystem trees. All configuration is
// fixed at construction; a Walker is safe for concurrent use and independent
// Walkers never interfere with each other.
type Walker struct {
	algorithm  *HashAlgorithm
	workers    int
	sem        chan struct{}
	trace      TraceFunc
	hashBuffer int
}

// NewWalker creates a Walker using the named hash algorithm and a worker pool
// of the given size. A non-positive worker count defaults to the host CPU
// core count.
func NewWalker(algorithmName string, workers int) (*Walker, error) {
	algorithm, err := GetHashAlgorithm(algorithmName)
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Walker{
		algorithm:  algorithm,
		workers:    workers,
		sem:        make(chan struct{}, workers),
		hashBuffer: DefaultHashBuffer,
	}, nil
}

// SetTrace installs a trace sink called once per visited entry
func (w *Walker) SetTrace(trace TraceFunc) {
	w.trace = trace
}

// SetHashBuffer sets the buffer size for the streaming fallback read path
func (w *Walker) SetHashBuffer(size int) {
	if size > 0 {
		w.hashBuffer = size
	}
}

// Algorithm returns the hash algorithm the Walker was constructed with
func (w *Walker) Algorithm() *HashAlgorithm {
	return w.algorithm
}

// Workers returns the configured worker pool size
func (w *Walker) Workers() int {
	return w.workers
}

func (w *Walker) emitTrace(kind EntryKind, path string, hexDigest string) {
	if w.trace != nil {
		w.trace(kind, path, hexDigest)
	}
}

// HashPath hashes a path (file, directory, or symlink) and returns its
// digest. The path is classified without following symlinks, so a symlink is
// hashed by its target string, never dereferenced. All failures are
// *PathError values carrying the offending path.
func (w *Walker) HashPath(path string) (*HashResult, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, pathErr(ErrMetadata, path, err)
	}

	mode := info.Mode()
	switch {
	case mode&os.ModeSymlink != 0:
		hash, err := w.hashSymlinkTarget(path)
		if err != nil {
			return nil, err
		}
		w.emitTrace(EntryLink, path, hash)
		return &HashResult{Path: path, Hash: hash}, nil

	case mode.IsRegular():
		hash, err := w.hashFile(path, info.Size())
		if err != nil {
			return nil, err
		}
		w.emitTrace(EntryFile, path, hash)
		return &HashResult{Path: path, Hash: hash}, nil

	case mode.IsDir():
		return w.hashDirectory(path)

	default:
		return nil, pathErr(ErrUnsupportedType, path, fmt.Errorf("mode %v", mode))
	}
}

// hashDirectory hashes a directory by hashing each child and combining the
// sorted (name, digest) pairs into one digest
func (w *Walker) hashDirectory(path string) (*HashResult, error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, pathErr(ErrEnumeration, path, err)
	}

	// Sort by raw filename bytes before any hashing begins, so results can
	// be combined in this order no matter how children are dispatched.
	// Go string comparison is byte-wise, never locale-aware.
	sort.Slice(dirEntries, func(i, j int) bool {
		return dirEntries[i].Name() < dirEntries[j].Name()
	})

	for _, entry := range dirEntries {
		if !utf8.ValidString(entry.Name()) {
			return nil, pathErr(ErrInvalidEncoding, filepath.Join(path, entry.Name()), nil)
		}
	}

	if IsDebugEnabled("walk") {
		VerboseLog(3, "hashDirectory: %s with %d children", path, len(dirEntries))
	}

	results := make([]*HashResult, len(dirEntries))
	if len(dirEntries) > w.workers {
		if err := w.hashChildrenParallel(path, dirEntries, results); err != nil {
			return nil, err
		}
	} else {
		for i, entry := range dirEntries {
			result, err := w.HashPath(filepath.Join(path, entry.Name()))
			if err != nil {
				return nil, err
			}
			results[i] = result
		}
	}

	combined := make([]DirectoryEntry, len(dirEntries))
	for i, entry := range dirEntries {
		combined[i] = DirectoryEntry{Name: entry.Name(), Hash: results[i].Hash}
	}
	hash := CombineEntries(combined, w.algorithm)

	w.emitTrace(EntryDir, path, hash)
	return &HashResult{Path: path, Hash: hash}, nil
}

// hashChildrenParallel hashes the already-sorted children of a directory
// concurrently, bounded by the worker pool, and gathers results indexed by
// sorted position so completion order never affects the combined digest. The
// first child error aborts the aggregation; siblings not yet dispatched are
// skipped, in-flight siblings finish but their results are discarded.
func (w *Walker) hashChildrenParallel(path string, dirEntries []os.DirEntry, results []*HashResult) error {
	var wg sync.WaitGroup
	var aborted atomic.Bool
	errs := make([]error, len(dirEntries))

	for i, entry := range dirEntries {
		if aborted.Load() {
			break
		}

		childPath := filepath.Join(path, entry.Name())
		select {
		case w.sem <- struct{}{}:
			wg.Add(1)
			go func(i int, childPath string) {
				defer wg.Done()
				defer func() { <-w.sem }()
				result, err := w.HashPath(childPath)
				if err != nil {
					errs[i] = err
					aborted.Store(true)
					return
				}
				results[i] = result
			}(i, childPath)
		default:
			// No free worker slot; hash on the calling goroutine. This
			// keeps total concurrency bounded without the fork-join
			// recursion ever deadlocking on pool exhaustion.
			result, err := w.HashPath(childPath)
			if err != nil {
				errs[i] = err
				aborted.Store(true)
			} else {
				results[i] = result
			}
		}
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
