// Package treehash computes a deterministic Merkle digest for a filesystem
// path: one fixed-size hash that identifies the content and structure beneath
// a file or directory tree.
//
// # Core API
//
// The main entry point is Walker, which owns the traversal configuration:
//
//	w, err := treehash.NewWalker("sha256", runtime.NumCPU())
//	if err != nil {
//		return err
//	}
//	result, err := w.HashPath("/path/to/tree")
//	fmt.Println(result.Hash)
//
// A directory's digest is a hash over its sorted children, serialized one
// entry per line as "name hash\n" (similar to git tree objects). Files are
// hashed by content, symlinks by their raw target path. The same tree always
// yields the same root digest regardless of worker count or the order the
// filesystem enumerates entries in.
//
// # Configuration
//
// Worker count and hash algorithm are fixed at Walker construction; multiple
// Walkers with different configurations can run independently. Optional
// settings come from an INI config file via LoadConfig:
//
//	cfg, err := treehash.LoadConfig("/home/user/.config/treehash")
//	perf := cfg.GetPerformanceConfig()
//
// Enable debug output:
//
//	treehash.SetDebugFlags("walk,hash")
//	treehash.SetVerboseLevel(2)
//
// # Errors
//
// All failures surface as *PathError carrying the offending path and a Kind
// (ErrIO, ErrEnumeration, ErrUnsupportedType, ErrInvalidEncoding,
// ErrMetadata). No error is retried or swallowed; a directory's digest is
// never reported if any descendant failed.
package treehash
