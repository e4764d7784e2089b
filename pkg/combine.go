package treehash

import (
	"encoding/hex"
)

// DirectoryEntry pairs a child's filename with its lowercase hex digest
type DirectoryEntry struct {
	Name string
	Hash string
}

// CombineEntries produces a directory's digest from its child entries. The
// entries must already be sorted by raw filename bytes; each one contributes
// the exact byte sequence "name hash\n" to a single running hash state
// (similar to git tree objects). Filenames cannot legally contain newlines,
// so the serialization is unambiguous, and the combined digest is sensitive
// to both entry identity and entry order.
func CombineEntries(entries []DirectoryEntry, algorithm *HashAlgorithm) string {
	hasher := algorithm.NewFunc()
	for _, entry := range entries {
		hasher.Write([]byte(entry.Name))
		hasher.Write([]byte{' '})
		hasher.Write([]byte(entry.Hash))
		hasher.Write([]byte{'\n'})
	}
	return hex.EncodeToString(hasher.Sum(nil))
}
