package treehash

// File hashing strategy constants
const (
	// LargeFileThreshold is the size in bytes above which files are hashed
	// through a read-only memory mapping instead of a single read
	LargeFileThreshold = 1024 * 1024

	// HashChunkSize is the chunk size used when feeding mapped file contents
	// to the incremental hash state
	HashChunkSize = 64 * 1024

	// DefaultHashBuffer is the buffer size for the streaming fallback path
	// used when a file cannot be memory-mapped
	DefaultHashBuffer = 2 * 1024 * 1024
)

// Hash type constants
const (
	HashTypeSHA256 uint16 = 1 // SHA-256 (32 bytes)
	HashTypeSHA512 uint16 = 2 // SHA-512 (64 bytes)
	HashTypeBLAKE3 uint16 = 3 // BLAKE3 (32 bytes)
)

// Hash size constants in bytes
const (
	HashSizeSHA256 = 32
	HashSizeSHA512 = 64
	HashSizeBLAKE3 = 32
)

// HashTypeName returns the human-readable name for a hash type
func HashTypeName(hashType uint16) string {
	switch hashType {
	case HashTypeSHA256:
		return "sha256"
	case HashTypeSHA512:
		return "sha512"
	case HashTypeBLAKE3:
		return "blake3"
	default:
		return "unknown"
	}
}
