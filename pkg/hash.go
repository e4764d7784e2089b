package treehash

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"strings"

	"github.com/zeebo/blake3"
)

// HashAlgorithm represents a hash algorithm configuration
type HashAlgorithm struct {
	Name    string
	TypeID  uint16
	Size    int
	NewFunc func() hash.Hash
}

// GetHashAlgorithm returns the hash algorithm configuration for the given name
func GetHashAlgorithm(name string) (*HashAlgorithm, error) {
	switch strings.ToLower(name) {
	case "sha256":
		return &HashAlgorithm{
			Name:    "sha256",
			TypeID:  HashTypeSHA256,
			Size:    HashSizeSHA256,
			NewFunc: func() hash.Hash { return sha256.New() },
		}, nil
	case "sha512":
		return &HashAlgorithm{
			Name:    "sha512",
			TypeID:  HashTypeSHA512,
			Size:    HashSizeSHA512,
			NewFunc: func() hash.Hash { return sha512.New() },
		}, nil
	case "blake3":
		return &HashAlgorithm{
			Name:    "blake3",
			TypeID:  HashTypeBLAKE3,
			Size:    HashSizeBLAKE3,
			NewFunc: func() hash.Hash { return blake3.New() },
		}, nil
	default:
		return nil, fmt.Errorf("unsupported hash algorithm: %s", name)
	}
}

// GetHashAlgorithmByType returns the hash algorithm configuration for the given type ID
func GetHashAlgorithmByType(typeID uint16) (*HashAlgorithm, error) {
	switch typeID {
	case HashTypeSHA256:
		return GetHashAlgorithm("sha256")
	case HashTypeSHA512:
		return GetHashAlgorithm("sha512")
	case HashTypeBLAKE3:
		return GetHashAlgorithm("blake3")
	default:
		return nil, fmt.Errorf("unsupported hash type ID: %d", typeID)
	}
}

// HashBytesToHexString calculates the hash of a byte buffer in one pass and
// returns it as a lowercase hex string
func HashBytesToHexString(data []byte, algorithm *HashAlgorithm) string {
	hasher := algorithm.NewFunc()
	hasher.Write(data)
	return hex.EncodeToString(hasher.Sum(nil))
}

// HashStringToHexString calculates the hash of a string and returns it as a hex string
func HashStringToHexString(data string, algorithm *HashAlgorithm) string {
	return HashBytesToHexString([]byte(data), algorithm)
}

// HashChunksToHexString feeds data to the hash state in chunkSize pieces via
// the incremental update path. The result is identical to
// HashBytesToHexString for the same bytes regardless of chunk boundaries.
func HashChunksToHexString(data []byte, chunkSize int, algorithm *HashAlgorithm) string {
	hasher := algorithm.NewFunc()
	for offset := 0; offset < len(data); offset += chunkSize {
		end := offset + chunkSize
		if end > len(data) {
			end = len(data)
		}
		hasher.Write(data[offset:end])
	}
	return hex.EncodeToString(hasher.Sum(nil))
}
