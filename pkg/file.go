package treehash

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/sys/unix"
)

// hashSmallFile hashes a file by reading it entirely into memory in one
// operation. Also covers empty files (zero bytes hashed).
func (w *Walker) hashSmallFile(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", pathErr(ErrIO, filePath, err)
	}
	return HashBytesToHexString(data, w.algorithm), nil
}

// hashLargeFile hashes a file through a read-only memory mapping, feeding the
// mapped contents to the hash state in HashChunkSize pieces. The mapping is
// released when the call returns on any exit path. Chunking never changes the
// resulting digest.
func (w *Walker) hashLargeFile(filePath string, size int64) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", pathErr(ErrIO, filePath, err)
	}
	defer file.Close()

	data, err := unix.Mmap(int(file.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		// Some filesystems refuse mmap; stream the contents instead. The
		// digest is identical either way.
		if IsDebugEnabled("hash") {
			VerboseLog(3, "hashLargeFile: mmap failed for %s, falling back to streaming: %v", filePath, err)
		}
		return w.hashFileStreaming(file, filePath)
	}
	defer unix.Munmap(data)

	hasher := w.algorithm.NewFunc()
	for offset := 0; offset < len(data); offset += HashChunkSize {
		end := offset + HashChunkSize
		if end > len(data) {
			end = len(data)
		}
		hasher.Write(data[offset:end])
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// hashFileStreaming hashes an open file with buffered sequential reads
func (w *Walker) hashFileStreaming(file *os.File, filePath string) (string, error) {
	hasher := w.algorithm.NewFunc()
	buffer := make([]byte, w.hashBuffer)

	for {
		n, err := file.Read(buffer)
		if n > 0 {
			hasher.Write(buffer[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", pathErr(ErrIO, filePath, err)
		}
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// hashFile hashes a regular file's contents, choosing the strategy by size
func (w *Walker) hashFile(filePath string, size int64) (string, error) {
	if size <= LargeFileThreshold {
		return w.hashSmallFile(filePath)
	}
	return w.hashLargeFile(filePath, size)
}

// hashSymlinkTarget calculates the hash of a symlink's raw target path
// string. The target file is never read or followed.
func (w *Walker) hashSymlinkTarget(symlinkPath string) (string, error) {
	targetPath, err := os.Readlink(symlinkPath)
	if err != nil {
		return "", pathErr(ErrIO, symlinkPath, err)
	}
	if !utf8.ValidString(targetPath) {
		return "", pathErr(ErrInvalidEncoding, symlinkPath, nil)
	}
	return HashStringToHexString(targetPath, w.algorithm), nil
}

// HashFileToHexString hashes a single regular file with the given algorithm
// using the same size-based strategy selection as a full traversal.
// Convenience wrapper for callers that do not need a Walker; symlinks and
// other non-regular paths are rejected, use Walker.HashPath for those.
func HashFileToHexString(filePath string, algorithm *HashAlgorithm) (string, error) {
	info, err := os.Lstat(filePath)
	if err != nil {
		return "", pathErr(ErrMetadata, filePath, err)
	}
	if !info.Mode().IsRegular() {
		return "", pathErr(ErrUnsupportedType, filePath, fmt.Errorf("mode %v", info.Mode()))
	}
	w := &Walker{algorithm: algorithm, workers: 1, hashBuffer: DefaultHashBuffer}
	return w.hashFile(filePath, info.Size())
}
