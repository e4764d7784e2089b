package treehash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCombineEntries(t *testing.T) {
	algorithm, err := GetHashAlgorithm("sha256")
	require.NoError(t, err)

	digestA := HashStringToHexString("content a", algorithm)
	digestB := HashStringToHexString("content b", algorithm)

	entries := []DirectoryEntry{
		{Name: "a.txt", Hash: digestA},
		{Name: "b.txt", Hash: digestB},
	}

	t.Run("MatchesManualSerialization", func(t *testing.T) {
		serialized := "a.txt " + digestA + "\n" + "b.txt " + digestB + "\n"
		expected := HashStringToHexString(serialized, algorithm)
		require.Equal(t, expected, CombineEntries(entries, algorithm))
	})

	t.Run("Deterministic", func(t *testing.T) {
		require.Equal(t, CombineEntries(entries, algorithm), CombineEntries(entries, algorithm))
	})

	t.Run("OrderSensitive", func(t *testing.T) {
		swapped := []DirectoryEntry{entries[1], entries[0]}
		require.NotEqual(t, CombineEntries(entries, algorithm), CombineEntries(swapped, algorithm))
	})

	t.Run("NameSensitive", func(t *testing.T) {
		renamed := []DirectoryEntry{
			{Name: "a2.txt", Hash: digestA},
			{Name: "b.txt", Hash: digestB},
		}
		require.NotEqual(t, CombineEntries(entries, algorithm), CombineEntries(renamed, algorithm))
	})

	t.Run("DigestSensitive", func(t *testing.T) {
		modified := []DirectoryEntry{
			{Name: "a.txt", Hash: HashStringToHexString("content a changed", algorithm)},
			{Name: "b.txt", Hash: digestB},
		}
		require.NotEqual(t, CombineEntries(entries, algorithm), CombineEntries(modified, algorithm))
	})

	t.Run("EmptyList", func(t *testing.T) {
		// An empty directory combines to the digest of zero bytes
		require.Equal(t, emptySHA256, CombineEntries(nil, algorithm))
	})
}
