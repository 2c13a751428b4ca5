package lowzip

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndexLookupMatchesLocateFileByName(t *testing.T) {
	archive := buildTestZip([]zipEntrySpec{
		{name: "a.txt", data: []byte("aaa"), method: methodStore},
		{name: "b/c.txt", data: []byte("bbb"), method: methodStore},
	})
	d := NewDecoder(NewSliceSource(archive), uint32(len(archive)))
	require.NoError(t, d.InitArchive())

	idx, err := d.BuildIndex()
	require.NoError(t, err)

	fe, err := idx.Lookup("b/c.txt")
	require.NoError(t, err)
	require.Equal(t, "b/c.txt", fe.Name)

	_, err = idx.Lookup("missing")
	require.ErrorIs(t, err, ErrNotFound)
}
