package lowzip

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenReturnsDecodedContent(t *testing.T) {
	archive := buildTestZip([]zipEntrySpec{
		{name: "greeting.txt", data: []byte("hi there"), method: methodStore},
	})
	d := NewDecoder(NewSliceSource(archive), uint32(len(archive)))
	require.NoError(t, d.InitArchive())

	r, err := d.Open("greeting.txt")
	require.NoError(t, err)
	defer r.Close()

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "hi there", string(got))
}

func TestOpenMissingEntry(t *testing.T) {
	archive := buildTestZip(nil)
	d := NewDecoder(NewSliceSource(archive), uint32(len(archive)))
	require.NoError(t, d.InitArchive())

	_, err := d.Open("nope")
	require.ErrorIs(t, err, ErrNotFound)
}
