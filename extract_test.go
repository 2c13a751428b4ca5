package lowzip

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetDataStore(t *testing.T) {
	archive := buildTestZip([]zipEntrySpec{
		{name: "a.txt", data: []byte("hello, store"), method: methodStore},
	})
	d := NewDecoder(NewSliceSource(archive), uint32(len(archive)))
	require.NoError(t, d.InitArchive())
	fe, err := d.LocateFileByName("a.txt")
	require.NoError(t, err)

	d.Output = make([]byte, fe.UncompressedSize)
	require.NoError(t, d.GetData(fe))
	require.Equal(t, "hello, store", string(d.Output))
}

func TestGetDataDeflate(t *testing.T) {
	payload := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog "), 200)
	archive := buildTestZip([]zipEntrySpec{
		{name: "b.bin", data: payload, method: methodDeflate},
	})
	d := NewDecoder(NewSliceSource(archive), uint32(len(archive)))
	require.NoError(t, d.InitArchive())
	fe, err := d.LocateFileByName("b.bin")
	require.NoError(t, err)

	d.Output = make([]byte, fe.UncompressedSize)
	require.NoError(t, d.GetData(fe))
	require.True(t, bytes.Equal(d.Output, payload))
}

func TestGetDataWithDataDescriptor(t *testing.T) {
	payload := []byte("streamed without seeking back to patch the header")
	archive := buildTestZip([]zipEntrySpec{
		{name: "c.txt", data: payload, method: methodDeflate, dataDescriptor: true},
	})
	d := NewDecoder(NewSliceSource(archive), uint32(len(archive)))
	require.NoError(t, d.InitArchive())
	fe, err := d.LocateFileByName("c.txt")
	require.NoError(t, err)
	require.True(t, fe.HasDataDescriptor)

	d.Output = make([]byte, fe.UncompressedSize)
	require.NoError(t, d.GetData(fe))
	require.Equal(t, payload, d.Output)
}

func TestGetDataCRCMismatch(t *testing.T) {
	archive := buildTestZip([]zipEntrySpec{
		{name: "a.txt", data: []byte("hello"), method: methodStore},
	})
	// Corrupt one data byte in place, after the local header.
	corruptAt := bytes.Index(archive, []byte("hello")) + 1
	archive[corruptAt] ^= 0xFF

	d := NewDecoder(NewSliceSource(archive), uint32(len(archive)))
	require.NoError(t, d.InitArchive())
	fe, err := d.LocateFileByName("a.txt")
	require.NoError(t, err)

	d.Output = make([]byte, fe.UncompressedSize)
	require.ErrorIs(t, d.GetData(fe), ErrCRCMismatch)
}

func TestGetDataUnsupportedMethod(t *testing.T) {
	archive := buildTestZip([]zipEntrySpec{
		{name: "a.txt", data: []byte("hello"), method: methodStore},
	})
	d := NewDecoder(NewSliceSource(archive), uint32(len(archive)))
	require.NoError(t, d.InitArchive())
	fe, err := d.LocateFileByName("a.txt")
	require.NoError(t, err)

	fe.Method = 99
	d.Output = make([]byte, fe.UncompressedSize)
	require.ErrorIs(t, d.GetData(fe), ErrUnsupportedMethod)
}
