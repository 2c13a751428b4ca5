package lowzip

import (
	"bytes"
	"io"
)

// entryReader is the Go analog of blast's reader: it eagerly decodes an
// entry's full contents into memory (GetData already requires a
// fully-sized output buffer, so there is no streaming alternative) and
// serves Read/Close against that buffer, matching blast's NewReader /
// reader.Read / reader.Close shape.
type entryReader struct {
	*bytes.Reader
}

func (entryReader) Close() error { return nil }

// Open locates name in the archive, decodes its full contents, and returns
// an io.ReadCloser over the result -- the convenience entry point for
// callers that just want an entry's bytes and don't need direct control
// over Output reuse (see GetData for that). It is the caller's
// responsibility to call Close on the returned ReadCloser when done,
// exactly as with blast.NewReader.
func (d *Decoder) Open(name string) (io.ReadCloser, error) {
	fe, err := d.LocateFileByName(name)
	if err != nil {
		return nil, err
	}
	d.Output = make([]byte, fe.UncompressedSize)
	if err := d.GetData(fe); err != nil {
		return nil, err
	}
	return entryReader{bytes.NewReader(d.Output)}, nil
}

// Names returns every entry name in the archive in central-directory order,
// equivalent to Glob("**") but without doublestar's matching overhead. If
// the central directory is truncated or malformed partway through, Names
// returns the entries it managed to read before the error alongside it.
func (d *Decoder) Names() ([]string, error) {
	var names []string
	err := d.walkCentralDir(func(_ uint32, name []byte) error {
		names = append(names, string(name))
		return nil
	})
	return names, err
}
