package lowzip

import "github.com/cespare/xxhash/v2"

// indexEntry records where in the central directory a name was found, so a
// repeat lookup can skip straight to it instead of rescanning from the
// start, mirroring fileid's "hash identifies, full compare confirms" split
// (internal/fileid/fileid_linux.go): xxhash picks the bucket, and a
// byte-exact comparison against the stored name decides the match.
type indexEntry struct {
	name         string
	centralDirAt uint32
}

// Index accelerates repeated LocateFileByName lookups on an archive whose
// central directory does not change between calls. Build once with
// BuildIndex after InitArchive, then call Lookup in place of
// LocateFileByName.
type Index struct {
	d       *Decoder
	buckets map[uint64][]indexEntry
}

// BuildIndex walks d's entire central directory once and records every
// entry's name and offset, hashed with xxhash for O(1) average lookup.
// d must have a successful InitArchive call behind it. If the central
// directory is truncated or malformed partway through, BuildIndex returns
// an index over the entries read so far alongside the error, rather than
// discarding them.
func (d *Decoder) BuildIndex() (*Index, error) {
	idx := &Index{d: d, buckets: make(map[uint64][]indexEntry)}

	err := d.walkCentralDir(func(offset uint32, name []byte) error {
		h := xxhash.Sum64(name)
		idx.buckets[h] = append(idx.buckets[h], indexEntry{name: string(name), centralDirAt: offset})
		return nil
	})
	return idx, err
}

// Lookup finds name via the index and cross-reads its local file header,
// returning the same *FileEntry shape as Decoder.LocateFileByName.
func (idx *Index) Lookup(name string) (*FileEntry, error) {
	h := xxhash.Sum64([]byte(name))
	for _, e := range idx.buckets[h] {
		if e.name != name {
			continue
		}
		d := idx.d
		filenameLen, err := d.read2(e.centralDirAt + 28)
		if err != nil {
			return nil, ErrTruncatedInput
		}
		lhdrOffset, err := d.read4(e.centralDirAt + 42)
		if err != nil {
			return nil, ErrTruncatedInput
		}
		if err := d.readLocalHeader(lhdrOffset, e.centralDirAt, filenameLen); err != nil {
			return nil, err
		}
		return &d.entry, nil
	}
	return nil, ErrNotFound
}
