package lowzip

// ZIP central-directory and local-file-header field layout, per the ZIP
// APPNOTE and spec.md section 4.4.
const (
	magicEOCD        = 0x06054B50
	magicCentralDir  = 0x02014B50
	magicLocalHeader = 0x04034B50
	magicDataDesc    = 0x08074B50

	minEOCDLength       = 22
	maxEOCDCommentSpan  = 65535
	minCentralDirLength = 46
	minLocalHeaderLen   = 30
)

// InitArchive locates the end-of-central-directory record and records the
// central directory's starting offset. It implements spec.md section 4.4's
// "Locate end-of-central-directory" and lowzip_init_archive: scan backward
// from archiveSize-22, accepting the first offset whose magic matches and
// whose stored comment length makes the record end exactly at archiveSize
// (ruling out magic bytes that happen to appear inside the comment).
func (d *Decoder) InitArchive() error {
	maxSpan := uint32(maxEOCDCommentSpan)
	if d.Opts.MaxEOCDCommentScan != 0 {
		maxSpan = d.Opts.MaxEOCDCommentScan
	}

	start := int64(d.ArchiveSize) - minEOCDLength
	stop := int64(d.ArchiveSize) - (int64(maxSpan) + minEOCDLength)

	for offset := start; offset >= stop && offset >= 0; offset-- {
		magic, err := d.read4(uint32(offset))
		if err != nil {
			return ErrTruncatedInput
		}
		if magic != magicEOCD {
			continue
		}
		commentLen, err := d.read2(uint32(offset) + 20)
		if err != nil {
			return ErrTruncatedInput
		}
		if uint32(offset)+minEOCDLength+commentLen != d.ArchiveSize {
			continue
		}
		cdirOffset, err := d.read4(uint32(offset) + 16)
		if err != nil {
			return ErrTruncatedInput
		}
		d.centralDirOffset = cdirOffset
		return nil
	}
	return ErrNoEOCD
}

// LocateFileByIndex scans the central directory for the idx'th entry (0
// based) and returns its FileEntry. See LocateFileByName for the shared scan
// logic.
func (d *Decoder) LocateFileByIndex(idx int) (*FileEntry, error) {
	return d.locateFile(idx, "")
}

// LocateFileByName scans the central directory for an entry whose filename
// matches name byte-for-byte (no truncation, no case folding, no encoding
// interpretation, per spec.md section 6).
func (d *Decoder) LocateFileByName(name string) (*FileEntry, error) {
	return d.locateFile(-1, name)
}

// locateFile implements spec.md section 4.4's central-directory iteration
// plus local-file-header cross-read, matching lowzip_locate_file. Exactly
// one of idx>=0 or name!="" selects the match mode, mirroring the C
// function's "exactly one of index>=0 or name!=null" precondition.
func (d *Decoder) locateFile(idx int, name string) (*FileEntry, error) {
	offset := d.centralDirOffset
	for {
		magic, err := d.read4(offset)
		if err != nil {
			return nil, ErrTruncatedInput
		}
		if magic != magicCentralDir {
			break
		}

		filenameLen, err := d.read2(offset + 28)
		if err != nil {
			return nil, ErrTruncatedInput
		}

		matched := false
		if name != "" {
			if int(filenameLen) == len(name) {
				ok, err := d.filenameEquals(offset+minCentralDirLength, name)
				if err != nil {
					return nil, err
				}
				matched = ok
			}
		} else {
			matched = idx == 0
			idx--
		}

		if !matched {
			extraLen, err := d.read2(offset + 30)
			if err != nil {
				return nil, ErrTruncatedInput
			}
			commentLen, err := d.read2(offset + 32)
			if err != nil {
				return nil, ErrTruncatedInput
			}
			next := uint64(offset) + uint64(minCentralDirLength) + uint64(filenameLen) + uint64(extraLen) + uint64(commentLen)
			if next > uint64(d.ArchiveSize) {
				return nil, ErrBadCentralDirectory
			}
			offset = uint32(next)
			continue
		}

		lhdrOffset, err := d.read4(offset + 42)
		if err != nil {
			return nil, ErrTruncatedInput
		}
		if err := d.readLocalHeader(lhdrOffset, offset, filenameLen); err != nil {
			return nil, err
		}
		return &d.entry, nil
	}
	return nil, ErrNotFound
}

// walkCentralDir calls fn once per central directory entry, in order, with
// that entry's starting offset and filename. Shared by BuildIndex, Glob, and
// Names, which otherwise differ only in what they do with each name. A
// central directory that claims more entries than the archive can actually
// hold stops with ErrBadCentralDirectory or ErrTruncatedInput rather than
// reading past the archive or looping forever; entries already delivered to
// fn before that point stand.
func (d *Decoder) walkCentralDir(fn func(offset uint32, name []byte) error) error {
	offset := d.centralDirOffset
	for {
		magic, err := d.read4(offset)
		if err != nil {
			return ErrTruncatedInput
		}
		if magic != magicCentralDir {
			return nil
		}

		filenameLen, err := d.read2(offset + 28)
		if err != nil {
			return ErrTruncatedInput
		}
		extraLen, err := d.read2(offset + 30)
		if err != nil {
			return ErrTruncatedInput
		}
		commentLen, err := d.read2(offset + 32)
		if err != nil {
			return ErrTruncatedInput
		}

		next := uint64(offset) + uint64(minCentralDirLength) + uint64(filenameLen) + uint64(extraLen) + uint64(commentLen)
		if next > uint64(d.ArchiveSize) {
			return ErrBadCentralDirectory
		}

		name := make([]byte, filenameLen)
		for i := uint32(0); i < filenameLen; i++ {
			b, ok := d.Source.ReadByteAt(offset + minCentralDirLength + i)
			if !ok {
				return ErrTruncatedInput
			}
			name[i] = b
		}

		if err := fn(offset, name); err != nil {
			return err
		}

		offset = uint32(next)
	}
}

// filenameEquals compares the filename starting at cdirNameOffset against
// name, byte for byte.
func (d *Decoder) filenameEquals(cdirNameOffset uint32, name string) (bool, error) {
	for i := 0; i < len(name); i++ {
		b, ok := d.Source.ReadByteAt(cdirNameOffset + uint32(i))
		if !ok {
			return false, ErrTruncatedInput
		}
		if b != name[i] {
			return false, nil
		}
	}
	return true, nil
}

// readLocalHeader cross-reads the local file header at lhdrOffset and
// populates d.entry, matching spec.md section 4.4's "Cross-read local file
// header".
func (d *Decoder) readLocalHeader(lhdrOffset, cdirOffset uint32, filenameLen uint32) error {
	magic, err := d.read4(lhdrOffset)
	if err != nil {
		return ErrTruncatedInput
	}
	if magic != magicLocalHeader {
		return ErrBadLocalHeader
	}

	flags, err := d.read2(lhdrOffset + 6)
	if err != nil {
		return ErrTruncatedInput
	}
	method, err := d.read2(lhdrOffset + 8)
	if err != nil {
		return ErrTruncatedInput
	}
	crc, err := d.read4(lhdrOffset + 14)
	if err != nil {
		return ErrTruncatedInput
	}
	compressedSize, err := d.read4(lhdrOffset + 18)
	if err != nil {
		return ErrTruncatedInput
	}
	uncompressedSize, err := d.read4(lhdrOffset + 22)
	if err != nil {
		return ErrTruncatedInput
	}
	localFilenameLen, err := d.read2(lhdrOffset + 26)
	if err != nil {
		return ErrTruncatedInput
	}
	localExtraLen, err := d.read2(lhdrOffset + 28)
	if err != nil {
		return ErrTruncatedInput
	}

	d.entry = FileEntry{
		Method:            uint16(method),
		CRC32:             crc,
		CompressedSize:    compressedSize,
		UncompressedSize:  uncompressedSize,
		DataOffset:        lhdrOffset + minLocalHeaderLen + localFilenameLen + localExtraLen,
		HasDataDescriptor: flags&0x08 != 0,
	}

	n := filenameLen
	const maxName = 255
	if n > maxName {
		n = maxName
	}
	nameBytes := make([]byte, n)
	for i := uint32(0); i < n; i++ {
		b, ok := d.Source.ReadByteAt(cdirOffset + minCentralDirLength + i)
		if !ok {
			return ErrTruncatedInput
		}
		nameBytes[i] = b
	}
	d.entry.Name = string(nameBytes)
	return nil
}
