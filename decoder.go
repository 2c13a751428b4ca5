/*
Package lowzip implements a compact, low-allocation reader for ZIP archives
whose entries are stored with method Store or Deflate (RFC 1951).

The design favors a small, fixed working set over throughput: a Decoder's own
state is a handful of scalar fields plus a 1020-byte scratch array, and all
archive access goes through a caller-supplied ByteSource so that the archive
itself may live in memory, behind an io.ReaderAt, or in a memory-mapped
region. The caller owns the output buffer; Decoder never grows or reallocates
it.

For example, to list and extract from an in-memory archive:

	d := lowzip.NewDecoder(lowzip.NewSliceSource(zipBytes), uint32(len(zipBytes)))
	if err := d.InitArchive(); err != nil {
		log.Fatal(err)
	}
	fe, err := d.LocateFileByName("hello.txt")
	if err != nil {
		log.Fatal(err)
	}
	d.Output = make([]byte, fe.UncompressedSize)
	if err := d.GetData(fe); err != nil {
		log.Fatal(err)
	}
*/
package lowzip

/*
 * Adapted from JoshVarga/blast (reader.go), itself a Go port of Mark Adler's
 * blast.c, and from svaarala/lowzip's lowzip.c -- the latter is the direct
 * source of the ZIP/inflate semantics implemented here. Both are zlib-style
 * licensed public-domain-spirited decompressors; no text is copied, only the
 * state-struct-plus-bit-reader shape and the RFC 1951 algorithm.
 */

// ByteSource is the read collaborator: a random-access byte source that
// reports out-of-bounds reads explicitly via ok=false instead of panicking
// or returning an error value. This is the Go analog of the C callback
// `unsigned int read(void *udata, unsigned int offset)` with its 0x100
// out-of-bounds sentinel.
type ByteSource interface {
	// ReadByteAt returns the byte at offset, or ok=false if offset is
	// outside the backing store. Offsets may be requested past the end of
	// the archive (bit-reader lookahead on truncated input); implementations
	// must keep returning ok=false rather than panicking.
	ReadByteAt(offset uint32) (b byte, ok bool)
}

// Options configures optional, off-by-default behavior. The zero Options
// reproduces the exact semantics of spec.md / lowzip.c.
type Options struct {
	// NLENStrict validates the uncompressed DEFLATE block's NLEN field
	// (one's complement of LEN) instead of skipping it. Off by default,
	// matching lowzip.c; see DESIGN.md Open Question 1.
	NLENStrict bool

	// MaxEOCDCommentScan bounds the reverse scan for the end-of-central-
	// directory record, in bytes before the nominal 22-byte-minimum EOCD
	// position. Zero means the RFC-maximum 65535-byte comment window.
	MaxEOCDCommentScan uint32
}

// Decoder is the caller-allocated control block: the Go analog of
// lowzip_state. Its own footprint is fixed; only Source and Output are
// supplied (and owned) by the caller.
type Decoder struct {
	// Source is the read collaborator backing the archive.
	Source ByteSource
	// ArchiveSize is the total byte length of the ZIP backing store.
	ArchiveSize uint32
	// Opts configures optional decode behavior. Zero value matches the
	// spec's default semantics exactly.
	Opts Options

	centralDirOffset uint32

	// bit-reader state
	readOffset uint32
	bitBuf     uint32
	bitCount   uint

	// Output is the caller-supplied output window. Decoder writes into
	// Output[:cursor] and never grows or reallocates it; cursor is the Go
	// analog of output_next - output_start.
	Output []byte
	cursor int

	// entry is the "file entry" scratch variant (see SPEC_FULL.md §3).
	entry FileEntry

	// scratch is the "building/decoding Huffman tables" scratch variant,
	// sized exactly as lowzip.h documents: 604 bytes literal/length table +
	// 96 bytes distance table, reused during dynamic-Huffman setup as 70
	// bytes code-length table + 320 bytes of temporary concatenated code
	// lengths. The 19 code-length-alphabet lengths themselves live in a
	// local array in decodeDynamicHuffmanBlock, not in scratch.
	scratch [1020]byte
}

// NewDecoder creates a Decoder over src, which must serve archiveSize bytes
// (offsets [0,archiveSize)). Call InitArchive before any other operation.
func NewDecoder(src ByteSource, archiveSize uint32) *Decoder {
	return &Decoder{Source: src, ArchiveSize: archiveSize}
}

// FileEntry describes the most recently located central-directory entry.
// It is valid only until the next LocateFileByIndex/LocateFileByName or
// Index.Lookup call, all of which reuse the same storage;
// GetData does not invalidate it (unlike lowzip_file, which shared storage
// with the Huffman scratch area), but extracting a different entry does.
type FileEntry struct {
	// Method is the compression method: 0 (Store) or 8 (Deflate).
	Method uint16
	// CRC32 is the header CRC-32, authoritative unless HasDataDescriptor.
	CRC32 uint32
	// CompressedSize is the on-disk size of the entry's data.
	CompressedSize uint32
	// UncompressedSize is the decompressed size; callers must size their
	// output buffer to at least this.
	UncompressedSize uint32
	// DataOffset is the archive offset of the first byte of entry data.
	DataOffset uint32
	// HasDataDescriptor is true if bit 3 of the local header's general
	// purpose flags was set, meaning CRC32/sizes may be authoritative only
	// in a trailing data-descriptor record.
	HasDataDescriptor bool
	// Name is the entry's filename, truncated to 255 bytes.
	Name string
}
