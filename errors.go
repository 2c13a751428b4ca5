package lowzip

import "errors"

// Sentinel errors. Every decode failure is one of these, returned either
// directly or wrapped with fmt.Errorf's %w, so callers can errors.Is against
// the taxonomy described in the spec without losing the coarse "something
// went wrong" case.
var (
	// ErrNoEOCD is returned when the end-of-central-directory record could
	// not be located within the reverse scan window.
	ErrNoEOCD = errors.New("lowzip: end of central directory not found")
	// ErrBadCentralDirectory is returned when a central directory entry's
	// filename/extra/comment lengths would place the next entry past the
	// end of the archive.
	ErrBadCentralDirectory = errors.New("lowzip: malformed central directory entry")
	// ErrBadLocalHeader is returned when a local file header's magic does
	// not match.
	ErrBadLocalHeader = errors.New("lowzip: malformed local file header")
	// ErrNotFound is returned when LocateFileByIndex/LocateFileByName find
	// no matching entry.
	ErrNotFound = errors.New("lowzip: no matching entry")
	// ErrUnsupportedMethod is returned for any compression method other
	// than Store (0) or Deflate (8).
	ErrUnsupportedMethod = errors.New("lowzip: unsupported compression method")
	// ErrReservedBlockType is returned for DEFLATE BTYPE == 3.
	ErrReservedBlockType = errors.New("lowzip: reserved deflate block type")
	// ErrHuffmanCodeLength is returned when a Huffman code length exceeds
	// 15 bits.
	ErrHuffmanCodeLength = errors.New("lowzip: huffman code length out of range")
	// ErrHuffmanIncomplete is returned when a Huffman code fails to
	// terminate within 15 bits.
	ErrHuffmanIncomplete = errors.New("lowzip: huffman code did not terminate")
	// ErrHuffmanTableOverflow is returned when a dynamic block's HLIT/HDIST
	// fields claim more code-length entries than the scratch area's fixed
	// Huffman table region can hold.
	ErrHuffmanTableOverflow = errors.New("lowzip: huffman table too large for scratch area")
	// ErrBadSymbol is returned for a length/distance symbol outside its
	// valid range.
	ErrBadSymbol = errors.New("lowzip: length/distance symbol out of range")
	// ErrBackReferenceBeforeStart is returned when a back-reference
	// distance reaches before the start of the output.
	ErrBackReferenceBeforeStart = errors.New("lowzip: back-reference before output start")
	// ErrOutputOverflow is returned when a literal or back-reference
	// would write past the end of the output window.
	ErrOutputOverflow = errors.New("lowzip: output buffer too small")
	// ErrSizeMismatch is returned when the number of bytes written does
	// not match the header's uncompressed size.
	ErrSizeMismatch = errors.New("lowzip: uncompressed size mismatch")
	// ErrCRCMismatch is returned when the computed CRC-32 does not match
	// the header (or data descriptor) CRC-32.
	ErrCRCMismatch = errors.New("lowzip: crc-32 mismatch")
	// ErrTruncatedInput is returned when the ByteSource reports an
	// out-of-bounds read.
	ErrTruncatedInput = errors.New("lowzip: truncated input")
	// ErrBadPattern is returned by Glob for a malformed doublestar pattern.
	ErrBadPattern = errors.New("lowzip: malformed glob pattern")
)
