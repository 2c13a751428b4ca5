package lowzip

import "io"

// SliceSource is a ByteSource backed by an in-memory byte slice. It is the
// natural choice when the whole archive already lives in memory (loaded from
// a network response, an embedded asset, and so on).
type SliceSource []byte

// NewSliceSource wraps data as a ByteSource.
func NewSliceSource(data []byte) SliceSource {
	return SliceSource(data)
}

// ReadByteAt implements ByteSource.
func (s SliceSource) ReadByteAt(offset uint32) (byte, bool) {
	if uint64(offset) >= uint64(len(s)) {
		return 0, false
	}
	return s[offset], true
}

// readAheadSize is the chunk size ReaderAtSource reads from its backing
// io.ReaderAt on a cache miss. ZIP directory scans and DEFLATE decoding both
// touch nearby offsets far more often than they jump, so a small fixed-size
// window amortizes most of the syscall/seek overhead without holding the
// whole archive in memory -- the same tradeoff coreos/pkg's zran package
// makes by buffering through a bufio.Reader rather than reading byte by byte.
const readAheadSize = 4096

// ReaderAtSource is a ByteSource backed by an io.ReaderAt, with a small
// read-ahead buffer so that the bit reader's byte-at-a-time access pattern
// does not turn into one ReadAt call per byte. Safe only for single-threaded
// use, matching the rest of this package.
type ReaderAtSource struct {
	r    io.ReaderAt
	size uint32

	bufStart uint32
	buf      [readAheadSize]byte
	bufLen   int
}

// NewReaderAtSource wraps r, which must serve size bytes starting at offset
// 0, as a ByteSource.
func NewReaderAtSource(r io.ReaderAt, size uint32) *ReaderAtSource {
	return &ReaderAtSource{r: r, size: size, bufLen: -1}
}

// ReadByteAt implements ByteSource.
func (s *ReaderAtSource) ReadByteAt(offset uint32) (byte, bool) {
	if offset >= s.size {
		return 0, false
	}
	if s.bufLen < 0 || offset < s.bufStart || offset >= s.bufStart+uint32(s.bufLen) {
		s.fill(offset)
	}
	i := offset - s.bufStart
	if int(i) >= s.bufLen {
		return 0, false
	}
	return s.buf[i], true
}

func (s *ReaderAtSource) fill(offset uint32) {
	s.bufStart = offset
	want := readAheadSize
	if remaining := s.size - offset; uint32(want) > remaining {
		want = int(remaining)
	}
	n, err := s.r.ReadAt(s.buf[:want], int64(offset))
	if err != nil && err != io.EOF {
		n = 0
	}
	s.bufLen = n
}
