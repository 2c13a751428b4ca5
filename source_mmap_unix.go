//go:build unix

package lowzip

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// MmapSource is a ByteSource backed by a memory-mapped file, avoiding both
// the read-ahead bookkeeping of ReaderAtSource and a full in-memory copy:
// the kernel pages archive bytes in on demand as ReadByteAt touches them.
// Build-tagged to unix because the mapping syscalls it wraps
// (golang.org/x/sys/unix.Mmap/Munmap) are POSIX-only.
type MmapSource struct {
	data []byte
}

// NewMmapSource maps f's first size bytes read-only. The returned
// MmapSource must be closed with Close once the Decoder using it is done;
// the file itself may be closed immediately after NewMmapSource returns, as
// is conventional for mmap.
func NewMmapSource(f *os.File, size uint32) (*MmapSource, error) {
	if size == 0 {
		return &MmapSource{}, nil
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("lowzip: mmap: %w", err)
	}
	return &MmapSource{data: data}, nil
}

// ReadByteAt implements ByteSource.
func (s *MmapSource) ReadByteAt(offset uint32) (byte, bool) {
	if uint64(offset) >= uint64(len(s.data)) {
		return 0, false
	}
	return s.data[offset], true
}

// Close unmaps the backing region. Safe to call on a zero-size MmapSource.
func (s *MmapSource) Close() error {
	if s.data == nil {
		return nil
	}
	err := unix.Munmap(s.data)
	s.data = nil
	if err != nil {
		return fmt.Errorf("lowzip: munmap: %w", err)
	}
	return nil
}
