package lowzip

import "hash/crc32"

const (
	methodStore   = 0
	methodDeflate = 8
)

// GetData decompresses (or copies) fe's data into d.Output, resetting the
// write cursor to the start of Output first -- unlike lowzip_get_data, whose
// caller is responsible for leaving output_next at output_start, since Go's
// Output is conventionally a fresh slice sized to fe.UncompressedSize per
// call (see the package doc example). It implements spec.md section 4.5:
// STORE is a byte-for-byte copy, DEFLATE invokes InflateRaw, and on success
// the written length and CRC-32 are validated against fe's header fields
// (or, if fe.HasDataDescriptor, against the trailing data descriptor
// record).
func (d *Decoder) GetData(fe *FileEntry) error {
	d.cursor = 0
	start := d.cursor

	switch fe.Method {
	case methodStore:
		for i := uint32(0); i < fe.UncompressedSize; i++ {
			b, ok := d.Source.ReadByteAt(fe.DataOffset + i)
			if !ok {
				return ErrTruncatedInput
			}
			if err := d.writeByte(b); err != nil {
				return err
			}
		}
		d.readOffset = fe.DataOffset + fe.UncompressedSize
	case methodDeflate:
		d.readOffset = fe.DataOffset
		if err := d.InflateRaw(); err != nil {
			return err
		}
	default:
		return ErrUnsupportedMethod
	}

	if uint32(d.cursor-start) != fe.UncompressedSize {
		return ErrSizeMismatch
	}

	headerCRC := fe.CRC32
	if fe.HasDataDescriptor {
		crc, err := d.readDataDescriptorCRC()
		if err != nil {
			return err
		}
		headerCRC = crc
	}

	computed := crc32.ChecksumIEEE(d.Output[start:d.cursor])
	if computed != headerCRC {
		return ErrCRCMismatch
	}
	return nil
}

// readDataDescriptorCRC reads the authoritative CRC-32 from the optional
// post-data descriptor record that follows an entry whose local header bit 3
// was set. The record is either magic-prefixed (0x08074b50) or bare CRC/
// compressed-size/uncompressed-size, per spec.md section 4.5.
func (d *Decoder) readDataDescriptorCRC() (uint32, error) {
	magic, err := d.read4(d.readOffset)
	if err != nil {
		return 0, ErrTruncatedInput
	}
	if magic == magicDataDesc {
		return d.read4(d.readOffset + 4)
	}
	return magic, nil
}
