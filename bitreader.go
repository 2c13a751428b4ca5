package lowzip

import "fmt"

// readByte reads the next input byte through Source at readOffset, advancing
// readOffset on success. This is the single point where the archive's
// backing store is touched; every higher-level reader funnels through it.
//
// Unlike lowzip_read_byte, which synthesizes a zero byte and defers the
// error so that C call sites never need to unwind early, this returns the
// error immediately: spec.md section 9 sanctions exactly this simplification
// ("the only observable difference is that... truncation may be detected
// sooner, which is strictly better"), and idiomatic Go already makes early
// return-on-error the natural shape for every caller.
func (d *Decoder) readByte() (byte, error) {
	b, ok := d.Source.ReadByteAt(d.readOffset)
	if !ok {
		return 0, ErrTruncatedInput
	}
	d.readOffset++
	return b, nil
}

// readLittleEndian reads an n-byte (1-4) little-endian value at an absolute
// offset, without touching the bit-reader's readOffset/bitBuf state. Used by
// the ZIP directory scanner for fixed-field reads.
func (d *Decoder) readLittleEndian(offset uint32, n uint) (uint32, error) {
	var res uint32
	for i := uint(0); i < n; i++ {
		b, ok := d.Source.ReadByteAt(offset + uint32(i))
		if !ok {
			return 0, ErrTruncatedInput
		}
		res |= uint32(b) << (8 * i)
	}
	return res, nil
}

func (d *Decoder) read4(offset uint32) (uint32, error) { return d.readLittleEndian(offset, 4) }
func (d *Decoder) read2(offset uint32) (uint32, error) { return d.readLittleEndian(offset, 2) }

// readBits reads the next n bits (0 <= n <= 16; n == 0 returns 0 without
// reading) from the bitstream at
// readOffset, LSB-first per RFC 1951 section 3.1.1: the first bit read
// becomes the least-significant bit of the result.
func (d *Decoder) readBits(n uint) (uint32, error) {
	for d.bitCount < n {
		b, err := d.readByte()
		if err != nil {
			return 0, err
		}
		d.bitBuf |= uint32(b) << d.bitCount
		d.bitCount += 8
	}
	mask := uint32(1)<<n - 1
	res := d.bitBuf & mask
	d.bitBuf >>= n
	d.bitCount -= n
	return res, nil
}

// readBitsMSBFirst reads n bits the same way as readBits but returns them
// with the first bit read as the most-significant output bit. Used only by
// the static-Huffman hand decoder (section 4.3).
func (d *Decoder) readBitsMSBFirst(n uint) (uint32, error) {
	v, err := d.readBits(n)
	if err != nil {
		return 0, err
	}
	var res uint32
	for i := uint(0); i < n; i++ {
		res = (res << 1) | ((v >> i) & 1)
	}
	return res, nil
}

// resetBitState discards any bits held in the buffer, without touching
// readOffset. Used when a block switches to byte-aligned data (the start of
// an uncompressed block).
func (d *Decoder) resetBitState() {
	d.bitBuf = 0
	d.bitCount = 0
}

// writeByte appends ch to the output window, failing if the window is full.
func (d *Decoder) writeByte(ch byte) error {
	if d.cursor >= len(d.Output) {
		return fmt.Errorf("lowzip: write at offset %d: %w", d.cursor, ErrOutputOverflow)
	}
	d.Output[d.cursor] = ch
	d.cursor++
	return nil
}
