package lowzip

// Huffman table representation: a contiguous byte region laid out as 16
// little-endian uint16 counts (counts[0] unused) immediately followed by a
// densely packed symbol list, grouped by ascending code length and, within a
// length, by ascending symbol index. Decoding proceeds level by level and
// never materializes a tree -- see decodeHuffman below.
//
// table is always a sub-slice of Decoder.scratch; building one never
// allocates.

const huffmanCountsBytes = 32 // 16 uint16 counts

func countsWord(table []byte, i int) uint16 {
	return uint16(table[2*i]) | uint16(table[2*i+1])<<8
}

func setCountsWord(table []byte, i int, v uint16) {
	table[2*i] = byte(v)
	table[2*i+1] = byte(v >> 8)
}

func symbolWord(table []byte, i int) uint16 {
	off := huffmanCountsBytes + 2*i
	return uint16(table[off]) | uint16(table[off+1])<<8
}

func setSymbolWord(table []byte, i int, v uint16) {
	off := huffmanCountsBytes + 2*i
	table[off] = byte(v)
	table[off+1] = byte(v >> 8)
}

// buildHuffman prepares a canonical Huffman decoding table in table (which
// must be at least huffmanCountsBytes+2*len(codeLens) bytes) from a
// per-symbol array of code lengths (0-15; 0 means the symbol is absent from
// the code). It does not validate completeness: an oversubscribed or
// undersubscribed code is accepted silently, exactly as lowzip_prepare_huffman
// does -- decodeHuffman will either terminate normally, produce the wrong
// symbol, or fail to terminate within 15 bits.
func buildHuffman(codeLens []byte, table []byte) error {
	maxSymbols := (len(table) - huffmanCountsBytes) / 2
	if len(codeLens) > maxSymbols {
		// A conformant encoder never claims more symbols than the alphabet
		// allows, so this only triggers on malformed HLIT/HDIST fields; the
		// scratch layout in lowzip.h sizes the table region for exactly the
		// RFC maximum, so anything larger cannot be stored at all. Reject
		// it cleanly rather than writing past the table region like the C
		// original's shared flat scratch buffer silently tolerates.
		return ErrHuffmanTableOverflow
	}

	for i := 0; i < 16; i++ {
		setCountsWord(table, i, 0)
	}
	for _, l := range codeLens {
		if l > 15 {
			return ErrHuffmanCodeLength
		}
		setCountsWord(table, int(l), countsWord(table, int(l))+1)
	}

	// codes: for each length 1..15 in turn, the symbols using that length
	// in ascending index order.
	idx := 0
	for length := 1; length <= 15; length++ {
		for sym, l := range codeLens {
			if int(l) == length {
				setSymbolWord(table, idx, uint16(sym))
				idx++
			}
		}
	}
	return nil
}

// decodeHuffman reads bits MSB-first one at a time and returns the decoded
// symbol. It maintains a rolling 15-bit code value and the index
// codeStart of the first codeword of the current length; see spec.md
// section 4.2 for the termination test. Bounds on the symbol array are
// never exceeded because codesOffset only advances past non-terminal
// levels.
func (d *Decoder) decodeHuffman(table []byte) (uint16, error) {
	var code, codeStart, codesOffset uint32
	for length := 1; length <= 15; length++ {
		bit, err := d.readBits(1)
		if err != nil {
			return 0, err
		}
		code = (code << 1) | bit
		count := uint32(countsWord(table, length))
		if code-codeStart < count {
			return symbolWord(table, int(codesOffset+code-codeStart)), nil
		}
		codeStart = (codeStart + count) << 1
		codesOffset += count
	}
	return 0, ErrHuffmanIncomplete
}
