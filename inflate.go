package lowzip

// InflateRaw decodes a raw RFC 1951 DEFLATE stream starting at d.readOffset,
// writing output into d.Output starting at the current cursor. It implements
// spec.md section 4.3/4.3.1 and lowzip.c's lowzip_decode_inflate_blocks.
func (d *Decoder) InflateRaw() error {
	d.resetBitState()
	for {
		hdr, err := d.readBits(3)
		if err != nil {
			return err
		}
		bfinal := hdr & 1
		btype := hdr >> 1

		switch btype {
		case 0:
			if err := d.decodeUncompressedBlock(); err != nil {
				return err
			}
		case 1:
			if err := d.decodeHuffmanBlockData(true); err != nil {
				return err
			}
		case 2:
			if err := d.decodeDynamicHuffmanBlock(); err != nil {
				return err
			}
		default:
			return ErrReservedBlockType
		}

		if bfinal != 0 {
			return nil
		}
	}
}

// decodeUncompressedBlock handles BTYPE 0: byte-align, read LEN, skip NLEN
// (validated only if d.Opts.NLENStrict), then copy LEN bytes verbatim.
func (d *Decoder) decodeUncompressedBlock() error {
	d.resetBitState()

	lenLo, err := d.readByte()
	if err != nil {
		return err
	}
	lenHi, err := d.readByte()
	if err != nil {
		return err
	}
	length := uint32(lenLo) | uint32(lenHi)<<8

	nlenLo, err := d.readByte()
	if err != nil {
		return err
	}
	nlenHi, err := d.readByte()
	if err != nil {
		return err
	}
	if d.Opts.NLENStrict {
		nlen := uint32(nlenLo) | uint32(nlenHi)<<8
		if nlen != length^0xFFFF {
			return ErrBadSymbol
		}
	}

	for i := uint32(0); i < length; i++ {
		b, err := d.readByte()
		if err != nil {
			return err
		}
		if err := d.writeByte(b); err != nil {
			return err
		}
	}
	return nil
}

// decodeHuffmanBlockData decodes literals and length/distance back-references
// until an end-of-block symbol (256) is seen. When staticHuffman is true,
// literal/length and distance symbols use the RFC 1951 section 3.2.6 fixed
// assignment, hand-decoded without a materialized table (section 4.3);
// otherwise they come from the dynamic tables just built in d.scratch.
func (d *Decoder) decodeHuffmanBlockData(staticHuffman bool) error {
	for {
		sym, err := d.decodeLitLenSymbol(staticHuffman)
		if err != nil {
			return err
		}

		switch {
		case sym < 256:
			if err := d.writeByte(byte(sym)); err != nil {
				return err
			}
		case sym == 256:
			return nil
		default:
			if sym > 285 {
				return ErrBadSymbol
			}
			if err := d.copyBackReference(sym, staticHuffman); err != nil {
				return err
			}
		}
	}
}

// decodeLitLenSymbol decodes one literal/length symbol (0-287); the caller
// rejects the unused symbols 286 and 287.
func (d *Decoder) decodeLitLenSymbol(staticHuffman bool) (uint32, error) {
	if !staticHuffman {
		sym, err := d.decodeHuffman(d.scratch[scratchLitOffset:])
		return uint32(sym), err
	}

	// Static Huffman, hand-crafted decoder (minimum code length is 7 bits).
	t, err := d.readBitsMSBFirst(7)
	if err != nil {
		return 0, err
	}
	switch {
	case t <= 0x17:
		return t + 256, nil
	case t <= 0x5F:
		bit, err := d.readBits(1)
		if err != nil {
			return 0, err
		}
		return (t << 1) | bit - 48, nil
	case t <= 0x63:
		bit, err := d.readBits(1)
		if err != nil {
			return 0, err
		}
		return (t << 1) | bit + 88, nil
	default:
		extra, err := d.readBitsMSBFirst(2)
		if err != nil {
			return 0, err
		}
		return (t << 2) | extra - 256, nil
	}
}

// copyBackReference decodes the length/distance pair for literal/length
// symbol sym (257-285) and performs the back-reference copy.
func (d *Decoder) copyBackReference(sym uint32, staticHuffman bool) error {
	k := sym - 257
	extraBits, err := d.readBits(uint(lenExtra[k]))
	if err != nil {
		return err
	}
	length := uint32(lenBase[k]) + 3 + extraBits

	var distSym uint32
	if !staticHuffman {
		s, err := d.decodeHuffman(d.scratch[scratchDistOffset:])
		if err != nil {
			return err
		}
		distSym = uint32(s)
	} else {
		s, err := d.readBitsMSBFirst(5)
		if err != nil {
			return err
		}
		distSym = s
	}
	if distSym > 29 {
		return ErrBadSymbol
	}

	distExtraBits, err := d.readBits(uint(distExtra[distSym]))
	if err != nil {
		return err
	}
	// distBase[0] == 1 and distSym is range-checked above, so distance is
	// always >= 1: distance == 0 can never be encoded.
	distance := uint32(distBase[distSym]) + distExtraBits

	if distance > uint32(d.cursor) {
		return ErrBackReferenceBeforeStart
	}
	if length > uint32(len(d.Output)-d.cursor) {
		return ErrOutputOverflow
	}

	// Overlapping copies (distance < length) are handled naturally by
	// advancing the source pointer alongside the destination pointer.
	from := d.cursor - int(distance)
	for i := uint32(0); i < length; i++ {
		if err := d.writeByte(d.Output[from]); err != nil {
			return err
		}
		from++
	}
	return nil
}

// decodeDynamicHuffmanBlock handles BTYPE 2: decode the code-length alphabet,
// use it to decode the literal/length and distance code-length sequences,
// build both tables, then decode block data against them. Matches
// lowzip_decode_dynamic_huffman_block / spec.md section 4.3.1.
func (d *Decoder) decodeDynamicHuffmanBlock() error {
	hlit, err := d.readBits(5)
	if err != nil {
		return err
	}
	nlit := hlit + 257
	hdist, err := d.readBits(5)
	if err != nil {
		return err
	}
	ndist := hdist + 1
	hclen, err := d.readBits(4)
	if err != nil {
		return err
	}
	nclen := hclen + 4

	var codeLenLens [maxCodeLenSymbols]byte
	for i := uint32(0); i < nclen; i++ {
		v, err := d.readBits(3)
		if err != nil {
			return err
		}
		codeLenLens[codelenOrder[i]] = byte(v)
	}

	codeLenTable := d.scratch[0:70]
	if err := buildHuffman(codeLenLens[:], codeLenTable); err != nil {
		return err
	}

	total := nlit + ndist
	tempCodeLens := d.scratch[len(d.scratch)-320:]
	var i uint32
	for i < total {
		sym, err := d.decodeHuffman(codeLenTable)
		if err != nil {
			return err
		}

		var repCode byte
		var repCount uint32
		switch {
		case sym < 16:
			repCode = byte(sym)
			repCount = 1
		case sym == 16:
			if i == 0 {
				return ErrBadSymbol
			}
			repCode = tempCodeLens[i-1]
			extra, err := d.readBits(2)
			if err != nil {
				return err
			}
			repCount = 3 + extra
		case sym == 17:
			repCode = 0
			extra, err := d.readBits(3)
			if err != nil {
				return err
			}
			repCount = 3 + extra
		case sym == 18:
			repCode = 0
			extra, err := d.readBits(7)
			if err != nil {
				return err
			}
			repCount = 11 + extra
		default:
			return ErrBadSymbol
		}

		for ; repCount > 0; repCount-- {
			if i >= total {
				return ErrBadSymbol
			}
			tempCodeLens[i] = repCode
			i++
		}
	}

	litTable := d.scratch[scratchLitOffset : scratchLitOffset+604]
	if err := buildHuffman(tempCodeLens[:nlit], litTable); err != nil {
		return err
	}
	distTable := d.scratch[scratchDistOffset : scratchDistOffset+96]
	if err := buildHuffman(tempCodeLens[nlit:total], distTable); err != nil {
		return err
	}

	return d.decodeHuffmanBlockData(false)
}
