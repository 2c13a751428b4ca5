package lowzip

// RFC 1951 Section 3.2.5 length/distance tables, reproduced verbatim (values
// match lowzip.c's lowzip_len_base/lowzip_len_bits/lowzip_dist_base/
// lowzip_dist_bits). lenBase is pre-subtracted by 3 so the largest entry
// (255) fits a byte; the +3 is added back at the single call site.

var lenBase = [29]byte{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 10, 12, 14, 16, 20, 24, 28,
	32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 255,
}

var lenExtra = [29]byte{
	0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2,
	3, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5, 0,
}

var distBase = [30]uint16{
	1, 2, 3, 4, 5, 7, 9, 13, 17, 25, 33, 49, 65, 97, 129,
	193, 257, 385, 513, 769, 1025, 1537, 2049, 3073, 4097,
	6145, 8193, 12289, 16385, 24577,
}

var distExtra = [30]byte{
	0, 0, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6, 7, 7,
	8, 8, 9, 9, 10, 10, 11, 11, 12, 12, 13, 13,
}

// codelenOrder is the permutation order for the code-length alphabet,
// RFC 1951 Section 3.2.7.
var codelenOrder = [19]byte{
	16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15,
}

// Scratch-area layout, matching lowzip.h's comment breakdown: the literal/
// length Huffman table and the distance Huffman table must fit side by side
// so a dynamic block can build both before decoding block data.
const (
	scratchLitOffset  = 0   // [0,604) literal/length Huffman table
	scratchDistOffset = 604 // [604,700) distance Huffman table

	maxCodeLenSymbols = 19 // code-length alphabet
)
