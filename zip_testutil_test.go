package lowzip

import (
	"bytes"
	"compress/flate"
	"encoding/binary"
	"hash/crc32"
)

// zipEntrySpec describes one entry for buildTestZip to encode.
type zipEntrySpec struct {
	name           string
	data           []byte
	method         uint16 // methodStore or methodDeflate
	dataDescriptor bool
}

func writeU16(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}

func writeU32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

// buildTestZip assembles a minimal, well-formed ZIP archive byte-for-byte
// (no extra fields, no archive comment), computing every length, offset and
// CRC-32 at call time rather than by hand -- the same trust boundary real
// tests place in crypto/hash packages.
func buildTestZip(entries []zipEntrySpec) []byte {
	type built struct {
		name           string
		crc            uint32
		compSize       uint32
		uncompSize     uint32
		method         uint16
		lhdrOffset     uint32
		dataDescriptor bool
	}

	var buf bytes.Buffer
	var built_ []built

	for _, e := range entries {
		lhdrOffset := uint32(buf.Len())

		var compressed []byte
		switch e.method {
		case methodDeflate:
			var cbuf bytes.Buffer
			fw, err := flate.NewWriter(&cbuf, flate.BestCompression)
			if err != nil {
				panic(err)
			}
			if _, err := fw.Write(e.data); err != nil {
				panic(err)
			}
			if err := fw.Close(); err != nil {
				panic(err)
			}
			compressed = cbuf.Bytes()
		default:
			compressed = e.data
		}
		crc := crc32.ChecksumIEEE(e.data)
		flags := uint16(0)
		if e.dataDescriptor {
			flags |= 0x08
		}

		writeU32(&buf, magicLocalHeader)
		writeU16(&buf, 20)
		writeU16(&buf, flags)
		writeU16(&buf, e.method)
		writeU16(&buf, 0)
		writeU16(&buf, 0)
		if e.dataDescriptor {
			writeU32(&buf, 0)
			writeU32(&buf, 0)
			writeU32(&buf, 0)
		} else {
			writeU32(&buf, crc)
			writeU32(&buf, uint32(len(compressed)))
			writeU32(&buf, uint32(len(e.data)))
		}
		writeU16(&buf, uint16(len(e.name)))
		writeU16(&buf, 0)
		buf.WriteString(e.name)
		buf.Write(compressed)
		if e.dataDescriptor {
			writeU32(&buf, magicDataDesc)
			writeU32(&buf, crc)
			writeU32(&buf, uint32(len(compressed)))
			writeU32(&buf, uint32(len(e.data)))
		}

		built_ = append(built_, built{
			name: e.name, crc: crc, compSize: uint32(len(compressed)),
			uncompSize: uint32(len(e.data)), method: e.method,
			lhdrOffset: lhdrOffset, dataDescriptor: e.dataDescriptor,
		})
	}

	cdirStart := uint32(buf.Len())
	for _, b := range built_ {
		flags := uint16(0)
		if b.dataDescriptor {
			flags |= 0x08
		}
		writeU32(&buf, magicCentralDir)
		writeU16(&buf, 20)
		writeU16(&buf, 20)
		writeU16(&buf, flags)
		writeU16(&buf, b.method)
		writeU16(&buf, 0)
		writeU16(&buf, 0)
		writeU32(&buf, b.crc)
		writeU32(&buf, b.compSize)
		writeU32(&buf, b.uncompSize)
		writeU16(&buf, uint16(len(b.name)))
		writeU16(&buf, 0)
		writeU16(&buf, 0)
		writeU16(&buf, 0)
		writeU16(&buf, 0)
		writeU32(&buf, 0)
		writeU32(&buf, b.lhdrOffset)
		buf.WriteString(b.name)
	}
	cdirSize := uint32(buf.Len()) - cdirStart

	writeU32(&buf, magicEOCD)
	writeU16(&buf, 0)
	writeU16(&buf, 0)
	writeU16(&buf, uint16(len(built_)))
	writeU16(&buf, uint16(len(built_)))
	writeU32(&buf, cdirSize)
	writeU32(&buf, cdirStart)
	writeU16(&buf, 0)

	return buf.Bytes()
}
