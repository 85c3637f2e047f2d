// Package internal assembles synthetic map streams for tests.
package internal

import "encoding/binary"

// Form2Map builds a FORM2 stream with the given header fields and raw
// 4-byte cell records, row-major.
func Form2Map(version uint16, width, height uint32, name, desc string, cells [][4]byte) []byte {
	buf := []byte("FORM2")
	buf = append(buf, 0) // reserved
	buf = binary.LittleEndian.AppendUint16(buf, version)
	buf = binary.LittleEndian.AppendUint32(buf, width)
	buf = binary.LittleEndian.AppendUint32(buf, height)
	buf = append(buf, byte(len(name)))
	buf = append(buf, name...)
	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(desc)))
	buf = append(buf, desc...)
	for _, c := range cells {
		buf = append(buf, c[:]...)
	}
	return buf
}

// SampleMap builds a legacy stream: 8 opaque bytes, little-endian
// dimensions, padding up to the cell data offset at byte 32, then raw
// cell records.
func SampleMap(width, height uint32, cells [][4]byte) []byte {
	buf := make([]byte, 8)
	buf = binary.LittleEndian.AppendUint32(buf, width)
	buf = binary.LittleEndian.AppendUint32(buf, height)
	buf = append(buf, make([]byte, 32-len(buf))...)
	for _, c := range cells {
		buf = append(buf, c[:]...)
	}
	return buf
}

// FillCells repeats one record width*height times.
func FillCells(width, height uint32, record [4]byte) [][4]byte {
	cells := make([][4]byte, 0, width*height)
	for i := uint32(0); i < width*height; i++ {
		cells = append(cells, record)
	}
	return cells
}
