package ot

import (
	"errors"
)

// Reading bytes from a font's binary representation

var errBufferBounds = errors.New("internal inconsistency: buffer bounds error")

func u16(b []byte) uint16 {
	_ = b[1] // Bounds check hint to compiler
	return uint16(b[0])<<8 | uint16(b[1])<<0
}

func u32(b []byte) uint32 {
	_ = b[3] // Bounds check hint to compiler
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])<<0
}

// binarySegm is a segment of byte data, usually a table or a sub-table of a
// font's binary data. All reads are bounds-checked.
type binarySegm []byte

// view returns n bytes at the given offset.
// The byte segment returned is a sub-slice of b.
func (b binarySegm) view(offset, n int) (binarySegm, error) {
	if offset < 0 || n <= 0 || offset+n > len(b) {
		return nil, errBufferBounds
	}
	return b[offset : offset+n], nil
}

// from returns the tail of b, starting at offset.
func (b binarySegm) from(offset int) (binarySegm, error) {
	if offset < 0 || offset >= len(b) {
		return nil, errBufferBounds
	}
	return b[offset:], nil
}

// u16 returns the uint16 in b at the relative offset i.
func (b binarySegm) u16(i int) (uint16, error) {
	buf, err := b.view(i, 2)
	if err != nil {
		return 0, err
	}
	return u16(buf), nil
}

// i16 returns the int16 in b at the relative offset i.
func (b binarySegm) i16(i int) (int16, error) {
	n, err := b.u16(i)
	return int16(n), err
}

// u32 returns the uint32 in b at the relative offset i.
func (b binarySegm) u32(i int) (uint32, error) {
	buf, err := b.view(i, 4)
	if err != nil {
		return 0, err
	}
	return u32(buf), nil
}

// U16 is a convenience accessor which returns 0 for out-of-bounds reads.
func (b binarySegm) U16(i int) uint16 {
	n, err := b.u16(i)
	if err != nil {
		return 0
	}
	return n
}

// array16 reads a uint16 count at countAt, followed by count records of
// recordSize bytes each, and returns the records block.
func (b binarySegm) array16(countAt, recordSize int) (int, binarySegm, error) {
	count, err := b.u16(countAt)
	if err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, binarySegm{}, nil
	}
	records, err := b.view(countAt+2, int(count)*recordSize)
	if err != nil {
		return 0, nil, err
	}
	return int(count), records, nil
}

// link16 follows a 16-bit offset stored at b[at:], relative to b.
// A NULL offset is reported as an error.
func (b binarySegm) link16(at int) (binarySegm, error) {
	off, err := b.u16(at)
	if err != nil {
		return nil, err
	}
	if off == 0 {
		return nil, errNullOffset
	}
	return b.from(int(off))
}

// link32 follows a 32-bit offset stored at b[at:], relative to b.
func (b binarySegm) link32(at int) (binarySegm, error) {
	off, err := b.u32(at)
	if err != nil {
		return nil, err
	}
	if off == 0 {
		return nil, errNullOffset
	}
	if uint64(off) >= uint64(len(b)) {
		return nil, errBufferBounds
	}
	return b[off:], nil
}

var errNullOffset = errors.New("NULL offset")
