package ot

import (
	"encoding/binary"
)

// Helpers to assemble synthetic font tables for tests.

func putU16(b []byte, at int, v uint16) {
	binary.BigEndian.PutUint16(b[at:at+2], v)
}

func putU32(b []byte, at int, v uint32) {
	binary.BigEndian.PutUint32(b[at:at+4], v)
}

func coverageFmt1(glyphs ...uint16) []byte {
	out := make([]byte, 4+len(glyphs)*2)
	putU16(out, 0, 1)
	putU16(out, 2, uint16(len(glyphs)))
	for i, g := range glyphs {
		putU16(out, 4+i*2, g)
	}
	return out
}

// coverageFmt2 takes triples of (start, end, startCoverageIndex).
func coverageFmt2(ranges ...[3]uint16) []byte {
	out := make([]byte, 4+len(ranges)*6)
	putU16(out, 0, 2)
	putU16(out, 2, uint16(len(ranges)))
	for i, r := range ranges {
		putU16(out, 4+i*6, r[0])
		putU16(out, 6+i*6, r[1])
		putU16(out, 8+i*6, r[2])
	}
	return out
}

func singleFmt1(delta int16, coverage []byte) []byte {
	out := make([]byte, 6)
	putU16(out, 0, 1)
	putU16(out, 2, 6)
	putU16(out, 4, uint16(delta))
	return append(out, coverage...)
}

// singleFmt2 substitutes pairs[i][0] by pairs[i][1], using a format 1 coverage.
func singleFmt2(pairs ...[2]uint16) []byte {
	n := len(pairs)
	out := make([]byte, 6+2*n)
	putU16(out, 0, 2)
	putU16(out, 2, uint16(6+2*n))
	putU16(out, 4, uint16(n))
	glyphs := make([]uint16, n)
	for i, p := range pairs {
		glyphs[i] = p[0]
		putU16(out, 6+2*i, p[1])
	}
	return append(out, coverageFmt1(glyphs...)...)
}

func extensionSubst(innerType uint16, inner []byte) []byte {
	out := make([]byte, 8)
	putU16(out, 0, 1)
	putU16(out, 2, innerType)
	putU32(out, 4, 8)
	return append(out, inner...)
}

// opaqueSubTable is a sub-table of a lookup type which is not decoded.
func opaqueSubTable(format uint16) []byte {
	out := make([]byte, 6)
	putU16(out, 0, format)
	return out
}

func lookupTable(lookupType uint16, subtables ...[]byte) []byte {
	hdr := 6 + 2*len(subtables)
	out := make([]byte, hdr)
	putU16(out, 0, lookupType)
	putU16(out, 4, uint16(len(subtables)))
	for i, st := range subtables {
		putU16(out, 6+2*i, uint16(len(out)))
		out = append(out, st...)
	}
	return out
}

type testFeature struct {
	tag     string
	lookups []uint16
}

// gsubTable assembles a GSUB version 1.0 table without a ScriptList.
func gsubTable(features []testFeature, lookups ...[]byte) []byte {
	out := make([]byte, 10)
	putU16(out, 0, 1)
	putU16(out, 6, 10)
	// FeatureList
	flist := make([]byte, 2+6*len(features))
	putU16(flist, 0, uint16(len(features)))
	for i, f := range features {
		copy(flist[2+6*i:], []byte((f.tag + "    ")[:4]))
		putU16(flist, 6+6*i, uint16(len(flist)))
		ftable := make([]byte, 4+2*len(f.lookups))
		putU16(ftable, 2, uint16(len(f.lookups)))
		for j, inx := range f.lookups {
			putU16(ftable, 4+2*j, inx)
		}
		flist = append(flist, ftable...)
	}
	out = append(out, flist...)
	// LookupList
	putU16(out, 8, uint16(len(out)))
	llist := make([]byte, 2+2*len(lookups))
	putU16(llist, 0, uint16(len(lookups)))
	for i, l := range lookups {
		putU16(llist, 2+2*i, uint16(len(llist)))
		llist = append(llist, l...)
	}
	return append(out, llist...)
}

// headTable returns a 54-byte 'head' table.
func headTable(unitsPerEm uint16, indexToLocFormat uint16) []byte {
	out := make([]byte, 54)
	putU32(out, 0, 0x00010000)
	putU32(out, 12, 0x5F0F3CF5)
	putU16(out, 18, unitsPerEm)
	putU16(out, 50, indexToLocFormat)
	return out
}

// maxpTable returns a version 0.5 'maxp' table.
func maxpTable(numGlyphs uint16) []byte {
	out := make([]byte, 6)
	putU32(out, 0, 0x00005000)
	putU16(out, 4, numGlyphs)
	return out
}

// glyfAndLoca assembles tables 'glyf' and 'loca' (short format) from glyph
// headers. A nil header produces an empty glyph.
func glyfAndLoca(headers ...*GlyfHeader) (glyf, loca []byte) {
	loca = make([]byte, 2*(len(headers)+1))
	for i, h := range headers {
		putU16(loca, 2*i, uint16(len(glyf)/2))
		if h == nil {
			continue
		}
		g := make([]byte, 12) // header plus 2 bytes of padding
		putU16(g, 0, uint16(h.NumberOfContours))
		putU16(g, 2, uint16(h.XMin))
		putU16(g, 4, uint16(h.YMin))
		putU16(g, 6, uint16(h.XMax))
		putU16(g, 8, uint16(h.YMax))
		glyf = append(glyf, g...)
	}
	putU16(loca, 2*len(headers), uint16(len(glyf)/2))
	return glyf, loca
}

type testName struct {
	platform, encoding uint16
	id                 NameID
	value              string
}

// nameTable assembles a 'name' table version 0. Values are stored as
// UTF-16BE, except for Macintosh records, which are stored as bytes.
func nameTable(names ...testName) []byte {
	storageAt := 6 + nameRecordSize*len(names)
	out := make([]byte, storageAt)
	putU16(out, 2, uint16(len(names)))
	putU16(out, 4, uint16(storageAt))
	var storage []byte
	for i, n := range names {
		var str []byte
		if n.platform == 1 {
			str = []byte(n.value)
		} else {
			for _, r := range n.value {
				str = append(str, byte(r>>8), byte(r))
			}
		}
		rec := out[6+nameRecordSize*i:]
		putU16(rec, 0, n.platform)
		putU16(rec, 2, n.encoding)
		putU16(rec, 6, uint16(n.id))
		putU16(rec, 8, uint16(len(str)))
		putU16(rec, 10, uint16(len(storage)))
		storage = append(storage, str...)
	}
	return append(out, storage...)
}
