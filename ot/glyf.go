package ot

import "fmt"

// GlyfHeader is the header every glyph description in table 'glyf' starts
// with. The bounding box is stored in font design units.
//
// If NumberOfContours is greater than or equal to zero, this is a simple
// glyph. If negative, this is a composite glyph, built from other glyphs.
// Glyphs without an outline (e.g., 'space') have an all-zero header.
type GlyfHeader struct {
	NumberOfContours int16
	XMin, YMin       int16
	XMax, YMax       int16
}

// IsComposite reports whether the glyph references other glyphs instead of
// owning contours.
func (h GlyfHeader) IsComposite() bool {
	return h.NumberOfContours < 0
}

// GlyfTable holds the glyph headers of a TrueType-flavoured font, indexed by
// glyph index. It is decoded from tables 'loca' and 'glyf'.
type GlyfTable struct {
	headers []GlyfHeader
	broken  map[GlyphIndex]bool // glyphs whose data lies outside of 'glyf'
}

// NewGlyfTable creates a glyf table from a list of glyph headers, where
// the i-th header belongs to glyph index i.
func NewGlyfTable(headers []GlyfHeader) *GlyfTable {
	return table
}

// Len returns the number of glyphs in the table.
func (t *GlyfTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.headers)
}

// Glyph returns the header of a glyph. If the glyph index is not contained in
// the table, or the glyph's data could not be read, false is returned.
func (t *GlyfTable) Glyph(gid GlyphIndex) (GlyfHeader, bool) {
	if t == nil || int(gid) >= len(t.headers) || t.broken[gid] {
		return GlyfHeader{}, false
	}
	return t.headers[gid], true
}

// --- Parsing ---------------------------------------------------------------

// parseGlyf decodes the glyph headers for numGlyphs glyphs.
// indexToLocFormat is taken from table 'head': 0 for short (uint16/2) offsets,
// 1 for long (uint32) offsets in table 'loca'.
func parseGlyf(loca, glyf binarySegm, numGlyphs int, indexToLocFormat int16, ec *errorCollector) *GlyfTable {
	offset := shortLocaOffset
	if indexToLocFormat == 1 {
		offset = longLocaOffset
	}
	table := &GlyfTable{headers: make([]GlyfHeader, numGlyphs)}
	for gid := 0; gid < numGlyphs; gid++ {
		from, err1 := offset(loca, gid)
		to, err2 := offset(loca, gid+1)
		if err1 != nil || err2 != nil {
			ec.addError(T("loca"), "Offsets", "table too small for glyph count", SeverityMajor)
			table.headers = table.headers[:gid]
			break
		}
		if to <= from { // no outline
			continue
		}
		h, err := glyf.view(int(from), 10)
		if err != nil {
			ec.addError(T("glyf"), fmt.Sprintf("Glyph %d", gid), "glyph data exceeds table bounds", SeverityMajor)
			if table.broken == nil {
				table.broken = make(map[GlyphIndex]bool)
			}
			table.broken[GlyphIndex(gid)] = true
			continue
		}
		table.headers[gid] = GlyfHeader{
			NumberOfContours: int16(u16(h[0:])),
			XMin:             int16(u16(h[2:])),
			YMin:             int16(u16(h[4:])),
			XMax:             int16(u16(h[6:])),
			YMax:             int16(u16(h[8:])),
		}
	}
	return table
}

func shortLocaOffset(loca binarySegm, gid int) (uint32, error) {
	loc, err := loca.u16(gid * 2)
	return uint32(loc) * 2, err
}

func longLocaOffset(loca binarySegm, gid int) (uint32, error) {
	return loca.u32(gid * 4)
}
