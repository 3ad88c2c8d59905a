package ot

import "strconv"

// Font represents the decoded structure of an OpenType font, restricted to
// the tables needed for glyph lookup and measurement.
//
// A Font is created once by a loader and must not be modified afterwards.
// All accessors are read-only, therefore a Font may be shared between
// goroutines.
type Font struct {
	Name       string       // full font name, if available
	UnitsPerEm uint16       // from table 'head'
	NumGlyphs  int          // from table 'maxp'
	CMap       CharacterMap // best-fit character map; mandatory
	Glyf       *GlyfTable   // TrueType outlines, or nil
	CFF        *CFFTable    // PostScript outlines, or nil
	Names      GlyphNamer   // glyph names, or nil
	Layout     struct {     // OpenType layout tables
		GSub *GSubTable // OpenType layout GSUB, or nil
	}
	parseErrors   []FontError   // Errors accumulated during parsing
	parseWarnings []FontWarning // Warnings accumulated during parsing
}

// HasTrueTypeOutlines reports whether the font carries 'glyf' outlines.
func (otf *Font) HasTrueTypeOutlines() bool {
	return otf != nil && otf.Glyf != nil
}

// HasPostScriptOutlines reports whether the font carries 'CFF ' outlines.
func (otf *Font) HasPostScriptOutlines() bool {
	return otf != nil && otf.CFF != nil
}

// GlyphName returns a human readable name for a glyph. If the font does not
// provide a name, a name of the form "gid42" is synthesized.
func (otf *Font) GlyphName(gid GlyphIndex) string {
	if otf != nil && otf.Names != nil {
		if name, ok := otf.Names.GlyphName(gid); ok && name != "" {
			return name
		}
	}
	return fallbackGlyphName(gid)
}

// Errors returns all errors encountered during font parsing.
// These errors represent issues that were found but did not prevent parsing from completing.
func (otf *Font) Errors() []FontError {
	if otf.parseErrors == nil {
		return []FontError{}
	}
	return otf.parseErrors
}

// Warnings returns all warnings encountered during font parsing.
func (otf *Font) Warnings() []FontWarning {
	if otf.parseWarnings == nil {
		return []FontWarning{}
	}
	return otf.parseWarnings
}

// HasCriticalErrors returns true if any critical errors were encountered during parsing.
func (otf *Font) HasCriticalErrors() bool {
	for _, err := range otf.parseErrors {
		if err.Severity == SeverityCritical {
			return true
		}
	}
	return false
}

// GlyphIndex is a glyph index in a font.
type GlyphIndex uint16

// GlyphNamer maps glyph indices to glyph names.
type GlyphNamer interface {
	GlyphName(gid GlyphIndex) (string, bool)
}

// GlyphNames is a map-based GlyphNamer.
type GlyphNames map[GlyphIndex]string

// GlyphName returns the name for a glyph, if present.
func (names GlyphNames) GlyphName(gid GlyphIndex) (string, bool) {
	name, ok := names[gid]
	return name, ok
}

func fallbackGlyphName(gid GlyphIndex) string {
	return "gid" + strconv.Itoa(int(gid))
}

// --- Tag -------------------------------------------------------------------

// Tag is a 4-byte identifier of a table, feature, script or language system,
// stored big-endian. Tags shorter than 4 characters are padded with spaces,
// e.g. "CFF ".
type Tag uint32

// MakeTag creates a Tag from the first 4 bytes of b. Missing bytes count as
// zero bytes in front.
func MakeTag(b []byte) Tag {
	var buf [4]byte
	if len(b) > 4 {
		b = b[:4]
	}
	copy(buf[4-len(b):], b)
	return Tag(u32(buf[:]))
}

// T creates a Tag from a string, e.g. T("smcp"). Short strings are padded
// with spaces, long ones are cut.
func T(t string) Tag {
	buf := [4]byte{' ', ' ', ' ', ' '}
	copy(buf[:], t)
	return Tag(u32(buf[:]))
}

func (t Tag) String() string {
	return string([]byte{byte(t >> 24), byte(t >> 16), byte(t >> 8), byte(t)})
}
