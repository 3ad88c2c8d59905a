package ot

// CharacterMap maps Unicode code points to glyph indices. A font's
// CharacterMap is the "best" of its cmap subtables, i.e. the one with the
// widest Unicode coverage.
//
// From the OpenType specification: character codes that do not correspond to
// any glyph in the font should be mapped to glyph index 0. Implementations
// report such code points as not contained.
type CharacterMap interface {
	Lookup(r rune) (GlyphIndex, bool)
}

// MapCMap is a CharacterMap backed by a Go map. It is used for fonts
// assembled in memory.
type MapCMap map[rune]GlyphIndex

// Lookup returns the glyph for a code point.
func (m MapCMap) Lookup(r rune) (GlyphIndex, bool) {
	gid, ok := m[r]
	if !ok || gid == 0 {
		return 0, false
	}
	return gid, true
}
