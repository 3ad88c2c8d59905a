package otquery

import (
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/glyphbox/ot"
)

// ResolveBase returns the glyph index the font's character map assigns to the
// first code point of text. All further code points are ignored.
//
// From the OpenType specification: character codes that do not correspond to any glyph in
// the font should be mapped to glyph index 0. The glyph at this location must be a special
// glyph representing a missing character, commonly known as '.notdef'.
// ResolveBase reports such code points with ErrCodepointNotMapped.
func ResolveBase(otf *ot.Font, text string) (ot.GlyphIndex, error) {
	if len(text) == 0 {
		return 0, ErrEmptyInput
	}
	r, _ := utf8.DecodeRuneInString(text)
	if otf == nil || otf.CMap == nil {
		return 0, fmt.Errorf("%w: %q (U+%04X), font has no character map", ErrCodepointNotMapped, r, r)
	}
	gid, ok := otf.CMap.Lookup(r)
	if !ok {
		return 0, fmt.Errorf("%w: %q (U+%04X)", ErrCodepointNotMapped, r, r)
	}
	tracer().Debugf("code point U+%04X maps to glyph %d", r, gid)
	return gid, nil
}
