package ot

import (
	"errors"
)

// CFFTable gives access to the glyph outlines of a PostScript-flavoured
// font. Charstrings are not decoded by this package; interpreting them is
// left to a CharstringInterpreter, usually provided by the font loader.
type CFFTable struct {
	NumGlyphs   int
	Charstrings CharstringInterpreter
}

// CharstringInterpreter runs the charstring program of a glyph and returns
// the resulting path.
type CharstringInterpreter interface {
	Interpret(gid GlyphIndex) (GlyphPath, error)
}

// CharstringFunc is an adapter to use an ordinary function as a
// CharstringInterpreter.
type CharstringFunc func(gid GlyphIndex) (GlyphPath, error)

// Interpret calls f(gid).
func (f CharstringFunc) Interpret(gid GlyphIndex) (GlyphPath, error) {
	return f(gid)
}

// ErrNoSuchGlyph is returned for glyph indices outside of a font's glyph set.
var ErrNoSuchGlyph = errors.New("no such glyph")

// Path returns the outline of a glyph. If the glyph index is not contained
// in the font, ErrNoSuchGlyph is returned.
func (t *CFFTable) Path(gid GlyphIndex) (GlyphPath, error) {
	if t == nil || int(gid) >= t.NumGlyphs || t.Charstrings == nil {
		return GlyphPath{}, ErrNoSuchGlyph
	}
	return t.Charstrings.Interpret(gid)
}

// GlyphPath is the outline of a glyph in font design units, y-axis pointing
// upwards. Composite is set for glyphs built from other glyphs (the 'seac'
// accented-character operator of Type 1/CFF charstrings).
type GlyphPath struct {
	Segments  []PathSegment
	Composite bool
}

// PathOp is the drawing operation of a path segment.
type PathOp uint8

// Path operations. The number of points a segment uses depends on its
// operation: 1 for MoveTo and LineTo, 2 for QuadTo (control, end), 3 for
// CubeTo (control, control, end).
const (
	MoveTo PathOp = iota
	LineTo
	QuadTo
	CubeTo
)

// PathPoint is a point in font design units. Charstrings may produce
// fractional coordinates.
type PathPoint struct {
	X, Y float64
}

// PathSegment is a single drawing operation of a glyph path.
type PathSegment struct {
	Op   PathOp
	Args [3]PathPoint
}

// Points returns the points a segment uses, including off-curve control points.
func (seg PathSegment) Points() []PathPoint {
	switch seg.Op {
	case QuadTo:
		return seg.Args[:2]
	case CubeTo:
		return seg.Args[:3]
	default:
		return seg.Args[:1]
	}
}
