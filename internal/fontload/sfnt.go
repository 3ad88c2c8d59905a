package fontload

import (
	"errors"

	"github.com/npillmayer/glyphbox/ot"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Every call allocates its own sfnt.Buffer, which makes the adapters safe for
// concurrent use.

// sfntCMap is the best-fit character map of a font, as selected by package
// sfnt (the Unicode subtable with the widest coverage).
type sfntCMap struct {
	f *sfnt.Font
}

func (m sfntCMap) Lookup(r rune) (ot.GlyphIndex, bool) {
	var buf sfnt.Buffer
	gid, err := m.f.GlyphIndex(&buf, r)
	if err != nil || gid == 0 {
		return 0, false
	}
	return ot.GlyphIndex(gid), true
}

// sfntNames provides glyph names from table 'post'. Package sfnt does not
// read CFF charsets, and CFF fonts usually carry a 'post' table version 3.0
// without names, so glyphs of PostScript-flavoured fonts get no name here.
type sfntNames struct {
	f *sfnt.Font
}

func (n sfntNames) GlyphName(gid ot.GlyphIndex) (string, bool) {
	var buf sfnt.Buffer
	name, err := n.f.GlyphName(&buf, sfnt.GlyphIndex(gid))
	if err != nil || name == "" {
		return "", false
	}
	return name, true
}

// charstrings interprets glyph programs with the Type 2 charstring
// interpreter of package sfnt.
type charstrings struct {
	f *sfnt.Font
}

// sfnt rejects the deprecated 'seac' form of endchar, i.e. accented
// characters composed from two other glyphs, with this message. The error
// value is unexported; the text is the one of golang.org/x/image v0.34.0
// (font/sfnt/sfnt.go, errUnsupportedType2Charstring), which returns it for
// 'seac' only. Check it when upgrading x/image.
const seacUnsupported = "sfnt: unsupported Type 2 Charstring"

func (cs charstrings) Interpret(gid ot.GlyphIndex) (ot.GlyphPath, error) {
	var buf sfnt.Buffer
	// with ppem equal to units per em, segment coordinates are font units
	ppem := fixed.I(int(cs.f.UnitsPerEm()))
	segs, err := cs.f.LoadGlyph(&buf, sfnt.GlyphIndex(gid), ppem, nil)
	if err != nil {
		return glyphLoadError(gid, err)
	}
	return pathFromSegments(segs), nil
}

// glyphLoadError translates errors of sfnt's glyph loader.
func glyphLoadError(gid ot.GlyphIndex, err error) (ot.GlyphPath, error) {
	switch {
	case errors.Is(err, sfnt.ErrNotFound):
		return ot.GlyphPath{}, ot.ErrNoSuchGlyph
	case err.Error() == seacUnsupported:
		tracer().Debugf("glyph %d is a composite (seac) glyph", gid)
		return ot.GlyphPath{Composite: true}, nil
	}
	return ot.GlyphPath{}, err
}

// pathFromSegments converts sfnt segments (26.6 fixed point, y-axis pointing
// down) to a glyph path in font units with the y-axis pointing up.
func pathFromSegments(segs sfnt.Segments) ot.GlyphPath {
	path := ot.GlyphPath{Segments: make([]ot.PathSegment, len(segs))}
	for i, seg := range segs {
		ps := ot.PathSegment{}
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			ps.Op = ot.MoveTo
		case sfnt.SegmentOpLineTo:
			ps.Op = ot.LineTo
		case sfnt.SegmentOpQuadTo:
			ps.Op = ot.QuadTo
		case sfnt.SegmentOpCubeTo:
			ps.Op = ot.CubeTo
		}
		for j, p := range seg.Args {
			ps.Args[j] = ot.PathPoint{X: float64(p.X) / 64, Y: -float64(p.Y) / 64}
		}
		path.Segments[i] = ps
	}
	return path
}
