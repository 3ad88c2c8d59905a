package otquery

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/glyphbox/ot"
	"golang.org/x/image/font/sfnt"
)

// --- Glyph Routines --------------------------------------------------------

// GlyphBounds returns the bounding box of a glyph, in font design units.
//
// For fonts with TrueType outlines the box is the one stored in the glyph's
// header in table 'glyf'. For fonts with PostScript outlines the charstring of
// the glyph is interpreted and the box encloses every point of the resulting
// path, including off-curve control points. If a font carries both, the
// TrueType outlines are used.
//
// Composite glyphs are reported with ErrCompositeUnsupported, glyphs missing
// from the outline store with ErrGlyphNotFound, and fonts without outlines
// with ErrNoOutlineData.
func GlyphBounds(otf *ot.Font, gid ot.GlyphIndex) (BoundingBox, error) {
	switch {
	case otf.HasTrueTypeOutlines():
		return glyfBounds(otf.Glyf, gid)
	case otf.HasPostScriptOutlines():
		return cffBounds(otf.CFF, gid)
	}
	return BoundingBox{}, ErrNoOutlineData
}

func glyfBounds(glyf *ot.GlyfTable, gid ot.GlyphIndex) (BoundingBox, error) {
	h, ok := glyf.Glyph(gid)
	if !ok {
		return BoundingBox{}, fmt.Errorf("%w: glyph %d in table glyf", ErrGlyphNotFound, gid)
	}
	if h.IsComposite() {
		return BoundingBox{}, fmt.Errorf("%w: glyph %d", ErrCompositeUnsupported, gid)
	}
	return BoundingBox{
		MinX: sfnt.Units(h.XMin),
		MinY: sfnt.Units(h.YMin),
		MaxX: sfnt.Units(h.XMax),
		MaxY: sfnt.Units(h.YMax),
	}, nil
}

func cffBounds(cff *ot.CFFTable, gid ot.GlyphIndex) (BoundingBox, error) {
	path, err := cff.Path(gid)
	if errors.Is(err, ot.ErrNoSuchGlyph) {
		return BoundingBox{}, fmt.Errorf("%w: glyph %d in table CFF", ErrGlyphNotFound, gid)
	} else if err != nil {
		return BoundingBox{}, fmt.Errorf("glyph %d: %w", gid, err)
	}
	if path.Composite {
		return BoundingBox{}, fmt.Errorf("%w: glyph %d", ErrCompositeUnsupported, gid)
	}
	return pathBounds(path), nil
}

// pathBounds returns the control box of a path, rounded outwards to whole
// font units. An empty path has an empty box at the origin.
func pathBounds(path ot.GlyphPath) BoundingBox {
	if len(path.Segments) == 0 {
		return BoundingBox{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, seg := range path.Segments {
		for _, p := range seg.Points() {
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		}
	}
	return BoundingBox{
		MinX: sfnt.Units(math.Floor(minX)),
		MinY: sfnt.Units(math.Floor(minY)),
		MaxX: sfnt.Units(math.Ceil(maxX)),
		MaxY: sfnt.Units(math.Ceil(maxY)),
	}
}
