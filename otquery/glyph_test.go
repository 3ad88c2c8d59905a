package otquery

import (
	"errors"
	"testing"

	"github.com/npillmayer/glyphbox/ot"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font/sfnt"
)

// --- Test Suite Preparation ------------------------------------------------

type GlyphTestEnviron struct {
	suite.Suite
	ttf *ot.Font // TrueType outlines
	otf *ot.Font // PostScript outlines
}

// listen for 'go test' command --> run test methods
func TestGlyphFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	suite.Run(t, new(GlyphTestEnviron))
}

// run once, before test suite methods
func (env *GlyphTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("tyse.fonts").SetTraceLevel(tracing.LevelInfo)
	cmap := ot.MapCMap{'A': 1, 'B': 2, 'Ä': 3, '日': 4}
	env.ttf = &ot.Font{
		CMap: cmap,
		Glyf: ot.NewGlyfTable([]ot.GlyfHeader{
			{},
			{NumberOfContours: 2, XMin: 10, YMin: -5, XMax: 200, YMax: 700},
			{NumberOfContours: 2, XMin: 0, YMin: 0, XMax: 500, YMax: 700},
			{NumberOfContours: -1, XMin: 10, YMin: -5, XMax: 200, YMax: 900},
		}),
	}
	env.otf = &ot.Font{
		CMap: cmap,
		CFF: &ot.CFFTable{NumGlyphs: 5, Charstrings: ot.CharstringFunc(testCharstrings)},
	}
}

func testCharstrings(gid ot.GlyphIndex) (ot.GlyphPath, error) {
	switch gid {
	case 1:
		return ot.GlyphPath{Segments: []ot.PathSegment{
			{Op: ot.MoveTo, Args: [3]ot.PathPoint{{X: 10, Y: 0}}},
			{Op: ot.LineTo, Args: [3]ot.PathPoint{{X: 200, Y: 0}}},
			{Op: ot.CubeTo, Args: [3]ot.PathPoint{{X: 220.5, Y: 300}, {X: 100, Y: 712.25}, {X: 10, Y: 700}}},
			{Op: ot.LineTo, Args: [3]ot.PathPoint{{X: 10, Y: 0}}},
		}}, nil
	case 2:
		return ot.GlyphPath{Segments: []ot.PathSegment{
			{Op: ot.MoveTo, Args: [3]ot.PathPoint{{X: -0.5, Y: -12.2}}},
			{Op: ot.QuadTo, Args: [3]ot.PathPoint{{X: 50, Y: 80}, {X: 100, Y: 0}}},
		}}, nil
	case 3:
		return ot.GlyphPath{Composite: true}, nil
	case 4:
		return ot.GlyphPath{}, errors.New("charstring stack overflow")
	}
	return ot.GlyphPath{}, nil
}

// --- Tests -----------------------------------------------------------------

func (env *GlyphTestEnviron) TestResolveBase() {
	gid, err := ResolveBase(env.ttf, "A")
	env.Require().NoError(err)
	env.Equal(ot.GlyphIndex(1), gid)
	gid, err = ResolveBase(env.ttf, "Äpfel")
	env.Require().NoError(err, "only the first code point is consulted")
	env.Equal(ot.GlyphIndex(3), gid)
	gid, err = ResolveBase(env.ttf, "日.jp78")
	env.Require().NoError(err)
	env.Equal(ot.GlyphIndex(4), gid)
}

func (env *GlyphTestEnviron) TestResolveBaseFailures() {
	_, err := ResolveBase(env.ttf, "")
	env.ErrorIs(err, ErrEmptyInput)
	_, err = ResolveBase(env.ttf, "Z")
	env.ErrorIs(err, ErrCodepointNotMapped)
	env.Contains(err.Error(), "U+005A")
	_, err = ResolveBase(&ot.Font{}, "A")
	env.ErrorIs(err, ErrCodepointNotMapped)
}

func (env *GlyphTestEnviron) TestTrueTypeBounds() {
	bbox, err := GlyphBounds(env.ttf, 1)
	env.Require().NoError(err)
	env.Equal(BoundingBox{MinX: 10, MinY: -5, MaxX: 200, MaxY: 700}, bbox)
	env.Equal("x: [10, 200]  y: [-5, 700]", bbox.String())
	bbox, err = GlyphBounds(env.ttf, 0)
	env.Require().NoError(err)
	env.True(bbox.IsEmpty())
}

func (env *GlyphTestEnviron) TestTrueTypeBoundsFailures() {
	_, err := GlyphBounds(env.ttf, 3)
	env.ErrorIs(err, ErrCompositeUnsupported)
	_, err = GlyphBounds(env.ttf, 4)
	env.ErrorIs(err, ErrGlyphNotFound)
}

func (env *GlyphTestEnviron) TestPostScriptBounds() {
	bbox, err := GlyphBounds(env.otf, 1)
	env.Require().NoError(err)
	env.Equal(BoundingBox{MinX: 10, MinY: 0, MaxX: 221, MaxY: 713}, bbox,
		"control points count, boxes are rounded outwards")
	bbox, err = GlyphBounds(env.otf, 2)
	env.Require().NoError(err)
	env.Equal(BoundingBox{MinX: -1, MinY: -13, MaxX: 100, MaxY: 80}, bbox)
	env.Equal(sfnt.Units(101), bbox.Dx())
	bbox, err = GlyphBounds(env.otf, 0)
	env.Require().NoError(err)
	env.Equal(BoundingBox{}, bbox, "glyph without path")
}

func (env *GlyphTestEnviron) TestPostScriptBoundsFailures() {
	_, err := GlyphBounds(env.otf, 3)
	env.ErrorIs(err, ErrCompositeUnsupported)
	_, err = GlyphBounds(env.otf, 5)
	env.ErrorIs(err, ErrGlyphNotFound)
	_, err = GlyphBounds(env.otf, 4)
	env.Error(err)
	env.NotErrorIs(err, ErrGlyphNotFound)
}

func (env *GlyphTestEnviron) TestTrueTypeTakesPrecedence() {
	both := &ot.Font{Glyf: env.ttf.Glyf, CFF: env.otf.CFF}
	bbox, err := GlyphBounds(both, 1)
	env.Require().NoError(err)
	env.Equal(BoundingBox{MinX: 10, MinY: -5, MaxX: 200, MaxY: 700}, bbox)
}

func (env *GlyphTestEnviron) TestNoOutlines() {
	_, err := GlyphBounds(&ot.Font{}, 1)
	env.ErrorIs(err, ErrNoOutlineData)
}
