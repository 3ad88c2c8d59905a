package glyphbox

import (
	"fmt"

	"github.com/npillmayer/glyphbox/internal/fontload"
	"github.com/npillmayer/glyphbox/ot"
	"github.com/npillmayer/glyphbox/otlayout"
	"github.com/npillmayer/glyphbox/otlocate"
	"github.com/npillmayer/glyphbox/otquery"
)

// LoadFont loads font number index from a font file. Single fonts (TTF, OTF)
// have index 0, collections (TTC, OTC) may contain more fonts.
func LoadFont(path string, index int) (*ot.Font, error) {
	sf, err := fontload.LoadOpenTypeFont(path, index)
	if err != nil {
		return nil, err
	}
	otf, err := sf.Decode()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	tracer().Infof("loaded font %q (#%d) from %s", otf.Name, index, path)
	return otf, nil
}

// ParseFont is LoadFont for font data in memory.
func ParseFont(data []byte, index int) (*ot.Font, error) {
	sf, err := fontload.ParseOpenTypeFont(data, index)
	if err != nil {
		return nil, err
	}
	return sf.Decode()
}

// Measurement is the result of measuring a token.
type Measurement struct {
	Token     otlocate.Token
	Glyph     ot.GlyphIndex
	GlyphName string
	BBox      otquery.BoundingBox
}

// Measure locates the glyph for a token (see otlocate.ParseToken) and returns
// its bounding box. Features which cannot be applied are reported to sink,
// which may be nil, and do not cause an error.
//
// Measure is safe for concurrent use on the same font if sink is.
func Measure(otf *ot.Font, token string, sink otlayout.DiagnosticSink) (Measurement, error) {
	m := Measurement{Token: otlocate.ParseToken(token)}
	gid, err := otlocate.LocateToken(otf, m.Token, sink)
	if err != nil {
		return m, err
	}
	m.Glyph = gid
	m.GlyphName = otf.GlyphName(gid)
	if m.BBox, err = otquery.GlyphBounds(otf, gid); err != nil {
		return m, err
	}
	tracer().Debugf("%s -> %s (%d): %s", token, m.GlyphName, gid, m.BBox)
	return m, nil
}
