package otlocate

import (
	"github.com/npillmayer/glyphbox/ot"
	"github.com/npillmayer/glyphbox/otlayout"
	"github.com/npillmayer/glyphbox/otquery"
)

// Locate returns the glyph for a token (see ParseToken).
//
// The letter is mapped to its base glyph by the font's character map. Errors
// of this step are returned unchanged. Then every feature of the token is
// applied to the glyph of the previous step. Features which cannot be applied
// leave the glyph unchanged and are reported to sink, which may be nil.
func Locate(otf *ot.Font, text string, sink otlayout.DiagnosticSink) (ot.GlyphIndex, error) {
	tok := ParseToken(text)
	return LocateToken(otf, tok, sink)
}

// LocateToken is Locate for an already parsed token.
func LocateToken(otf *ot.Font, tok Token, sink otlayout.DiagnosticSink) (ot.GlyphIndex, error) {
	gid, err := otquery.ResolveBase(otf, tok.Char)
	if err != nil {
		return 0, err
	}
	for _, feature := range tok.Features {
		next := otlayout.ApplyFeature(otf, gid, feature, sink)
		tracer().Debugf("%s: '%s' %d -> %d", tok.Char, feature, gid, next)
		gid = next
	}
	return gid, nil
}
