/*
Package otquery answers questions about glyphs of an OpenType font:
which glyph a character maps to, and how large a glyph is.

Glyph bounds are taken from the glyph headers of table 'glyf' for TrueType
outlines, or computed from the interpreted charstring for PostScript (CFF)
outlines. Composite glyphs are not supported.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otquery

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tyse.fonts'
func tracer() tracing.Trace {
	return tracing.Select("tyse.fonts")
}

// Errors returned by glyph queries. They are wrapped with details about the
// failing input; use errors.Is to test for them.
var (
	ErrEmptyInput           = errors.New("letter is empty")
	ErrCodepointNotMapped   = errors.New("letter not found in font")
	ErrGlyphNotFound        = errors.New("glyph not found in font")
	ErrCompositeUnsupported = errors.New("composite glyph is not supported")
	ErrNoOutlineData        = errors.New("font has neither TrueType nor PostScript outlines")
)
