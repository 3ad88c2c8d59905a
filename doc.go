/*
Package glyphbox reports the bounding boxes of glyphs in OpenType fonts.

Glyphs are selected by a letter, optionally followed by a chain of OpenType
features, e.g.

	A            the glyph for 'A'
	A.smcp       the small capital 'A'
	1.onum.sups  old-style figure one, then its superior variant

The letter is mapped to a glyph by the font's character map. Every feature
is then applied to the glyph in turn, using the single substitutions of
table GSUB. Finally the bounding box of the resulting glyph is taken from
the TrueType ('glyf') or PostScript ('CFF ') outlines of the font.

The work is done by the sub-packages:

▪︎ ot decodes the font tables needed,

▪︎ otquery maps characters to glyphs and measures glyphs,

▪︎ otlayout applies GSUB features,

▪︎ otlocate parses letter tokens and chains the steps above.

Package glyphbox ties them together for the common case.

# Status

Only single substitutions (optionally wrapped in extension lookups) are
supported. Composite glyphs cannot be measured.

# Links

OpenType explained:
https://docs.microsoft.com/en-us/typography/opentype/

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package glyphbox

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'glyphbox'
func tracer() tracing.Trace {
	return tracing.Select("glyphbox")
}
