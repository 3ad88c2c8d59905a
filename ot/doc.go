/*
Package ot provides a materialized view of the OpenType font tables needed to
resolve characters and feature chains to glyphs and to measure those glyphs.
Intended audience for this package are the sister packages of this module:

▪︎ otquery, which maps characters to glyphs and reports glyph bounds

▪︎ otlayout, which applies GSUB features to glyphs

▪︎ any application needing read access to a font's character map, GSUB
feature and lookup lists, or outline headers

Package `ot` will not interpret tables on behalf of the client. For example,
it is not possible to ask package `ot` for the small-caps variant of a glyph.
Clients have to check for the availability of a GSUB table and walk its
feature and lookup lists themselves (or let package otlayout do it).

Tables are decoded once, when the font is loaded, into plain Go values:

▪︎ GSUB: the FeatureList and LookupList. Single substitutions are expanded
into glyph-to-glyph maps, extension subtables keep their wrapped subtable,
and every other lookup type is kept as an opaque placeholder carrying its
type number.

▪︎ glyf/loca: the header of every glyph, i.e. its contour count and bounding
box.

▪︎ name: the font's display name, from UTF-16 name records.

▪︎ CFF: not decoded here. A CharstringInterpreter, supplied by the loader,
produces glyph paths on demand.

Bugs in fonts: many fonts in the wild contain entries that, strictly
speaking, infringe upon the OT specification. Package `ot` records such
problems as FontError and FontWarning values and keeps going wherever the
remaining data is still usable.

# Status

Only what is needed for glyph lookup and measurement is decoded. No font
variations.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ot

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'font.opentype'
func tracer() tracing.Trace {
	return tracing.Select("font.opentype")
}
