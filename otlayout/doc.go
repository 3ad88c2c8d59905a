/*
Package otlayout applies OpenType layout features to glyphs.

Features are selected by their tag, e.g. 'smcp' for small capitals. Only
GSUB Single Substitutions are applied, either stored directly in a lookup or
wrapped in an Extension Substitution. Lookups of other types are skipped and
reported as diagnostics.

Applying a feature never fails. If a feature cannot be applied to a glyph,
the glyph is returned unchanged and the reason is reported to a
DiagnosticSink, if one is given.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otlayout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tyse.fonts'
func tracer() tracing.Trace {
	return tracing.Select("tyse.fonts")
}
