package otlayout

import (
	"github.com/npillmayer/glyphbox/ot"
)

// ApplyFeature applies the GSUB feature with tag feature to glyph gid and
// returns the substituted glyph.
//
// The feature is the first record in the font's FeatureList carrying the
// tag, compared case-sensitively. Its lookups are searched in order, and
// within every lookup its sub-tables in order, where an Extension
// Substitution is replaced by the sub-table it wraps. The first Single
// Substitution covering gid wins.
//
// ApplyFeature never fails. If no substitution can be found, gid is returned
// unchanged and diagnostics are reported to sink, which may be nil.
func ApplyFeature(otf *ot.Font, gid ot.GlyphIndex, feature string, sink DiagnosticSink) ot.GlyphIndex {
	return findSingleSubstitution(otf, gid, feature, sink).Or(gid)
}

// findSingleSubstitution is the ordered search for a substitute of gid.
func findSingleSubstitution(otf *ot.Font, gid ot.GlyphIndex, feature string, sink DiagnosticSink) ot.Option[ot.GlyphIndex] {
	none := ot.None[ot.GlyphIndex]()
	if otf == nil || otf.Layout.GSub == nil {
		report(sink, Diagnostic{Kind: NoGSubTable, Glyph: gid})
		return none
	}
	gsub := otf.Layout.GSub
	rec, ok := gsub.FirstFeature(feature).Unwrap()
	if !ok {
		report(sink, Diagnostic{Kind: FeatureNotFound, Glyph: gid, Feature: feature})
		return none
	}
	tracer().Debugf("feature '%s' has %d lookups", feature, len(rec.LookupIndices))
	for _, inx := range rec.LookupIndices {
		lookup, ok := gsub.Lookup(int(inx))
		if !ok {
			tracer().Errorf("feature '%s' references lookup %d, font has %d lookups",
				feature, inx, len(gsub.LookupList))
			continue
		}
		for _, st := range lookup.SubTables {
			switch sub := ot.Unwrap(st).(type) {
			case nil:
				continue
			case *ot.SingleSubst:
				if g, ok := sub.Substitute(gid); ok {
					tracer().Debugf("feature '%s': glyph %d -> %d (lookup %d)", feature, gid, g, inx)
					return ot.Some(g)
				}
			default:
				report(sink, Diagnostic{
					Kind:       UnsupportedLookupType,
					Glyph:      gid,
					Feature:    feature,
					LookupType: sub.LookupType(),
				})
			}
		}
	}
	report(sink, Diagnostic{Kind: FeatureNoMatchForGlyph, Glyph: gid, Feature: feature})
	return none
}
