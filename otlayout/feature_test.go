package otlayout

import (
	"testing"

	"github.com/npillmayer/glyphbox/ot"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func single(mapping map[ot.GlyphIndex]ot.GlyphIndex) *ot.SingleSubst {
	return &ot.SingleSubst{Format: 2, Mapping: mapping}
}

func testFont() *ot.Font {
	otf := &ot.Font{}
	otf.Layout.GSub = &ot.GSubTable{
		FeatureList: []ot.FeatureRecord{
			{Tag: ot.T("smcp"), LookupIndices: []uint16{0, 1}},
			{Tag: ot.T("onum"), LookupIndices: []uint16{2}},
			{Tag: ot.T("liga"), LookupIndices: []uint16{3}},
			{Tag: ot.T("smcp"), LookupIndices: []uint16{4}},
			{Tag: ot.T("brkn"), LookupIndices: []uint16{9, 2}},
		},
		LookupList: []ot.Lookup{
			{Type: ot.GSubLookupTypeLigature, SubTables: []ot.SubTable{
				&ot.OtherSubst{Type: ot.GSubLookupTypeLigature, Format: 1},
			}},
			{Type: ot.GSubLookupTypeExtensionSubs, SubTables: []ot.SubTable{
				&ot.ExtensionSubst{Inner: single(map[ot.GlyphIndex]ot.GlyphIndex{1: 2})},
				single(map[ot.GlyphIndex]ot.GlyphIndex{5: 6}),
			}},
			{Type: ot.GSubLookupTypeSingle, SubTables: []ot.SubTable{
				single(map[ot.GlyphIndex]ot.GlyphIndex{2: 3}),
			}},
			{Type: ot.GSubLookupTypeChainingContext, SubTables: []ot.SubTable{
				&ot.OtherSubst{Type: ot.GSubLookupTypeChainingContext, Format: 3},
			}},
			{Type: ot.GSubLookupTypeSingle, SubTables: []ot.SubTable{
				single(map[ot.GlyphIndex]ot.GlyphIndex{1: 99}),
			}},
		},
	}
	return otf
}

func TestApplyFeature(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	//
	otf := testFont()
	tests := []struct {
		name    string
		glyph   ot.GlyphIndex
		feature string
		want    ot.GlyphIndex
		kinds   []DiagnosticKind
	}{
		{"extension-wrapped single", 1, "smcp", 2, []DiagnosticKind{UnsupportedLookupType}},
		{"second sub-table", 5, "smcp", 6, []DiagnosticKind{UnsupportedLookupType}},
		{"plain single", 2, "onum", 3, []DiagnosticKind{}},
		{"glyph not covered", 7, "smcp", 7, []DiagnosticKind{UnsupportedLookupType, FeatureNoMatchForGlyph}},
		{"unknown feature", 1, "xxxx", 1, []DiagnosticKind{FeatureNotFound}},
		{"empty feature tag", 1, "", 1, []DiagnosticKind{FeatureNotFound}},
		{"tags are case-sensitive", 1, "SMCP", 1, []DiagnosticKind{FeatureNotFound}},
		{"only unsupported lookups", 1, "liga", 1, []DiagnosticKind{UnsupportedLookupType, FeatureNoMatchForGlyph}},
		{"lookup index out of range", 2, "brkn", 3, []DiagnosticKind{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &DiagnosticCollector{}
			got := ApplyFeature(otf, tt.glyph, tt.feature, sink)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.kinds, sink.Kinds())
		})
	}
}

func TestApplyFeatureFirstRecordWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	//
	got := ApplyFeature(testFont(), 1, "smcp", nil)
	assert.Equal(t, ot.GlyphIndex(2), got, "second 'smcp' record must not be consulted")
}

func TestApplyFeatureWithoutGSub(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	//
	sink := &DiagnosticCollector{}
	got := ApplyFeature(&ot.Font{}, 42, "smcp", sink)
	assert.Equal(t, ot.GlyphIndex(42), got)
	assert.Equal(t, []DiagnosticKind{NoGSubTable}, sink.Kinds())
	assert.Equal(t, "warning: GSUB table not found", sink.Diagnostics[0].String())
}

func TestApplyFeatureDiagnosticsAreAdvisory(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	//
	otf := testFont()
	for _, feature := range []string{"smcp", "onum", "liga", "xxxx"} {
		for g := ot.GlyphIndex(0); g < 8; g++ {
			var seen []Diagnostic
			withSink := ApplyFeature(otf, g, feature, DiagnosticFunc(func(d Diagnostic) {
				seen = append(seen, d)
			}))
			withoutSink := ApplyFeature(otf, g, feature, nil)
			assert.Equal(t, withSink, withoutSink, "glyph %d, feature %s", g, feature)
			if withSink == g {
				assert.NotEmpty(t, seen, "unchanged glyph %d should come with a diagnostic", g)
			}
		}
	}
}

func TestExtensionBehavesLikeWrappedSingle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	//
	mapping := map[ot.GlyphIndex]ot.GlyphIndex{1: 10, 2: 20, 3: 30}
	fontWith := func(st ot.SubTable) *ot.Font {
		otf := &ot.Font{}
		otf.Layout.GSub = &ot.GSubTable{
			FeatureList: []ot.FeatureRecord{{Tag: ot.T("ss01"), LookupIndices: []uint16{0}}},
			LookupList:  []ot.Lookup{{SubTables: []ot.SubTable{st}}},
		}
		return otf
	}
	bare := fontWith(single(mapping))
	wrapped := fontWith(&ot.ExtensionSubst{Inner: single(mapping)})
	for g := ot.GlyphIndex(0); g < 5; g++ {
		d1, d2 := &DiagnosticCollector{}, &DiagnosticCollector{}
		assert.Equal(t, ApplyFeature(bare, g, "ss01", d1), ApplyFeature(wrapped, g, "ss01", d2))
		assert.Equal(t, d1.Kinds(), d2.Kinds())
	}
}

func TestDiagnosticStrings(t *testing.T) {
	d := Diagnostic{Kind: UnsupportedLookupType, Glyph: 3, Feature: "liga", LookupType: ot.GSubLookupTypeLigature}
	assert.Equal(t, "warning: lookup type 4 (Ligature) is not supported for glyph 3", d.String())
	d = Diagnostic{Kind: FeatureNoMatchForGlyph, Glyph: 7, Feature: "smcp"}
	assert.Equal(t, "warning: feature 'smcp' has no substitution for glyph 7", d.String())
	assert.Equal(t, "FeatureNotFound", FeatureNotFound.String())
}
