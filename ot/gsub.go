package ot

import "strconv"

// GSubTable is the decoded OpenType GSUB table. Only the parts needed for
// applying features by name are kept: the FeatureList and the LookupList.
// ScriptList and FeatureVariations are not decoded.
//
// See https://docs.microsoft.com/en-us/typography/opentype/spec/gsub
type GSubTable struct {
	FeatureList []FeatureRecord
	LookupList  []Lookup
}

// FeatureRecord is an entry of a FeatureList: a feature tag together with
// the lookups the feature activates, in the order given by the font.
//
// Feature tags are not unique within a FeatureList; fonts usually carry one
// record per script/language system for a given tag.
type FeatureRecord struct {
	Tag           Tag
	LookupIndices []uint16
}

// Lookup is an entry of a LookupList.
type Lookup struct {
	Type      LayoutTableLookupType
	Flag      LayoutTableLookupFlag
	SubTables []SubTable
}

// FirstFeature returns the first feature record with the given tag, in
// FeatureList order. Matching is exact and case-sensitive on the full tag
// string, i.e. "smcp" matches, but "SMCP", "smc" or "smcpx" do not.
func (gsub *GSubTable) FirstFeature(tag string) Option[*FeatureRecord] {
	if gsub == nil {
		return None[*FeatureRecord]()
	}
	for i := range gsub.FeatureList {
		if gsub.FeatureList[i].Tag.String() == tag {
			return Some(&gsub.FeatureList[i])
		}
	}
	return None[*FeatureRecord]()
}

// Lookup returns lookup number i of the LookupList.
func (gsub *GSubTable) Lookup(i int) (*Lookup, bool) {
	if gsub == nil || i < 0 || i >= len(gsub.LookupList) {
		return nil, false
	}
	return &gsub.LookupList[i], true
}

// --- Lookup sub-tables -----------------------------------------------------

// SubTable is a GSUB lookup sub-table. It is a closed set of variants:
//
//	*SingleSubst      LookupType 1, Single Substitution
//	*ExtensionSubst   LookupType 7, Extension Substitution wrapping another sub-table
//	*OtherSubst       any other lookup type, kept for diagnostics only
//
// Clients should switch over the concrete types and treat anything else as
// unsupported.
type SubTable interface {
	LookupType() LayoutTableLookupType
	isSubTable()
}

// SingleSubst is a Single Substitution sub-table. Both subtable formats
// (delta and explicit substitute list) are decoded into Mapping.
type SingleSubst struct {
	Format  uint16
	Mapping map[GlyphIndex]GlyphIndex
}

// ExtensionSubst is an Extension Substitution sub-table. Inner is the
// sub-table the extension points to.
type ExtensionSubst struct {
	Inner SubTable
}

// OtherSubst stands in for every GSUB sub-table type this package does not
// decode.
type OtherSubst struct {
	Type   LayoutTableLookupType
	Format uint16
}

// LookupType returns GSubLookupTypeSingle.
func (*SingleSubst) LookupType() LayoutTableLookupType { return GSubLookupTypeSingle }

// LookupType returns GSubLookupTypeExtensionSubs.
func (*ExtensionSubst) LookupType() LayoutTableLookupType { return GSubLookupTypeExtensionSubs }

// LookupType returns the lookup type found in the font.
func (o *OtherSubst) LookupType() LayoutTableLookupType { return o.Type }

func (*SingleSubst) isSubTable()    {}
func (*ExtensionSubst) isSubTable() {}
func (*OtherSubst) isSubTable()     {}

// Substitute returns the substitute for glyph g, if g is covered.
func (s *SingleSubst) Substitute(g GlyphIndex) (GlyphIndex, bool) {
	if s == nil {
		return 0, false
	}
	sub, ok := s.Mapping[g]
	return sub, ok
}

// Unwrap removes one level of extension indirection. Sub-tables other than
// ExtensionSubst are returned as they are.
func Unwrap(st SubTable) SubTable {
	if ext, ok := st.(*ExtensionSubst); ok && ext.Inner != nil {
		return ext.Inner
	}
	return st
}

// --- Lookup types and flags ------------------------------------------------

// LayoutTableLookupType is a type identifier for layout lookup records.
type LayoutTableLookupType uint16

// GSUB lookup types
const (
	GSubLookupTypeSingle          LayoutTableLookupType = 1
	GSubLookupTypeMultiple        LayoutTableLookupType = 2
	GSubLookupTypeAlternate       LayoutTableLookupType = 3
	GSubLookupTypeLigature        LayoutTableLookupType = 4
	GSubLookupTypeContext         LayoutTableLookupType = 5
	GSubLookupTypeChainingContext LayoutTableLookupType = 6
	GSubLookupTypeExtensionSubs   LayoutTableLookupType = 7
	GSubLookupTypeReverseChaining LayoutTableLookupType = 8
)

var gsubLookupTypeNames = []string{"", "Single", "Multiple", "Alternate", "Ligature",
	"Context", "Chaining", "Extension", "Reverse"}

// GSubString returns a short name for a GSUB lookup type.
func (lt LayoutTableLookupType) GSubString() string {
	if int(lt) < len(gsubLookupTypeNames) && lt > 0 {
		return gsubLookupTypeNames[lt]
	}
	return "type" + strconv.Itoa(int(lt))
}

// LayoutTableLookupFlag is a flag type for layout tables (GPOS and GSUB).
// Flags are decoded for completeness; single substitution by feature name
// does not depend on them.
type LayoutTableLookupFlag uint16

// Lookup flags of layout tables (GPOS and GSUB)
const ( // LookupFlag bit enumeration
	LOOKUP_FLAG_RIGHT_TO_LEFT             LayoutTableLookupFlag = 0x0001
	LOOKUP_FLAG_IGNORE_BASE_GLYPHS        LayoutTableLookupFlag = 0x0002 // If set, skips over base glyphs
	LOOKUP_FLAG_IGNORE_LIGATURES          LayoutTableLookupFlag = 0x0004 // If set, skips over ligatures
	LOOKUP_FLAG_IGNORE_MARKS              LayoutTableLookupFlag = 0x0008 // If set, skips over all combining marks
	LOOKUP_FLAG_USE_MARK_FILTERING_SET    LayoutTableLookupFlag = 0x0010 // If set, a MarkFilteringSet field follows the sub-table offsets
	LOOKUP_FLAG_MARK_ATTACHMENT_TYPE_MASK LayoutTableLookupFlag = 0xFF00 // If not zero, skips over all marks of attachment type different from specified.
)
