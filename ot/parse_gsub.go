package ot

import (
	"fmt"
)

// parseGSub parses the GSUB (Glyph Substitution) table.
//
// The header is shared by versions 1.0 and 1.1:
//
//	uint16    majorVersion
//	uint16    minorVersion
//	Offset16  scriptListOffset
//	Offset16  featureListOffset
//	Offset16  lookupListOffset
//	Offset32  featureVariationsOffset (1.1 only)
//
// Errors in the FeatureList or LookupList are recorded, and the table is
// returned with whatever could be decoded. If the header itself is unusable,
// nil is returned.
func parseGSub(b binarySegm, ec *errorCollector) *GSubTable {
	const tag = "GSUB"
	if len(b) < 10 {
		ec.addError(T(tag), "Header", fmt.Sprintf("header too small: %d bytes", len(b)), SeverityCritical)
		return nil
	}
	major, minor := b.U16(0), b.U16(2)
	if major != 1 || minor > 1 {
		ec.addError(T(tag), "Header", fmt.Sprintf("unsupported version %d.%d", major, minor), SeverityCritical)
		return nil
	}
	tracer().Debugf("GSUB table has version %d.%d", major, minor)
	gsub := &GSubTable{}
	if features, err := b.link16(6); err == nil {
		gsub.FeatureList = parseFeatureList(features, ec)
	} else if err != errNullOffset {
		ec.addError(T(tag), "FeatureList", err.Error(), SeverityMajor)
	}
	if lookups, err := b.link16(8); err == nil {
		gsub.LookupList = parseLookupList(lookups, ec)
	} else if err != errNullOffset {
		ec.addError(T(tag), "LookupList", err.Error(), SeverityMajor)
	}
	tracer().Debugf("GSUB table has %d features and %d lookups", len(gsub.FeatureList), len(gsub.LookupList))
	return gsub
}

// --- Feature list ----------------------------------------------------------

// The FeatureList table enumerates features in an array of records (FeatureRecord) and
// specifies the total number of features (FeatureCount). Every feature must have a
// FeatureRecord, which consists of a FeatureTag that identifies the feature and an offset
// to a Feature table (described next). The FeatureRecord array is arranged alphabetically
// by FeatureTag names.
func parseFeatureList(b binarySegm, ec *errorCollector) []FeatureRecord {
	count, records, err := b.array16(0, 6)
	if err != nil {
		ec.addError(T("GSUB"), "FeatureList", "feature records exceed table bounds", SeverityMajor)
		return nil
	}
	if count > MaxFeatureCount {
		ec.addError(T("GSUB"), "FeatureList", fmt.Sprintf("count %d exceeds maximum %d, list truncated", count, MaxFeatureCount), SeverityMajor)
		count = MaxFeatureCount
	}
	list := make([]FeatureRecord, 0, count)
	for i := 0; i < count; i++ {
		rec := records[i*6 : i*6+6]
		tag := MakeTag(rec[:4])
		feature, err := b.link16(6*i + 6) // record i starts at 2+6*i, offset at +4
		if err != nil {
			ec.addError(T("GSUB"), "Feature "+tag.String(), "invalid feature table offset", SeverityMajor)
			list = append(list, FeatureRecord{Tag: tag})
			continue
		}
		list = append(list, FeatureRecord{Tag: tag, LookupIndices: parseFeature(feature, tag, ec)})
	}
	return list
}

// A Feature table defines a feature with one or more lookups:
//
//	Offset16  featureParamsOffset
//	uint16    lookupIndexCount
//	uint16    lookupListIndices[lookupIndexCount]
func parseFeature(b binarySegm, tag Tag, ec *errorCollector) []uint16 {
	count, indices, err := b.array16(2, 2)
	if err != nil {
		ec.addError(T("GSUB"), "Feature "+tag.String(), "lookup indices exceed table bounds", SeverityMajor)
		return nil
	}
	lookups := make([]uint16, count)
	for i := range lookups {
		lookups[i] = u16(indices[2*i:])
	}
	return lookups
}

// --- Lookup list -----------------------------------------------------------

// parseLookupList parses the LookupList, an array of offsets to Lookup tables,
// counted from the beginning of the LookupList.
// See https://www.microsoft.com/typography/otspec/chapter2.htm#lulTbl
func parseLookupList(b binarySegm, ec *errorCollector) []Lookup {
	count, _, err := b.array16(0, 2)
	if err != nil {
		ec.addError(T("GSUB"), "LookupList", "lookup offsets exceed table bounds", SeverityMajor)
		return nil
	}
	if count > MaxLookupCount {
		ec.addError(T("GSUB"), "LookupList", fmt.Sprintf("count %d exceeds maximum %d", count, MaxLookupCount), SeverityMajor)
		return nil
	}
	list := make([]Lookup, count)
	for i := range list {
		section := fmt.Sprintf("Lookup %d", i)
		lookup, err := b.link16(2 + 2*i)
		if err != nil {
			ec.addError(T("GSUB"), section, "invalid lookup offset", SeverityMajor)
			continue
		}
		list[i] = parseLookup(lookup, section, ec)
	}
	return list
}

// A Lookup table is laid out as follows:
//
//	uint16    lookupType
//	uint16    lookupFlag
//	uint16    subTableCount
//	Offset16  subtableOffsets[subTableCount]
//	uint16    markFilteringSet (if USE_MARK_FILTERING_SET is set)
func parseLookup(b binarySegm, section string, ec *errorCollector) Lookup {
	lookup := Lookup{
		Type: LayoutTableLookupType(b.U16(0)),
		Flag: LayoutTableLookupFlag(b.U16(2)),
	}
	count, _, err := b.array16(4, 2)
	if err != nil {
		ec.addError(T("GSUB"), section, "sub-table offsets exceed table bounds", SeverityMajor)
		return lookup
	}
	tracer().Debugf("%s has type %s with %d sub-tables", section, lookup.Type.GSubString(), count)
	lookup.SubTables = make([]SubTable, 0, count)
	for i := 0; i < count; i++ {
		sub, err := b.link16(6 + 2*i)
		if err != nil {
			ec.addError(T("GSUB"), section, fmt.Sprintf("invalid offset for sub-table %d", i), SeverityMajor)
			continue
		}
		st, err := parseGSubSubTable(sub, lookup.Type, 0)
		if err != nil {
			ec.addError(T("GSUB"), section, err.Error(), SeverityMajor)
			continue
		}
		lookup.SubTables = append(lookup.SubTables, st)
	}
	return lookup
}

// --- Lookup sub-tables -----------------------------------------------------

// parseGSubSubTable decodes a lookup sub-table. Single substitutions and
// extensions are decoded, all other lookup types are kept as OtherSubst.
func parseGSubSubTable(b binarySegm, lookupType LayoutTableLookupType, depth int) (SubTable, error) {
	if depth > MaxExtensionDepth {
		return nil, fmt.Errorf("sub-table exceeds maximum extension depth %d", MaxExtensionDepth)
	}
	format, err := b.u16(0)
	if err != nil {
		return nil, errFontFormat("sub-table too small")
	}
	tracer().Debugf("parsing GSUB sub-table type %s, format %d", lookupType.GSubString(), format)
	switch lookupType {
	case GSubLookupTypeSingle:
		return parseSingleSubst(b, format)
	case GSubLookupTypeExtensionSubs:
		return parseExtensionSubst(b, format, depth)
	}
	return &OtherSubst{Type: lookupType, Format: format}, nil
}

// LookupType 1: Single Substitution Subtable
// Single substitution (SingleSubst) subtables tell a client to replace a single glyph with
// another glyph.
// https://docs.microsoft.com/en-us/typography/opentype/spec/gsub#lookuptype-1-single-substitution-subtable
//
// Format 1 adds deltaGlyphID to every covered glyph, modulo 65536. Format 2
// lists a substitute for every coverage index.
func parseSingleSubst(b binarySegm, format uint16) (SubTable, error) {
	cov, err := b.link16(2)
	if err != nil {
		return nil, errFontFormat("single substitution without coverage")
	}
	covered, err := parseCoverage(cov)
	if err != nil {
		return nil, err
	}
	sub := &SingleSubst{Format: format, Mapping: make(map[GlyphIndex]GlyphIndex, len(covered))}
	switch format {
	case 1:
		delta, err := b.i16(4)
		if err != nil {
			return nil, errFontFormat("single substitution format 1 too small")
		}
		for _, c := range covered {
			sub.Mapping[c.glyph] = GlyphIndex(uint16(c.glyph) + uint16(delta))
		}
	case 2:
		count, substitutes, err := b.array16(4, 2)
		if err != nil {
			return nil, errFontFormat("single substitution format 2 exceeds bounds")
		}
		for _, c := range covered {
			if c.index >= count {
				return nil, errFontFormat(fmt.Sprintf("coverage index %d has no substitute", c.index))
			}
			sub.Mapping[c.glyph] = GlyphIndex(u16(substitutes[2*c.index:]))
		}
	default:
		return nil, errFontFormat(fmt.Sprintf("unknown single substitution format %d", format))
	}
	return sub, nil
}

// LookupType 7: Extension Substitution
// This lookup provides a mechanism whereby any other lookup type's subtables are stored at
// a 32-bit offset location in the GSUB table.
// https://docs.microsoft.com/en-us/typography/opentype/spec/gsub#lookuptype-7-extension-substitution
//
//	uint16    substFormat           Set to 1
//	uint16    extensionLookupType   Lookup type of subtable referenced by extensionOffset
//	Offset32  extensionOffset       Offset to the extension subtable, relative to this table
func parseExtensionSubst(b binarySegm, format uint16, depth int) (SubTable, error) {
	if format != 1 {
		return nil, errFontFormat(fmt.Sprintf("unknown extension format %d", format))
	}
	innerType, err := b.u16(2)
	if err != nil {
		return nil, errFontFormat("extension sub-table too small")
	}
	if LayoutTableLookupType(innerType) == GSubLookupTypeExtensionSubs {
		tracer().Infof("extension sub-table points to another extension")
	}
	inner, err := b.link32(4)
	if err != nil {
		return nil, errFontFormat("invalid extension offset")
	}
	st, err := parseGSubSubTable(inner, LayoutTableLookupType(innerType), depth+1)
	if err != nil {
		return nil, err
	}
	return &ExtensionSubst{Inner: st}, nil
}

// --- Coverage --------------------------------------------------------------

// coveredGlyph is a glyph together with its coverage index.
type coveredGlyph struct {
	glyph GlyphIndex
	index int
}

// parseCoverage reads a coverage table, which comes in two formats (1 and 2),
// and returns the covered glyphs.
// A Coverage table defines a unique index value, the Coverage Index, for each
// covered glyph.
func parseCoverage(b binarySegm) ([]coveredGlyph, error) {
	format := b.U16(0)
	switch format {
	case 1:
		count, glyphs, err := b.array16(2, 2)
		if err != nil {
			return nil, errFontFormat("coverage format 1 extends beyond bounds")
		}
		covered := make([]coveredGlyph, count)
		for i := range covered {
			covered[i] = coveredGlyph{glyph: GlyphIndex(u16(glyphs[2*i:])), index: i}
		}
		return covered, nil
	case 2:
		// range records: start glyph, end glyph, start coverage index
		count, ranges, err := b.array16(2, 6)
		if err != nil {
			return nil, errFontFormat("coverage format 2 extends beyond bounds")
		}
		var covered []coveredGlyph
		for i := 0; i < count; i++ {
			rec := ranges[6*i:]
			start, end, inx := int(u16(rec)), int(u16(rec[2:])), int(u16(rec[4:]))
			if end < start || len(covered)+end-start >= MaxCoverageCount {
				return nil, errFontFormat(fmt.Sprintf("invalid coverage range %d..%d", start, end))
			}
			for g := start; g <= end; g++ {
				covered = append(covered, coveredGlyph{glyph: GlyphIndex(g), index: inx + g - start})
			}
		}
		return covered, nil
	}
	return nil, errFontFormat(fmt.Sprintf("unknown coverage format %d", format))
}
