package ot

import (
	"errors"
	"fmt"
)

// Code comment often will cite passage from the
// OpenType specification version 1.8.4;
// see https://docs.microsoft.com/en-us/typography/opentype/spec/.

// ---------------------------------------------------------------------------

// Maximum reasonable counts for OpenType table structures.
// These limits prevent malicious fonts from claiming unreasonably large counts
// that could lead to excessive memory allocation or out-of-bounds reads.
const (
	MaxFeatureCount  = 500   // Features: typically < 200
	MaxLookupCount   = 1000  // Lookups: typically < 100
	MaxCoverageCount = 65535 // Coverage tables
)

// MaxExtensionDepth limits the nesting of Extension lookups.
const MaxExtensionDepth = 16

// ErrNoTable is returned when a table required for decoding is missing.
var ErrNoTable = errors.New("OpenType table not present")

// errFontFormat produces user level errors for font parsing.
func errFontFormat(message string) error {
	return fmt.Errorf("OpenType font format: %s", message)
}

// ---------------------------------------------------------------------------

// TableSource delivers the raw bytes of a font's tables. Unpacking the
// container (table directory, collections, checksums) is the business of the
// TableSource, usually a font loader.
type TableSource interface {
	RawTable(tag Tag) ([]byte, bool)
}

// TableMap is a TableSource for fonts assembled in memory.
type TableMap map[Tag][]byte

// RawTable returns the bytes of a table, if present.
func (m TableMap) RawTable(tag Tag) ([]byte, bool) {
	b, ok := m[tag]
	return b, ok && len(b) > 0
}

// ParseTables decodes the tables needed for glyph lookup and measurement:
// 'head', 'maxp', 'loca'/'glyf', 'name' and 'GSUB'. Tables 'head' and 'maxp' are
// required. Problems in the other tables are recorded on the font (see
// Font.Errors) and leave the respective table empty.
//
// Character map, glyph names and PostScript outlines are not decoded here;
// the caller sets Font.CMap, Font.Names and Font.CFF before handing out the font.
func ParseTables(src TableSource) (*Font, error) {
	ec := &errorCollector{}
	otf := &Font{}

	head, ok := src.RawTable(T("head"))
	if !ok {
		return nil, fmt.Errorf("%w: head", ErrNoTable)
	}
	locFormat, err := parseHead(otf, binarySegm(head), ec)
	if err != nil {
		return nil, err
	}
	maxp, ok := src.RawTable(T("maxp"))
	if !ok {
		return nil, fmt.Errorf("%w: maxp", ErrNoTable)
	}
	if err = parseMaxP(otf, binarySegm(maxp), ec); err != nil {
		return nil, err
	}

	if glyf, ok := src.RawTable(T("glyf")); ok {
		if loca, ok := src.RawTable(T("loca")); ok {
			otf.Glyf = parseGlyf(binarySegm(loca), binarySegm(glyf), otf.NumGlyphs, locFormat, ec)
		} else {
			ec.addError(T("loca"), "Missing", "table glyf present without loca", SeverityCritical)
		}
	}
	if names, ok := src.RawTable(T("name")); ok {
		otf.Name = fontName(parseNames(binarySegm(names), ec))
	}
	if gsub, ok := src.RawTable(T("GSUB")); ok {
		otf.Layout.GSub = parseGSub(binarySegm(gsub), ec)
	} else {
		tracer().Debugf("font has no GSUB table")
	}

	otf.parseErrors = ec.errors
	otf.parseWarnings = ec.warnings
	return otf, nil
}

// --- Head table ------------------------------------------------------------

// parseHead reads units-per-em and returns IndexToLocFormat, which is needed
// to interpret table 'loca': 0 for short offsets, 1 for long.
func parseHead(otf *Font, b binarySegm, ec *errorCollector) (int16, error) {
	if len(b) < 54 {
		ec.addError(T("head"), "Size", fmt.Sprintf("head table too small: %d bytes (need 54)", len(b)), SeverityCritical)
		return 0, errFontFormat("size of head table")
	}
	otf.UnitsPerEm = b.U16(18)
	locFormat, _ := b.i16(50)
	if locFormat != 0 && locFormat != 1 {
		ec.addError(T("head"), "IndexToLocFormat", fmt.Sprintf("invalid value: %d (must be 0 or 1)", locFormat), SeverityCritical)
		return 0, errFontFormat(fmt.Sprintf("invalid head.IndexToLocFormat: %d", locFormat))
	}
	return locFormat, nil
}

// --- MaxP table ------------------------------------------------------------

// This table establishes the memory requirements for this font. Fonts with
// CFF data must use Version 0.5 of this table, specifying only the numGlyphs
// field.
func parseMaxP(otf *Font, b binarySegm, ec *errorCollector) error {
	n, err := b.u16(4)
	if err != nil {
		ec.addError(T("maxp"), "Size", fmt.Sprintf("maxp table too small: %d bytes", len(b)), SeverityCritical)
		return errFontFormat("size of maxp table")
	}
	otf.NumGlyphs = int(n)
	return nil
}
