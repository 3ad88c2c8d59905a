package ot

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

// NameID identifies an entry of table 'name', e.g. NameIDFull.
type NameID uint16

// Name IDs used by this package.
const (
	NameIDFamily    NameID = 1
	NameIDSubfamily NameID = 2
	NameIDFull      NameID = 4
)

// Platform and encoding IDs of the name records we are able to decode.
const (
	platformUnicode    = 0
	platformWindows    = 3
	encodingUnicodeBMP = 3
	encodingWindowsBMP = 1
)

const nameRecordSize = 12

// parseNames decodes the UTF-16 entries of table 'name'. Records in other
// encodings (Macintosh Roman, symbol fonts) are skipped. The first decodable
// record for a name ID wins.
//
//	uint16       version
//	uint16       count
//	Offset16     storageOffset
//	NameRecord   nameRecord[count]
func parseNames(b binarySegm, ec *errorCollector) map[NameID]string {
	n, err := b.u16(2)
	if err != nil || n == 0 {
		return nil
	}
	count := int(n)
	records, err := b.view(6, count*nameRecordSize)
	if err != nil {
		ec.addError(T("name"), "Header", "name records exceed table bounds", SeverityMinor)
		return nil
	}
	storage, err := b.from(int(b.U16(4)))
	if err != nil {
		ec.addError(T("name"), "Header", "invalid string storage offset", SeverityMinor)
		return nil
	}
	names := make(map[NameID]string)
	for i := 0; i < count; i++ {
		rec := records[i*nameRecordSize : (i+1)*nameRecordSize]
		platform, encoding := u16(rec), u16(rec[2:])
		if !(platform == platformUnicode && encoding == encodingUnicodeBMP) &&
			!(platform == platformWindows && encoding == encodingWindowsBMP) {
			continue
		}
		id := NameID(u16(rec[6:]))
		if _, ok := names[id]; ok || u16(rec[8:]) == 0 {
			continue
		}
		str, err := storage.view(int(u16(rec[10:])), int(u16(rec[8:])))
		if err != nil {
			ec.addWarning(T("name"), fmt.Sprintf("name record %d exceeds string storage", i))
			continue
		}
		s, err := decodeNameUTF16(str)
		if err != nil || s == "" {
			continue
		}
		names[id] = s
	}
	return names
}

func decodeNameUTF16(str []byte) (string, error) {
	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	s, err := enc.NewDecoder().Bytes(str)
	if err != nil {
		return "", fmt.Errorf("decoding UTF-16 error: %v", err)
	}
	return string(s), nil
}

// fontName selects a display name from decoded name entries: the full name,
// or family and subfamily.
func fontName(names map[NameID]string) string {
	if full := names[NameIDFull]; full != "" {
		return full
	}
	family, sub := names[NameIDFamily], names[NameIDSubfamily]
	if family != "" && sub != "" {
		return family + " " + sub
	}
	return family
}
