/*
Package fontload loads OpenType font files and decodes them into an ot.Font.

Two decoders work together: go-text/typesetting unpacks the font container
(single fonts and TTC/OTC collections) and hands out raw tables to package
ot, while x/image/font/sfnt provides the best-fit character map, glyph names
and the interpretation of CFF charstrings.
*/
package fontload

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/go-text/typesetting/font/opentype"
	"github.com/npillmayer/glyphbox/ot"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'tyse.fonts'
func tracer() tracing.Trace {
	return tracing.Select("tyse.fonts")
}

// ErrNoSuchFont is returned if a font index is not contained in a font file.
var ErrNoSuchFont = errors.New("no font with this index in font file")

// ScalableFont is a parsed scalable font with original bytes and its views
// by the two decoders.
type ScalableFont struct {
	Fontname string
	Filepath string
	Index    int    // index within a collection, 0 for single fonts
	Binary   []byte // raw data
	SFNT     *sfnt.Font
	loader   *opentype.Loader
}

// LoadOpenTypeFont loads font number index from a font file (TTF, OTF, TTC,
// or OTC).
func LoadOpenTypeFont(fontfile string, index int) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez, index)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fontfile, err)
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont parses font number index from memory.
func ParseOpenTypeFont(fbytes []byte, index int) (f *ScalableFont, err error) {
	loaders, err := opentype.NewLoaders(bytes.NewReader(fbytes))
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(loaders) {
		return nil, fmt.Errorf("%w: index %d, font file contains %d fonts", ErrNoSuchFont, index, len(loaders))
	}
	f = &ScalableFont{Binary: fbytes, Index: index, loader: loaders[index]}
	coll, err := sfnt.ParseCollection(fbytes)
	if err != nil {
		return nil, err
	}
	if f.SFNT, err = coll.Font(index); err != nil {
		return nil, err
	}
	if f.Fontname, err = f.SFNT.Name(nil, sfnt.NameIDFull); err == nil {
		tracer().Debugf("loaded and parsed SFNT %s", f.Fontname)
	} else {
		tracer().Infof("font has no full name: %v", err)
	}
	return f, nil
}

// Decode creates the ot.Font for a loaded font. Decoding problems which do
// not prevent the font from being used are available from the font's Errors
// and Warnings.
func (f *ScalableFont) Decode() (*ot.Font, error) {
	otf, err := ot.ParseTables(loaderTables{f.loader})
	if err != nil {
		return nil, err
	}
	if !f.loader.HasTable(opentype.MustNewTag("name")) {
		otf.Name = f.Fontname
	}
	otf.CMap = sfntCMap{f.SFNT}
	otf.Names = sfntNames{f.SFNT}
	if f.loader.HasTable(opentype.MustNewTag("CFF ")) {
		otf.CFF = &ot.CFFTable{
			NumGlyphs:   f.SFNT.NumGlyphs(),
			Charstrings: charstrings{f.SFNT},
		}
	}
	for _, e := range otf.Errors() {
		tracer().Infof("%s: %s", f.Fontname, e)
	}
	return otf, nil
}

// loaderTables adapts a go-text font loader to ot.TableSource.
type loaderTables struct {
	ld *opentype.Loader
}

func (lt loaderTables) RawTable(tag ot.Tag) ([]byte, bool) {
	t := opentype.Tag(tag)
	if !lt.ld.HasTable(t) {
		return nil, false
	}
	b, err := lt.ld.RawTable(t)
	if err != nil {
		tracer().Errorf("cannot read table %s: %v", tag, err)
		return nil, false
	}
	return b, true
}
