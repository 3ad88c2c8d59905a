package main

import (
	"flag"
	"strings"

	"github.com/pterm/pterm"
)

func usage() {
	pterm.Println("Usage: otcli [-n N] [-v] [-trace Debug|Info|Error] <font> [letter...]")
	flag.PrintDefaults()
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "token", "tokens", "letter", "letters", "feature", "features":
		pterm.Info.Println("Tokens")
		pterm.Println(`
	A token names a character and the GSUB features to apply to its glyph:
	+-----------+-----------+------------------------+
	| character | separator | feature.feature. ...   |
	+-----------+-----------+------------------------+
	e.g. "A", "A.smcp" or "1.onum.ss01".
	The separator may be any character. Features are applied left to right;
	a feature which is missing or does not apply to the glyph is skipped.
	`)
	case "box", "bbox", "bounds":
		pterm.Info.Println("Bounding boxes")
		pterm.Println(`
	Boxes are given in font design units, y-axis pointing up.
	TrueType fonts report the box stored in the glyph header. For CFF
	fonts the box of the outline's control points is used, rounded outwards.
	Composite glyphs are not supported.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	<token> ...      print the bounding boxes of the tokens' glyphs
	:font            print information about the font
	:verbose         toggle printing of feature warnings
	:help [topic]    help on topics 'tokens' and 'bbox'
	:quit            leave (or <ctrl>D)
	`)
	}
}
