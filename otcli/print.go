package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/glyphbox"
	"github.com/npillmayer/glyphbox/ot"
	"github.com/npillmayer/glyphbox/otlayout"
	"github.com/pterm/pterm"
	"golang.org/x/text/unicode/runenames"
)

// measureAll prints a table row for every letter. Letters which cannot be
// measured are reported and skipped. It returns the number of failed letters.
func (intp *Intp) measureAll(letters []string) (failed int) {
	data := [][]string{
		{"Letter", "Glyph", "X", "Y"},
	}
	var warnings otlayout.DiagnosticCollector
	for _, letter := range letters {
		warnings.Reset()
		m, err := glyphbox.Measure(intp.font, letter, &warnings)
		if intp.verbose {
			printDiagnostics(letter, warnings.Diagnostics)
		}
		if err != nil {
			pterm.Error.Printf("%s: %v\n", letter, err)
			failed++
			continue
		}
		data = append(data, []string{
			letter,
			fmt.Sprintf("%s (%d)", m.GlyphName, m.Glyph),
			fmt.Sprintf("x: [%d, %d]", m.BBox.MinX, m.BBox.MaxX),
			fmt.Sprintf("y: [%d, %d]", m.BBox.MinY, m.BBox.MaxY),
		})
	}
	if len(data) > 1 {
		pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	}
	return failed
}

func printDiagnostics(letter string, diagnostics []otlayout.Diagnostic) {
	if len(diagnostics) == 0 {
		return
	}
	r, _ := utf8.DecodeRuneInString(letter)
	for _, d := range diagnostics {
		pterm.Warning.Printf("%s (%s): %s\n", letter, runeName(r), d)
	}
}

func runeName(r rune) string {
	if name := runenames.Name(r); name != "" {
		return fmt.Sprintf("U+%04X %s", r, name)
	}
	return fmt.Sprintf("U+%04X", r)
}

func printFontInfo(otf *ot.Font, path string) {
	outlines := "none"
	if otf.HasTrueTypeOutlines() {
		outlines = "TrueType"
	} else if otf.HasPostScriptOutlines() {
		outlines = "CFF"
	}
	features := []string{}
	if gsub := otf.Layout.GSub; gsub != nil {
		for _, rec := range gsub.FeatureList {
			features = append(features, rec.Tag.String())
		}
	}
	data := [][]string{
		{"Property", "Value"},
		{"Name", otf.Name},
		{"File", path},
		{"Units per em", fmt.Sprintf("%d", otf.UnitsPerEm)},
		{"Glyphs", fmt.Sprintf("%d", otf.NumGlyphs)},
		{"Outlines", outlines},
		{"GSUB features", fmt.Sprintf("%v", features)},
		{"Decoding errors", fmt.Sprintf("%d", len(otf.Errors()))},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
