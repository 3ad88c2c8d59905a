/*
Command otcli prints the bounding boxes of glyphs in a font.

	otcli [-n N] [-v] [-trace Debug|Info|Error] <font> [letter...]

Each letter is a token like "A" or "A.smcp.onum": a character, optionally
followed by a separator and a dot-separated list of GSUB feature tags to apply.
Without letters, otcli starts an interactive session.

If <font> is not an existing file, it is searched for as an installed system font.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/flopp/go-findfont"
	"github.com/npillmayer/glyphbox"
	"github.com/npillmayer/glyphbox/ot"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'tyse.fonts'
func tracer() tracing.Trace {
	return tracing.Select("tyse.fonts")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":  "go",
		"trace.tyse.fonts": "Error",
		"trace.glyphbox":   "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	fontno := flag.Int("n", 0, "Font number within a font collection")
	verbose := flag.Bool("v", false, "Print warnings for features which could not be applied")
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	flag.Usage = usage
	flag.Parse()
	if err := setTraceLevel(*tlevel); err != nil {
		pterm.Error.Println(err)
		os.Exit(2)
	}
	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}
	//
	// load font to use
	path, err := locateFont(flag.Arg(0))
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(3)
	}
	otf, err := glyphbox.LoadFont(path, *fontno)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(4)
	}
	reportFontErrors(otf)
	intp := &Intp{font: otf, path: path, verbose: *verbose}
	//
	// batch mode: one row per letter
	if letters := flag.Args()[1:]; len(letters) > 0 {
		if failed := intp.measureAll(letters); failed > 0 {
			os.Exit(1)
		}
		return
	}
	//
	// set up REPL
	repl, err := readline.New("glyphbox > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(5)
	}
	defer repl.Close()
	intp.repl = repl
	pterm.Info.Printf("Font %q has %d glyphs\n", otf.Name, otf.NumGlyphs)
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                               // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Warning.Prefix = pterm.Prefix{
		Text:  " Warn ",
		Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func setTraceLevel(level string) error {
	l := tracer().GetTraceLevel()
	switch level {
	case "Debug":
		l = tracing.LevelDebug
	case "Info":
		l = tracing.LevelInfo
	case "Error":
		l = tracing.LevelError
	default:
		return fmt.Errorf("invalid trace level: %s", level)
	}
	tracer().SetTraceLevel(l)
	tracing.Select("glyphbox").SetTraceLevel(l)
	tracing.Select("font.opentype").SetTraceLevel(l)
	return nil
}

// locateFont returns name if it is a file, otherwise the path of an
// installed font with that name.
func locateFont(name string) (string, error) {
	if fi, err := os.Stat(name); err == nil && !fi.IsDir() {
		return name, nil
	}
	path, err := findfont.Find(name) // try to find as system font
	if err != nil {
		return "", fmt.Errorf("font %q: not a file and not an installed font: %w", name, err)
	}
	tracer().Infof("%s is a system font: %s", name, path)
	return path, nil
}

func reportFontErrors(otf *ot.Font) {
	for _, e := range otf.Errors() {
		tracer().Errorf("%s", e)
	}
	for _, w := range otf.Warnings() {
		tracer().Infof("%s", w)
	}
}
