package main

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/glyphbox/ot"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	font    *ot.Font
	path    string
	verbose bool
	repl    *readline.Instance
}

// REPL starts interactive mode. Every input line is either a command or a
// list of tokens to measure.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := intp.execute(line); quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

const (
	QUIT int = iota
	HELP
	VERBOSE
	FONT
	MEASURE
)

var opMap = map[string]int{
	":quit":    QUIT,
	":help":    HELP,
	":verbose": VERBOSE,
	":font":    FONT,
}

// parseCommand splits a line into its operation and arguments. Lines not
// starting with a known command are tokens to measure.
func parseCommand(line string) (int, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return MEASURE, nil
	}
	if code, ok := opMap[strings.ToLower(fields[0])]; ok {
		return code, fields[1:]
	}
	return MEASURE, fields
}

func (intp *Intp) execute(line string) (stop bool) {
	code, args := parseCommand(line)
	tracer().Debugf("command %d with args %v", code, args)
	switch code {
	case QUIT:
		return true
	case HELP:
		topic := ""
		if len(args) > 0 {
			topic = args[0]
		}
		help(topic)
	case VERBOSE:
		intp.verbose = !intp.verbose
		pterm.Info.Printf("verbose output is %v\n", intp.verbose)
	case FONT:
		printFontInfo(intp.font, intp.path)
	default:
		intp.measureAll(args)
	}
	return false
}
