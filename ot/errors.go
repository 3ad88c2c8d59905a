package ot

import "fmt"

// ErrorSeverity tells how much of a table was lost to a decoding problem.
type ErrorSeverity int

const (
	SeverityCritical ErrorSeverity = iota // table dropped
	SeverityMajor                         // parts of the table skipped
	SeverityMinor                         // cosmetic, nothing of interest lost
)

var severityNames = [...]string{"critical", "major", "minor"}

func (s ErrorSeverity) String() string {
	if s >= 0 && int(s) < len(severityNames) {
		return severityNames[s]
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// FontError is a problem found while decoding a table. Fonts in the wild are
// often slightly broken, so decoding goes on where it can and the problems
// are kept with the font (see Font.Errors).
type FontError struct {
	Table    Tag    // e.g. "GSUB" or "loca"
	Section  string // part of the table, e.g. "Lookup 12"
	Issue    string
	Severity ErrorSeverity
}

func (e FontError) Error() string {
	return fmt.Sprintf("%s %s: %s (%s)", e.Table, e.Section, e.Issue, e.Severity)
}

// FontWarning is a decoding problem which did not cost any data needed
// for glyph lookup or measurement.
type FontWarning struct {
	Table Tag
	Issue string
}

func (w FontWarning) String() string {
	return fmt.Sprintf("%s: %s (warning)", w.Table, w.Issue)
}

// errorCollector is handed through the table parsers.
type errorCollector struct {
	errors   []FontError
	warnings []FontWarning
}

func (ec *errorCollector) addError(table Tag, section string, issue string, severity ErrorSeverity) {
	e := FontError{Table: table, Section: section, Issue: issue, Severity: severity}
	tracer().Errorf("%s", e)
	ec.errors = append(ec.errors, e)
}

func (ec *errorCollector) addWarning(table Tag, issue string) {
	w := FontWarning{Table: table, Issue: issue}
	tracer().Infof("%s", w)
	ec.warnings = append(ec.warnings, w)
}
