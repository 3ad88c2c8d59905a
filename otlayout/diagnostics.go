package otlayout

import (
	"fmt"

	"github.com/npillmayer/glyphbox/ot"
)

// DiagnosticKind enumerates the reasons why a feature could not be applied
// to a glyph.
type DiagnosticKind int

const (
	NoGSubTable            DiagnosticKind = iota // font has no GSUB table
	FeatureNotFound                              // feature tag not in FeatureList
	UnsupportedLookupType                        // sub-table is not a single substitution
	FeatureNoMatchForGlyph                       // no lookup of the feature substitutes the glyph
)

func (k DiagnosticKind) String() string {
	switch k {
	case NoGSubTable:
		return "NoGsubTable"
	case FeatureNotFound:
		return "FeatureNotFound"
	case UnsupportedLookupType:
		return "UnsupportedLookupType"
	case FeatureNoMatchForGlyph:
		return "FeatureNoMatchForGlyph"
	}
	return fmt.Sprintf("DiagnosticKind(%d)", int(k))
}

// Severity of a diagnostic. Diagnostics are advisory, therefore the only
// severity currently in use is SeverityWarning.
type Severity int

const (
	SeverityWarning Severity = iota
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// Diagnostic is an advisory message emitted while applying a feature.
// Depending on Kind, some of the fields are left empty:
//
//	NoGSubTable             Glyph
//	FeatureNotFound         Glyph, Feature
//	UnsupportedLookupType   Glyph, Feature, LookupType
//	FeatureNoMatchForGlyph  Glyph, Feature
type Diagnostic struct {
	Kind       DiagnosticKind
	Severity   Severity
	Glyph      ot.GlyphIndex
	Feature    string
	LookupType ot.LayoutTableLookupType
}

func (d Diagnostic) String() string {
	switch d.Kind {
	case NoGSubTable:
		return fmt.Sprintf("%s: GSUB table not found", d.Severity)
	case FeatureNotFound:
		return fmt.Sprintf("%s: feature '%s' not found", d.Severity, d.Feature)
	case UnsupportedLookupType:
		return fmt.Sprintf("%s: lookup type %d (%s) is not supported for glyph %d",
			d.Severity, d.LookupType, d.LookupType.GSubString(), d.Glyph)
	case FeatureNoMatchForGlyph:
		return fmt.Sprintf("%s: feature '%s' has no substitution for glyph %d",
			d.Severity, d.Feature, d.Glyph)
	}
	return fmt.Sprintf("%s: %s", d.Severity, d.Kind)
}

// DiagnosticSink receives diagnostics. Reporting a diagnostic never
// influences the result of a feature application.
type DiagnosticSink interface {
	Report(Diagnostic)
}

// DiagnosticFunc is an adapter to use an ordinary function as a DiagnosticSink.
type DiagnosticFunc func(Diagnostic)

// Report calls f(d).
func (f DiagnosticFunc) Report(d Diagnostic) {
	f(d)
}

// DiagnosticCollector is a DiagnosticSink which keeps all diagnostics it
// receives, in order. It is not safe for concurrent use.
type DiagnosticCollector struct {
	Diagnostics []Diagnostic
}

// Report appends d.
func (c *DiagnosticCollector) Report(d Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, d)
}

// Kinds returns the kinds of the collected diagnostics, in order.
func (c *DiagnosticCollector) Kinds() []DiagnosticKind {
	kinds := make([]DiagnosticKind, len(c.Diagnostics))
	for i, d := range c.Diagnostics {
		kinds[i] = d.Kind
	}
	return kinds
}

// Reset removes all collected diagnostics.
func (c *DiagnosticCollector) Reset() {
	c.Diagnostics = c.Diagnostics[:0]
}

func report(sink DiagnosticSink, d Diagnostic) {
	tracer().Debugf("%s", d)
	if sink != nil {
		sink.Report(d)
	}
}
