/*
Package otlocate locates the glyph for a letter and a chain of OpenType
features.

A token names a letter, optionally followed by features to apply:

	A            the glyph for 'A'
	A.smcp       the small capital 'A'
	1.onum.sups  old-style figure one, then its superior variant

Features are applied from left to right, each one to the result of its
predecessor.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otlocate

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tyse.fonts'
func tracer() tracing.Trace {
	return tracing.Select("tyse.fonts")
}
