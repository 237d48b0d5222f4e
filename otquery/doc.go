/*
Package otquery answers read-only questions about a decoded OpenType font.

Queries never mutate the font and are total: a question about a table the
font does not carry yields an empty answer, not an error. The package
covers naming (table 'name'), typographic capabilities (feature and script
tags from GSUB/GPOS), a registry of feature descriptions, and selected
metrics and style information.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otquery

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'otinspect.query'
func tracer() tracing.Trace {
	return tracing.Select("otinspect.query")
}
