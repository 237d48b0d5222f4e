/*
Package otinspect inspects OpenType fonts and reports their identity,
metrics and typographic capabilities.

An inspection is a single read-only pass over a parsed font: naming records
are resolved from table 'name', feature tags are collected from the layout
tables GSUB and GPOS, and supported scripts are gathered from both tables'
script lists. No shaping, rasterizing or mutation of the font takes place.

The heavy lifting lives in the sub-packages:

▪︎ Package ot decodes the binary SFNT container into typed tables.

▪︎ Package otquery answers read-only questions about a decoded font.

▪︎ Package otreport renders the answers as a terminal report.

# Links

OpenType explained:
https://docs.microsoft.com/en-us/typography/opentype/

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otinspect

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'otinspect'
func tracer() tracing.Trace {
	return tracing.Select("otinspect")
}
