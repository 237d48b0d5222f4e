/*
Package ot decodes the binary structure of OpenType fonts.

The package reads an SFNT container (TTF, OTF or a TTC collection) into a
Font, giving typed access to the tables an inspection needs: 'head',
'hhea', 'maxp', 'OS/2', 'post', and the advanced layout tables GSUB and
GPOS. All other tables are retained as generic byte views.

For GSUB and GPOS the package materializes the script → language-system →
feature-index graph as semantic containers (ScriptList, Script, LangSys,
FeatureList), without exposing record-layout details of the byte format.
Lookup subtables are not decoded; this package navigates fonts, it does
not shape text.

Code comments often cite passages from the OpenType specification
version 1.8.4; see https://docs.microsoft.com/en-us/typography/opentype/spec/.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ot

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'otinspect.ot'
func tracer() tracing.Trace {
	return tracing.Select("otinspect.ot")
}
