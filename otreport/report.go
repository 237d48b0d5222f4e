/*
Package otreport assembles and renders an inspection report for an
OpenType font.

A report is a plain data snapshot of the query results; rendering writes
it as sectioned text. Keeping the two apart lets the CLI render to a
terminal while tests inspect the snapshot directly.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otreport

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/npillmayer/otinspect/ot"
	"github.com/npillmayer/otinspect/otquery"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'otinspect.report'
func tracer() tracing.Trace {
	return tracing.Select("otinspect.report")
}

// Report is a snapshot of everything the inspector knows about a font.
type Report struct {
	Path         string
	FaceIndex    int
	Type         string
	Names        otquery.NameSet
	Metrics      otquery.FontMetricsInfo
	GlyphCount   int
	Style        otquery.StyleInfo
	Tables       []string
	LayoutTables []string
	GSubFeatures []string
	GPosFeatures []string
	Scripts      []string
	Errors       []ot.FontError
	Warnings     []ot.FontWarning
}

// BuildReport runs all inspection queries over a parsed font.
func BuildReport(otf *ot.Font, path string) *Report {
	r := &Report{
		Path:         path,
		Type:         otquery.FontType(otf),
		Tables:       otquery.Tables(otf),
		Names:        otquery.ResolveNames(otf),
		Metrics:      otquery.FontMetrics(otf),
		GlyphCount:   otquery.GlyphCount(otf),
		Style:        otquery.FontStyle(otf),
		GSubFeatures: otquery.GSubFeatureTags(otf),
		GPosFeatures: otquery.GPosFeatureTags(otf),
		Scripts:      otquery.ScriptTags(otf),
		Errors:       otf.Errors(),
		Warnings:     otf.Warnings(),
	}
	r.LayoutTables = otquery.LayoutTables(otf)
	sort.Strings(r.LayoutTables)
	tracer().Debugf("report for %s: %d tables, %d+%d features",
		path, len(r.Tables), len(r.GSubFeatures), len(r.GPosFeatures))
	return r
}

const ruleWidth = 63

func section(w io.Writer, title string) {
	rule := strings.Repeat("─", ruleWidth-len(title)-4)
	fmt.Fprintf(w, "┌─ %s %s\n", title, rule)
}

func sectionEnd(w io.Writer) {
	fmt.Fprintf(w, "└%s\n\n", strings.Repeat("─", ruleWidth-1))
}

func line(w io.Writer, label string, value any) {
	fmt.Fprintf(w, "│ %-17s %v\n", label+":", value)
}

// Render writes the report as sectioned text.
func (r *Report) Render(w io.Writer) {
	section(w, "FONT INFORMATION")
	line(w, "File", r.Path)
	if r.FaceIndex > 0 {
		line(w, "Face", r.FaceIndex)
	}
	line(w, "Type", r.Type)
	line(w, "Tables", strings.Join(r.Tables, " "))
	if len(r.LayoutTables) > 0 {
		line(w, "Layout", strings.Join(r.LayoutTables, " "))
	}
	sectionEnd(w)

	section(w, "FONT NAMES")
	if len(r.Names.Entries) == 0 {
		fmt.Fprintln(w, "│ No name entries found")
	} else if r.Names.FromFallback {
		fmt.Fprintln(w, "│ No standard name entries found")
		fmt.Fprintln(w, "│")
		fmt.Fprintln(w, "│ Available names:")
		for _, entry := range r.Names.Entries {
			fmt.Fprintf(w, "│   [ID %d] %s\n", entry.ID, entry.Value)
		}
	} else {
		for _, entry := range r.Names.Entries {
			line(w, entry.Label, entry.Value)
		}
	}
	sectionEnd(w)

	section(w, "FONT METRICS")
	line(w, "Units per EM", r.Metrics.UnitsPerEm)
	line(w, "Ascender", r.Metrics.Ascent)
	line(w, "Descender", r.Metrics.Descent)
	line(w, "Line Gap", r.Metrics.LineGap)
	line(w, "Glyph Count", r.GlyphCount)
	line(w, "Is Monospaced", r.Style.Monospaced)
	line(w, "Is Bold", r.Style.Bold)
	line(w, "Is Italic", r.Style.Italic)
	line(w, "Is Oblique", r.Style.Oblique)
	line(w, "Weight", r.Style.Weight)
	line(w, "Width", otquery.WidthClassName(r.Style.WidthClass))
	sectionEnd(w)

	renderFeatureSection(w, "OPENTYPE FEATURES (GSUB - Glyph Substitution)", r.GSubFeatures)
	renderFeatureSection(w, "OPENTYPE FEATURES (GPOS - Glyph Positioning)", r.GPosFeatures)

	section(w, "SUPPORTED SCRIPTS")
	if len(r.Scripts) == 0 {
		fmt.Fprintln(w, "│ No script information found")
	} else {
		for i, script := range r.Scripts {
			fmt.Fprintf(w, "%s %s\n", listPrefix(i, len(r.Scripts)), script)
		}
	}
	sectionEnd(w)
}

// RenderIssues writes accumulated parse errors and warnings.
func (r *Report) RenderIssues(w io.Writer) {
	fmt.Fprintf(w, "Issues: errors=%d warnings=%d\n", len(r.Errors), len(r.Warnings))
	for _, e := range r.Errors {
		fmt.Fprintf(w, "error: %s\n", e.Error())
	}
	for _, warning := range r.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warning.String())
	}
}

func renderFeatureSection(w io.Writer, title string, features []string) {
	section(w, title)
	if len(features) == 0 {
		kind := "GSUB"
		if strings.Contains(title, "GPOS") {
			kind = "GPOS"
		}
		fmt.Fprintf(w, "│ No %s features found\n", kind)
	} else {
		for i, feature := range features {
			fmt.Fprintf(w, "%s %s - %s\n", listPrefix(i, len(features)),
				feature, otquery.FeatureName(feature))
		}
	}
	sectionEnd(w)
}

// listPrefix mimics a tree listing within a section box.
func listPrefix(i, total int) string {
	if i == total-1 {
		return "│ └─"
	}
	return "│ ├─"
}
