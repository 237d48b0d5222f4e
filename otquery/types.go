package otquery

import "golang.org/x/image/font/sfnt"

// FontMetricsInfo contains selected metric information for a font.
type FontMetricsInfo struct {
	UnitsPerEm      sfnt.Units // ad-hoc units per em
	Ascent, Descent sfnt.Units // ascender and descender
	MaxAdvance      sfnt.Units // maximum advance width value in 'hmtx' table
	LineGap         sfnt.Units // typographic line gap
}

// StyleInfo contains style and weight information for a font.
type StyleInfo struct {
	Monospaced bool   // fixed-pitch flag from table 'post'
	Bold       bool   // from OS/2 fsSelection, or head macStyle as fallback
	Italic     bool   // from OS/2 fsSelection, or head macStyle as fallback
	Oblique    bool   // from OS/2 fsSelection (version ≥ 4)
	Weight     uint16 // usWeightClass, 0 if OS/2 is absent
	WidthClass uint16 // usWidthClass, 0 if OS/2 is absent
}
