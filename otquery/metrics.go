package otquery

import (
	"github.com/npillmayer/otinspect/ot"
	"golang.org/x/image/font/sfnt"
)

// FontMetrics retrieves selected metrics of a font.
// Vertical metrics come from table 'hhea'; if hhea carries zeroes, the
// typographic metrics of OS/2 serve as a fallback.
func FontMetrics(otf *ot.Font) FontMetricsInfo {
	metrics := FontMetricsInfo{}
	if otf == nil {
		return metrics
	}
	if hhea := otf.HHea; hhea != nil {
		metrics.Ascent = sfnt.Units(hhea.Ascender)
		metrics.Descent = sfnt.Units(hhea.Descender)
		metrics.LineGap = sfnt.Units(hhea.LineGap)
		metrics.MaxAdvance = sfnt.Units(hhea.AdvanceWidthMax)
	}
	if metrics.Ascent == 0 && metrics.Descent == 0 {
		if os2 := otf.OS2; os2 != nil {
			a := sfnt.Units(os2.TypoAscender)
			if a > metrics.Ascent {
				tracer().Debugf("override of ascent: %d -> %d", metrics.Ascent, a)
				metrics.Ascent = a
			}
			d := sfnt.Units(os2.TypoDescender)
			if d < metrics.Descent {
				tracer().Debugf("override of descent: %d -> %d", metrics.Descent, d)
				metrics.Descent = d
			}
			if metrics.LineGap == 0 {
				metrics.LineGap = sfnt.Units(os2.TypoLineGap)
			}
		}
	}
	if head := otf.Head; head != nil {
		metrics.UnitsPerEm = sfnt.Units(head.UnitsPerEm)
	}
	return metrics
}

// GlyphCount returns the number of glyphs in the font, as stated by
// table 'maxp'.
func GlyphCount(otf *ot.Font) int {
	if otf == nil || otf.MaxP == nil {
		return 0
	}
	return otf.MaxP.NumGlyphs
}

// fsSelection bits of table OS/2.
const (
	fsSelectionItalic  = 1 << 0
	fsSelectionBold    = 1 << 5
	fsSelectionOblique = 1 << 9
)

// macStyle bits of table 'head'.
const (
	macStyleBold   = 1 << 0
	macStyleItalic = 1 << 1
)

// FontStyle retrieves style and weight information for a font.
// Bold and italic flags come from OS/2 fsSelection; fonts without an OS/2
// table fall back to the macStyle bits of table 'head'. The monospaced
// flag comes from table 'post'.
func FontStyle(otf *ot.Font) StyleInfo {
	style := StyleInfo{}
	if otf == nil {
		return style
	}
	if post := otf.Post; post != nil {
		style.Monospaced = post.IsFixedPitch
	}
	if os2 := otf.OS2; os2 != nil {
		style.Bold = os2.FsSelection&fsSelectionBold != 0
		style.Italic = os2.FsSelection&fsSelectionItalic != 0
		style.Oblique = os2.Version >= 4 && os2.FsSelection&fsSelectionOblique != 0
		style.Weight = os2.WeightClass
		style.WidthClass = os2.WidthClass
	} else if head := otf.Head; head != nil {
		style.Bold = head.MacStyle&macStyleBold != 0
		style.Italic = head.MacStyle&macStyleItalic != 0
	}
	return style
}

// widthClassNames per usWidthClass values 1 through 9.
var widthClassNames = []string{
	"UltraCondensed", "ExtraCondensed", "Condensed", "SemiCondensed",
	"Normal", "SemiExpanded", "Expanded", "ExtraExpanded", "UltraExpanded",
}

// WidthClassName returns the name of an OS/2 usWidthClass value,
// or "Unknown" for values outside 1 … 9.
func WidthClassName(widthClass uint16) string {
	if widthClass < 1 || widthClass > 9 {
		return "Unknown"
	}
	return widthClassNames[widthClass-1]
}
