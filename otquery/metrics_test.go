package otquery

import (
	"testing"

	"github.com/npillmayer/otinspect/internal/testfont"
	"github.com/npillmayer/otinspect/ot"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type MetricsTestEnviron struct {
	suite.Suite
}

// listen for 'go test' command --> run test methods
func TestMetricsQueries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otinspect.query")
	defer teardown()
	suite.Run(t, new(MetricsTestEnviron))
}

func (env *MetricsTestEnviron) parse(font []byte) *ot.Font {
	otf, err := ot.Parse(font)
	env.Require().NoError(err, "expected synthetic font to parse")
	return otf
}

// --- Tests -----------------------------------------------------------------

func (env *MetricsTestEnviron) TestMetricsFromHHea() {
	otf := env.parse(testfont.New().Standard().Build())
	metrics := FontMetrics(otf)
	env.EqualValues(1000, metrics.UnitsPerEm)
	env.EqualValues(750, metrics.Ascent)
	env.EqualValues(-250, metrics.Descent)
	env.EqualValues(20, metrics.LineGap)
	env.EqualValues(600, metrics.MaxAdvance)
	env.Equal(4, GlyphCount(otf))
}

func (env *MetricsTestEnviron) TestMetricsFallBackToOS2() {
	// hhea carries zeroes, OS/2 typographic metrics take over
	otf := env.parse(testfont.New().
		Add("head", testfont.Head(2000, 0)).
		Add("hhea", testfont.HHea(0, 0, 0, 500)).
		Add("maxp", testfont.MaxP(10)).
		Add("OS/2", testfont.OS2(400, 5, 0, 800, -200, 90)).
		Build())
	metrics := FontMetrics(otf)
	env.EqualValues(2000, metrics.UnitsPerEm)
	env.EqualValues(800, metrics.Ascent)
	env.EqualValues(-200, metrics.Descent)
	env.EqualValues(90, metrics.LineGap)
}

func (env *MetricsTestEnviron) TestStyleFromOS2() {
	fsSelection := uint16(fsSelectionBold | fsSelectionItalic | fsSelectionOblique)
	otf := env.parse(testfont.New().Standard().
		Add("OS/2", testfont.OS2(700, 3, fsSelection, 750, -250, 0)).
		Add("post", testfont.Post(true)).
		Build())
	style := FontStyle(otf)
	env.True(style.Bold)
	env.True(style.Italic)
	env.False(style.Oblique, "oblique bit only counts for OS/2 version 4 and up")
	env.True(style.Monospaced)
	env.EqualValues(700, style.Weight)
	env.Equal("Condensed", WidthClassName(style.WidthClass))
}

func (env *MetricsTestEnviron) TestStyleFallsBackToMacStyle() {
	// no OS/2 table, head.macStyle has bold and italic set
	otf := env.parse(testfont.New().
		Add("head", testfont.Head(1000, 0x0003)).
		Add("hhea", testfont.HHea(750, -250, 0, 600)).
		Add("maxp", testfont.MaxP(4)).
		Build())
	style := FontStyle(otf)
	env.True(style.Bold)
	env.True(style.Italic)
	env.False(style.Monospaced, "no post table means no fixed-pitch flag")
	env.Zero(style.Weight)
}

func (env *MetricsTestEnviron) TestWidthClassNames() {
	env.Equal("UltraCondensed", WidthClassName(1))
	env.Equal("Normal", WidthClassName(5))
	env.Equal("UltraExpanded", WidthClassName(9))
	env.Equal("Unknown", WidthClassName(0))
	env.Equal("Unknown", WidthClassName(10))
}

func (env *MetricsTestEnviron) TestFontTypeAndLayoutTables() {
	otf := env.parse(testfont.New().Standard().
		Add("GSUB", testfont.Layout(nil, nil)).
		Build())
	env.Equal("TrueType", FontType(otf))
	env.Equal([]string{"GSUB"}, LayoutTables(otf))
	env.Equal([]string{"GSUB", "head", "hhea", "maxp"}, Tables(otf),
		"table tags are sorted lexicographically")
	env.Equal("<empty>", FontType(nil))
}

func (env *MetricsTestEnviron) TestQueriesOnNilFont() {
	env.Equal(FontMetricsInfo{}, FontMetrics(nil))
	env.Equal(StyleInfo{}, FontStyle(nil))
	env.Zero(GlyphCount(nil))
	env.Nil(Tables(nil))
}
