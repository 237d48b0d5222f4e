package ot

import (
	"testing"

	"github.com/npillmayer/otinspect/internal/testfont"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type ParseTestEnviron struct {
	suite.Suite
	otf *Font
}

// listen for 'go test' command --> run test methods
func TestParseFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otinspect.ot")
	defer teardown()
	suite.Run(t, new(ParseTestEnviron))
}

// run once, before test suite methods
func (env *ParseTestEnviron) SetupSuite() {
	font := testfont.New().
		Standard().
		Add("OS/2", testfont.OS2(400, 5, 0, 750, -250, 20)).
		Add("post", testfont.Post(false)).
		Add("name", testfont.Name(testfont.WindowsName(1, "Testfont"))).
		Add("GSUB", testfont.Layout(
			[]testfont.ScriptDef{
				{Tag: "latn", Default: &testfont.LangSysDef{Features: []uint16{0, 1}}},
			},
			[]testfont.FeatureDef{{Tag: "liga", Lookups: []uint16{0}}, {Tag: "kern"}},
		)).
		Build()
	otf, err := Parse(font)
	env.Require().NoError(err, "expected synthetic font to parse")
	env.otf = otf
}

// --- Tests -----------------------------------------------------------------

func (env *ParseTestEnviron) TestHeader() {
	env.Require().NotNil(env.otf.Header)
	env.Equal(uint32(0x00010000), env.otf.Header.FontType, "expected TrueType font type")
	env.EqualValues(7, env.otf.Header.TableCount, "expected 7 tables in font header")
}

func (env *ParseTestEnviron) TestTableDirectory() {
	for _, tag := range []string{"head", "hhea", "maxp", "OS/2", "post", "name", "GSUB"} {
		env.NotNil(env.otf.Table(T(tag)), "expected table %s to be present", tag)
	}
	env.Nil(env.otf.Table(T("GPOS")), "font has no GPOS table")
	env.Len(env.otf.TableTags(), 7)
}

func (env *ParseTestEnviron) TestTypedTables() {
	env.Require().NotNil(env.otf.Head)
	env.EqualValues(1000, env.otf.Head.UnitsPerEm)
	env.Require().NotNil(env.otf.HHea)
	env.EqualValues(750, env.otf.HHea.Ascender)
	env.EqualValues(-250, env.otf.HHea.Descender)
	env.Require().NotNil(env.otf.MaxP)
	env.Equal(4, env.otf.MaxP.NumGlyphs)
	env.Require().NotNil(env.otf.OS2)
	env.EqualValues(400, env.otf.OS2.WeightClass)
	env.Require().NotNil(env.otf.Post)
	env.False(env.otf.Post.IsFixedPitch)
}

func (env *ParseTestEnviron) TestTableConversion() {
	head := env.otf.Table(T("head")).Self().AsHead()
	env.Require().NotNil(head, "expected conversion to HeadTable to succeed")
	env.Equal(env.otf.Head, head)
	env.Nil(env.otf.Table(T("head")).Self().AsMaxP(), "head must not convert to MaxPTable")
	env.Equal(T("head"), env.otf.Table(T("head")).Self().NameTag())
}

func (env *ParseTestEnviron) TestTableExtent() {
	head := env.otf.Table(T("head"))
	offset, size := head.Extent()
	env.EqualValues(54, size, "head table is 54 bytes")
	env.NotZero(offset)
	env.Len(head.Binary(), 54)
}

func (env *ParseTestEnviron) TestLayoutShortcuts() {
	gsub := env.otf.GSub()
	env.Require().NotNil(gsub, "expected GSUB shortcut to be set")
	env.EqualValues(1, gsub.Major)
	env.Equal(1, gsub.Scripts.Len())
	env.Equal(2, gsub.Features.Len())
	env.Nil(env.otf.GPos(), "expected GPOS shortcut to be nil")
}

func (env *ParseTestEnviron) TestScriptGraph() {
	gsub := env.otf.GSub()
	env.Equal([]Tag{T("latn")}, gsub.Scripts.Tags())
	latn := gsub.Scripts.Script(T("latn"))
	env.Require().NotNil(latn, "expected script latn in GSUB")
	dflt := latn.DefaultLangSys()
	env.Require().NotNil(dflt, "expected default language system for latn")
	env.Equal([]int{0, 1}, dflt.FeatureIndices())
	_, required := dflt.RequiredFeatureIndex()
	env.False(required, "no required feature expected")
	tag, ok := gsub.Features.TagAt(0)
	env.True(ok)
	env.Equal(T("liga"), tag)
	tag, ok = gsub.Features.TagAt(1)
	env.True(ok)
	env.Equal(T("kern"), tag)
	_, ok = gsub.Features.TagAt(2)
	env.False(ok, "index 2 is out of feature list bounds")
}

func (env *ParseTestEnviron) TestFeatureContents() {
	gsub := env.otf.GSub()
	liga := gsub.Features.FeatureAt(0)
	env.Require().NotNil(liga, "expected feature at index 0")
	env.Equal(1, liga.LookupCount())
	kern := gsub.Features.FeatureAt(1)
	env.Require().NotNil(kern, "expected feature at index 1")
	env.Equal(0, kern.LookupCount())
	env.Nil(gsub.Features.FeatureAt(2), "index 2 is out of feature list bounds")
	env.Nil(gsub.Features.FeatureAt(-1))
}

func (env *ParseTestEnviron) TestParseErrors() {
	_, err := Parse([]byte{0, 1, 2, 3})
	env.Error(err, "expected parse of garbage to fail")

	_, err = Parse(testfont.New().Add("maxp", testfont.MaxP(1)).Build())
	env.Error(err, "expected parse without required tables to fail")

	font := testfont.New().Standard().Build()
	_, err = ParseFace(font, 1)
	env.Error(err, "face index 1 is invalid for a single-font stream")
}

func (env *ParseTestEnviron) TestCollection() {
	coll := testfont.Collection(
		testfont.New().Standard(),
		testfont.New().
			Add("head", testfont.Head(2048, 0)).
			Add("hhea", testfont.HHea(800, -200, 0, 700)).
			Add("maxp", testfont.MaxP(99)),
	)
	first, err := ParseFace(coll, 0)
	env.Require().NoError(err, "expected face 0 of collection to parse")
	env.EqualValues(1000, first.Head.UnitsPerEm)

	second, err := ParseFace(coll, 1)
	env.Require().NoError(err, "expected face 1 of collection to parse")
	env.EqualValues(2048, second.Head.UnitsPerEm)
	env.Equal(99, second.MaxP.NumGlyphs)

	_, err = ParseFace(coll, 2)
	env.Error(err, "collection has no face 2")
	_, err = ParseFace(coll, -1)
	env.Error(err, "negative face index is invalid")
}

func (env *ParseTestEnviron) TestDanglingOffsetsAreTolerated() {
	// script record pointing beyond the script list must not fail the parse
	gsub := testfont.Layout(
		[]testfont.ScriptDef{
			{Tag: "latn", Default: &testfont.LangSysDef{Features: []uint16{0}}},
		},
		[]testfont.FeatureDef{{Tag: "liga"}},
	)
	// corrupt the script record offset (scriptlist at 10, record offset at 10+2+4)
	gsub[16] = 0xff
	gsub[17] = 0xff
	font := testfont.New().Standard().Add("GSUB", gsub).Build()
	otf, err := Parse(font)
	env.Require().NoError(err, "broken script offset must not fail parsing")
	env.Equal(0, otf.GSub().Scripts.Len(), "broken script entry is skipped")
	env.NotEmpty(otf.Warnings(), "expected a warning for the broken script entry")
}

func (env *ParseTestEnviron) TestTagRoundtrip() {
	env.Equal("GSUB", T("GSUB").String())
	env.Equal(T("kern"), MakeTag([]byte("kern")))
	env.Equal("DFLT", DFLT.String())
	env.Equal("ab  ", T("ab").String(), "short tags are padded with spaces")
}
