package otquery

import (
	"testing"

	"github.com/npillmayer/otinspect/internal/testfont"
	"github.com/npillmayer/otinspect/ot"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type FeaturesTestEnviron struct {
	suite.Suite
}

// listen for 'go test' command --> run test methods
func TestFeatureCollection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otinspect.query")
	defer teardown()
	suite.Run(t, new(FeaturesTestEnviron))
}

func (env *FeaturesTestEnviron) parse(font []byte) *ot.Font {
	otf, err := ot.Parse(font)
	env.Require().NoError(err, "expected synthetic font to parse")
	return otf
}

// --- Tests -----------------------------------------------------------------

// A font with two scripts in GSUB: latn carries a default language system
// referencing feature 1 and one named language system referencing feature 0;
// cyrl only has a default language system referencing feature 0. The feature
// list holds kern and liga.
func (env *FeaturesTestEnviron) TestCollectAcrossScriptsAndLangSystems() {
	gsub := testfont.Layout(
		[]testfont.ScriptDef{
			{
				Tag:     "latn",
				Default: &testfont.LangSysDef{Features: []uint16{1}},
				Langs:   []testfont.LangSysDef{{Tag: "TRK ", Features: []uint16{0}}},
			},
			{
				Tag:     "cyrl",
				Default: &testfont.LangSysDef{Features: []uint16{0}},
			},
		},
		[]testfont.FeatureDef{{Tag: "kern"}, {Tag: "liga"}},
	)
	otf := env.parse(testfont.New().Standard().Add("GSUB", gsub).Build())

	env.Equal([]string{"kern", "liga"}, GSubFeatureTags(otf))
	env.Equal([]string{"cyrl", "latn"}, ScriptTags(otf), "script tags are sorted lexicographically")
	env.Nil(GPosFeatureTags(otf), "font has no GPOS table")
}

func (env *FeaturesTestEnviron) TestDeduplicationAndOrder() {
	// the same tag twice in the feature list, referenced from two scripts,
	// declared in non-lexicographic order
	gsub := testfont.Layout(
		[]testfont.ScriptDef{
			{Tag: "latn", Default: &testfont.LangSysDef{Features: []uint16{0, 1, 2}}},
			{Tag: "grek", Default: &testfont.LangSysDef{Features: []uint16{1}}},
		},
		[]testfont.FeatureDef{{Tag: "liga"}, {Tag: "calt"}, {Tag: "liga"}},
	)
	otf := env.parse(testfont.New().Standard().Add("GSUB", gsub).Build())

	env.Equal([]string{"calt", "liga"}, GSubFeatureTags(otf),
		"duplicate tags collapse, result is sorted")
}

func (env *FeaturesTestEnviron) TestDanglingFeatureIndexIsSkipped() {
	gsub := testfont.Layout(
		[]testfont.ScriptDef{
			{Tag: "latn", Default: &testfont.LangSysDef{Features: []uint16{0, 7, 200}}},
		},
		[]testfont.FeatureDef{{Tag: "liga"}},
	)
	otf := env.parse(testfont.New().Standard().Add("GSUB", gsub).Build())

	env.Equal([]string{"liga"}, GSubFeatureTags(otf),
		"indices beyond the feature list are silently dropped")
}

func (env *FeaturesTestEnviron) TestGSubAndGPosAreCollectedSeparately() {
	gsub := testfont.Layout(
		[]testfont.ScriptDef{
			{Tag: "latn", Default: &testfont.LangSysDef{Features: []uint16{0}}},
		},
		[]testfont.FeatureDef{{Tag: "liga"}},
	)
	gpos := testfont.Layout(
		[]testfont.ScriptDef{
			{Tag: "arab", Default: &testfont.LangSysDef{Features: []uint16{0, 1}}},
		},
		[]testfont.FeatureDef{{Tag: "kern"}, {Tag: "mark"}},
	)
	otf := env.parse(testfont.New().Standard().Add("GSUB", gsub).Add("GPOS", gpos).Build())

	env.Equal([]string{"liga"}, GSubFeatureTags(otf))
	env.Equal([]string{"kern", "mark"}, GPosFeatureTags(otf))
	env.Equal([]string{"arab", "latn"}, ScriptTags(otf), "scripts are the union of both tables")
}

func (env *FeaturesTestEnviron) TestAbsentAndEmptyTablesYieldNothing() {
	bare := env.parse(testfont.New().Standard().Build())
	env.Empty(GSubFeatureTags(bare))
	env.Empty(GPosFeatureTags(bare))
	env.Empty(ScriptTags(bare))

	// present but empty lists behave like absent tables
	empty := env.parse(testfont.New().Standard().
		Add("GSUB", testfont.Layout(nil, nil)).Build())
	env.Empty(GSubFeatureTags(empty))
	env.Empty(ScriptTags(empty))
}

func (env *FeaturesTestEnviron) TestScriptWithoutDefaultLangSys() {
	gsub := testfont.Layout(
		[]testfont.ScriptDef{
			{
				Tag:   "deva",
				Langs: []testfont.LangSysDef{{Tag: "HIN ", Features: []uint16{0}}},
			},
		},
		[]testfont.FeatureDef{{Tag: "akhn"}},
	)
	otf := env.parse(testfont.New().Standard().Add("GSUB", gsub).Build())

	env.Equal([]string{"akhn"}, GSubFeatureTags(otf),
		"features of named language systems count even without a default one")
	env.Equal([]string{"deva"}, ScriptTags(otf))
}

func (env *FeaturesTestEnviron) TestNilLayoutTable() {
	env.Nil(LayoutFeatureTags(nil), "nil layout table yields nil")
}
