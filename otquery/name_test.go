package otquery

import (
	"testing"

	"github.com/npillmayer/otinspect/internal/testfont"
	"github.com/npillmayer/otinspect/ot"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font/sfnt"
)

// --- Test Suite Preparation ------------------------------------------------

type NameTestEnviron struct {
	suite.Suite
}

// listen for 'go test' command --> run test methods
func TestNameResolution(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otinspect.query")
	defer teardown()
	suite.Run(t, new(NameTestEnviron))
}

func (env *NameTestEnviron) parse(font []byte) *ot.Font {
	otf, err := ot.Parse(font)
	env.Require().NoError(err, "expected synthetic font to parse")
	return otf
}

// --- Tests -----------------------------------------------------------------

func (env *NameTestEnviron) TestStandardOrder() {
	// records deliberately out of order within the name table
	otf := env.parse(testfont.New().Standard().
		Add("name", testfont.Name(
			testfont.WindowsName(5, "Version 1.0"),
			testfont.WindowsName(1, "Inspector Sans"),
			testfont.WindowsName(6, "InspectorSans-Regular"),
			testfont.WindowsName(4, "Inspector Sans Regular"),
			testfont.WindowsName(2, "Regular"),
		)).
		Build())
	names := ResolveNames(otf)
	env.False(names.FromFallback)
	env.Require().Len(names.Entries, 5)
	env.Equal(sfnt.NameIDFamily, names.Entries[0].ID)
	env.Equal("Inspector Sans", names.Entries[0].Value)
	env.Equal("Family", names.Entries[0].Label)
	env.Equal(sfnt.NameIDSubfamily, names.Entries[1].ID)
	env.Equal(sfnt.NameIDFull, names.Entries[2].ID)
	env.Equal(sfnt.NameIDPostScript, names.Entries[3].ID)
	env.Equal(sfnt.NameIDVersion, names.Entries[4].ID)
	env.Equal("Version 1.0", names.Entries[4].Value)
}

func (env *NameTestEnviron) TestPartialStandardSet() {
	otf := env.parse(testfont.New().Standard().
		Add("name", testfont.Name(
			testfont.WindowsName(1, "Inspector Sans"),
			testfont.WindowsName(5, "Version 2.1"),
		)).
		Build())
	names := ResolveNames(otf)
	env.False(names.FromFallback)
	env.Require().Len(names.Entries, 2, "only present standard IDs are listed")
	env.Equal(sfnt.NameIDFamily, names.Entries[0].ID)
	env.Equal(sfnt.NameIDVersion, names.Entries[1].ID)
}

func (env *NameTestEnviron) TestFirstDecodableRecordWins() {
	otf := env.parse(testfont.New().Standard().
		Add("name", testfont.Name(
			testfont.MacName(1, "Mac Family"),
			testfont.WindowsName(1, "Windows Family"),
			testfont.WindowsName(1, "Second Windows Family"),
		)).
		Build())
	names := ResolveNames(otf)
	env.Require().Len(names.Entries, 1)
	env.Equal("Windows Family", names.Entries[0].Value,
		"first record with a supported encoding wins")
}

func (env *NameTestEnviron) TestFallbackDump() {
	// no standard naming IDs at all, but decodable records present
	otf := env.parse(testfont.New().Standard().
		Add("name", testfont.Name(
			testfont.WindowsName(0, "Copyright 2026"),
			testfont.WindowsName(13, "License text"),
		)).
		Build())
	names := ResolveNames(otf)
	env.True(names.FromFallback, "non-standard records trigger the fallback dump")
	env.Require().Len(names.Entries, 2)
	env.Equal(sfnt.NameID(0), names.Entries[0].ID)
	env.Equal("Copyright 2026", names.Entries[0].Value)
	env.Equal("License text", names.Entries[1].Value)
}

func (env *NameTestEnviron) TestUndecodableRecordsOnly() {
	otf := env.parse(testfont.New().Standard().
		Add("name", testfont.Name(
			testfont.MacName(1, "Mac Roman Family"),
		)).
		Build())
	names := ResolveNames(otf)
	env.Empty(names.Entries, "Mac Roman records are not decoded")
	env.False(names.FromFallback)
}

func (env *NameTestEnviron) TestMissingNameTable() {
	otf := env.parse(testfont.New().Standard().Build())
	names := ResolveNames(otf)
	env.Empty(names.Entries)
	env.False(names.FromFallback)
}

func (env *NameTestEnviron) TestNameIDLabels() {
	env.Equal("Family", NameIDLabel(sfnt.NameIDFamily))
	env.Equal("Subfamily", NameIDLabel(sfnt.NameIDSubfamily))
	env.Equal("Full name", NameIDLabel(sfnt.NameIDFull))
	env.Equal("PostScript name", NameIDLabel(sfnt.NameIDPostScript))
	env.Equal("Version", NameIDLabel(sfnt.NameIDVersion))
	env.Equal("Name ID 13", NameIDLabel(sfnt.NameID(13)))
}
