package otinspect

import (
	"testing"

	"github.com/npillmayer/otinspect/internal/testfont"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBinary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otinspect")
	defer teardown()
	otf, err := FromBinary(testfont.New().Standard().Build())
	require.NoError(t, err, "expected synthetic font to parse")
	assert.NotNil(t, otf.Head)
	assert.EqualValues(t, 1000, otf.Head.UnitsPerEm)
}

func TestFromBinaryFace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otinspect")
	defer teardown()
	coll := testfont.Collection(
		testfont.New().Standard(),
		testfont.New().
			Add("head", testfont.Head(2048, 0)).
			Add("hhea", testfont.HHea(800, -200, 0, 700)).
			Add("maxp", testfont.MaxP(7)),
	)
	otf, err := FromBinaryFace(coll, 1)
	require.NoError(t, err, "expected face 1 of collection to parse")
	assert.EqualValues(t, 2048, otf.Head.UnitsPerEm)

	_, err = FromBinaryFace(coll, 5)
	assert.Error(t, err, "collection has no face 5")
}

func TestParseOpenTypeFaceErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otinspect")
	defer teardown()
	_, err := ParseOpenTypeFont([]byte{0, 1, 2, 3})
	assert.Error(t, err, "garbage bytes are not an SFNT container")
	_, err = ParseOpenTypeFace(testfont.New().Standard().Build(), -1)
	assert.Error(t, err, "negative face index is invalid")
}

func TestLoadOpenTypeFontMissingFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otinspect")
	defer teardown()
	_, err := LoadOpenTypeFont("no-such-font.ttf")
	assert.Error(t, err, "loading a missing file must fail")
}
