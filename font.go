package otinspect

import (
	"fmt"
	"os"

	"github.com/npillmayer/otinspect/ot"
	"golang.org/x/image/font/sfnt"
)

// ScalableFont is an internal representation of an outline-font of type
// TTF of OTF.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	return LoadOpenTypeFace(fontfile, 0)
}

// LoadOpenTypeFace loads one face of an OpenType font file, which may be
// a collection (TTC). For single-font files only face 0 is valid.
func LoadOpenTypeFace(fontfile string, faceIndex int) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFace(bytez, faceIndex)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont loads an OpenType font (TTF or OTF) from memory.
func ParseOpenTypeFont(fbytes []byte) (*ScalableFont, error) {
	return ParseOpenTypeFace(fbytes, 0)
}

// ParseOpenTypeFace loads one face of an OpenType font from memory.
// The bytes are sanity-parsed as an SFNT container (a single font counts
// as a collection of one) before any detailed decoding happens.
func ParseOpenTypeFace(fbytes []byte, faceIndex int) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	coll, err := sfnt.ParseCollection(f.Binary)
	if err != nil {
		return nil, err
	}
	if faceIndex < 0 || faceIndex >= coll.NumFonts() {
		return nil, fmt.Errorf("font has no face %d (contains %d)", faceIndex, coll.NumFonts())
	}
	if f.SFNT, err = coll.Font(faceIndex); err != nil {
		return nil, err
	}
	if f.Fontname, err = f.SFNT.Name(nil, sfnt.NameIDFull); err == nil {
		tracer().Debugf("loaded and parsed SFNT %s", f.Fontname)
	}
	return f, nil
}

// FromBinary parses raw OpenType bytes and returns a decoded font.
//
// The input is expected to contain a complete single-font SFNT stream.
// It must not change after parsing for the font to be usable.
func FromBinary(data []byte) (*ot.Font, error) {
	return ot.Parse(data)
}

// FromBinaryFace parses raw OpenType bytes, selecting face number faceIndex
// if the bytes contain a collection (TTC). For single-font streams only
// face 0 is valid.
func FromBinaryFace(data []byte, faceIndex int) (*ot.Font, error) {
	return ot.ParseFace(data, faceIndex)
}
