package otquery

import (
	"sort"

	"github.com/npillmayer/otinspect/ot"
)

// FontType returns the font type, encoded in the font header, as a string.
func FontType(otf *ot.Font) string {
	if otf == nil || otf.Header == nil {
		return "<empty>"
	}
	typ := otf.Header.FontType
	switch typ {
	case 0x4f54544f: // OTTO
		return "OpenType (outlines)"
	case 0x00010000: // TrueType
		return "TrueType"
	case 0x74727565: // true
		return "TrueType (Mac legacy)"
	}
	return "<unknown>"
}

// Tables returns the tags of all tables contained in a font, sorted
// lexicographically.
func Tables(otf *ot.Font) []string {
	if otf == nil {
		return nil
	}
	var tags []string
	for _, tag := range otf.TableTags() {
		tags = append(tags, tag.String())
	}
	sort.Strings(tags)
	return tags
}

// LayoutTables returns a list of tag strings, one for each layout-table a
// font includes.
//
// From the OpenType specification:
// OpenType Layout makes use of five tables: GSUB, GPOS, BASE, JSTF, and GDEF.
func LayoutTables(otf *ot.Font) []string {
	var lt []string
	tags := otf.TableTags()
	for _, tag := range tags {
		switch tag.String() {
		case "GSUB", "GPOS", "BASE", "JSTF", "GDEF":
			lt = append(lt, tag.String())
		}
	}
	return lt
}
