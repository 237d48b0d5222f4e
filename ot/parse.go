package ot

import (
	"fmt"
	"math"
)

// Code comments often will cite passages from the
// OpenType specification version 1.8.4;
// see https://docs.microsoft.com/en-us/typography/opentype/spec/.

// ---------------------------------------------------------------------------

// Maximum reasonable counts for OpenType table structures.
// These limits prevent malicious fonts from claiming unreasonably large counts
// that could lead to excessive memory allocation or out-of-bounds reads.
const (
	MaxScriptCount  = 50  // Scripts: typically < 10
	MaxLangSysCount = 200 // Language systems per script: typically < 20
	MaxFeatureCount = 500 // Features: typically < 200
	MaxFaceCount    = 256 // Fonts in a collection file
)

// ---------------------------------------------------------------------------

// Checked arithmetic operations to prevent integer overflow

// checkedMulInt checks for overflow in multiplication of two integers
func checkedMulInt(a, b int) (int, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if a > 0 && b > 0 && a > math.MaxInt/b {
		return 0, fmt.Errorf("integer overflow: %d * %d", a, b)
	}
	if a < 0 && b < 0 && a < math.MaxInt/b {
		return 0, fmt.Errorf("integer overflow: %d * %d", a, b)
	}
	if (a < 0 && b > 0 && a < math.MinInt/b) || (a > 0 && b < 0 && b < math.MinInt/a) {
		return 0, fmt.Errorf("integer overflow: %d * %d", a, b)
	}
	return a * b, nil
}

// checkedAddUint32 checks for overflow in addition of two uint32 values
func checkedAddUint32(a, b uint32) (uint32, error) {
	if a > math.MaxUint32-b {
		return 0, fmt.Errorf("integer overflow: %d + %d", a, b)
	}
	return a + b, nil
}

// ---------------------------------------------------------------------------

// errFontFormat produces user level errors for font parsing.
func errFontFormat(message string) error {
	return fmt.Errorf("OpenType font format: %s", message)
}

// ---------------------------------------------------------------------------

// Parse parses an OpenType font from a byte slice. For font collection
// files (TTC) the first face is selected; use ParseFace to address the
// others.
//
// An ot.Font needs ongoing access to the font's byte-data after the Parse
// function returns. Its elements are assumed immutable while the ot.Font
// remains in use.
func Parse(font []byte) (*Font, error) {
	return ParseFace(font, 0)
}

// ParseFace parses one face of an OpenType font from a byte slice.
// For a single-font stream only faceIndex 0 is valid. For a collection
// file ('ttcf' magic) faceIndex selects a face; an index beyond the
// collection's font count is an error.
func ParseFace(font []byte, faceIndex int) (*Font, error) {
	src := binarySegm(font)
	if len(font) < 12 {
		return nil, errFontFormat("byte stream too short for a font header")
	}

	// Create error collector for accumulating errors during parsing
	ec := &errorCollector{}

	dirOffset, err := faceOffset(src, faceIndex)
	if err != nil {
		return nil, err
	}
	// https://www.microsoft.com/typography/otspec/otff.htm: Offset Table is 12 bytes.
	hd, err := src.view(int(dirOffset), 12)
	if err != nil {
		return nil, errFontFormat("table directory out of bounds")
	}
	h := FontHeader{FontType: u32(hd), TableCount: u16(hd[4:])}
	tracer().Debugf("header = %v, tag = %x|%s", h, h.FontType, Tag(h.FontType).String())
	if !(h.FontType == 0x4f54544f || // OTTO
		h.FontType == 0x00010000 || // TrueType
		h.FontType == 0x74727565) { // true
		return nil, errFontFormat(fmt.Sprintf("font type not supported: %x", h.FontType))
	}
	otf := &Font{Header: &h, tables: make(map[Tag]Table)}

	// "The Offset Table is followed immediately by the Table Record entries …
	// sorted in ascending order by tag", 16 bytes each.
	tableRecordsSize, err := checkedMulInt(16, int(h.TableCount))
	if err != nil {
		return nil, errFontFormat(fmt.Sprintf("table count too large: %v", err))
	}
	buf, err := src.view(int(dirOffset)+12, tableRecordsSize)
	if err != nil {
		ec.addError(T(""), "TableRecords", "table record entries", SeverityCritical, dirOffset+12)
		return nil, errFontFormat("table record entries")
	}
	for b, prevTag := buf, Tag(0); len(b) > 0; b = b[16:] {
		tag := MakeTag(b)
		if tag < prevTag {
			ec.addError(T(""), "TableRecords", "table order", SeverityCritical, dirOffset+12)
			return nil, errFontFormat("table order")
		}
		prevTag = tag
		off, size := u32(b[8:12]), u32(b[12:16])
		if off&3 != 0 { // ignore checksums, but "all tables must begin on four byte boundries".
			ec.addError(tag, "Offset", "invalid table offset", SeverityCritical, off)
			return nil, errFontFormat("invalid table offset")
		}
		// Table offsets are measured from the beginning of the file, for
		// collections too.
		tableEnd, err := checkedAddUint32(off, size)
		if err != nil {
			ec.addError(tag, "Size", fmt.Sprintf("size calculation overflow: %v", err), SeverityCritical, off)
			return nil, errFontFormat(fmt.Sprintf("table %s: size calculation overflow: %v", tag, err))
		}
		if off > uint32(len(src)) || tableEnd > uint32(len(src)) {
			ec.addError(tag, "Bounds", fmt.Sprintf("bounds [%d:%d] exceed font size %d", off, tableEnd, len(src)), SeverityCritical, off)
			return nil, errFontFormat(fmt.Sprintf("table %s: bounds [%d:%d] exceed font size %d",
				tag, off, tableEnd, len(src)))
		}
		otf.tables[tag], err = parseTable(tag, src[off:tableEnd], off, size, ec)
		if err != nil {
			return nil, err
		}
	}
	if err := extractTableInfo(otf, ec); err != nil {
		return nil, err
	}

	// Transfer accumulated errors and warnings to the Font
	otf.parseErrors = ec.errors
	otf.parseWarnings = ec.warnings

	return otf, nil
}

// faceOffset locates the table directory for a face. Single-font streams
// start with the directory at byte 0; collection files carry a TTC header
// with one directory offset per font.
func faceOffset(src binarySegm, faceIndex int) (uint32, error) {
	if MakeTag(src[:4]) != T("ttcf") {
		if faceIndex != 0 {
			return 0, errFontFormat(fmt.Sprintf("face index %d in a single-font stream", faceIndex))
		}
		return 0, nil
	}
	// TTC header: ttcf tag, major/minor version, numFonts, then
	// numFonts offset32 entries measured from the beginning of the file.
	numFonts := src.U32(8)
	tracer().Debugf("font collection with %d fonts", numFonts)
	if numFonts == 0 || numFonts > MaxFaceCount {
		return 0, errFontFormat(fmt.Sprintf("implausible font count %d in collection", numFonts))
	}
	if faceIndex < 0 || uint32(faceIndex) >= numFonts {
		return 0, errFontFormat(fmt.Sprintf("face index %d out of range (collection has %d fonts)",
			faceIndex, numFonts))
	}
	off, err := src.u32(12 + faceIndex*4)
	if err != nil {
		return 0, errFontFormat("collection header out of bounds")
	}
	return off, nil
}

// According to the OpenType spec a font needs more tables to function,
// but these are the ones inspection cannot do without.
var RequiredTables = []string{
	"head", "hhea", "maxp",
}

// Shortcuts to essential tables, including the advanced layout tables.
// Absence of a layout table is legal and leaves the shortcut nil.
func extractTableInfo(otf *Font, ec *errorCollector) error {
	for _, tag := range RequiredTables {
		h := otf.tables[T(tag)]
		if h == nil {
			ec.addError(T(tag), "Missing", "missing required table", SeverityCritical, 0)
			return errFontFormat("missing required table " + tag)
		}
	}
	otf.Head = otf.tables[T("head")].Self().AsHead()
	otf.HHea = otf.tables[T("hhea")].Self().AsHHea()
	otf.MaxP = otf.tables[T("maxp")].Self().AsMaxP()
	if os2 := otf.tables[T("OS/2")]; os2 != nil {
		otf.OS2 = os2.Self().AsOS2()
	}
	if post := otf.tables[T("post")]; post != nil {
		otf.Post = post.Self().AsPost()
	}
	if gsub := otf.tables[T("GSUB")]; gsub != nil {
		otf.Layout.GSub = gsub.Self().AsGSub()
	}
	if gpos := otf.tables[T("GPOS")]; gpos != nil {
		otf.Layout.GPos = gpos.Self().AsGPos()
	}
	return nil
}

func parseTable(t Tag, b binarySegm, offset, size uint32, ec *errorCollector) (Table, error) {
	switch t {
	case T("head"):
		return parseHead(t, b, offset, size, ec)
	case T("hhea"):
		return parseHHea(t, b, offset, size, ec)
	case T("maxp"):
		return parseMaxP(t, b, offset, size, ec)
	case T("OS/2"):
		return parseOS2(t, b, offset, size, ec)
	case T("post"):
		return parsePost(t, b, offset, size, ec)
	case T("GSUB"):
		return parseGSub(t, b, offset, size, ec)
	case T("GPOS"):
		return parseGPos(t, b, offset, size, ec)
	}
	tracer().Debugf("font contains table (%s), will not be interpreted", t)
	return newTable(t, b, offset, size), nil
}

// --- head table ------------------------------------------------------------

func parseHead(tag Tag, b binarySegm, offset, size uint32, ec *errorCollector) (Table, error) {
	if size < 54 {
		ec.addError(tag, "Size", fmt.Sprintf("head table too small: %d bytes (need 54)", size), SeverityCritical, offset)
		return nil, errFontFormat("size of head table")
	}
	t := newHeadTable(tag, b, offset, size)
	t.Flags, _ = b.u16(16)      // flags
	t.UnitsPerEm, _ = b.u16(18) // units per em
	t.MacStyle, _ = b.u16(44)   // bold/italic bits
	// IndexToLocFormat is needed to interpret the loca table:
	// 0 for short offsets, 1 for long
	t.IndexToLocFormat, _ = b.u16(50)
	return t, nil
}

// --- hhea table ------------------------------------------------------------

func parseHHea(tag Tag, b binarySegm, offset, size uint32, ec *errorCollector) (Table, error) {
	if size < 36 {
		ec.addError(tag, "Size", fmt.Sprintf("hhea table too small: %d bytes (need 36)", size), SeverityCritical, offset)
		return nil, errFontFormat("size of hhea table")
	}
	t := newHHeaTable(tag, b, offset, size)
	t.Ascender = b.I16(4)
	t.Descender = b.I16(6)
	t.LineGap = b.I16(8)
	t.AdvanceWidthMax = b.U16(10)
	t.NumberOfHMetrics = int(b.U16(34))
	return t, nil
}

// --- maxp table ------------------------------------------------------------

func parseMaxP(tag Tag, b binarySegm, offset, size uint32, ec *errorCollector) (Table, error) {
	if size < 6 {
		ec.addError(tag, "Size", fmt.Sprintf("maxp table too small: %d bytes (need 6)", size), SeverityCritical, offset)
		return nil, errFontFormat("size of maxp table")
	}
	t := newMaxPTable(tag, b, offset, size)
	t.NumGlyphs = int(b.U16(4))
	return t, nil
}

// --- OS/2 table ------------------------------------------------------------

// An OS/2 table of version 0 has 78 bytes; later versions only append
// fields we do not read.
func parseOS2(tag Tag, b binarySegm, offset, size uint32, ec *errorCollector) (Table, error) {
	if size < 78 {
		ec.addError(tag, "Size", fmt.Sprintf("OS/2 table too small: %d bytes (need 78)", size), SeverityMajor, offset)
		// degrade to a generic table rather than failing the whole font
		return newTable(tag, b, offset, size), nil
	}
	t := newOS2Table(tag, b, offset, size)
	t.Version = b.U16(0)
	t.XAvgCharWidth = b.I16(2)
	t.WeightClass = b.U16(4)
	t.WidthClass = b.U16(6)
	t.FsSelection = b.U16(62)
	t.TypoAscender = b.I16(68)
	t.TypoDescender = b.I16(70)
	t.TypoLineGap = b.I16(72)
	t.WinAscent = b.U16(74)
	t.WinDescent = b.U16(76)
	return t, nil
}

// --- post table ------------------------------------------------------------

func parsePost(tag Tag, b binarySegm, offset, size uint32, ec *errorCollector) (Table, error) {
	if size < 32 {
		ec.addError(tag, "Size", fmt.Sprintf("post table too small: %d bytes (need 32)", size), SeverityMajor, offset)
		return newTable(tag, b, offset, size), nil
	}
	t := newPostTable(tag, b, offset, size)
	t.IsFixedPitch = b.U32(12) != 0
	return t, nil
}
