/*
Package testfont assembles synthetic OpenType byte streams for tests.

The builders produce structurally valid SFNT containers from hand-made
tables, so that parser and query tests do not depend on font files being
installed. Only the tables the inspection code reads are covered.
*/
package testfont

import (
	"bytes"
	"encoding/binary"
	"sort"

	"golang.org/x/text/encoding/unicode"
)

// Builder assembles a single-font SFNT byte stream.
type Builder struct {
	fontType uint32
	tables   map[string][]byte
}

// New creates a Builder for a TrueType-flavoured font (sfntVersion 0x00010000).
func New() *Builder {
	return &Builder{
		fontType: 0x00010000,
		tables:   make(map[string][]byte),
	}
}

// FontType overrides the sfntVersion of the stream.
func (b *Builder) FontType(version uint32) *Builder {
	b.fontType = version
	return b
}

// Add registers a table under a 4-letter tag. A tag added twice is
// overwritten.
func (b *Builder) Add(tag string, data []byte) *Builder {
	b.tables[tag] = data
	return b
}

// Standard registers the minimal required table set: head, hhea and maxp
// with plausible default values.
func (b *Builder) Standard() *Builder {
	b.Add("head", Head(1000, 0))
	b.Add("hhea", HHea(750, -250, 20, 600))
	b.Add("maxp", MaxP(4))
	return b
}

func (b *Builder) sortedTags() []string {
	tags := make([]string, 0, len(b.tables))
	for tag := range b.tables {
		tags = append(tags, tag)
	}
	sort.Strings(tags) // table records must be ascending by tag
	return tags
}

// Build serializes the font: offset table, table records sorted by tag,
// and 4-byte aligned table data.
func (b *Builder) Build() []byte {
	var out []byte
	dir, data := b.layout(12 + 16*len(b.tables))
	out = append(out, u32bytes(b.fontType)...)
	out = append(out, u16bytes(uint16(len(b.tables)))...)
	out = append(out, u16bytes(0)...) // searchRange
	out = append(out, u16bytes(0)...) // entrySelector
	out = append(out, u16bytes(0)...) // rangeShift
	out = append(out, dir...)
	out = append(out, data...)
	return out
}

// layout serializes table records and table data, with table offsets
// measured from the beginning of the final file. dataStart is the file
// offset at which the data region will begin.
func (b *Builder) layout(dataStart int) (dir, data []byte) {
	offset := align4(dataStart)
	data = make([]byte, offset-dataStart)
	for _, tag := range b.sortedTags() {
		table := b.tables[tag]
		dir = append(dir, []byte(tag)...)
		dir = append(dir, u32bytes(0)...) // checksum, ignored by the parser
		dir = append(dir, u32bytes(uint32(offset))...)
		dir = append(dir, u32bytes(uint32(len(table)))...)
		data = append(data, table...)
		padded := align4(len(table))
		data = append(data, make([]byte, padded-len(table))...)
		offset += padded
	}
	return dir, data
}

// Collection serializes several fonts into one TTC stream. Table offsets
// are absolute within the collection file, as the format requires.
func Collection(builders ...*Builder) []byte {
	n := len(builders)
	headerSize := 12 + 4*n
	// directory offsets follow the TTC header back to back
	dirOffsets := make([]int, n)
	pos := headerSize
	for i, b := range builders {
		dirOffsets[i] = pos
		pos += 12 + 16*len(b.tables)
	}
	var dirs, datas []byte
	dataStart := pos
	for _, b := range builders {
		dir, data := b.layout(dataStart)
		hdr := append(u32bytes(b.fontType), u16bytes(uint16(len(b.tables)))...)
		hdr = append(hdr, u16bytes(0)...)
		hdr = append(hdr, u16bytes(0)...)
		hdr = append(hdr, u16bytes(0)...)
		dirs = append(dirs, hdr...)
		dirs = append(dirs, dir...)
		datas = append(datas, data...)
		dataStart += len(data)
	}
	var out []byte
	out = append(out, []byte("ttcf")...)
	out = append(out, u16bytes(1)...) // major
	out = append(out, u16bytes(0)...) // minor
	out = append(out, u32bytes(uint32(n))...)
	for _, off := range dirOffsets {
		out = append(out, u32bytes(uint32(off))...)
	}
	out = append(out, dirs...)
	out = append(out, datas...)
	return out
}

// --- Table fabrication ------------------------------------------------------

// Head builds a 54-byte 'head' table.
func Head(unitsPerEm, macStyle uint16) []byte {
	b := make([]byte, 54)
	binary.BigEndian.PutUint16(b[0:], 1)                 // majorVersion
	binary.BigEndian.PutUint32(b[12:], 0x5F0F3CF5)       // magicNumber
	binary.BigEndian.PutUint16(b[18:], unitsPerEm)       // unitsPerEm
	binary.BigEndian.PutUint16(b[44:], macStyle)         // macStyle
	binary.BigEndian.PutUint16(b[50:], 0)                // indexToLocFormat
	return b
}

// HHea builds a 36-byte 'hhea' table.
func HHea(ascender, descender, lineGap int16, advanceWidthMax uint16) []byte {
	b := make([]byte, 36)
	binary.BigEndian.PutUint16(b[0:], 1) // majorVersion
	binary.BigEndian.PutUint16(b[4:], uint16(ascender))
	binary.BigEndian.PutUint16(b[6:], uint16(descender))
	binary.BigEndian.PutUint16(b[8:], uint16(lineGap))
	binary.BigEndian.PutUint16(b[10:], advanceWidthMax)
	binary.BigEndian.PutUint16(b[34:], 1) // numberOfHMetrics
	return b
}

// MaxP builds a version-0.5 'maxp' table.
func MaxP(numGlyphs uint16) []byte {
	b := make([]byte, 6)
	binary.BigEndian.PutUint32(b[0:], 0x00005000) // version 0.5
	binary.BigEndian.PutUint16(b[4:], numGlyphs)
	return b
}

// OS2 builds a 78-byte version-0 'OS/2' table.
func OS2(weightClass, widthClass, fsSelection uint16, typoAscender, typoDescender, typoLineGap int16) []byte {
	b := make([]byte, 78)
	binary.BigEndian.PutUint16(b[0:], 0) // version
	binary.BigEndian.PutUint16(b[4:], weightClass)
	binary.BigEndian.PutUint16(b[6:], widthClass)
	binary.BigEndian.PutUint16(b[62:], fsSelection)
	binary.BigEndian.PutUint16(b[68:], uint16(typoAscender))
	binary.BigEndian.PutUint16(b[70:], uint16(typoDescender))
	binary.BigEndian.PutUint16(b[72:], uint16(typoLineGap))
	return b
}

// Post builds a 32-byte 'post' table.
func Post(fixedPitch bool) []byte {
	b := make([]byte, 32)
	binary.BigEndian.PutUint32(b[0:], 0x00030000) // version 3.0
	if fixedPitch {
		binary.BigEndian.PutUint32(b[12:], 1)
	}
	return b
}

// NameRecord describes one record for a fabricated 'name' table.
// Value is encoded as UTF-16BE, matching the Unicode and Windows platforms.
type NameRecord struct {
	Platform uint16
	Encoding uint16
	Language uint16
	NameID   uint16
	Value    string
}

// WindowsName is a shorthand for a Windows-platform BMP record.
func WindowsName(nameID uint16, value string) NameRecord {
	return NameRecord{Platform: 3, Encoding: 1, Language: 0x0409, NameID: nameID, Value: value}
}

// MacName is a shorthand for a Macintosh-platform record, which the
// inspection code treats as undecodable.
func MacName(nameID uint16, value string) NameRecord {
	return NameRecord{Platform: 1, Encoding: 0, NameID: nameID, Value: value}
}

// Name builds a format-0 'name' table from records, in the given order.
func Name(records ...NameRecord) []byte {
	var storage bytes.Buffer
	var recs bytes.Buffer
	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder()
	for _, r := range records {
		value, err := enc.Bytes([]byte(r.Value))
		if err != nil {
			value = nil
		}
		offset := storage.Len()
		storage.Write(value)
		for _, v := range []uint16{r.Platform, r.Encoding, r.Language, r.NameID,
			uint16(len(value)), uint16(offset)} {
			recs.Write(u16bytes(v))
		}
	}
	var out bytes.Buffer
	out.Write(u16bytes(0)) // format
	out.Write(u16bytes(uint16(len(records))))
	out.Write(u16bytes(uint16(6 + recs.Len()))) // stringOffset
	out.Write(recs.Bytes())
	out.Write(storage.Bytes())
	return out.Bytes()
}

// --- Layout table fabrication -----------------------------------------------

// LangSysDef describes a language system for a fabricated layout table.
// Features holds indices into the table's feature list; indices may point
// beyond the list on purpose, to fabricate broken fonts.
type LangSysDef struct {
	Tag      string
	Features []uint16
}

// ScriptDef describes a script for a fabricated layout table.
type ScriptDef struct {
	Tag     string
	Default *LangSysDef // default language system, optional
	Langs   []LangSysDef
}

// FeatureDef describes a feature for a fabricated layout table.
type FeatureDef struct {
	Tag     string
	Lookups []uint16
}

// Layout builds a version-1.0 GSUB/GPOS table body from scripts and
// features. The lookup list offset is left NULL; inspection does not
// follow it.
func Layout(scripts []ScriptDef, features []FeatureDef) []byte {
	scriptList := buildScriptList(scripts)
	featureList := buildFeatureList(features)
	var out bytes.Buffer
	out.Write(u16bytes(1)) // majorVersion
	out.Write(u16bytes(0)) // minorVersion
	out.Write(u16bytes(10))
	out.Write(u16bytes(uint16(10 + len(scriptList))))
	out.Write(u16bytes(0)) // lookupListOffset
	out.Write(scriptList)
	out.Write(featureList)
	return out.Bytes()
}

func buildLangSys(def LangSysDef) []byte {
	var out bytes.Buffer
	out.Write(u16bytes(0))      // lookupOrderOffset
	out.Write(u16bytes(0xFFFF)) // requiredFeatureIndex: none
	out.Write(u16bytes(uint16(len(def.Features))))
	for _, inx := range def.Features {
		out.Write(u16bytes(inx))
	}
	return out.Bytes()
}

func buildScript(def ScriptDef) []byte {
	// records first, then the default langsys, then named langsys tables
	headerSize := 4 + 6*len(def.Langs)
	var langSys bytes.Buffer
	defaultOffset := 0
	if def.Default != nil {
		defaultOffset = headerSize
		langSys.Write(buildLangSys(*def.Default))
	}
	offsets := make([]int, len(def.Langs))
	for i, lang := range def.Langs {
		offsets[i] = headerSize + langSys.Len()
		langSys.Write(buildLangSys(lang))
	}
	var out bytes.Buffer
	out.Write(u16bytes(uint16(defaultOffset)))
	out.Write(u16bytes(uint16(len(def.Langs))))
	for i, lang := range def.Langs {
		out.Write(tagBytes(lang.Tag))
		out.Write(u16bytes(uint16(offsets[i])))
	}
	out.Write(langSys.Bytes())
	return out.Bytes()
}

func buildScriptList(scripts []ScriptDef) []byte {
	headerSize := 2 + 6*len(scripts)
	var tables bytes.Buffer
	offsets := make([]int, len(scripts))
	for i, script := range scripts {
		offsets[i] = headerSize + tables.Len()
		tables.Write(buildScript(script))
	}
	var out bytes.Buffer
	out.Write(u16bytes(uint16(len(scripts))))
	for i, script := range scripts {
		out.Write(tagBytes(script.Tag))
		out.Write(u16bytes(uint16(offsets[i])))
	}
	out.Write(tables.Bytes())
	return out.Bytes()
}

func buildFeatureList(features []FeatureDef) []byte {
	headerSize := 2 + 6*len(features)
	var tables bytes.Buffer
	offsets := make([]int, len(features))
	for i, feature := range features {
		offsets[i] = headerSize + tables.Len()
		tables.Write(u16bytes(0)) // featureParamsOffset
		tables.Write(u16bytes(uint16(len(feature.Lookups))))
		for _, lookup := range feature.Lookups {
			tables.Write(u16bytes(lookup))
		}
	}
	var out bytes.Buffer
	out.Write(u16bytes(uint16(len(features))))
	for i, feature := range features {
		out.Write(tagBytes(feature.Tag))
		out.Write(u16bytes(uint16(offsets[i])))
	}
	out.Write(tables.Bytes())
	return out.Bytes()
}

// --- Helpers ----------------------------------------------------------------

func u16bytes(v uint16) []byte {
	return []byte{byte(v >> 8), byte(v)}
}

func u32bytes(v uint32) []byte {
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

func tagBytes(tag string) []byte {
	tag = (tag + "    ")[:4]
	return []byte(tag)
}

func align4(n int) int {
	return (n + 3) &^ 3
}
