package otquery

import (
	"fmt"
	"iter"

	"github.com/npillmayer/otinspect/ot"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/encoding/unicode"
)

const (
	nameHeaderSize = 6
	nameRecordSize = 12
)

// nameKey identifies a NameRecord entry in OpenType table 'name'.
// The key follows the OpenType NameRecord fields directly.
type nameKey struct {
	Platform PlatformID
	Encoding EncodingID
	Language uint16      // not supported
	Name     sfnt.NameID // see https://pkg.go.dev/golang.org/x/image/font/sfnt#NameID
}

type PlatformID uint16

const (
	PlatformIDUnicode   PlatformID = 0
	PlatformIDMacintosh PlatformID = 1 // not supported
	PlatformIDWindows   PlatformID = 3
)

type EncodingID uint16

const (
	EncodingIDUnicodeBMP    EncodingID = 3
	EncodingIDWindowsSymbol EncodingID = 0 // for now we will not support symbol fonts
	EncodingIDWindowsBMP    EncodingID = 1
)

// NamesRange yields decoded `(nameID, value)` pairs from a font's OpenType
// `name` table, in record order.
//
// Only currently supported encodings are yielded (Unicode BMP and Windows BMP),
// and malformed or out-of-bounds records are skipped.
func NamesRange(otf *ot.Font) iter.Seq2[sfnt.NameID, string] {
	names := checkNameTableSafe(otf)
	return func(yield func(sfnt.NameID, string) bool) {
		if names == nil {
			return
		}
		binary := names.Binary()
		count := int(u16(binary[2:4])) // number of name records
		stringStorageOffset := int(u16(binary[4:6]))
		for i := range count {
			recordSlice := binary[nameHeaderSize+i*nameRecordSize : nameHeaderSize+(i+1)*nameRecordSize]
			key := nameKey{
				Platform: PlatformID(u16(recordSlice[0:2])),
				Encoding: EncodingID(u16(recordSlice[2:4])),
				Language: u16(recordSlice[4:6]),
				Name:     sfnt.NameID(u16(recordSlice[6:8])),
			}
			if !isSupportedNameEncoding(key) {
				continue
			}
			strLen := int(u16(recordSlice[8:10]))
			recordOffset := int(u16(recordSlice[10:12]))
			start := stringStorageOffset + recordOffset
			end := start + strLen
			if start < 0 || strLen < 0 || end > len(binary) {
				continue
			}
			stringValue, err := decodeNameUTF16(binary[start:end])
			if err != nil || stringValue == "" {
				continue
			}
			if !yield(key.Name, stringValue) {
				return
			}
		}
	}
}

// checkNameTableSafe checks if the name table is safe to use, i.e. no out-of-bounds access,
// no empty tables, etc.
func checkNameTableSafe(otf *ot.Font) ot.Table {
	if otf == nil {
		return nil
	}
	table := otf.Table(ot.T("name"))
	if table == nil {
		tracer().Debugf("no name table found in font")
		return nil
	}
	b := table.Binary()
	if len(b) < nameHeaderSize {
		tracer().Debugf("name table too short: %d", len(b))
		return nil
	}
	count := int(u16(b[2:4]))
	strOff := int(u16(b[4:6]))
	if strOff < 0 || strOff > len(b) {
		tracer().Debugf("name table invalid string offset: %d", strOff)
		return nil
	}
	recordsEnd := nameHeaderSize + count*nameRecordSize
	if recordsEnd > len(b) {
		tracer().Debugf("name table record section out of bounds: count=%d", count)
		return nil
	}
	return table
}

func isSupportedNameEncoding(key nameKey) bool {
	// Decode Unicode BMP + Windows BMP entries only.
	return (key.Platform == PlatformIDUnicode && key.Encoding == EncodingIDUnicodeBMP) ||
		(key.Platform == PlatformIDWindows && key.Encoding == EncodingIDWindowsBMP)
}

func decodeNameUTF16(str []byte) (string, error) {
	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	decoder := enc.NewDecoder()
	s, err := decoder.Bytes(str)
	if err != nil {
		return "", fmt.Errorf("decoding UTF-16 error: %v", err)
	}
	return string(s), nil
}

// --- Name resolution --------------------------------------------------------

// NameEntry is one resolved naming record.
type NameEntry struct {
	ID    sfnt.NameID // OpenType name ID
	Label string      // display label for the ID
	Value string      // decoded record value
}

// NameSet is the result of resolving a font's naming records.
// If none of the standard IDs could be resolved, Entries holds all
// decodable records of the table instead and FromFallback is true.
type NameSet struct {
	Entries      []NameEntry
	FromFallback bool
}

// standardNameIDs are the name IDs an inspection reports, in the order
// they are reported.
var standardNameIDs = []sfnt.NameID{
	sfnt.NameIDFamily,
	sfnt.NameIDSubfamily,
	sfnt.NameIDFull,
	sfnt.NameIDPostScript,
	sfnt.NameIDVersion,
}

// NameIDLabel returns a display label for an OpenType name ID.
func NameIDLabel(id sfnt.NameID) string {
	switch id {
	case sfnt.NameIDFamily:
		return "Family"
	case sfnt.NameIDSubfamily:
		return "Subfamily"
	case sfnt.NameIDFull:
		return "Full name"
	case sfnt.NameIDPostScript:
		return "PostScript name"
	case sfnt.NameIDVersion:
		return "Version"
	}
	return fmt.Sprintf("Name ID %d", id)
}

// ResolveNames resolves the naming records of a font.
//
// The standard IDs family, subfamily, full name, PostScript name and
// version are looked up, in this order; for each, the first decodable
// record wins, regardless of platform. IDs without a decodable record are
// left out. If no standard ID resolves at all, every decodable record of
// the name table is returned instead, in record order, with FromFallback
// set.
func ResolveNames(otf *ot.Font) NameSet {
	firstByID := make(map[sfnt.NameID]string)
	var all []NameEntry
	for id, value := range NamesRange(otf) {
		if _, ok := firstByID[id]; !ok {
			firstByID[id] = value
		}
		all = append(all, NameEntry{ID: id, Label: NameIDLabel(id), Value: value})
	}
	var set NameSet
	for _, id := range standardNameIDs {
		if value, ok := firstByID[id]; ok {
			set.Entries = append(set.Entries, NameEntry{ID: id, Label: NameIDLabel(id), Value: value})
		}
	}
	if len(set.Entries) > 0 {
		return set
	}
	tracer().Debugf("no standard naming records found, falling back to full dump")
	set.Entries = all
	set.FromFallback = len(all) > 0
	return set
}
