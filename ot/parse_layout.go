package ot

import "fmt"

// Parsing of the advanced layout tables GSUB and GPOS, as far as an
// inspection needs them: the script list and the feature list. The lookup
// list is deliberately left undecoded.
//
// Both tables share a common header:
//
//	uint16    majorVersion       Major version of the table
//	uint16    minorVersion       Minor version of the table
//	Offset16  scriptListOffset   Offset to ScriptList table
//	Offset16  featureListOffset  Offset to FeatureList table
//	Offset16  lookupListOffset   Offset to LookupList table
//
// Version 1.1 appends a featureVariationsOffset, which we do not read.
// All offsets within GSUB/GPOS are measured from the start of the
// respective enclosing (sub-)table.

func parseGSub(tag Tag, b binarySegm, offset, size uint32, ec *errorCollector) (Table, error) {
	t := newGSubTable(tag, b, offset, size)
	parseLayoutTable(&t.LayoutTable, tag, b, ec)
	return t, nil
}

func parseGPos(tag Tag, b binarySegm, offset, size uint32, ec *errorCollector) (Table, error) {
	t := newGPosTable(tag, b, offset, size)
	parseLayoutTable(&t.LayoutTable, tag, b, ec)
	return t, nil
}

// parseLayoutTable decodes the header of a GSUB/GPOS table and materializes
// its script list and feature list. Broken link offsets within the table do
// not fail the parse; the affected entry is skipped and a warning recorded.
func parseLayoutTable(lt *LayoutTable, tag Tag, b binarySegm, ec *errorCollector) {
	if len(b) < 10 {
		ec.addError(tag, "Header", fmt.Sprintf("table too small: %d bytes (need 10)", len(b)), SeverityMajor, 0)
		return
	}
	lt.Major, lt.Minor = b.U16(0), b.U16(2)
	if lt.Major != 1 || lt.Minor > 1 {
		// unknown layout; treat the table like it were absent
		ec.addWarning(tag, fmt.Sprintf("unsupported table version %d.%d", lt.Major, lt.Minor), 0)
		return
	}
	scriptsOffset, featuresOffset := b.U16(4), b.U16(6)
	if int(scriptsOffset) > 0 && int(scriptsOffset) < len(b) {
		lt.Scripts = parseScriptList(tag, b[scriptsOffset:], ec)
	} else {
		ec.addWarning(tag, fmt.Sprintf("script list offset %d out of table bounds", scriptsOffset), uint32(scriptsOffset))
	}
	if int(featuresOffset) > 0 && int(featuresOffset) < len(b) {
		lt.Features = parseFeatureList(tag, b[featuresOffset:], ec)
	} else {
		ec.addWarning(tag, fmt.Sprintf("feature list offset %d out of table bounds", featuresOffset), uint32(featuresOffset))
	}
}

// parseScriptList decodes a ScriptList:
//
//	uint16        scriptCount   Number of ScriptRecords
//	ScriptRecord  scriptRecords[scriptCount]
//
// Each ScriptRecord is a 4-byte tag plus an Offset16 to a Script table,
// measured from the beginning of the ScriptList.
func parseScriptList(tag Tag, b binarySegm, ec *errorCollector) *ScriptList {
	count := int(b.U16(0))
	if count > MaxScriptCount {
		ec.addError(tag, "ScriptList", fmt.Sprintf("script count %d exceeds maximum %d", count, MaxScriptCount),
			SeverityMajor, 0)
		return nil
	}
	if 2+count*6 > len(b) {
		ec.addError(tag, "ScriptList", fmt.Sprintf("script count %d exceeds list bounds", count),
			SeverityMajor, 0)
		return nil
	}
	sl := &ScriptList{scriptByTag: make(map[Tag]*Script, count)}
	for i := range count {
		rec := b[2+i*6:]
		stag := MakeTag(rec[:4])
		off := int(u16(rec[4:6]))
		if off == 0 || off >= len(b) {
			ec.addWarning(tag, fmt.Sprintf("script %s: offset %d out of script list bounds", stag, off), uint32(off))
			continue
		}
		script := parseScript(tag, stag, b[off:], ec)
		if script == nil {
			continue
		}
		if _, ok := sl.scriptByTag[stag]; !ok {
			sl.scriptOrder = append(sl.scriptOrder, stag)
		}
		sl.scriptByTag[stag] = script
	}
	tracer().Debugf("%s script list has %d scripts", tag, len(sl.scriptOrder))
	return sl
}

// parseScript decodes a Script table:
//
//	Offset16       defaultLangSysOffset   may be NULL
//	uint16         langSysCount
//	LangSysRecord  langSysRecords[langSysCount]
//
// LangSysRecord offsets are measured from the beginning of the Script table.
func parseScript(tag Tag, stag Tag, b binarySegm, ec *errorCollector) *Script {
	if len(b) < 4 {
		ec.addWarning(tag, fmt.Sprintf("script %s: table truncated", stag), 0)
		return nil
	}
	count := int(b.U16(2))
	if count > MaxLangSysCount || 4+count*6 > len(b) {
		ec.addWarning(tag, fmt.Sprintf("script %s: implausible language-system count %d", stag, count), 0)
		return nil
	}
	s := &Script{langByTag: make(map[Tag]*LangSys, count)}
	if dflt := int(b.U16(0)); dflt != 0 {
		if dflt >= len(b) {
			ec.addWarning(tag, fmt.Sprintf("script %s: default language-system offset %d out of bounds", stag, dflt),
				uint32(dflt))
		} else {
			s.defaultLangSys = parseLangSys(tag, stag, b[dflt:], ec)
		}
	}
	for i := range count {
		rec := b[4+i*6:]
		ltag := MakeTag(rec[:4])
		off := int(u16(rec[4:6]))
		if off == 0 || off >= len(b) {
			ec.addWarning(tag, fmt.Sprintf("script %s: language system %s offset %d out of bounds", stag, ltag, off),
				uint32(off))
			continue
		}
		langsys := parseLangSys(tag, stag, b[off:], ec)
		if langsys == nil {
			continue
		}
		if _, ok := s.langByTag[ltag]; !ok {
			s.langOrder = append(s.langOrder, ltag)
		}
		s.langByTag[ltag] = langsys
	}
	return s
}

// parseLangSys decodes a LangSys table:
//
//	Offset16  lookupOrderOffset      reserved, NULL
//	uint16    requiredFeatureIndex   0xFFFF if none
//	uint16    featureIndexCount
//	uint16    featureIndices[featureIndexCount]
func parseLangSys(tag Tag, stag Tag, b binarySegm, ec *errorCollector) *LangSys {
	if len(b) < 6 {
		ec.addWarning(tag, fmt.Sprintf("script %s: language-system table truncated", stag), 0)
		return nil
	}
	count := int(b.U16(4))
	if 6+count*2 > len(b) {
		ec.addWarning(tag, fmt.Sprintf("script %s: feature index count %d exceeds language-system bounds",
			stag, count), 0)
		return nil
	}
	ls := &LangSys{requiredFeatureIndex: b.U16(2)}
	if count > 0 {
		ls.featureIndices = make([]uint16, count)
		for i := range count {
			ls.featureIndices[i] = u16(b[6+i*2:])
		}
	}
	return ls
}

// parseFeatureList decodes a FeatureList:
//
//	uint16         featureCount
//	FeatureRecord  featureRecords[featureCount]
//
// Each FeatureRecord is a 4-byte tag plus an Offset16 to a Feature table,
// measured from the beginning of the FeatureList. Language systems address
// features by their position in this list, so a record with a broken
// offset keeps its slot (with a nil feature) to preserve indexing.
func parseFeatureList(tag Tag, b binarySegm, ec *errorCollector) *FeatureList {
	count := int(b.U16(0))
	if count > MaxFeatureCount {
		ec.addError(tag, "FeatureList", fmt.Sprintf("feature count %d exceeds maximum %d", count, MaxFeatureCount),
			SeverityMajor, 0)
		return nil
	}
	if 2+count*6 > len(b) {
		ec.addError(tag, "FeatureList", fmt.Sprintf("feature count %d exceeds list bounds", count),
			SeverityMajor, 0)
		return nil
	}
	fl := &FeatureList{
		featureOrder:    make([]Tag, count),
		featuresByIndex: make([]*Feature, count),
	}
	for i := range count {
		rec := b[2+i*6:]
		ftag := MakeTag(rec[:4])
		fl.featureOrder[i] = ftag
		off := int(u16(rec[4:6]))
		if off == 0 || off >= len(b) {
			ec.addWarning(tag, fmt.Sprintf("feature %s: offset %d out of feature list bounds", ftag, off),
				uint32(off))
			continue
		}
		fl.featuresByIndex[i] = parseFeature(tag, ftag, b[off:], ec)
	}
	tracer().Debugf("%s feature list has %d features", tag, count)
	return fl
}

// parseFeature decodes a Feature table:
//
//	Offset16  featureParamsOffset   NULL except for a few registered features
//	uint16    lookupIndexCount
//	uint16    lookupListIndices[lookupIndexCount]
func parseFeature(tag Tag, ftag Tag, b binarySegm, ec *errorCollector) *Feature {
	if len(b) < 4 {
		ec.addWarning(tag, fmt.Sprintf("feature %s: table truncated", ftag), 0)
		return nil
	}
	count := int(b.U16(2))
	if 4+count*2 > len(b) {
		ec.addWarning(tag, fmt.Sprintf("feature %s: lookup index count %d exceeds feature bounds", ftag, count), 0)
		return nil
	}
	f := &Feature{featureParamsOffset: b.U16(0)}
	if count > 0 {
		f.lookupListIndices = make([]uint16, count)
		for i := range count {
			f.lookupListIndices[i] = u16(b[4+i*2:])
		}
	}
	return f
}
