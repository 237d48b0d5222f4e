package ot

import "iter"

// This file contains the shared GSUB/GPOS layout-graph structures. The types
// are intentionally semantic API containers, while record-level link
// representations remain internal parser details.
//
// The layout graph is, from the outside in:
//
//	ScriptList → Script → LangSys → feature indices → FeatureList → Feature
//
// Lookup subtables referenced by features are not decoded.

// LayoutTable is the common part of the advanced layout tables GSUB and GPOS.
// Both carry a ScriptList and a FeatureList; either may be empty.
type LayoutTable struct {
	Major, Minor uint16       // table version
	Scripts      *ScriptList  // scripts supported by this table
	Features     *FeatureList // features provided by this table
}

// ScriptList is a semantic container for scripts in a GSUB/GPOS ScriptList.
// It does not expose record-layout details from the OpenType byte format.
// A nil ScriptList behaves like an empty one.
type ScriptList struct {
	scriptOrder []Tag
	scriptByTag map[Tag]*Script
}

// Script is a semantic container for one OpenType Script table.
type Script struct {
	defaultLangSys *LangSys
	langOrder      []Tag
	langByTag      map[Tag]*LangSys
}

// LangSys is a semantic list-like view for one OpenType LangSys table.
type LangSys struct {
	requiredFeatureIndex uint16 // 0xFFFF means no required feature
	featureIndices       []uint16
}

// FeatureList is a semantic container for features in a GSUB/GPOS FeatureList.
// Duplicate feature tags are preserved; entries are addressed by index, the
// way language systems reference them.
type FeatureList struct {
	featureOrder    []Tag
	featuresByIndex []*Feature
}

// Feature is a semantic view of one OpenType Feature table.
type Feature struct {
	featureParamsOffset uint16
	lookupListIndices   []uint16
}

// Len returns the number of scripts in the list.
func (sl *ScriptList) Len() int {
	if sl == nil {
		return 0
	}
	return len(sl.scriptOrder)
}

// Script returns a script by tag.
func (sl *ScriptList) Script(tag Tag) *Script {
	if sl == nil || sl.scriptByTag == nil {
		return nil
	}
	return sl.scriptByTag[tag]
}

// Tags returns the script tags in declaration order.
func (sl *ScriptList) Tags() []Tag {
	if sl == nil || len(sl.scriptOrder) == 0 {
		return nil
	}
	tags := make([]Tag, len(sl.scriptOrder))
	copy(tags, sl.scriptOrder)
	return tags
}

// Range iterates scripts in declaration order.
func (sl *ScriptList) Range() iter.Seq2[Tag, *Script] {
	return func(yield func(Tag, *Script) bool) {
		if sl == nil {
			return
		}
		for _, tag := range sl.scriptOrder {
			if !yield(tag, sl.scriptByTag[tag]) {
				return
			}
		}
	}
}

// DefaultLangSys returns the default language system of a script, or nil
// if the script declares none.
func (s *Script) DefaultLangSys() *LangSys {
	if s == nil {
		return nil
	}
	return s.defaultLangSys
}

// LangSys returns a language system by tag. The DFLT tag addresses the
// default language system.
func (s *Script) LangSys(tag Tag) *LangSys {
	if s == nil {
		return nil
	}
	if tag == DFLT {
		return s.defaultLangSys
	}
	if s.langByTag == nil {
		return nil
	}
	return s.langByTag[tag]
}

// Range iterates language systems in declaration order. The default
// language system is not part of the iteration.
func (s *Script) Range() iter.Seq2[Tag, *LangSys] {
	return func(yield func(Tag, *LangSys) bool) {
		if s == nil {
			return
		}
		for _, tag := range s.langOrder {
			if !yield(tag, s.langByTag[tag]) {
				return
			}
		}
	}
}

// RequiredFeatureIndex returns the required-feature index and whether it is set.
func (ls *LangSys) RequiredFeatureIndex() (uint16, bool) {
	if ls == nil || ls.requiredFeatureIndex == 0xffff {
		return 0, false
	}
	return ls.requiredFeatureIndex, true
}

// FeatureIndices returns the indices into the feature list which this
// language system references. Indices are returned as declared; callers
// have to be prepared for indices pointing beyond the feature list in
// broken fonts.
func (ls *LangSys) FeatureIndices() []int {
	if ls == nil || len(ls.featureIndices) == 0 {
		return nil
	}
	indices := make([]int, len(ls.featureIndices))
	for i, inx := range ls.featureIndices {
		indices[i] = int(inx)
	}
	return indices
}

// Len returns the number of features in the feature list.
func (fl *FeatureList) Len() int {
	if fl == nil {
		return 0
	}
	return len(fl.featuresByIndex)
}

// TagAt returns the feature tag at a given index, and whether the index
// addresses an entry of the list.
func (fl *FeatureList) TagAt(i int) (Tag, bool) {
	if fl == nil || i < 0 || i >= len(fl.featureOrder) {
		return 0, false
	}
	return fl.featureOrder[i], true
}

// FeatureAt returns the feature at a given index, or nil.
func (fl *FeatureList) FeatureAt(i int) *Feature {
	if fl == nil || i < 0 || i >= len(fl.featuresByIndex) {
		return nil
	}
	return fl.featuresByIndex[i]
}

// Range iterates features in declaration order and preserves duplicate tags.
func (fl *FeatureList) Range() iter.Seq2[Tag, *Feature] {
	return func(yield func(Tag, *Feature) bool) {
		if fl == nil {
			return
		}
		for i, tag := range fl.featureOrder {
			if !yield(tag, fl.featuresByIndex[i]) {
				return
			}
		}
	}
}

// LookupCount returns the number of lookups linked to this feature.
func (f *Feature) LookupCount() int {
	if f == nil {
		return 0
	}
	return len(f.lookupListIndices)
}
