package otquery

import (
	"sort"

	"github.com/npillmayer/otinspect/ot"
)

// Collecting typographic capabilities from the layout tables. GSUB and
// GPOS advertise features per script and per language system; inspection
// flattens this graph to the set of feature tags a table provides at all.

// LayoutFeatureTags collects every feature tag reachable from a layout
// table's script list: for each script, the features of the default
// language system and of every named language system. The result is
// deduplicated and sorted lexicographically. A nil table yields nil.
//
// Feature indices pointing beyond the table's feature list occur in broken
// fonts and are silently skipped.
func LayoutFeatureTags(lt *ot.LayoutTable) []string {
	if lt == nil {
		return nil
	}
	set := make(map[ot.Tag]struct{})
	collect := func(ls *ot.LangSys) {
		for _, inx := range ls.FeatureIndices() {
			if tag, ok := lt.Features.TagAt(inx); ok {
				set[tag] = struct{}{}
			}
		}
	}
	for _, script := range lt.Scripts.Range() {
		collect(script.DefaultLangSys())
		for _, langsys := range script.Range() {
			collect(langsys)
		}
	}
	return sortedTagStrings(set)
}

// GSubFeatureTags collects the feature tags of a font's GSUB table,
// deduplicated and sorted. A font without GSUB yields nil.
func GSubFeatureTags(otf *ot.Font) []string {
	gsub := otf.GSub()
	if gsub == nil {
		return nil
	}
	return LayoutFeatureTags(&gsub.LayoutTable)
}

// GPosFeatureTags collects the feature tags of a font's GPOS table,
// deduplicated and sorted. A font without GPOS yields nil.
func GPosFeatureTags(otf *ot.Font) []string {
	gpos := otf.GPos()
	if gpos == nil {
		return nil
	}
	return LayoutFeatureTags(&gpos.LayoutTable)
}

// ScriptTags collects the script tags a font supports, as the union over
// the script lists of GSUB and GPOS, deduplicated and sorted
// lexicographically.
func ScriptTags(otf *ot.Font) []string {
	set := make(map[ot.Tag]struct{})
	if gsub := otf.GSub(); gsub != nil {
		for _, tag := range gsub.Scripts.Tags() {
			set[tag] = struct{}{}
		}
	}
	if gpos := otf.GPos(); gpos != nil {
		for _, tag := range gpos.Scripts.Tags() {
			set[tag] = struct{}{}
		}
	}
	return sortedTagStrings(set)
}

// sortedTagStrings flattens a tag set to a lexicographically sorted
// slice of tag strings. An empty set yields nil.
func sortedTagStrings(set map[ot.Tag]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	tags := make([]string, 0, len(set))
	for tag := range set {
		tags = append(tags, tag.String())
	}
	sort.Strings(tags)
	return tags
}
