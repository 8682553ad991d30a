package domain

import (
	"sort"
	"strings"
)

// TagTree is the hierarchical taxonomy derived from slash-delimited
// tag paths. Each key is one path segment; its value holds the
// children one level down.
type TagTree map[string]TagTree

// TagOption is one selectable entry of the flattened taxonomy,
// rendered as an indented choice in filter controls.
type TagOption struct {
	Value string // full slash-joined path
	Label string // last path segment
	Level int    // depth, 0 for top-level
}

// TagCount pairs a tag with its occurrence count across questions.
type TagCount struct {
	Tag   string
	Count int
}

// CollectTags flattens the raw tags fields of many questions into one
// ordered tag list. Duplicates within a single question collapse, but
// the same tag on different questions appears once per question so
// frequency counting stays meaningful.
func CollectTags(rawFields []string) []string {
	var all []string
	for _, raw := range rawFields {
		all = append(all, NormalizeTagList(raw)...)
	}
	return all
}

// BuildTagTree folds tag paths into a tree, one level per slash
// segment. Blank segments are dropped silently, so "数学//代数" and
// "数学/代数" land in the same node.
func BuildTagTree(tags []string) TagTree {
	tree := TagTree{}
	for _, tag := range tags {
		node := tree
		for _, seg := range splitTagPath(tag) {
			child, ok := node[seg]
			if !ok {
				child = TagTree{}
				node[seg] = child
			}
			node = child
		}
	}
	return tree
}

// Flatten walks the tree depth-first with siblings in lexicographic
// order and returns the indented option list for rendering.
func (t TagTree) Flatten() []TagOption {
	var opts []TagOption
	flattenInto(t, "", 0, &opts)
	return opts
}

func flattenInto(node TagTree, prefix string, level int, opts *[]TagOption) {
	keys := make([]string, 0, len(node))
	for k := range node {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		value := k
		if prefix != "" {
			value = prefix + "/" + k
		}
		*opts = append(*opts, TagOption{Value: value, Label: k, Level: level})
		flattenInto(node[k], value, level+1, opts)
	}
}

// TagOptions is the one-shot path from raw tags fields to the
// flattened filter-control entries.
func TagOptions(rawFields []string) []TagOption {
	uniq := dedupeTags(CollectTags(rawFields))
	return BuildTagTree(uniq).Flatten()
}

// CountTags tallies tag occurrences in first-encountered order.
func CountTags(rawFields []string) []TagCount {
	index := make(map[string]int)
	var counts []TagCount
	for _, tag := range CollectTags(rawFields) {
		if i, ok := index[tag]; ok {
			counts[i].Count++
			continue
		}
		index[tag] = len(counts)
		counts = append(counts, TagCount{Tag: tag, Count: 1})
	}
	return counts
}

// TopTags returns the n most common tags. The sort is stable over the
// first-encountered order, so equal counts keep their insertion order.
func TopTags(rawFields []string, n int) []TagCount {
	counts := CountTags(rawFields)
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	if n < len(counts) {
		counts = counts[:n]
	}
	return counts
}

func splitTagPath(tag string) []string {
	var segs []string
	for _, s := range strings.Split(tag, "/") {
		if s = strings.TrimSpace(s); s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

func dedupeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	uniq := make([]string, 0, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		uniq = append(uniq, t)
	}
	return uniq
}
