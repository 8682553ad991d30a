package domain

import (
	"sort"
	"strings"
)

// DefaultSections are the fixed subject groupings always offered in
// selection controls, in display order.
var DefaultSections = []string{"日语", "综合科目", "理科", SectionUnclassified}

// SectionChoices returns the defaults followed by any distinct
// non-blank sections found in storage that the defaults do not already
// cover, sorted. Sections are never enforced as a foreign key; this
// only populates selection controls.
func SectionChoices(stored []string) []string {
	known := make(map[string]struct{}, len(DefaultSections))
	choices := make([]string, 0, len(DefaultSections)+len(stored))
	for _, s := range DefaultSections {
		known[s] = struct{}{}
		choices = append(choices, s)
	}

	var extra []string
	for _, s := range stored {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := known[s]; ok {
			continue
		}
		known[s] = struct{}{}
		extra = append(extra, s)
	}
	sort.Strings(extra)

	return append(choices, extra...)
}
