// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package recommend

import "strings"

// searchText is the lowercased title and description of a recipe.
type searchText struct {
	title       string
	description string
}

func newSearchText(r *Recipe) searchText {
	return searchText{
		title:       strings.ToLower(r.Title),
		description: strings.ToLower(r.Description),
	}
}

// matchesAny reports whether any keyword is a substring of the title or
// the description.
func (t searchText) matchesAny(keywords []string) bool {
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(t.title, kw) || strings.Contains(t.description, kw) {
			return true
		}
	}
	return false
}

// hits counts the keywords found in the title and in the description.
// Each keyword counts at most once per field.
func (t searchText) hits(keywords []string) (title, description int) {
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(t.title, kw) {
			title++
		}
		if strings.Contains(t.description, kw) {
			description++
		}
	}
	return title, description
}

// words splits lowercased text on whitespace.
func words(s string) []string {
	return strings.Fields(strings.ToLower(s))
}

// sharedWords counts the words of base that also occur in other.
// Repeated words in base count every time.
func sharedWords(base, other []string) int {
	if len(base) == 0 || len(other) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(other))
	for _, w := range other {
		set[w] = struct{}{}
	}
	n := 0
	for _, w := range base {
		if _, ok := set[w]; ok {
			n++
		}
	}
	return n
}
