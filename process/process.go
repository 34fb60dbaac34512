// Package process holds pure helpers over string slices. No I/O, no state.
package process

import (
	"sort"
	"strings"
)

// WordCount pairs a word with its occurrence count.
type WordCount struct {
	Word  string
	Count int
}

// FilterByKeyword keeps items containing keyword, case-insensitive.
func FilterByKeyword(items []string, keyword string) []string {
	lower := strings.ToLower(keyword)
	filtered := []string{}
	for _, item := range items {
		if strings.Contains(strings.ToLower(item), lower) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func SortAlphabetically(items []string) []string {
	sorted := make([]string, len(items))
	copy(sorted, items)
	sort.Strings(sorted)
	return sorted
}

// Deduplicate drops repeated items, keeping the first occurrence of each.
func Deduplicate(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	unique := []string{}
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		unique = append(unique, item)
	}
	return unique
}

func Count(items []string) int {
	return len(items)
}

// Domains strips the scheme from each URL and keeps the host segment.
// Malformed input yields a best-effort substring, no validation.
func Domains(urls []string) []string {
	domains := []string{}
	for _, u := range urls {
		if _, after, found := strings.Cut(u, "//"); found {
			u = after
		}
		host, _, _ := strings.Cut(u, "/")
		domains = append(domains, host)
	}
	return domains
}

// UniqueWords whitespace-tokenizes all items and deduplicates the words in
// first-occurrence order.
func UniqueWords(items []string) []string {
	return Deduplicate(words(items))
}

// Words returns the total whitespace-token count across items.
func Words(items []string) int {
	return len(words(items))
}

// MostCommonWords returns the topN most frequent words across items, most
// frequent first. Ties are broken by first occurrence.
func MostCommonWords(items []string, topN int) []WordCount {
	all := words(items)
	counts := make(map[string]int, len(all))
	first := make(map[string]int, len(all))
	order := []string{}
	for i, w := range all {
		if _, ok := counts[w]; !ok {
			first[w] = i
			order = append(order, w)
		}
		counts[w]++
	}

	ranked := make([]WordCount, 0, len(order))
	for _, w := range order {
		ranked = append(ranked, WordCount{Word: w, Count: counts[w]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return first[ranked[i].Word] < first[ranked[j].Word]
	})

	if topN < 0 {
		topN = 0
	}
	if topN > len(ranked) {
		topN = len(ranked)
	}
	return ranked[:topN]
}

// CleanText collapses internal whitespace runs, newlines included, to single
// spaces and trims the ends.
func CleanText(items []string) []string {
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		cleaned = append(cleaned, strings.Join(strings.Fields(item), " "))
	}
	return cleaned
}

func words(items []string) []string {
	all := []string{}
	for _, item := range items {
		all = append(all, strings.Fields(item)...)
	}
	return all
}
