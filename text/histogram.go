package text

import (
	"fmt"
	"sort"
	"strings"
)

// Histogram maps each occurrence count to the characters of s occurring that
// many times, sorted by code point.
func Histogram(s string) map[int][]rune {
	counts := make(map[rune]int)
	for _, r := range s {
		counts[r]++
	}
	chars := make([]rune, 0, len(counts))
	for r := range counts {
		chars = append(chars, r)
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })

	hist := make(map[int][]rune)
	for _, r := range chars {
		hist[counts[r]] = append(hist[counts[r]], r)
	}

	return hist
}

// HistogramString renders Histogram(s) one count per line, highest first:
//
//	HistogramString("mississippi") → " 4: is\n 2: p\n 1: m"
func HistogramString(s string) string {
	hist := Histogram(s)
	counts := make([]int, 0, len(hist))
	for n := range hist {
		counts = append(counts, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(counts)))

	lines := make([]string, len(counts))
	for i, n := range counts {
		lines[i] = fmt.Sprintf("%2d: %s", n, string(hist[n]))
	}

	return strings.Join(lines, "\n")
}
