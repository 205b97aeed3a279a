// Package grapheme wraps uniseg for the grapheme-cluster arithmetic shared by
// the buffer and the field editor.
package grapheme

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, utf8.RuneCountInString(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Join concatenates grapheme clusters into a single string.
func Join(clusters []string) string {
	if len(clusters) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// RuneCount returns the total number of runes across clusters.
func RuneCount(clusters []string) int {
	n := 0
	for _, c := range clusters {
		n += utf8.RuneCountInString(c)
	}
	return n
}

// Fit returns the longest prefix of text that holds at most maxRunes runes
// without splitting a grapheme cluster.
func Fit(text string, maxRunes int) string {
	if maxRunes <= 0 || text == "" {
		return ""
	}
	if utf8.RuneCountInString(text) <= maxRunes {
		return text
	}

	g := uniseg.NewGraphemes(text)
	used := 0
	end := 0
	for g.Next() {
		n := utf8.RuneCountInString(g.Str())
		if used+n > maxRunes {
			break
		}
		used += n
		_, end = g.Positions()
	}
	return text[:end]
}

// Width returns the terminal cell width of a single cluster. Tabs are
// reported as one cell; callers that expand tabs handle them separately.
func Width(cluster string) int {
	if cluster == "\t" {
		return 1
	}
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		return 0
	}
	return w
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
