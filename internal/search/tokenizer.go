package search

import (
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`[a-z0-9]+`)

// Tokenize splits text into normalized tokens: lowercase maximal runs of
// ASCII letters and digits, in input order.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// Normalize lowercases text and collapses all internal whitespace to
// single spaces. Used for the raw search blob and phrase matching.
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
