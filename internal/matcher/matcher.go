// Package matcher checks input lines for containing the query substring, returns matching lines
package matcher

import (
	"iter"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Search returns every line of body containing query, in original order.
// Returned strings are substrings of body, nothing is copied.
func Search(query, body string) []string {
	result := []string{}
	for line := range Lines(body) {
		if strings.Contains(line, query) {
			result = append(result, line)
		}
	}
	return result
}

// SearchCaseInsensitive works like Search but lower-cases query and every line before comparing.
// The lines returned are the original ones, not the lower-cased copies.
func SearchCaseInsensitive(query, body string) []string {
	// Caser хранит состояние - на каждый вызов свой
	caser := cases.Lower(language.Und)
	query = caser.String(query)

	result := []string{}
	for line := range Lines(body) {
		if strings.Contains(caser.String(line), query) {
			result = append(result, line)
		}
	}
	return result
}

// Lines yields lines of body split on "\n" or "\r\n".
// A final line without a newline is yielded, a trailing newline adds no empty line.
func Lines(body string) iter.Seq[string] {
	return func(yield func(string) bool) {
		rest := body
		for len(rest) > 0 {
			var line string
			i := strings.IndexByte(rest, '\n')
			if i < 0 {
				line, rest = rest, ""
			} else {
				// \r убираем только как часть \r\n
				line, rest = strings.TrimSuffix(rest[:i], "\r"), rest[i+1:]
			}
			if !yield(line) {
				return
			}
		}
	}
}
