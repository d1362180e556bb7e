package libsocial

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

var (
	// HashtagPattern matches "#tag", the tag is the first group.
	HashtagPattern = regexp.MustCompile(`#(\w+)`)

	// MentionPattern matches "@username", the username is the first group.
	MentionPattern = regexp.MustCompile(`@(\w+)`)

	// HyperlinkPattern matches web URLs starting with a scheme or "www.".
	//
	// Trailing punctuation is left out of the match.
	HyperlinkPattern = regexp.MustCompile(`(?i)\b(?:https?://|www\.)[a-z0-9-]+(?:\.[a-z0-9-]+)+(?::\d+)?(?:[/?#]\S*[^\s.,;:!?'")\]])?`)
)

// match is a pattern match over a text, offsets in runes.
type match struct {
	start int
	end   int
	text  string
	value string
}

// findMatches returns every match of pattern in text.
//
// The value is the first group if the pattern has one, otherwise the whole match.
func findMatches(pattern *regexp.Regexp, text string) []match {
	indexes := pattern.FindAllStringSubmatchIndex(text, -1)
	matches := make([]match, 0, len(indexes))
	for _, loc := range indexes {
		m := match{
			start: utf8.RuneCountInString(text[:loc[0]]),
			text:  text[loc[0]:loc[1]],
		}
		m.end = m.start + utf8.RuneCountInString(m.text)
		m.value = m.text
		if len(loc) >= 4 && loc[2] >= 0 {
			m.value = text[loc[2]:loc[3]]
		}
		matches = append(matches, m)
	}
	return matches
}

func values(matches []match) []string {
	vals := make([]string, len(matches))
	for i, m := range matches {
		vals[i] = m.value
	}
	return vals
}

func isLetterOrDigit(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
