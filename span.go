package libsocial

import "fmt"

// Kind of a detected token.
type Kind string

const (
	KindHashtag   Kind = "hashtag"
	KindMention   Kind = "mention"
	KindHyperlink Kind = "hyperlink"
)

// Span is a decoration applied to a range of the text.
type Span struct {
	Kind Kind `json:"kind"`

	// Start is the rune offset of the first character, prefix included.
	Start int `json:"start"`

	// End is the rune offset just after the last character.
	End int `json:"end"`

	// Text is the matched text, e.g. "@alice".
	Text string `json:"text"`

	// Value is the token without its prefix, e.g. "alice".
	//
	// For hyperlinks it is the same as Text.
	Value string `json:"value"`

	Color Color `json:"color"`

	// Clickable is true when a listener for the Kind is set.
	Clickable bool `json:"clickable"`

	Underline bool `json:"underline"`
}

func (s Span) String() string {
	return fmt.Sprintf("%s[%d:%d] %q", s.Kind, s.Start, s.End, s.Text)
}

// Contains reports whether the rune offset falls in the span.
func (s Span) Contains(offset int) bool {
	return s.Start <= offset && offset < s.End
}
