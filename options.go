package libsocial

import "github.com/luevano/libsocial/logger"

// Flags toggles which kinds of tokens a View decorates.
type Flags int

const (
	FlagHashtag Flags = 1 << iota
	FlagMention
	FlagHyperlink

	FlagAll = FlagHashtag | FlagMention | FlagHyperlink
)

// Has reports whether every bit of other is set.
func (f Flags) Has(other Flags) bool {
	return f|other == f
}

// Color is an opaque color value handed to the renderer, e.g. "#1DA1F2".
type Color string

const (
	defaultHashtagColor   Color = "#1DA1F2"
	defaultMentionColor   Color = "#1DA1F2"
	defaultHyperlinkColor Color = "#1565C0"
)

// ViewOptions configures a View.
type ViewOptions struct {
	// Text is the initial text of the view.
	Text string

	// Flags determines which tokens are decorated.
	//
	// Detection (Hashtags, Mentions, Hyperlinks) ignores flags.
	Flags Flags

	// HashtagColor is the color of hashtag spans.
	HashtagColor Color

	// MentionColor is the color of mention spans.
	//
	// It is also used for hyperlink spans when there is
	// no hyperlink listener set.
	MentionColor Color

	// HyperlinkColor is the color of clickable hyperlink spans.
	HyperlinkColor Color

	// Logger used for logs. A nil Logger discards everything.
	Logger *logger.Logger
}

// DefaultViewOptions constructs default ViewOptions.
//
// All tokens are decorated.
func DefaultViewOptions() ViewOptions {
	return ViewOptions{
		Flags:          FlagAll,
		HashtagColor:   defaultHashtagColor,
		MentionColor:   defaultMentionColor,
		HyperlinkColor: defaultHyperlinkColor,
		Logger:         logger.NewLogger(),
	}
}
