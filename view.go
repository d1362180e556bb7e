package libsocial

import (
	"github.com/luevano/libsocial/logger"
)

// Listener is called with the clicked token value.
type Listener func(view *View, value string)

// Watcher is called with the hashtag or mention being typed,
// without its prefix.
type Watcher func(view *View, value string)

// View holds a text and decorates its hashtags, mentions and hyperlinks.
//
// It is the core of the libsocial. A View is not safe for concurrent use.
type View struct {
	text []rune

	flags          Flags
	hashtagColor   Color
	mentionColor   Color
	hyperlinkColor Color

	hashtagListener   Listener
	mentionListener   Listener
	hyperlinkListener Listener

	hashtagWatcher Watcher
	mentionWatcher Watcher

	hashtagEditing bool
	mentionEditing bool

	spans  []Span
	logger *logger.Logger
}

// NewView creates a new view with the given options and colorizes its text.
//
// Use DefaultViewOptions for defaults.
func NewView(options ViewOptions) *View {
	l := options.Logger
	if l == nil {
		l = logger.NewLogger()
	}

	v := &View{
		text:           []rune(options.Text),
		flags:          options.Flags,
		hashtagColor:   options.HashtagColor,
		mentionColor:   options.MentionColor,
		hyperlinkColor: options.HyperlinkColor,
		logger:         l,
	}
	v.Colorize()

	return v
}

func (v *View) Logger() *logger.Logger {
	return v.logger
}

// Text returns the current text.
func (v *View) Text() string {
	return string(v.text)
}

// SetText replaces the whole text.
//
// Watchers are notified the same way as with Replace.
func (v *View) SetText(text string) {
	// whole range is always valid
	_ = v.Replace(0, len(v.text), text)
}

// Len is the length of the text in runes.
func (v *View) Len() int {
	return len(v.text)
}

func (v *View) HashtagEnabled() bool {
	return v.flags.Has(FlagHashtag)
}

func (v *View) SetHashtagEnabled(enabled bool) {
	v.setFlag(FlagHashtag, enabled)
}

func (v *View) MentionEnabled() bool {
	return v.flags.Has(FlagMention)
}

func (v *View) SetMentionEnabled(enabled bool) {
	v.setFlag(FlagMention, enabled)
}

func (v *View) HyperlinkEnabled() bool {
	return v.flags.Has(FlagHyperlink)
}

func (v *View) SetHyperlinkEnabled(enabled bool) {
	v.setFlag(FlagHyperlink, enabled)
}

func (v *View) setFlag(flag Flags, enabled bool) {
	if enabled {
		v.flags |= flag
	} else {
		v.flags &^= flag
	}
	v.Colorize()
}

func (v *View) HashtagColor() Color {
	return v.hashtagColor
}

func (v *View) SetHashtagColor(color Color) {
	v.hashtagColor = color
	v.Colorize()
}

func (v *View) MentionColor() Color {
	return v.mentionColor
}

func (v *View) SetMentionColor(color Color) {
	v.mentionColor = color
	v.Colorize()
}

func (v *View) HyperlinkColor() Color {
	return v.hyperlinkColor
}

func (v *View) SetHyperlinkColor(color Color) {
	v.hyperlinkColor = color
	v.Colorize()
}

// SetOnHashtagClickListener sets the listener called when a hashtag is clicked.
//
// A nil listener makes hashtags non clickable.
func (v *View) SetOnHashtagClickListener(listener Listener) {
	v.hashtagListener = listener
	v.Colorize()
}

// SetOnMentionClickListener sets the listener called when a mention is clicked.
//
// A nil listener makes mentions non clickable.
func (v *View) SetOnMentionClickListener(listener Listener) {
	v.mentionListener = listener
	v.Colorize()
}

// SetOnHyperlinkClickListener sets the listener called when a hyperlink is clicked.
//
// A nil listener makes hyperlinks non clickable.
func (v *View) SetOnHyperlinkClickListener(listener Listener) {
	v.hyperlinkListener = listener
	v.Colorize()
}

// SetHashtagTextChangedListener sets the watcher called while a hashtag is typed.
func (v *View) SetHashtagTextChangedListener(watcher Watcher) {
	v.hashtagWatcher = watcher
}

// SetMentionTextChangedListener sets the watcher called while a mention is typed.
func (v *View) SetMentionTextChangedListener(watcher Watcher) {
	v.mentionWatcher = watcher
}

// Colorize recomputes the spans of the current text for every enabled kind.
//
// Spans are ordered by kind (hashtags, mentions, hyperlinks), then by offset.
func (v *View) Colorize() []Span {
	text := string(v.text)
	spans := make([]Span, 0, len(v.spans))

	if v.HashtagEnabled() {
		for _, m := range findMatches(HashtagPattern, text) {
			spans = append(spans, Span{
				Kind:      KindHashtag,
				Start:     m.start,
				End:       m.end,
				Text:      m.text,
				Value:     m.value,
				Color:     v.hashtagColor,
				Clickable: v.hashtagListener != nil,
			})
		}
	}

	if v.MentionEnabled() {
		for _, m := range findMatches(MentionPattern, text) {
			spans = append(spans, Span{
				Kind:      KindMention,
				Start:     m.start,
				End:       m.end,
				Text:      m.text,
				Value:     m.value,
				Color:     v.mentionColor,
				Clickable: v.mentionListener != nil,
			})
		}
	}

	if v.HyperlinkEnabled() {
		// non clickable hyperlinks take the mention color
		color := v.mentionColor
		if v.hyperlinkListener != nil {
			color = v.hyperlinkColor
		}
		for _, m := range findMatches(HyperlinkPattern, text) {
			spans = append(spans, Span{
				Kind:      KindHyperlink,
				Start:     m.start,
				End:       m.end,
				Text:      m.text,
				Value:     m.value,
				Color:     color,
				Clickable: v.hyperlinkListener != nil,
				Underline: true,
			})
		}
	}

	v.spans = spans
	v.logger.Log("colorized %d span(s)", len(spans))
	return v.Spans()
}

// Spans returns the spans computed by the last Colorize.
func (v *View) Spans() []Span {
	spans := make([]Span, len(v.spans))
	copy(spans, v.spans)
	return spans
}

// Hashtags returns every hashtag in the text, without the "#" prefix.
//
// Found regardless of whether hashtags are enabled.
func (v *View) Hashtags() []string {
	return values(findMatches(HashtagPattern, string(v.text)))
}

// Mentions returns every mentioned username in the text, without the "@" prefix.
//
// Found regardless of whether mentions are enabled.
func (v *View) Mentions() []string {
	return values(findMatches(MentionPattern, string(v.text)))
}

// Hyperlinks returns every hyperlink in the text.
//
// Found regardless of whether hyperlinks are enabled.
func (v *View) Hyperlinks() []string {
	return values(findMatches(HyperlinkPattern, string(v.text)))
}

// Click dispatches a click at the given rune offset.
//
// The listener of the first clickable span containing the offset is called.
// Returns false if no clickable span contains it.
func (v *View) Click(offset int) bool {
	for _, span := range v.spans {
		if !span.Clickable || !span.Contains(offset) {
			continue
		}

		var listener Listener
		switch span.Kind {
		case KindHashtag:
			listener = v.hashtagListener
		case KindMention:
			listener = v.mentionListener
		case KindHyperlink:
			listener = v.hyperlinkListener
		}
		if listener == nil {
			continue
		}

		v.logger.Log("click on %s", span)
		listener(v, span.Value)
		return true
	}

	return false
}
