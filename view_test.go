package libsocial

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestView(text string) *View {
	options := DefaultViewOptions()
	options.Text = text
	return NewView(options)
}

func TestNewView_ColorizesText(t *testing.T) {
	v := newTestView("hi @alice, see #golang at https://go.dev/doc.")

	spans := v.Spans()
	require.Len(t, spans, 3)

	require.Equal(t, Span{
		Kind:  KindHashtag,
		Start: 15,
		End:   22,
		Text:  "#golang",
		Value: "golang",
		Color: defaultHashtagColor,
	}, spans[0])

	require.Equal(t, KindMention, spans[1].Kind)
	require.Equal(t, 3, spans[1].Start)
	require.Equal(t, 9, spans[1].End)
	require.Equal(t, "alice", spans[1].Value)

	require.Equal(t, KindHyperlink, spans[2].Kind)
	require.Equal(t, "https://go.dev/doc", spans[2].Text)
	require.True(t, spans[2].Underline)
	require.False(t, spans[2].Clickable)
	require.Equal(t, defaultMentionColor, spans[2].Color)
}

func TestView_RuneOffsets(t *testing.T) {
	v := newTestView("héllo @bób")

	spans := v.Spans()
	require.Len(t, spans, 1)
	// \w is ASCII only, the match stops before "ó"
	require.Equal(t, "@b", spans[0].Text)
	require.Equal(t, 6, spans[0].Start)
	require.Equal(t, 8, spans[0].End)
}

func TestView_Detection(t *testing.T) {
	v := newTestView("#one @two #three www.example.com/x?y=1 @four http://a.io")

	require.Equal(t, []string{"one", "three"}, v.Hashtags())
	require.Equal(t, []string{"two", "four"}, v.Mentions())
	require.Equal(t, []string{"www.example.com/x?y=1", "http://a.io"}, v.Hyperlinks())

	// detection ignores flags
	v.SetMentionEnabled(false)
	require.Equal(t, []string{"two", "four"}, v.Mentions())
}

func TestView_Flags(t *testing.T) {
	v := newTestView("#tag @user http://x.org")
	require.True(t, v.HashtagEnabled())
	require.True(t, v.MentionEnabled())
	require.True(t, v.HyperlinkEnabled())
	require.Len(t, v.Spans(), 3)

	v.SetHashtagEnabled(false)
	require.False(t, v.HashtagEnabled())
	require.Len(t, v.Spans(), 2)

	v.SetMentionEnabled(false)
	v.SetHyperlinkEnabled(false)
	require.Empty(t, v.Spans())

	v.SetMentionEnabled(true)
	spans := v.Spans()
	require.Len(t, spans, 1)
	require.Equal(t, KindMention, spans[0].Kind)
}

func TestView_Colors(t *testing.T) {
	v := newTestView("#tag @user http://x.org")

	v.SetHashtagColor("#111111")
	v.SetMentionColor("#222222")
	v.SetHyperlinkColor("#333333")
	require.Equal(t, Color("#111111"), v.HashtagColor())
	require.Equal(t, Color("#222222"), v.MentionColor())
	require.Equal(t, Color("#333333"), v.HyperlinkColor())

	spans := v.Spans()
	require.Equal(t, Color("#111111"), spans[0].Color)
	require.Equal(t, Color("#222222"), spans[1].Color)
	// no hyperlink listener yet
	require.Equal(t, Color("#222222"), spans[2].Color)

	v.SetOnHyperlinkClickListener(func(*View, string) {})
	require.Equal(t, Color("#333333"), v.Spans()[2].Color)
	require.True(t, v.Spans()[2].Clickable)
}

func TestView_Click(t *testing.T) {
	v := newTestView("#tag @user http://x.org")

	var clicked []string
	record := func(kind string) Listener {
		return func(view *View, value string) {
			require.Same(t, v, view)
			clicked = append(clicked, kind+":"+value)
		}
	}

	// nothing clickable yet
	require.False(t, v.Click(1))

	v.SetOnHashtagClickListener(record("hashtag"))
	v.SetOnMentionClickListener(record("mention"))
	v.SetOnHyperlinkClickListener(record("hyperlink"))

	require.True(t, v.Click(0))
	require.True(t, v.Click(7))
	require.True(t, v.Click(22))
	require.False(t, v.Click(4))
	require.False(t, v.Click(100))

	require.Equal(t, []string{"hashtag:tag", "mention:user", "hyperlink:http://x.org"}, clicked)

	v.SetOnMentionClickListener(nil)
	require.False(t, v.Click(7))
}

func TestView_SpansAreCopies(t *testing.T) {
	v := newTestView("@user")

	spans := v.Spans()
	spans[0].Text = "changed"

	require.Equal(t, "@user", v.Spans()[0].Text)
}

func TestNewView_NilLogger(t *testing.T) {
	v := NewView(ViewOptions{Text: "@a", Flags: FlagMention})

	require.NotNil(t, v.Logger())
	require.Len(t, v.Spans(), 1)
}

func TestFlags_Has(t *testing.T) {
	require.True(t, FlagAll.Has(FlagMention))
	require.True(t, FlagAll.Has(FlagHashtag|FlagHyperlink))
	require.False(t, FlagHashtag.Has(FlagMention))
}
