package libsocial

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHyperlinkURL(t *testing.T) {
	require.Equal(t, "https://go.dev", HyperlinkURL("https://go.dev"))
	require.Equal(t, "HTTP://GO.DEV", HyperlinkURL("HTTP://GO.DEV"))
	require.Equal(t, "http://www.go.dev", HyperlinkURL("www.go.dev"))
}

func TestOpenHyperlink(t *testing.T) {
	var opened []string
	original := openURL
	openURL = func(input string) error {
		opened = append(opened, input)
		return errors.New("no browser")
	}
	t.Cleanup(func() { openURL = original })

	var logged []string
	v := newTestView("see www.example.com")
	v.Logger().SetOnLog(func(format string, a ...any) {
		logged = append(logged, format)
	})
	v.SetOnHyperlinkClickListener(OpenHyperlink)

	require.True(t, v.Click(5))
	require.Equal(t, []string{"http://www.example.com"}, opened)
	require.Contains(t, logged, "could not open %s: %s")
}
