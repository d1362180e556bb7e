package libsocial

import (
	"strings"

	"github.com/skratchdot/open-golang/open"
)

// openURL opens the URL with the system default application.
var openURL = open.Run

// OpenHyperlink is a hyperlink Listener that opens the clicked
// hyperlink in the default browser.
//
// Hyperlinks without scheme (e.g. "www.example.com") are opened over http.
func OpenHyperlink(view *View, value string) {
	link := HyperlinkURL(value)

	view.logger.Log("opening %s", link)
	if err := openURL(link); err != nil {
		view.logger.Log("could not open %s: %s", link, err)
	}
}

// HyperlinkURL returns the hyperlink with a scheme, adding "http://" if missing.
func HyperlinkURL(hyperlink string) string {
	lower := strings.ToLower(hyperlink)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return hyperlink
	}
	return "http://" + hyperlink
}
