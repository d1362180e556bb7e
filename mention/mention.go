// Package mention holds the Mention value: a referenced user in text,
// e.g. the target of an @-mention.
package mention

import (
	"fmt"
	"net/url"
)

// ErrEmptyUsername is returned when constructing a Mention without username.
const ErrEmptyUsername = Error("username must be non-empty")

// Mention is a referenced user with optional display metadata.
//
// The username is fixed at construction. Displayname and avatar can be
// changed at any time and may independently be absent.
//
// A Mention is not safe for concurrent mutation.
type Mention struct {
	username    string
	displayname string
	avatar      Avatar
}

// New constructs a Mention with the given username,
// without displayname or avatar.
func New(username string) (*Mention, error) {
	if username == "" {
		return nil, ErrEmptyUsername
	}

	return &Mention{username: username}, nil
}

// Username is the identifying name of the mentioned user.
func (m *Mention) Username() string {
	return m.username
}

// Displayname returns the human readable label and whether it is set.
func (m *Mention) Displayname() (string, bool) {
	return m.displayname, m.displayname != ""
}

// SetDisplayname sets the human readable label.
//
// An empty displayname clears it.
func (m *Mention) SetDisplayname(displayname string) {
	m.displayname = displayname
}

// Label is the displayname if set, otherwise the username.
func (m *Mention) Label() string {
	if m.displayname != "" {
		return m.displayname
	}
	return m.username
}

// Avatar returns the current avatar, nil if there is none.
func (m *Mention) Avatar() Avatar {
	return m.avatar
}

// SetAvatarDrawable stores the avatar as a drawable resource id,
// replacing any previous avatar.
func (m *Mention) SetAvatarDrawable(resource int) {
	m.avatar = ResourceAvatar(resource)
}

// SetAvatarURL stores the avatar as a URL, replacing any previous avatar.
//
// An empty URL clears the avatar.
func (m *Mention) SetAvatarURL(avatarURL string) {
	if avatarURL == "" {
		m.avatar = nil
		return
	}
	m.avatar = URLAvatar(avatarURL)
}

// SetAvatarURI stores the avatar as a structured URI, replacing any previous avatar.
//
// A nil URI clears the avatar.
func (m *Mention) SetAvatarURI(uri *url.URL) {
	if uri == nil {
		m.avatar = nil
		return
	}
	m.avatar = URIAvatar{URI: uri}
}

// SetAvatarFile stores the avatar as a local file path, replacing any previous avatar.
//
// An empty path clears the avatar.
func (m *Mention) SetAvatarFile(path string) {
	if path == "" {
		m.avatar = nil
		return
	}
	m.avatar = FileAvatar(path)
}

// String returns "@username", followed by the displayname in parentheses if set.
func (m *Mention) String() string {
	if m.displayname == "" {
		return "@" + m.username
	}
	return fmt.Sprintf("@%s (%s)", m.username, m.displayname)
}
