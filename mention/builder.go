package mention

import "net/url"

// Builder configures a Mention fluently.
//
// Build always returns the same underlying Mention, no copy is made.
// Changes made through the Builder after Build are visible through
// every Mention it returned.
type Builder struct {
	mention *Mention
}

// NewBuilder starts building a Mention with the given username.
//
// An empty username is reported by Build.
func NewBuilder(username string) *Builder {
	return &Builder{
		mention: &Mention{username: username},
	}
}

func (b *Builder) SetDisplayname(displayname string) *Builder {
	b.mention.SetDisplayname(displayname)
	return b
}

func (b *Builder) SetAvatarDrawable(resource int) *Builder {
	b.mention.SetAvatarDrawable(resource)
	return b
}

func (b *Builder) SetAvatarURL(avatarURL string) *Builder {
	b.mention.SetAvatarURL(avatarURL)
	return b
}

func (b *Builder) SetAvatarURI(uri *url.URL) *Builder {
	b.mention.SetAvatarURI(uri)
	return b
}

func (b *Builder) SetAvatarFile(path string) *Builder {
	b.mention.SetAvatarFile(path)
	return b
}

// Build returns the configured Mention.
func (b *Builder) Build() (*Mention, error) {
	if b.mention.username == "" {
		return nil, ErrEmptyUsername
	}
	return b.mention, nil
}
