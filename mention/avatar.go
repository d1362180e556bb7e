package mention

import (
	"net/url"
	"strconv"
)

// AvatarKind tells which representation an Avatar holds.
type AvatarKind string

const (
	AvatarKindNone     AvatarKind = "none"
	AvatarKindResource AvatarKind = "resource"
	AvatarKindURL      AvatarKind = "url"
	AvatarKindURI      AvatarKind = "uri"
	AvatarKindFile     AvatarKind = "file"
)

// Avatar is the image reference attached to a Mention.
//
// It is one of ResourceAvatar, URLAvatar, URIAvatar or FileAvatar.
// A nil Avatar means there is no avatar.
type Avatar interface {
	// Kind of the representation, never AvatarKindNone.
	Kind() AvatarKind

	// String is the raw value of the representation.
	String() string

	avatar()
}

// ResourceAvatar is a platform specific drawable resource id.
type ResourceAvatar int

func (ResourceAvatar) Kind() AvatarKind { return AvatarKindResource }

func (a ResourceAvatar) String() string { return strconv.Itoa(int(a)) }

func (ResourceAvatar) avatar() {}

// URLAvatar is a remote image URL, as given.
type URLAvatar string

func (URLAvatar) Kind() AvatarKind { return AvatarKindURL }

func (a URLAvatar) String() string { return string(a) }

func (URLAvatar) avatar() {}

// URIAvatar is a structured locator, e.g. a content:// URI.
type URIAvatar struct {
	URI *url.URL
}

func (URIAvatar) Kind() AvatarKind { return AvatarKindURI }

func (a URIAvatar) String() string {
	if a.URI == nil {
		return ""
	}
	return a.URI.String()
}

func (URIAvatar) avatar() {}

// FileAvatar is a path to a local image file.
type FileAvatar string

func (FileAvatar) Kind() AvatarKind { return AvatarKindFile }

func (a FileAvatar) String() string { return string(a) }

func (FileAvatar) avatar() {}

// KindOf returns the kind of the avatar, AvatarKindNone for nil.
func KindOf(avatar Avatar) AvatarKind {
	if avatar == nil {
		return AvatarKindNone
	}
	return avatar.Kind()
}
