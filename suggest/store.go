package suggest

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/luevano/libsocial/mention"
	"github.com/philippgille/gokv"
)

const (
	// BucketNameUsernameToMention maps lowercase username to a stored mention.
	//
	// ["alice" => "{username: Alice, displayname: ..., ...}"]
	BucketNameUsernameToMention = "username-to-mention"

	// BucketNameIndex holds the sorted list of stored lowercase usernames
	// under the indexKey key, as gokv stores can't be iterated.
	//
	// ["usernames" => ["alice", "bob"]]
	BucketNameIndex = "index"

	indexKey = "usernames"
)

// record is how a mention is kept in the store.
type record struct {
	Username    string             `json:"username"`
	Displayname string             `json:"displayname,omitempty"`
	AvatarKind  mention.AvatarKind `json:"avatar_kind,omitempty"`
	Avatar      string             `json:"avatar,omitempty"`
}

func newRecord(m *mention.Mention) record {
	r := record{
		Username:   m.Username(),
		AvatarKind: mention.KindOf(m.Avatar()),
	}
	r.Displayname, _ = m.Displayname()
	if m.Avatar() != nil {
		r.Avatar = m.Avatar().String()
	}
	return r
}

func (r record) mention() (*mention.Mention, error) {
	m, err := mention.New(r.Username)
	if err != nil {
		return nil, err
	}
	m.SetDisplayname(r.Displayname)

	switch r.AvatarKind {
	case mention.AvatarKindNone, "":
	case mention.AvatarKindResource:
		resource, err := strconv.Atoi(r.Avatar)
		if err != nil {
			return nil, fmt.Errorf("stored avatar of %q: %w", r.Username, err)
		}
		m.SetAvatarDrawable(resource)
	case mention.AvatarKindURL:
		m.SetAvatarURL(r.Avatar)
	case mention.AvatarKindURI:
		uri, err := url.Parse(r.Avatar)
		if err != nil {
			return nil, fmt.Errorf("stored avatar of %q: %w", r.Username, err)
		}
		m.SetAvatarURI(uri)
	case mention.AvatarKindFile:
		m.SetAvatarFile(r.Avatar)
	default:
		return nil, Error(fmt.Sprintf("unknown avatar kind %q for %q", r.AvatarKind, r.Username))
	}

	return m, nil
}

type store struct {
	mentions gokv.Store
	index    gokv.Store
}

func openStore(cacheStore func(bucketName string) (gokv.Store, error)) (store, error) {
	mentions, err := cacheStore(BucketNameUsernameToMention)
	if err != nil {
		return store{}, err
	}

	index, err := cacheStore(BucketNameIndex)
	if err != nil {
		mentions.Close()
		return store{}, err
	}

	return store{
		mentions: mentions,
		index:    index,
	}, nil
}

func (s store) Close() error {
	err := s.mentions.Close()
	if indexErr := s.index.Close(); err == nil {
		err = indexErr
	}
	return err
}

func (s store) getRecord(key string) (r record, found bool, err error) {
	found, err = s.mentions.Get(key, &r)
	return
}

func (s store) setRecord(key string, r record) error {
	return s.mentions.Set(key, r)
}

func (s store) deleteRecord(key string) error {
	return s.mentions.Delete(key)
}

func (s store) getIndex() (keys []string, err error) {
	_, err = s.index.Get(indexKey, &keys)
	return
}

func (s store) setIndex(keys []string) error {
	return s.index.Set(indexKey, keys)
}
