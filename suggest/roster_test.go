package suggest

import (
	"testing"

	"github.com/luevano/libsocial/mention"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const roster = `# team roster
alice, Alice Liddell, https://example.com/alice.png
bob,Bob,42

carol,,content://contacts/photo/3
dave,Dave,/home/dave/me.jpg
erin
frank,Frank,C:\avatars\frank.png
`

func writeRoster(t *testing.T, content string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/roster.csv", []byte(content), 0o644))
	return fs
}

func TestDirectory_ImportRoster(t *testing.T) {
	d := newTestDirectory(t)

	n, err := d.ImportRoster(writeRoster(t, roster), "/roster.csv")
	require.NoError(t, err)
	require.Equal(t, 6, n)

	usernames, err := d.Usernames()
	require.NoError(t, err)
	require.Equal(t, []string{"alice", "bob", "carol", "dave", "erin", "frank"}, usernames)

	cases := map[string]struct {
		label  string
		avatar mention.Avatar
	}{
		"alice": {"Alice Liddell", mention.URLAvatar("https://example.com/alice.png")},
		"bob":   {"Bob", mention.ResourceAvatar(42)},
		"dave":  {"Dave", mention.FileAvatar("/home/dave/me.jpg")},
		"erin":  {"erin", nil},
		"frank": {"Frank", mention.FileAvatar(`C:\avatars\frank.png`)},
	}
	for username, want := range cases {
		m, found, err := d.Get(username)
		require.NoError(t, err)
		require.True(t, found, username)
		require.Equal(t, want.label, m.Label(), username)
		require.Equal(t, want.avatar, m.Avatar(), username)
	}

	carol, found, err := d.Get("carol")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "carol", carol.Label())
	require.Equal(t, mention.AvatarKindURI, mention.KindOf(carol.Avatar()))
	require.Equal(t, "content://contacts/photo/3", carol.Avatar().String())
}

func TestDirectory_ImportRosterInvalid(t *testing.T) {
	cases := map[string]string{
		"too many fields": "alice,Alice,1\nbob,Bob,2,extra\n",
		"empty username":  "alice\n ,Nobody\n",
	}

	for name, content := range cases {
		d := newTestDirectory(t)

		n, err := d.ImportRoster(writeRoster(t, content), "/roster.csv")
		require.Error(t, err, name)
		require.ErrorContains(t, err, "line 2", name)
		require.Zero(t, n, name)

		// nothing is added
		usernames, err := d.Usernames()
		require.NoError(t, err)
		require.Empty(t, usernames, name)
	}
}

func TestDirectory_ImportRosterMissingFile(t *testing.T) {
	d := newTestDirectory(t)

	_, err := d.ImportRoster(afero.NewMemMapFs(), "/nope.csv")
	require.Error(t, err)
}
