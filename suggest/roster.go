package suggest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/luevano/libsocial/mention"
	"github.com/spf13/afero"
)

// ImportRoster adds every mention listed in the roster file at path.
//
// The roster is CSV with one mention per line:
//
//	username[,displayname[,avatar]]
//
// Blank lines and lines starting with "#" are skipped. The avatar is read
// as a drawable resource id if it is an integer, as a URL if it is http(s),
// as a URI if it has any other scheme and as a file path otherwise.
//
// Returns the amount of imported mentions. Nothing is added if any line is invalid.
func (d *Directory) ImportRoster(fs afero.Fs, path string) (int, error) {
	file, err := fs.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	mentions, err := readRoster(file)
	if err != nil {
		return 0, fmt.Errorf("roster %s: %w", path, err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for _, m := range mentions {
		if err := d.add(m); err != nil {
			return 0, err
		}
	}

	d.logger.Log("imported %d mention(s) from %s", len(mentions), path)
	return len(mentions), nil
}

func readRoster(r io.Reader) ([]*mention.Mention, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var mentions []*mention.Mention
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		line, _ := reader.FieldPos(0)
		if len(fields) > 3 {
			return nil, Error(fmt.Sprintf("line %d: expected at most 3 fields, got %d", line, len(fields)))
		}

		m, err := mention.New(strings.TrimSpace(fields[0]))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(fields) > 1 {
			m.SetDisplayname(strings.TrimSpace(fields[1]))
		}
		if len(fields) > 2 {
			setAvatar(m, strings.TrimSpace(fields[2]))
		}

		mentions = append(mentions, m)
	}

	return mentions, nil
}

// setAvatar guesses the avatar representation from its text.
func setAvatar(m *mention.Mention, avatar string) {
	if avatar == "" {
		return
	}

	if resource, err := strconv.Atoi(avatar); err == nil {
		m.SetAvatarDrawable(resource)
		return
	}

	uri, err := url.Parse(avatar)
	// single letter schemes are windows drive letters
	if err != nil || len(uri.Scheme) < 2 {
		m.SetAvatarFile(avatar)
		return
	}

	switch strings.ToLower(uri.Scheme) {
	case "http", "https":
		m.SetAvatarURL(avatar)
	default:
		m.SetAvatarURI(uri)
	}
}
