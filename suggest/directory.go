// Package suggest keeps a directory of known mentions, used to
// suggest completions while a mention is typed and to resolve
// detected usernames back into mentions.
package suggest

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/luevano/libsocial/logger"
	"github.com/luevano/libsocial/mention"
	"golang.org/x/sync/errgroup"
)

// Directory is a set of known mentions keyed by case insensitive username.
//
// It is safe for concurrent use.
type Directory struct {
	// guards the index
	mu sync.Mutex

	store   store
	options Options
	logger  *logger.Logger
}

// NewDirectory constructs a Directory with the given options.
//
// Use DefaultOptions for defaults.
func NewDirectory(options Options) (*Directory, error) {
	if options.CacheStore == nil {
		return nil, Error("nil CacheStore passed to Directory")
	}

	s, err := openStore(options.CacheStore)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	l := options.Logger
	if l == nil {
		l = logger.NewLogger()
	}

	return &Directory{
		store:   s,
		options: options,
		logger:  l,
	}, nil
}

func (d *Directory) Logger() *logger.Logger {
	return d.logger
}

// Close closes the underlying stores.
func (d *Directory) Close() error {
	return d.store.Close()
}

func key(username string) string {
	return strings.ToLower(strings.TrimPrefix(username, "@"))
}

// Add stores the mention, replacing any stored mention with the same username.
func (d *Directory) Add(m *mention.Mention) error {
	if m == nil {
		return Error("nil Mention passed to Add")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	return d.add(m)
}

func (d *Directory) add(m *mention.Mention) error {
	k := key(m.Username())
	if err := d.store.setRecord(k, newRecord(m)); err != nil {
		return fmt.Errorf("store %q: %w", m.Username(), err)
	}

	keys, err := d.store.getIndex()
	if err != nil {
		return fmt.Errorf("read index: %w", err)
	}

	i, found := slices.BinarySearch(keys, k)
	if found {
		d.logger.Log("updated %s", m)
		return nil
	}

	keys = slices.Insert(keys, i, k)
	if err := d.store.setIndex(keys); err != nil {
		return fmt.Errorf("write index: %w", err)
	}

	d.logger.Log("added %s", m)
	return nil
}

// Get returns the mention stored with the given username.
//
// The username is matched case insensitively, a leading "@" is ignored.
func (d *Directory) Get(username string) (*mention.Mention, bool, error) {
	k := key(username)
	if k == "" {
		return nil, false, nil
	}

	r, found, err := d.store.getRecord(k)
	if err != nil {
		return nil, false, fmt.Errorf("read %q: %w", username, err)
	}
	if !found {
		return nil, false, nil
	}

	m, err := r.mention()
	if err != nil {
		return nil, false, err
	}

	return m, true, nil
}

// Remove deletes the mention stored with the given username.
//
// Removing an unknown username is not an error.
func (d *Directory) Remove(username string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	k := key(username)
	if k == "" {
		return nil
	}

	keys, err := d.store.getIndex()
	if err != nil {
		return fmt.Errorf("read index: %w", err)
	}

	if i, found := slices.BinarySearch(keys, k); found {
		keys = slices.Delete(keys, i, i+1)
		if err := d.store.setIndex(keys); err != nil {
			return fmt.Errorf("write index: %w", err)
		}
	}

	if err := d.store.deleteRecord(k); err != nil {
		return fmt.Errorf("delete %q: %w", username, err)
	}

	d.logger.Log("removed %q", username)
	return nil
}

// Usernames returns the sorted lowercase usernames of every stored mention.
func (d *Directory) Usernames() ([]string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	keys, err := d.store.getIndex()
	if err != nil {
		return nil, fmt.Errorf("read index: %w", err)
	}
	if keys == nil {
		keys = []string{}
	}
	return keys, nil
}

// Filter returns stored mentions matching the query.
//
// A mention matches when its username, or any word of its displayname,
// starts with the query, case insensitively. A leading "@" in the query
// is ignored. An exact username match comes first, then the rest by
// username. At most Options.Limit mentions are returned.
func (d *Directory) Filter(query string) ([]*mention.Mention, error) {
	q := key(query)

	keys, err := d.Usernames()
	if err != nil {
		return nil, err
	}

	var matches []*mention.Mention
	for _, k := range keys {
		if d.options.Limit > 0 && len(matches) >= d.options.Limit && k != q {
			continue
		}

		m, found, err := d.Get(k)
		if err != nil {
			return nil, err
		}
		// removed in between
		if !found {
			continue
		}
		if !matchesQuery(m, q) {
			continue
		}

		if k == q {
			matches = slices.Insert(matches, 0, m)
		} else {
			matches = append(matches, m)
		}
	}

	if d.options.Limit > 0 && len(matches) > d.options.Limit {
		matches = matches[:d.options.Limit]
	}

	d.logger.Log("%d suggestion(s) for %q", len(matches), query)
	return matches, nil
}

func matchesQuery(m *mention.Mention, q string) bool {
	if q == "" {
		return true
	}
	if strings.HasPrefix(strings.ToLower(m.Username()), q) {
		return true
	}

	displayname, ok := m.Displayname()
	if !ok {
		return false
	}
	for _, word := range strings.Fields(strings.ToLower(displayname)) {
		if strings.HasPrefix(word, q) {
			return true
		}
	}
	return false
}

// Resolve returns a mention for each username, in the same order.
//
// Unknown usernames resolve to a mention with just the username.
// Lookups run concurrently, up to Options.Concurrency at a time.
func (d *Directory) Resolve(ctx context.Context, usernames []string) ([]*mention.Mention, error) {
	mentions := make([]*mention.Mention, len(usernames))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(d.options.Concurrency, 1))
	for i, username := range usernames {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			m, found, err := d.Get(username)
			if err != nil {
				return err
			}
			if !found {
				m, err = mention.New(strings.TrimPrefix(username, "@"))
				if err != nil {
					return err
				}
			}

			mentions[i] = m
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	d.logger.Log("resolved %d mention(s)", len(mentions))
	return mentions, nil
}
