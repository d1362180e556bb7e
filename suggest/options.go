package suggest

import (
	"sync"

	"github.com/luevano/libsocial/logger"
	"github.com/philippgille/gokv"
	"github.com/philippgille/gokv/syncmap"
)

// Options configures a Directory.
type Options struct {
	// CacheStore returns a gokv.Store implementation for the given bucket.
	//
	// It is called once per bucket when the Directory is created.
	// Must be non-nil.
	CacheStore func(bucketName string) (gokv.Store, error)

	// Limit is the maximum amount of suggestions returned by Filter.
	//
	// Zero means no limit.
	Limit int

	// Concurrency is the maximum amount of concurrent store lookups
	// made by Resolve. Values lower than 1 mean one at a time.
	Concurrency int

	// Logger used for logs. A nil Logger discards everything.
	Logger *logger.Logger
}

// DefaultOptions constructs default Options backed by in memory stores.
//
// Stores are kept per bucket, so every Directory built
// from the same Options shares them.
func DefaultOptions() Options {
	var mu sync.Mutex
	stores := make(map[string]gokv.Store)

	return Options{
		CacheStore: func(bucketName string) (gokv.Store, error) {
			mu.Lock()
			defer mu.Unlock()

			store, ok := stores[bucketName]
			if !ok {
				store = syncmap.NewStore(syncmap.DefaultOptions)
				stores[bucketName] = store
			}
			return store, nil
		},
		Limit:       10,
		Concurrency: 4,
		Logger:      logger.NewLogger(),
	}
}
