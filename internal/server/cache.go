package server

import (
	"errors"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/oshokin/suno-cli/internal/client/suno"
)

// SongCache keeps ready songs for a while, their media URLs no longer change.
// A nil *SongCache is a valid, disabled cache.
type SongCache struct {
	// songs maps song ids to ready songs.
	songs *expirable.LRU[string, *suno.Song]
}

// ErrInvalidCacheSize indicates a non-positive size for an enabled cache.
var ErrInvalidCacheSize = errors.New("cache size must be positive")

// NewSongCache creates a cache. A zero ttl disables caching and returns nil.
func NewSongCache(size int, ttl time.Duration) (*SongCache, error) {
	if ttl <= 0 {
		return nil, nil //nolint:nilnil // A nil cache means caching is disabled.
	}

	if size <= 0 {
		return nil, ErrInvalidCacheSize
	}

	return &SongCache{
		songs: expirable.NewLRU[string, *suno.Song](size, nil, ttl),
	}, nil
}

// Get returns a cached song.
func (c *SongCache) Get(songID string) (*suno.Song, bool) {
	if c == nil {
		return nil, false
	}

	return c.songs.Get(songID)
}

// AddReady caches the ready songs among the given ones.
func (c *SongCache) AddReady(songs ...*suno.Song) {
	if c == nil {
		return
	}

	for _, song := range songs {
		if song != nil && song.IsReady() {
			c.songs.Add(song.ID, song)
		}
	}
}

// Len returns the number of cached songs.
func (c *SongCache) Len() int {
	if c == nil {
		return 0
	}

	return c.songs.Len()
}
