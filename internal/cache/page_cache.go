package cache

import (
	"errors"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const megabyte = 1024 * 1024

// PageCache keeps rendered pages in a freecache segment. Entries never
// expire, the catalog they are rendered from does not change while running.
type PageCache struct {
	cache *freecache.Cache
}

func NewPageCache(sizeMegabytes int) *PageCache {
	if sizeMegabytes <= 0 {
		sizeMegabytes = 1
	}
	return &PageCache{
		cache: freecache.NewCache(sizeMegabytes * megabyte),
	}
}

func (pc *PageCache) Get(key string) ([]byte, bool) {
	page, err := pc.cache.Get([]byte(key))
	if err != nil {
		if !errors.Is(err, freecache.ErrNotFound) {
			log.Errorf("page cache get [%s]: %s", key, err)
		}
		return nil, false
	}
	return page, true
}

func (pc *PageCache) Set(key string, page []byte) bool {
	if err := pc.cache.Set([]byte(key), page, 0); err != nil {
		// freecache refuses entries larger than 1/1024 of its size
		log.Warnf("page cache set [%s]: %s", key, err)
		return false
	}
	return true
}

func (pc *PageCache) Clear() {
	pc.cache.Clear()
}

func (pc *PageCache) EntryCount() int64 {
	return pc.cache.EntryCount()
}

// NoopCache never stores anything; used when page caching is turned off.
type NoopCache struct{}

func (NoopCache) Get(string) ([]byte, bool) { return nil, false }
func (NoopCache) Set(string, []byte) bool  { return false }
func (NoopCache) Clear()                    {}
