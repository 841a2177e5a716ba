package cache

// Cache stores rendered pages by key.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, page []byte) bool
	Clear()
}
