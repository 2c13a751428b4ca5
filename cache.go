package lowzip

import (
	"hash/maphash"

	"github.com/dgryski/go-tinylfu"
)

var cacheSeed = maphash.MakeSeed()

func cacheHasher(k uint32) uint64 {
	return maphash.Bytes(cacheSeed, []byte{byte(k), byte(k >> 8), byte(k >> 16), byte(k >> 24)})
}

// EntryCache memoizes GetData results by the entry's DataOffset, using a
// Window-TinyLFU admission policy (github.com/dgryski/go-tinylfu) the same
// way BeHierarchic's internal/spinner pool caches decompressed blocks: a
// bounded, eviction-aware cache in front of work that is safe, but wasteful,
// to redo. Unlike spinner's pool, EntryCache is not safe for concurrent use
// -- it wraps a single Decoder, which spec.md section 5 already restricts to
// one goroutine at a time.
type EntryCache struct {
	d     *Decoder
	cache *tinylfu.T[uint32, []byte]
}

// NewEntryCache wraps d with a cache holding up to capacity decoded entries.
func NewEntryCache(d *Decoder, capacity int) *EntryCache {
	return &EntryCache{
		d:     d,
		cache: tinylfu.New[uint32, []byte](capacity, capacity*10, cacheHasher),
	}
}

// Get returns fe's decompressed data, decoding and validating it via
// d.GetData on a cache miss and storing a copy for subsequent calls keyed on
// fe.DataOffset, the archive offset of the entry's data. The returned slice must not be
// modified by the caller; it is shared with the cache.
func (c *EntryCache) Get(fe *FileEntry) ([]byte, error) {
	if out, ok := c.cache.Get(fe.DataOffset); ok {
		return out, nil
	}

	saved := c.d.Output
	c.d.Output = make([]byte, fe.UncompressedSize)
	err := c.d.GetData(fe)
	out := c.d.Output
	c.d.Output = saved
	if err != nil {
		return nil, err
	}

	c.cache.Add(fe.DataOffset, out)
	return out, nil
}
