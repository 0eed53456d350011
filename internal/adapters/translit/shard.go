package translit

import (
	"container/list"
	"sync"
	"time"
)

// entryOverhead approximates the memory held per entry beyond its strings:
// the list element, the entry struct and the map slot.
const entryOverhead = 128

type entry struct {
	key       string
	value     string
	expiresAt time.Time
	size      int64
}

func newEntry(key, value string, expiresAt time.Time) *entry {
	return &entry{
		key:       key,
		value:     value,
		expiresAt: expiresAt,
		size:      int64(len(key) + len(value) + entryOverhead),
	}
}

func (e *entry) expired(now time.Time) bool {
	return !now.Before(e.expiresAt)
}

// shard is one independently locked slice of the cache.
// The list runs from most to least recently used. Every entry shares the same
// sliding window, so the back of the list is also the entry that expires first.
type shard struct {
	mu    sync.Mutex
	items map[string]*list.Element
	lru   *list.List
	bytes int64
}

func newShard() *shard {
	return &shard{
		items: make(map[string]*list.Element),
		lru:   list.New(),
	}
}

// lookup returns the live value for key and slides its expiry.
// An entry found expired is removed and returned as evicted.
func (s *shard) lookup(key string, now time.Time, window time.Duration) (value string, ok bool, evicted *entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	el, found := s.items[key]
	if !found {
		return "", false, nil
	}

	e := el.Value.(*entry) //nolint:forcetypeassert // list only holds *entry
	if e.expired(now) {
		s.removeElement(el)
		return "", false, e
	}

	e.expiresAt = now.Add(window)
	s.lru.MoveToFront(el)
	return e.value, true, nil
}

// store inserts or replaces key and returns the change in estimated bytes.
func (s *shard) store(key, value string, expiresAt time.Time) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := newEntry(key, value, expiresAt)
	if el, found := s.items[key]; found {
		old := el.Value.(*entry) //nolint:forcetypeassert // list only holds *entry
		el.Value = e
		s.lru.MoveToFront(el)
		delta := e.size - old.size
		s.bytes += delta
		return delta
	}

	s.items[key] = s.lru.PushFront(e)
	s.bytes += e.size
	return e.size
}

// popExpired removes the least recently used entry if it has expired.
func (s *shard) popExpired(now time.Time) (*entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	el := s.lru.Back()
	if el == nil {
		return nil, false
	}
	e := el.Value.(*entry) //nolint:forcetypeassert // list only holds *entry
	if !e.expired(now) {
		return nil, false
	}
	s.removeElement(el)
	return e, true
}

// popOldest removes the least recently used entry.
func (s *shard) popOldest() (*entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	el := s.lru.Back()
	if el == nil {
		return nil, false
	}
	e := el.Value.(*entry) //nolint:forcetypeassert // list only holds *entry
	s.removeElement(el)
	return e, true
}

// oldest reports the expiry of the least recently used entry.
func (s *shard) oldest() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	el := s.lru.Back()
	if el == nil {
		return time.Time{}, false
	}
	return el.Value.(*entry).expiresAt, true //nolint:forcetypeassert // list only holds *entry
}

// reset drops every entry and returns what was released.
func (s *shard) reset() (entries int, bytes int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, bytes = len(s.items), s.bytes
	s.items = make(map[string]*list.Element)
	s.lru.Init()
	s.bytes = 0
	return entries, bytes
}

func (s *shard) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *shard) removeElement(el *list.Element) {
	e := el.Value.(*entry) //nolint:forcetypeassert // list only holds *entry
	s.lru.Remove(el)
	delete(s.items, e.key)
	s.bytes -= e.size
}
