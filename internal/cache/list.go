package cache

// Reserved arena slots. Both sentinels live for the lifetime of the list
// and never carry a key or value.
const (
	lruSentinel = 0
	mruSentinel = 1
)

// entry is one arena slot. prev and next are slot indices, not pointers.
type entry[K comparable, V any] struct {
	key   K
	value V
	prev  int
	next  int
}

// recencyList orders entries from least recently used (right after the LRU
// sentinel) to most recently used (right before the MRU sentinel).
//
//	[LRU] <> oldest <> ... <> newest <> [MRU]
//
// Entries are stored in a slot arena so that links are plain integers and
// the hash index can hold slot numbers instead of references.
type recencyList[K comparable, V any] struct {
	slots []entry[K, V]
	free  []int
}

func newRecencyList[K comparable, V any](capacity int) *recencyList[K, V] {
	l := &recencyList[K, V]{
		slots: make([]entry[K, V], 2, capacity+2),
	}
	l.slots[lruSentinel].prev = -1
	l.slots[lruSentinel].next = mruSentinel
	l.slots[mruSentinel].prev = lruSentinel
	l.slots[mruSentinel].next = -1
	return l
}

// alloc stores key/value in a free slot, growing the arena only when no
// released slot is available. The returned slot is not linked yet.
func (l *recencyList[K, V]) alloc(key K, value V) int {
	e := entry[K, V]{key: key, value: value, prev: -1, next: -1}
	if n := len(l.free); n > 0 {
		slot := l.free[n-1]
		l.free = l.free[:n-1]
		l.slots[slot] = e
		return slot
	}
	l.slots = append(l.slots, e)
	return len(l.slots) - 1
}

// release clears an unlinked slot and makes it available to alloc.
func (l *recencyList[K, V]) release(slot int) {
	l.slots[slot] = entry[K, V]{prev: -1, next: -1}
	l.free = append(l.free, slot)
}

// unlink removes slot from wherever it sits, joining its neighbours.
func (l *recencyList[K, V]) unlink(slot int) {
	e := &l.slots[slot]
	l.slots[e.prev].next = e.next
	l.slots[e.next].prev = e.prev
	e.prev, e.next = -1, -1
}

// appendMostRecent links an unlinked slot immediately before the MRU sentinel.
func (l *recencyList[K, V]) appendMostRecent(slot int) {
	newest := l.slots[mruSentinel].prev
	l.slots[slot].prev = newest
	l.slots[slot].next = mruSentinel
	l.slots[newest].next = slot
	l.slots[mruSentinel].prev = slot
}

// touch promotes slot to the most recently used position.
func (l *recencyList[K, V]) touch(slot int) {
	l.unlink(slot)
	l.appendMostRecent(slot)
}

// popLeastRecent unlinks and returns the slot right after the LRU sentinel.
// Callers must check the list is non-empty first.
func (l *recencyList[K, V]) popLeastRecent() int {
	oldest := l.slots[lruSentinel].next
	if oldest == mruSentinel {
		panic("cache: pop from empty recency list")
	}
	l.unlink(oldest)
	return oldest
}

// oldest returns the least recently used slot, or false if the list is empty.
func (l *recencyList[K, V]) oldest() (int, bool) {
	slot := l.slots[lruSentinel].next
	return slot, slot != mruSentinel
}

// newest returns the most recently used slot, or false if the list is empty.
func (l *recencyList[K, V]) newest() (int, bool) {
	slot := l.slots[mruSentinel].prev
	return slot, slot != lruSentinel
}

func (l *recencyList[K, V]) at(slot int) *entry[K, V] {
	return &l.slots[slot]
}

// walk calls fn for every linked slot from least to most recently used.
func (l *recencyList[K, V]) walk(fn func(slot int, e *entry[K, V])) {
	for slot := l.slots[lruSentinel].next; slot != mruSentinel; slot = l.slots[slot].next {
		fn(slot, &l.slots[slot])
	}
}
