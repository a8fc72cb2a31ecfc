package cache

// hashIndex maps a resident key to the arena slot holding its entry.
// It never touches the recency list; slots it returns are only valid
// while the key stays resident.
type hashIndex[K comparable] struct {
	slots map[K]int
}

func newHashIndex[K comparable](capacity int) *hashIndex[K] {
	return &hashIndex[K]{slots: make(map[K]int, capacity)}
}

// put inserts or overwrites the mapping for key
func (h *hashIndex[K]) put(key K, slot int) {
	h.slots[key] = slot
}

// get looks up the slot for key
func (h *hashIndex[K]) get(key K) (int, bool) {
	slot, ok := h.slots[key]
	return slot, ok
}

// remove deletes the mapping for key; key must be present
func (h *hashIndex[K]) remove(key K) {
	delete(h.slots, key)
}

func (h *hashIndex[K]) len() int {
	return len(h.slots)
}
