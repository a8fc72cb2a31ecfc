package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func listKeys(l *recencyList[string, int]) []string {
	keys := []string{}
	l.walk(func(_ int, e *entry[string, int]) {
		keys = append(keys, e.key)
	})
	return keys
}

func TestRecencyList_Empty(t *testing.T) {
	l := newRecencyList[string, int](4)

	assert.Equal(t, mruSentinel, l.slots[lruSentinel].next)
	assert.Equal(t, lruSentinel, l.slots[mruSentinel].prev)
	_, ok := l.oldest()
	assert.False(t, ok)
	_, ok = l.newest()
	assert.False(t, ok)
	assert.Panics(t, func() { l.popLeastRecent() })
}

func TestRecencyList_AppendAndPop(t *testing.T) {
	l := newRecencyList[string, int](4)
	for i, key := range []string{"a", "b", "c"} {
		l.appendMostRecent(l.alloc(key, i))
	}
	assert.Equal(t, []string{"a", "b", "c"}, listKeys(l))

	slot := l.popLeastRecent()
	assert.Equal(t, "a", l.at(slot).key)
	assert.Equal(t, []string{"b", "c"}, listKeys(l))

	// Sentinels are untouched
	assert.Equal(t, "", l.at(lruSentinel).key)
	assert.Equal(t, "", l.at(mruSentinel).key)
}

func TestRecencyList_UnlinkAnywhere(t *testing.T) {
	l := newRecencyList[string, int](4)
	slots := map[string]int{}
	for i, key := range []string{"a", "b", "c", "d"} {
		slots[key] = l.alloc(key, i)
		l.appendMostRecent(slots[key])
	}

	l.unlink(slots["b"])
	assert.Equal(t, []string{"a", "c", "d"}, listKeys(l))
	l.unlink(slots["d"])
	assert.Equal(t, []string{"a", "c"}, listKeys(l))
	l.unlink(slots["a"])
	assert.Equal(t, []string{"c"}, listKeys(l))

	oldest, _ := l.oldest()
	newest, _ := l.newest()
	assert.Equal(t, slots["c"], oldest)
	assert.Equal(t, slots["c"], newest)
}

func TestRecencyList_Touch(t *testing.T) {
	l := newRecencyList[string, int](3)
	a := l.alloc("a", 1)
	l.appendMostRecent(a)
	b := l.alloc("b", 2)
	l.appendMostRecent(b)

	l.touch(a)
	assert.Equal(t, []string{"b", "a"}, listKeys(l))

	// Touching the newest entry keeps the order
	l.touch(a)
	assert.Equal(t, []string{"b", "a"}, listKeys(l))
}

func TestRecencyList_ReleaseReusesSlots(t *testing.T) {
	l := newRecencyList[string, int](2)
	a := l.alloc("a", 1)
	l.appendMostRecent(a)
	b := l.alloc("b", 2)
	l.appendMostRecent(b)

	popped := l.popLeastRecent()
	l.release(popped)
	c := l.alloc("c", 3)

	assert.Equal(t, a, c)
	assert.Len(t, l.slots, 4)
}

func TestHashIndex(t *testing.T) {
	h := newHashIndex[string](2)

	_, ok := h.get("a")
	assert.False(t, ok)

	h.put("a", 2)
	slot, ok := h.get("a")
	assert.True(t, ok)
	assert.Equal(t, 2, slot)

	h.put("a", 3)
	slot, _ = h.get("a")
	assert.Equal(t, 3, slot)
	assert.Equal(t, 1, h.len())

	h.remove("a")
	_, ok = h.get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, h.len())
}
