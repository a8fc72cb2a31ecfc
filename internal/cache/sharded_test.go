package cache

import (
	"fmt"
	"sync"
	"testing"

	pkgerrors "lrucache/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSharded(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		shards   int
		err      error
	}{
		{"single shard", 10, 1, nil},
		{"even split", 16, 4, nil},
		{"uneven split", 10, 3, nil},
		{"capacity equals shards", 4, 4, nil},
		{"zero shards", 10, 0, pkgerrors.ErrInvalidShardCount},
		{"capacity below shards", 3, 4, pkgerrors.ErrInvalidCapacity},
		{"zero capacity", 0, 1, pkgerrors.ErrInvalidCapacity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSharded[int](tt.capacity, tt.shards)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.capacity, s.Capacity())
			assert.Equal(t, tt.shards, s.Shards())

			total := 0
			for _, sh := range s.shards {
				assert.GreaterOrEqual(t, sh.lru.Capacity(), 1)
				total += sh.lru.Capacity()
			}
			assert.Equal(t, tt.capacity, total)
		})
	}
}

func TestSharded_SingleShardBehavesLikeLRU(t *testing.T) {
	s, err := NewSharded[int](2, 1)
	require.NoError(t, err)

	s.Add("a", 1)
	s.Add("b", 2)
	_, err = s.Get("a")
	require.NoError(t, err)
	s.Add("c", 3)

	_, err = s.Get("b")
	assert.ErrorIs(t, err, pkgerrors.ErrKeyNotFound)
	assert.Equal(t, 2, s.Size())

	stats := s.Stats()
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
	assert.Equal(t, uint64(1), stats.Evictions)
}

func TestSharded_EvictCallback(t *testing.T) {
	var evicted []string
	s, err := NewShardedWithEvict[int](1, 1, func(key string, _ int) {
		evicted = append(evicted, key)
	})
	require.NoError(t, err)

	s.Add("a", 1)
	s.Add("b", 2)
	assert.Equal(t, []string{"a"}, evicted)
}

func TestSharded_ConcurrentAccess(t *testing.T) {
	s, err := NewSharded[int](64, 8)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("k%d", (g*200+i)%97)
				s.Add(key, i)
				_, _ = s.Get(key)
			}
		}(g)
	}
	wg.Wait()

	assert.LessOrEqual(t, s.Size(), 64)
	stats := s.Stats()
	assert.Equal(t, uint64(8*200), stats.Hits+stats.Misses)
}

func TestSharded_KeysStayInTheirShard(t *testing.T) {
	s, err := NewSharded[string](400, 4)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		key := fmt.Sprintf("key-%d", i)
		s.Add(key, key)
		assert.Same(t, s.shardFor(key), s.shardFor(key))
	}
	for i := 0; i < 50; i++ {
		key := fmt.Sprintf("key-%d", i)
		value, err := s.Get(key)
		assert.NoError(t, err)
		assert.Equal(t, key, value)
	}
}
