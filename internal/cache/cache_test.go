package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSet(t *testing.T) {
	c := New[int64, string]()

	_, ok := c.Get(1)
	assert.False(t, ok)

	c.Set(1, "one")
	v, ok := c.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "one", v)

	assert.Equal(t, Stats{Total: 2, Hits: 1}, c.Stats())
}

func TestGenerationChangesOnEveryMutation(t *testing.T) {
	c := New[string, int]()
	mutations := []func(){
		func() { c.Set("a", 1) },
		func() { c.Delete("a") },
		func() { c.DeleteFunc(func(string, int) bool { return false }) },
		func() { c.Purge() },
		func() { c.SetIfCurrent(c.Generation(), map[string]int{"b": 2}) },
	}

	for i, mutate := range mutations {
		before := c.Generation()
		mutate()
		assert.NotEqual(t, before, c.Generation(), "mutation %d", i)
	}
}

func TestSetIfCurrentRejectsStaleLoad(t *testing.T) {
	c := New[int64, string]()
	gen := c.Generation()

	// A write lands while the loader is reading the store
	c.Set(1, "fresh")

	stored := c.SetIfCurrent(gen, map[int64]string{1: "stale", 2: "stale"})
	assert.False(t, stored)

	v, _ := c.Get(1)
	assert.Equal(t, "fresh", v)
	assert.Equal(t, 1, c.Len())
}

func TestSetIfCurrentStoresWhenUnchanged(t *testing.T) {
	c := New[int64, string]()
	gen := c.Generation()

	assert.True(t, c.SetIfCurrent(gen, map[int64]string{1: "a", 2: "b"}))
	assert.Equal(t, 2, c.Len())
	assert.False(t, c.SetIfCurrent(gen, map[int64]string{3: "c"}), "token is single use")
}

func TestDeleteFunc(t *testing.T) {
	c := New[int64, int]()
	for i := int64(1); i <= 6; i++ {
		c.Set(i, int(i%2))
	}

	n := c.DeleteFunc(func(_ int64, v int) bool { return v == 0 })
	assert.Equal(t, 3, n)
	assert.Equal(t, []int{1, 1, 1}, c.Values(nil))
}

func TestValuesSortedAndFiltered(t *testing.T) {
	c := New[string, string]()
	c.Set("c", "C")
	c.Set("a", "A")
	c.Set("b", "B")

	assert.Equal(t, []string{"A", "B", "C"}, c.Values(nil))
	assert.Equal(t, []string{"A", "C"}, c.Values(func(k, _ string) bool { return k != "b" }))
	assert.Empty(t, New[string, string]().Values(nil))
}

func TestPurge(t *testing.T) {
	c := New[int, int]()
	c.Set(1, 1)
	c.Set(2, 2)
	c.Purge()
	assert.Zero(t, c.Len())
}

func TestConcurrentAccess(t *testing.T) {
	c := New[int, int]()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Set(i, i)
			c.Get(i)
			c.Values(nil)
			c.SetIfCurrent(c.Generation(), map[int]int{i: i * 2})
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 32, c.Len())
}
