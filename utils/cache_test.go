package utils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCacheAddGet(t *testing.T) {
	c := NewCache[string, int](10)
	c.Add("a", 1)
	c.Add("b", 2)

	v, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)

	_, ok = c.Get("missing")
	require.False(t, ok)
	require.Equal(t, 2, c.Len())
}

func TestCacheOverwrite(t *testing.T) {
	c := NewCache[string, int](10)
	c.Add("a", 1)
	c.Add("a", 2)

	v, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 2, v)
	require.Equal(t, 1, c.Len())
}

func TestCacheEviction(t *testing.T) {
	c := NewCache[string, int](3)
	for i := 0; i < 5; i++ {
		c.Add(fmt.Sprintf("k%d", i), i)
	}
	require.Equal(t, 3, c.Len())

	// Oldest keys are gone, newest survive
	_, ok := c.Get("k0")
	require.False(t, ok)
	_, ok = c.Get("k1")
	require.False(t, ok)
	v, ok := c.Get("k4")
	require.True(t, ok)
	require.Equal(t, 4, v)
}
