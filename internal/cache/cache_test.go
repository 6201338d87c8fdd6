package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRepository_SetGet(t *testing.T) {
	repo := New(time.Minute, 5*time.Minute)
	defer repo.Close()

	value, found := repo.Get("missing")
	assert.Nil(t, value)
	assert.False(t, found)

	repo.Set("hit", []string{"a", "b"}, DefaultExpiration)

	value, found = repo.Get("hit")
	assert.True(t, found)
	assert.Equal(t, []string{"a", "b"}, value)
	assert.Equal(t, 1, repo.Count())
}

func TestRepository_Expiration(t *testing.T) {
	repo := New(time.Minute, 5*time.Minute)
	defer repo.Close()

	repo.Set("short", true, 10*time.Millisecond)
	repo.Set("long", true, time.Minute)

	_, found := repo.Get("short")
	assert.True(t, found)

	time.Sleep(20 * time.Millisecond)

	_, found = repo.Get("short")
	assert.False(t, found)
	_, found = repo.Get("long")
	assert.True(t, found)
}

func TestRepository_DeleteFlush(t *testing.T) {
	repo := New(time.Minute, 5*time.Minute)
	defer repo.Close()

	repo.Set("one", 1, DefaultExpiration)
	repo.Set("two", 2, DefaultExpiration)

	repo.Delete("one")
	_, found := repo.Get("one")
	assert.False(t, found)
	assert.Equal(t, 1, repo.Count())

	repo.Flush()
	assert.Equal(t, 0, repo.Count())
}

func TestRepository_ClosedIsSafe(t *testing.T) {
	repo := New(time.Minute, 5*time.Minute)

	repo.Set("key", "value", DefaultExpiration)
	repo.Close()

	value, found := repo.Get("key")
	assert.Nil(t, value)
	assert.False(t, found)
	assert.Equal(t, 0, repo.Count())

	// None of these may panic after Close.
	repo.Set("key", "value", DefaultExpiration)
	repo.Delete("key")
	repo.Flush()
	repo.Close()
}
