package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedForum struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func withMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestAside_MissFetchesAndStores(t *testing.T) {
	mr := withMiniredis(t)
	ctx := context.Background()

	fetches := 0
	var dest cachedForum
	err := Aside(ctx, ForumKey("general"), &dest, ForumTTL, func() error {
		fetches++
		dest = cachedForum{ID: 1, Name: "general"}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fetches)
	assert.Equal(t, "general", dest.Name)
	assert.True(t, mr.Exists(ForumKey("general")))

	// second read is served from the cache
	var again cachedForum
	err = Aside(ctx, ForumKey("general"), &again, ForumTTL, func() error {
		fetches++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fetches, "a cache hit must not fetch")
	assert.Equal(t, dest, again)
}

func TestAside_FetchErrorPropagatesAndCachesNothing(t *testing.T) {
	mr := withMiniredis(t)

	var dest cachedForum
	err := Aside(context.Background(), ForumKey("broken"), &dest, ForumTTL, func() error {
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
	assert.False(t, mr.Exists(ForumKey("broken")))
}

func TestAside_EntryExpires(t *testing.T) {
	mr := withMiniredis(t)
	ctx := context.Background()

	fetches := 0
	fetch := func(dest *cachedForum) func() error {
		return func() error {
			fetches++
			*dest = cachedForum{ID: 1, Name: "general"}
			return nil
		}
	}

	var first cachedForum
	require.NoError(t, Aside(ctx, ForumKey("general"), &first, time.Minute, fetch(&first)))
	mr.FastForward(2 * time.Minute)

	var second cachedForum
	require.NoError(t, Aside(ctx, ForumKey("general"), &second, time.Minute, fetch(&second)))
	assert.Equal(t, 2, fetches, "an expired entry must be refetched")
}

func TestInvalidate_RemovesEntry(t *testing.T) {
	mr := withMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, ThreadKey(5), cachedForum{ID: 5}, ThreadTTL))
	require.True(t, mr.Exists(ThreadKey(5)))

	InvalidateThread(ctx, 5)
	assert.False(t, mr.Exists(ThreadKey(5)))
}

func TestHelpers_NoopWithoutClient(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	found, err := GetJSON(ctx, "user:1", &cachedForum{})
	require.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, SetJSON(ctx, "user:1", cachedForum{ID: 1}, UserTTL))

	fetches := 0
	var dest cachedForum
	require.NoError(t, Aside(ctx, "user:1", &dest, UserTTL, func() error {
		fetches++
		dest.ID = 1
		return nil
	}))
	assert.Equal(t, 1, fetches, "without a client every read goes to storage")

	Invalidate(ctx, "user:1")
}

func TestKeyInventory(t *testing.T) {
	assert.Equal(t, "user:7", UserKey(7))
	assert.Equal(t, "forum:general", ForumKey("general"))
	assert.Equal(t, "thread:5", ThreadKey(5))
}
