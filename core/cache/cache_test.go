package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type view struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}

func TestMemoryStore_Expiry(t *testing.T) {
	s := NewMemoryStore()
	now := time.Now()
	s.now = func() time.Time { return now }

	require.NoError(t, s.Set(context.Background(), "k", []byte("v"), time.Minute))

	v, ok, err := s.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), v)

	now = now.Add(2 * time.Minute)
	_, ok, err = s.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore_ExpiredReadKeepsConcurrentSet(t *testing.T) {
	s := NewMemoryStore()
	now := time.Now()
	refreshed := false
	s.now = func() time.Time { return now }

	require.NoError(t, s.Set(context.Background(), "k", []byte("old"), time.Minute))
	now = now.Add(2 * time.Minute)

	// The first clock read inside Get happens between its read and write locks
	s.now = func() time.Time {
		if !refreshed {
			refreshed = true
			require.NoError(t, s.Set(context.Background(), "k", []byte("fresh"), time.Minute))
		}
		return now
	}

	_, ok, err := s.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.False(t, ok)

	v, ok, err := s.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("fresh"), v)
}

func TestCache_GetOrLoad_CachesResult(t *testing.T) {
	c := New(NewMemoryStore(), time.Minute, "t:")
	var calls int32
	load := func(ctx context.Context) (any, error) {
		atomic.AddInt32(&calls, 1)
		return view{ID: 1, Status: "PENDING"}, nil
	}

	var first, second view
	require.NoError(t, c.GetOrLoad(context.Background(), "admin/timesheets/1", &first, load))
	require.NoError(t, c.GetOrLoad(context.Background(), "admin/timesheets/1", &second, load))

	assert.Equal(t, view{ID: 1, Status: "PENDING"}, first)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestCache_Invalidate(t *testing.T) {
	c := New(NewMemoryStore(), time.Minute, "t:")
	status := "PENDING"
	load := func(ctx context.Context) (any, error) {
		return view{ID: 1, Status: status}, nil
	}

	var v view
	require.NoError(t, c.GetOrLoad(context.Background(), "admin/timesheets/1", &v, load))
	status = "APPROVED"

	require.NoError(t, c.GetOrLoad(context.Background(), "admin/timesheets/1", &v, load))
	assert.Equal(t, "PENDING", v.Status)

	require.NoError(t, c.Invalidate(context.Background(), "timesheets", "admin/timesheets/1"))
	require.NoError(t, c.GetOrLoad(context.Background(), "admin/timesheets/1", &v, load))
	assert.Equal(t, "APPROVED", v.Status)
}

func TestCache_InvalidateDuringLoadIsNotStored(t *testing.T) {
	c := New(NewMemoryStore(), time.Minute, "t:")
	ctx := context.Background()

	// The edit commits and invalidates while this read is still loading
	var v view
	require.NoError(t, c.GetOrLoad(ctx, "timesheets", &v, func(ctx context.Context) (any, error) {
		require.NoError(t, c.Invalidate(ctx, "timesheets"))
		return view{ID: 1, Status: "PENDING"}, nil
	}))
	assert.Equal(t, "PENDING", v.Status)

	require.NoError(t, c.GetOrLoad(ctx, "timesheets", &v, func(ctx context.Context) (any, error) {
		return view{ID: 1, Status: "APPROVED"}, nil
	}))
	assert.Equal(t, "APPROVED", v.Status)

	// Loads that start after the invalidation are cached again
	require.NoError(t, c.GetOrLoad(ctx, "timesheets", &v, func(ctx context.Context) (any, error) {
		return view{ID: 1, Status: "REJECTED"}, nil
	}))
	assert.Equal(t, "APPROVED", v.Status)
}

func TestCache_LoadIgnoresCallerCancellation(t *testing.T) {
	c := New(NewMemoryStore(), time.Minute, "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var v view
	require.NoError(t, c.GetOrLoad(ctx, "k", &v, func(ctx context.Context) (any, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return view{ID: 4}, nil
	}))
	assert.Equal(t, uint(4), v.ID)
}

func TestCache_LoadError(t *testing.T) {
	c := New(NewMemoryStore(), time.Minute, "")
	boom := errors.New("boom")

	var v view
	err := c.GetOrLoad(context.Background(), "k", &v, func(ctx context.Context) (any, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestCache_Disabled(t *testing.T) {
	c := New(NewMemoryStore(), 0, "")
	var calls int32
	load := func(ctx context.Context) (any, error) {
		atomic.AddInt32(&calls, 1)
		return view{ID: 2}, nil
	}

	var v view
	require.NoError(t, c.GetOrLoad(context.Background(), "k", &v, load))
	require.NoError(t, c.GetOrLoad(context.Background(), "k", &v, load))
	assert.Equal(t, uint(2), v.ID)
	assert.Equal(t, int32(2), calls)
}

func TestCache_ConcurrentMissesShareLoad(t *testing.T) {
	c := New(NewMemoryStore(), time.Minute, "")
	var calls int32
	release := make(chan struct{})
	load := func(ctx context.Context) (any, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return view{ID: 3}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var v view
			assert.NoError(t, c.GetOrLoad(context.Background(), "k", &v, load))
			assert.Equal(t, uint(3), v.ID)
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.LessOrEqual(t, atomic.LoadInt32(&calls), int32(8))
	assert.GreaterOrEqual(t, atomic.LoadInt32(&calls), int32(1))
}

func TestNewStore(t *testing.T) {
	s, err := NewStore(Config{Driver: DriverMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	s, err = NewStore(Config{Driver: DriverRedis, Addr: "localhost:6379"})
	require.NoError(t, err)
	assert.IsType(t, &RedisStore{}, s)

	_, err = NewStore(Config{Driver: "memcached"})
	assert.EqualError(t, err, "unsupported cache driver: memcached")
}

func TestRedisStore_UnreachableDegradesToLoad(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	c := New(NewRedisStore(client), time.Minute, "")
	var v view
	err := c.GetOrLoad(context.Background(), "k", &v, func(ctx context.Context) (any, error) {
		return view{ID: 9}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, uint(9), v.ID)

	_, _, err = NewRedisStore(client).Get(context.Background(), "k")
	assert.Error(t, err)
}
