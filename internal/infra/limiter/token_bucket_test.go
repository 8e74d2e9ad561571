package limiter

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenBucketExhaustion(t *testing.T) {
	bucket := NewTokenBucket(&LimiterConfig{
		Capacity:   5,
		RatePS:     1,
		RefillRate: time.Hour, // 測試期間不補充
	})
	defer bucket.Stop()

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.True(t, bucket.Allow(ctx))
	}
	require.False(t, bucket.Allow(ctx))
}

func TestTokenBucketRefill(t *testing.T) {
	bucket := NewTokenBucket(&LimiterConfig{
		Capacity:   2,
		RatePS:     100,
		RefillRate: 10 * time.Millisecond,
	})
	defer bucket.Stop()

	ctx := context.Background()
	require.True(t, bucket.Allow(ctx))
	require.True(t, bucket.Allow(ctx))
	require.False(t, bucket.Allow(ctx))

	time.Sleep(50 * time.Millisecond)
	require.True(t, bucket.Allow(ctx))
}

func TestTokenBucketConcurrent(t *testing.T) {
	const capacity = 50
	bucket := NewTokenBucket(&LimiterConfig{
		Capacity:   capacity,
		RatePS:     1,
		RefillRate: time.Hour,
	})
	defer bucket.Stop()

	var wg sync.WaitGroup
	results := make(chan bool, capacity*2)
	for i := 0; i < capacity*2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- bucket.Allow(context.Background())
		}()
	}
	wg.Wait()
	close(results)

	var allowed int
	for ok := range results {
		if ok {
			allowed++
		}
	}
	require.Equal(t, capacity, allowed)
}

func TestTokenBucketDefaultConfig(t *testing.T) {
	bucket := NewTokenBucket(nil)
	defer bucket.Stop()

	require.Equal(t, 100, bucket.Capacity)
	require.True(t, bucket.Allow(context.Background()))
}

func TestTokenBucketStopIdempotent(t *testing.T) {
	bucket := NewTokenBucket(nil)
	bucket.Stop()
	bucket.Stop()
}
