package cache

import (
	"context"
	"io"
	"os"
	"testing"

	"urbannest-properties/pkg/logger"
	"urbannest-properties/pkg/metrics"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.InitLogger(io.Discard, "error")
	os.Exit(m.Run())
}

func setupTestRedis(t *testing.T) {
	t.Helper()
	mr := miniredis.RunT(t)
	RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { RedisClient.Close() })
}

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestSetAndGet(t *testing.T) {
	setupTestRedis(t)
	ctx := context.Background()

	in := payload{Name: "pune", Count: 3}
	require.NoError(t, Set(ctx, "properties:{}", in, Expiration))

	var out payload
	require.NoError(t, Get(ctx, "properties:{}", &out))
	assert.Equal(t, in, out)
}

func TestGetCountsHitsAndMisses(t *testing.T) {
	setupTestRedis(t)
	ctx := context.Background()

	hitsBefore := testutil.ToFloat64(metrics.CacheHitsTotal)
	missesBefore := testutil.ToFloat64(metrics.CacheMissesTotal)

	var out payload
	assert.ErrorIs(t, Get(ctx, "properties:absent", &out), ErrCacheMiss)
	assert.Equal(t, missesBefore+1, testutil.ToFloat64(metrics.CacheMissesTotal))
	assert.Equal(t, hitsBefore, testutil.ToFloat64(metrics.CacheHitsTotal))

	require.NoError(t, Set(ctx, "properties:{}", payload{Name: "pune"}, Expiration))
	require.NoError(t, Get(ctx, "properties:{}", &out))
	assert.Equal(t, hitsBefore+1, testutil.ToFloat64(metrics.CacheHitsTotal))
	assert.Equal(t, missesBefore+1, testutil.ToFloat64(metrics.CacheMissesTotal))
}

func TestGetMiss(t *testing.T) {
	setupTestRedis(t)

	var out payload
	err := Get(context.Background(), "properties:absent", &out)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestDeleteByPattern(t *testing.T) {
	setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, Set(ctx, `properties:{"page":"1"}`, payload{}, Expiration))
	require.NoError(t, Set(ctx, `properties:{"page":"2"}`, payload{}, Expiration))
	require.NoError(t, Set(ctx, "property:abc123", payload{}, Expiration))

	require.NoError(t, DeleteByPattern(ctx, ListPattern))

	var out payload
	assert.ErrorIs(t, Get(ctx, `properties:{"page":"1"}`, &out), ErrCacheMiss)
	assert.ErrorIs(t, Get(ctx, `properties:{"page":"2"}`, &out), ErrCacheMiss)

	// Detail entries survive a listing purge.
	assert.NoError(t, Get(ctx, "property:abc123", &out))
}

func TestDeleteByPatternNoMatches(t *testing.T) {
	setupTestRedis(t)
	assert.NoError(t, DeleteByPattern(context.Background(), ListPattern))
}
