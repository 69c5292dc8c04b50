package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"savanna/models"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestRedisRoundTrip(t *testing.T) {
	rdb := newTestRedis(t)
	ctx := context.Background()

	properties := []models.Property{
		{ID: 1, Name: "Acacia House", City: "Nairobi"},
		{ID: 2, Name: "Baobab Villas", City: "Mombasa"},
	}
	require.NoError(t, SetToRedis(ctx, rdb, "properties:all", properties, time.Minute))

	var cached []models.Property
	require.NoError(t, GetFromRedis(ctx, rdb, "properties:all", &cached))
	require.Len(t, cached, 2)
	assert.Equal(t, "Acacia House", cached[0].Name)
}

func TestRedisMissingKeyLeavesTargetUntouched(t *testing.T) {
	rdb := newTestRedis(t)

	var cached []models.Property
	require.NoError(t, GetFromRedis(context.Background(), rdb, "nope", &cached))
	assert.Empty(t, cached)
}

func TestRedisDelete(t *testing.T) {
	rdb := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, SetToRedis(ctx, rdb, "key", "value", time.Minute))
	require.NoError(t, DeleteFromRedis(ctx, rdb, "key"))

	var out string
	require.NoError(t, GetFromRedis(ctx, rdb, "key", &out))
	assert.Empty(t, out)
}
