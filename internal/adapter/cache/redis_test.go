package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/bus_booking/internal/adapter/cache"
	"github.com/srgjo27/bus_booking/internal/core/ports"
)

func TestRedisCache_GetMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.ExpectGet("buses:a|b|||||").RedisNil()

	c := cache.NewRedisCache(db)
	_, err := c.Get(context.Background(), "buses:a|b|||||")
	assert.ErrorIs(t, err, ports.ErrCacheMiss)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCache_GetHit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.ExpectGet("key").SetVal(`[{"id":1}]`)

	c := cache.NewRedisCache(db)
	val, err := c.Get(context.Background(), "key")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":1}]`), val)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCache_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.ExpectSet("key", []byte("v"), time.Minute).SetVal("OK")

	c := cache.NewRedisCache(db)
	require.NoError(t, c.Set(context.Background(), "key", []byte("v"), time.Minute))
	assert.NoError(t, mock.ExpectationsWereMet())
}
