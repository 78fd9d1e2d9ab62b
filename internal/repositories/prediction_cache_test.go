package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestPredictionCacheRepository(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewPredictionCacheRepository(rdb, 2*time.Second)

	t.Run("Set and Get prediction", func(t *testing.T) {
		err := repo.Set(ctx, "cough,fever", "flu")
		assert.NoError(t, err)

		got, err := repo.Get(ctx, "cough,fever")
		assert.NoError(t, err)
		assert.Equal(t, "flu", got)
	})

	t.Run("Get missing key returns error", func(t *testing.T) {
		_, err := repo.Get(ctx, "unknown,symptoms")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "prediction not found")
	})

	t.Run("Cached value expires", func(t *testing.T) {
		err := repo.Set(ctx, "headache", "migraine")
		assert.NoError(t, err)

		time.Sleep(3 * time.Second)

		_, err = repo.Get(ctx, "headache")
		assert.Error(t, err)
	})
}
