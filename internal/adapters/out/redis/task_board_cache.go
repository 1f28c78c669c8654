// Package redis provides the Redis-backed cache for the driver task board.
// The board is the hottest read in the system, so the whole response is
// cached as one JSON value under a single key with a short TTL. Claiming a
// task invalidates the key so other drivers stop seeing it.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"feedback/internal/core/application/usecases/queries"
	"feedback/internal/pkg/errs"

	"github.com/go-redis/redis/v8"
)

const taskBoardKey = "task-board:available"

// TaskBoardCache implements queries.AvailableTasksCache using Redis.
type TaskBoardCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTaskBoardCache creates a Redis-backed task board cache and verifies the
// connection with a ping.
func NewTaskBoardCache(addr, password string, db int, ttl time.Duration) (*TaskBoardCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}

	return &TaskBoardCache{client: client, ttl: ttl}, nil
}

// Close releases the underlying Redis connection.
func (c *TaskBoardCache) Close() error {
	return c.client.Close()
}

// Get returns the cached task board.
// Returns ObjectNotFoundError on a cache miss.
func (c *TaskBoardCache) Get(ctx context.Context) ([]queries.GetAvailableTasksQueryResponse, error) {
	data, err := c.client.Get(ctx, taskBoardKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errs.NewObjectNotFoundError("taskBoard", taskBoardKey)
		}
		return nil, err
	}

	var tasks []queries.GetAvailableTasksQueryResponse
	if err = json.Unmarshal(data, &tasks); err != nil {
		return nil, err
	}

	return tasks, nil
}

// Set stores the task board with the configured TTL.
func (c *TaskBoardCache) Set(ctx context.Context, tasks []queries.GetAvailableTasksQueryResponse) error {
	data, err := json.Marshal(tasks)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, taskBoardKey, data, c.ttl).Err()
}

// Invalidate drops the cached board so the next read goes to the database.
func (c *TaskBoardCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, taskBoardKey).Err()
}
