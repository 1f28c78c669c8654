package notify_test

import (
	"context"
	"sync"
	"testing"

	"feedback/internal/adapters/out/notify"
	"feedback/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryFeed_Publish_KeepsInsertionOrder(t *testing.T) {
	// Given
	feed := notify.NewInMemoryFeed()
	ctx := context.Background()

	// When
	require.NoError(t, feed.Publish(ctx, "driver-1", "New task available", ports.SeverityInfo))
	require.NoError(t, feed.Publish(ctx, "driver-1", "Pickup confirmed", ports.SeveritySuccess))

	// Then
	entries, err := feed.Feed(ctx, "driver-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "New task available", entries[0].Message)
	assert.Equal(t, ports.SeverityInfo, entries[0].Severity)
	assert.Equal(t, "Pickup confirmed", entries[1].Message)
	assert.Equal(t, ports.SeveritySuccess, entries[1].Severity)
	assert.False(t, entries[0].CreatedAt.IsZero())
}

func TestInMemoryFeed_Publish_DoesNotDeduplicate(t *testing.T) {
	// Given
	feed := notify.NewInMemoryFeed()
	ctx := context.Background()

	// When
	require.NoError(t, feed.Publish(ctx, "admin", "New merchant application", ports.SeverityInfo))
	require.NoError(t, feed.Publish(ctx, "admin", "New merchant application", ports.SeverityInfo))

	// Then
	entries, err := feed.Feed(ctx, "admin")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestInMemoryFeed_Feed_DoesNotConsume(t *testing.T) {
	// Given
	feed := notify.NewInMemoryFeed()
	ctx := context.Background()
	require.NoError(t, feed.Publish(ctx, "merchant-1", "Listing flagged", ports.SeverityWarning))

	// When
	first, err := feed.Feed(ctx, "merchant-1")
	require.NoError(t, err)
	second, err := feed.Feed(ctx, "merchant-1")
	require.NoError(t, err)

	// Then
	assert.Len(t, first, 1)
	assert.Len(t, second, 1)
}

func TestInMemoryFeed_Feed_IsolatesAudiences(t *testing.T) {
	// Given
	feed := notify.NewInMemoryFeed()
	ctx := context.Background()
	require.NoError(t, feed.Publish(ctx, "merchant-1", "Application approved", ports.SeveritySuccess))

	// When
	entries, err := feed.Feed(ctx, "merchant-2")

	// Then
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestInMemoryFeed_ConcurrentPublish_AllEntriesKept(t *testing.T) {
	// Given
	feed := notify.NewInMemoryFeed()
	ctx := context.Background()
	const writers = 20

	// When
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = feed.Publish(ctx, "driver-1", "Task update", ports.SeverityInfo)
		}()
	}
	wg.Wait()

	// Then
	entries, err := feed.Feed(ctx, "driver-1")
	require.NoError(t, err)
	assert.Len(t, entries, writers)
}
