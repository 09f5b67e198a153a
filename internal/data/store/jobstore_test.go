package store_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/estla/skillserver/internal/config"
	"github.com/estla/skillserver/internal/data/redisStore"
	"github.com/estla/skillserver/internal/data/store"
	"github.com/estla/skillserver/internal/domain/jobModel"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redisStore.Store) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, redisStore.NewTestStore(client)
}

func TestRedisJobStore_Lifecycle(t *testing.T) {
	mr, internalStore := newRedis(t)
	jobStore := store.NewRedisJobStore(internalStore)

	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")
	jobID := "job_abc_123"

	testJob := jobModel.Job{
		Id:          jobID,
		JobType:     jobModel.JobTypeReload,
		Status:      jobModel.JobStatusComplete,
		CreatedTime: time.Now().UTC().Truncate(time.Second),
		Result: jobModel.ReloadResult{
			Documents:   12,
			Failed:      1,
			PerCategory: map[string]int{"QnA": 10, "Selftest": 2},
			Generation:  3,
		},
	}

	t.Run("Save and Get Roundtrip", func(t *testing.T) {
		require.NoError(t, jobStore.SaveJob(ctx, testJob))

		retrieved, found := jobStore.GetJob(ctx, jobID)
		require.True(t, found)
		assert.Equal(t, testJob.Result, retrieved.Result)
		assert.Equal(t, jobModel.JobStatusComplete, retrieved.Status)
		assert.True(t, testJob.CreatedTime.Equal(retrieved.CreatedTime))
	})

	t.Run("Saved with TTL", func(t *testing.T) {
		assert.Equal(t, config.RedisJobStoreTTL, mr.TTL("reload-job:"+jobID))
	})

	t.Run("Get Non-Existent Job", func(t *testing.T) {
		_, found := jobStore.GetJob(ctx, "ghost-id")
		assert.False(t, found)
	})

	t.Run("Corrupt payload is not found", func(t *testing.T) {
		require.NoError(t, mr.Set("reload-job:broken", "{not json"))
		_, found := jobStore.GetJob(ctx, "broken")
		assert.False(t, found)
	})

	t.Run("Delete Job", func(t *testing.T) {
		jobStore.DeleteJob(ctx, jobID)
		assert.False(t, mr.Exists("reload-job:"+jobID))
	})
}

func TestRedisJobStore_Concurrent(t *testing.T) {
	_, internalStore := newRedis(t)
	jobStore := store.NewRedisJobStore(internalStore)

	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "race-trace")
	job := jobModel.Job{Id: "race-job", Status: jobModel.JobStatusQueued}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = jobStore.SaveJob(ctx, job)
			_, _ = jobStore.GetJob(ctx, "race-job")
		}()
	}
	wg.Wait()

	_, found := jobStore.GetJob(ctx, "race-job")
	assert.True(t, found)
}

func TestInMemoryJobStore(t *testing.T) {
	jobStore := store.InitInMemoryJobStore()
	ctx := context.Background()

	_, found := jobStore.GetJob(ctx, "a")
	assert.False(t, found)

	require.NoError(t, jobStore.SaveJob(ctx, jobModel.Job{Id: "a", Status: jobModel.JobStatusRunning}))
	got, found := jobStore.GetJob(ctx, "a")
	require.True(t, found)
	assert.Equal(t, jobModel.JobStatusRunning, got.Status)

	jobStore.DeleteJob(ctx, "a")
	_, found = jobStore.GetJob(ctx, "a")
	assert.False(t, found)
}
