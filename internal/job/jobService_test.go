package job

import (
	"context"
	"testing"

	"github.com/estla/skillserver/internal/data/store"
	"github.com/estla/skillserver/internal/domain/jobModel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnqueueReload(t *testing.T) {
	jobStore := store.InitInMemoryJobStore()
	svc := InitJobService(ServiceConfig{
		JobChannel: make(chan jobModel.Job, 1),
		JobStore:   jobStore,
	})
	ctx := context.Background()

	queued, err := svc.EnqueueReload(ctx, "trace-1")
	require.NoError(t, err)
	assert.NotEmpty(t, queued.Id)
	assert.Equal(t, jobModel.JobStatusQueued, queued.Status)
	assert.Equal(t, jobModel.JobTypeReload, queued.JobType)

	stored, found := svc.GetJob(ctx, queued.Id)
	require.True(t, found)
	assert.Equal(t, "trace-1", stored.TraceId)

	received := <-svc.JobChannel
	assert.Equal(t, queued.Id, received.Id)
}

func TestEnqueueReload_QueueFull(t *testing.T) {
	jobStore := store.InitInMemoryJobStore()
	svc := InitJobService(ServiceConfig{
		JobChannel: make(chan jobModel.Job, 1),
		JobStore:   jobStore,
	})
	ctx := context.Background()

	_, err := svc.EnqueueReload(ctx, "a")
	require.NoError(t, err)

	_, err = svc.EnqueueReload(ctx, "b")
	assert.ErrorIs(t, err, ErrQueueFull)
}

func TestGetJob_EmptyId(t *testing.T) {
	svc := InitJobService(ServiceConfig{JobStore: store.InitInMemoryJobStore()})
	_, found := svc.GetJob(context.Background(), "")
	assert.False(t, found)
}
