package job

import (
	"context"
	"errors"
	"time"

	"github.com/estla/skillserver/internal/domain/jobModel"
	"github.com/estla/skillserver/internal/metrics"
	"github.com/google/uuid"
)

var ErrQueueFull = errors.New("reload queue is full")

type Service struct {
	JobChannel chan jobModel.Job
	JobStore   jobModel.JobStore
}

type ServiceConfig struct {
	JobChannel chan jobModel.Job
	JobStore   jobModel.JobStore
}

func InitJobService(cfg ServiceConfig) *Service {
	return &Service{
		JobChannel: cfg.JobChannel,
		JobStore:   cfg.JobStore,
	}
}

// EnqueueReload records a queued reload job and hands it to the worker.
// It does not block: a full queue is reported as ErrQueueFull.
func (s *Service) EnqueueReload(ctx context.Context, traceId string) (jobModel.Job, error) {
	newJob := jobModel.Job{
		Id:          uuid.New().String(),
		TraceId:     traceId,
		JobType:     jobModel.JobTypeReload,
		CreatedTime: time.Now(),
		Status:      jobModel.JobStatusQueued,
		CurrentStep: jobModel.ReloadInit,
	}
	if err := s.JobStore.SaveJob(ctx, newJob); err != nil {
		return jobModel.Job{}, err
	}

	select {
	case s.JobChannel <- newJob:
		metrics.IncrementJobsInQueue()
		return newJob, nil
	default:
		s.JobStore.DeleteJob(ctx, newJob.Id)
		return jobModel.Job{}, ErrQueueFull
	}
}

func (s *Service) GetJob(ctx context.Context, id string) (jobModel.Job, bool) {
	if id == "" {
		return jobModel.Job{}, false
	}
	return s.JobStore.GetJob(ctx, id)
}
