package store

import (
	"context"

	"github.com/estla/skillserver/internal/config"
	"github.com/estla/skillserver/internal/data/redisStore"
	"github.com/estla/skillserver/internal/domain/jobModel"
	"github.com/estla/skillserver/pkg/logger_i"
)

const jobKeyPrefix = "reload-job:"

type RedisJobStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

// GetRedisJobStore returns nil when redis is unreachable.
func GetRedisJobStore(ctx context.Context, opts redisStore.ConnectionOptions) *RedisJobStore {
	s := redisStore.GetRedisStore(ctx, opts, config.RedisJobStore)
	if s == nil {
		return nil
	}
	return NewRedisJobStore(s)
}

func NewRedisJobStore(s *redisStore.Store) *RedisJobStore {
	return &RedisJobStore{
		store:  s,
		logger: logger_i.NewLogger("JobStore"),
	}
}

func (s *RedisJobStore) SaveJob(ctx context.Context, job jobModel.Job) error {
	log := s.logger.WithTrace(ctx, config.TRACE_ID_KEY).With("jobId", job.Id)
	err := s.store.SetJSON(ctx, jobKeyPrefix+job.Id, job, config.RedisJobStoreTTL)
	if err == nil {
		log.Debug("Saved job to Redis", "status", job.Status)
	}
	return err
}

func (s *RedisJobStore) GetJob(ctx context.Context, jobId string) (jobModel.Job, bool) {
	var job jobModel.Job
	log := s.logger.WithTrace(ctx, config.TRACE_ID_KEY).With("jobId", jobId)
	err := s.store.GetJSON(ctx, jobKeyPrefix+jobId, &job)
	if s.store.IsNil(err) {
		return jobModel.Job{}, false
	} else if err != nil {
		log.Error("Could not read job", "error", err)
		return jobModel.Job{}, false
	}
	return job, true
}

func (s *RedisJobStore) DeleteJob(ctx context.Context, jobID string) {
	if err := s.store.Del(ctx, jobKeyPrefix+jobID); err != nil {
		s.logger.Error("Error deleting job from Redis", "jobId", jobID, "error", err)
		return
	}
	s.logger.Debug("Job deleted from Redis", "jobId", jobID)
}
