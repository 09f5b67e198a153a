package worker

import (
	"context"
	"net/http"
	"time"

	"github.com/estla/skillserver/internal/config"
	jobmodel "github.com/estla/skillserver/internal/domain/jobModel"
	"github.com/estla/skillserver/internal/metrics"
)

func executeJob(job jobmodel.Job) {
	ctxTrace := context.WithValue(context.Background(), config.TRACE_ID_KEY, job.TraceId)
	ctx, cancel := context.WithTimeout(ctxTrace, config.ReloadJobTimeout)
	defer cancel()
	log := logger.With("traceId", job.TraceId, "jobId", job.Id)
	log.Debug("Processing reload job")

	job.CurrentStep = jobmodel.ReloadScanning
	job = saveJobState(ctx, job, jobmodel.JobStatusRunning)

	result, err := _contentService.Reload(ctx)
	job.EndTime = time.Now()
	if err != nil {
		log.Error("Reload failed", "error", err)
		job.CurrentStep = jobmodel.Error
		job.Error = jobmodel.JobError{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
			Retry:   true,
		}
		saveJobState(ctx, job, jobmodel.JobStatusError)
		metrics.CaptureReloadJob(string(jobmodel.JobStatusError))
		return
	}

	perCategory := make(map[string]int, len(result.Stats.PerCategory))
	for c, n := range result.Stats.PerCategory {
		perCategory[string(c)] = n
	}
	job.Result = jobmodel.ReloadResult{
		Documents:   result.Stats.Total,
		Failed:      result.Stats.Failed,
		PerCategory: perCategory,
		Generation:  result.Generation,
		ElapsedMs:   result.Stats.Elapsed.Milliseconds(),
	}
	job.CurrentStep = jobmodel.Complete
	saveJobState(ctx, job, jobmodel.JobStatusComplete)
	metrics.CaptureReloadJob(string(jobmodel.JobStatusComplete))
	log.Info("Reload job finished", "documents", job.Result.Documents, "generation", job.Result.Generation)
}

func saveJobState(ctx context.Context, job jobmodel.Job, jobStatus jobmodel.JobStatus) jobmodel.Job {
	job.Status = jobStatus
	if err := _jobService.JobStore.SaveJob(ctx, job); err != nil {
		logger.Error("Failed to update job state", "jobId", job.Id, "error", err)
	}
	return job
}
