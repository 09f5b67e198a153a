package jobModel

import (
	"context"
	"time"
)

type JobStatus string
type InternalStatus string

type JobType string

const (
	JobStatusQueued   JobStatus = "QUEUED"
	JobStatusRunning  JobStatus = "RUNNING"
	JobStatusComplete JobStatus = "COMPLETE"
	JobStatusError    JobStatus = "Error"

	ReloadInit     InternalStatus = "ReloadInit"
	ReloadScanning InternalStatus = "ReloadScanning"
	Error          InternalStatus = "Error"
	Complete       InternalStatus = "Complete"

	JobTypeReload JobType = "Reload"
)

// Job tracks one asynchronous index rebuild.
type Job struct {
	Id          string         `json:"id"`
	TraceId     string         `json:"trace_id"`
	JobType     JobType        `json:"job_type"`
	Result      ReloadResult   `json:"result"`
	Error       JobError       `json:"error,omitempty"`
	CreatedTime time.Time      `json:"created_time"`
	EndTime     time.Time      `json:"end_time,omitempty"`
	Status      JobStatus      `json:"status"`
	CurrentStep InternalStatus `json:"current_step"`
}

type JobError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Retry   bool   `json:"retry"`
}

type ReloadResult struct {
	Documents   int            `json:"documents"`
	Failed      int            `json:"failed"`
	PerCategory map[string]int `json:"per_category,omitempty"`
	Generation  uint64         `json:"generation,omitempty"`
	ElapsedMs   int64          `json:"elapsed_ms,omitempty"`
}

type JobStore interface {
	GetJob(ctx context.Context, jobId string) (Job, bool)
	SaveJob(ctx context.Context, job Job) error
	DeleteJob(ctx context.Context, jobID string)
}
