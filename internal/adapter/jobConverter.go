package adapter

import (
	"fmt"
	"time"

	"github.com/estla/skillserver/internal/api"
	"github.com/estla/skillserver/internal/domain/jobModel"
)

func ToInitJobResponse(id string) api.InitJobResponse {
	return api.InitJobResponse{
		Id:        id,
		StatusURL: fmt.Sprintf("status/%s", id),
	}
}

func ToAPIResponse(job jobModel.Job) api.JobResponse {

	var errorPtr *api.JobOutgoingError
	if job.Error.Message != "" || job.Error.Code != 0 {
		errorPtr = &api.JobOutgoingError{
			Code:    job.Error.Code,
			Message: job.Error.Message,
			Retry:   job.Error.Retry,
		}
	}

	result := api.Result{
		Status:      string(job.Status),
		Step:        string(job.CurrentStep),
		ReloadStats: ToReloadResponse(job),
	}

	return api.JobResponse{
		Id:        job.Id,
		StartTime: job.CreatedTime,
		EndTime:   job.EndTime,
		Error:     errorPtr,
		Result:    result,
	}
}

// ToReloadResponse is nil until the job has finished successfully.
func ToReloadResponse(job jobModel.Job) *api.ReloadResponse {
	if job.Status != jobModel.JobStatusComplete {
		return nil
	}
	return &api.ReloadResponse{
		Documents:   job.Result.Documents,
		Failed:      job.Result.Failed,
		PerCategory: job.Result.PerCategory,
		Generation:  job.Result.Generation,
		ElapsedMs:   job.Result.ElapsedMs,
	}
}

func BadRequest(id string, error string, code int) api.JobResponse {
	return api.JobResponse{
		Id:        id,
		StartTime: time.Time{},
		EndTime:   time.Time{},
		Result: api.Result{
			Status: string(api.JobStatusError),
		},
		Error: &api.JobOutgoingError{
			Code:    code,
			Message: error,
			Retry:   false,
		},
	}
}
