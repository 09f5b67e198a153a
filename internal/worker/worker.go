package worker

import (
	"sync"

	"github.com/estla/skillserver/internal/content"
	"github.com/estla/skillserver/internal/job"
	"github.com/estla/skillserver/internal/metrics"
	"github.com/estla/skillserver/pkg/logger_i"
)

var (
	_jobService       *job.Service
	_contentService   content.Service
	stopWorkerChannel chan bool
	workerWaitGroup   *sync.WaitGroup
	logger            *logger_i.Logger
)

func InitServices(jobService *job.Service, contentService content.Service) {
	_jobService = jobService
	_contentService = contentService
}

// InitReloadWorker starts the goroutine that runs reload jobs one at a time.
func InitReloadWorker(stopWorkerChan chan bool, waitGroup *sync.WaitGroup) {
	stopWorkerChannel = stopWorkerChan
	workerWaitGroup = waitGroup
	logger = logger_i.NewLogger("ReloadWorker")
	logger.Info("Starting reload worker")

	workerWaitGroup.Add(1)
	go worker()
}

func worker() {
	defer workerWaitGroup.Done()
	for {
		select {
		case currentJob := <-_jobService.JobChannel:
			metrics.DecrementJobsInQueue()
			executeJob(currentJob)

		case <-stopWorkerChannel:
			logger.Info("Stop worker signal received")
			return
		}
	}
}
