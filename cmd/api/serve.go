package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/estla/skillserver/internal/config"
	"github.com/estla/skillserver/internal/content"
	"github.com/estla/skillserver/internal/content/search"
	"github.com/estla/skillserver/internal/customHttpClient"
	"github.com/estla/skillserver/internal/data/redisStore"
	"github.com/estla/skillserver/internal/data/store"
	"github.com/estla/skillserver/internal/domain/document"
	jobmodel "github.com/estla/skillserver/internal/domain/jobModel"
	"github.com/estla/skillserver/internal/handlers"
	"github.com/estla/skillserver/internal/job"
	"github.com/estla/skillserver/internal/mcptools"
	"github.com/estla/skillserver/internal/middleware"
	"github.com/estla/skillserver/internal/server"
	"github.com/estla/skillserver/internal/worker"
	"github.com/estla/skillserver/pkg/logger_i"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Build the index and serve the skill webhook",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		return serve(settings)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(settings config.Settings) error {
	logger_i.Init(settings.LogLevel, settings.Production)
	var logger = logger_i.NewLogger("main")

	folders, err := document.ParseCategoryFolders(settings.Categories)
	if err != nil {
		return err
	}

	jobChannel := make(chan jobmodel.Job, config.BufferLimit)
	stopWorkerChannel := make(chan bool)
	var workerWaitGroup sync.WaitGroup

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	jobStore, resultCache := openStores(serviceContext, settings, logger)

	fsys := afero.NewOsFs()
	contentService := content.NewService(content.ServiceConfig{
		Fs:       fsys,
		Root:     settings.ContentRoot,
		Folders:  folders,
		HostBase: settings.HostBase(),
		Workers:  settings.ExtractWorkers,
		Cache:    resultCache,
		Search:   search.DefaultOptions(),
	})
	defer contentService.Close()

	result, err := contentService.Reload(serviceContext)
	if err != nil {
		logger.Error("Initial index build failed", "error", err)
	} else {
		logger.Info("Initial index built", "documents", result.Stats.Total, "failed", result.Stats.Failed)
	}

	logger.Info("Starting job service")
	jobService := job.InitJobService(job.ServiceConfig{
		JobChannel: jobChannel,
		JobStore:   jobStore,
	})

	handler, err := handlers.NewHandler(contentService, jobService)
	if err != nil {
		return err
	}

	worker.InitServices(jobService, contentService)
	worker.InitReloadWorker(stopWorkerChannel, &workerWaitGroup)

	if settings.KeepAlive {
		worker.StartKeepAlive(serviceContext, settings.ExternalURL+"/health", settings.KeepAliveInterval, customHttpClient.GetClient(), &workerWaitGroup)
	} else {
		logger.Info("Keep-alive disabled, no external URL configured")
	}

	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	go server.ShutDownHandler(server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		WorkerStop:       stopWorkerChannel,
		Group:            &workerWaitGroup,
		CloseServices:    closeExternalServices,
	})
	go server.CreateServer(settings.ListenAddr, server.Routes{
		Handler: handler,
		Middleware: middleware.New(middleware.Config{
			AdminToken: settings.AdminToken,
			RateLimit:  settings.RateLimit,
			RateBurst:  settings.RateBurst,
		}),
		MCP:         mcptools.Handler(mcptools.NewServer(contentService)),
		Fs:          fsys,
		ContentRoot: settings.ContentRoot,
	})

	<-stopExecution
	logger.Info("Server stopped")
	return nil
}

// openStores prefers redis and falls back to in-process stores when redis is
// disabled or unreachable.
func openStores(ctx context.Context, settings config.Settings, logger *logger_i.Logger) (jobmodel.JobStore, store.ResultCache) {
	if settings.RedisDisabled {
		logger.Info("Redis disabled, using in-memory stores")
		return store.InitInMemoryJobStore(), store.InitInMemoryResultCache(config.RedisResultCacheTTL)
	}

	opts := redisStore.ConnectionOptions{Addr: settings.RedisAddr, Password: settings.RedisPassword}
	redisJobs := store.GetRedisJobStore(ctx, opts)
	redisCache := store.GetRedisResultCache(ctx, opts)
	if redisJobs != nil && redisCache != nil {
		return redisJobs, redisCache
	}

	logger.Error("Redis stores are offline, using in-memory stores", "addr", settings.RedisAddr)
	return store.InitInMemoryJobStore(), store.InitInMemoryResultCache(config.RedisResultCacheTTL)
}
