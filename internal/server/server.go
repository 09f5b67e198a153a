package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"sync"

	"github.com/estla/skillserver/internal/adapter/utils"
	"github.com/estla/skillserver/internal/config"
	"github.com/estla/skillserver/internal/handlers"
	"github.com/estla/skillserver/internal/middleware"
	"github.com/estla/skillserver/pkg/logger_i"
	"github.com/go-chi/chi/v5"
	"github.com/spf13/afero"
)

var (
	server  *http.Server
	_logger *logger_i.Logger
)

type ShutdownParams struct {
	GracefulShutdown chan os.Signal
	StopExecution    chan bool
	WorkerStop       chan bool
	Group            *sync.WaitGroup
	CloseServices    context.CancelFunc
}

// Routes is everything the router needs to mount.
type Routes struct {
	Handler     *handlers.Handler
	Middleware  *middleware.Chain
	MCP         http.Handler
	Fs          afero.Fs
	ContentRoot string
}

func RegisterRoutes(r chi.Router, routes Routes) {
	h := routes.Handler
	m := routes.Middleware

	r.Post("/api/welcome", m.Skill(h.WelcomeHandler))
	r.Post("/api/fallback", m.Skill(h.FallbackHandler))
	r.Get("/health", m.Skill(handlers.HealthHandler))

	r.Get("/api/documents", m.Public(h.ListDocumentsHandler))
	r.Get("/api/documents/{title}", m.Public(h.GetDocumentHandler))
	r.Get("/api/search", m.Public(h.SearchDocumentsHandler))
	r.Get("/api/search/content", m.Public(h.SearchContentHandler))
	r.Get("/api/index", m.Public(h.IndexStatsHandler))

	r.Post("/api/reload", m.Admin(h.ReloadHandler))
	r.Get("/status/{id}", m.Admin(h.GetStatusHandler))

	if routes.MCP != nil {
		r.Handle("/mcp", m.Public(routes.MCP.ServeHTTP))
	}

	if routes.Fs != nil {
		static := http.StripPrefix(config.StaticPrefix, http.FileServer(afero.NewHttpFs(routes.Fs).Dir(routes.ContentRoot)))
		r.Handle(config.StaticPrefix+"/*", static)
	}
}

func CreateServer(listenAddr string, routes Routes) {
	_logger = logger_i.NewLogger("Server")

	r := utils.GetRouter()
	RegisterRoutes(r.Router, routes)

	server = &http.Server{
		Addr:         listenAddr,
		Handler:      r.Router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	_logger.Info("Server is listening at", "address", listenAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		_logger.Error("Server crashed", "error", err.Error(), "addr", listenAddr)
	}
}

func ShutDownHandler(shutdownParams ShutdownParams) {
	state := <-shutdownParams.GracefulShutdown
	_logger = logger_i.NewLogger("Server")
	_logger.Info("Server is shutting down", "signal", state.String())

	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownContextTimeout)
	defer cancel()

	done := make(chan struct{})

	go func() {
		if server != nil {
			server.SetKeepAlivesEnabled(false)
			if err := server.Shutdown(ctx); err != nil {
				_logger.Error("Could not shutdown gracefully", "error", err)
			}
		}

		close(shutdownParams.WorkerStop)
		shutdownParams.CloseServices()
		shutdownParams.Group.Wait()
		close(shutdownParams.StopExecution)
		close(done)
	}()

	select {
	case <-done:
		_logger.Info("Gracefully shut down")
	case <-ctx.Done():
		_logger.Info("Force Shut down")
		os.Exit(1)
	}
}
