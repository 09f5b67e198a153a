package worker

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/estla/skillserver/internal/metrics"
	"github.com/estla/skillserver/pkg/logger_i"
)

// StartKeepAlive pings healthURL every interval until ctx is done so the
// hosting platform does not idle the service. Failures are only logged.
func StartKeepAlive(ctx context.Context, healthURL string, interval time.Duration, client *http.Client, wg *sync.WaitGroup) {
	log := logger_i.NewLogger("KeepAlive")
	log.Info("Keep-alive enabled", "url", healthURL, "interval", interval)

	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Info("Keep-alive stopped")
				return
			case <-ticker.C:
				if err := ping(ctx, client, healthURL); err != nil {
					metrics.CaptureKeepAlive("error")
					log.Warn("Keep-alive ping failed", "url", healthURL, "error", err)
					continue
				}
				metrics.CaptureKeepAlive("ok")
				log.Debug("Keep-alive ping sent", "url", healthURL)
			}
		}
	}()
}

func ping(ctx context.Context, client *http.Client, healthURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, healthURL, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("health endpoint returned %d", resp.StatusCode)
	}
	return nil
}
