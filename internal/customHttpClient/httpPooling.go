package customHttpClient

import (
	"net/http"
	"sync"

	"github.com/estla/skillserver/internal/config"
)

var (
	customTransport = &http.Transport{
		MaxIdleConns:        config.MaxIdleConns,
		MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
		IdleConnTimeout:     config.IdleConnTimeout,
	}
	client *http.Client
	once   sync.Once
)

// GetClient returns the shared outbound client used for self pings.
func GetClient() *http.Client {
	once.Do(func() {
		client = &http.Client{
			Transport: customTransport,
			Timeout:   config.KeepAliveTimeout,
		}
	})
	return client
}
