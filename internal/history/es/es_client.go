package es

import (
	"net/http"

	"github.com/elastic/go-elasticsearch/v8"
)

const defaultMaxRetries = 3

type ClientConfig struct {
	Addresses []string
	IndexName string
	Username  string
	Password  string
	// MaxRetries <= 0 uses defaultMaxRetries.
	MaxRetries int
}

// newClient builds a typed client that retries on overload responses.
// Credentials are sent only when both parts are set.
func newClient(config ClientConfig) (*elasticsearch.TypedClient, error) {
	retries := config.MaxRetries
	if retries <= 0 {
		retries = defaultMaxRetries
	}

	cfg := elasticsearch.Config{
		Addresses:     config.Addresses,
		MaxRetries:    retries,
		RetryOnStatus: []int{http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout, http.StatusTooManyRequests},
	}
	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	return elasticsearch.NewTypedClient(cfg)
}
