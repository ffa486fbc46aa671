package infra

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"exusiai.dev/statsboard/internal/app/appconfig"
)

// Upstream provides the HTTP client used to talk to the stats backend.
func Upstream(conf *appconfig.Config) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = 4
	transport.IdleConnTimeout = 90 * time.Second

	log.Info().
		Str("evt.name", "infra.upstream.init").
		Str("url", conf.StatsURL()).
		Dur("timeout", conf.UpstreamTimeout).
		Msg("infra: upstream: stats backend client configured")

	return &http.Client{
		Transport: transport,
		Timeout:   conf.UpstreamTimeout,
	}
}
