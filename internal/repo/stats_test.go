package repo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exusiai.dev/statsboard/internal/app/appconfig"
)

func newTestRepo(t *testing.T, handler http.HandlerFunc) *Stats {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	conf := &appconfig.Config{ConfigSpec: appconfig.ConfigSpec{
		UpstreamURL:        srv.URL,
		StatsPath:          "/api/stats",
		UpstreamHealthPath: "/api/healthz",
	}}
	return NewStats(conf, &http.Client{Timeout: 2 * time.Second})
}

func TestFetch(t *testing.T) {
	var gotPath, gotMethod, gotAccept string
	r := newTestRepo(t, func(w http.ResponseWriter, req *http.Request) {
		gotPath, gotMethod, gotAccept = req.URL.Path, req.Method, req.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"row_count":1200,"avg_price":899.5,"top_brands":[{"brand":"Acme","count":300},{"brand":"Zeta","count":10}]}`))
	})

	stats, err := r.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/api/stats", gotPath)
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "application/json", gotAccept)

	assert.Equal(t, "1200", string(stats.RowCount))
	assert.Equal(t, "899.5", string(stats.AvgPrice))
	assert.Nil(t, stats.MinPrice, "absent fields stay nil")
	assert.Nil(t, stats.Sentiments)

	require.Len(t, stats.TopBrands, 2)
	assert.Equal(t, `"Acme"`, string(stats.TopBrands[0].Brand), "order is preserved")
	assert.Equal(t, `"Zeta"`, string(stats.TopBrands[1].Brand))
}

func TestFetchUnexpectedFieldTypes(t *testing.T) {
	r := newTestRepo(t, func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(`{"row_count":1200.0,"min_price":"199.99","avg_price":899.5}`))
	})

	stats, err := r.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "1200.0", string(stats.RowCount))
	assert.Equal(t, `"199.99"`, string(stats.MinPrice))
	assert.Equal(t, "899.5", string(stats.AvgPrice))
}

func TestFetchTrailingContent(t *testing.T) {
	r := newTestRepo(t, func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(`{"row_count":1200} not json`))
	})

	stats, err := r.Fetch(context.Background())
	assert.Nil(t, stats)

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.True(t, errors.Is(err, ErrInvalidDocument))
}

func TestFetchBodyTooLarge(t *testing.T) {
	r := newTestRepo(t, func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(`{"top_brands":[`))
		_, _ = w.Write([]byte(strings.Repeat(`{"brand":"x","count":1},`, bodyLimit/24+1)))
		_, _ = w.Write([]byte(`{}]}`))
	})

	_, err := r.Fetch(context.Background())
	assert.True(t, errors.Is(err, ErrBodyTooLarge))
}

func TestFetchStatusError(t *testing.T) {
	r := newTestRepo(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"row_count":1}`))
	})

	stats, err := r.Fetch(context.Background())
	assert.Nil(t, stats)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
	assert.Equal(t, "HTTP 503", err.Error())
}

func TestFetchDecodeError(t *testing.T) {
	r := newTestRepo(t, func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	})

	_, err := r.Fetch(context.Background())

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Contains(t, err.Error(), "decode stats")
}

func TestFetchEmptyBody(t *testing.T) {
	r := newTestRepo(t, func(w http.ResponseWriter, req *http.Request) {})

	_, err := r.Fetch(context.Background())

	var decodeErr *DecodeError
	assert.True(t, errors.As(err, &decodeErr))
}

func TestFetchTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	conf := &appconfig.Config{ConfigSpec: appconfig.ConfigSpec{UpstreamURL: url, StatsPath: "/api/stats"}}
	r := NewStats(conf, &http.Client{Timeout: time.Second})

	_, err := r.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request stats")

	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
}

func TestPing(t *testing.T) {
	var unhealthy atomic.Bool
	r := newTestRepo(t, func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path != "/api/healthz" || unhealthy.Load() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	assert.NoError(t, r.Ping(context.Background()))

	unhealthy.Store(true)
	assert.EqualError(t, r.Ping(context.Background()), "HTTP 502")
}
