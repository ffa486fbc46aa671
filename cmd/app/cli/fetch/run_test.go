package fetch

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/fx/fxtest"

	"exusiai.dev/statsboard/internal/app/appconfig"
	"exusiai.dev/statsboard/internal/repo"
	"exusiai.dev/statsboard/internal/service"
	"exusiai.dev/statsboard/internal/view"
)

const samplePayload = `{"row_count":1200,"avg_price":899.5,"top_stores":[{"store_name":"Main St","count":120}]}`

func newDeps(t *testing.T, status int) CommandDeps {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		_, _ = io.WriteString(w, samplePayload)
	}))
	t.Cleanup(srv.Close)

	conf := &appconfig.Config{ConfigSpec: appconfig.ConfigSpec{
		UpstreamURL: srv.URL,
		StatsPath:   "/api/stats",
	}}
	lc := fxtest.NewLifecycle(t)
	loader := service.NewLoader(repo.NewStats(conf, &http.Client{Timeout: 2 * time.Second}), lc)
	lc.RequireStart()
	t.Cleanup(lc.RequireStop)

	return CommandDeps{Loader: loader}
}

func TestRunText(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &out, newDeps(t, http.StatusOK), false))

	assert.Contains(t, out.String(), "Fridge Sales Stats")
	assert.Contains(t, out.String(), "1200")
	assert.Contains(t, out.String(), "899.5")
	assert.Contains(t, out.String(), "Main St")
	assert.NotContains(t, out.String(), "Error:")
}

func TestRunJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &out, newDeps(t, http.StatusOK), true))

	assert.Equal(t, int64(1200), gjson.Get(out.String(), "row_count").Int())
	assert.Equal(t, "Main St", gjson.Get(out.String(), "top_stores.0.store_name").String())
}

func TestRunFailure(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), &out, newDeps(t, http.StatusServiceUnavailable), false)
	require.Error(t, err)

	var statusErr *repo.StatusError
	assert.True(t, errors.As(err, &statusErr))
	assert.Contains(t, err.Error(), "HTTP 503")

	assert.Contains(t, out.String(), "Rows")
	assert.Contains(t, out.String(), view.Placeholder)
	assert.Contains(t, out.String(), "Error: HTTP 503")
}

func TestRunFailureJSON(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), &out, newDeps(t, http.StatusBadGateway), true)
	require.Error(t, err)
	assert.Empty(t, out.String())
}
