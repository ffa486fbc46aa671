package repo

import (
	"context"
	"io"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"exusiai.dev/statsboard/internal/app/appconfig"
	"exusiai.dev/statsboard/internal/model"
)

const (
	// drainLimit caps how much of an error body is read before the connection is reused.
	drainLimit = 64 << 10

	// bodyLimit caps the size of an accepted stats document.
	bodyLimit = 8 << 20
)

var (
	ErrInvalidDocument = errors.New("body is not a single JSON document")
	ErrBodyTooLarge    = errors.New("body exceeds size limit")
)

// Stats reads the precomputed statistics document from the stats backend.
type Stats struct {
	client    *http.Client
	statsURL  string
	healthURL string
}

func NewStats(conf *appconfig.Config, client *http.Client) *Stats {
	return &Stats{
		client:    client,
		statsURL:  conf.StatsURL(),
		healthURL: conf.HealthURL(),
	}
}

// Fetch issues a single GET to the stats endpoint. A non-2xx answer yields a
// *StatusError regardless of the body. A body that is not exactly one JSON
// object yields a *DecodeError; the types of the fields inside are not checked.
func (r *Stats) Fetch(ctx context.Context) (*model.Stats, error) {
	resp, err := r.get(ctx, r.statsURL)
	if err != nil {
		return nil, errors.Wrap(err, "request stats")
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, bodyLimit+1))
	if err != nil {
		return nil, errors.Wrap(err, "read stats")
	}
	if len(body) > bodyLimit {
		return nil, &DecodeError{Err: ErrBodyTooLarge}
	}
	if !json.Valid(body) {
		return nil, &DecodeError{Err: ErrInvalidDocument}
	}

	var stats model.Stats
	if err := json.Unmarshal(body, &stats); err != nil {
		return nil, &DecodeError{Err: err}
	}

	return &stats, nil
}

// Ping checks that the stats backend answers its health endpoint.
func (r *Stats) Ping(ctx context.Context) error {
	resp, err := r.get(ctx, r.healthURL)
	if err != nil {
		return errors.Wrap(err, "request health")
	}
	defer resp.Body.Close()

	return checkStatus(resp)
}

func (r *Stats) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	return r.client.Do(req)
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, drainLimit))
	return &StatusError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
	}
}
