// Package httpsource fetches the cleaned player table over HTTP.
package httpsource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/domain/players"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/providers"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/tabular"
)

const defaultHTTPTimeout = 30 * time.Second

// Config controls how the table is requested.
type Config struct {
	URL        string
	Token      string
	HTTPClient *http.Client
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Source downloads a CSV table and decodes it into records.
type Source struct {
	url        string
	token      string
	httpClient httpDoer
}

// New constructs a Source from cfg.
func New(cfg Config) *Source {
	return &Source{
		url:        strings.TrimSpace(cfg.URL),
		token:      cfg.Token,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

// FetchRecords requests the table and decodes it. Transport failures and 5xx
// responses wrap providers.ErrSourceUnavailable so callers may retry them.
func (s *Source) FetchRecords(ctx context.Context) ([]players.Record, error) {
	if s.url == "" {
		return nil, fmt.Errorf("%w: no url configured", providers.ErrSourceUnavailable)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/csv")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", providers.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		err := fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		if resp.StatusCode >= http.StatusInternalServerError {
			return nil, fmt.Errorf("%w: %v", providers.ErrSourceUnavailable, err)
		}
		return nil, err
	}

	records, err := tabular.DecodeRecords(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.url, err)
	}
	return records, nil
}
