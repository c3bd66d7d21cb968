package fetcher

//go:generate go run go.uber.org/mock/mockgen -source=./fetcher.go -destination=./mocks/fetcher_mock.go -package=mocks

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	requestTimeout  = 10 * time.Second
	maxResponseSize = 2 << 20 // 2 MiB
)

// Fetcher retrieves external HTML referenced by a template row.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

type httpFetcher struct {
	client *http.Client
}

func New() Fetcher {
	return &httpFetcher{
		client: &http.Client{Timeout: requestTimeout},
	}
}

func (f *httpFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build template request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch template: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch template: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", fmt.Errorf("failed to read template body: %w", err)
	}

	return string(body), nil
}
