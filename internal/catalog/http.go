package catalog

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alexanderramin/cursada/internal/domain"
)

// maxFileBytes caps a single data file download.
const maxFileBytes = 64 << 20

// HTTPLoader fetches {BaseURL}/{term}/{file} for each data file.
type HTTPLoader struct {
	baseURL  string
	timeout  time.Duration
	http     *http.Client
	observer Observer
}

// NewHTTPLoader creates a Loader for a static data host. A zero timeout
// disables the per-load deadline.
func NewHTTPLoader(baseURL string, timeout time.Duration, observer Observer) *HTTPLoader {
	return &HTTPLoader{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observerOrNoop(observer),
	}
}

func (l *HTTPLoader) Load(ctx context.Context, term string) (*domain.Catalog, error) {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}
	return loadAll(ctx, "http", term, l.fetch, l.observer)
}

// FileURL returns the URL of one data file of a term.
func (l *HTTPLoader) FileURL(term, file string) string {
	return l.baseURL + "/" + url.PathEscape(term) + "/" + file
}

func (l *HTTPLoader) fetch(ctx context.Context, term, file string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.FileURL(term, file), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFileBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return body, nil
}
