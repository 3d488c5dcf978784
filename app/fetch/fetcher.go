package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html/charset"
)

// Fetcher retrieves single documents over HTTP. Timeout and User-Agent
// live on the shared client.
type Fetcher struct {
	http *resty.Client
}

func NewFetcher(httpClient *resty.Client) *Fetcher {
	return &Fetcher{http: httpClient}
}

// Run fetches url and decodes the body to UTF-8, best effort: unknown or
// broken encodings degrade to replacement characters rather than
// failing the fetch.
func (f *Fetcher) Run(ctx context.Context, url string) (string, error) {
	resp, err := f.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("HTTP error fetching %s: %d", url, resp.StatusCode())
	}

	return decode(resp.Body(), resp.Header().Get("Content-Type")), nil
}

func decode(body []byte, contentType string) string {
	reader, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return strings.ToValidUTF8(string(body), "�")
	}

	decoded, err := io.ReadAll(reader)
	if err != nil {
		return strings.ToValidUTF8(string(body), "�")
	}

	return strings.ToValidUTF8(string(decoded), "�")
}
