// Package pricing provides catalog retrieval adapters.
// A source fetches the raw region pricing document; parsing and validation
// stay in core/catalog. Retrieval is one-shot with no retry or backoff.
package pricing

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cloud-quote/internal/errors"
)

// Source fetches a raw region pricing document by filename
type Source interface {
	Fetch(ctx context.Context, filename string) ([]byte, error)
}

// NewSource builds a source from a config location: http(s) URLs get an
// HTTP source, anything else is treated as a local directory.
func NewSource(location string, timeout time.Duration) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return &HTTPSource{
			base: strings.TrimRight(location, "/"),
			client: &http.Client{
				Timeout: timeout,
			},
		}
	}
	return &DirSource{dir: location}
}

// HTTPSource fetches pricing documents over HTTP
type HTTPSource struct {
	base   string
	client *http.Client
}

// NewHTTPSource creates an HTTP source with the given client
func NewHTTPSource(base string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{base: strings.TrimRight(base, "/"), client: client}
}

// Fetch issues a single GET for the region file
func (s *HTTPSource) Fetch(ctx context.Context, filename string) ([]byte, error) {
	target := s.base + "/" + url.PathEscape(filename)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, errors.FetchFailure(fmt.Sprintf("building request for %s", filename), err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.FetchFailure(fmt.Sprintf("fetching %s", filename), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errors.Newf(errors.TypeFetchFailure, "file not found: %s is not available at %s", filename, s.base)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf(errors.TypeFetchFailure, "HTTP error %d when fetching %s", resp.StatusCode, filename)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.FetchFailure(fmt.Sprintf("reading %s", filename), err)
	}
	return data, nil
}

// DirSource fetches pricing documents from a local directory
type DirSource struct {
	dir string
}

// NewDirSource creates a directory-backed source
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

// Fetch reads the region file from the directory
func (s *DirSource) Fetch(ctx context.Context, filename string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.FetchFailure(fmt.Sprintf("fetching %s", filename), err)
	}

	data, err := os.ReadFile(filepath.Join(s.dir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.TypeFetchFailure, "file not found: ensure %s is present in %s", filename, s.dir)
		}
		return nil, errors.FetchFailure(fmt.Sprintf("reading %s", filename), err)
	}
	return data, nil
}
