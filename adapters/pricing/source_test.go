package pricing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cloud-quote/internal/errors"
)

func TestHTTPSourceFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/us.json":
			w.Write([]byte(`{"entity":"US"}`))
		case "/eu.json":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL, srv.Client())

	data, err := src.Fetch(context.Background(), "us.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `{"entity":"US"}` {
		t.Errorf("body = %q", data)
	}

	if _, err := src.Fetch(context.Background(), "jp.json"); !errors.IsType(err, errors.TypeFetchFailure) {
		t.Errorf("404 error = %v, want FetchFailure", err)
	}
	if _, err := src.Fetch(context.Background(), "eu.json"); !errors.IsType(err, errors.TypeFetchFailure) {
		t.Errorf("500 error = %v, want FetchFailure", err)
	}
}

func TestHTTPSourceNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // gone before the request

	src := NewHTTPSource(srv.URL, &http.Client{Timeout: time.Second})
	if _, err := src.Fetch(context.Background(), "us.json"); !errors.IsType(err, errors.TypeFetchFailure) {
		t.Errorf("network error = %v, want FetchFailure", err)
	}
}

func TestDirSourceFetch(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "us.json"), []byte(`{}`), 0644); err != nil {
		t.Fatal(err)
	}

	src := NewDirSource(dir)

	data, err := src.Fetch(context.Background(), "us.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `{}` {
		t.Errorf("body = %q", data)
	}

	if _, err := src.Fetch(context.Background(), "missing.json"); !errors.IsType(err, errors.TypeFetchFailure) {
		t.Errorf("missing file error = %v, want FetchFailure", err)
	}
}

func TestDirSourceCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := NewDirSource(t.TempDir())
	if _, err := src.Fetch(ctx, "us.json"); !errors.IsType(err, errors.TypeFetchFailure) {
		t.Errorf("cancelled context error = %v, want FetchFailure", err)
	}
}

func TestNewSourceSelection(t *testing.T) {
	if _, ok := NewSource("https://pricing.example.com/data", time.Second).(*HTTPSource); !ok {
		t.Error("https location must build an HTTPSource")
	}
	if _, ok := NewSource("/var/pricing", time.Second).(*DirSource); !ok {
		t.Error("path location must build a DirSource")
	}
}
