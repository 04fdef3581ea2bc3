package integrations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pydex/pydex/pkg/cache"
	"github.com/pydex/pydex/pkg/httputil"
)

func testClient(t *testing.T, headers map[string]string) *Client {
	t.Helper()
	backend, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { backend.Close() })
	return NewClient(backend, "test:", time.Hour, headers)
}

func TestClientGet(t *testing.T) {
	type response struct {
		Message string `json:"message"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		json.NewEncoder(w).Encode(response{Message: "hello"})
	}))
	defer server.Close()

	client := testClient(t, nil)

	var resp response
	if err := client.Get(context.Background(), server.URL, &resp); err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if resp.Message != "hello" {
		t.Errorf("Get() message = %q, want %q", resp.Message, "hello")
	}
}

func TestClientGetWithHeaders(t *testing.T) {
	var gotCustom, gotDefault, gotOverride string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCustom = r.Header.Get("X-Custom")
		gotDefault = r.Header.Get("X-Default")
		gotOverride = r.Header.Get("X-Override")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer server.Close()

	client := testClient(t, map[string]string{"X-Default": "default", "X-Override": "default"})

	var resp map[string]string
	err := client.GetWithHeaders(context.Background(), server.URL, map[string]string{
		"X-Custom":   "custom",
		"X-Override": "overridden",
	}, &resp)
	if err != nil {
		t.Fatalf("GetWithHeaders() error: %v", err)
	}
	if gotCustom != "custom" {
		t.Errorf("custom header = %q, want %q", gotCustom, "custom")
	}
	if gotDefault != "default" {
		t.Errorf("default header = %q, want %q", gotDefault, "default")
	}
	if gotOverride != "overridden" {
		t.Errorf("override header = %q, want %q", gotOverride, "overridden")
	}
}

func TestClientGetText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("# README\n"))
	}))
	defer server.Close()

	client := testClient(t, nil)

	text, err := client.GetText(context.Background(), server.URL, nil)
	if err != nil {
		t.Fatalf("GetText() error: %v", err)
	}
	if text != "# README\n" {
		t.Errorf("GetText() = %q", text)
	}
}

func TestClientGet404(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	client := testClient(t, nil)

	var resp map[string]string
	err := client.Get(context.Background(), server.URL, &resp)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestClientGet500(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := testClient(t, nil)

	var resp map[string]string
	err := client.Get(context.Background(), server.URL, &resp)
	if err == nil {
		t.Fatal("Get() should return error for 500")
	}
	var retryErr *httputil.RetryableError
	if !errors.As(err, &retryErr) {
		t.Errorf("Get() error should be RetryableError, got %T", err)
	}
}

func TestClientCached(t *testing.T) {
	client := testClient(t, nil)

	type testData struct {
		Value string `json:"value"`
	}

	fetchCount := 0
	fetch := func(v *testData) func() error {
		return func() error {
			fetchCount++
			v.Value = "fetched"
			return nil
		}
	}

	var first testData
	if err := client.Cached(context.Background(), "key", false, &first, fetch(&first)); err != nil {
		t.Fatalf("Cached() error: %v", err)
	}
	if fetchCount != 1 {
		t.Fatalf("fetch count = %d, want 1", fetchCount)
	}

	// Second call hits the cache
	var second testData
	if err := client.Cached(context.Background(), "key", false, &second, fetch(&second)); err != nil {
		t.Fatalf("Cached() error: %v", err)
	}
	if fetchCount != 1 {
		t.Errorf("fetch count = %d, want 1 (cache hit expected)", fetchCount)
	}
	if second.Value != "fetched" {
		t.Errorf("cached value = %q, want %q", second.Value, "fetched")
	}
}

func TestClientCachedRefresh(t *testing.T) {
	client := testClient(t, nil)

	fetchCount := 0
	var value string
	fetch := func() error {
		fetchCount++
		value = "fetched"
		return nil
	}

	for i := 0; i < 2; i++ {
		if err := client.Cached(context.Background(), "key", true, &value, fetch); err != nil {
			t.Fatalf("Cached() error: %v", err)
		}
	}
	if fetchCount != 2 {
		t.Errorf("fetch count = %d, want 2 (refresh bypasses cache)", fetchCount)
	}
}

func TestClientCachedFetchError(t *testing.T) {
	client := testClient(t, nil)

	var value string
	err := client.Cached(context.Background(), "key", false, &value, func() error {
		return ErrNotFound
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Cached() error = %v, want ErrNotFound", err)
	}
}

func TestCheckStatus(t *testing.T) {
	tests := []struct {
		name       string
		code       int
		wantErr    bool
		wantType   error
		isRetryErr bool
	}{
		{name: "200 OK", code: 200},
		{name: "404 Not Found", code: 404, wantErr: true, wantType: ErrNotFound},
		{name: "500 Internal Server Error", code: 500, wantErr: true, isRetryErr: true},
		{name: "502 Bad Gateway", code: 502, wantErr: true, isRetryErr: true},
		{name: "503 Service Unavailable", code: 503, wantErr: true, isRetryErr: true},
		{name: "400 Bad Request", code: 400, wantErr: true},
		{name: "403 rate limited", code: 403, wantErr: true, isRetryErr: true},
		{name: "429 Too Many Requests", code: 429, wantErr: true, isRetryErr: true},
		{name: "401 Unauthorized", code: 401, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkStatus(tt.code)
			if !tt.wantErr {
				if err != nil {
					t.Errorf("checkStatus() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("checkStatus() should return error")
			}
			if tt.wantType != nil && !errors.Is(err, tt.wantType) {
				t.Errorf("checkStatus() error = %v, want %v", err, tt.wantType)
			}
			if tt.isRetryErr {
				var retryErr *httputil.RetryableError
				if !errors.As(err, &retryErr) {
					t.Errorf("checkStatus() error should be RetryableError, got %T", err)
				}
			}
		})
	}
}

func TestNormalizePkgName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase", "Package", "package"},
		{"underscore to dash", "my_package", "my-package"},
		{"trim spaces", "  package  ", "package"},
		{"combined", "  My_Package  ", "my-package"},
		{"empty", "", ""},
		{"already normalized", "my-package", "my-package"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePkgName(tt.input); got != tt.want {
				t.Errorf("NormalizePkgName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeRepoURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"https url", "https://github.com/user/repo", "https://github.com/user/repo"},
		{"with .git suffix", "https://github.com/user/repo.git", "https://github.com/user/repo"},
		{"git@ to https", "git@github.com:user/repo", "https://github.com/user/repo"},
		{"git:// to https", "git://github.com/user/repo", "https://github.com/user/repo"},
		{"git+ prefix", "git+https://github.com/user/repo", "https://github.com/user/repo"},
		{"combined", "git+git@github.com:user/repo.git", "https://github.com/user/repo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeRepoURL(tt.input); got != tt.want {
				t.Errorf("NormalizeRepoURL(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractRepoURL(t *testing.T) {
	re := GitHubRepoRE

	tests := []struct {
		name      string
		urls      map[string]string
		homepage  string
		wantOwner string
		wantRepo  string
		wantOK    bool
	}{
		{
			name:      "source key preferred",
			urls:      map[string]string{"Source": "https://github.com/psf/requests", "Homepage": "https://requests.readthedocs.io"},
			wantOwner: "psf",
			wantRepo:  "requests",
			wantOK:    true,
		},
		{
			name:      "homepage fallback",
			urls:      map[string]string{},
			homepage:  "https://github.com/pallets/flask",
			wantOwner: "pallets",
			wantRepo:  "flask",
			wantOK:    true,
		},
		{
			name:      "git suffix trimmed",
			urls:      map[string]string{"Repository": "https://github.com/user/repo.git"},
			wantOwner: "user",
			wantRepo:  "repo",
			wantOK:    true,
		},
		{
			name:   "sponsors link skipped",
			urls:   map[string]string{"Funding": "https://github.com/sponsors/user"},
			wantOK: false,
		},
		{
			name:   "no match",
			urls:   map[string]string{"Homepage": "https://example.com"},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, ok := ExtractRepoURL(re, tt.urls, tt.homepage)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if owner != tt.wantOwner || repo != tt.wantRepo {
				t.Errorf("got %s/%s, want %s/%s", owner, repo, tt.wantOwner, tt.wantRepo)
			}
		})
	}
}
