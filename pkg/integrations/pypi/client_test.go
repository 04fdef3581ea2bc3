package pypi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pydex/pydex/pkg/cache"
	"github.com/pydex/pydex/pkg/integrations"
)

func TestClient_FetchPackage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/flask/json" {
			resp := apiResponse{
				Info: apiInfo{
					Name:                   "Flask",
					Version:                "2.0.0",
					Summary:                "A micro web framework",
					Description:            "# Flask\n\n```python\nfrom flask import Flask\n```\n",
					DescriptionContentType: "text/markdown; charset=UTF-8",
					License:                "BSD-3-Clause",
					RequiresDist:           []string{"click>=7.0", "werkzeug>=2.0"},
					ProjectURLs: map[string]any{
						"Source": "https://github.com/pallets/flask",
					},
					Author: "Armin Ronacher",
				},
			}
			json.NewEncoder(w).Encode(resp)
		} else {
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	c := testClient(t, server.URL)

	info, err := c.FetchPackage(context.Background(), "flask", "", true)
	if err != nil {
		t.Fatalf("FetchPackage failed: %v", err)
	}

	if info.Name != "Flask" {
		t.Errorf("expected name Flask, got %s", info.Name)
	}
	if info.Version != "2.0.0" {
		t.Errorf("expected version 2.0.0, got %s", info.Version)
	}
	if !strings.Contains(info.Description, "from flask import Flask") {
		t.Error("expected description to carry the README text")
	}
	if info.ContentType != "text/markdown" {
		t.Errorf("expected content type text/markdown, got %s", info.ContentType)
	}
	if len(info.Dependencies) != 2 {
		t.Errorf("expected 2 dependencies, got %v", info.Dependencies)
	}

	owner, repo, ok := info.RepoURL()
	if !ok || owner != "pallets" || repo != "flask" {
		t.Errorf("RepoURL() = %s/%s, %v; want pallets/flask, true", owner, repo, ok)
	}
}

func TestClient_FetchPackage_Version(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(apiResponse{Info: apiInfo{Name: "requests", Version: "2.28.0"}})
	}))
	defer server.Close()

	c := testClient(t, server.URL)

	info, err := c.FetchPackage(context.Background(), "requests", "2.28.0", true)
	if err != nil {
		t.Fatalf("FetchPackage failed: %v", err)
	}
	if gotPath != "/requests/2.28.0/json" {
		t.Errorf("expected version-specific path, got %s", gotPath)
	}
	if info.Version != "2.28.0" {
		t.Errorf("expected version 2.28.0, got %s", info.Version)
	}
}

func TestClient_FetchPackage_NotFound(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	c := testClient(t, server.URL)

	_, err := c.FetchPackage(context.Background(), "missing-pkg", "", true)
	if err == nil {
		t.Fatal("expected error for missing package")
	}
	if !errors.Is(err, integrations.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_FetchPackage_NormalizesName(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(apiResponse{Info: apiInfo{Name: "typing-extensions", Version: "4.0.0"}})
	}))
	defer server.Close()

	c := testClient(t, server.URL)

	if _, err := c.FetchPackage(context.Background(), "Typing_Extensions", "", true); err != nil {
		t.Fatalf("FetchPackage failed: %v", err)
	}
	if gotPath != "/typing-extensions/json" {
		t.Errorf("expected PEP 503 normalized path, got %s", gotPath)
	}
}

func TestExtractDeps_FiltersMarkers(t *testing.T) {
	tests := []struct {
		input    []string
		expected int
	}{
		{[]string{"requests", "numpy; extra == 'dev'"}, 1},
		{[]string{"django>=3.0", "pytest; extra == 'test'"}, 1},
		{[]string{"flask"}, 1},
		{[]string{"requests", "requests>=2.0"}, 1},
	}

	for _, tt := range tests {
		got := extractDeps(tt.input)
		if len(got) != tt.expected {
			t.Errorf("extractDeps(%v): expected %d deps, got %d", tt.input, tt.expected, len(got))
		}
	}
}

func TestNormalizeContentType(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"text/markdown; charset=UTF-8", "text/markdown"},
		{"text/x-rst", "text/x-rst"},
		{"TEXT/HTML", "text/html"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := normalizeContentType(tt.input); got != tt.want {
			t.Errorf("normalizeContentType(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestExtractLicenseType(t *testing.T) {
	tests := []struct {
		name        string
		license     string
		classifiers []string
		want        string
	}{
		{
			name:        "from classifier",
			license:     "long license text...",
			classifiers: []string{"License :: OSI Approved :: MIT License"},
			want:        "MIT License",
		},
		{
			name:    "short license field",
			license: "Apache-2.0",
			want:    "Apache-2.0",
		},
		{
			name:    "first line of long text",
			license: "MIT License\n\nPermission is hereby granted...",
			want:    "MIT License",
		},
		{
			name: "nothing usable",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractLicenseType(tt.license, tt.classifiers); got != tt.want {
				t.Errorf("extractLicenseType() = %q, want %q", got, tt.want)
			}
		})
	}
}

func testClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	backend, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { backend.Close() })
	return &Client{
		Client:  integrations.NewClient(backend, "pypi:", time.Hour, nil),
		baseURL: serverURL,
	}
}
