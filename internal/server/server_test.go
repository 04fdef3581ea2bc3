package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/pydex/pydex/pkg/integrations"
	"github.com/pydex/pydex/pkg/integrations/pypi"
	"github.com/pydex/pydex/pkg/metadata"
	"github.com/pydex/pydex/pkg/readme"
)

type fakeFetcher struct {
	pkg    *metadata.Package
	err    error
	panics bool
	last   struct {
		name, version string
		refresh       bool
	}
}

func (f *fakeFetcher) Fetch(_ context.Context, name, version string, refresh bool) (*metadata.Package, error) {
	if f.panics {
		panic("boom")
	}
	f.last.name, f.last.version, f.last.refresh = name, version, refresh
	return f.pkg, f.err
}

func testPackage() *metadata.Package {
	return &metadata.Package{
		Info:         &pypi.PackageInfo{Name: "mylib", Version: "1.2.3"},
		Readme:       "# mylib",
		ReadmeSource: metadata.SourcePyPI,
		Examples: []readme.UsageExample{
			{Title: "Usage", Code: "import mylib\nmylib.run()", Language: "python"},
		},
	}
}

func newTestServer(f *fakeFetcher) *httptest.Server {
	return httptest.NewServer(New(f, "", log.New(io.Discard)).Handler())
}

func decodeError(t *testing.T, body io.Reader) errorEnvelope {
	t.Helper()
	var env errorEnvelope
	if err := json.NewDecoder(body).Decode(&env); err != nil {
		t.Fatalf("decoding error envelope: %v", err)
	}
	return env
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(&fakeFetcher{pkg: testPackage()})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if got := resp.Header.Get("X-Request-ID"); got == "" {
		t.Error("missing X-Request-ID header")
	}
}

func TestGetPackage(t *testing.T) {
	f := &fakeFetcher{pkg: testPackage()}
	ts := newTestServer(f)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/v1/packages/mylib?version=1.2.3&refresh=1")
	if err != nil {
		t.Fatalf("GET package: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var pkg metadata.Package
	if err := json.NewDecoder(resp.Body).Decode(&pkg); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if pkg.Info.Name != "mylib" || len(pkg.Examples) != 1 {
		t.Errorf("unexpected payload: %+v", pkg)
	}

	if f.last.name != "mylib" || f.last.version != "1.2.3" || !f.last.refresh {
		t.Errorf("fetcher called with %+v", f.last)
	}
}

func TestGetExamples(t *testing.T) {
	ts := newTestServer(&fakeFetcher{pkg: testPackage()})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/v1/packages/mylib/examples")
	if err != nil {
		t.Fatalf("GET examples: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body examplesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body.Package != "mylib" || body.Version != "1.2.3" {
		t.Errorf("package identity = %s@%s", body.Package, body.Version)
	}
	if len(body.Examples) != 1 || body.Examples[0].Language != "python" {
		t.Errorf("unexpected examples: %+v", body.Examples)
	}
}

func TestPackageNotFound(t *testing.T) {
	f := &fakeFetcher{err: fmt.Errorf("%w: pypi package nope", integrations.ErrNotFound)}
	ts := newTestServer(f)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/v1/packages/nope")
	if err != nil {
		t.Fatalf("GET package: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	if env := decodeError(t, resp.Body); env.Error.Code != "not_found" {
		t.Errorf("error code = %q, want not_found", env.Error.Code)
	}
}

func TestUpstreamFailure(t *testing.T) {
	f := &fakeFetcher{err: fmt.Errorf("%w: pypi timeout", integrations.ErrNetwork)}
	ts := newTestServer(f)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/v1/packages/mylib")
	if err != nil {
		t.Fatalf("GET package: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", resp.StatusCode)
	}
	if env := decodeError(t, resp.Body); env.Error.Code != "upstream_error" {
		t.Errorf("error code = %q, want upstream_error", env.Error.Code)
	}
}

func TestInvalidPackageName(t *testing.T) {
	f := &fakeFetcher{pkg: testPackage()}
	ts := newTestServer(f)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/v1/packages/mylib..")
	if err != nil {
		t.Fatalf("GET package: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if env := decodeError(t, resp.Body); env.Error.Code != "invalid_name" {
		t.Errorf("error code = %q, want invalid_name", env.Error.Code)
	}
	if f.last.name != "" {
		t.Errorf("fetcher reached with invalid name %q", f.last.name)
	}
}

func TestPanicRecovery(t *testing.T) {
	ts := newTestServer(&fakeFetcher{panics: true})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/v1/packages/mylib/examples")
	if err != nil {
		t.Fatalf("GET examples: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}
	if env := decodeError(t, resp.Body); env.Error.Code != "internal" {
		t.Errorf("error code = %q, want internal", env.Error.Code)
	}
}

func TestRequestIDPropagated(t *testing.T) {
	ts := newTestServer(&fakeFetcher{pkg: testPackage()})
	defer ts.Close()

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	req.Header.Set("X-Request-ID", "upstream-id-1")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("X-Request-ID"); got != "upstream-id-1" {
		t.Errorf("X-Request-ID = %q, want upstream-id-1", got)
	}
}

func TestGracefulShutdown(t *testing.T) {
	srv := New(&fakeFetcher{pkg: testPackage()}, "127.0.0.1:0", log.New(io.Discard))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.ListenAndServe(ctx)
	}()

	cancel()
	if err := <-done; err != nil {
		t.Errorf("ListenAndServe after cancel = %v, want nil", err)
	}
}
