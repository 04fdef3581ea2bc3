package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"

	"github.com/pydex/pydex/pkg/integrations"
	"github.com/pydex/pydex/pkg/metadata"
	"github.com/pydex/pydex/pkg/readme"
)

// pkgNameRE follows PEP 508: letters, digits, and interior ._- separators.
var pkgNameRE = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9._-]*[A-Za-z0-9])?$`)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorEnvelope{Error: errorBody{Code: code, Message: message}})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// fetchFromRequest resolves the shared {name}/?version=/?refresh= surface of
// the package endpoints. A nil result means the error response is written.
func (s *Server) fetchFromRequest(w http.ResponseWriter, r *http.Request) *metadata.Package {
	name := chi.URLParam(r, "name")
	if !pkgNameRE.MatchString(name) {
		writeError(w, http.StatusBadRequest, "invalid_name", "invalid package name: "+name)
		return nil
	}

	version := r.URL.Query().Get("version")
	refresh := r.URL.Query().Get("refresh") == "1"

	pkg, err := s.fetcher.Fetch(r.Context(), name, version, refresh)
	switch {
	case err == nil:
		return pkg
	case errors.Is(err, integrations.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	default:
		writeError(w, http.StatusBadGateway, "upstream_error", err.Error())
	}
	return nil
}

func (s *Server) handlePackage(w http.ResponseWriter, r *http.Request) {
	if pkg := s.fetchFromRequest(w, r); pkg != nil {
		writeJSON(w, http.StatusOK, pkg)
	}
}

type examplesResponse struct {
	Package  string                `json:"package"`
	Version  string                `json:"version"`
	Examples []readme.UsageExample `json:"examples"`
}

func (s *Server) handleExamples(w http.ResponseWriter, r *http.Request) {
	pkg := s.fetchFromRequest(w, r)
	if pkg == nil {
		return
	}
	writeJSON(w, http.StatusOK, examplesResponse{
		Package:  pkg.Info.Name,
		Version:  pkg.Info.Version,
		Examples: pkg.Examples,
	})
}
