package metadata

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pydex/pydex/pkg/cache"
	"github.com/pydex/pydex/pkg/integrations/github"
	"github.com/pydex/pydex/pkg/integrations/pypi"
	"github.com/pydex/pydex/pkg/observability"
	"github.com/pydex/pydex/pkg/readme"
)

const (
	DefaultCacheTTL = 24 * time.Hour // Default HTTP cache duration

	// DefaultMinDescriptionLen is the minimum cleaned-description length for
	// the PyPI long description to count as real documentation. Below it,
	// the GitHub README is the better source.
	DefaultMinDescriptionLen = 200
)

// Source identifies where a package's documentation text came from.
type Source string

const (
	SourcePyPI   Source = "pypi"
	SourceGitHub Source = "github"
	SourceNone   Source = ""
)

// Package is the result of fetching and mining one Python package.
type Package struct {
	Info         *pypi.PackageInfo     `json:"info" yaml:"info"`
	Repo         *github.RepoInfo      `json:"repo,omitempty" yaml:"repo,omitempty"`
	Readme       string                `json:"readme,omitempty" yaml:"readme,omitempty"`
	ReadmeSource Source                `json:"readme_source" yaml:"readme_source"`
	Examples     []readme.UsageExample `json:"examples" yaml:"examples"`
}

// Options configures a Service.
type Options struct {
	CacheTTL          time.Duration // HTTP cache duration (default: 24h)
	GitHubToken       string        // Optional token for higher GitHub rate limits
	MinDescriptionLen int           // Usability threshold for PyPI descriptions (default: 200)
	DisableFallback   bool          // Never consult GitHub, even for sparse descriptions
	Miner             readme.Config // Mining thresholds and vocabularies
	Logger            *log.Logger   // Structured logger (default: log.Default())
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultCacheTTL
	}
	if opts.MinDescriptionLen <= 0 {
		opts.MinDescriptionLen = DefaultMinDescriptionLen
	}
	if opts.Miner.MaxExamples == 0 {
		opts.Miner = readme.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return opts
}

// packageRegistry is the slice of the PyPI client the service needs.
type packageRegistry interface {
	FetchPackage(ctx context.Context, pkg, version string, refresh bool) (*pypi.PackageInfo, error)
}

// repoHost is the slice of the GitHub client the service needs.
type repoHost interface {
	FetchReadme(ctx context.Context, owner, repo string, refresh bool) (string, error)
	FetchRepoInfo(ctx context.Context, owner, repo string, refresh bool) (*github.RepoInfo, error)
}

// Service fetches package metadata and mines usage examples from its
// documentation. Construct with [NewService]; the zero value is not usable.
//
// A Service is safe for concurrent use.
type Service struct {
	registry packageRegistry
	repos    repoHost
	miner      *readme.Miner
	html       *htmlConverter
	minDesc    int
	noFallback bool
	logger     *log.Logger
}

// NewService wires a Service against the live PyPI and GitHub APIs, sharing
// the given cache backend between them.
func NewService(backend cache.Cache, opts Options) *Service {
	opts = opts.WithDefaults()
	return &Service{
		registry: pypi.NewClient(backend, opts.CacheTTL),
		repos:    github.NewClient(backend, opts.GitHubToken, opts.CacheTTL),
		miner:      readme.NewMiner(opts.Miner),
		html:       newHTMLConverter(),
		minDesc:    opts.MinDescriptionLen,
		noFallback: opts.DisableFallback,
		logger:     opts.Logger,
	}
}

// Fetch retrieves package metadata from PyPI, picks the best documentation
// source, and mines it for usage examples.
//
// The PyPI long description is used when it survives cleaning at a useful
// length; otherwise the GitHub README is fetched for packages whose metadata
// points at a GitHub repository. Registry errors surface to the caller;
// documentation problems never fail the fetch — the worst case is a Package
// with no readme and no examples.
func (s *Service) Fetch(ctx context.Context, name, version string, refresh bool) (*Package, error) {
	info, err := s.registry.FetchPackage(ctx, name, version, refresh)
	if err != nil {
		return nil, err
	}

	pkg := &Package{Info: info, ReadmeSource: SourceNone}

	owner, repo, hasRepo := info.RepoURL()
	if hasRepo {
		ri, err := s.repos.FetchRepoInfo(ctx, owner, repo, refresh)
		if err != nil {
			s.logger.Debug("repo metadata unavailable",
				"package", info.Name, "repo", owner+"/"+repo, "err", err)
		} else {
			pkg.Repo = ri
		}
	}

	description := s.documentationText(info)
	if len(description) >= s.minDesc {
		pkg.Readme = description
		pkg.ReadmeSource = SourcePyPI
	} else if hasRepo && !s.noFallback {
		text, err := s.repos.FetchReadme(ctx, owner, repo, refresh)
		if err != nil {
			s.logger.Warn("github readme unavailable",
				"package", info.Name, "repo", owner+"/"+repo, "err", err)
		} else {
			pkg.Readme = s.miner.CleanContent(text)
			pkg.ReadmeSource = SourceGitHub
		}
	}

	// A short description still beats nothing when the fallback came up empty.
	if pkg.Readme == "" && description != "" {
		pkg.Readme = description
		pkg.ReadmeSource = SourcePyPI
	}

	observability.Mining().OnMineStart(ctx, info.Name)
	mineStart := time.Now()
	pkg.Examples = s.miner.ExtractExamples(pkg.Readme)
	observability.Mining().OnMineComplete(ctx, info.Name, len(pkg.Examples), time.Since(mineStart))

	s.logger.Debug("package mined",
		"package", info.Name, "version", info.Version,
		"source", string(pkg.ReadmeSource), "examples", len(pkg.Examples))
	return pkg, nil
}

// Examples is a convenience wrapper returning just the mined examples.
func (s *Service) Examples(ctx context.Context, name, version string, refresh bool) ([]readme.UsageExample, error) {
	pkg, err := s.Fetch(ctx, name, version, refresh)
	if err != nil {
		return nil, err
	}
	return pkg.Examples, nil
}

// documentationText returns the package's cleaned PyPI description, with
// HTML converted to markdown first when the metadata declares it (or the
// text obviously is a document).
func (s *Service) documentationText(info *pypi.PackageInfo) string {
	text := info.Description
	if info.ContentType == "text/html" || looksLikeHTMLDocument(text) {
		converted, err := s.html.toMarkdown(text)
		if err != nil {
			s.logger.Warn("html description conversion failed",
				"package", info.Name, "err", err)
		} else {
			text = converted
		}
	}
	return s.miner.CleanContent(text)
}
