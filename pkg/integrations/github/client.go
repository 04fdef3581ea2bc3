package github

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pydex/pydex/pkg/cache"
	"github.com/pydex/pydex/pkg/integrations"
)

// rawAccept asks the contents API for the file body instead of the JSON
// envelope with base64 content.
const rawAccept = "application/vnd.github.v3.raw"

// RepoInfo holds the subset of repository metadata pydex cares about.
type RepoInfo struct {
	Name          string   `json:"name"`
	FullName      string   `json:"full_name"`
	Description   string   `json:"description"`
	Language      string   `json:"language"`
	DefaultBranch string   `json:"default_branch"`
	Stars         int      `json:"stars"`
	License       string   `json:"license,omitempty"`
	Topics        []string `json:"topics,omitempty"`
	Archived      bool     `json:"archived"`
}

// Client provides access to the GitHub API for README fallback and
// repository metadata. It handles HTTP requests with caching, automatic
// retries, and optional authentication.
//
// All methods are safe for concurrent use.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a GitHub API client with optional authentication.
// Pass an empty string for token to use unauthenticated requests
// (lower rate limits).
func NewClient(backend cache.Cache, token string, cacheTTL time.Duration) *Client {
	headers := map[string]string{"Accept": "application/vnd.github.v3+json"}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}

	return &Client{
		Client:  integrations.NewClient(backend, "github:", cacheTTL, headers),
		baseURL: "https://api.github.com",
	}
}

// FetchReadme retrieves the repository's README as raw text.
// GitHub resolves the filename (README.md, README.rst, ...) server-side.
//
// Returns [integrations.ErrNotFound] when the repository has no README or
// does not exist.
func (c *Client) FetchReadme(ctx context.Context, owner, repo string, refresh bool) (string, error) {
	key := "readme:" + owner + "/" + repo

	var readme string
	err := c.Cached(ctx, key, refresh, &readme, func() error {
		text, err := c.GetText(ctx, fmt.Sprintf("%s/repos/%s/%s/readme", c.baseURL, owner, repo),
			map[string]string{"Accept": rawAccept})
		if err != nil {
			if errors.Is(err, integrations.ErrNotFound) {
				return fmt.Errorf("%w: readme for %s/%s", err, owner, repo)
			}
			return err
		}
		readme = text
		return nil
	})
	if err != nil {
		return "", err
	}
	return readme, nil
}

// FetchRepoInfo retrieves repository metadata (description, stars, license).
// If refresh is true, cached data is bypassed.
func (c *Client) FetchRepoInfo(ctx context.Context, owner, repo string, refresh bool) (*RepoInfo, error) {
	key := "repo:" + owner + "/" + repo

	var info RepoInfo
	err := c.Cached(ctx, key, refresh, &info, func() error {
		return c.fetchRepo(ctx, owner, repo, &info)
	})
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) fetchRepo(ctx context.Context, owner, repo string, info *RepoInfo) error {
	var data repoResponse
	url := fmt.Sprintf("%s/repos/%s/%s", c.baseURL, owner, repo)
	if err := c.Get(ctx, url, &data); err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return fmt.Errorf("%w: github repo %s/%s", err, owner, repo)
		}
		return err
	}

	*info = RepoInfo{
		Name:          data.Name,
		FullName:      data.FullName,
		Description:   data.Description,
		Language:      data.Language,
		DefaultBranch: data.DefaultBranch,
		Stars:         data.Stars,
		License:       data.License.SPDXID,
		Topics:        data.Topics,
		Archived:      data.Archived,
	}
	return nil
}

type repoResponse struct {
	Name          string `json:"name"`
	FullName      string `json:"full_name"`
	Description   string `json:"description"`
	Language      string `json:"language"`
	DefaultBranch string `json:"default_branch"`
	Stars         int    `json:"stargazers_count"`
	License       struct {
		SPDXID string `json:"spdx_id"`
	} `json:"license"`
	Topics   []string `json:"topics"`
	Archived bool     `json:"archived"`
}
