// Package github provides a GitHub API client used as the documentation
// fallback source.
//
// When a package's PyPI long description is missing or too thin to mine,
// pydex derives the GitHub repository from the package's project URLs and
// fetches the README instead:
//
//	client := github.NewClient(backend, os.Getenv("GITHUB_TOKEN"), 24*time.Hour)
//	readme, err := client.FetchReadme(ctx, "psf", "requests", false)
//
// Requests work unauthenticated; a token raises the rate limit from 60 to
// 5000 requests per hour.
package github
