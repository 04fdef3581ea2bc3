package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// fetchOpts holds the command-line flags for the fetch command.
type fetchOpts struct {
	refresh     bool   // bypass HTTP cache
	noCache     bool   // disable response caching entirely
	noFallback  bool   // never consult the GitHub README
	interactive bool   // browse examples in the terminal
	output      string // output file path (stdout if empty)
	format      string // text, json, or yaml
	maxExamples int    // cap on mined examples (0 = configured default)
}

// fetchCommand creates the fetch command: pull package metadata from PyPI
// and mine its documentation for usage examples.
func (c *CLI) fetchCommand() *cobra.Command {
	var opts fetchOpts

	cmd := &cobra.Command{
		Use:   "fetch <package>[@version]",
		Short: "Fetch a Python package and mine its documentation",
		Long: `Fetch package metadata from PyPI and mine the documentation for usage
examples. When the PyPI long description is too sparse, the GitHub README is
used instead (if the package metadata links a repository).

Examples:
  pydex fetch requests                  # Latest version
  pydex fetch fastapi@0.104.1           # Specific version
  pydex fetch httpx --format json       # Machine output
  pydex fetch rich -i                   # Interactive example browser`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			name, version := splitPackageArg(args[0])
			if opts.maxExamples > 0 {
				c.cfg.Mining.MaxExamples = opts.maxExamples
			}

			backend := ""
			if opts.noCache {
				backend = "none"
			}
			svc, err := c.newService(ctx, backend, opts.noFallback)
			if err != nil {
				return err
			}

			spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Fetching %s...", name))
			spinner.Start()
			prog := newProgress(logger)

			pkg, err := svc.Fetch(ctx, name, version, opts.refresh)
			if err != nil {
				spinner.StopWithError(fmt.Sprintf("Fetching %s failed", name))
				return err
			}
			spinner.Stop()
			prog.done(fmt.Sprintf("Mined %d examples from %s", len(pkg.Examples), pkg.Info.Name))

			if opts.interactive {
				return browseExamples(pkg.Examples)
			}

			w, closeFn, err := openOutput(opts.output)
			if err != nil {
				return err
			}
			defer closeFn()

			if opts.format == FormatText {
				renderPackage(w, pkg)
				return nil
			}
			return encode(w, opts.format, pkg)
		},
	}

	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the cache and refetch")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable response caching")
	cmd.Flags().BoolVar(&opts.noFallback, "no-fallback", false, "never fall back to the GitHub README")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse examples interactively")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().StringVar(&opts.format, "format", FormatText, "output format: text, json, or yaml")
	cmd.Flags().IntVar(&opts.maxExamples, "max-examples", 0, "maximum examples to return")

	return cmd
}

// splitPackageArg splits "name@version" into its parts; version is empty
// when not given.
func splitPackageArg(arg string) (name, version string) {
	name, version, _ = strings.Cut(arg, "@")
	return name, version
}
