package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pydex/pydex/pkg/readme"
)

// mineCommand creates the mine command: run the pipeline over local text.
// It needs no network and is fully deterministic, which makes it the easiest
// way to inspect what the miner does with a given README.
func (c *CLI) mineCommand() *cobra.Command {
	var (
		output      string
		format      string
		maxExamples int
	)

	cmd := &cobra.Command{
		Use:   "mine [file]",
		Short: "Mine usage examples from a local markdown file or stdin",
		Long: `Run the documentation-mining pipeline over a local file, or stdin when no
file is given.

Examples:
  pydex mine README.md
  curl -s https://raw.githubusercontent.com/psf/requests/main/README.md | pydex mine
  pydex mine README.md --format yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read input: %w", err)
				}
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}

			mc := c.cfg.minerConfig()
			if maxExamples > 0 {
				mc.MaxExamples = maxExamples
			}
			examples := readme.NewMiner(mc).ExtractExamples(string(data))

			w, closeFn, err := openOutput(output)
			if err != nil {
				return err
			}
			defer closeFn()

			if format == FormatText {
				renderExamples(w, examples)
				return nil
			}
			return encode(w, format, struct {
				Examples []readme.UsageExample `json:"examples" yaml:"examples"`
			}{Examples: examples})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().StringVar(&format, "format", FormatText, "output format: text, json, or yaml")
	cmd.Flags().IntVar(&maxExamples, "max-examples", 0, "maximum examples to return")

	return cmd
}
