package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"activities/internal/scrape"
)

// newFormatCmd creates the 'format' subcommand: extract an entry for a URL
// and print it without touching the dataset file.
func newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <url>",
		Short: "Print the entry for a specification URL as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := resolveRuntime(cmd.Context())
			if err != nil {
				return err
			}

			fetcher := scrape.NewCollyFetcher(scrape.FetchConfig{
				UserAgent: rt.cfg.HTTP.UserAgent,
				Timeout:   rt.cfg.Timeout(),
			})
			e, err := scrape.Resolve(cmd.Context(), fetcher, scrape.NewResolver(), args[0], rt.cfg.Scrape.MaxRedirects, rt.logger)
			if err != nil {
				return err
			}

			out, err := e.Format()
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}
}
