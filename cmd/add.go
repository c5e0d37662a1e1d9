package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"activities/internal/dataset"
	"activities/internal/entry"
	"activities/internal/scrape"
	"activities/internal/tracker"
)

// newAddCmd creates the 'add' subcommand: extract an entry for a URL, file a
// tracking issue when credentials are present, and append it to the dataset.
func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <url>",
		Short: "Add a specification to the activities dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := resolveRuntime(cmd.Context())
			if err != nil {
				return err
			}

			// A dataset with pre-existing problems is never appended to.
			store, err := dataset.Load(rt.cfg.Dataset.File, entry.DefaultSchema())
			if err != nil {
				return err
			}
			if err := reportValidation(store); err != nil {
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

			if err := store.CheckUnique(e); err != nil {
				return err
			}

			gh := tracker.New(tracker.Config{
				Owner:   rt.cfg.Tracker.Owner,
				Repo:    rt.cfg.Tracker.Repo,
				APIBase: rt.cfg.Tracker.APIBase,
				User:    rt.cfg.Tracker.User,
				Token:   rt.cfg.Tracker.Token,
			}, rt.logger)
			if gh.Enabled() {
				number, err := gh.FileIssue(cmd.Context(), e)
				if err != nil {
					return err
				}
				e["mozPositionIssue"] = number
			} else {
				rt.logger.Warn("Cannot find GH_USER or GH_TOKEN; not creating an issue")
			}

			if err := store.Append(e); err != nil {
				return err
			}
			if err := store.Save(); err != nil {
				return err
			}
			rt.logger.Info("Added entry",
				zap.String("title", e.String("title")),
				zap.String("url", e.String("url")))
			return nil
		},
	}
}
