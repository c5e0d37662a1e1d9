package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"activities/internal/dataset"
	"activities/internal/entry"
)

// newValidateCmd creates the 'validate' subcommand: check the dataset file
// and report every problem found, one line each.
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the activities dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := resolveRuntime(cmd.Context())
			if err != nil {
				return err
			}
			store, err := dataset.Load(rt.cfg.Dataset.File, entry.DefaultSchema())
			if err != nil {
				return err
			}
			return reportValidation(store)
		},
	}
}

// reportValidation prints one error line per validation failure and returns
// a terminal error if any were found. Shared by validate and add.
func reportValidation(store *dataset.Store) error {
	errs := store.Validate()
	if len(errs) == 0 {
		return nil
	}
	for _, e := range errs {
		fmt.Fprintf(os.Stderr, "* ERROR: %s\n", e)
	}
	return errors.New("dataset has validation errors")
}
