package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func newRecomputeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recompute",
		Short: "Rebuild a learner's ledger from their answer history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := parseUserFlag(cmd)
			if err != nil {
				return err
			}

			rt, err := openRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			if err := rt.svc.Quiz.RecomputeLedger(cmd.Context(), userID); err != nil {
				rt.logger.Error("recompute failed",
					slog.String("user_id", userID.String()),
					slog.String("error", err.Error()),
				)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ledger rebuilt for %s\n", userID)
			return nil
		},
	}
	cmd.Flags().String("user", "", "learner id")
	return cmd
}
