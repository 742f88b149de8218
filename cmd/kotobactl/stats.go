package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/kotoba-backend/internal/domain"
	"github.com/heartmarshall/kotoba-backend/internal/service/quiz"
	"github.com/heartmarshall/kotoba-backend/pkg/ctxutil"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print a learner's progress statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := parseUserFlag(cmd)
			if err != nil {
				return err
			}
			goal, _ := cmd.Flags().GetInt("goal-days")

			rt, err := openRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			ctx := ctxutil.WithUserID(cmd.Context(), userID)
			stats, err := rt.svc.Quiz.GetStatistics(ctx, quiz.GetStatisticsInput{GoalDays: goal})
			if err != nil {
				return err
			}
			return printStats(cmd.OutOrStdout(), stats)
		},
	}
	cmd.Flags().String("user", "", "learner id")
	cmd.Flags().Int("goal-days", 0, "days to finish the dictionary (0 = configured default)")
	return cmd
}

func printStats(w io.Writer, s *domain.Statistics) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, p := range s.Pairs() {
		switch v := p.Value.(type) {
		case nil:
			fmt.Fprintf(tw, "%s\tunreachable\n", p.Label)
		case float64:
			fmt.Fprintf(tw, "%s\t%.3f\n", p.Label, v)
		default:
			fmt.Fprintf(tw, "%s\t%v\n", p.Label, v)
		}
	}
	return tw.Flush()
}
