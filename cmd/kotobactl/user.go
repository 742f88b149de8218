package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/kotoba-backend/internal/service/user"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage learners",
	}

	create := &cobra.Command{
		Use:   "create",
		Short: "Create a learner and print its id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, _ := cmd.Flags().GetString("name")
			input := user.CreateUserInput{Name: name}
			if err := input.Validate(); err != nil {
				return fmt.Errorf("--name: %w", err)
			}

			rt, err := openRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			u, err := rt.svc.Users.CreateUser(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), u.ID)
			return nil
		},
	}
	create.Flags().String("name", "", "display name of the learner")

	token := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for a learner",
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

			res, err := rt.svc.Users.IssueToken(cmd.Context(), userID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.AccessToken)
			fmt.Fprintf(cmd.ErrOrStderr(), "token for %s expires %s\n", res.User.Name, res.ExpiresAt.Format("2006-01-02 15:04 MST"))
			return nil
		},
	}
	token.Flags().String("user", "", "learner id")

	cmd.AddCommand(create, token)
	return cmd
}
