package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/kotoba-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kotoba-backend/internal/config"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(cmd *cobra.Command, m *postgres.Migrator) error {
				applied, err := m.Up(cmd.Context())
				if err != nil {
					return err
				}
				if len(applied) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
					return nil
				}
				for _, v := range applied {
					fmt.Fprintf(cmd.OutOrStdout(), "applied %05d\n", v)
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(cmd *cobra.Command, m *postgres.Migrator) error {
				v, err := m.Down(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "rolled back %05d\n", v)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "List migrations and whether they are applied",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(cmd *cobra.Command, m *postgres.Migrator) error {
				states, err := m.Status(cmd.Context())
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "VERSION\tFILE\tAPPLIED")
				for _, s := range states {
					applied := "pending"
					if s.Applied {
						applied = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
					fmt.Fprintf(tw, "%05d\t%s\t%s\n", s.Version, s.Path, applied)
				}
				return tw.Flush()
			}),
		},
	)
	return cmd
}

func withMigrator(fn func(*cobra.Command, *postgres.Migrator) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		m, err := postgres.NewMigrator(cmd.Context(), cfg.Database.DSN)
		if err != nil {
			return err
		}
		defer m.Close()
		return fn(cmd, m)
	}
}
