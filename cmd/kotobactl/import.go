package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/kotoba-backend/internal/importer"
	"github.com/heartmarshall/kotoba-backend/internal/service/dictionary"
)

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a word list (.txt in kanji||kana||classes||meanings format, or .xlsx)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			parsed, err := importer.ParseFile(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, le := range parsed.Errors {
				fmt.Fprintf(out, "skip %s\n", le)
			}
			fmt.Fprintf(out, "parsed %d words, %d lines rejected\n", len(parsed.Items), len(parsed.Errors))
			if dryRun || len(parsed.Items) == 0 {
				return nil
			}

			rt, err := openRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			result, err := rt.svc.Dictionary.ImportWords(cmd.Context(), parsed.Items)
			if result != nil {
				printImportResult(out, result)
			}
			if err != nil {
				return fmt.Errorf("import interrupted: %w", err)
			}
			if result.Failed > 0 {
				return fmt.Errorf("%d words failed to import", result.Failed)
			}
			return nil
		},
	}
	cmd.Flags().Bool("dry-run", false, "parse and report without writing")
	return cmd
}

func printImportResult(w io.Writer, r *dictionary.ImportResult) {
	for _, o := range r.Outcomes {
		if o.Status == dictionary.ImportCreated {
			continue
		}
		fmt.Fprintf(w, "line %d %s/%s: %s %s\n", o.LineNumber, o.Kanji, o.Kana, o.Status, o.Reason)
	}
	fmt.Fprintf(w, "created %d, duplicate %d, invalid %d, failed %d\n",
		r.Created, r.Duplicate, r.Invalid, r.Failed)
}
