package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// goldenCmd is the parent command for golden reference operations.
var goldenCmd = &cobra.Command{
	Use:   "golden",
	Short: "Ingest and inspect golden references",
}

// goldenIngestCmd stores a statement from object storage.
var goldenIngestCmd = &cobra.Command{
	Use:   "ingest <object-key>",
	Short: "Ingest a statement document from the storage bucket",
	Long: `Parse a statement JSON document from the storage bucket and store it as a new golden
reference. Data-quality issues (unknown currency codes, missing exchange rates) are
reported but do not block ingestion.

Example:
  golden ingest golden/u-42/nsdl-2024-03-31.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(true)
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		result, err := a.goldenService().Ingest(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if len(result.Issues) > 0 {
			a.logger.Warn("Statement has data-quality issues", zap.Strings("issues", result.Issues))
		}
		return printJSON(cmd, result)
	},
}

// goldenListCmd lists a user's references.
var goldenListCmd = &cobra.Command{
	Use:   "list <user-id>",
	Short: "List a user's golden references, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(false)
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		refs, err := a.goldenService().References(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd, refs)
	},
}

func init() {
	goldenCmd.AddCommand(goldenIngestCmd, goldenListCmd)
	RootCmd.AddCommand(goldenCmd)
}
