package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	suspenseNotes    string
	suspenseWriteOff bool
	suspenseBy       string
)

// suspenseCmd is the parent command for suspense operations.
var suspenseCmd = &cobra.Command{
	Use:   "suspense",
	Short: "Inspect and close suspense entries",
}

// suspenseListCmd lists a user's open entries.
var suspenseListCmd = &cobra.Command{
	Use:   "list <user-id>",
	Short: "List open suspense entries, highest priority first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(false)
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		rows, err := a.suspenseService().GetOpenSuspense(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		a.logger.Info("Open suspense entries", zap.String("user_id", args[0]), zap.Int("count", len(rows)))
		return printJSON(cmd, rows)
	},
}

// suspenseResolveCmd closes an entry.
var suspenseResolveCmd = &cobra.Command{
	Use:   "resolve <suspense-id>",
	Short: "Resolve or write off a suspense entry",
	Long: `Resolve or write off a suspense entry. The reconciliation event the entry points at
is resolved too.

Examples:
  suspense resolve 42 --notes "NAV corrected by RTA" --by ops
  suspense resolve 43 --notes "below materiality" --write-off`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid suspense id %q", args[0])
		}

		a, err := bootstrap(false)
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		row, err := a.suspenseService().Resolve(cmd.Context(), uint(id), suspenseNotes, suspenseWriteOff, suspenseBy)
		if err != nil {
			return err
		}
		return printJSON(cmd, row)
	},
}

func init() {
	suspenseResolveCmd.Flags().StringVar(&suspenseNotes, "notes", "", "Resolution notes (required)")
	suspenseResolveCmd.Flags().BoolVar(&suspenseWriteOff, "write-off", false, "Close as WRITTEN_OFF instead of RESOLVED")
	suspenseResolveCmd.Flags().StringVar(&suspenseBy, "by", "", "Who resolved the entry")
	_ = suspenseResolveCmd.MarkFlagRequired("notes")

	suspenseCmd.AddCommand(suspenseListCmd, suspenseResolveCmd)
	RootCmd.AddCommand(suspenseCmd)
}
