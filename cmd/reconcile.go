package cmd

import (
	"fmt"
	"time"

	"finledger/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	reconcileAsOf  string
	reconcileAsset string
)

// reconcileCmd is the parent command for all reconcile operations.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile system holdings against golden references",
	Long: `Correlate the holdings of a golden reference against the system holdings, persist one
event per holding and open suspense entries for discrepancies. Re-running the same
reference, asset class and date replaces the previous run.`,
}

// reconcileHoldingsCmd reconciles one asset class.
var reconcileHoldingsCmd = &cobra.Command{
	Use:   "holdings <golden-ref-id>",
	Short: "Reconcile one asset class of a golden reference",
	Long: `Reconcile one asset class of a golden reference.

Examples:
  # Mutual funds as of the statement date
  reconcile holdings 6f1c... --asset MUTUAL_FUND

  # Equity against the ledger as of a later date
  reconcile holdings 6f1c... --asset EQUITY --as-of 2024-04-15`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asset, err := reconcile.ParseAssetClass(reconcileAsset)
		if err != nil {
			return err
		}
		asOf, err := parseDateFlag(reconcileAsOf)
		if err != nil {
			return err
		}

		a, err := bootstrap(true)
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		svc, err := a.reconciliationService(a.goldenService(), a.truthService())
		if err != nil {
			return err
		}

		summary, err := svc.ReconcileHoldings(cmd.Context(), asset, args[0], asOf)
		if err != nil {
			return err
		}
		a.logger.Info("Reconciliation finished",
			zap.String("run_id", summary.RunID),
			zap.Float64("match_rate", summary.Summary.MatchRate()),
		)
		return printJSON(cmd, summary)
	},
}

// reconcileReferenceCmd reconciles every enabled asset class.
var reconcileReferenceCmd = &cobra.Command{
	Use:   "reference <golden-ref-id>",
	Short: "Reconcile every enabled asset class of a golden reference",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asOf, err := parseDateFlag(reconcileAsOf)
		if err != nil {
			return err
		}

		a, err := bootstrap(true)
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		svc, err := a.reconciliationService(a.goldenService(), a.truthService())
		if err != nil {
			return err
		}

		summaries, err := svc.ReconcileReference(cmd.Context(), args[0], asOf)
		if err != nil {
			if len(summaries) > 0 {
				_ = printJSON(cmd, summaries)
			}
			return err
		}
		return printJSON(cmd, summaries)
	},
}

func parseDateFlag(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return &t, nil
}

func init() {
	reconcileHoldingsCmd.Flags().StringVar(&reconcileAsset, "asset", "", "Asset class (e.g. MUTUAL_FUND)")
	_ = reconcileHoldingsCmd.MarkFlagRequired("asset")

	for _, c := range []*cobra.Command{reconcileHoldingsCmd, reconcileReferenceCmd} {
		c.Flags().StringVar(&reconcileAsOf, "as-of", "", "Reconciliation date (YYYY-MM-DD), defaults to the statement date")
		reconcileCmd.AddCommand(c)
	}

	RootCmd.AddCommand(reconcileCmd)
}
