package cmd

import (
	"fmt"
	"os"
	"strings"

	"finledger/core/reconcile"
	"finledger/feature/truth"
	"finledger/feature/truth/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	truthUser      string
	truthRationale string
	truthSeedFile  string
)

// truthCmd is the parent command for truth-source operations.
var truthCmd = &cobra.Command{
	Use:   "truth",
	Short: "Show and configure truth-source priorities",
}

// truthShowCmd prints the resolved priority of a scope.
var truthShowCmd = &cobra.Command{
	Use:   "show <metric> <asset-class>",
	Short: "Show the source priority for a metric and asset class",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		metric, asset, err := parseScope(args)
		if err != nil {
			return err
		}

		a, err := bootstrap(false)
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		sources, err := a.truthService().Resolver(truthUser).GetSourcePriority(cmd.Context(), metric, asset)
		if err != nil {
			return err
		}
		return printJSON(cmd, truth.PriorityResponse{
			UserID:      truthUser,
			MetricType:  metric,
			AssetClass:  asset,
			Sources:     sources,
			TruthSource: sources[0],
		})
	},
}

// truthOverrideCmd sets a user's priority list.
var truthOverrideCmd = &cobra.Command{
	Use:   "override <metric> <asset-class> <source>...",
	Short: "Override the source priority for a user",
	Long: `Override the source priority for a user. Sources are listed most authoritative first.

Example:
  truth override NET_WORTH MUTUAL_FUND RTA_CAS NSDL_CAS SYSTEM --user u-42 --rationale "RTA is fresher"`,
	Args: cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		metric, asset, err := parseScope(args[:2])
		if err != nil {
			return err
		}
		var sources models.SourceList
		for _, raw := range args[2:] {
			src, err := reconcile.ParseSourceType(strings.ToUpper(raw))
			if err != nil {
				return err
			}
			sources = append(sources, src)
		}

		a, err := bootstrap(false)
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		cfg, err := a.truthService().Resolver(truthUser).SetUserOverride(cmd.Context(), metric, asset, sources, truthRationale)
		if err != nil {
			return err
		}
		return printJSON(cmd, cfg)
	},
}

// truthSeedCmd loads global defaults.
var truthSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load global truth-source defaults",
	Long:  `Load global truth-source defaults from a YAML file, or the built-in defaults when --file is not set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(false)
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		svc := a.truthService()
		var n int
		if truthSeedFile == "" {
			n, err = svc.SeedDefaults(cmd.Context())
		} else {
			f, openErr := os.Open(truthSeedFile)
			if openErr != nil {
				return fmt.Errorf("failed to open seed file: %w", openErr)
			}
			defer f.Close()
			n, err = svc.Seed(cmd.Context(), f)
		}
		if err != nil {
			return err
		}

		a.logger.Info("Truth-source defaults seeded", zap.Int("entries", n))
		return nil
	},
}

func parseScope(args []string) (reconcile.MetricType, reconcile.AssetClass, error) {
	metric, err := reconcile.ParseMetricType(strings.ToUpper(args[0]))
	if err != nil {
		return "", "", err
	}
	asset, err := reconcile.ParseAssetClass(strings.ToUpper(args[1]))
	if err != nil {
		return "", "", err
	}
	return metric, asset, nil
}

func init() {
	truthShowCmd.Flags().StringVar(&truthUser, "user", "", "User ID (global default when empty)")
	truthOverrideCmd.Flags().StringVar(&truthUser, "user", "", "User ID (required)")
	truthOverrideCmd.Flags().StringVar(&truthRationale, "rationale", "", "Why the override exists")
	_ = truthOverrideCmd.MarkFlagRequired("user")
	truthSeedCmd.Flags().StringVar(&truthSeedFile, "file", "", "YAML seed file")

	truthCmd.AddCommand(truthShowCmd, truthOverrideCmd, truthSeedCmd)
	RootCmd.AddCommand(truthCmd)
}
