package cmd

import (
	"fmt"
	"os"

	"finledger/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "finledger",
	Short: "Golden reference reconciliation service",
	Long: `finledger reconciles the holdings computed by the internal ledger against golden
references such as depository and RTA consolidated account statements, and tracks
the resulting discrepancies in suspense until they are resolved.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits with status 1 on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding with debug level gives readable ISO8601 output on a terminal
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
