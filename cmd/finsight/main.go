// Finsight analyzes financial documents, screens stocks from the
// analysis results, and assembles markdown reports.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bobmcallan/finsight/internal/app"
	"github.com/bobmcallan/finsight/internal/common"
)

var flagConfig string

var rootCmd = &cobra.Command{
	Use:   "finsight",
	Short: "Financial document analysis and stock screening",
	Long: "Finsight parses financial news documents, analyzes sentiment and\n" +
		"importance with rule-based vocabularies, screens mentioned stocks,\n" +
		"and assembles daily, weekly, and screening reports.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(screenCmd)
	rootCmd.AddCommand(weeklyCmd)
	rootCmd.AddCommand(monthlyCmd)
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("finsight %s\n", common.GetFullVersion())
	},
}

// newApp builds the shared application core for a command run.
func newApp() (*app.App, error) {
	a, err := app.NewApp(flagConfig)
	if err != nil {
		return nil, err
	}
	common.PrintBanner(a.Config)
	return a, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
