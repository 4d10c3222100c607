package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	defaultsFile string
	verbose      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "etfcalc",
	Short: "台灣 ETF 定期定額報酬試算",
	Long: `etfcalc - 台灣 ETF 定期定額報酬與配息試算

從 TWSE 抓取配息資料、從 Yahoo Finance 抓取日 K 線,
模擬每月固定日期、固定金額買進整股的長期報酬。

Usage:
  go run ./cmd/etfcalc [command]

Examples:
  go run ./cmd/etfcalc serve
  go run ./cmd/etfcalc simulate --ticker 0050 --days 6,16,26 --amount 10000
  go run ./cmd/etfcalc etf list`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&defaultsFile, "defaults", "", "simulation defaults YAML (overrides SIM_DEFAULTS_PATH)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
