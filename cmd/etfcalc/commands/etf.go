package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// etfCmd groups the catalog subcommands
var etfCmd = &cobra.Command{
	Use:   "etf",
	Short: "上市 ETF 清單管理",
}

// etfListCmd represents the etf list command
var etfListCmd = &cobra.Command{
	Use:   "list",
	Short: "列出目前已知的上市 ETF",
	RunE:  runETFList,
}

// etfRefreshCmd represents the etf refresh command
var etfRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "從 TWSE ISIN 重新抓取 ETF 清單",
	RunE:  runETFRefresh,
}

func init() {
	rootCmd.AddCommand(etfCmd)
	etfCmd.AddCommand(etfListCmd)
	etfCmd.AddCommand(etfRefreshCmd)
}

func runETFList(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}
	defer a.close()

	etfs := a.catalog.List()

	fmt.Println()
	fmt.Println("───────────────────────────────────────────────────────────")
	for _, etf := range etfs {
		fmt.Printf("  %-8s %s\n", etf.Code, etf.Name)
	}
	fmt.Println("───────────────────────────────────────────────────────────")
	fmt.Printf("  %d ETFs\n", len(etfs))

	return nil
}

func runETFRefresh(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}
	defer a.close()

	before := a.catalog.Len()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := a.catalog.Refresh(ctx, a.twse); err != nil {
		return fmt.Errorf("refresh ETF catalog: %w", err)
	}

	fmt.Printf("\n✅ Catalog refreshed: %d → %d ETFs\n", before, a.catalog.Len())
	return nil
}
