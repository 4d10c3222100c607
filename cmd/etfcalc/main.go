package main

import (
	"os"

	"github.com/hsuehlin/etfcalc/cmd/etfcalc/commands"
)

// main is the entry point for the etfcalc CLI
// ⭐ 統一 CLI 進入點: go run ./cmd/etfcalc [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
