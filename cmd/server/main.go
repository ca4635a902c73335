// Package main is the entry point for the gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-sheet",
	Short: "RPG character sheet gRPC server",
	Long: `rpg-sheet keeps a party of characters, enforces the attribute and skill
point budgets, and resolves individual and party skill checks over gRPC.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(sheetsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
