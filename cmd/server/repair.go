package main

import (
	"context"
	"fmt"
	"reflect"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/repositories/sheet"
)

var (
	repairFlags  storeFlags
	repairDryRun bool
)

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Scan stored sheets and rewrite documents written by older versions",
	Long: `Scan every stored sheet. Documents missing character ids, skills added to
the ruleset since they were written, or check selections are filled in and saved
back. Documents that fail validation are reported and left untouched.`,
	RunE: repairSheets,
}

func init() {
	repairFlags.register(repairCmd)
	repairCmd.Flags().BoolVar(&repairDryRun, "dry-run", false, "report without saving")
	rootCmd.AddCommand(repairCmd)
}

func repairSheets(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, &repairFlags)
	if err != nil {
		return err
	}

	ctx := context.Background()
	repo, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	engine, err := buildEngine(cfg, dice.DefaultRoller)
	if err != nil {
		return err
	}

	list, err := repo.List(ctx, sheet.ListInput{})
	if err != nil {
		return fmt.Errorf("failed to list sheets: %w", err)
	}

	fmt.Printf("Scanning %d sheets...\n", len(list.IDs))

	var invalid, repaired int
	for _, id := range list.IDs {
		stored, err := repo.Get(ctx, sheet.GetInput{ID: id})
		if err != nil {
			fmt.Printf("✗ %s: unreadable: %v\n", id, err)
			invalid++
			continue
		}

		normalized, err := engine.NormalizeSheet(stored.Sheet)
		if err != nil {
			fmt.Printf("✗ %s: invalid: %v\n", id, err)
			invalid++
			continue
		}

		if reflect.DeepEqual(stored.Sheet, normalized) {
			continue
		}

		if repairDryRun {
			fmt.Printf("~ %s: needs repair\n", id)
			repaired++
			continue
		}
		if _, err := repo.Save(ctx, sheet.SaveInput{Sheet: normalized}); err != nil {
			return fmt.Errorf("failed to save repaired sheet %s: %w", id, err)
		}
		fmt.Printf("✓ %s: repaired\n", id)
		repaired++
	}

	fmt.Printf("\nChecked: %d  Repaired: %d  Invalid: %d\n", len(list.IDs), repaired, invalid)
	return nil
}
