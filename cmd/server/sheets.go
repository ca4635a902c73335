package main

import (
	"context"
	"fmt"
	"os"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/export"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/sheet"
)

var (
	sheetsFlags storeFlags
	exportFlags storeFlags
	exportOut   string
)

var sheetsCmd = &cobra.Command{
	Use:   "sheets",
	Short: "List the sheet documents in the store",
	RunE:  listSheets,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a stored sheet to an xlsx workbook",
	Long: `Read the sheet document straight from the store and write it as a workbook
with Characters, Skills and Checks worksheets. The server does not need to be running.`,
	RunE: exportSheet,
}

func init() {
	sheetsFlags.register(sheetsCmd)

	exportFlags.register(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "sheet.xlsx", "output file")
}

func listSheets(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, &sheetsFlags)
	if err != nil {
		return err
	}

	ctx := context.Background()
	repo, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	out, err := repo.List(ctx, sheet.ListInput{})
	if err != nil {
		return fmt.Errorf("failed to list sheets: %w", err)
	}

	if len(out.IDs) == 0 {
		fmt.Println("No sheets stored")
		return nil
	}
	for _, id := range out.IDs {
		fmt.Println(id)
	}
	return nil
}

func exportSheet(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, &exportFlags)
	if err != nil {
		return err
	}

	ctx := context.Background()
	repo, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	// the roller is never used; export only reads derived values
	engine, err := buildEngine(cfg, dice.DefaultRoller)
	if err != nil {
		return err
	}

	stored, err := repo.Get(ctx, sheet.GetInput{ID: cfg.SheetID})
	if err != nil {
		return fmt.Errorf("failed to read sheet %q: %w", cfg.SheetID, err)
	}

	normalized, err := engine.NormalizeSheet(stored.Sheet)
	if err != nil {
		return fmt.Errorf("stored sheet %q is invalid: %w", cfg.SheetID, err)
	}

	f, err := os.Create(exportOut)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", exportOut, err)
	}
	if err := export.WriteXLSX(f, engine, normalized); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", exportOut, err)
	}

	fmt.Printf("Wrote %d characters to %s\n", len(normalized.Characters), exportOut)
	return nil
}
