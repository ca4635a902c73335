package client

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/handlers/roster/v1alpha1"
)

var getSheetCmd = &cobra.Command{
	Use:   "get-sheet",
	Short: "Show the live sheet",
	Args:  cobra.NoArgs,
	RunE:  getSheet,
}

var describeCmd = &cobra.Command{
	Use:   "describe [index]",
	Short: "Show a character with modifiers, budgets and class eligibility",
	Args:  cobra.ExactArgs(1),
	RunE:  describeCharacter,
}

var loadSheetCmd = &cobra.Command{
	Use:   "load-sheet",
	Short: "Replace the live sheet with the stored one",
	Args:  cobra.NoArgs,
	RunE:  loadSheet,
}

var saveSheetCmd = &cobra.Command{
	Use:   "save-sheet",
	Short: "Store the live sheet",
	Args:  cobra.NoArgs,
	RunE:  saveSheet,
}

func getSheet(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createRosterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetSheet(ctx, &v1alpha1.GetSheetRequest{})
	if err != nil {
		return describeError("get sheet", err)
	}
	if jsonOutput {
		return printJSON(resp)
	}

	printSheet(resp.Sheet)
	return nil
}

func describeCharacter(_ *cobra.Command, args []string) error {
	index, err := parseIndex(args[0])
	if err != nil {
		return err
	}

	client, cleanup, err := createRosterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.DescribeCharacter(ctx, &v1alpha1.DescribeCharacterRequest{CharacterIndex: index})
	if err != nil {
		return describeError("describe character", err)
	}
	if jsonOutput {
		return printJSON(resp)
	}

	fmt.Printf("\nCharacter %d (%s)\n", resp.CharacterIndex, resp.Character.ID)
	fmt.Printf("==============\n")
	fmt.Printf("Attribute points remaining: %d\n", resp.AttributePointsRemaining)
	fmt.Printf("Skill points available: %d\n", resp.AvailableSkillPoints)

	fmt.Printf("\nAttributes:\n")
	names := make([]string, 0, len(resp.Character.Attributes))
	for name := range resp.Character.Attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-13s %3d (%+d)\n", name, resp.Character.Attributes[name], resp.AttributeModifiers[name])
	}

	fmt.Printf("\nSkills:\n")
	for _, row := range resp.Skills {
		fmt.Printf("  %-16s %-13s points %2d  mod %+d  total %+d\n", row.Name, row.Attribute, row.Points, row.Modifier, row.Total)
	}

	fmt.Printf("\nClasses:\n")
	for _, class := range resp.Classes {
		marker := " "
		if class.Name == resp.Character.Class {
			marker = "*"
		}
		reqs := make([]string, 0, len(class.Requirements))
		for _, r := range class.Requirements {
			reqs = append(reqs, fmt.Sprintf("%s %d", r.Attribute, r.Minimum))
		}
		fmt.Printf(" %s %-10s eligible=%-5t %s\n", marker, class.Name, class.Eligible, strings.Join(reqs, ", "))
	}
	if resp.Character.Class != "" && !resp.SelectedClassEligible {
		fmt.Printf("\nWarning: attributes do not meet the %s requirements\n", resp.Character.Class)
	}

	return nil
}

func loadSheet(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createRosterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.LoadSheet(ctx, &v1alpha1.LoadSheetRequest{})
	if err != nil {
		return describeError("load sheet", err)
	}
	if jsonOutput {
		return printJSON(resp)
	}

	if resp.Loaded {
		fmt.Printf("Loaded sheet %s with %d characters\n", resp.Sheet.ID, len(resp.Sheet.Characters))
	} else {
		fmt.Printf("No usable stored sheet; kept the live sheet with %d characters\n", len(resp.Sheet.Characters))
	}
	return nil
}

func saveSheet(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createRosterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.SaveSheet(ctx, &v1alpha1.SaveSheetRequest{})
	if err != nil {
		return describeError("save sheet", err)
	}
	if jsonOutput {
		return printJSON(resp)
	}

	fmt.Printf("Saved at %s\n", time.Unix(resp.UpdatedAt, 0).Format(time.RFC3339))
	return nil
}

func printSheet(s *entities.Sheet) {
	if s == nil {
		fmt.Println("No sheet")
		return
	}

	fmt.Printf("\nSheet %s\n", s.ID)
	fmt.Printf("==============\n")
	for i, c := range s.Characters {
		class := c.Class
		if class == "" {
			class = "(no class)"
		}
		fmt.Printf("\n[%d] %s  %s\n", i, c.ID, class)
		fmt.Printf("  Attributes: %v (sum %d)\n", c.Attributes, c.Attributes.Sum())
		for name, points := range c.Skills {
			if points > 0 {
				fmt.Printf("  %s: %d\n", name, points)
			}
		}
		if r := c.LastSkillCheck; r != nil {
			fmt.Printf("  Last check: %s dc %d rolled %d total %d %s\n", r.Skill, r.DC, r.Roll, r.Total, outcome(r.Succeeded))
		}
	}

	fmt.Printf("\nCurrent check: %s dc %d\n", s.CurrentSkillCheck.Skill, s.CurrentSkillCheck.DC)
	fmt.Printf("Party check: %s dc %d\n", s.PartySkillCheck.Skill, s.PartySkillCheck.DC)
	if r := s.PartySkillCheck.Result; r != nil {
		fmt.Printf("  Last party roll: character %d (%d points) rolled %d total %d %s\n",
			r.CharacterIndex, r.SkillPoints, r.Roll, r.Total, outcome(r.Succeeded))
	}
}

func outcome(succeeded bool) string {
	if succeeded {
		return "SUCCESS"
	}
	return "FAILURE"
}
