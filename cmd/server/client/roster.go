package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/handlers/roster/v1alpha1"
)

var addCharacterCmd = &cobra.Command{
	Use:   "add-character",
	Short: "Append a fresh character to the roster",
	Args:  cobra.NoArgs,
	RunE:  addCharacter,
}

var resetAllCmd = &cobra.Command{
	Use:   "reset-all",
	Short: "Replace the roster with one fresh character",
	Args:  cobra.NoArgs,
	RunE:  resetAll,
}

var updateAttributeCmd = &cobra.Command{
	Use:   "update-attribute [index] [attribute] [delta]",
	Short: "Change one attribute by a signed delta",
	Long: `Change one attribute of a character. Examples:

  update-attribute 0 Strength 2
  update-attribute 1 Intelligence -- -1`,
	Args: cobra.ExactArgs(3),
	RunE: updateAttribute,
}

var updateSkillCmd = &cobra.Command{
	Use:   "update-skill [index] [skill] [delta]",
	Short: "Change one skill by a signed delta",
	Long: `Change the points spent in one skill. Points never drop below zero. Examples:

  update-skill 0 Stealth 3
  update-skill 0 Stealth -- -1`,
	Args: cobra.ExactArgs(3),
	RunE: updateSkill,
}

var selectClassCmd = &cobra.Command{
	Use:   "select-class [index] [class]",
	Short: "Select a class, or clear it when no class is given",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  selectClass,
}

func addCharacter(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createRosterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.AddCharacter(ctx, &v1alpha1.AddCharacterRequest{})
	if err != nil {
		return describeError("add character", err)
	}
	if jsonOutput {
		return printJSON(resp)
	}

	fmt.Printf("Added character %d (%s)\n", resp.CharacterIndex, resp.Character.ID)
	return nil
}

func resetAll(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createRosterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ResetAll(ctx, &v1alpha1.ResetAllRequest{})
	if err != nil {
		return describeError("reset roster", err)
	}
	if jsonOutput {
		return printJSON(resp)
	}

	printSheet(resp.Sheet)
	return nil
}

func updateAttribute(_ *cobra.Command, args []string) error {
	index, err := parseIndex(args[0])
	if err != nil {
		return err
	}
	delta, err := parseDelta(args[2])
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

	resp, err := client.UpdateAttribute(ctx, &v1alpha1.UpdateAttributeRequest{
		CharacterIndex: index,
		Attribute:      args[1],
		Delta:          delta,
	})
	if err != nil {
		return describeError("update attribute", err)
	}
	if jsonOutput {
		return printJSON(resp)
	}

	fmt.Printf("%s is now %d\n", args[1], resp.Character.Attributes[args[1]])
	fmt.Printf("Attribute points remaining: %d\n", resp.AttributePointsRemaining)
	fmt.Printf("Skill points available: %d\n", resp.AvailableSkillPoints)
	return nil
}

func updateSkill(_ *cobra.Command, args []string) error {
	index, err := parseIndex(args[0])
	if err != nil {
		return err
	}
	delta, err := parseDelta(args[2])
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

	resp, err := client.UpdateSkill(ctx, &v1alpha1.UpdateSkillRequest{
		CharacterIndex: index,
		Skill:          args[1],
		Delta:          delta,
	})
	if err != nil {
		return describeError("update skill", err)
	}
	if jsonOutput {
		return printJSON(resp)
	}

	fmt.Printf("%s now has %d points\n", args[1], resp.Character.Skills[args[1]])
	fmt.Printf("Skill points available: %d\n", resp.AvailableSkillPoints)
	return nil
}

func selectClass(_ *cobra.Command, args []string) error {
	index, err := parseIndex(args[0])
	if err != nil {
		return err
	}
	var class string
	if len(args) > 1 {
		class = args[1]
	}

	client, cleanup, err := createRosterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.SelectClass(ctx, &v1alpha1.SelectClassRequest{
		CharacterIndex: index,
		Class:          class,
	})
	if err != nil {
		return describeError("select class", err)
	}
	if jsonOutput {
		return printJSON(resp)
	}

	if resp.Character.Class == "" {
		fmt.Printf("Cleared class of character %d\n", index)
		return nil
	}
	fmt.Printf("Character %d is now a %s\n", index, resp.Character.Class)
	if !resp.Eligible {
		fmt.Printf("Warning: attributes do not meet the %s requirements\n", resp.Character.Class)
	}
	return nil
}
