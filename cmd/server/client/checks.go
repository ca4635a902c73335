package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/handlers/roster/v1alpha1"
)

var (
	checkSkill string
	checkDC    int
)

var rollCheckCmd = &cobra.Command{
	Use:   "roll-check [index]",
	Short: "Roll a skill check for one character",
	Long: `Roll a d20 skill check for one character. Without --skill the current
selection on the sheet is rolled. Examples:

  roll-check 0
  roll-check 1 --skill Stealth --dc 15`,
	Args: cobra.ExactArgs(1),
	RunE: rollCheck,
}

var setPartyCheckCmd = &cobra.Command{
	Use:   "set-party-check [skill] [dc]",
	Short: "Select the skill and difficulty of the party check",
	Args:  cobra.ExactArgs(2),
	RunE:  setPartyCheck,
}

var rollPartyCheckCmd = &cobra.Command{
	Use:   "roll-party-check",
	Short: "Roll the party check for the character with the most points",
	Args:  cobra.NoArgs,
	RunE:  rollPartyCheck,
}

func init() {
	rollCheckCmd.Flags().StringVar(&checkSkill, "skill", "", "skill to check (default: current selection)")
	rollCheckCmd.Flags().IntVar(&checkDC, "dc", 10, "difficulty class, used with --skill")
}

func rollCheck(cmd *cobra.Command, args []string) error {
	index, err := parseIndex(args[0])
	if err != nil {
		return err
	}

	req := &v1alpha1.RollSkillCheckRequest{CharacterIndex: index}
	if cmd.Flags().Changed("skill") {
		req.Check = &entities.CheckRequest{Skill: checkSkill, DC: checkDC}
	}

	client, cleanup, err := createRosterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.RollSkillCheck(ctx, req)
	if err != nil {
		return describeError("roll check", err)
	}
	if jsonOutput {
		return printJSON(resp)
	}

	r := resp.Result
	fmt.Printf("\n🎲 %s check (dc %d)\n", r.Skill, r.DC)
	fmt.Printf("  Roll: %d\n", r.Roll)
	fmt.Printf("  Skill points: %d\n", r.Total-r.Roll)
	fmt.Printf("  Total: %d\n", r.Total)
	fmt.Printf("  Result: %s\n", outcome(r.Succeeded))
	return nil
}

func setPartyCheck(_ *cobra.Command, args []string) error {
	dc, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("dc must be a number: %q", args[1])
	}

	client, cleanup, err := createRosterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.SetPartyCheck(ctx, &v1alpha1.SetPartyCheckRequest{Skill: args[0], DC: dc})
	if err != nil {
		return describeError("set party check", err)
	}
	if jsonOutput {
		return printJSON(resp)
	}

	fmt.Printf("Party check set to %s dc %d\n", resp.PartySkillCheck.Skill, resp.PartySkillCheck.DC)
	return nil
}

func rollPartyCheck(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createRosterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.RollPartyCheck(ctx, &v1alpha1.RollPartyCheckRequest{})
	if err != nil {
		return describeError("roll party check", err)
	}
	if jsonOutput {
		return printJSON(resp)
	}

	r := resp.Result
	fmt.Printf("\n🎲 Party %s check (dc %d)\n", r.Skill, r.DC)
	fmt.Printf("  Rolled by: character %d\n", r.CharacterIndex)
	fmt.Printf("  Roll: %d\n", r.Roll)
	fmt.Printf("  Skill points: %d\n", r.SkillPoints)
	fmt.Printf("  Total: %d\n", r.Total)
	fmt.Printf("  Result: %s\n", outcome(r.Succeeded))
	return nil
}
