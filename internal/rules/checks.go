package rules

import (
	"fmt"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// ResolveCheck rolls the check die and adds the raw skill points. The
// attribute modifier is not part of the total.
func (e *Engine) ResolveCheck(skillPoints int, skill string, dc int) (*entities.SkillCheckResult, error) {
	if err := e.ValidateCheck(skill, dc); err != nil {
		return nil, err
	}

	roll, err := e.roll()
	if err != nil {
		return nil, err
	}

	total := skillPoints + roll
	return &entities.SkillCheckResult{
		Skill:     skill,
		DC:        dc,
		Roll:      roll,
		Total:     total,
		Succeeded: total >= dc,
	}, nil
}

// SelectPartyMember picks the character with the most points in skill. Ties
// keep the earliest index. An empty roster, or one where nobody has points,
// selects index 0 with 0 points.
func SelectPartyMember(roster entities.Roster, skill string) (index, points int) {
	for i, c := range roster {
		if p := c.Skills[skill]; p > points {
			points = p
			index = i
		}
	}
	return index, points
}

// ResolvePartyCheck rolls one check on behalf of the party member selected by
// SelectPartyMember.
func (e *Engine) ResolvePartyCheck(roster entities.Roster, skill string, dc int) (*entities.PartySkillCheckResult, error) {
	index, points := SelectPartyMember(roster, skill)
	result, err := e.ResolveCheck(points, skill, dc)
	if err != nil {
		return nil, err
	}

	return &entities.PartySkillCheckResult{
		SkillCheckResult: *result,
		CharacterIndex:   index,
		SkillPoints:      points,
	}, nil
}

// ValidateCheck rejects an empty or unknown skill and a dc below 1.
func (e *Engine) ValidateCheck(skill string, dc int) error {
	if skill == "" {
		return errors.InvalidCheckRequest("please select a skill")
	}
	if _, ok := e.tables.Skill(skill); !ok {
		return errors.InvalidCheckRequest(fmt.Sprintf("unknown skill %q", skill)).WithMeta("skill", skill)
	}
	if dc < 1 {
		return errors.InvalidCheckRequest("dc must be at least 1").WithMeta("dc", dc)
	}
	return nil
}

func (e *Engine) roll() (int, error) {
	die := e.tables.CheckDie
	roll, err := e.roller.Roll(die)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.CodeInternal, "failed to roll check die")
	}
	if roll < 1 || roll > die {
		return 0, errors.Internalf("roller returned %d for a d%d", roll, die)
	}
	return roll, nil
}
