package rules

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// AvailablePoints is the skill budget derived from the skill point attribute
// minus the points already spent. It can be negative.
func (e *Engine) AvailablePoints(attrs entities.Attributes, skills entities.Skills) int {
	f := e.tables.SkillPoints
	total := f.Base + f.PerModifier*Modifier(attrs[f.Attribute])
	return total - skills.Sum()
}

// SetSkillPoints applies delta to one skill. The budget is checked against the
// spend before the edit, and only for positive deltas. Points never drop
// below zero.
func (e *Engine) SetSkillPoints(c entities.Character, skill string, delta int) (entities.Character, error) {
	if _, ok := e.tables.Skill(skill); !ok {
		return c, errors.UnknownSkill(skill)
	}

	available := e.AvailablePoints(c.Attributes, c.Skills)
	if delta > 0 && delta > available {
		return c, errors.SkillBudgetExceeded(available)
	}

	out := c.Clone()
	if out.Skills == nil {
		out.Skills = make(entities.Skills, len(e.tables.Skills))
	}
	out.Skills[skill] = max(0, c.Skills[skill]+delta)
	return out, nil
}

// SkillModifier is the modifier of the skill's governing attribute.
func (e *Engine) SkillModifier(attrs entities.Attributes, skill string) (int, error) {
	s, ok := e.tables.Skill(skill)
	if !ok {
		return 0, errors.UnknownSkill(skill)
	}
	return Modifier(attrs[s.Attribute]), nil
}

// SkillTotal is points plus modifier. Display only: checks use raw points.
func (e *Engine) SkillTotal(c entities.Character, skill string) (int, error) {
	mod, err := e.SkillModifier(c.Attributes, skill)
	if err != nil {
		return 0, err
	}
	return c.Skills[skill] + mod, nil
}
