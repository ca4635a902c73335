package rules

import (
	"maps"
	"slices"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// NewCharacter returns a fresh character: every attribute at the default
// value, every skill at 0, no class and no check.
func (e *Engine) NewCharacter() entities.Character {
	attrs := make(entities.Attributes, len(e.tables.Attributes))
	for _, name := range e.tables.Attributes {
		attrs[name] = e.tables.DefaultAttributeValue
	}
	skills := make(entities.Skills, len(e.tables.Skills))
	for _, s := range e.tables.Skills {
		skills[s.Name] = 0
	}

	return entities.Character{
		ID:         e.idGen.Generate(),
		Attributes: attrs,
		Skills:     skills,
	}
}

// NewSheet returns a sheet with one fresh character and default check selections.
func (e *Engine) NewSheet(id string) *entities.Sheet {
	check := e.tables.DefaultCheck()
	return &entities.Sheet{
		ID:                id,
		Characters:        e.ResetAll(),
		PartySkillCheck:   entities.PartySkillCheck{CheckRequest: check},
		CurrentSkillCheck: check,
	}
}

// AddCharacter appends a fresh character.
func (e *Engine) AddCharacter(r entities.Roster) entities.Roster {
	out := make(entities.Roster, 0, len(r)+1)
	out = append(out, r.Clone()...)
	return append(out, e.NewCharacter())
}

// ResetAll replaces the roster with exactly one fresh character.
func (e *Engine) ResetAll() entities.Roster {
	return entities.Roster{e.NewCharacter()}
}

// UpdateAttribute routes SetAttribute to the character at index.
func (e *Engine) UpdateAttribute(r entities.Roster, index int, attribute string, delta int) (entities.Roster, error) {
	return update(r, index, func(c entities.Character) (entities.Character, error) {
		return e.SetAttribute(c, attribute, delta)
	})
}

// UpdateSkill routes SetSkillPoints to the character at index.
func (e *Engine) UpdateSkill(r entities.Roster, index int, skill string, delta int) (entities.Roster, error) {
	return update(r, index, func(c entities.Character) (entities.Character, error) {
		return e.SetSkillPoints(c, skill, delta)
	})
}

// SelectClass routes AssignClass to the character at index.
func (e *Engine) SelectClass(r entities.Roster, index int, className string) (entities.Roster, error) {
	return update(r, index, func(c entities.Character) (entities.Character, error) {
		return e.AssignClass(c, className)
	})
}

// RollCheck resolves a check for the character at index and records it as
// that character's last check, replacing any previous one.
func (e *Engine) RollCheck(r entities.Roster, index int, req entities.CheckRequest) (entities.Roster, *entities.SkillCheckResult, error) {
	var result *entities.SkillCheckResult
	out, err := update(r, index, func(c entities.Character) (entities.Character, error) {
		res, err := e.ResolveCheck(c.Skills[req.Skill], req.Skill, req.DC)
		if err != nil {
			return c, err
		}
		result = res
		next := c.Clone()
		check := *res
		next.LastSkillCheck = &check
		return next, nil
	})
	if err != nil {
		return r, nil, err
	}
	return out, result, nil
}

func update(r entities.Roster, index int, fn func(entities.Character) (entities.Character, error)) (entities.Roster, error) {
	if index < 0 || index >= len(r) {
		return r, errors.CharacterNotFound(index, len(r))
	}

	c, err := fn(r[index])
	if err != nil {
		return r, err
	}

	out := r.Clone()
	out[index] = c
	return out, nil
}

// NormalizeSheet validates a sheet read from storage and fills what older
// documents may lack: character ids, skills added to the table since the
// document was written, and empty check selections. Attribute and skill names
// the tables do not know are rejected since their points would count against
// budgets no caller can see. The skill budget is not
// checked because lowering the skill point attribute can legitimately leave a
// character overspent.
func (e *Engine) NormalizeSheet(s *entities.Sheet) (*entities.Sheet, error) {
	if s == nil {
		return nil, errors.InvalidArgument("sheet is required")
	}
	if s.Characters == nil {
		return nil, errors.InvalidArgument("sheet has no characters")
	}

	out := s.Clone()
	vb := errors.NewValidationBuilder()

	for i := range out.Characters {
		c := &out.Characters[i]
		if c.ID == "" {
			c.ID = e.idGen.Generate()
		}

		for _, attr := range e.tables.Attributes {
			if _, ok := c.Attributes[attr]; !ok {
				vb.Fieldf("characters", "character %d is missing attribute %q", i, attr)
			}
		}
		for _, attr := range slices.Sorted(maps.Keys(c.Attributes)) {
			if !e.tables.HasAttribute(attr) {
				vb.Fieldf("characters", "character %d has unknown attribute %q", i, attr)
			}
		}
		if sum := c.Attributes.Sum(); sum > e.tables.AttributePointCap {
			vb.Fieldf("characters", "character %d spends %d of %d attribute points", i, sum, e.tables.AttributePointCap)
		}

		if c.Skills == nil {
			c.Skills = make(entities.Skills, len(e.tables.Skills))
		}
		for _, skill := range e.tables.Skills {
			if _, ok := c.Skills[skill.Name]; !ok {
				c.Skills[skill.Name] = 0
			}
		}
		for _, name := range slices.Sorted(maps.Keys(c.Skills)) {
			if _, ok := e.tables.Skill(name); !ok {
				vb.Fieldf("characters", "character %d has unknown skill %q", i, name)
			}
			if points := c.Skills[name]; points < 0 {
				vb.Fieldf("characters", "character %d has %d points in %q", i, points, name)
			}
		}

		if c.Class != "" {
			if _, ok := e.tables.Class(c.Class); !ok {
				vb.Fieldf("characters", "character %d has unknown class %q", i, c.Class)
			}
		}
	}

	def := e.tables.DefaultCheck()
	if out.CurrentSkillCheck.Skill == "" {
		out.CurrentSkillCheck = def
	}
	if out.PartySkillCheck.Skill == "" {
		out.PartySkillCheck.CheckRequest = def
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}
	return out, nil
}
