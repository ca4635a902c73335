package roster

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// GetSheetInput defines the request for reading the live sheet
type GetSheetInput struct{}

// GetSheetOutput defines the response for reading the live sheet
type GetSheetOutput struct {
	Sheet *entities.Sheet
}

// DescribeCharacterInput defines the request for a character's derived values
type DescribeCharacterInput struct {
	Index int
}

// DescribeCharacterOutput defines the response for a character's derived values
type DescribeCharacterOutput struct {
	Description *CharacterDescription
}

// SkillLine is one row of a character's skill table
type SkillLine struct {
	Name      string
	Attribute string
	Points    int
	Modifier  int
	Total     int
}

// CharacterDescription is a character with every derived value computed
type CharacterDescription struct {
	Index                    int
	Character                entities.Character
	AttributeModifiers       map[string]int
	AttributePointsRemaining int
	AvailableSkillPoints     int
	Skills                   []SkillLine
	Classes                  []rules.ClassEligibility
	// SelectedClassEligible is true when no class is selected
	SelectedClassEligible bool
}

// AddCharacterInput defines the request for adding a character
type AddCharacterInput struct{}

// AddCharacterOutput defines the response for adding a character
type AddCharacterOutput struct {
	Index     int
	Character entities.Character
}

// ResetAllInput defines the request for resetting the roster
type ResetAllInput struct{}

// ResetAllOutput defines the response for resetting the roster
type ResetAllOutput struct {
	Sheet *entities.Sheet
}

// UpdateAttributeInput defines the request for changing one attribute
type UpdateAttributeInput struct {
	Index     int
	Attribute string
	Delta     int
}

// UpdateAttributeOutput defines the response for changing one attribute
type UpdateAttributeOutput struct {
	Character                entities.Character
	AttributePointsRemaining int
	AvailableSkillPoints     int
}

// UpdateSkillInput defines the request for changing one skill
type UpdateSkillInput struct {
	Index int
	Skill string
	Delta int
}

// UpdateSkillOutput defines the response for changing one skill
type UpdateSkillOutput struct {
	Character            entities.Character
	AvailableSkillPoints int
}

// SelectClassInput defines the request for selecting a class; an empty
// ClassName clears the selection
type SelectClassInput struct {
	Index     int
	ClassName string
}

// SelectClassOutput defines the response for selecting a class
type SelectClassOutput struct {
	Character entities.Character
	// Eligible is a warning only; ineligible classes are still assigned
	Eligible bool
}

// RollSkillCheckInput defines the request for a single character check. A nil
// Check rolls the stored current selection.
type RollSkillCheckInput struct {
	Index int
	Check *entities.CheckRequest
}

// RollSkillCheckOutput defines the response for a single character check
type RollSkillCheckOutput struct {
	Result    *entities.SkillCheckResult
	Character entities.Character
}

// SetPartyCheckInput defines the request for changing the party check selection
type SetPartyCheckInput struct {
	Skill string
	DC    int
}

// SetPartyCheckOutput defines the response for changing the party check selection
type SetPartyCheckOutput struct {
	PartySkillCheck entities.PartySkillCheck
}

// RollPartyCheckInput defines the request for rolling the selected party check
type RollPartyCheckInput struct{}

// RollPartyCheckOutput defines the response for rolling the selected party check
type RollPartyCheckOutput struct {
	Result *entities.PartySkillCheckResult
}

// LoadSheetInput defines the request for replacing the live sheet from storage
type LoadSheetInput struct{}

// LoadSheetOutput defines the response for loading. Loaded is false when the
// stored sheet was missing, unreadable or invalid and the live sheet was kept.
type LoadSheetOutput struct {
	Loaded bool
	Sheet  *entities.Sheet
}

// SaveSheetInput defines the request for saving the live sheet
type SaveSheetInput struct{}

// SaveSheetOutput defines the response for saving the live sheet
type SaveSheetOutput struct {
	UpdatedAt int64
}
