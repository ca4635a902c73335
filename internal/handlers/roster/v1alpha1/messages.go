package v1alpha1

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
)

// GetSheetRequest reads the live sheet
type GetSheetRequest struct{}

// GetSheetResponse carries the live sheet
type GetSheetResponse struct {
	Sheet *entities.Sheet `json:"sheet"`
}

// DescribeCharacterRequest asks for one character's derived values
type DescribeCharacterRequest struct {
	CharacterIndex int `json:"characterIndex"`
}

// SkillRow is one line of a character's skill table
type SkillRow struct {
	Name      string `json:"name"`
	Attribute string `json:"attribute"`
	Points    int    `json:"points"`
	Modifier  int    `json:"modifier"`
	Total     int    `json:"total"`
}

// RequirementRow is one attribute minimum of a class
type RequirementRow struct {
	Attribute string `json:"attribute"`
	Minimum   int    `json:"minimum"`
}

// ClassRow is a class with whether the character qualifies
type ClassRow struct {
	Name         string           `json:"name"`
	Eligible     bool             `json:"eligible"`
	Requirements []RequirementRow `json:"requirements"`
}

// DescribeCharacterResponse carries a character with every derived value
type DescribeCharacterResponse struct {
	CharacterIndex           int                `json:"characterIndex"`
	Character                entities.Character `json:"character"`
	AttributeModifiers       map[string]int     `json:"attributeModifiers"`
	AttributePointsRemaining int                `json:"attributePointsRemaining"`
	AvailableSkillPoints     int                `json:"availableSkillPoints"`
	Skills                   []SkillRow         `json:"skills"`
	Classes                  []ClassRow         `json:"classes"`
	SelectedClassEligible    bool               `json:"selectedClassEligible"`
}

// AddCharacterRequest appends a fresh character
type AddCharacterRequest struct{}

// AddCharacterResponse carries the new character and its index
type AddCharacterResponse struct {
	CharacterIndex int                `json:"characterIndex"`
	Character      entities.Character `json:"character"`
}

// ResetAllRequest replaces the roster with one fresh character
type ResetAllRequest struct{}

// ResetAllResponse carries the sheet after the reset
type ResetAllResponse struct {
	Sheet *entities.Sheet `json:"sheet"`
}

// UpdateAttributeRequest changes one attribute by a delta
type UpdateAttributeRequest struct {
	CharacterIndex int    `json:"characterIndex"`
	Attribute      string `json:"attribute"`
	Delta          int    `json:"delta"`
}

// UpdateAttributeResponse carries the updated character and budgets
type UpdateAttributeResponse struct {
	Character                entities.Character `json:"character"`
	AttributePointsRemaining int                `json:"attributePointsRemaining"`
	AvailableSkillPoints     int                `json:"availableSkillPoints"`
}

// UpdateSkillRequest changes one skill by a delta
type UpdateSkillRequest struct {
	CharacterIndex int    `json:"characterIndex"`
	Skill          string `json:"skill"`
	Delta          int    `json:"delta"`
}

// UpdateSkillResponse carries the updated character and skill budget
type UpdateSkillResponse struct {
	Character            entities.Character `json:"character"`
	AvailableSkillPoints int                `json:"availableSkillPoints"`
}

// SelectClassRequest selects a class; an empty class clears it
type SelectClassRequest struct {
	CharacterIndex int    `json:"characterIndex"`
	Class          string `json:"class"`
}

// SelectClassResponse carries the updated character and an eligibility warning
type SelectClassResponse struct {
	Character entities.Character `json:"character"`
	Eligible  bool               `json:"eligible"`
}

// RollSkillCheckRequest rolls a check for one character. A nil Check rolls
// the current selection.
type RollSkillCheckRequest struct {
	CharacterIndex int                    `json:"characterIndex"`
	Check          *entities.CheckRequest `json:"check,omitempty"`
}

// RollSkillCheckResponse carries the check result
type RollSkillCheckResponse struct {
	Result    *entities.SkillCheckResult `json:"result"`
	Character entities.Character         `json:"character"`
}

// SetPartyCheckRequest changes the party check selection
type SetPartyCheckRequest struct {
	Skill string `json:"skill"`
	DC    int    `json:"dc"`
}

// SetPartyCheckResponse carries the party check after the change
type SetPartyCheckResponse struct {
	PartySkillCheck entities.PartySkillCheck `json:"partySkillCheck"`
}

// RollPartyCheckRequest rolls the selected party check
type RollPartyCheckRequest struct{}

// RollPartyCheckResponse carries the party check result
type RollPartyCheckResponse struct {
	Result *entities.PartySkillCheckResult `json:"result"`
}

// LoadSheetRequest replaces the live sheet from storage
type LoadSheetRequest struct{}

// LoadSheetResponse reports whether the stored sheet was adopted
type LoadSheetResponse struct {
	Loaded bool            `json:"loaded"`
	Sheet  *entities.Sheet `json:"sheet"`
}

// SaveSheetRequest stores the live sheet
type SaveSheetRequest struct{}

// SaveSheetResponse carries the saved timestamp in unix seconds
type SaveSheetResponse struct {
	UpdatedAt int64 `json:"updatedAt"`
}
