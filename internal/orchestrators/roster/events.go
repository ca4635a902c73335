package roster

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Events published on the bus after a check resolves
const (
	EventSkillCheckResolved      = "skill_check.resolved"
	EventPartySkillCheckResolved = "party_skill_check.resolved"
)

// Event context keys
const (
	EventKeySheetID        = "sheet_id"
	EventKeyCharacterIndex = "character_index"
	EventKeyResult         = "result"
)

// Entity types used as event sources
const (
	EntityTypeCharacter = "character"
	EntityTypeParty     = "party"
)

type entity struct {
	id         string
	entityType string
}

func (e entity) GetID() string   { return e.id }
func (e entity) GetType() string { return e.entityType }

var _ core.Entity = entity{}
