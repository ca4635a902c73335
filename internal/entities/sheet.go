package entities

// CheckRequest selects a skill and a difficulty for a check
type CheckRequest struct {
	Skill string `json:"skill"`
	DC    int    `json:"dc"`
}

// SkillCheckResult is the outcome of one d20 skill check
type SkillCheckResult struct {
	Skill     string `json:"skill"`
	DC        int    `json:"dc"`
	Roll      int    `json:"randomNumber"`
	Total     int    `json:"total"`
	Succeeded bool   `json:"result"`
}

// PartySkillCheckResult is a check rolled on behalf of the party by the
// character with the most points in the skill
type PartySkillCheckResult struct {
	SkillCheckResult
	CharacterIndex int `json:"characterIndex"`
	SkillPoints    int `json:"maxSkillPoints"`
}

// PartySkillCheck is the party check selection and its last result
type PartySkillCheck struct {
	CheckRequest
	Result *PartySkillCheckResult `json:"result"`
}

// Sheet is the persisted document: the whole roster plus check selections
type Sheet struct {
	ID                string          `json:"id"`
	Characters        Roster          `json:"characters"`
	PartySkillCheck   PartySkillCheck `json:"partySkillCheck"`
	CurrentSkillCheck CheckRequest    `json:"currentSkillCheck"`
	UpdatedAt         int64           `json:"updatedAt"`
}

// Clone returns a deep copy of the sheet
func (s *Sheet) Clone() *Sheet {
	if s == nil {
		return nil
	}
	out := *s
	out.Characters = s.Characters.Clone()
	if s.PartySkillCheck.Result != nil {
		result := *s.PartySkillCheck.Result
		out.PartySkillCheck.Result = &result
	}
	return &out
}
