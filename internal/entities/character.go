package entities

// Attributes maps attribute names to their values
type Attributes map[string]int

// Sum returns the total of all attribute values
func (a Attributes) Sum() int {
	total := 0
	for _, v := range a {
		total += v
	}
	return total
}

// Clone returns an independent copy
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Skills maps skill names to spent skill points
type Skills map[string]int

// Sum returns the total of all spent skill points
func (s Skills) Sum() int {
	total := 0
	for _, v := range s {
		total += v
	}
	return total
}

// Clone returns an independent copy
func (s Skills) Clone() Skills {
	if s == nil {
		return nil
	}
	out := make(Skills, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Character is a single roster entry. An empty Class means no class selected.
type Character struct {
	ID             string            `json:"id"`
	Attributes     Attributes        `json:"attributes"`
	Skills         Skills            `json:"skills"`
	Class          string            `json:"class"`
	LastSkillCheck *SkillCheckResult `json:"skillChecks"`
}

// Clone returns a deep copy of the character
func (c Character) Clone() Character {
	out := Character{
		ID:         c.ID,
		Attributes: c.Attributes.Clone(),
		Skills:     c.Skills.Clone(),
		Class:      c.Class,
	}
	if c.LastSkillCheck != nil {
		check := *c.LastSkillCheck
		out.LastSkillCheck = &check
	}
	return out
}

// Roster is the ordered list of characters; the index is the external address
type Roster []Character

// Clone returns a deep copy of the roster
func (r Roster) Clone() Roster {
	if r == nil {
		return nil
	}
	out := make(Roster, len(r))
	for i, c := range r {
		out[i] = c.Clone()
	}
	return out
}
