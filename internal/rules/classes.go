package rules

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Requirement is one attribute minimum of a class
type Requirement struct {
	Attribute string
	Minimum   int
}

// ClassEligibility is a class name with whether the attributes qualify
type ClassEligibility struct {
	Name         string
	Eligible     bool
	Requirements []Requirement
}

// IsEligible reports whether attrs meet every minimum of the class.
func (e *Engine) IsEligible(attrs entities.Attributes, className string) (bool, error) {
	def, ok := e.tables.Class(className)
	if !ok {
		return false, errors.UnknownClass(className)
	}
	return meetsMinimums(attrs, def), nil
}

func meetsMinimums(attrs entities.Attributes, def ClassDefinition) bool {
	for attr, minimum := range def.Minimums {
		if attrs[attr] < minimum {
			return false
		}
	}
	return true
}

// AssignClass sets the class, or clears it for "". Eligibility is not
// enforced; an ineligible class is a display warning only.
func (e *Engine) AssignClass(c entities.Character, className string) (entities.Character, error) {
	if className != "" {
		if _, ok := e.tables.Class(className); !ok {
			return c, errors.UnknownClass(className)
		}
	}

	out := c.Clone()
	out.Class = className
	return out, nil
}

// ClassRequirements lists the class minimums in attribute table order.
func (e *Engine) ClassRequirements(className string) ([]Requirement, error) {
	def, ok := e.tables.Class(className)
	if !ok {
		return nil, errors.UnknownClass(className)
	}
	return e.requirements(def), nil
}

func (e *Engine) requirements(def ClassDefinition) []Requirement {
	reqs := make([]Requirement, 0, len(def.Minimums))
	for _, attr := range e.tables.Attributes {
		if minimum, ok := def.Minimums[attr]; ok {
			reqs = append(reqs, Requirement{Attribute: attr, Minimum: minimum})
		}
	}
	return reqs
}

// EligibleClasses evaluates every class in table order.
func (e *Engine) EligibleClasses(attrs entities.Attributes) []ClassEligibility {
	out := make([]ClassEligibility, len(e.tables.Classes))
	for i, def := range e.tables.Classes {
		out[i] = ClassEligibility{
			Name:         def.Name,
			Eligible:     meetsMinimums(attrs, def),
			Requirements: e.requirements(def),
		}
	}
	return out
}
