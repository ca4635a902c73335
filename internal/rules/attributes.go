package rules

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// SetAttribute applies delta to one attribute. The edit is rejected when the
// new attribute sum would exceed the point cap. There is no per-attribute
// floor; values may go negative.
func (e *Engine) SetAttribute(c entities.Character, attribute string, delta int) (entities.Character, error) {
	if !e.tables.HasAttribute(attribute) {
		return c, errors.UnknownAttribute(attribute)
	}

	attempted := c.Attributes.Sum() + delta
	if attempted > e.tables.AttributePointCap {
		return c, errors.AttributeBudgetExceeded(e.tables.AttributePointCap, attempted)
	}

	out := c.Clone()
	if out.Attributes == nil {
		out.Attributes = make(entities.Attributes, len(e.tables.Attributes))
	}
	out.Attributes[attribute] = c.Attributes[attribute] + delta
	return out, nil
}

// AttributePointsRemaining is the unspent part of the attribute cap.
func (e *Engine) AttributePointsRemaining(attrs entities.Attributes) int {
	return e.tables.AttributePointCap - attrs.Sum()
}

// AttributeModifiers returns the modifier of every attribute in the table.
func (e *Engine) AttributeModifiers(attrs entities.Attributes) map[string]int {
	out := make(map[string]int, len(e.tables.Attributes))
	for _, name := range e.tables.Attributes {
		out[name] = Modifier(attrs[name])
	}
	return out
}
