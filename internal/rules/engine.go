// Package rules is the character sheet rules engine: attribute and skill point
// budgets, class eligibility and d20 skill checks over an in-memory roster.
//
// Every operation takes its input by value and returns a new value. Rejected
// operations return the input unchanged together with a typed error from
// internal/errors. The engine holds no per-sheet state.
package rules

import (
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
)

// Roller draws a uniform integer in [1, size]. rpg-toolkit dice.Roller
// satisfies it.
type Roller interface {
	Roll(size int) (int, error)
}

// Config holds the engine dependencies
type Config struct {
	Tables      *Tables
	Roller      Roller
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Tables == nil {
		vb.RequiredField("Tables")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Engine evaluates the rules against a fixed set of tables
type Engine struct {
	tables *Tables
	roller Roller
	idGen  idgen.Generator
}

// New creates a rules engine
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid rules config")
	}

	return &Engine{
		tables: cfg.Tables,
		roller: cfg.Roller,
		idGen:  cfg.IDGenerator,
	}, nil
}

// Tables returns the tables the engine was built with
func (e *Engine) Tables() *Tables {
	return e.tables
}

// Modifier is floor((value - 10) / 2).
func Modifier(value int) int {
	return floorDiv(value-10, 2)
}

// floorDiv rounds toward negative infinity, unlike Go's truncating division.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
