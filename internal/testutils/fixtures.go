package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// TestSheetID is the sheet id used by fixtures
const TestSheetID = "sheet-test-001"

// FixedRoller always returns the same roll
type FixedRoller int

// Roll returns the fixed value regardless of die size
func (r FixedRoller) Roll(_ int) (int, error) {
	return int(r), nil
}

// NewTestEngine builds a rules engine over the default tables with sequential
// character ids
func NewTestEngine(t *testing.T, roller rules.Roller) *rules.Engine {
	tables, err := rules.DefaultTables()
	require.NoError(t, err, "failed to load default tables")

	engine, err := rules.New(&rules.Config{
		Tables:      tables,
		Roller:      roller,
		IDGenerator: idgen.NewSequential("char"),
	})
	require.NoError(t, err, "failed to create rules engine")
	return engine
}

// CreateTestSheet builds a two character sheet: one character with 4 points
// in Stealth and a Wizard with 6 points in Arcana
func CreateTestSheet(t *testing.T) *entities.Sheet {
	engine := NewTestEngine(t, FixedRoller(10))

	sheet := engine.NewSheet(TestSheetID)
	sheet.Characters = engine.AddCharacter(sheet.Characters)

	var err error
	sheet.Characters, err = engine.UpdateSkill(sheet.Characters, 0, "Stealth", 4)
	require.NoError(t, err)
	sheet.Characters, err = engine.UpdateAttribute(sheet.Characters, 1, "Intelligence", 4)
	require.NoError(t, err)
	sheet.Characters, err = engine.SelectClass(sheet.Characters, 1, "Wizard")
	require.NoError(t, err)
	sheet.Characters, err = engine.UpdateSkill(sheet.Characters, 1, "Arcana", 6)
	require.NoError(t, err)
	sheet.UpdatedAt = 1700000000

	return sheet
}
