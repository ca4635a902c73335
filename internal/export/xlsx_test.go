package export_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/export"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils"
)

func TestWriteXLSX(t *testing.T) {
	engine := testutils.NewTestEngine(t, testutils.FixedRoller(7))
	sheet := testutils.CreateTestSheet(t)

	var err error
	sheet.Characters, _, err = engine.RollCheck(sheet.Characters, 1, entities.CheckRequest{Skill: "Arcana", DC: 12})
	require.NoError(t, err)
	sheet.PartySkillCheck.Result, err = engine.ResolvePartyCheck(sheet.Characters, "Stealth", 15)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, export.WriteXLSX(&buf, engine, sheet))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{export.SheetCharacters, export.SheetSkills, export.SheetChecks}, f.GetSheetList())

	t.Run("characters", func(t *testing.T) {
		rows, err := f.GetRows(export.SheetCharacters)
		require.NoError(t, err)
		require.Len(t, rows, 3)

		assert.Equal(t, []string{
			"Index", "ID", "Class", "Class Eligible",
			"Strength", "Dexterity", "Constitution", "Intelligence", "Wisdom", "Charisma",
			"Attribute Points Remaining", "Skill Points Available",
		}, rows[0])
		assert.Equal(t, []string{"1", sheet.Characters[1].ID, "Wizard", "Yes", "10", "10", "10", "14", "10", "10", "6", "12"}, rows[2])
	})

	t.Run("skills", func(t *testing.T) {
		rows, err := f.GetRows(export.SheetSkills)
		require.NoError(t, err)
		require.Len(t, rows, 1+2*18)

		var arcana []string
		for _, row := range rows[1:] {
			if row[0] == "1" && row[1] == "Arcana" {
				arcana = row
			}
		}
		assert.Equal(t, []string{"1", "Arcana", "Intelligence", "6", "2", "8"}, arcana)
	})

	t.Run("checks", func(t *testing.T) {
		rows, err := f.GetRows(export.SheetChecks)
		require.NoError(t, err)
		require.Len(t, rows, 3)

		assert.Equal(t, []string{"Character", "1", "Arcana", "12", "7", "13", "Success"}, rows[1])
		assert.Equal(t, []string{"Party", "0", "Stealth", "15", "7", "11", "Failure"}, rows[2])
	})
}

func TestWriteXLSX_RequiresSheet(t *testing.T) {
	engine := testutils.NewTestEngine(t, testutils.FixedRoller(1))

	var buf bytes.Buffer
	assert.Error(t, export.WriteXLSX(&buf, engine, nil))
	assert.Error(t, export.WriteXLSX(&buf, nil, &entities.Sheet{}))
}
