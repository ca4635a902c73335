package rules_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

const minimalRuleset = `
attribute_point_cap: 20
default_attribute_value: 10
check_die: 20
attributes: [Strength, Intelligence]
skill_points: {attribute: Intelligence, base: 10, per_modifier: 4}
skills:
  - {name: Athletics, attribute: Strength}
`

func TestParseTables(t *testing.T) {
	tables, err := rules.ParseTables([]byte(minimalRuleset))
	require.NoError(t, err)
	assert.Equal(t, 10, tables.DefaultAttributeValue)
	assert.Equal(t, 10, tables.SkillPoints.Base)
	assert.Equal(t, 4, tables.SkillPoints.PerModifier)
	assert.True(t, tables.HasAttribute("Strength"))
}

func TestParseTablesRequiresBudgetSettings(t *testing.T) {
	testCases := []struct {
		name    string
		ruleset string
		field   string
	}{
		{
			name: "default attribute value",
			ruleset: `
attribute_point_cap: 20
check_die: 20
attributes: [Strength, Intelligence]
skill_points: {attribute: Intelligence, base: 10, per_modifier: 4}
skills: [{name: Athletics, attribute: Strength}]
`,
			field: "default_attribute_value",
		},
		{
			name: "skill point base",
			ruleset: `
attribute_point_cap: 20
default_attribute_value: 10
check_die: 20
attributes: [Strength, Intelligence]
skill_points: {attribute: Intelligence, per_modifier: 4}
skills: [{name: Athletics, attribute: Strength}]
`,
			field: "skill_points.base",
		},
		{
			name: "skill points per modifier",
			ruleset: `
attribute_point_cap: 20
default_attribute_value: 10
check_die: 20
attributes: [Strength, Intelligence]
skill_points: {attribute: Intelligence, base: 10}
skills: [{name: Athletics, attribute: Strength}]
`,
			field: "skill_points.per_modifier",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := rules.ParseTables([]byte(tc.ruleset))
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tc.field+": is required")
		})
	}
}

func TestParseTablesAllowsExplicitZero(t *testing.T) {
	_, err := rules.ParseTables([]byte(`
attribute_point_cap: 20
default_attribute_value: 0
check_die: 20
attributes: [Strength, Intelligence]
skill_points: {attribute: Intelligence, base: 0, per_modifier: 0}
skills: [{name: Athletics, attribute: Strength}]
`))
	assert.NoError(t, err)
}

func TestLoadTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ruleset.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalRuleset), 0o600))

	tables, err := rules.LoadTables(path)
	require.NoError(t, err)
	assert.Equal(t, 20, tables.AttributePointCap)

	_, err = rules.LoadTables(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
