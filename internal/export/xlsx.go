// Package export writes a sheet to a spreadsheet workbook
package export

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// Worksheet names
const (
	SheetCharacters = "Characters"
	SheetSkills     = "Skills"
	SheetChecks     = "Checks"
)

// WriteXLSX writes the sheet as a workbook with one row per character, one
// row per character skill, and one row per recorded check.
func WriteXLSX(w io.Writer, engine *rules.Engine, s *entities.Sheet) error {
	if engine == nil {
		return errors.InvalidArgument("engine is required")
	}
	if s == nil {
		return errors.InvalidArgument("sheet is required")
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetCharacters); err != nil {
		return errors.Wrap(err, "failed to name characters worksheet")
	}
	for _, name := range []string{SheetSkills, SheetChecks} {
		if _, err := f.NewSheet(name); err != nil {
			return errors.Wrapf(err, "failed to create %s worksheet", name)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create header style")
	}

	tables := engine.Tables()
	writers := []struct {
		sheet  string
		header []interface{}
		rows   [][]interface{}
	}{
		{SheetCharacters, characterHeader(tables), characterRows(engine, s.Characters)},
		{SheetSkills, []interface{}{"Character", "Skill", "Attribute", "Points", "Modifier", "Total"}, skillRows(tables, s.Characters)},
		{SheetChecks, []interface{}{"Kind", "Character", "Skill", "DC", "Roll", "Total", "Result"}, checkRows(s)},
	}

	for _, ws := range writers {
		if err := writeRows(f, ws.sheet, ws.header, ws.rows, headerStyle); err != nil {
			return err
		}
	}

	if idx, err := f.GetSheetIndex(SheetCharacters); err == nil {
		f.SetActiveSheet(idx)
	}

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "failed to write workbook")
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}, headerStyle int) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return errors.Wrapf(err, "failed to write %s header", sheet)
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return errors.Wrap(err, "failed to resolve header range")
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return errors.Wrapf(err, "failed to style %s header", sheet)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.Wrap(err, "failed to resolve row")
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.Wrapf(err, "failed to write %s row %d", sheet, i+2)
		}
	}
	return nil
}

func characterHeader(tables *rules.Tables) []interface{} {
	header := []interface{}{"Index", "ID", "Class", "Class Eligible"}
	for _, attr := range tables.Attributes {
		header = append(header, attr)
	}
	return append(header, "Attribute Points Remaining", "Skill Points Available")
}

func characterRows(engine *rules.Engine, roster entities.Roster) [][]interface{} {
	tables := engine.Tables()
	rows := make([][]interface{}, 0, len(roster))
	for i, c := range roster {
		eligible := ""
		if c.Class != "" {
			if ok, err := engine.IsEligible(c.Attributes, c.Class); err == nil {
				eligible = yesNo(ok)
			}
		}

		row := []interface{}{i, c.ID, c.Class, eligible}
		for _, attr := range tables.Attributes {
			row = append(row, c.Attributes[attr])
		}
		row = append(row,
			engine.AttributePointsRemaining(c.Attributes),
			engine.AvailablePoints(c.Attributes, c.Skills),
		)
		rows = append(rows, row)
	}
	return rows
}

func skillRows(tables *rules.Tables, roster entities.Roster) [][]interface{} {
	rows := make([][]interface{}, 0, len(roster)*len(tables.Skills))
	for i, c := range roster {
		for _, skill := range tables.Skills {
			points := c.Skills[skill.Name]
			mod := rules.Modifier(c.Attributes[skill.Attribute])
			rows = append(rows, []interface{}{i, skill.Name, skill.Attribute, points, mod, points + mod})
		}
	}
	return rows
}

func checkRows(s *entities.Sheet) [][]interface{} {
	var rows [][]interface{}
	for i, c := range s.Characters {
		if r := c.LastSkillCheck; r != nil {
			rows = append(rows, []interface{}{"Character", i, r.Skill, r.DC, r.Roll, r.Total, passFail(r.Succeeded)})
		}
	}
	if r := s.PartySkillCheck.Result; r != nil {
		rows = append(rows, []interface{}{"Party", r.CharacterIndex, r.Skill, r.DC, r.Roll, r.Total, passFail(r.Succeeded)})
	}
	return rows
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func passFail(b bool) string {
	if b {
		return "Success"
	}
	return "Failure"
}
