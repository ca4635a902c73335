package roster_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/roster"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/sheet"
	sheetmock "github.com/KirkDiggler/rpg-sheet/internal/repositories/sheet/mock"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockRepo  *sheetmock.MockRepository
	bus       events.EventBus
	published []events.Event
	now       time.Time
	orch      roster.Service
	ctx       context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = sheetmock.NewMockRepository(s.ctrl)
	s.bus = events.NewBus()
	s.published = nil
	s.now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s.ctx = context.Background()

	capture := func(_ context.Context, e events.Event) error {
		s.published = append(s.published, e)
		return nil
	}
	s.bus.SubscribeFunc(roster.EventSkillCheckResolved, 0, capture)
	s.bus.SubscribeFunc(roster.EventPartySkillCheckResolved, 0, capture)

	s.orch = s.newOrchestrator(testutils.FixedRoller(10))
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) newOrchestrator(roller testutils.FixedRoller) roster.Service {
	orch, err := roster.NewOrchestrator(&roster.Config{
		Engine:    testutils.NewTestEngine(s.T(), roller),
		SheetRepo: s.mockRepo,
		EventBus:  s.bus,
		Clock:     clock.Fixed{T: s.now},
		SheetID:   testutils.TestSheetID,
	})
	s.Require().NoError(err)
	return orch
}

func (s *OrchestratorTestSuite) loadTestSheet() *entities.Sheet {
	stored := testutils.CreateTestSheet(s.T())
	s.mockRepo.EXPECT().
		Get(s.ctx, sheet.GetInput{ID: testutils.TestSheetID}).
		Return(&sheet.GetOutput{Sheet: stored}, nil)

	out, err := s.orch.LoadSheet(s.ctx, &roster.LoadSheetInput{})
	s.Require().NoError(err)
	s.Require().True(out.Loaded)
	return stored
}

func (s *OrchestratorTestSuite) currentSheet() *entities.Sheet {
	out, err := s.orch.GetSheet(s.ctx, &roster.GetSheetInput{})
	s.Require().NoError(err)
	return out.Sheet
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := roster.NewOrchestrator(nil)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = roster.NewOrchestrator(&roster.Config{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "invalid config")
}

func (s *OrchestratorTestSuite) TestStartsWithFreshSheet() {
	current := s.currentSheet()

	s.Assert().Equal(testutils.TestSheetID, current.ID)
	s.Require().Len(current.Characters, 1)
	s.Assert().Equal(60, current.Characters[0].Attributes.Sum())
	s.Assert().Equal(entities.CheckRequest{Skill: "Acrobatics", DC: 1}, current.CurrentSkillCheck)
}

func (s *OrchestratorTestSuite) TestGetSheetReturnsCopy() {
	current := s.currentSheet()
	current.Characters[0].Attributes["Strength"] = 99

	again := s.currentSheet()
	s.Assert().Equal(10, again.Characters[0].Attributes["Strength"])
}

func (s *OrchestratorTestSuite) TestAddCharacterAndReset() {
	out, err := s.orch.AddCharacter(s.ctx, &roster.AddCharacterInput{})
	s.Require().NoError(err)
	s.Assert().Equal(1, out.Index)
	s.Assert().Len(s.currentSheet().Characters, 2)

	reset, err := s.orch.ResetAll(s.ctx, &roster.ResetAllInput{})
	s.Require().NoError(err)
	s.Assert().Len(reset.Sheet.Characters, 1)
	s.Assert().Len(s.currentSheet().Characters, 1)
}

func (s *OrchestratorTestSuite) TestUpdateAttribute() {
	s.Run("reports remaining budgets", func() {
		out, err := s.orch.UpdateAttribute(s.ctx, &roster.UpdateAttributeInput{Index: 0, Attribute: "Intelligence", Delta: 4})
		s.Require().NoError(err)
		s.Assert().Equal(14, out.Character.Attributes["Intelligence"])
		s.Assert().Equal(6, out.AttributePointsRemaining)
		s.Assert().Equal(18, out.AvailableSkillPoints)
	})

	s.Run("rejects over cap and keeps sheet", func() {
		before := s.currentSheet()

		_, err := s.orch.UpdateAttribute(s.ctx, &roster.UpdateAttributeInput{Index: 0, Attribute: "Strength", Delta: 7})
		s.Require().Error(err)
		s.Assert().True(errors.HasReason(err, errors.ReasonAttributeBudgetExceeded))
		s.Assert().Equal(before, s.currentSheet())
	})

	s.Run("rejects bad index", func() {
		_, err := s.orch.UpdateAttribute(s.ctx, &roster.UpdateAttributeInput{Index: 3, Attribute: "Strength", Delta: 1})
		s.Require().Error(err)
		s.Assert().True(errors.IsNotFound(err))
	})
}

func (s *OrchestratorTestSuite) TestUpdateSkill() {
	out, err := s.orch.UpdateSkill(s.ctx, &roster.UpdateSkillInput{Index: 0, Skill: "Stealth", Delta: 6})
	s.Require().NoError(err)
	s.Assert().Equal(6, out.Character.Skills["Stealth"])
	s.Assert().Equal(4, out.AvailableSkillPoints)

	_, err = s.orch.UpdateSkill(s.ctx, &roster.UpdateSkillInput{Index: 0, Skill: "Arcana", Delta: 5})
	s.Require().Error(err)
	s.Assert().True(errors.HasReason(err, errors.ReasonSkillBudgetExceeded))
	s.Assert().Equal(0, s.currentSheet().Characters[0].Skills["Arcana"])
}

func (s *OrchestratorTestSuite) TestSelectClass() {
	s.Run("ineligible class is assigned with a warning", func() {
		out, err := s.orch.SelectClass(s.ctx, &roster.SelectClassInput{Index: 0, ClassName: "Wizard"})
		s.Require().NoError(err)
		s.Assert().Equal("Wizard", out.Character.Class)
		s.Assert().False(out.Eligible)
	})

	s.Run("unknown class is rejected", func() {
		_, err := s.orch.SelectClass(s.ctx, &roster.SelectClassInput{Index: 0, ClassName: "Paladin"})
		s.Require().Error(err)
		s.Assert().True(errors.HasReason(err, errors.ReasonUnknownClass))
		s.Assert().Equal("Wizard", s.currentSheet().Characters[0].Class)
	})

	s.Run("empty name clears", func() {
		out, err := s.orch.SelectClass(s.ctx, &roster.SelectClassInput{Index: 0})
		s.Require().NoError(err)
		s.Assert().Empty(out.Character.Class)
		s.Assert().True(out.Eligible)
	})
}

func (s *OrchestratorTestSuite) TestDescribeCharacter() {
	s.loadTestSheet()

	out, err := s.orch.DescribeCharacter(s.ctx, &roster.DescribeCharacterInput{Index: 1})
	s.Require().NoError(err)

	d := out.Description
	s.Assert().Equal(1, d.Index)
	s.Assert().Equal(2, d.AttributeModifiers["Intelligence"])
	s.Assert().Equal(6, d.AttributePointsRemaining)
	s.Assert().Equal(12, d.AvailableSkillPoints)
	s.Assert().True(d.SelectedClassEligible)
	s.Require().Len(d.Skills, 18)

	for _, line := range d.Skills {
		if line.Name == "Arcana" {
			s.Assert().Equal("Intelligence", line.Attribute)
			s.Assert().Equal(6, line.Points)
			s.Assert().Equal(2, line.Modifier)
			s.Assert().Equal(8, line.Total)
		}
	}

	var wizard bool
	for _, c := range d.Classes {
		if c.Name == "Wizard" {
			wizard = c.Eligible
		}
	}
	s.Assert().True(wizard)

	_, err = s.orch.DescribeCharacter(s.ctx, &roster.DescribeCharacterInput{Index: 2})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestRollSkillCheck() {
	s.loadTestSheet()

	s.Run("explicit request is stored as the current selection", func() {
		out, err := s.orch.RollSkillCheck(s.ctx, &roster.RollSkillCheckInput{
			Index: 0,
			Check: &entities.CheckRequest{Skill: "Stealth", DC: 14},
		})
		s.Require().NoError(err)
		s.Assert().Equal(&entities.SkillCheckResult{Skill: "Stealth", DC: 14, Roll: 10, Total: 14, Succeeded: true}, out.Result)
		s.Assert().Equal(out.Result, out.Character.LastSkillCheck)

		current := s.currentSheet()
		s.Assert().Equal(entities.CheckRequest{Skill: "Stealth", DC: 14}, current.CurrentSkillCheck)
		s.Assert().Equal(out.Result, current.Characters[0].LastSkillCheck)
	})

	s.Run("nil request rolls the current selection", func() {
		out, err := s.orch.RollSkillCheck(s.ctx, &roster.RollSkillCheckInput{Index: 1})
		s.Require().NoError(err)
		s.Assert().Equal("Stealth", out.Result.Skill)
		s.Assert().Equal(10, out.Result.Total)
		s.Assert().False(out.Result.Succeeded)
	})

	s.Run("publishes a resolved event", func() {
		s.Require().Len(s.published, 2)
		e := s.published[0]
		s.Assert().Equal(roster.EventSkillCheckResolved, e.Type())
		s.Assert().Equal(roster.EntityTypeCharacter, e.Source().GetType())

		index, ok := e.Context().Get(roster.EventKeyCharacterIndex)
		s.Require().True(ok)
		s.Assert().Equal(0, index)

		id, ok := e.Context().Get(roster.EventKeySheetID)
		s.Require().True(ok)
		s.Assert().Equal(testutils.TestSheetID, id)
	})

	s.Run("invalid request keeps selection", func() {
		_, err := s.orch.RollSkillCheck(s.ctx, &roster.RollSkillCheckInput{
			Index: 0,
			Check: &entities.CheckRequest{Skill: "", DC: 5},
		})
		s.Require().Error(err)
		s.Assert().True(errors.HasReason(err, errors.ReasonInvalidCheckRequest))
		s.Assert().Equal("Stealth", s.currentSheet().CurrentSkillCheck.Skill)
		s.Assert().Len(s.published, 2)
	})
}

func (s *OrchestratorTestSuite) TestPartyCheck() {
	s.loadTestSheet()

	s.Run("rejects invalid selection", func() {
		_, err := s.orch.SetPartyCheck(s.ctx, &roster.SetPartyCheckInput{Skill: "Arcana", DC: 0})
		s.Require().Error(err)
		s.Assert().True(errors.IsInvalidArgument(err))
		s.Assert().Equal("Acrobatics", s.currentSheet().PartySkillCheck.Skill)
	})

	s.Run("best member rolls", func() {
		set, err := s.orch.SetPartyCheck(s.ctx, &roster.SetPartyCheckInput{Skill: "Arcana", DC: 15})
		s.Require().NoError(err)
		s.Assert().Equal(entities.CheckRequest{Skill: "Arcana", DC: 15}, set.PartySkillCheck.CheckRequest)

		out, err := s.orch.RollPartyCheck(s.ctx, &roster.RollPartyCheckInput{})
		s.Require().NoError(err)
		s.Assert().Equal(1, out.Result.CharacterIndex)
		s.Assert().Equal(6, out.Result.SkillPoints)
		s.Assert().Equal(16, out.Result.Total)
		s.Assert().True(out.Result.Succeeded)

		stored := s.currentSheet().PartySkillCheck.Result
		s.Require().NotNil(stored)
		s.Assert().Equal(out.Result, stored)
		// party checks do not touch the per-character last check
		s.Assert().Nil(s.currentSheet().Characters[1].LastSkillCheck)
	})

	s.Run("publishes a party event", func() {
		s.Require().Len(s.published, 1)
		s.Assert().Equal(roster.EventPartySkillCheckResolved, s.published[0].Type())
		s.Assert().Equal(roster.EntityTypeParty, s.published[0].Source().GetType())
	})
}

func (s *OrchestratorTestSuite) TestFailingSubscriberDoesNotFailCheck() {
	s.bus.SubscribeFunc(roster.EventSkillCheckResolved, 0, func(_ context.Context, _ events.Event) error {
		return errors.Internal("subscriber failed")
	})

	out, err := s.orch.RollSkillCheck(s.ctx, &roster.RollSkillCheckInput{
		Index: 0,
		Check: &entities.CheckRequest{Skill: "Stealth", DC: 5},
	})
	s.Require().NoError(err)
	s.Assert().True(out.Result.Succeeded)
}

func (s *OrchestratorTestSuite) TestLoadSheet() {
	s.Run("not found keeps fresh sheet", func() {
		s.mockRepo.EXPECT().
			Get(s.ctx, sheet.GetInput{ID: testutils.TestSheetID}).
			Return(nil, errors.NotFound("sheet not found"))

		out, err := s.orch.LoadSheet(s.ctx, &roster.LoadSheetInput{})
		s.Require().NoError(err)
		s.Assert().False(out.Loaded)
		s.Assert().Len(out.Sheet.Characters, 1)
	})

	s.Run("store failure keeps current sheet", func() {
		_, err := s.orch.AddCharacter(s.ctx, &roster.AddCharacterInput{})
		s.Require().NoError(err)

		s.mockRepo.EXPECT().
			Get(s.ctx, sheet.GetInput{ID: testutils.TestSheetID}).
			Return(nil, errors.PersistError(context.DeadlineExceeded, "failed to read sheet"))

		out, err := s.orch.LoadSheet(s.ctx, &roster.LoadSheetInput{})
		s.Require().NoError(err)
		s.Assert().False(out.Loaded)
		s.Assert().Len(out.Sheet.Characters, 2)
	})

	s.Run("invalid document keeps current sheet", func() {
		bad := testutils.CreateTestSheet(s.T())
		bad.Characters[0].Attributes["Strength"] = 40

		s.mockRepo.EXPECT().
			Get(s.ctx, sheet.GetInput{ID: testutils.TestSheetID}).
			Return(&sheet.GetOutput{Sheet: bad}, nil)

		out, err := s.orch.LoadSheet(s.ctx, &roster.LoadSheetInput{})
		s.Require().NoError(err)
		s.Assert().False(out.Loaded)
		s.Assert().Len(s.currentSheet().Characters, 2)
		s.Assert().Equal(10, s.currentSheet().Characters[0].Attributes["Strength"])
	})

	s.Run("valid document replaces the live sheet", func() {
		stored := s.loadTestSheet()
		s.Assert().Equal(stored, s.currentSheet())
	})
}

func (s *OrchestratorTestSuite) TestCommandDuringLoadAppliesToLoadedSheet() {
	stored := testutils.CreateTestSheet(s.T())
	added := make(chan error, 1)

	s.mockRepo.EXPECT().
		Get(s.ctx, sheet.GetInput{ID: testutils.TestSheetID}).
		DoAndReturn(func(ctx context.Context, _ sheet.GetInput) (*sheet.GetOutput, error) {
			go func() {
				_, err := s.orch.AddCharacter(ctx, &roster.AddCharacterInput{})
				added <- err
			}()

			select {
			case err := <-added:
				s.Failf("command finished while the load was in flight", "error: %v", err)
				added <- err
			case <-time.After(50 * time.Millisecond):
			}
			return &sheet.GetOutput{Sheet: stored}, nil
		})

	out, err := s.orch.LoadSheet(s.ctx, &roster.LoadSheetInput{})
	s.Require().NoError(err)
	s.Require().True(out.Loaded)
	s.Assert().Len(out.Sheet.Characters, len(stored.Characters))

	s.Require().NoError(<-added)
	current := s.currentSheet()
	s.Assert().Len(current.Characters, len(stored.Characters)+1)
	s.Assert().Equal(stored.Characters[0], current.Characters[0])
}

func (s *OrchestratorTestSuite) TestSaveSheet() {
	s.Run("stamps and stores the live sheet", func() {
		s.mockRepo.EXPECT().
			Save(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input sheet.SaveInput) (*sheet.SaveOutput, error) {
				s.Assert().Equal(testutils.TestSheetID, input.Sheet.ID)
				s.Assert().Equal(s.now.Unix(), input.Sheet.UpdatedAt)
				return &sheet.SaveOutput{}, nil
			})

		out, err := s.orch.SaveSheet(s.ctx, &roster.SaveSheetInput{})
		s.Require().NoError(err)
		s.Assert().Equal(s.now.Unix(), out.UpdatedAt)
		s.Assert().Equal(s.now.Unix(), s.currentSheet().UpdatedAt)
	})

	s.Run("store failure is reported", func() {
		s.mockRepo.EXPECT().
			Save(s.ctx, gomock.Any()).
			Return(nil, errors.Unavailablef("connection refused"))

		_, err := s.orch.SaveSheet(s.ctx, &roster.SaveSheetInput{})
		s.Require().Error(err)
		s.Assert().True(errors.HasReason(err, errors.ReasonPersistError))
		s.Assert().True(errors.IsUnavailable(err))
	})
}
