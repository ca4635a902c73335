package v1alpha1_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/handlers/roster/v1alpha1"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/roster"
	rostermock "github.com/KirkDiggler/rpg-sheet/internal/orchestrators/roster/mock"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockRoster *rostermock.MockService
	handler    *v1alpha1.Handler
	ctx        context.Context
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRoster = rostermock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		RosterService: s.mockRoster,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) TestNewHandler_MissingService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestUpdateAttribute_Success() {
	character := entities.Character{
		ID:         "char-1",
		Attributes: entities.Attributes{"Strength": 12},
	}

	s.mockRoster.EXPECT().
		UpdateAttribute(s.ctx, &roster.UpdateAttributeInput{Index: 1, Attribute: "Strength", Delta: 2}).
		Return(&roster.UpdateAttributeOutput{
			Character:                character,
			AttributePointsRemaining: 8,
			AvailableSkillPoints:     10,
		}, nil)

	resp, err := s.handler.UpdateAttribute(s.ctx, &v1alpha1.UpdateAttributeRequest{
		CharacterIndex: 1,
		Attribute:      "Strength",
		Delta:          2,
	})
	s.Require().NoError(err)
	s.Assert().Equal(character, resp.Character)
	s.Assert().Equal(8, resp.AttributePointsRemaining)
	s.Assert().Equal(10, resp.AvailableSkillPoints)
}

func (s *HandlerTestSuite) TestUpdateAttribute_MissingAttribute() {
	_, err := s.handler.UpdateAttribute(s.ctx, &v1alpha1.UpdateAttributeRequest{Delta: 1})
	s.Require().Error(err)

	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Assert().Equal(codes.InvalidArgument, st.Code())
}

func (s *HandlerTestSuite) TestUpdateAttribute_BudgetExceeded() {
	s.mockRoster.EXPECT().
		UpdateAttribute(s.ctx, gomock.Any()).
		Return(nil, errors.AttributeBudgetExceeded(70, 71))

	_, err := s.handler.UpdateAttribute(s.ctx, &v1alpha1.UpdateAttributeRequest{Attribute: "Strength", Delta: 1})
	s.Require().Error(err)

	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Assert().Equal(codes.FailedPrecondition, st.Code())

	converted := errors.FromGRPCError(err)
	s.Assert().True(errors.HasReason(converted, errors.ReasonAttributeBudgetExceeded))
	s.Assert().Equal(float64(71), errors.GetMeta(converted)["attempted"])
}

func (s *HandlerTestSuite) TestUpdateSkill_MissingSkill() {
	_, err := s.handler.UpdateSkill(s.ctx, &v1alpha1.UpdateSkillRequest{Delta: 1})
	s.Require().Error(err)
	s.Assert().Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestDescribeCharacter_ConvertsDescription() {
	s.mockRoster.EXPECT().
		DescribeCharacter(s.ctx, &roster.DescribeCharacterInput{Index: 0}).
		Return(&roster.DescribeCharacterOutput{Description: &roster.CharacterDescription{
			Index:                    0,
			AttributeModifiers:       map[string]int{"Intelligence": 2},
			AttributePointsRemaining: 6,
			AvailableSkillPoints:     18,
			Skills: []roster.SkillLine{
				{Name: "Arcana", Attribute: "Intelligence", Points: 1, Modifier: 2, Total: 3},
			},
			Classes: []rules.ClassEligibility{
				{Name: "Wizard", Eligible: true, Requirements: []rules.Requirement{{Attribute: "Intelligence", Minimum: 14}}},
			},
			SelectedClassEligible: true,
		}}, nil)

	resp, err := s.handler.DescribeCharacter(s.ctx, &v1alpha1.DescribeCharacterRequest{CharacterIndex: 0})
	s.Require().NoError(err)
	s.Assert().Equal(6, resp.AttributePointsRemaining)
	s.Assert().Equal(18, resp.AvailableSkillPoints)
	s.Assert().Equal([]v1alpha1.SkillRow{{Name: "Arcana", Attribute: "Intelligence", Points: 1, Modifier: 2, Total: 3}}, resp.Skills)
	s.Require().Len(resp.Classes, 1)
	s.Assert().Equal([]v1alpha1.RequirementRow{{Attribute: "Intelligence", Minimum: 14}}, resp.Classes[0].Requirements)
}

func (s *HandlerTestSuite) TestDescribeCharacter_NotFound() {
	s.mockRoster.EXPECT().
		DescribeCharacter(s.ctx, gomock.Any()).
		Return(nil, errors.CharacterNotFound(4, 1))

	_, err := s.handler.DescribeCharacter(s.ctx, &v1alpha1.DescribeCharacterRequest{CharacterIndex: 4})
	s.Assert().Equal(codes.NotFound, status.Code(err))
}

func (s *HandlerTestSuite) TestRollSkillCheck_PassesCheck() {
	check := &entities.CheckRequest{Skill: "Stealth", DC: 12}
	result := &entities.SkillCheckResult{Skill: "Stealth", DC: 12, Roll: 9, Total: 13, Succeeded: true}

	s.mockRoster.EXPECT().
		RollSkillCheck(s.ctx, &roster.RollSkillCheckInput{Index: 0, Check: check}).
		Return(&roster.RollSkillCheckOutput{Result: result}, nil)

	resp, err := s.handler.RollSkillCheck(s.ctx, &v1alpha1.RollSkillCheckRequest{Check: check})
	s.Require().NoError(err)
	s.Assert().Equal(result, resp.Result)
}

func (s *HandlerTestSuite) TestSaveSheet_Unavailable() {
	s.mockRoster.EXPECT().
		SaveSheet(s.ctx, &roster.SaveSheetInput{}).
		Return(nil, errors.PersistError(context.DeadlineExceeded, "failed to save sheet"))

	_, err := s.handler.SaveSheet(s.ctx, &v1alpha1.SaveSheetRequest{})
	s.Assert().Equal(codes.Unavailable, status.Code(err))
}

func (s *HandlerTestSuite) TestLoadSheet_ReportsLoaded() {
	sheet := &entities.Sheet{ID: "default"}
	s.mockRoster.EXPECT().
		LoadSheet(s.ctx, &roster.LoadSheetInput{}).
		Return(&roster.LoadSheetOutput{Loaded: true, Sheet: sheet}, nil)

	resp, err := s.handler.LoadSheet(s.ctx, &v1alpha1.LoadSheetRequest{})
	s.Require().NoError(err)
	s.Assert().True(resp.Loaded)
	s.Assert().Equal(sheet, resp.Sheet)
}
