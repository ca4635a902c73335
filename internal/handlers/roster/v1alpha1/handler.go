// Package v1alpha1 handles the roster grpc service interface
package v1alpha1

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/roster"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	RosterService roster.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.RosterService == nil {
		return errors.InvalidArgument("roster service is required")
	}
	return nil
}

// Handler implements the roster gRPC service
type Handler struct {
	rosterService roster.Service
}

var _ RosterServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		rosterService: cfg.RosterService,
	}, nil
}

// GetSheet returns the live sheet
func (h *Handler) GetSheet(
	ctx context.Context,
	_ *GetSheetRequest,
) (*GetSheetResponse, error) {
	output, err := h.rosterService.GetSheet(ctx, &roster.GetSheetInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetSheetResponse{Sheet: output.Sheet}, nil
}

// DescribeCharacter returns a character with modifiers, budgets and class eligibility
func (h *Handler) DescribeCharacter(
	ctx context.Context,
	req *DescribeCharacterRequest,
) (*DescribeCharacterResponse, error) {
	output, err := h.rosterService.DescribeCharacter(ctx, &roster.DescribeCharacterInput{
		Index: req.CharacterIndex,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return convertDescription(output.Description), nil
}

// AddCharacter appends a fresh character to the roster
func (h *Handler) AddCharacter(
	ctx context.Context,
	_ *AddCharacterRequest,
) (*AddCharacterResponse, error) {
	output, err := h.rosterService.AddCharacter(ctx, &roster.AddCharacterInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &AddCharacterResponse{
		CharacterIndex: output.Index,
		Character:      output.Character,
	}, nil
}

// ResetAll replaces the roster with one fresh character
func (h *Handler) ResetAll(
	ctx context.Context,
	_ *ResetAllRequest,
) (*ResetAllResponse, error) {
	output, err := h.rosterService.ResetAll(ctx, &roster.ResetAllInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ResetAllResponse{Sheet: output.Sheet}, nil
}

// UpdateAttribute changes one attribute of one character
func (h *Handler) UpdateAttribute(
	ctx context.Context,
	req *UpdateAttributeRequest,
) (*UpdateAttributeResponse, error) {
	if req.Attribute == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("attribute is required"))
	}

	output, err := h.rosterService.UpdateAttribute(ctx, &roster.UpdateAttributeInput{
		Index:     req.CharacterIndex,
		Attribute: req.Attribute,
		Delta:     req.Delta,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &UpdateAttributeResponse{
		Character:                output.Character,
		AttributePointsRemaining: output.AttributePointsRemaining,
		AvailableSkillPoints:     output.AvailableSkillPoints,
	}, nil
}

// UpdateSkill changes one skill of one character
func (h *Handler) UpdateSkill(
	ctx context.Context,
	req *UpdateSkillRequest,
) (*UpdateSkillResponse, error) {
	if req.Skill == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("skill is required"))
	}

	output, err := h.rosterService.UpdateSkill(ctx, &roster.UpdateSkillInput{
		Index: req.CharacterIndex,
		Skill: req.Skill,
		Delta: req.Delta,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &UpdateSkillResponse{
		Character:            output.Character,
		AvailableSkillPoints: output.AvailableSkillPoints,
	}, nil
}

// SelectClass selects or clears the class of one character
func (h *Handler) SelectClass(
	ctx context.Context,
	req *SelectClassRequest,
) (*SelectClassResponse, error) {
	output, err := h.rosterService.SelectClass(ctx, &roster.SelectClassInput{
		Index:     req.CharacterIndex,
		ClassName: req.Class,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SelectClassResponse{
		Character: output.Character,
		Eligible:  output.Eligible,
	}, nil
}

// RollSkillCheck rolls a check for one character
func (h *Handler) RollSkillCheck(
	ctx context.Context,
	req *RollSkillCheckRequest,
) (*RollSkillCheckResponse, error) {
	output, err := h.rosterService.RollSkillCheck(ctx, &roster.RollSkillCheckInput{
		Index: req.CharacterIndex,
		Check: req.Check,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &RollSkillCheckResponse{
		Result:    output.Result,
		Character: output.Character,
	}, nil
}

// SetPartyCheck changes the skill and difficulty of the party check
func (h *Handler) SetPartyCheck(
	ctx context.Context,
	req *SetPartyCheckRequest,
) (*SetPartyCheckResponse, error) {
	output, err := h.rosterService.SetPartyCheck(ctx, &roster.SetPartyCheckInput{
		Skill: req.Skill,
		DC:    req.DC,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SetPartyCheckResponse{PartySkillCheck: output.PartySkillCheck}, nil
}

// RollPartyCheck rolls the party check for the best qualified character
func (h *Handler) RollPartyCheck(
	ctx context.Context,
	_ *RollPartyCheckRequest,
) (*RollPartyCheckResponse, error) {
	output, err := h.rosterService.RollPartyCheck(ctx, &roster.RollPartyCheckInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &RollPartyCheckResponse{Result: output.Result}, nil
}

// LoadSheet replaces the live sheet with the stored one when it is usable
func (h *Handler) LoadSheet(
	ctx context.Context,
	_ *LoadSheetRequest,
) (*LoadSheetResponse, error) {
	output, err := h.rosterService.LoadSheet(ctx, &roster.LoadSheetInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &LoadSheetResponse{
		Loaded: output.Loaded,
		Sheet:  output.Sheet,
	}, nil
}

// SaveSheet stores the live sheet
func (h *Handler) SaveSheet(
	ctx context.Context,
	_ *SaveSheetRequest,
) (*SaveSheetResponse, error) {
	output, err := h.rosterService.SaveSheet(ctx, &roster.SaveSheetInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SaveSheetResponse{UpdatedAt: output.UpdatedAt}, nil
}

func convertDescription(d *roster.CharacterDescription) *DescribeCharacterResponse {
	if d == nil {
		return nil
	}

	skills := make([]SkillRow, 0, len(d.Skills))
	for _, line := range d.Skills {
		skills = append(skills, SkillRow{
			Name:      line.Name,
			Attribute: line.Attribute,
			Points:    line.Points,
			Modifier:  line.Modifier,
			Total:     line.Total,
		})
	}

	classes := make([]ClassRow, 0, len(d.Classes))
	for _, c := range d.Classes {
		reqs := make([]RequirementRow, 0, len(c.Requirements))
		for _, r := range c.Requirements {
			reqs = append(reqs, RequirementRow{Attribute: r.Attribute, Minimum: r.Minimum})
		}
		classes = append(classes, ClassRow{
			Name:         c.Name,
			Eligible:     c.Eligible,
			Requirements: reqs,
		})
	}

	return &DescribeCharacterResponse{
		CharacterIndex:           d.Index,
		Character:                d.Character,
		AttributeModifiers:       d.AttributeModifiers,
		AttributePointsRemaining: d.AttributePointsRemaining,
		AvailableSkillPoints:     d.AvailableSkillPoints,
		Skills:                   skills,
		Classes:                  classes,
		SelectedClassEligible:    d.SelectedClassEligible,
	}
}
