// Package roster owns the live sheet and applies rules engine commands to it
package roster

//go:generate mockgen -destination=mock/mock_service.go -package=rostermock github.com/KirkDiggler/rpg-sheet/internal/orchestrators/roster Service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// Service defines the roster operations exposed to transports
type Service interface {
	// Queries
	GetSheet(ctx context.Context, input *GetSheetInput) (*GetSheetOutput, error)
	DescribeCharacter(ctx context.Context, input *DescribeCharacterInput) (*DescribeCharacterOutput, error)

	// Roster commands
	AddCharacter(ctx context.Context, input *AddCharacterInput) (*AddCharacterOutput, error)
	ResetAll(ctx context.Context, input *ResetAllInput) (*ResetAllOutput, error)
	UpdateAttribute(ctx context.Context, input *UpdateAttributeInput) (*UpdateAttributeOutput, error)
	UpdateSkill(ctx context.Context, input *UpdateSkillInput) (*UpdateSkillOutput, error)
	SelectClass(ctx context.Context, input *SelectClassInput) (*SelectClassOutput, error)

	// Checks
	RollSkillCheck(ctx context.Context, input *RollSkillCheckInput) (*RollSkillCheckOutput, error)
	SetPartyCheck(ctx context.Context, input *SetPartyCheckInput) (*SetPartyCheckOutput, error)
	RollPartyCheck(ctx context.Context, input *RollPartyCheckInput) (*RollPartyCheckOutput, error)

	// Persistence
	LoadSheet(ctx context.Context, input *LoadSheetInput) (*LoadSheetOutput, error)
	SaveSheet(ctx context.Context, input *SaveSheetInput) (*SaveSheetOutput, error)
}

// Config holds the dependencies for the roster orchestrator
type Config struct {
	Engine    *rules.Engine
	SheetRepo sheet.Repository
	EventBus  events.EventBus
	Clock     clock.Clock
	SheetID   string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.SheetRepo == nil {
		vb.RequiredField("SheetRepo")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.SheetID == "" {
		vb.RequiredField("SheetID")
	}

	return vb.Build()
}

type orchestrator struct {
	engine    *rules.Engine
	sheetRepo sheet.Repository
	eventBus  events.EventBus
	clock     clock.Clock

	// mu guards sheet. Commands build a new sheet and swap it in on success.
	mu    sync.RWMutex
	sheet *entities.Sheet
}

// NewOrchestrator creates a roster orchestrator holding a fresh sheet. Call
// LoadSheet to replace it with the stored one.
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		engine:    cfg.Engine,
		sheetRepo: cfg.SheetRepo,
		eventBus:  cfg.EventBus,
		clock:     cfg.Clock,
		sheet:     cfg.Engine.NewSheet(cfg.SheetID),
	}, nil
}

func (o *orchestrator) GetSheet(_ context.Context, _ *GetSheetInput) (*GetSheetOutput, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return &GetSheetOutput{Sheet: o.sheet.Clone()}, nil
}

func (o *orchestrator) DescribeCharacter(_ context.Context, input *DescribeCharacterInput) (*DescribeCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.RLock()
	defer o.mu.RUnlock()

	c, err := o.character(input.Index)
	if err != nil {
		return nil, err
	}

	return &DescribeCharacterOutput{Description: o.describe(input.Index, c)}, nil
}

func (o *orchestrator) describe(index int, c entities.Character) *CharacterDescription {
	tables := o.engine.Tables()

	skills := make([]SkillLine, len(tables.Skills))
	for i, s := range tables.Skills {
		mod := rules.Modifier(c.Attributes[s.Attribute])
		points := c.Skills[s.Name]
		skills[i] = SkillLine{
			Name:      s.Name,
			Attribute: s.Attribute,
			Points:    points,
			Modifier:  mod,
			Total:     points + mod,
		}
	}

	selectedEligible := true
	if c.Class != "" {
		// class names on a live sheet are always in the table
		selectedEligible, _ = o.engine.IsEligible(c.Attributes, c.Class)
	}

	return &CharacterDescription{
		Index:                    index,
		Character:                c.Clone(),
		AttributeModifiers:       o.engine.AttributeModifiers(c.Attributes),
		AttributePointsRemaining: o.engine.AttributePointsRemaining(c.Attributes),
		AvailableSkillPoints:     o.engine.AvailablePoints(c.Attributes, c.Skills),
		Skills:                   skills,
		Classes:                  o.engine.EligibleClasses(c.Attributes),
		SelectedClassEligible:    selectedEligible,
	}
}

func (o *orchestrator) AddCharacter(ctx context.Context, _ *AddCharacterInput) (*AddCharacterOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	next := o.sheet.Clone()
	next.Characters = o.engine.AddCharacter(next.Characters)
	o.sheet = next

	index := len(next.Characters) - 1
	slog.InfoContext(ctx, "character added",
		"sheet_id", next.ID,
		"index", index,
		"character_id", next.Characters[index].ID,
	)

	return &AddCharacterOutput{Index: index, Character: next.Characters[index].Clone()}, nil
}

func (o *orchestrator) ResetAll(ctx context.Context, _ *ResetAllInput) (*ResetAllOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	next := o.sheet.Clone()
	next.Characters = o.engine.ResetAll()
	o.sheet = next

	slog.InfoContext(ctx, "roster reset", "sheet_id", next.ID)

	return &ResetAllOutput{Sheet: next.Clone()}, nil
}

func (o *orchestrator) UpdateAttribute(ctx context.Context, input *UpdateAttributeInput) (*UpdateAttributeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	roster, err := o.engine.UpdateAttribute(o.sheet.Characters, input.Index, input.Attribute, input.Delta)
	if err != nil {
		slog.DebugContext(ctx, "attribute update rejected",
			"index", input.Index,
			"attribute", input.Attribute,
			"delta", input.Delta,
			"error", err,
		)
		return nil, err
	}
	o.swapRoster(roster)

	c := roster[input.Index]
	return &UpdateAttributeOutput{
		Character:                c.Clone(),
		AttributePointsRemaining: o.engine.AttributePointsRemaining(c.Attributes),
		AvailableSkillPoints:     o.engine.AvailablePoints(c.Attributes, c.Skills),
	}, nil
}

func (o *orchestrator) UpdateSkill(ctx context.Context, input *UpdateSkillInput) (*UpdateSkillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	roster, err := o.engine.UpdateSkill(o.sheet.Characters, input.Index, input.Skill, input.Delta)
	if err != nil {
		slog.DebugContext(ctx, "skill update rejected",
			"index", input.Index,
			"skill", input.Skill,
			"delta", input.Delta,
			"error", err,
		)
		return nil, err
	}
	o.swapRoster(roster)

	c := roster[input.Index]
	return &UpdateSkillOutput{
		Character:            c.Clone(),
		AvailableSkillPoints: o.engine.AvailablePoints(c.Attributes, c.Skills),
	}, nil
}

func (o *orchestrator) SelectClass(ctx context.Context, input *SelectClassInput) (*SelectClassOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	roster, err := o.engine.SelectClass(o.sheet.Characters, input.Index, input.ClassName)
	if err != nil {
		return nil, err
	}
	o.swapRoster(roster)

	c := roster[input.Index]
	eligible := true
	if c.Class != "" {
		eligible, _ = o.engine.IsEligible(c.Attributes, c.Class)
	}
	if !eligible {
		slog.InfoContext(ctx, "class selected without meeting requirements",
			"index", input.Index,
			"class", c.Class,
		)
	}

	return &SelectClassOutput{Character: c.Clone(), Eligible: eligible}, nil
}

func (o *orchestrator) RollSkillCheck(ctx context.Context, input *RollSkillCheckInput) (*RollSkillCheckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	req := o.sheet.CurrentSkillCheck
	if input.Check != nil {
		req = *input.Check
	}

	roster, result, err := o.engine.RollCheck(o.sheet.Characters, input.Index, req)
	if err != nil {
		return nil, err
	}

	next := o.sheet.Clone()
	next.Characters = roster
	next.CurrentSkillCheck = req
	o.sheet = next

	slog.InfoContext(ctx, "skill check resolved",
		"sheet_id", next.ID,
		"index", input.Index,
		"skill", result.Skill,
		"dc", result.DC,
		"roll", result.Roll,
		"total", result.Total,
		"succeeded", result.Succeeded,
	)

	c := roster[input.Index]
	o.publish(ctx, EventSkillCheckResolved, entity{id: c.ID, entityType: EntityTypeCharacter}, input.Index, *result)

	return &RollSkillCheckOutput{Result: result, Character: c.Clone()}, nil
}

func (o *orchestrator) SetPartyCheck(_ context.Context, input *SetPartyCheckInput) (*SetPartyCheckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := o.engine.ValidateCheck(input.Skill, input.DC); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	next := o.sheet.Clone()
	next.PartySkillCheck.CheckRequest = entities.CheckRequest{Skill: input.Skill, DC: input.DC}
	o.sheet = next

	return &SetPartyCheckOutput{PartySkillCheck: next.Clone().PartySkillCheck}, nil
}

func (o *orchestrator) RollPartyCheck(ctx context.Context, _ *RollPartyCheckInput) (*RollPartyCheckOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	req := o.sheet.PartySkillCheck.CheckRequest
	result, err := o.engine.ResolvePartyCheck(o.sheet.Characters, req.Skill, req.DC)
	if err != nil {
		return nil, err
	}

	next := o.sheet.Clone()
	next.PartySkillCheck.Result = result
	o.sheet = next

	slog.InfoContext(ctx, "party skill check resolved",
		"sheet_id", next.ID,
		"index", result.CharacterIndex,
		"skill", result.Skill,
		"skill_points", result.SkillPoints,
		"dc", result.DC,
		"roll", result.Roll,
		"total", result.Total,
		"succeeded", result.Succeeded,
	)

	o.publish(ctx, EventPartySkillCheckResolved, entity{id: next.ID, entityType: EntityTypeParty}, result.CharacterIndex, *result)

	out := *result
	return &RollPartyCheckOutput{Result: &out}, nil
}

// LoadSheet holds the write lock across the read so no command can land
// between reading the id and swapping in the stored sheet.
func (o *orchestrator) LoadSheet(ctx context.Context, _ *LoadSheetInput) (*LoadSheetOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	id := o.sheet.ID
	keep := &LoadSheetOutput{Loaded: false, Sheet: o.sheet.Clone()}

	out, err := o.sheetRepo.Get(ctx, sheet.GetInput{ID: id})
	if err != nil {
		if errors.IsNotFound(err) {
			slog.InfoContext(ctx, "no stored sheet, keeping fresh sheet", "sheet_id", id)
		} else {
			slog.WarnContext(ctx, "failed to load sheet, keeping current sheet", "sheet_id", id, "error", err)
		}
		return keep, nil
	}

	loaded, err := o.engine.NormalizeSheet(out.Sheet)
	if err != nil {
		slog.WarnContext(ctx, "stored sheet is invalid, keeping current sheet", "sheet_id", id, "error", err)
		return keep, nil
	}
	loaded.ID = id
	o.sheet = loaded

	slog.InfoContext(ctx, "sheet loaded", "sheet_id", id, "characters", len(loaded.Characters))

	return &LoadSheetOutput{Loaded: true, Sheet: loaded.Clone()}, nil
}

func (o *orchestrator) SaveSheet(ctx context.Context, _ *SaveSheetInput) (*SaveSheetOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	next := o.sheet.Clone()
	next.UpdatedAt = o.clock.Now().Unix()

	if _, err := o.sheetRepo.Save(ctx, sheet.SaveInput{Sheet: next}); err != nil {
		slog.ErrorContext(ctx, "failed to save sheet", "sheet_id", next.ID, "error", err)
		if errors.IsInvalidArgument(err) {
			return nil, err
		}
		if !errors.HasReason(err, errors.ReasonPersistError) {
			return nil, errors.PersistError(err, "failed to save sheet")
		}
		return nil, err
	}
	o.sheet = next

	slog.InfoContext(ctx, "sheet saved", "sheet_id", next.ID, "characters", len(next.Characters))

	return &SaveSheetOutput{UpdatedAt: next.UpdatedAt}, nil
}

// swapRoster installs roster on a copy of the sheet. Caller holds mu.
func (o *orchestrator) swapRoster(roster entities.Roster) {
	next := o.sheet.Clone()
	next.Characters = roster
	o.sheet = next
}

// character returns the character at index. Caller holds mu.
func (o *orchestrator) character(index int) (entities.Character, error) {
	if index < 0 || index >= len(o.sheet.Characters) {
		return entities.Character{}, errors.CharacterNotFound(index, len(o.sheet.Characters))
	}
	return o.sheet.Characters[index], nil
}

// publish announces a resolved check. Handler failures are logged, never
// returned; the check has already been recorded.
func (o *orchestrator) publish(ctx context.Context, eventType string, source entity, index int, result any) {
	event := events.NewGameEvent(eventType, source, nil)
	event.Context().Set(EventKeySheetID, o.sheet.ID)
	event.Context().Set(EventKeyCharacterIndex, index)
	event.Context().Set(EventKeyResult, result)

	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "event handler failed", "event", eventType, "error", err)
	}
}
