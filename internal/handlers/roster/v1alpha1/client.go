package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// RosterServiceClient is the client API for the roster service
type RosterServiceClient interface {
	GetSheet(ctx context.Context, in *GetSheetRequest, opts ...grpc.CallOption) (*GetSheetResponse, error)
	DescribeCharacter(ctx context.Context, in *DescribeCharacterRequest, opts ...grpc.CallOption) (*DescribeCharacterResponse, error)
	AddCharacter(ctx context.Context, in *AddCharacterRequest, opts ...grpc.CallOption) (*AddCharacterResponse, error)
	ResetAll(ctx context.Context, in *ResetAllRequest, opts ...grpc.CallOption) (*ResetAllResponse, error)
	UpdateAttribute(ctx context.Context, in *UpdateAttributeRequest, opts ...grpc.CallOption) (*UpdateAttributeResponse, error)
	UpdateSkill(ctx context.Context, in *UpdateSkillRequest, opts ...grpc.CallOption) (*UpdateSkillResponse, error)
	SelectClass(ctx context.Context, in *SelectClassRequest, opts ...grpc.CallOption) (*SelectClassResponse, error)
	RollSkillCheck(ctx context.Context, in *RollSkillCheckRequest, opts ...grpc.CallOption) (*RollSkillCheckResponse, error)
	SetPartyCheck(ctx context.Context, in *SetPartyCheckRequest, opts ...grpc.CallOption) (*SetPartyCheckResponse, error)
	RollPartyCheck(ctx context.Context, in *RollPartyCheckRequest, opts ...grpc.CallOption) (*RollPartyCheckResponse, error)
	LoadSheet(ctx context.Context, in *LoadSheetRequest, opts ...grpc.CallOption) (*LoadSheetResponse, error)
	SaveSheet(ctx context.Context, in *SaveSheetRequest, opts ...grpc.CallOption) (*SaveSheetResponse, error)
}

type rosterServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewRosterServiceClient returns a client that sends JSON encoded messages
func NewRosterServiceClient(cc grpc.ClientConnInterface) RosterServiceClient {
	return &rosterServiceClient{cc: cc}
}

func (c *rosterServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}

func (c *rosterServiceClient) GetSheet(ctx context.Context, in *GetSheetRequest, opts ...grpc.CallOption) (*GetSheetResponse, error) {
	out := new(GetSheetResponse)
	if err := c.invoke(ctx, RosterService_GetSheet_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rosterServiceClient) DescribeCharacter(ctx context.Context, in *DescribeCharacterRequest, opts ...grpc.CallOption) (*DescribeCharacterResponse, error) {
	out := new(DescribeCharacterResponse)
	if err := c.invoke(ctx, RosterService_DescribeCharacter_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rosterServiceClient) AddCharacter(ctx context.Context, in *AddCharacterRequest, opts ...grpc.CallOption) (*AddCharacterResponse, error) {
	out := new(AddCharacterResponse)
	if err := c.invoke(ctx, RosterService_AddCharacter_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rosterServiceClient) ResetAll(ctx context.Context, in *ResetAllRequest, opts ...grpc.CallOption) (*ResetAllResponse, error) {
	out := new(ResetAllResponse)
	if err := c.invoke(ctx, RosterService_ResetAll_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rosterServiceClient) UpdateAttribute(ctx context.Context, in *UpdateAttributeRequest, opts ...grpc.CallOption) (*UpdateAttributeResponse, error) {
	out := new(UpdateAttributeResponse)
	if err := c.invoke(ctx, RosterService_UpdateAttribute_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rosterServiceClient) UpdateSkill(ctx context.Context, in *UpdateSkillRequest, opts ...grpc.CallOption) (*UpdateSkillResponse, error) {
	out := new(UpdateSkillResponse)
	if err := c.invoke(ctx, RosterService_UpdateSkill_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rosterServiceClient) SelectClass(ctx context.Context, in *SelectClassRequest, opts ...grpc.CallOption) (*SelectClassResponse, error) {
	out := new(SelectClassResponse)
	if err := c.invoke(ctx, RosterService_SelectClass_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rosterServiceClient) RollSkillCheck(ctx context.Context, in *RollSkillCheckRequest, opts ...grpc.CallOption) (*RollSkillCheckResponse, error) {
	out := new(RollSkillCheckResponse)
	if err := c.invoke(ctx, RosterService_RollSkillCheck_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rosterServiceClient) SetPartyCheck(ctx context.Context, in *SetPartyCheckRequest, opts ...grpc.CallOption) (*SetPartyCheckResponse, error) {
	out := new(SetPartyCheckResponse)
	if err := c.invoke(ctx, RosterService_SetPartyCheck_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rosterServiceClient) RollPartyCheck(ctx context.Context, in *RollPartyCheckRequest, opts ...grpc.CallOption) (*RollPartyCheckResponse, error) {
	out := new(RollPartyCheckResponse)
	if err := c.invoke(ctx, RosterService_RollPartyCheck_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rosterServiceClient) LoadSheet(ctx context.Context, in *LoadSheetRequest, opts ...grpc.CallOption) (*LoadSheetResponse, error) {
	out := new(LoadSheetResponse)
	if err := c.invoke(ctx, RosterService_LoadSheet_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rosterServiceClient) SaveSheet(ctx context.Context, in *SaveSheetRequest, opts ...grpc.CallOption) (*SaveSheetResponse, error) {
	out := new(SaveSheetResponse)
	if err := c.invoke(ctx, RosterService_SaveSheet_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
