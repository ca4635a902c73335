package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified roster service name
const ServiceName = "rpgsheet.roster.v1alpha1.RosterService"

// Full method names
const (
	RosterService_GetSheet_FullMethodName          = "/" + ServiceName + "/GetSheet"
	RosterService_DescribeCharacter_FullMethodName = "/" + ServiceName + "/DescribeCharacter"
	RosterService_AddCharacter_FullMethodName      = "/" + ServiceName + "/AddCharacter"
	RosterService_ResetAll_FullMethodName          = "/" + ServiceName + "/ResetAll"
	RosterService_UpdateAttribute_FullMethodName   = "/" + ServiceName + "/UpdateAttribute"
	RosterService_UpdateSkill_FullMethodName       = "/" + ServiceName + "/UpdateSkill"
	RosterService_SelectClass_FullMethodName       = "/" + ServiceName + "/SelectClass"
	RosterService_RollSkillCheck_FullMethodName    = "/" + ServiceName + "/RollSkillCheck"
	RosterService_SetPartyCheck_FullMethodName     = "/" + ServiceName + "/SetPartyCheck"
	RosterService_RollPartyCheck_FullMethodName    = "/" + ServiceName + "/RollPartyCheck"
	RosterService_LoadSheet_FullMethodName         = "/" + ServiceName + "/LoadSheet"
	RosterService_SaveSheet_FullMethodName         = "/" + ServiceName + "/SaveSheet"
)

// RosterServiceServer is the server API for the roster service
type RosterServiceServer interface {
	GetSheet(context.Context, *GetSheetRequest) (*GetSheetResponse, error)
	DescribeCharacter(context.Context, *DescribeCharacterRequest) (*DescribeCharacterResponse, error)
	AddCharacter(context.Context, *AddCharacterRequest) (*AddCharacterResponse, error)
	ResetAll(context.Context, *ResetAllRequest) (*ResetAllResponse, error)
	UpdateAttribute(context.Context, *UpdateAttributeRequest) (*UpdateAttributeResponse, error)
	UpdateSkill(context.Context, *UpdateSkillRequest) (*UpdateSkillResponse, error)
	SelectClass(context.Context, *SelectClassRequest) (*SelectClassResponse, error)
	RollSkillCheck(context.Context, *RollSkillCheckRequest) (*RollSkillCheckResponse, error)
	SetPartyCheck(context.Context, *SetPartyCheckRequest) (*SetPartyCheckResponse, error)
	RollPartyCheck(context.Context, *RollPartyCheckRequest) (*RollPartyCheckResponse, error)
	LoadSheet(context.Context, *LoadSheetRequest) (*LoadSheetResponse, error)
	SaveSheet(context.Context, *SaveSheetRequest) (*SaveSheetResponse, error)
}

// RegisterRosterServiceServer registers srv on s
func RegisterRosterServiceServer(s grpc.ServiceRegistrar, srv RosterServiceServer) {
	s.RegisterService(&RosterService_ServiceDesc, srv)
}

func _RosterService_GetSheet_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetSheetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RosterServiceServer).GetSheet(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RosterService_GetSheet_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RosterServiceServer).GetSheet(ctx, req.(*GetSheetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RosterService_DescribeCharacter_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DescribeCharacterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RosterServiceServer).DescribeCharacter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RosterService_DescribeCharacter_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RosterServiceServer).DescribeCharacter(ctx, req.(*DescribeCharacterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RosterService_AddCharacter_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(AddCharacterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RosterServiceServer).AddCharacter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RosterService_AddCharacter_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RosterServiceServer).AddCharacter(ctx, req.(*AddCharacterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RosterService_ResetAll_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ResetAllRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RosterServiceServer).ResetAll(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RosterService_ResetAll_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RosterServiceServer).ResetAll(ctx, req.(*ResetAllRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RosterService_UpdateAttribute_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UpdateAttributeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RosterServiceServer).UpdateAttribute(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RosterService_UpdateAttribute_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RosterServiceServer).UpdateAttribute(ctx, req.(*UpdateAttributeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RosterService_UpdateSkill_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UpdateSkillRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RosterServiceServer).UpdateSkill(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RosterService_UpdateSkill_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RosterServiceServer).UpdateSkill(ctx, req.(*UpdateSkillRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RosterService_SelectClass_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SelectClassRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RosterServiceServer).SelectClass(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RosterService_SelectClass_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RosterServiceServer).SelectClass(ctx, req.(*SelectClassRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RosterService_RollSkillCheck_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RollSkillCheckRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RosterServiceServer).RollSkillCheck(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RosterService_RollSkillCheck_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RosterServiceServer).RollSkillCheck(ctx, req.(*RollSkillCheckRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RosterService_SetPartyCheck_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SetPartyCheckRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RosterServiceServer).SetPartyCheck(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RosterService_SetPartyCheck_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RosterServiceServer).SetPartyCheck(ctx, req.(*SetPartyCheckRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RosterService_RollPartyCheck_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RollPartyCheckRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RosterServiceServer).RollPartyCheck(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RosterService_RollPartyCheck_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RosterServiceServer).RollPartyCheck(ctx, req.(*RollPartyCheckRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RosterService_LoadSheet_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(LoadSheetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RosterServiceServer).LoadSheet(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RosterService_LoadSheet_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RosterServiceServer).LoadSheet(ctx, req.(*LoadSheetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RosterService_SaveSheet_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SaveSheetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RosterServiceServer).SaveSheet(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RosterService_SaveSheet_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RosterServiceServer).SaveSheet(ctx, req.(*SaveSheetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// RosterService_ServiceDesc describes the roster service for grpc.Server
var RosterService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RosterServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetSheet",
			Handler:    _RosterService_GetSheet_Handler,
		},
		{
			MethodName: "DescribeCharacter",
			Handler:    _RosterService_DescribeCharacter_Handler,
		},
		{
			MethodName: "AddCharacter",
			Handler:    _RosterService_AddCharacter_Handler,
		},
		{
			MethodName: "ResetAll",
			Handler:    _RosterService_ResetAll_Handler,
		},
		{
			MethodName: "UpdateAttribute",
			Handler:    _RosterService_UpdateAttribute_Handler,
		},
		{
			MethodName: "UpdateSkill",
			Handler:    _RosterService_UpdateSkill_Handler,
		},
		{
			MethodName: "SelectClass",
			Handler:    _RosterService_SelectClass_Handler,
		},
		{
			MethodName: "RollSkillCheck",
			Handler:    _RosterService_RollSkillCheck_Handler,
		},
		{
			MethodName: "SetPartyCheck",
			Handler:    _RosterService_SetPartyCheck_Handler,
		},
		{
			MethodName: "RollPartyCheck",
			Handler:    _RosterService_RollPartyCheck_Handler,
		},
		{
			MethodName: "LoadSheet",
			Handler:    _RosterService_LoadSheet_Handler,
		},
		{
			MethodName: "SaveSheet",
			Handler:    _RosterService_SaveSheet_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rpgsheet/roster/v1alpha1/roster.json",
}
