// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: boxes/v1/boxes.proto

package boxespb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	BoxesService_CreateBusiness_FullMethodName      = "/boxes.v1.BoxesService/CreateBusiness"
	BoxesService_ListBusinesses_FullMethodName      = "/boxes.v1.BoxesService/ListBusinesses"
	BoxesService_CreateBox_FullMethodName           = "/boxes.v1.BoxesService/CreateBox"
	BoxesService_ListBoxes_FullMethodName           = "/boxes.v1.BoxesService/ListBoxes"
	BoxesService_GetChecklist_FullMethodName        = "/boxes.v1.BoxesService/GetChecklist"
	BoxesService_SetAttestations_FullMethodName     = "/boxes.v1.BoxesService/SetAttestations"
	BoxesService_SetNoReceiptReason_FullMethodName  = "/boxes.v1.BoxesService/SetNoReceiptReason"
	BoxesService_SubmitDocument_FullMethodName      = "/boxes.v1.BoxesService/SubmitDocument"
	BoxesService_ListInbox_FullMethodName           = "/boxes.v1.BoxesService/ListInbox"
	BoxesService_FindMatch_FullMethodName           = "/boxes.v1.BoxesService/FindMatch"
	BoxesService_AttachDocument_FullMethodName      = "/boxes.v1.BoxesService/AttachDocument"
	BoxesService_GetAggregatedFields_FullMethodName = "/boxes.v1.BoxesService/GetAggregatedFields"
	BoxesService_SetFieldOverride_FullMethodName    = "/boxes.v1.BoxesService/SetFieldOverride"
	BoxesService_ClearFieldOverride_FullMethodName  = "/boxes.v1.BoxesService/ClearFieldOverride"
	BoxesService_ExportBoxes_FullMethodName         = "/boxes.v1.BoxesService/ExportBoxes"
)

// BoxesServiceClient is the client API for BoxesService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type BoxesServiceClient interface {
	CreateBusiness(ctx context.Context, in *CreateBusinessRequest, opts ...grpc.CallOption) (*CreateBusinessResponse, error)
	ListBusinesses(ctx context.Context, in *ListBusinessesRequest, opts ...grpc.CallOption) (*ListBusinessesResponse, error)
	CreateBox(ctx context.Context, in *CreateBoxRequest, opts ...grpc.CallOption) (*CreateBoxResponse, error)
	ListBoxes(ctx context.Context, in *ListBoxesRequest, opts ...grpc.CallOption) (*ListBoxesResponse, error)
	GetChecklist(ctx context.Context, in *GetChecklistRequest, opts ...grpc.CallOption) (*GetChecklistResponse, error)
	SetAttestations(ctx context.Context, in *SetAttestationsRequest, opts ...grpc.CallOption) (*SetAttestationsResponse, error)
	SetNoReceiptReason(ctx context.Context, in *SetNoReceiptReasonRequest, opts ...grpc.CallOption) (*SetNoReceiptReasonResponse, error)
	SubmitDocument(ctx context.Context, in *SubmitDocumentRequest, opts ...grpc.CallOption) (*SubmitDocumentResponse, error)
	ListInbox(ctx context.Context, in *ListInboxRequest, opts ...grpc.CallOption) (*ListInboxResponse, error)
	FindMatch(ctx context.Context, in *FindMatchRequest, opts ...grpc.CallOption) (*FindMatchResponse, error)
	AttachDocument(ctx context.Context, in *AttachDocumentRequest, opts ...grpc.CallOption) (*AttachDocumentResponse, error)
	GetAggregatedFields(ctx context.Context, in *GetAggregatedFieldsRequest, opts ...grpc.CallOption) (*GetAggregatedFieldsResponse, error)
	SetFieldOverride(ctx context.Context, in *SetFieldOverrideRequest, opts ...grpc.CallOption) (*SetFieldOverrideResponse, error)
	ClearFieldOverride(ctx context.Context, in *ClearFieldOverrideRequest, opts ...grpc.CallOption) (*ClearFieldOverrideResponse, error)
	ExportBoxes(ctx context.Context, in *ExportBoxesRequest, opts ...grpc.CallOption) (*ExportBoxesResponse, error)
}

type boxesServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewBoxesServiceClient(cc grpc.ClientConnInterface) BoxesServiceClient {
	return &boxesServiceClient{cc}
}

func (c *boxesServiceClient) CreateBusiness(ctx context.Context, in *CreateBusinessRequest, opts ...grpc.CallOption) (*CreateBusinessResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateBusinessResponse)
	err := c.cc.Invoke(ctx, BoxesService_CreateBusiness_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *boxesServiceClient) ListBusinesses(ctx context.Context, in *ListBusinessesRequest, opts ...grpc.CallOption) (*ListBusinessesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListBusinessesResponse)
	err := c.cc.Invoke(ctx, BoxesService_ListBusinesses_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *boxesServiceClient) CreateBox(ctx context.Context, in *CreateBoxRequest, opts ...grpc.CallOption) (*CreateBoxResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateBoxResponse)
	err := c.cc.Invoke(ctx, BoxesService_CreateBox_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *boxesServiceClient) ListBoxes(ctx context.Context, in *ListBoxesRequest, opts ...grpc.CallOption) (*ListBoxesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListBoxesResponse)
	err := c.cc.Invoke(ctx, BoxesService_ListBoxes_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *boxesServiceClient) GetChecklist(ctx context.Context, in *GetChecklistRequest, opts ...grpc.CallOption) (*GetChecklistResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetChecklistResponse)
	err := c.cc.Invoke(ctx, BoxesService_GetChecklist_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *boxesServiceClient) SetAttestations(ctx context.Context, in *SetAttestationsRequest, opts ...grpc.CallOption) (*SetAttestationsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetAttestationsResponse)
	err := c.cc.Invoke(ctx, BoxesService_SetAttestations_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *boxesServiceClient) SetNoReceiptReason(ctx context.Context, in *SetNoReceiptReasonRequest, opts ...grpc.CallOption) (*SetNoReceiptReasonResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetNoReceiptReasonResponse)
	err := c.cc.Invoke(ctx, BoxesService_SetNoReceiptReason_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *boxesServiceClient) SubmitDocument(ctx context.Context, in *SubmitDocumentRequest, opts ...grpc.CallOption) (*SubmitDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitDocumentResponse)
	err := c.cc.Invoke(ctx, BoxesService_SubmitDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *boxesServiceClient) ListInbox(ctx context.Context, in *ListInboxRequest, opts ...grpc.CallOption) (*ListInboxResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListInboxResponse)
	err := c.cc.Invoke(ctx, BoxesService_ListInbox_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *boxesServiceClient) FindMatch(ctx context.Context, in *FindMatchRequest, opts ...grpc.CallOption) (*FindMatchResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(FindMatchResponse)
	err := c.cc.Invoke(ctx, BoxesService_FindMatch_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *boxesServiceClient) AttachDocument(ctx context.Context, in *AttachDocumentRequest, opts ...grpc.CallOption) (*AttachDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AttachDocumentResponse)
	err := c.cc.Invoke(ctx, BoxesService_AttachDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *boxesServiceClient) GetAggregatedFields(ctx context.Context, in *GetAggregatedFieldsRequest, opts ...grpc.CallOption) (*GetAggregatedFieldsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetAggregatedFieldsResponse)
	err := c.cc.Invoke(ctx, BoxesService_GetAggregatedFields_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *boxesServiceClient) SetFieldOverride(ctx context.Context, in *SetFieldOverrideRequest, opts ...grpc.CallOption) (*SetFieldOverrideResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetFieldOverrideResponse)
	err := c.cc.Invoke(ctx, BoxesService_SetFieldOverride_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *boxesServiceClient) ClearFieldOverride(ctx context.Context, in *ClearFieldOverrideRequest, opts ...grpc.CallOption) (*ClearFieldOverrideResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ClearFieldOverrideResponse)
	err := c.cc.Invoke(ctx, BoxesService_ClearFieldOverride_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *boxesServiceClient) ExportBoxes(ctx context.Context, in *ExportBoxesRequest, opts ...grpc.CallOption) (*ExportBoxesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportBoxesResponse)
	err := c.cc.Invoke(ctx, BoxesService_ExportBoxes_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BoxesServiceServer is the server API for BoxesService service.
// All implementations must embed UnimplementedBoxesServiceServer
// for forward compatibility.
type BoxesServiceServer interface {
	CreateBusiness(context.Context, *CreateBusinessRequest) (*CreateBusinessResponse, error)
	ListBusinesses(context.Context, *ListBusinessesRequest) (*ListBusinessesResponse, error)
	CreateBox(context.Context, *CreateBoxRequest) (*CreateBoxResponse, error)
	ListBoxes(context.Context, *ListBoxesRequest) (*ListBoxesResponse, error)
	GetChecklist(context.Context, *GetChecklistRequest) (*GetChecklistResponse, error)
	SetAttestations(context.Context, *SetAttestationsRequest) (*SetAttestationsResponse, error)
	SetNoReceiptReason(context.Context, *SetNoReceiptReasonRequest) (*SetNoReceiptReasonResponse, error)
	SubmitDocument(context.Context, *SubmitDocumentRequest) (*SubmitDocumentResponse, error)
	ListInbox(context.Context, *ListInboxRequest) (*ListInboxResponse, error)
	FindMatch(context.Context, *FindMatchRequest) (*FindMatchResponse, error)
	AttachDocument(context.Context, *AttachDocumentRequest) (*AttachDocumentResponse, error)
	GetAggregatedFields(context.Context, *GetAggregatedFieldsRequest) (*GetAggregatedFieldsResponse, error)
	SetFieldOverride(context.Context, *SetFieldOverrideRequest) (*SetFieldOverrideResponse, error)
	ClearFieldOverride(context.Context, *ClearFieldOverrideRequest) (*ClearFieldOverrideResponse, error)
	ExportBoxes(context.Context, *ExportBoxesRequest) (*ExportBoxesResponse, error)
	mustEmbedUnimplementedBoxesServiceServer()
}

// UnimplementedBoxesServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedBoxesServiceServer struct{}

func (UnimplementedBoxesServiceServer) CreateBusiness(context.Context, *CreateBusinessRequest) (*CreateBusinessResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateBusiness not implemented")
}
func (UnimplementedBoxesServiceServer) ListBusinesses(context.Context, *ListBusinessesRequest) (*ListBusinessesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListBusinesses not implemented")
}
func (UnimplementedBoxesServiceServer) CreateBox(context.Context, *CreateBoxRequest) (*CreateBoxResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateBox not implemented")
}
func (UnimplementedBoxesServiceServer) ListBoxes(context.Context, *ListBoxesRequest) (*ListBoxesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListBoxes not implemented")
}
func (UnimplementedBoxesServiceServer) GetChecklist(context.Context, *GetChecklistRequest) (*GetChecklistResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetChecklist not implemented")
}
func (UnimplementedBoxesServiceServer) SetAttestations(context.Context, *SetAttestationsRequest) (*SetAttestationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetAttestations not implemented")
}
func (UnimplementedBoxesServiceServer) SetNoReceiptReason(context.Context, *SetNoReceiptReasonRequest) (*SetNoReceiptReasonResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetNoReceiptReason not implemented")
}
func (UnimplementedBoxesServiceServer) SubmitDocument(context.Context, *SubmitDocumentRequest) (*SubmitDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitDocument not implemented")
}
func (UnimplementedBoxesServiceServer) ListInbox(context.Context, *ListInboxRequest) (*ListInboxResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListInbox not implemented")
}
func (UnimplementedBoxesServiceServer) FindMatch(context.Context, *FindMatchRequest) (*FindMatchResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method FindMatch not implemented")
}
func (UnimplementedBoxesServiceServer) AttachDocument(context.Context, *AttachDocumentRequest) (*AttachDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AttachDocument not implemented")
}
func (UnimplementedBoxesServiceServer) GetAggregatedFields(context.Context, *GetAggregatedFieldsRequest) (*GetAggregatedFieldsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAggregatedFields not implemented")
}
func (UnimplementedBoxesServiceServer) SetFieldOverride(context.Context, *SetFieldOverrideRequest) (*SetFieldOverrideResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetFieldOverride not implemented")
}
func (UnimplementedBoxesServiceServer) ClearFieldOverride(context.Context, *ClearFieldOverrideRequest) (*ClearFieldOverrideResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ClearFieldOverride not implemented")
}
func (UnimplementedBoxesServiceServer) ExportBoxes(context.Context, *ExportBoxesRequest) (*ExportBoxesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportBoxes not implemented")
}
func (UnimplementedBoxesServiceServer) mustEmbedUnimplementedBoxesServiceServer() {}
func (UnimplementedBoxesServiceServer) testEmbeddedByValue()                      {}

// UnsafeBoxesServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to BoxesServiceServer will
// result in compilation errors.
type UnsafeBoxesServiceServer interface {
	mustEmbedUnimplementedBoxesServiceServer()
}

func RegisterBoxesServiceServer(s grpc.ServiceRegistrar, srv BoxesServiceServer) {
	// If the following call pancis, it indicates UnimplementedBoxesServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&BoxesService_ServiceDesc, srv)
}

func _BoxesService_CreateBusiness_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateBusinessRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BoxesServiceServer).CreateBusiness(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BoxesService_CreateBusiness_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BoxesServiceServer).CreateBusiness(ctx, req.(*CreateBusinessRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BoxesService_ListBusinesses_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListBusinessesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BoxesServiceServer).ListBusinesses(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BoxesService_ListBusinesses_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BoxesServiceServer).ListBusinesses(ctx, req.(*ListBusinessesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BoxesService_CreateBox_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateBoxRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BoxesServiceServer).CreateBox(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BoxesService_CreateBox_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BoxesServiceServer).CreateBox(ctx, req.(*CreateBoxRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BoxesService_ListBoxes_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListBoxesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BoxesServiceServer).ListBoxes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BoxesService_ListBoxes_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BoxesServiceServer).ListBoxes(ctx, req.(*ListBoxesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BoxesService_GetChecklist_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetChecklistRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BoxesServiceServer).GetChecklist(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BoxesService_GetChecklist_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BoxesServiceServer).GetChecklist(ctx, req.(*GetChecklistRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BoxesService_SetAttestations_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetAttestationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BoxesServiceServer).SetAttestations(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BoxesService_SetAttestations_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BoxesServiceServer).SetAttestations(ctx, req.(*SetAttestationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BoxesService_SetNoReceiptReason_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetNoReceiptReasonRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BoxesServiceServer).SetNoReceiptReason(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BoxesService_SetNoReceiptReason_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BoxesServiceServer).SetNoReceiptReason(ctx, req.(*SetNoReceiptReasonRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BoxesService_SubmitDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BoxesServiceServer).SubmitDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BoxesService_SubmitDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BoxesServiceServer).SubmitDocument(ctx, req.(*SubmitDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BoxesService_ListInbox_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListInboxRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BoxesServiceServer).ListInbox(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BoxesService_ListInbox_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BoxesServiceServer).ListInbox(ctx, req.(*ListInboxRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BoxesService_FindMatch_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FindMatchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BoxesServiceServer).FindMatch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BoxesService_FindMatch_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BoxesServiceServer).FindMatch(ctx, req.(*FindMatchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BoxesService_AttachDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AttachDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BoxesServiceServer).AttachDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BoxesService_AttachDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BoxesServiceServer).AttachDocument(ctx, req.(*AttachDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BoxesService_GetAggregatedFields_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetAggregatedFieldsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BoxesServiceServer).GetAggregatedFields(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BoxesService_GetAggregatedFields_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BoxesServiceServer).GetAggregatedFields(ctx, req.(*GetAggregatedFieldsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BoxesService_SetFieldOverride_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetFieldOverrideRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BoxesServiceServer).SetFieldOverride(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BoxesService_SetFieldOverride_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BoxesServiceServer).SetFieldOverride(ctx, req.(*SetFieldOverrideRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BoxesService_ClearFieldOverride_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ClearFieldOverrideRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BoxesServiceServer).ClearFieldOverride(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BoxesService_ClearFieldOverride_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BoxesServiceServer).ClearFieldOverride(ctx, req.(*ClearFieldOverrideRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BoxesService_ExportBoxes_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportBoxesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BoxesServiceServer).ExportBoxes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BoxesService_ExportBoxes_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BoxesServiceServer).ExportBoxes(ctx, req.(*ExportBoxesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// BoxesService_ServiceDesc is the grpc.ServiceDesc for BoxesService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var BoxesService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "boxes.v1.BoxesService",
	HandlerType: (*BoxesServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateBusiness",
			Handler:    _BoxesService_CreateBusiness_Handler,
		},
		{
			MethodName: "ListBusinesses",
			Handler:    _BoxesService_ListBusinesses_Handler,
		},
		{
			MethodName: "CreateBox",
			Handler:    _BoxesService_CreateBox_Handler,
		},
		{
			MethodName: "ListBoxes",
			Handler:    _BoxesService_ListBoxes_Handler,
		},
		{
			MethodName: "GetChecklist",
			Handler:    _BoxesService_GetChecklist_Handler,
		},
		{
			MethodName: "SetAttestations",
			Handler:    _BoxesService_SetAttestations_Handler,
		},
		{
			MethodName: "SetNoReceiptReason",
			Handler:    _BoxesService_SetNoReceiptReason_Handler,
		},
		{
			MethodName: "SubmitDocument",
			Handler:    _BoxesService_SubmitDocument_Handler,
		},
		{
			MethodName: "ListInbox",
			Handler:    _BoxesService_ListInbox_Handler,
		},
		{
			MethodName: "FindMatch",
			Handler:    _BoxesService_FindMatch_Handler,
		},
		{
			MethodName: "AttachDocument",
			Handler:    _BoxesService_AttachDocument_Handler,
		},
		{
			MethodName: "GetAggregatedFields",
			Handler:    _BoxesService_GetAggregatedFields_Handler,
		},
		{
			MethodName: "SetFieldOverride",
			Handler:    _BoxesService_SetFieldOverride_Handler,
		},
		{
			MethodName: "ClearFieldOverride",
			Handler:    _BoxesService_ClearFieldOverride_Handler,
		},
		{
			MethodName: "ExportBoxes",
			Handler:    _BoxesService_ExportBoxes_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "boxes/v1/boxes.proto",
}
