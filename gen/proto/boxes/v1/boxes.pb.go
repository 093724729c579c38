// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: boxes/v1/boxes.proto

package boxespb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Business struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name            string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	TaxId           string                 `protobuf:"bytes,3,opt,name=tax_id,json=taxId,proto3" json:"tax_id,omitempty"`
	DefaultCurrency string                 `protobuf:"bytes,4,opt,name=default_currency,json=defaultCurrency,proto3" json:"default_currency,omitempty"`
	CreatedAt       string                 `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt       string                 `protobuf:"bytes,6,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Business) Reset() {
	*x = Business{}
	mi := &file_boxes_v1_boxes_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Business) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Business) ProtoMessage() {}

func (x *Business) ProtoReflect() protoreflect.Message {
	mi := &file_boxes_v1_boxes_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Business.ProtoReflect.Descriptor instead.
func (*Business) Descriptor() ([]byte, []int) {
	return file_boxes_v1_boxes_proto_rawDescGZIP(), []int{0}
}

func (x *Business) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Business) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Business) GetTaxId() string {
	if x != nil {
		return x.TaxId
	}
	return ""
}

func (x *Business) GetDefaultCurrency() string {
	if x != nil {
		return x.DefaultCurrency
	}
	return ""
}

func (x *Business) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Business) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Box struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	BusinessId      string                 `protobuf:"bytes,2,opt,name=business_id,json=businessId,proto3" json:"business_id,omitempty"`
	BoxType         string                 `protobuf:"bytes,3,opt,name=box_type,json=boxType,proto3" json:"box_type,omitempty"`
	ExpenseType     string                 `protobuf:"bytes,4,opt,name=expense_type,json=expenseType,proto3" json:"expense_type,omitempty"`
	ContactName     string                 `protobuf:"bytes,5,opt,name=contact_name,json=contactName,proto3" json:"contact_name,omitempty"`
	ContactTaxId    string                 `protobuf:"bytes,6,opt,name=contact_tax_id,json=contactTaxId,proto3" json:"contact_tax_id,omitempty"`
	BoxDate         string                 `protobuf:"bytes,7,opt,name=box_date,json=boxDate,proto3" json:"box_date,omitempty"`
	HasVat          bool                   `protobuf:"varint,8,opt,name=has_vat,json=hasVat,proto3" json:"has_vat,omitempty"`
	HasWht          bool                   `protobuf:"varint,9,opt,name=has_wht,json=hasWht,proto3" json:"has_wht,omitempty"`
	TotalAmount     float64                `protobuf:"fixed64,10,opt,name=total_amount,json=totalAmount,proto3" json:"total_amount,omitempty"`
	VatAmount       float64                `protobuf:"fixed64,11,opt,name=vat_amount,json=vatAmount,proto3" json:"vat_amount,omitempty"`
	WhtAmount       float64                `protobuf:"fixed64,12,opt,name=wht_amount,json=whtAmount,proto3" json:"wht_amount,omitempty"`
	PaymentStatus   string                 `protobuf:"bytes,13,opt,name=payment_status,json=paymentStatus,proto3" json:"payment_status,omitempty"`
	NoReceiptReason string                 `protobuf:"bytes,14,opt,name=no_receipt_reason,json=noReceiptReason,proto3" json:"no_receipt_reason,omitempty"`
	IsPaid          bool                   `protobuf:"varint,15,opt,name=is_paid,json=isPaid,proto3" json:"is_paid,omitempty"`
	WhtSent         bool                   `protobuf:"varint,16,opt,name=wht_sent,json=whtSent,proto3" json:"wht_sent,omitempty"`
	DocStatus       string                 `protobuf:"bytes,17,opt,name=doc_status,json=docStatus,proto3" json:"doc_status,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Box) Reset() {
	*x = Box{}
	mi := &file_boxes_v1_boxes_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Box) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Box) ProtoMessage() {}

func (x *Box) ProtoReflect() protoreflect.Message {
	mi := &file_boxes_v1_boxes_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Box.ProtoReflect.Descriptor instead.
func (*Box) Descriptor() ([]byte, []int) {
	return file_boxes_v1_boxes_proto_rawDescGZIP(), []int{1}
}

func (x *Box) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Box) GetBusinessId() string {
	if x != nil {
		return x.BusinessId
	}
	return ""
}

func (x *Box) GetBoxType() string {
	if x != nil {
		return x.BoxType
	}
	return ""
}

func (x *Box) GetExpenseType() string {
	if x != nil {
		return x.ExpenseType
	}
	return ""
}

func (x *Box) GetContactName() string {
	if x != nil {
		return x.ContactName
	}
	return ""
}

func (x *Box) GetContactTaxId() string {
	if x != nil {
		return x.ContactTaxId
	}
	return ""
}

func (x *Box) GetBoxDate() string {
	if x != nil {
		return x.BoxDate
	}
	return ""
}

func (x *Box) GetHasVat() bool {
	if x != nil {
		return x.HasVat
	}
	return false
}

func (x *Box) GetHasWht() bool {
	if x != nil {
		return x.HasWht
	}
	return false
}

func (x *Box) GetTotalAmount() float64 {
	if x != nil {
		return x.TotalAmount
	}
	return 0
}

func (x *Box) GetVatAmount() float64 {
	if x != nil {
		return x.VatAmount
	}
	return 0
}

func (x *Box) GetWhtAmount() float64 {
	if x != nil {
		return x.WhtAmount
	}
	return 0
}

func (x *Box) GetPaymentStatus() string {
	if x != nil {
		return x.PaymentStatus
	}
	return ""
}

func (x *Box) GetNoReceiptReason() string {
	if x != nil {
		return x.NoReceiptReason
	}
	return ""
}

func (x *Box) GetIsPaid() bool {
	if x != nil {
		return x.IsPaid
	}
	return false
}

func (x *Box) GetWhtSent() bool {
	if x != nil {
		return x.WhtSent
	}
	return false
}

func (x *Box) GetDocStatus() string {
	if x != nil {
		return x.DocStatus
	}
	return ""
}

type ChecklistItem struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Label          string                 `protobuf:"bytes,2,opt,name=label,proto3" json:"label,omitempty"`
	Required       bool                   `protobuf:"varint,3,opt,name=required,proto3" json:"required,omitempty"`
	Completed      bool                   `protobuf:"varint,4,opt,name=completed,proto3" json:"completed,omitempty"`
	CanToggle      bool                   `protobuf:"varint,5,opt,name=can_toggle,json=canToggle,proto3" json:"can_toggle,omitempty"`
	RelatedDocType string                 `protobuf:"bytes,6,opt,name=related_doc_type,json=relatedDocType,proto3" json:"related_doc_type,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ChecklistItem) Reset() {
	*x = ChecklistItem{}
	mi := &file_boxes_v1_boxes_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChecklistItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChecklistItem) ProtoMessage() {}

func (x *ChecklistItem) ProtoReflect() protoreflect.Message {
	mi := &file_boxes_v1_boxes_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ChecklistItem.ProtoReflect.Descriptor instead.
func (*ChecklistItem) Descriptor() ([]byte, []int) {
	return file_boxes_v1_boxes_proto_rawDescGZIP(), []int{2}
}

func (x *ChecklistItem) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ChecklistItem) GetLabel() string {
	if x != nil {
		return x.Label
	}
	return ""
}

func (x *ChecklistItem) GetRequired() bool {
	if x != nil {
		return x.Required
	}
	return false
}

func (x *ChecklistItem) GetCompleted() bool {
	if x != nil {
		return x.Completed
	}
	return false
}

func (x *ChecklistItem) GetCanToggle() bool {
	if x != nil {
		return x.CanToggle
	}
	return false
}

func (x *ChecklistItem) GetRelatedDocType() string {
	if x != nil {
		return x.RelatedDocType
	}
	return ""
}

type InboxDocument struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	BusinessId    string                 `protobuf:"bytes,2,opt,name=business_id,json=businessId,proto3" json:"business_id,omitempty"`
	Filename      string                 `protobuf:"bytes,3,opt,name=filename,proto3" json:"filename,omitempty"`
	DocType       string                 `protobuf:"bytes,4,opt,name=doc_type,json=docType,proto3" json:"doc_type,omitempty"`
	UploadedAt    string                 `protobuf:"bytes,5,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InboxDocument) Reset() {
	*x = InboxDocument{}
	mi := &file_boxes_v1_boxes_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InboxDocument) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InboxDocument) ProtoMessage() {}

func (x *InboxDocument) ProtoReflect() protoreflect.Message {
	mi := &file_boxes_v1_boxes_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InboxDocument.ProtoReflect.Descriptor instead.
func (*InboxDocument) Descriptor() ([]byte, []int) {
	return file_boxes_v1_boxes_proto_rawDescGZIP(), []int{3}
}

func (x *InboxDocument) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *InboxDocument) GetBusinessId() string {
	if x != nil {
		return x.BusinessId
	}
	return ""
}

func (x *InboxDocument) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *InboxDocument) GetDocType() string {
	if x != nil {
		return x.DocType
	}
	return ""
}

func (x *InboxDocument) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

type MatchCandidate struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BoxId         string                 `protobuf:"bytes,1,opt,name=box_id,json=boxId,proto3" json:"box_id,omitempty"`
	Score         int32                  `protobuf:"varint,2,opt,name=score,proto3" json:"score,omitempty"`
	Reasons       []string               `protobuf:"bytes,3,rep,name=reasons,proto3" json:"reasons,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MatchCandidate) Reset() {
	*x = MatchCandidate{}
	mi := &file_boxes_v1_boxes_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MatchCandidate) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MatchCandidate) ProtoMessage() {}

func (x *MatchCandidate) ProtoReflect() protoreflect.Message {
	mi := &file_boxes_v1_boxes_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MatchCandidate.ProtoReflect.Descriptor instead.
func (*MatchCandidate) Descriptor() ([]byte, []int) {
	return file_boxes_v1_boxes_proto_rawDescGZIP(), []int{4}
}

func (x *MatchCandidate) GetBoxId() string {
	if x != nil {
		return x.BoxId
	}
	return ""
}

func (x *MatchCandidate) GetScore() int32 {
	if x != nil {
		return x.Score
	}
	return 0
}

func (x *MatchCandidate) GetReasons() []string {
	if x != nil {
		return x.Reasons
	}
	return nil
}

type FieldSource struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Confidence    float32                `protobuf:"fixed32,2,opt,name=confidence,proto3" json:"confidence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FieldSource) Reset() {
	*x = FieldSource{}
	mi := &file_boxes_v1_boxes_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FieldSource) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FieldSource) ProtoMessage() {}

func (x *FieldSource) ProtoReflect() protoreflect.Message {
	mi := &file_boxes_v1_boxes_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FieldSource.ProtoReflect.Descriptor instead.
func (*FieldSource) Descriptor() ([]byte, []int) {
	return file_boxes_v1_boxes_proto_rawDescGZIP(), []int{5}
}

func (x *FieldSource) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *FieldSource) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type ValueCluster struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Value         string                 `protobuf:"bytes,1,opt,name=value,proto3" json:"value,omitempty"`
	Sources       []*FieldSource         `protobuf:"bytes,2,rep,name=sources,proto3" json:"sources,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ValueCluster) Reset() {
	*x = ValueCluster{}
	mi := &file_boxes_v1_boxes_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValueCluster) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValueCluster) ProtoMessage() {}

func (x *ValueCluster) ProtoReflect() protoreflect.Message {
	mi := &file_boxes_v1_boxes_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValueCluster.ProtoReflect.Descriptor instead.
func (*ValueCluster) Descriptor() ([]byte, []int) {
	return file_boxes_v1_boxes_proto_rawDescGZIP(), []int{6}
}

func (x *ValueCluster) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

func (x *ValueCluster) GetSources() []*FieldSource {
	if x != nil {
		return x.Sources
	}
	return nil
}

type AggregatedField struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Value         string                 `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
	HasConflict   bool                   `protobuf:"varint,3,opt,name=has_conflict,json=hasConflict,proto3" json:"has_conflict,omitempty"`
	UserOverride  bool                   `protobuf:"varint,4,opt,name=user_override,json=userOverride,proto3" json:"user_override,omitempty"`
	Clusters      []*ValueCluster        `protobuf:"bytes,5,rep,name=clusters,proto3" json:"clusters,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AggregatedField) Reset() {
	*x = AggregatedField{}
	mi := &file_boxes_v1_boxes_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AggregatedField) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AggregatedField) ProtoMessage() {}

func (x *AggregatedField) ProtoReflect() protoreflect.Message {
	mi := &file_boxes_v1_boxes_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AggregatedField.ProtoReflect.Descriptor instead.
func (*AggregatedField) Descriptor() ([]byte, []int) {
	return file_boxes_v1_boxes_proto_rawDescGZIP(), []int{7}
}

func (x *AggregatedField) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *AggregatedField) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

func (x *AggregatedField) GetHasConflict() bool {
	if x != nil {
		return x.HasConflict
	}
	return false
}

func (x *AggregatedField) GetUserOverride() bool {
	if x != nil {
		return x.UserOverride
	}
	return false
}

func (x *AggregatedField) GetClusters() []*ValueCluster {
	if x != nil {
		return x.Clusters
	}
	return nil
}

type CreateBusinessRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Name            string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	TaxId           string                 `protobuf:"bytes,2,opt,name=tax_id,json=taxId,proto3" json:"tax_id,omitempty"`
	DefaultCurrency string                 `protobuf:"bytes,3,opt,name=default_currency,json=defaultCurrency,proto3" json:"default_currency,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *CreateBusinessRequest) Reset() {
	*x = CreateBusinessRequest{}
	mi := &file_boxes_v1_boxes_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateBusinessRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateBusinessRequest) ProtoMessage() {}

func (x *CreateBusinessRequest) ProtoReflect() protoreflect.Message {
	mi := &file_boxes_v1_boxes_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateBusinessRequest.ProtoReflect.Descriptor instead.
func (*CreateBusinessRequest) Descriptor() ([]byte, []int) {
	return file_boxes_v1_boxes_proto_rawDescGZIP(), []int{8}
}

func (x *CreateBusinessRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateBusinessRequest) GetTaxId() string {
	if x != nil {
		return x.TaxId
	}
	return ""
}

func (x *CreateBusinessRequest) GetDefaultCurrency() string {
	if x != nil {
		return x.DefaultCurrency
	}
	return ""
}

type CreateBusinessResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Business      *Business              `protobuf:"bytes,1,opt,name=business,proto3" json:"business,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateBusinessResponse) Reset() {
	*x = CreateBusinessResponse{}
	mi := &file_boxes_v1_boxes_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateBusinessResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateBusinessResponse) ProtoMessage() {}

func (x *CreateBusinessResponse) ProtoReflect() protoreflect.Message {
	mi := &file_boxes_v1_boxes_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateBusinessResponse.ProtoReflect.Descriptor instead.
func (*CreateBusinessResponse) Descriptor() ([]byte, []int) {
	return file_boxes_v1_boxes_proto_rawDescGZIP(), []int{9}
}

func (x *CreateBusinessResponse) GetBusiness() *Business {
	if x != nil {
		return x.Business
	}
	return nil
}

type ListBusinessesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListBusinessesRequest) Reset() {
	*x = ListBusinessesRequest{}
	mi := &file_boxes_v1_boxes_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListBusinessesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListBusinessesRequest) ProtoMessage() {}

func (x *ListBusinessesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_boxes_v1_boxes_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListBusinessesRequest.ProtoReflect.Descriptor instead.
func (*ListBusinessesRequest) Descriptor() ([]byte, []int) {
	return file_boxes_v1_boxes_proto_rawDescGZIP(), []int{10}
}

type ListBusinessesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Businesses    []*Business            `protobuf:"bytes,1,rep,name=businesses,proto3" json:"businesses,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListBusinessesResponse) Reset() {
	*x = ListBusinessesResponse{}
	mi := &file_boxes_v1_boxes_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListBusinessesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListBusinessesResponse) ProtoMessage() {}

func (x *ListBusinessesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_boxes_v1_boxes_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListBusinessesResponse.ProtoReflect.Descriptor instead.
func (*ListBusinessesResponse) Descriptor() ([]byte, []int) {
	return file_boxes_v1_boxes_proto_rawDescGZIP(), []int{11}
}

func (x *ListBusinessesResponse) GetBusinesses() []*Business {
	if x != nil {
		return x.Businesses
	}
	return nil
}

type CreateBoxRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	BusinessId      string                 `protobuf:"bytes,1,opt,name=business_id,json=businessId,proto3" json:"business_id,omitempty"`
	BoxType         string                 `protobuf:"bytes,2,opt,name=box_type,json=boxType,proto3" json:"box_type,omitempty"`
	ExpenseType     string                 `protobuf:"bytes,3,opt,name=expense_type,json=expenseType,proto3" json:"expense_type,omitempty"`
	ContactName     string                 `protobuf:"bytes,4,opt,name=contact_name,json=contactName,proto3" json:"contact_name,omitempty"`
	ContactTaxId    string                 `protobuf:"bytes,5,opt,name=contact_tax_id,json=contactTaxId,proto3" json:"contact_tax_id,omitempty"`
	BoxDate         string                 `protobuf:"bytes,6,opt,name=box_date,json=boxDate,proto3" json:"box_date,omitempty"`
	HasVat          bool                   `protobuf:"varint,7,opt,name=has_vat,json=hasVat,proto3" json:"has_vat,omitempty"`
	HasWht          bool                   `protobuf:"varint,8,opt,name=has_wht,json=hasWht,proto3" json:"has_wht,omitempty"`
	TotalAmount     float64                `protobuf:"fixed64,9,opt,name=total_amount,json=totalAmount,proto3" json:"total_amount,omitempty"`
	VatAmount       float64                `protobuf:"fixed64,10,opt,name=vat_amount,json=vatAmount,proto3" json:"vat_amount,omitempty"`
	WhtAmount       float64                `protobuf:"fixed64,11,opt,name=wht_amount,json=whtAmount,proto3" json:"wht_amount,omitempty"`
	NoReceiptReason string                 `protobuf:"bytes,12,opt,name=no_receipt_reason,json=noReceiptReason,proto3" json:"no_receipt_reason,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *CreateBoxRequest) Reset() {
	*x = CreateBoxRequest{}
	mi := &file_boxes_v1_boxes_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateBoxRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateBoxRequest) ProtoMessage() {}

func (x *CreateBoxRequest) ProtoReflect() protoreflect.Message {
	mi := &file_boxes_v1_boxes_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateBoxRequest.ProtoReflect.Descriptor instead.
func (*CreateBoxRequest) Descriptor() ([]byte, []int) {
	return file_boxes_v1_boxes_proto_rawDescGZIP(), []int{12}
}

func (x *CreateBoxRequest) GetBusinessId() string {
	if x != nil {
		return x.BusinessId
	}
	return ""
}

func (x *CreateBoxRequest) GetBoxType() string {
	if x != nil {
		return x.BoxType
	}
	return ""
}

func (x *CreateBoxRequest) GetExpenseType() string {
	if x != nil {
		return x.ExpenseType
	}
	return ""
}

func (x *CreateBoxRequest) GetContactName() string {
	if x != nil {
		return x.ContactName
	}
	return ""
}

func (x *CreateBoxRequest) GetContactTaxId() string {
	if x != nil {
		return x.ContactTaxId
	}
	return ""
}

func (x *CreateBoxRequest) GetBoxDate() string {
	if x != nil {
		return x.BoxDate
	}
	return ""
}

func (x *CreateBoxRequest) GetHasVat() bool {
	if x != nil {
		return x.HasVat
	}
	return false
}

func (x *CreateBoxRequest) GetHasWht() bool {
	if x != nil {
		return x.HasWht
	}
	return false
}

func (x *CreateBoxRequest) GetTotalAmount() float64 {
	if x != nil {
		return x.TotalAmount
	}
	return 0
}

func (x *CreateBoxRequest) GetVatAmount() float64 {
	if x != nil {
		return x.VatAmount
	}
	return 0
}

func (x *CreateBoxRequest) GetWhtAmount() float64 {
	if x != nil {
		return x.WhtAmount
	}
	return 0
}

func (x *CreateBoxRequest) GetNoReceiptReason() string {
	if x != nil {
		return x.NoReceiptReason
	}
	return ""
}

type CreateBoxResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Box           *Box                   `protobuf:"bytes,1,opt,name=box,proto3" json:"box,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateBoxResponse) Reset() {
	*x = CreateBoxResponse{}
	mi := &file_boxes_v1_boxes_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateBoxResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateBoxResponse) ProtoMessage() {}

func (x *CreateBoxResponse) ProtoReflect() protoreflect.Message {
	mi := &file_boxes_v1_boxes_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateBoxResponse.ProtoReflect.Descriptor instead.
func (*CreateBoxResponse) Descriptor() ([]byte, []int) {
	return file_boxes_v1_boxes_proto_rawDescGZIP(), []int{13}
}

func (x *CreateBoxResponse) GetBox() *Box {
	if x != nil {
		return x.Box
	}
	return nil
}

type ListBoxesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BusinessId    string                 `protobuf:"bytes,1,opt,name=business_id,json=businessId,proto3" json:"business_id,omitempty"`
	DocStatus     string                 `protobuf:"bytes,2,opt,name=doc_status,json=docStatus,proto3" json:"doc_status,omitempty"` // optional filter
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListBoxesRequest) Reset() {
	*x = ListBoxesRequest{}
	mi := &file_boxes_v1_boxes_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListBoxesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListBoxesRequest) ProtoMessage() {}

func (x *ListBoxesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_boxes_v1_boxes_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListBoxesRequest.ProtoReflect.Descriptor instead.
func (*ListBoxesRequest) Descriptor() ([]byte, []int) {
	return file_boxes_v1_boxes_proto_rawDescGZIP(), []int{14}
}

func (x *ListBoxesRequest) GetBusinessId() string {
	if x != nil {
		return x.BusinessId
	}
	return ""
}

func (x *ListBoxesRequest) GetDocStatus() string {
	if x != nil {
		return x.DocStatus
	}
	return ""
}

type ListBoxesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Boxes         []*Box                 `protobuf:"bytes,1,rep,name=boxes,proto3" json:"boxes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListBoxesResponse) Reset() {
	*x = ListBoxesResponse{}
	mi := &file_boxes_v1_boxes_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListBoxesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListBoxesResponse) ProtoMessage() {}

func (x *ListBoxesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_boxes_v1_boxes_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListBoxesResponse.ProtoReflect.Descriptor instead.
func (*ListBoxesResponse) Descriptor() ([]byte, []int) {
	return file_boxes_v1_boxes_proto_rawDescGZIP(), []int{15}
}

func (x *ListBoxesResponse) GetBoxes() []*Box {
	if x != nil {
		return x.Boxes
	}
	return nil
}

type GetChecklistRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BoxId         string                 `protobuf:"bytes,1,opt,name=box_id,json=boxId,proto3" json:"box_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetChecklistRequest) Reset() {
	*x = GetChecklistRequest{}
	mi := &file_boxes_v1_boxes_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetChecklistRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetChecklistRequest) ProtoMessage() {}

func (x *GetChecklistRequest) ProtoReflect() protoreflect.Message {
	mi := &file_boxes_v1_boxes_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetChecklistRequest.ProtoReflect.Descriptor instead.
func (*GetChecklistRequest) Descriptor() ([]byte, []int) {
	return file_boxes_v1_boxes_proto_rawDescGZIP(), []int{16}
}

func (x *GetChecklistRequest) GetBoxId() string {
	if x != nil {
		return x.BoxId
	}
	return ""
}

type GetChecklistResponse struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Box               *Box                   `protobuf:"bytes,1,opt,name=box,proto3" json:"box,omitempty"`
	Items             []*ChecklistItem       `protobuf:"bytes,2,rep,name=items,proto3" json:"items,omitempty"`
	Status            string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	CompletionPercent int32                  `protobuf:"varint,4,opt,name=completion_percent,json=completionPercent,proto3" json:"completion_percent,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *GetChecklistResponse) Reset() {
	*x = GetChecklistResponse{}
	mi := &file_boxes_v1_boxes_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetChecklistResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetChecklistResponse) ProtoMessage() {}

func (x *GetChecklistResponse) ProtoReflect() protoreflect.Message {
	mi := &file_boxes_v1_boxes_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetChecklistResponse.ProtoReflect.Descriptor instead.
func (*GetChecklistResponse) Descriptor() ([]byte, []int) {
	return file_boxes_v1_boxes_proto_rawDescGZIP(), []int{17}
}

func (x *GetChecklistResponse) GetBox() *Box {
	if x != nil {
		return x.Box
	}
	return nil
}

func (x *GetChecklistResponse) GetItems() []*ChecklistItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *GetChecklistResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *GetChecklistResponse) GetCompletionPercent() int32 {
	if x != nil {
		return x.CompletionPercent
	}
	return 0
}

type SetAttestationsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BoxId         string                 `protobuf:"bytes,1,opt,name=box_id,json=boxId,proto3" json:"box_id,omitempty"`
	IsPaid        *bool                  `protobuf:"varint,2,opt,name=is_paid,json=isPaid,proto3,oneof" json:"is_paid,omitempty"`
	WhtSent       *bool                  `protobuf:"varint,3,opt,name=wht_sent,json=whtSent,proto3,oneof" json:"wht_sent,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetAttestationsRequest) Reset() {
	*x = SetAttestationsRequest{}
	mi := &file_boxes_v1_boxes_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetAttestationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetAttestationsRequest) ProtoMessage() {}

func (x *SetAttestationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_boxes_v1_boxes_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetAttestationsRequest.ProtoReflect.Descriptor instead.
func (*SetAttestationsRequest) Descriptor() ([]byte, []int) {
	return file_boxes_v1_boxes_proto_rawDescGZIP(), []int{18}
}

func (x *SetAttestationsRequest) GetBoxId() string {
	if x != nil {
		return x.BoxId
	}
	return ""
}

func (x *SetAttestationsRequest) GetIsPaid() bool {
	if x != nil && x.IsPaid != nil {
		return *x.IsPaid
	}
	return false
}

func (x *SetAttestationsRequest) GetWhtSent() bool {
	if x != nil && x.WhtSent != nil {
		return *x.WhtSent
	}
	return false
}

type SetAttestationsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Box           *Box                   `protobuf:"bytes,1,opt,name=box,proto3" json:"box,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetAttestationsResponse) Reset() {
	*x = SetAttestationsResponse{}
	mi := &file_boxes_v1_boxes_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetAttestationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetAttestationsResponse) ProtoMessage() {}

func (x *SetAttestationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_boxes_v1_boxes_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetAttestationsResponse.ProtoReflect.Descriptor instead.
func (*SetAttestationsResponse) Descriptor() ([]byte, []int) {
	return file_boxes_v1_boxes_proto_rawDescGZIP(), []int{19}
}

func (x *SetAttestationsResponse) GetBox() *Box {
	if x != nil {
		return x.Box
	}
	return nil
}

type SetNoReceiptReasonRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BoxId         string                 `protobuf:"bytes,1,opt,name=box_id,json=boxId,proto3" json:"box_id,omitempty"`
	Reason        string                 `protobuf:"bytes,2,opt,name=reason,proto3" json:"reason,omitempty"` // empty clears the reason
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetNoReceiptReasonRequest) Reset() {
	*x = SetNoReceiptReasonRequest{}
	mi := &file_boxes_v1_boxes_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetNoReceiptReasonRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetNoReceiptReasonRequest) ProtoMessage() {}

func (x *SetNoReceiptReasonRequest) ProtoReflect() protoreflect.Message {
	mi := &file_boxes_v1_boxes_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetNoReceiptReasonRequest.ProtoReflect.Descriptor instead.
func (*SetNoReceiptReasonRequest) Descriptor() ([]byte, []int) {
	return file_boxes_v1_boxes_proto_rawDescGZIP(), []int{20}
}

func (x *SetNoReceiptReasonRequest) GetBoxId() string {
	if x != nil {
		return x.BoxId
	}
	return ""
}

func (x *SetNoReceiptReasonRequest) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type SetNoReceiptReasonResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Box           *Box                   `protobuf:"bytes,1,opt,name=box,proto3" json:"box,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetNoReceiptReasonResponse) Reset() {
	*x = SetNoReceiptReasonResponse{}
	mi := &file_boxes_v1_boxes_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetNoReceiptReasonResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetNoReceiptReasonResponse) ProtoMessage() {}

func (x *SetNoReceiptReasonResponse) ProtoReflect() protoreflect.Message {
	mi := &file_boxes_v1_boxes_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetNoReceiptReasonResponse.ProtoReflect.Descriptor instead.
func (*SetNoReceiptReasonResponse) Descriptor() ([]byte, []int) {
	return file_boxes_v1_boxes_proto_rawDescGZIP(), []int{21}
}

func (x *SetNoReceiptReasonResponse) GetBox() *Box {
	if x != nil {
		return x.Box
	}
	return nil
}

type SubmitDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BusinessId    string                 `protobuf:"bytes,1,opt,name=business_id,json=businessId,proto3" json:"business_id,omitempty"`
	Path          string                 `protobuf:"bytes,2,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitDocumentRequest) Reset() {
	*x = SubmitDocumentRequest{}
	mi := &file_boxes_v1_boxes_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitDocumentRequest) ProtoMessage() {}

func (x *SubmitDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_boxes_v1_boxes_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitDocumentRequest.ProtoReflect.Descriptor instead.
func (*SubmitDocumentRequest) Descriptor() ([]byte, []int) {
	return file_boxes_v1_boxes_proto_rawDescGZIP(), []int{22}
}

func (x *SubmitDocumentRequest) GetBusinessId() string {
	if x != nil {
		return x.BusinessId
	}
	return ""
}

func (x *SubmitDocumentRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type SubmitDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	ExtractionId  string                 `protobuf:"bytes,2,opt,name=extraction_id,json=extractionId,proto3" json:"extraction_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitDocumentResponse) Reset() {
	*x = SubmitDocumentResponse{}
	mi := &file_boxes_v1_boxes_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitDocumentResponse) ProtoMessage() {}

func (x *SubmitDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_boxes_v1_boxes_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitDocumentResponse.ProtoReflect.Descriptor instead.
func (*SubmitDocumentResponse) Descriptor() ([]byte, []int) {
	return file_boxes_v1_boxes_proto_rawDescGZIP(), []int{23}
}

func (x *SubmitDocumentResponse) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *SubmitDocumentResponse) GetExtractionId() string {
	if x != nil {
		return x.ExtractionId
	}
	return ""
}

type ListInboxRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BusinessId    string                 `protobuf:"bytes,1,opt,name=business_id,json=businessId,proto3" json:"business_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListInboxRequest) Reset() {
	*x = ListInboxRequest{}
	mi := &file_boxes_v1_boxes_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInboxRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInboxRequest) ProtoMessage() {}

func (x *ListInboxRequest) ProtoReflect() protoreflect.Message {
	mi := &file_boxes_v1_boxes_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListInboxRequest.ProtoReflect.Descriptor instead.
func (*ListInboxRequest) Descriptor() ([]byte, []int) {
	return file_boxes_v1_boxes_proto_rawDescGZIP(), []int{24}
}

func (x *ListInboxRequest) GetBusinessId() string {
	if x != nil {
		return x.BusinessId
	}
	return ""
}

type ListInboxResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*InboxDocument       `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListInboxResponse) Reset() {
	*x = ListInboxResponse{}
	mi := &file_boxes_v1_boxes_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInboxResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInboxResponse) ProtoMessage() {}

func (x *ListInboxResponse) ProtoReflect() protoreflect.Message {
	mi := &file_boxes_v1_boxes_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListInboxResponse.ProtoReflect.Descriptor instead.
func (*ListInboxResponse) Descriptor() ([]byte, []int) {
	return file_boxes_v1_boxes_proto_rawDescGZIP(), []int{25}
}

func (x *ListInboxResponse) GetDocuments() []*InboxDocument {
	if x != nil {
		return x.Documents
	}
	return nil
}

type FindMatchRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ExtractionId  string                 `protobuf:"bytes,1,opt,name=extraction_id,json=extractionId,proto3" json:"extraction_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FindMatchRequest) Reset() {
	*x = FindMatchRequest{}
	mi := &file_boxes_v1_boxes_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FindMatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FindMatchRequest) ProtoMessage() {}

func (x *FindMatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_boxes_v1_boxes_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FindMatchRequest.ProtoReflect.Descriptor instead.
func (*FindMatchRequest) Descriptor() ([]byte, []int) {
	return file_boxes_v1_boxes_proto_rawDescGZIP(), []int{26}
}

func (x *FindMatchRequest) GetExtractionId() string {
	if x != nil {
		return x.ExtractionId
	}
	return ""
}

type FindMatchResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	HasMatch        bool                   `protobuf:"varint,1,opt,name=has_match,json=hasMatch,proto3" json:"has_match,omitempty"`
	Matches         []*MatchCandidate      `protobuf:"bytes,2,rep,name=matches,proto3" json:"matches,omitempty"`
	SuggestedAction string                 `protobuf:"bytes,3,opt,name=suggested_action,json=suggestedAction,proto3" json:"suggested_action,omitempty"`
	Reason          string                 `protobuf:"bytes,4,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *FindMatchResponse) Reset() {
	*x = FindMatchResponse{}
	mi := &file_boxes_v1_boxes_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FindMatchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FindMatchResponse) ProtoMessage() {}

func (x *FindMatchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_boxes_v1_boxes_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FindMatchResponse.ProtoReflect.Descriptor instead.
func (*FindMatchResponse) Descriptor() ([]byte, []int) {
	return file_boxes_v1_boxes_proto_rawDescGZIP(), []int{27}
}

func (x *FindMatchResponse) GetHasMatch() bool {
	if x != nil {
		return x.HasMatch
	}
	return false
}

func (x *FindMatchResponse) GetMatches() []*MatchCandidate {
	if x != nil {
		return x.Matches
	}
	return nil
}

func (x *FindMatchResponse) GetSuggestedAction() string {
	if x != nil {
		return x.SuggestedAction
	}
	return ""
}

func (x *FindMatchResponse) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type AttachDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	BoxId         string                 `protobuf:"bytes,2,opt,name=box_id,json=boxId,proto3" json:"box_id,omitempty"`
	DocType       string                 `protobuf:"bytes,3,opt,name=doc_type,json=docType,proto3" json:"doc_type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AttachDocumentRequest) Reset() {
	*x = AttachDocumentRequest{}
	mi := &file_boxes_v1_boxes_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AttachDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AttachDocumentRequest) ProtoMessage() {}

func (x *AttachDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_boxes_v1_boxes_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AttachDocumentRequest.ProtoReflect.Descriptor instead.
func (*AttachDocumentRequest) Descriptor() ([]byte, []int) {
	return file_boxes_v1_boxes_proto_rawDescGZIP(), []int{28}
}

func (x *AttachDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *AttachDocumentRequest) GetBoxId() string {
	if x != nil {
		return x.BoxId
	}
	return ""
}

func (x *AttachDocumentRequest) GetDocType() string {
	if x != nil {
		return x.DocType
	}
	return ""
}

type AttachDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Box           *Box                   `protobuf:"bytes,1,opt,name=box,proto3" json:"box,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AttachDocumentResponse) Reset() {
	*x = AttachDocumentResponse{}
	mi := &file_boxes_v1_boxes_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AttachDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AttachDocumentResponse) ProtoMessage() {}

func (x *AttachDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_boxes_v1_boxes_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AttachDocumentResponse.ProtoReflect.Descriptor instead.
func (*AttachDocumentResponse) Descriptor() ([]byte, []int) {
	return file_boxes_v1_boxes_proto_rawDescGZIP(), []int{29}
}

func (x *AttachDocumentResponse) GetBox() *Box {
	if x != nil {
		return x.Box
	}
	return nil
}

type GetAggregatedFieldsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BoxId         string                 `protobuf:"bytes,1,opt,name=box_id,json=boxId,proto3" json:"box_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAggregatedFieldsRequest) Reset() {
	*x = GetAggregatedFieldsRequest{}
	mi := &file_boxes_v1_boxes_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAggregatedFieldsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAggregatedFieldsRequest) ProtoMessage() {}

func (x *GetAggregatedFieldsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_boxes_v1_boxes_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAggregatedFieldsRequest.ProtoReflect.Descriptor instead.
func (*GetAggregatedFieldsRequest) Descriptor() ([]byte, []int) {
	return file_boxes_v1_boxes_proto_rawDescGZIP(), []int{30}
}

func (x *GetAggregatedFieldsRequest) GetBoxId() string {
	if x != nil {
		return x.BoxId
	}
	return ""
}

type GetAggregatedFieldsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Fields        []*AggregatedField     `protobuf:"bytes,1,rep,name=fields,proto3" json:"fields,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAggregatedFieldsResponse) Reset() {
	*x = GetAggregatedFieldsResponse{}
	mi := &file_boxes_v1_boxes_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAggregatedFieldsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAggregatedFieldsResponse) ProtoMessage() {}

func (x *GetAggregatedFieldsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_boxes_v1_boxes_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAggregatedFieldsResponse.ProtoReflect.Descriptor instead.
func (*GetAggregatedFieldsResponse) Descriptor() ([]byte, []int) {
	return file_boxes_v1_boxes_proto_rawDescGZIP(), []int{31}
}

func (x *GetAggregatedFieldsResponse) GetFields() []*AggregatedField {
	if x != nil {
		return x.Fields
	}
	return nil
}

type SetFieldOverrideRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BoxId         string                 `protobuf:"bytes,1,opt,name=box_id,json=boxId,proto3" json:"box_id,omitempty"`
	FieldName     string                 `protobuf:"bytes,2,opt,name=field_name,json=fieldName,proto3" json:"field_name,omitempty"`
	Value         string                 `protobuf:"bytes,3,opt,name=value,proto3" json:"value,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetFieldOverrideRequest) Reset() {
	*x = SetFieldOverrideRequest{}
	mi := &file_boxes_v1_boxes_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetFieldOverrideRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetFieldOverrideRequest) ProtoMessage() {}

func (x *SetFieldOverrideRequest) ProtoReflect() protoreflect.Message {
	mi := &file_boxes_v1_boxes_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetFieldOverrideRequest.ProtoReflect.Descriptor instead.
func (*SetFieldOverrideRequest) Descriptor() ([]byte, []int) {
	return file_boxes_v1_boxes_proto_rawDescGZIP(), []int{32}
}

func (x *SetFieldOverrideRequest) GetBoxId() string {
	if x != nil {
		return x.BoxId
	}
	return ""
}

func (x *SetFieldOverrideRequest) GetFieldName() string {
	if x != nil {
		return x.FieldName
	}
	return ""
}

func (x *SetFieldOverrideRequest) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

type SetFieldOverrideResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetFieldOverrideResponse) Reset() {
	*x = SetFieldOverrideResponse{}
	mi := &file_boxes_v1_boxes_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetFieldOverrideResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetFieldOverrideResponse) ProtoMessage() {}

func (x *SetFieldOverrideResponse) ProtoReflect() protoreflect.Message {
	mi := &file_boxes_v1_boxes_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetFieldOverrideResponse.ProtoReflect.Descriptor instead.
func (*SetFieldOverrideResponse) Descriptor() ([]byte, []int) {
	return file_boxes_v1_boxes_proto_rawDescGZIP(), []int{33}
}

type ClearFieldOverrideRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BoxId         string                 `protobuf:"bytes,1,opt,name=box_id,json=boxId,proto3" json:"box_id,omitempty"`
	FieldName     string                 `protobuf:"bytes,2,opt,name=field_name,json=fieldName,proto3" json:"field_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClearFieldOverrideRequest) Reset() {
	*x = ClearFieldOverrideRequest{}
	mi := &file_boxes_v1_boxes_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClearFieldOverrideRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClearFieldOverrideRequest) ProtoMessage() {}

func (x *ClearFieldOverrideRequest) ProtoReflect() protoreflect.Message {
	mi := &file_boxes_v1_boxes_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClearFieldOverrideRequest.ProtoReflect.Descriptor instead.
func (*ClearFieldOverrideRequest) Descriptor() ([]byte, []int) {
	return file_boxes_v1_boxes_proto_rawDescGZIP(), []int{34}
}

func (x *ClearFieldOverrideRequest) GetBoxId() string {
	if x != nil {
		return x.BoxId
	}
	return ""
}

func (x *ClearFieldOverrideRequest) GetFieldName() string {
	if x != nil {
		return x.FieldName
	}
	return ""
}

type ClearFieldOverrideResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClearFieldOverrideResponse) Reset() {
	*x = ClearFieldOverrideResponse{}
	mi := &file_boxes_v1_boxes_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClearFieldOverrideResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClearFieldOverrideResponse) ProtoMessage() {}

func (x *ClearFieldOverrideResponse) ProtoReflect() protoreflect.Message {
	mi := &file_boxes_v1_boxes_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClearFieldOverrideResponse.ProtoReflect.Descriptor instead.
func (*ClearFieldOverrideResponse) Descriptor() ([]byte, []int) {
	return file_boxes_v1_boxes_proto_rawDescGZIP(), []int{35}
}

type ExportBoxesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BusinessId    string                 `protobuf:"bytes,1,opt,name=business_id,json=businessId,proto3" json:"business_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportBoxesRequest) Reset() {
	*x = ExportBoxesRequest{}
	mi := &file_boxes_v1_boxes_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportBoxesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportBoxesRequest) ProtoMessage() {}

func (x *ExportBoxesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_boxes_v1_boxes_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportBoxesRequest.ProtoReflect.Descriptor instead.
func (*ExportBoxesRequest) Descriptor() ([]byte, []int) {
	return file_boxes_v1_boxes_proto_rawDescGZIP(), []int{36}
}

func (x *ExportBoxesRequest) GetBusinessId() string {
	if x != nil {
		return x.BusinessId
	}
	return ""
}

type ExportBoxesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportBoxesResponse) Reset() {
	*x = ExportBoxesResponse{}
	mi := &file_boxes_v1_boxes_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportBoxesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportBoxesResponse) ProtoMessage() {}

func (x *ExportBoxesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_boxes_v1_boxes_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportBoxesResponse.ProtoReflect.Descriptor instead.
func (*ExportBoxesResponse) Descriptor() ([]byte, []int) {
	return file_boxes_v1_boxes_proto_rawDescGZIP(), []int{37}
}

func (x *ExportBoxesResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_boxes_v1_boxes_proto protoreflect.FileDescriptor

const file_boxes_v1_boxes_proto_rawDesc = "" +
	"\n" +
	"\x14boxes/v1/boxes.proto\x12\bboxes.v1\"\xae\x01\n" +
	"\bBusiness\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x15\n" +
	"\x06tax_id\x18\x03 \x01(\tR\x05taxId\x12)\n" +
	"\x10default_currency\x18\x04 \x01(\tR\x0fdefaultCurrency\x12\x1d\n" +
	"\n" +
	"created_at\x18\x05 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x06 \x01(\tR\tupdatedAt\"\x91\x04\n" +
	"\x03Box\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vbusiness_id\x18\x02 \x01(\tR\n" +
	"businessId\x12\x19\n" +
	"\bbox_type\x18\x03 \x01(\tR\aboxType\x12!\n" +
	"\fexpense_type\x18\x04 \x01(\tR\vexpenseType\x12!\n" +
	"\fcontact_name\x18\x05 \x01(\tR\vcontactName\x12$\n" +
	"\x0econtact_tax_id\x18\x06 \x01(\tR\fcontactTaxId\x12\x19\n" +
	"\bbox_date\x18\a \x01(\tR\aboxDate\x12\x17\n" +
	"\ahas_vat\x18\b \x01(\bR\x06hasVat\x12\x17\n" +
	"\ahas_wht\x18\t \x01(\bR\x06hasWht\x12!\n" +
	"\ftotal_amount\x18\n" +
	" \x01(\x01R\vtotalAmount\x12\x1d\n" +
	"\n" +
	"vat_amount\x18\v \x01(\x01R\tvatAmount\x12\x1d\n" +
	"\n" +
	"wht_amount\x18\f \x01(\x01R\twhtAmount\x12%\n" +
	"\x0epayment_status\x18\r \x01(\tR\rpaymentStatus\x12*\n" +
	"\x11no_receipt_reason\x18\x0e \x01(\tR\x0fnoReceiptReason\x12\x17\n" +
	"\ais_paid\x18\x0f \x01(\bR\x06isPaid\x12\x19\n" +
	"\bwht_sent\x18\x10 \x01(\bR\awhtSent\x12\x1d\n" +
	"\n" +
	"doc_status\x18\x11 \x01(\tR\tdocStatus\"\xb8\x01\n" +
	"\rChecklistItem\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x14\n" +
	"\x05label\x18\x02 \x01(\tR\x05label\x12\x1a\n" +
	"\brequired\x18\x03 \x01(\bR\brequired\x12\x1c\n" +
	"\tcompleted\x18\x04 \x01(\bR\tcompleted\x12\x1d\n" +
	"\n" +
	"can_toggle\x18\x05 \x01(\bR\tcanToggle\x12(\n" +
	"\x10related_doc_type\x18\x06 \x01(\tR\x0erelatedDocType\"\x98\x01\n" +
	"\rInboxDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vbusiness_id\x18\x02 \x01(\tR\n" +
	"businessId\x12\x1a\n" +
	"\bfilename\x18\x03 \x01(\tR\bfilename\x12\x19\n" +
	"\bdoc_type\x18\x04 \x01(\tR\adocType\x12\x1f\n" +
	"\vuploaded_at\x18\x05 \x01(\tR\n" +
	"uploadedAt\"W\n" +
	"\x0eMatchCandidate\x12\x15\n" +
	"\x06box_id\x18\x01 \x01(\tR\x05boxId\x12\x14\n" +
	"\x05score\x18\x02 \x01(\x05R\x05score\x12\x18\n" +
	"\areasons\x18\x03 \x03(\tR\areasons\"I\n" +
	"\vFieldSource\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x1e\n" +
	"\n" +
	"confidence\x18\x02 \x01(\x02R\n" +
	"confidence\"U\n" +
	"\fValueCluster\x12\x14\n" +
	"\x05value\x18\x01 \x01(\tR\x05value\x12/\n" +
	"\asources\x18\x02 \x03(\v2\x15.boxes.v1.FieldSourceR\asources\"\xb7\x01\n" +
	"\x0fAggregatedField\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value\x12!\n" +
	"\fhas_conflict\x18\x03 \x01(\bR\vhasConflict\x12#\n" +
	"\ruser_override\x18\x04 \x01(\bR\fuserOverride\x122\n" +
	"\bclusters\x18\x05 \x03(\v2\x16.boxes.v1.ValueClusterR\bclusters\"m\n" +
	"\x15CreateBusinessRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x15\n" +
	"\x06tax_id\x18\x02 \x01(\tR\x05taxId\x12)\n" +
	"\x10default_currency\x18\x03 \x01(\tR\x0fdefaultCurrency\"H\n" +
	"\x16CreateBusinessResponse\x12.\n" +
	"\bbusiness\x18\x01 \x01(\v2\x12.boxes.v1.BusinessR\bbusiness\"\x17\n" +
	"\x15ListBusinessesRequest\"L\n" +
	"\x16ListBusinessesResponse\x122\n" +
	"\n" +
	"businesses\x18\x01 \x03(\v2\x12.boxes.v1.BusinessR\n" +
	"businesses\"\x94\x03\n" +
	"\x10CreateBoxRequest\x12\x1f\n" +
	"\vbusiness_id\x18\x01 \x01(\tR\n" +
	"businessId\x12\x19\n" +
	"\bbox_type\x18\x02 \x01(\tR\aboxType\x12!\n" +
	"\fexpense_type\x18\x03 \x01(\tR\vexpenseType\x12!\n" +
	"\fcontact_name\x18\x04 \x01(\tR\vcontactName\x12$\n" +
	"\x0econtact_tax_id\x18\x05 \x01(\tR\fcontactTaxId\x12\x19\n" +
	"\bbox_date\x18\x06 \x01(\tR\aboxDate\x12\x17\n" +
	"\ahas_vat\x18\a \x01(\bR\x06hasVat\x12\x17\n" +
	"\ahas_wht\x18\b \x01(\bR\x06hasWht\x12!\n" +
	"\ftotal_amount\x18\t \x01(\x01R\vtotalAmount\x12\x1d\n" +
	"\n" +
	"vat_amount\x18\n" +
	" \x01(\x01R\tvatAmount\x12\x1d\n" +
	"\n" +
	"wht_amount\x18\v \x01(\x01R\twhtAmount\x12*\n" +
	"\x11no_receipt_reason\x18\f \x01(\tR\x0fnoReceiptReason\"4\n" +
	"\x11CreateBoxResponse\x12\x1f\n" +
	"\x03box\x18\x01 \x01(\v2\r.boxes.v1.BoxR\x03box\"R\n" +
	"\x10ListBoxesRequest\x12\x1f\n" +
	"\vbusiness_id\x18\x01 \x01(\tR\n" +
	"businessId\x12\x1d\n" +
	"\n" +
	"doc_status\x18\x02 \x01(\tR\tdocStatus\"8\n" +
	"\x11ListBoxesResponse\x12#\n" +
	"\x05boxes\x18\x01 \x03(\v2\r.boxes.v1.BoxR\x05boxes\",\n" +
	"\x13GetChecklistRequest\x12\x15\n" +
	"\x06box_id\x18\x01 \x01(\tR\x05boxId\"\xad\x01\n" +
	"\x14GetChecklistResponse\x12\x1f\n" +
	"\x03box\x18\x01 \x01(\v2\r.boxes.v1.BoxR\x03box\x12-\n" +
	"\x05items\x18\x02 \x03(\v2\x17.boxes.v1.ChecklistItemR\x05items\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12-\n" +
	"\x12completion_percent\x18\x04 \x01(\x05R\x11completionPercent\"\x86\x01\n" +
	"\x16SetAttestationsRequest\x12\x15\n" +
	"\x06box_id\x18\x01 \x01(\tR\x05boxId\x12\x1c\n" +
	"\ais_paid\x18\x02 \x01(\bH\x00R\x06isPaid\x88\x01\x01\x12\x1e\n" +
	"\bwht_sent\x18\x03 \x01(\bH\x01R\awhtSent\x88\x01\x01B\n" +
	"\n" +
	"\b_is_paidB\v\n" +
	"\t_wht_sent\":\n" +
	"\x17SetAttestationsResponse\x12\x1f\n" +
	"\x03box\x18\x01 \x01(\v2\r.boxes.v1.BoxR\x03box\"J\n" +
	"\x19SetNoReceiptReasonRequest\x12\x15\n" +
	"\x06box_id\x18\x01 \x01(\tR\x05boxId\x12\x16\n" +
	"\x06reason\x18\x02 \x01(\tR\x06reason\"=\n" +
	"\x1aSetNoReceiptReasonResponse\x12\x1f\n" +
	"\x03box\x18\x01 \x01(\v2\r.boxes.v1.BoxR\x03box\"L\n" +
	"\x15SubmitDocumentRequest\x12\x1f\n" +
	"\vbusiness_id\x18\x01 \x01(\tR\n" +
	"businessId\x12\x12\n" +
	"\x04path\x18\x02 \x01(\tR\x04path\"^\n" +
	"\x16SubmitDocumentResponse\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12#\n" +
	"\rextraction_id\x18\x02 \x01(\tR\fextractionId\"3\n" +
	"\x10ListInboxRequest\x12\x1f\n" +
	"\vbusiness_id\x18\x01 \x01(\tR\n" +
	"businessId\"J\n" +
	"\x11ListInboxResponse\x125\n" +
	"\tdocuments\x18\x01 \x03(\v2\x17.boxes.v1.InboxDocumentR\tdocuments\"7\n" +
	"\x10FindMatchRequest\x12#\n" +
	"\rextraction_id\x18\x01 \x01(\tR\fextractionId\"\xa7\x01\n" +
	"\x11FindMatchResponse\x12\x1b\n" +
	"\thas_match\x18\x01 \x01(\bR\bhasMatch\x122\n" +
	"\amatches\x18\x02 \x03(\v2\x18.boxes.v1.MatchCandidateR\amatches\x12)\n" +
	"\x10suggested_action\x18\x03 \x01(\tR\x0fsuggestedAction\x12\x16\n" +
	"\x06reason\x18\x04 \x01(\tR\x06reason\"j\n" +
	"\x15AttachDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x15\n" +
	"\x06box_id\x18\x02 \x01(\tR\x05boxId\x12\x19\n" +
	"\bdoc_type\x18\x03 \x01(\tR\adocType\"9\n" +
	"\x16AttachDocumentResponse\x12\x1f\n" +
	"\x03box\x18\x01 \x01(\v2\r.boxes.v1.BoxR\x03box\"3\n" +
	"\x1aGetAggregatedFieldsRequest\x12\x15\n" +
	"\x06box_id\x18\x01 \x01(\tR\x05boxId\"P\n" +
	"\x1bGetAggregatedFieldsResponse\x121\n" +
	"\x06fields\x18\x01 \x03(\v2\x19.boxes.v1.AggregatedFieldR\x06fields\"e\n" +
	"\x17SetFieldOverrideRequest\x12\x15\n" +
	"\x06box_id\x18\x01 \x01(\tR\x05boxId\x12\x1d\n" +
	"\n" +
	"field_name\x18\x02 \x01(\tR\tfieldName\x12\x14\n" +
	"\x05value\x18\x03 \x01(\tR\x05value\"\x1a\n" +
	"\x18SetFieldOverrideResponse\"Q\n" +
	"\x19ClearFieldOverrideRequest\x12\x15\n" +
	"\x06box_id\x18\x01 \x01(\tR\x05boxId\x12\x1d\n" +
	"\n" +
	"field_name\x18\x02 \x01(\tR\tfieldName\"\x1c\n" +
	"\x1aClearFieldOverrideResponse\"5\n" +
	"\x12ExportBoxesRequest\x12\x1f\n" +
	"\vbusiness_id\x18\x01 \x01(\tR\n" +
	"businessId\")\n" +
	"\x13ExportBoxesResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xee\t\n" +
	"\fBoxesService\x12S\n" +
	"\x0eCreateBusiness\x12\x1f.boxes.v1.CreateBusinessRequest\x1a .boxes.v1.CreateBusinessResponse\x12S\n" +
	"\x0eListBusinesses\x12\x1f.boxes.v1.ListBusinessesRequest\x1a .boxes.v1.ListBusinessesResponse\x12D\n" +
	"\tCreateBox\x12\x1a.boxes.v1.CreateBoxRequest\x1a\x1b.boxes.v1.CreateBoxResponse\x12D\n" +
	"\tListBoxes\x12\x1a.boxes.v1.ListBoxesRequest\x1a\x1b.boxes.v1.ListBoxesResponse\x12M\n" +
	"\fGetChecklist\x12\x1d.boxes.v1.GetChecklistRequest\x1a\x1e.boxes.v1.GetChecklistResponse\x12V\n" +
	"\x0fSetAttestations\x12 .boxes.v1.SetAttestationsRequest\x1a!.boxes.v1.SetAttestationsResponse\x12_\n" +
	"\x12SetNoReceiptReason\x12#.boxes.v1.SetNoReceiptReasonRequest\x1a$.boxes.v1.SetNoReceiptReasonResponse\x12S\n" +
	"\x0eSubmitDocument\x12\x1f.boxes.v1.SubmitDocumentRequest\x1a .boxes.v1.SubmitDocumentResponse\x12D\n" +
	"\tListInbox\x12\x1a.boxes.v1.ListInboxRequest\x1a\x1b.boxes.v1.ListInboxResponse\x12D\n" +
	"\tFindMatch\x12\x1a.boxes.v1.FindMatchRequest\x1a\x1b.boxes.v1.FindMatchResponse\x12S\n" +
	"\x0eAttachDocument\x12\x1f.boxes.v1.AttachDocumentRequest\x1a .boxes.v1.AttachDocumentResponse\x12b\n" +
	"\x13GetAggregatedFields\x12$.boxes.v1.GetAggregatedFieldsRequest\x1a%.boxes.v1.GetAggregatedFieldsResponse\x12Y\n" +
	"\x10SetFieldOverride\x12!.boxes.v1.SetFieldOverrideRequest\x1a\".boxes.v1.SetFieldOverrideResponse\x12_\n" +
	"\x12ClearFieldOverride\x12#.boxes.v1.ClearFieldOverrideRequest\x1a$.boxes.v1.ClearFieldOverrideResponse\x12J\n" +
	"\vExportBoxes\x12\x1c.boxes.v1.ExportBoxesRequest\x1a\x1d.boxes.v1.ExportBoxesResponseB:Z8github.com/teerapat-ng/docbox/gen/proto/boxes/v1;boxespbb\x06proto3"

var (
	file_boxes_v1_boxes_proto_rawDescOnce sync.Once
	file_boxes_v1_boxes_proto_rawDescData []byte
)

func file_boxes_v1_boxes_proto_rawDescGZIP() []byte {
	file_boxes_v1_boxes_proto_rawDescOnce.Do(func() {
		file_boxes_v1_boxes_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_boxes_v1_boxes_proto_rawDesc), len(file_boxes_v1_boxes_proto_rawDesc)))
	})
	return file_boxes_v1_boxes_proto_rawDescData
}

var file_boxes_v1_boxes_proto_msgTypes = make([]protoimpl.MessageInfo, 38)
var file_boxes_v1_boxes_proto_goTypes = []any{
	(*Business)(nil),                    // 0: boxes.v1.Business
	(*Box)(nil),                         // 1: boxes.v1.Box
	(*ChecklistItem)(nil),               // 2: boxes.v1.ChecklistItem
	(*InboxDocument)(nil),               // 3: boxes.v1.InboxDocument
	(*MatchCandidate)(nil),              // 4: boxes.v1.MatchCandidate
	(*FieldSource)(nil),                 // 5: boxes.v1.FieldSource
	(*ValueCluster)(nil),                // 6: boxes.v1.ValueCluster
	(*AggregatedField)(nil),             // 7: boxes.v1.AggregatedField
	(*CreateBusinessRequest)(nil),       // 8: boxes.v1.CreateBusinessRequest
	(*CreateBusinessResponse)(nil),      // 9: boxes.v1.CreateBusinessResponse
	(*ListBusinessesRequest)(nil),       // 10: boxes.v1.ListBusinessesRequest
	(*ListBusinessesResponse)(nil),      // 11: boxes.v1.ListBusinessesResponse
	(*CreateBoxRequest)(nil),            // 12: boxes.v1.CreateBoxRequest
	(*CreateBoxResponse)(nil),           // 13: boxes.v1.CreateBoxResponse
	(*ListBoxesRequest)(nil),            // 14: boxes.v1.ListBoxesRequest
	(*ListBoxesResponse)(nil),           // 15: boxes.v1.ListBoxesResponse
	(*GetChecklistRequest)(nil),         // 16: boxes.v1.GetChecklistRequest
	(*GetChecklistResponse)(nil),        // 17: boxes.v1.GetChecklistResponse
	(*SetAttestationsRequest)(nil),      // 18: boxes.v1.SetAttestationsRequest
	(*SetAttestationsResponse)(nil),     // 19: boxes.v1.SetAttestationsResponse
	(*SetNoReceiptReasonRequest)(nil),   // 20: boxes.v1.SetNoReceiptReasonRequest
	(*SetNoReceiptReasonResponse)(nil),  // 21: boxes.v1.SetNoReceiptReasonResponse
	(*SubmitDocumentRequest)(nil),       // 22: boxes.v1.SubmitDocumentRequest
	(*SubmitDocumentResponse)(nil),      // 23: boxes.v1.SubmitDocumentResponse
	(*ListInboxRequest)(nil),            // 24: boxes.v1.ListInboxRequest
	(*ListInboxResponse)(nil),           // 25: boxes.v1.ListInboxResponse
	(*FindMatchRequest)(nil),            // 26: boxes.v1.FindMatchRequest
	(*FindMatchResponse)(nil),           // 27: boxes.v1.FindMatchResponse
	(*AttachDocumentRequest)(nil),       // 28: boxes.v1.AttachDocumentRequest
	(*AttachDocumentResponse)(nil),      // 29: boxes.v1.AttachDocumentResponse
	(*GetAggregatedFieldsRequest)(nil),  // 30: boxes.v1.GetAggregatedFieldsRequest
	(*GetAggregatedFieldsResponse)(nil), // 31: boxes.v1.GetAggregatedFieldsResponse
	(*SetFieldOverrideRequest)(nil),     // 32: boxes.v1.SetFieldOverrideRequest
	(*SetFieldOverrideResponse)(nil),    // 33: boxes.v1.SetFieldOverrideResponse
	(*ClearFieldOverrideRequest)(nil),   // 34: boxes.v1.ClearFieldOverrideRequest
	(*ClearFieldOverrideResponse)(nil),  // 35: boxes.v1.ClearFieldOverrideResponse
	(*ExportBoxesRequest)(nil),          // 36: boxes.v1.ExportBoxesRequest
	(*ExportBoxesResponse)(nil),         // 37: boxes.v1.ExportBoxesResponse
}
var file_boxes_v1_boxes_proto_depIdxs = []int32{
	5,  // 0: boxes.v1.ValueCluster.sources:type_name -> boxes.v1.FieldSource
	6,  // 1: boxes.v1.AggregatedField.clusters:type_name -> boxes.v1.ValueCluster
	0,  // 2: boxes.v1.CreateBusinessResponse.business:type_name -> boxes.v1.Business
	0,  // 3: boxes.v1.ListBusinessesResponse.businesses:type_name -> boxes.v1.Business
	1,  // 4: boxes.v1.CreateBoxResponse.box:type_name -> boxes.v1.Box
	1,  // 5: boxes.v1.ListBoxesResponse.boxes:type_name -> boxes.v1.Box
	1,  // 6: boxes.v1.GetChecklistResponse.box:type_name -> boxes.v1.Box
	2,  // 7: boxes.v1.GetChecklistResponse.items:type_name -> boxes.v1.ChecklistItem
	1,  // 8: boxes.v1.SetAttestationsResponse.box:type_name -> boxes.v1.Box
	1,  // 9: boxes.v1.SetNoReceiptReasonResponse.box:type_name -> boxes.v1.Box
	3,  // 10: boxes.v1.ListInboxResponse.documents:type_name -> boxes.v1.InboxDocument
	4,  // 11: boxes.v1.FindMatchResponse.matches:type_name -> boxes.v1.MatchCandidate
	1,  // 12: boxes.v1.AttachDocumentResponse.box:type_name -> boxes.v1.Box
	7,  // 13: boxes.v1.GetAggregatedFieldsResponse.fields:type_name -> boxes.v1.AggregatedField
	8,  // 14: boxes.v1.BoxesService.CreateBusiness:input_type -> boxes.v1.CreateBusinessRequest
	10, // 15: boxes.v1.BoxesService.ListBusinesses:input_type -> boxes.v1.ListBusinessesRequest
	12, // 16: boxes.v1.BoxesService.CreateBox:input_type -> boxes.v1.CreateBoxRequest
	14, // 17: boxes.v1.BoxesService.ListBoxes:input_type -> boxes.v1.ListBoxesRequest
	16, // 18: boxes.v1.BoxesService.GetChecklist:input_type -> boxes.v1.GetChecklistRequest
	18, // 19: boxes.v1.BoxesService.SetAttestations:input_type -> boxes.v1.SetAttestationsRequest
	20, // 20: boxes.v1.BoxesService.SetNoReceiptReason:input_type -> boxes.v1.SetNoReceiptReasonRequest
	22, // 21: boxes.v1.BoxesService.SubmitDocument:input_type -> boxes.v1.SubmitDocumentRequest
	24, // 22: boxes.v1.BoxesService.ListInbox:input_type -> boxes.v1.ListInboxRequest
	26, // 23: boxes.v1.BoxesService.FindMatch:input_type -> boxes.v1.FindMatchRequest
	28, // 24: boxes.v1.BoxesService.AttachDocument:input_type -> boxes.v1.AttachDocumentRequest
	30, // 25: boxes.v1.BoxesService.GetAggregatedFields:input_type -> boxes.v1.GetAggregatedFieldsRequest
	32, // 26: boxes.v1.BoxesService.SetFieldOverride:input_type -> boxes.v1.SetFieldOverrideRequest
	34, // 27: boxes.v1.BoxesService.ClearFieldOverride:input_type -> boxes.v1.ClearFieldOverrideRequest
	36, // 28: boxes.v1.BoxesService.ExportBoxes:input_type -> boxes.v1.ExportBoxesRequest
	9,  // 29: boxes.v1.BoxesService.CreateBusiness:output_type -> boxes.v1.CreateBusinessResponse
	11, // 30: boxes.v1.BoxesService.ListBusinesses:output_type -> boxes.v1.ListBusinessesResponse
	13, // 31: boxes.v1.BoxesService.CreateBox:output_type -> boxes.v1.CreateBoxResponse
	15, // 32: boxes.v1.BoxesService.ListBoxes:output_type -> boxes.v1.ListBoxesResponse
	17, // 33: boxes.v1.BoxesService.GetChecklist:output_type -> boxes.v1.GetChecklistResponse
	19, // 34: boxes.v1.BoxesService.SetAttestations:output_type -> boxes.v1.SetAttestationsResponse
	21, // 35: boxes.v1.BoxesService.SetNoReceiptReason:output_type -> boxes.v1.SetNoReceiptReasonResponse
	23, // 36: boxes.v1.BoxesService.SubmitDocument:output_type -> boxes.v1.SubmitDocumentResponse
	25, // 37: boxes.v1.BoxesService.ListInbox:output_type -> boxes.v1.ListInboxResponse
	27, // 38: boxes.v1.BoxesService.FindMatch:output_type -> boxes.v1.FindMatchResponse
	29, // 39: boxes.v1.BoxesService.AttachDocument:output_type -> boxes.v1.AttachDocumentResponse
	31, // 40: boxes.v1.BoxesService.GetAggregatedFields:output_type -> boxes.v1.GetAggregatedFieldsResponse
	33, // 41: boxes.v1.BoxesService.SetFieldOverride:output_type -> boxes.v1.SetFieldOverrideResponse
	35, // 42: boxes.v1.BoxesService.ClearFieldOverride:output_type -> boxes.v1.ClearFieldOverrideResponse
	37, // 43: boxes.v1.BoxesService.ExportBoxes:output_type -> boxes.v1.ExportBoxesResponse
	29, // [29:44] is the sub-list for method output_type
	14, // [14:29] is the sub-list for method input_type
	14, // [14:14] is the sub-list for extension type_name
	14, // [14:14] is the sub-list for extension extendee
	0,  // [0:14] is the sub-list for field type_name
}

func init() { file_boxes_v1_boxes_proto_init() }
func file_boxes_v1_boxes_proto_init() {
	if File_boxes_v1_boxes_proto != nil {
		return
	}
	file_boxes_v1_boxes_proto_msgTypes[18].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_boxes_v1_boxes_proto_rawDesc), len(file_boxes_v1_boxes_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   38,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_boxes_v1_boxes_proto_goTypes,
		DependencyIndexes: file_boxes_v1_boxes_proto_depIdxs,
		MessageInfos:      file_boxes_v1_boxes_proto_msgTypes,
	}.Build()
	File_boxes_v1_boxes_proto = out.File
	file_boxes_v1_boxes_proto_goTypes = nil
	file_boxes_v1_boxes_proto_depIdxs = nil
}
