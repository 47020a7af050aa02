// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: proto/obras/v1/obras.proto

package obrasv1

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

type IngestBudgetRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SupplierId    string                 `protobuf:"bytes,1,opt,name=supplier_id,json=supplierId,proto3" json:"supplier_id,omitempty"`
	ProjectId     string                 `protobuf:"bytes,2,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	StageId       string                 `protobuf:"bytes,3,opt,name=stage_id,json=stageId,proto3" json:"stage_id,omitempty"`
	OwnerId       string                 `protobuf:"bytes,4,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Filename      string                 `protobuf:"bytes,5,opt,name=filename,proto3" json:"filename,omitempty"`
	ContentType   string                 `protobuf:"bytes,6,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	Content       []byte                 `protobuf:"bytes,7,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestBudgetRequest) Reset() {
	*x = IngestBudgetRequest{}
	mi := &file_proto_obras_v1_obras_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestBudgetRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestBudgetRequest) ProtoMessage() {}

func (x *IngestBudgetRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_obras_v1_obras_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestBudgetRequest.ProtoReflect.Descriptor instead.
func (*IngestBudgetRequest) Descriptor() ([]byte, []int) {
	return file_proto_obras_v1_obras_proto_rawDescGZIP(), []int{0}
}

func (x *IngestBudgetRequest) GetSupplierId() string {
	if x != nil {
		return x.SupplierId
	}
	return ""
}

func (x *IngestBudgetRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *IngestBudgetRequest) GetStageId() string {
	if x != nil {
		return x.StageId
	}
	return ""
}

func (x *IngestBudgetRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *IngestBudgetRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *IngestBudgetRequest) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *IngestBudgetRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type IngestBudgetResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Result        *IngestResult          `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestBudgetResponse) Reset() {
	*x = IngestBudgetResponse{}
	mi := &file_proto_obras_v1_obras_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestBudgetResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestBudgetResponse) ProtoMessage() {}

func (x *IngestBudgetResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_obras_v1_obras_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestBudgetResponse.ProtoReflect.Descriptor instead.
func (*IngestBudgetResponse) Descriptor() ([]byte, []int) {
	return file_proto_obras_v1_obras_proto_rawDescGZIP(), []int{1}
}

func (x *IngestBudgetResponse) GetResult() *IngestResult {
	if x != nil {
		return x.Result
	}
	return nil
}

type EnqueueBudgetResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Queued        bool                   `protobuf:"varint,1,opt,name=queued,proto3" json:"queued,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EnqueueBudgetResponse) Reset() {
	*x = EnqueueBudgetResponse{}
	mi := &file_proto_obras_v1_obras_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EnqueueBudgetResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EnqueueBudgetResponse) ProtoMessage() {}

func (x *EnqueueBudgetResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_obras_v1_obras_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EnqueueBudgetResponse.ProtoReflect.Descriptor instead.
func (*EnqueueBudgetResponse) Descriptor() ([]byte, []int) {
	return file_proto_obras_v1_obras_proto_rawDescGZIP(), []int{2}
}

func (x *EnqueueBudgetResponse) GetQueued() bool {
	if x != nil {
		return x.Queued
	}
	return false
}

type IngestResult struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Success       bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	NoItemsFound  bool                   `protobuf:"varint,2,opt,name=no_items_found,json=noItemsFound,proto3" json:"no_items_found,omitempty"`
	ItemsFound    int32                  `protobuf:"varint,3,opt,name=items_found,json=itemsFound,proto3" json:"items_found,omitempty"`
	CreatedCount  int32                  `protobuf:"varint,4,opt,name=created_count,json=createdCount,proto3" json:"created_count,omitempty"`
	UpdatedCount  int32                  `protobuf:"varint,5,opt,name=updated_count,json=updatedCount,proto3" json:"updated_count,omitempty"`
	Errors        []*ItemError           `protobuf:"bytes,6,rep,name=errors,proto3" json:"errors,omitempty"`
	Supplier      *Supplier              `protobuf:"bytes,7,opt,name=supplier,proto3" json:"supplier,omitempty"`
	DocumentUrl   string                 `protobuf:"bytes,8,opt,name=document_url,json=documentUrl,proto3" json:"document_url,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestResult) Reset() {
	*x = IngestResult{}
	mi := &file_proto_obras_v1_obras_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestResult) ProtoMessage() {}

func (x *IngestResult) ProtoReflect() protoreflect.Message {
	mi := &file_proto_obras_v1_obras_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestResult.ProtoReflect.Descriptor instead.
func (*IngestResult) Descriptor() ([]byte, []int) {
	return file_proto_obras_v1_obras_proto_rawDescGZIP(), []int{3}
}

func (x *IngestResult) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *IngestResult) GetNoItemsFound() bool {
	if x != nil {
		return x.NoItemsFound
	}
	return false
}

func (x *IngestResult) GetItemsFound() int32 {
	if x != nil {
		return x.ItemsFound
	}
	return 0
}

func (x *IngestResult) GetCreatedCount() int32 {
	if x != nil {
		return x.CreatedCount
	}
	return 0
}

func (x *IngestResult) GetUpdatedCount() int32 {
	if x != nil {
		return x.UpdatedCount
	}
	return 0
}

func (x *IngestResult) GetErrors() []*ItemError {
	if x != nil {
		return x.Errors
	}
	return nil
}

func (x *IngestResult) GetSupplier() *Supplier {
	if x != nil {
		return x.Supplier
	}
	return nil
}

func (x *IngestResult) GetDocumentUrl() string {
	if x != nil {
		return x.DocumentUrl
	}
	return ""
}

type ItemError struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	ItemDescription string                 `protobuf:"bytes,1,opt,name=item_description,json=itemDescription,proto3" json:"item_description,omitempty"`
	ErrorMessage    string                 `protobuf:"bytes,2,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ItemError) Reset() {
	*x = ItemError{}
	mi := &file_proto_obras_v1_obras_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ItemError) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ItemError) ProtoMessage() {}

func (x *ItemError) ProtoReflect() protoreflect.Message {
	mi := &file_proto_obras_v1_obras_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ItemError.ProtoReflect.Descriptor instead.
func (*ItemError) Descriptor() ([]byte, []int) {
	return file_proto_obras_v1_obras_proto_rawDescGZIP(), []int{4}
}

func (x *ItemError) GetItemDescription() string {
	if x != nil {
		return x.ItemDescription
	}
	return ""
}

func (x *ItemError) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

type Supplier struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	TaxId         string                 `protobuf:"bytes,3,opt,name=tax_id,json=taxId,proto3" json:"tax_id,omitempty"`
	Email         string                 `protobuf:"bytes,4,opt,name=email,proto3" json:"email,omitempty"`
	Phone         string                 `protobuf:"bytes,5,opt,name=phone,proto3" json:"phone,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,7,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Supplier) Reset() {
	*x = Supplier{}
	mi := &file_proto_obras_v1_obras_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Supplier) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Supplier) ProtoMessage() {}

func (x *Supplier) ProtoReflect() protoreflect.Message {
	mi := &file_proto_obras_v1_obras_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Supplier.ProtoReflect.Descriptor instead.
func (*Supplier) Descriptor() ([]byte, []int) {
	return file_proto_obras_v1_obras_proto_rawDescGZIP(), []int{5}
}

func (x *Supplier) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Supplier) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Supplier) GetTaxId() string {
	if x != nil {
		return x.TaxId
	}
	return ""
}

func (x *Supplier) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *Supplier) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *Supplier) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Supplier) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Material struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	SupplierId    string                 `protobuf:"bytes,3,opt,name=supplier_id,json=supplierId,proto3" json:"supplier_id,omitempty"`
	Unit          string                 `protobuf:"bytes,4,opt,name=unit,proto3" json:"unit,omitempty"`
	UnitPrice     float64                `protobuf:"fixed64,5,opt,name=unit_price,json=unitPrice,proto3" json:"unit_price,omitempty"`
	StockQuantity float64                `protobuf:"fixed64,6,opt,name=stock_quantity,json=stockQuantity,proto3" json:"stock_quantity,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,8,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Material) Reset() {
	*x = Material{}
	mi := &file_proto_obras_v1_obras_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Material) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Material) ProtoMessage() {}

func (x *Material) ProtoReflect() protoreflect.Message {
	mi := &file_proto_obras_v1_obras_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Material.ProtoReflect.Descriptor instead.
func (*Material) Descriptor() ([]byte, []int) {
	return file_proto_obras_v1_obras_proto_rawDescGZIP(), []int{6}
}

func (x *Material) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Material) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Material) GetSupplierId() string {
	if x != nil {
		return x.SupplierId
	}
	return ""
}

func (x *Material) GetUnit() string {
	if x != nil {
		return x.Unit
	}
	return ""
}

func (x *Material) GetUnitPrice() float64 {
	if x != nil {
		return x.UnitPrice
	}
	return 0
}

func (x *Material) GetStockQuantity() float64 {
	if x != nil {
		return x.StockQuantity
	}
	return 0
}

func (x *Material) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Material) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type StageMaterial struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	StageId       string                 `protobuf:"bytes,2,opt,name=stage_id,json=stageId,proto3" json:"stage_id,omitempty"`
	ProjectId     string                 `protobuf:"bytes,3,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	MaterialId    string                 `protobuf:"bytes,4,opt,name=material_id,json=materialId,proto3" json:"material_id,omitempty"`
	Quantity      float64                `protobuf:"fixed64,5,opt,name=quantity,proto3" json:"quantity,omitempty"`
	TotalValue    float64                `protobuf:"fixed64,6,opt,name=total_value,json=totalValue,proto3" json:"total_value,omitempty"`
	PurchaseDate  string                 `protobuf:"bytes,7,opt,name=purchase_date,json=purchaseDate,proto3" json:"purchase_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StageMaterial) Reset() {
	*x = StageMaterial{}
	mi := &file_proto_obras_v1_obras_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StageMaterial) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StageMaterial) ProtoMessage() {}

func (x *StageMaterial) ProtoReflect() protoreflect.Message {
	mi := &file_proto_obras_v1_obras_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StageMaterial.ProtoReflect.Descriptor instead.
func (*StageMaterial) Descriptor() ([]byte, []int) {
	return file_proto_obras_v1_obras_proto_rawDescGZIP(), []int{7}
}

func (x *StageMaterial) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *StageMaterial) GetStageId() string {
	if x != nil {
		return x.StageId
	}
	return ""
}

func (x *StageMaterial) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *StageMaterial) GetMaterialId() string {
	if x != nil {
		return x.MaterialId
	}
	return ""
}

func (x *StageMaterial) GetQuantity() float64 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *StageMaterial) GetTotalValue() float64 {
	if x != nil {
		return x.TotalValue
	}
	return 0
}

func (x *StageMaterial) GetPurchaseDate() string {
	if x != nil {
		return x.PurchaseDate
	}
	return ""
}

type ListSuppliersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSuppliersRequest) Reset() {
	*x = ListSuppliersRequest{}
	mi := &file_proto_obras_v1_obras_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSuppliersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSuppliersRequest) ProtoMessage() {}

func (x *ListSuppliersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_obras_v1_obras_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSuppliersRequest.ProtoReflect.Descriptor instead.
func (*ListSuppliersRequest) Descriptor() ([]byte, []int) {
	return file_proto_obras_v1_obras_proto_rawDescGZIP(), []int{8}
}

type ListSuppliersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Suppliers     []*Supplier            `protobuf:"bytes,1,rep,name=suppliers,proto3" json:"suppliers,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSuppliersResponse) Reset() {
	*x = ListSuppliersResponse{}
	mi := &file_proto_obras_v1_obras_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSuppliersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSuppliersResponse) ProtoMessage() {}

func (x *ListSuppliersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_obras_v1_obras_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSuppliersResponse.ProtoReflect.Descriptor instead.
func (*ListSuppliersResponse) Descriptor() ([]byte, []int) {
	return file_proto_obras_v1_obras_proto_rawDescGZIP(), []int{9}
}

func (x *ListSuppliersResponse) GetSuppliers() []*Supplier {
	if x != nil {
		return x.Suppliers
	}
	return nil
}

type ListMaterialsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SupplierId    string                 `protobuf:"bytes,1,opt,name=supplier_id,json=supplierId,proto3" json:"supplier_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMaterialsRequest) Reset() {
	*x = ListMaterialsRequest{}
	mi := &file_proto_obras_v1_obras_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMaterialsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMaterialsRequest) ProtoMessage() {}

func (x *ListMaterialsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_obras_v1_obras_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMaterialsRequest.ProtoReflect.Descriptor instead.
func (*ListMaterialsRequest) Descriptor() ([]byte, []int) {
	return file_proto_obras_v1_obras_proto_rawDescGZIP(), []int{10}
}

func (x *ListMaterialsRequest) GetSupplierId() string {
	if x != nil {
		return x.SupplierId
	}
	return ""
}

type ListMaterialsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Materials     []*Material            `protobuf:"bytes,1,rep,name=materials,proto3" json:"materials,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMaterialsResponse) Reset() {
	*x = ListMaterialsResponse{}
	mi := &file_proto_obras_v1_obras_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMaterialsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMaterialsResponse) ProtoMessage() {}

func (x *ListMaterialsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_obras_v1_obras_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMaterialsResponse.ProtoReflect.Descriptor instead.
func (*ListMaterialsResponse) Descriptor() ([]byte, []int) {
	return file_proto_obras_v1_obras_proto_rawDescGZIP(), []int{11}
}

func (x *ListMaterialsResponse) GetMaterials() []*Material {
	if x != nil {
		return x.Materials
	}
	return nil
}

type ListStageMaterialsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StageId       string                 `protobuf:"bytes,1,opt,name=stage_id,json=stageId,proto3" json:"stage_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListStageMaterialsRequest) Reset() {
	*x = ListStageMaterialsRequest{}
	mi := &file_proto_obras_v1_obras_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListStageMaterialsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListStageMaterialsRequest) ProtoMessage() {}

func (x *ListStageMaterialsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_obras_v1_obras_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListStageMaterialsRequest.ProtoReflect.Descriptor instead.
func (*ListStageMaterialsRequest) Descriptor() ([]byte, []int) {
	return file_proto_obras_v1_obras_proto_rawDescGZIP(), []int{12}
}

func (x *ListStageMaterialsRequest) GetStageId() string {
	if x != nil {
		return x.StageId
	}
	return ""
}

type ListStageMaterialsResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	StageMaterials []*StageMaterial       `protobuf:"bytes,1,rep,name=stage_materials,json=stageMaterials,proto3" json:"stage_materials,omitempty"`
	RealizedValue  float64                `protobuf:"fixed64,2,opt,name=realized_value,json=realizedValue,proto3" json:"realized_value,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ListStageMaterialsResponse) Reset() {
	*x = ListStageMaterialsResponse{}
	mi := &file_proto_obras_v1_obras_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListStageMaterialsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListStageMaterialsResponse) ProtoMessage() {}

func (x *ListStageMaterialsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_obras_v1_obras_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListStageMaterialsResponse.ProtoReflect.Descriptor instead.
func (*ListStageMaterialsResponse) Descriptor() ([]byte, []int) {
	return file_proto_obras_v1_obras_proto_rawDescGZIP(), []int{13}
}

func (x *ListStageMaterialsResponse) GetStageMaterials() []*StageMaterial {
	if x != nil {
		return x.StageMaterials
	}
	return nil
}

func (x *ListStageMaterialsResponse) GetRealizedValue() float64 {
	if x != nil {
		return x.RealizedValue
	}
	return 0
}

type ExportStageMaterialsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StageId       string                 `protobuf:"bytes,1,opt,name=stage_id,json=stageId,proto3" json:"stage_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportStageMaterialsRequest) Reset() {
	*x = ExportStageMaterialsRequest{}
	mi := &file_proto_obras_v1_obras_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportStageMaterialsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportStageMaterialsRequest) ProtoMessage() {}

func (x *ExportStageMaterialsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_obras_v1_obras_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportStageMaterialsRequest.ProtoReflect.Descriptor instead.
func (*ExportStageMaterialsRequest) Descriptor() ([]byte, []int) {
	return file_proto_obras_v1_obras_proto_rawDescGZIP(), []int{14}
}

func (x *ExportStageMaterialsRequest) GetStageId() string {
	if x != nil {
		return x.StageId
	}
	return ""
}

type ExportStageMaterialsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportStageMaterialsResponse) Reset() {
	*x = ExportStageMaterialsResponse{}
	mi := &file_proto_obras_v1_obras_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportStageMaterialsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportStageMaterialsResponse) ProtoMessage() {}

func (x *ExportStageMaterialsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_obras_v1_obras_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportStageMaterialsResponse.ProtoReflect.Descriptor instead.
func (*ExportStageMaterialsResponse) Descriptor() ([]byte, []int) {
	return file_proto_obras_v1_obras_proto_rawDescGZIP(), []int{15}
}

func (x *ExportStageMaterialsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_proto_obras_v1_obras_proto protoreflect.FileDescriptor

const file_proto_obras_v1_obras_proto_rawDesc = "" +
	"\n" +
	"\x1aproto/obras/v1/obras.proto\x12\bobras.v1\"\xe4\x01\n" +
	"\x13IngestBudgetRequest\x12\x1f\n" +
	"\vsupplier_id\x18\x01 \x01(\tR\n" +
	"supplierId\x12\x1d\n" +
	"\n" +
	"project_id\x18\x02 \x01(\tR\tprojectId\x12\x19\n" +
	"\bstage_id\x18\x03 \x01(\tR\astageId\x12\x19\n" +
	"\bowner_id\x18\x04 \x01(\tR\aownerId\x12\x1a\n" +
	"\bfilename\x18\x05 \x01(\tR\bfilename\x12!\n" +
	"\fcontent_type\x18\x06 \x01(\tR\vcontentType\x12\x18\n" +
	"\acontent\x18\a \x01(\fR\acontent\"F\n" +
	"\x14IngestBudgetResponse\x12.\n" +
	"\x06result\x18\x01 \x01(\v2\x16.obras.v1.IngestResultR\x06result\"/\n" +
	"\x15EnqueueBudgetResponse\x12\x16\n" +
	"\x06queued\x18\x01 \x01(\bR\x06queued\"\xb9\x02\n" +
	"\fIngestResult\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess\x12$\n" +
	"\x0eno_items_found\x18\x02 \x01(\bR\fnoItemsFound\x12\x1f\n" +
	"\vitems_found\x18\x03 \x01(\x05R\n" +
	"itemsFound\x12#\n" +
	"\rcreated_count\x18\x04 \x01(\x05R\fcreatedCount\x12#\n" +
	"\rupdated_count\x18\x05 \x01(\x05R\fupdatedCount\x12+\n" +
	"\x06errors\x18\x06 \x03(\v2\x13.obras.v1.ItemErrorR\x06errors\x12.\n" +
	"\bsupplier\x18\a \x01(\v2\x12.obras.v1.SupplierR\bsupplier\x12!\n" +
	"\fdocument_url\x18\b \x01(\tR\vdocumentUrl\"[\n" +
	"\tItemError\x12)\n" +
	"\x10item_description\x18\x01 \x01(\tR\x0fitemDescription\x12#\n" +
	"\rerror_message\x18\x02 \x01(\tR\ferrorMessage\"\xaf\x01\n" +
	"\bSupplier\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x15\n" +
	"\x06tax_id\x18\x03 \x01(\tR\x05taxId\x12\x14\n" +
	"\x05email\x18\x04 \x01(\tR\x05email\x12\x14\n" +
	"\x05phone\x18\x05 \x01(\tR\x05phone\x12\x1d\n" +
	"\n" +
	"created_at\x18\x06 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\a \x01(\tR\tupdatedAt\"\xe7\x01\n" +
	"\bMaterial\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1f\n" +
	"\vsupplier_id\x18\x03 \x01(\tR\n" +
	"supplierId\x12\x12\n" +
	"\x04unit\x18\x04 \x01(\tR\x04unit\x12\x1d\n" +
	"\n" +
	"unit_price\x18\x05 \x01(\x01R\tunitPrice\x12%\n" +
	"\x0estock_quantity\x18\x06 \x01(\x01R\rstockQuantity\x12\x1d\n" +
	"\n" +
	"created_at\x18\a \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\b \x01(\tR\tupdatedAt\"\xdc\x01\n" +
	"\rStageMaterial\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bstage_id\x18\x02 \x01(\tR\astageId\x12\x1d\n" +
	"\n" +
	"project_id\x18\x03 \x01(\tR\tprojectId\x12\x1f\n" +
	"\vmaterial_id\x18\x04 \x01(\tR\n" +
	"materialId\x12\x1a\n" +
	"\bquantity\x18\x05 \x01(\x01R\bquantity\x12\x1f\n" +
	"\vtotal_value\x18\x06 \x01(\x01R\n" +
	"totalValue\x12#\n" +
	"\rpurchase_date\x18\a \x01(\tR\fpurchaseDate\"\x16\n" +
	"\x14ListSuppliersRequest\"I\n" +
	"\x15ListSuppliersResponse\x120\n" +
	"\tsuppliers\x18\x01 \x03(\v2\x12.obras.v1.SupplierR\tsuppliers\"7\n" +
	"\x14ListMaterialsRequest\x12\x1f\n" +
	"\vsupplier_id\x18\x01 \x01(\tR\n" +
	"supplierId\"I\n" +
	"\x15ListMaterialsResponse\x120\n" +
	"\tmaterials\x18\x01 \x03(\v2\x12.obras.v1.MaterialR\tmaterials\"6\n" +
	"\x19ListStageMaterialsRequest\x12\x19\n" +
	"\bstage_id\x18\x01 \x01(\tR\astageId\"\x85\x01\n" +
	"\x1aListStageMaterialsResponse\x12@\n" +
	"\x0fstage_materials\x18\x01 \x03(\v2\x17.obras.v1.StageMaterialR\x0estageMaterials\x12%\n" +
	"\x0erealized_value\x18\x02 \x01(\x01R\rrealizedValue\"8\n" +
	"\x1bExportStageMaterialsRequest\x12\x19\n" +
	"\bstage_id\x18\x01 \x01(\tR\astageId\"2\n" +
	"\x1cExportStageMaterialsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xb2\x01\n" +
	"\x10IngestionService\x12M\n" +
	"\fIngestBudget\x12\x1d.obras.v1.IngestBudgetRequest\x1a\x1e.obras.v1.IngestBudgetResponse\x12O\n" +
	"\rEnqueueBudget\x12\x1d.obras.v1.IngestBudgetRequest\x1a\x1f.obras.v1.EnqueueBudgetResponse2\x95\x02\n" +
	"\x0eCatalogService\x12P\n" +
	"\rListSuppliers\x12\x1e.obras.v1.ListSuppliersRequest\x1a\x1f.obras.v1.ListSuppliersResponse\x12P\n" +
	"\rListMaterials\x12\x1e.obras.v1.ListMaterialsRequest\x1a\x1f.obras.v1.ListMaterialsResponse\x12_\n" +
	"\x12ListStageMaterials\x12#.obras.v1.ListStageMaterialsRequest\x1a$.obras.v1.ListStageMaterialsResponse2v\n" +
	"\rExportService\x12e\n" +
	"\x14ExportStageMaterials\x12%.obras.v1.ExportStageMaterialsRequest\x1a&.obras.v1.ExportStageMaterialsResponseB>Z<github.com/obratech/obras-tracker/gen/proto/obras/v1;obrasv1b\x06proto3"

var (
	file_proto_obras_v1_obras_proto_rawDescOnce sync.Once
	file_proto_obras_v1_obras_proto_rawDescData []byte
)

func file_proto_obras_v1_obras_proto_rawDescGZIP() []byte {
	file_proto_obras_v1_obras_proto_rawDescOnce.Do(func() {
		file_proto_obras_v1_obras_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_proto_obras_v1_obras_proto_rawDesc), len(file_proto_obras_v1_obras_proto_rawDesc)))
	})
	return file_proto_obras_v1_obras_proto_rawDescData
}

var file_proto_obras_v1_obras_proto_msgTypes = make([]protoimpl.MessageInfo, 16)
var file_proto_obras_v1_obras_proto_goTypes = []any{
	(*IngestBudgetRequest)(nil),          // 0: obras.v1.IngestBudgetRequest
	(*IngestBudgetResponse)(nil),         // 1: obras.v1.IngestBudgetResponse
	(*EnqueueBudgetResponse)(nil),        // 2: obras.v1.EnqueueBudgetResponse
	(*IngestResult)(nil),                 // 3: obras.v1.IngestResult
	(*ItemError)(nil),                    // 4: obras.v1.ItemError
	(*Supplier)(nil),                     // 5: obras.v1.Supplier
	(*Material)(nil),                     // 6: obras.v1.Material
	(*StageMaterial)(nil),                // 7: obras.v1.StageMaterial
	(*ListSuppliersRequest)(nil),         // 8: obras.v1.ListSuppliersRequest
	(*ListSuppliersResponse)(nil),        // 9: obras.v1.ListSuppliersResponse
	(*ListMaterialsRequest)(nil),         // 10: obras.v1.ListMaterialsRequest
	(*ListMaterialsResponse)(nil),        // 11: obras.v1.ListMaterialsResponse
	(*ListStageMaterialsRequest)(nil),    // 12: obras.v1.ListStageMaterialsRequest
	(*ListStageMaterialsResponse)(nil),   // 13: obras.v1.ListStageMaterialsResponse
	(*ExportStageMaterialsRequest)(nil),  // 14: obras.v1.ExportStageMaterialsRequest
	(*ExportStageMaterialsResponse)(nil), // 15: obras.v1.ExportStageMaterialsResponse
}
var file_proto_obras_v1_obras_proto_depIdxs = []int32{
	3,  // 0: obras.v1.IngestBudgetResponse.result:type_name -> obras.v1.IngestResult
	4,  // 1: obras.v1.IngestResult.errors:type_name -> obras.v1.ItemError
	5,  // 2: obras.v1.IngestResult.supplier:type_name -> obras.v1.Supplier
	5,  // 3: obras.v1.ListSuppliersResponse.suppliers:type_name -> obras.v1.Supplier
	6,  // 4: obras.v1.ListMaterialsResponse.materials:type_name -> obras.v1.Material
	7,  // 5: obras.v1.ListStageMaterialsResponse.stage_materials:type_name -> obras.v1.StageMaterial
	0,  // 6: obras.v1.IngestionService.IngestBudget:input_type -> obras.v1.IngestBudgetRequest
	0,  // 7: obras.v1.IngestionService.EnqueueBudget:input_type -> obras.v1.IngestBudgetRequest
	8,  // 8: obras.v1.CatalogService.ListSuppliers:input_type -> obras.v1.ListSuppliersRequest
	10, // 9: obras.v1.CatalogService.ListMaterials:input_type -> obras.v1.ListMaterialsRequest
	12, // 10: obras.v1.CatalogService.ListStageMaterials:input_type -> obras.v1.ListStageMaterialsRequest
	14, // 11: obras.v1.ExportService.ExportStageMaterials:input_type -> obras.v1.ExportStageMaterialsRequest
	1,  // 12: obras.v1.IngestionService.IngestBudget:output_type -> obras.v1.IngestBudgetResponse
	2,  // 13: obras.v1.IngestionService.EnqueueBudget:output_type -> obras.v1.EnqueueBudgetResponse
	9,  // 14: obras.v1.CatalogService.ListSuppliers:output_type -> obras.v1.ListSuppliersResponse
	11, // 15: obras.v1.CatalogService.ListMaterials:output_type -> obras.v1.ListMaterialsResponse
	13, // 16: obras.v1.CatalogService.ListStageMaterials:output_type -> obras.v1.ListStageMaterialsResponse
	15, // 17: obras.v1.ExportService.ExportStageMaterials:output_type -> obras.v1.ExportStageMaterialsResponse
	12, // [12:18] is the sub-list for method output_type
	6,  // [6:12] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_proto_obras_v1_obras_proto_init() }
func file_proto_obras_v1_obras_proto_init() {
	if File_proto_obras_v1_obras_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_proto_obras_v1_obras_proto_rawDesc), len(file_proto_obras_v1_obras_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   16,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_proto_obras_v1_obras_proto_goTypes,
		DependencyIndexes: file_proto_obras_v1_obras_proto_depIdxs,
		MessageInfos:      file_proto_obras_v1_obras_proto_msgTypes,
	}.Build()
	File_proto_obras_v1_obras_proto = out.File
	file_proto_obras_v1_obras_proto_goTypes = nil
	file_proto_obras_v1_obras_proto_depIdxs = nil
}
