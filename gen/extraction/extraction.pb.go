// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: extraction.proto

package extraction

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

type ExtractRequest struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	Pdf      []byte                 `protobuf:"bytes,1,opt,name=pdf,proto3" json:"pdf,omitempty"`
	Filename string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	// When true the service may fall back to OCR for scanned pages.
	OcrFallback   bool `protobuf:"varint,3,opt,name=ocr_fallback,json=ocrFallback,proto3" json:"ocr_fallback,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractRequest) Reset() {
	*x = ExtractRequest{}
	mi := &file_extraction_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractRequest) ProtoMessage() {}

func (x *ExtractRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractRequest.ProtoReflect.Descriptor instead.
func (*ExtractRequest) Descriptor() ([]byte, []int) {
	return file_extraction_proto_rawDescGZIP(), []int{0}
}

func (x *ExtractRequest) GetPdf() []byte {
	if x != nil {
		return x.Pdf
	}
	return nil
}

func (x *ExtractRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ExtractRequest) GetOcrFallback() bool {
	if x != nil {
		return x.OcrFallback
	}
	return false
}

type ExtractResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// The extracted report as JSON: metadata, rooms, scenes.
	ReportJson    string   `protobuf:"bytes,1,opt,name=report_json,json=reportJson,proto3" json:"report_json,omitempty"`
	Warnings      []string `protobuf:"bytes,2,rep,name=warnings,proto3" json:"warnings,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractResponse) Reset() {
	*x = ExtractResponse{}
	mi := &file_extraction_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractResponse) ProtoMessage() {}

func (x *ExtractResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractResponse.ProtoReflect.Descriptor instead.
func (*ExtractResponse) Descriptor() ([]byte, []int) {
	return file_extraction_proto_rawDescGZIP(), []int{1}
}

func (x *ExtractResponse) GetReportJson() string {
	if x != nil {
		return x.ReportJson
	}
	return ""
}

func (x *ExtractResponse) GetWarnings() []string {
	if x != nil {
		return x.Warnings
	}
	return nil
}

var File_extraction_proto protoreflect.FileDescriptor

const file_extraction_proto_rawDesc = "" +
	"\n" +
	"\x10extraction.proto\x12\n" +
	"extraction\"a\n" +
	"\x0eExtractRequest\x12\x10\n" +
	"\x03pdf\x18\x01 \x01(\fR\x03pdf\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12!\n" +
	"\focr_fallback\x18\x03 \x01(\bR\vocrFallback\"N\n" +
	"\x0fExtractResponse\x12\x1f\n" +
	"\vreport_json\x18\x01 \x01(\tR\n" +
	"reportJson\x12\x1a\n" +
	"\bwarnings\x18\x02 \x03(\tR\bwarnings2W\n" +
	"\x11ExtractionService\x12B\n" +
	"\aExtract\x12\x1a.extraction.ExtractRequest\x1a\x1b.extraction.ExtractResponseB.Z,github.com/luxscale/go-engine/gen/extractionb\x06proto3"

var (
	file_extraction_proto_rawDescOnce sync.Once
	file_extraction_proto_rawDescData []byte
)

func file_extraction_proto_rawDescGZIP() []byte {
	file_extraction_proto_rawDescOnce.Do(func() {
		file_extraction_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_extraction_proto_rawDesc), len(file_extraction_proto_rawDesc)))
	})
	return file_extraction_proto_rawDescData
}

var file_extraction_proto_msgTypes = make([]protoimpl.MessageInfo, 2)
var file_extraction_proto_goTypes = []any{
	(*ExtractRequest)(nil),  // 0: extraction.ExtractRequest
	(*ExtractResponse)(nil), // 1: extraction.ExtractResponse
}
var file_extraction_proto_depIdxs = []int32{
	0, // 0: extraction.ExtractionService.Extract:input_type -> extraction.ExtractRequest
	1, // 1: extraction.ExtractionService.Extract:output_type -> extraction.ExtractResponse
	1, // [1:2] is the sub-list for method output_type
	0, // [0:1] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_extraction_proto_init() }
func file_extraction_proto_init() {
	if File_extraction_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_extraction_proto_rawDesc), len(file_extraction_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   2,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_extraction_proto_goTypes,
		DependencyIndexes: file_extraction_proto_depIdxs,
		MessageInfos:      file_extraction_proto_msgTypes,
	}.Build()
	File_extraction_proto = out.File
	file_extraction_proto_goTypes = nil
	file_extraction_proto_depIdxs = nil
}
