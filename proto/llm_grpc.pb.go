// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: llm.proto

package llmv1

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
	LLMGateway_Complete_FullMethodName = "/wanderlens.llm.v1.LLMGateway/Complete"
)

// LLMGatewayClient is the client API for LLMGateway service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// LLMGateway fronts the model vendors. The runtime never talks to a vendor
// directly; it asks the gateway for one structured completion per call.
type LLMGatewayClient interface {
	Complete(ctx context.Context, in *CompleteRequest, opts ...grpc.CallOption) (*CompleteResponse, error)
}

type lLMGatewayClient struct {
	cc grpc.ClientConnInterface
}

func NewLLMGatewayClient(cc grpc.ClientConnInterface) LLMGatewayClient {
	return &lLMGatewayClient{cc}
}

func (c *lLMGatewayClient) Complete(ctx context.Context, in *CompleteRequest, opts ...grpc.CallOption) (*CompleteResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CompleteResponse)
	err := c.cc.Invoke(ctx, LLMGateway_Complete_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LLMGatewayServer is the server API for LLMGateway service.
// All implementations must embed UnimplementedLLMGatewayServer
// for forward compatibility.
//
// LLMGateway fronts the model vendors. The runtime never talks to a vendor
// directly; it asks the gateway for one structured completion per call.
type LLMGatewayServer interface {
	Complete(context.Context, *CompleteRequest) (*CompleteResponse, error)
	mustEmbedUnimplementedLLMGatewayServer()
}

// UnimplementedLLMGatewayServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedLLMGatewayServer struct{}

func (UnimplementedLLMGatewayServer) Complete(context.Context, *CompleteRequest) (*CompleteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Complete not implemented")
}
func (UnimplementedLLMGatewayServer) mustEmbedUnimplementedLLMGatewayServer() {}
func (UnimplementedLLMGatewayServer) testEmbeddedByValue()                    {}

// UnsafeLLMGatewayServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to LLMGatewayServer will
// result in compilation errors.
type UnsafeLLMGatewayServer interface {
	mustEmbedUnimplementedLLMGatewayServer()
}

func RegisterLLMGatewayServer(s grpc.ServiceRegistrar, srv LLMGatewayServer) {
	// If the following call panics, it indicates UnimplementedLLMGatewayServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&LLMGateway_ServiceDesc, srv)
}

func _LLMGateway_Complete_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CompleteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LLMGatewayServer).Complete(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LLMGateway_Complete_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LLMGatewayServer).Complete(ctx, req.(*CompleteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// LLMGateway_ServiceDesc is the grpc.ServiceDesc for LLMGateway service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var LLMGateway_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "wanderlens.llm.v1.LLMGateway",
	HandlerType: (*LLMGatewayServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Complete",
			Handler:    _LLMGateway_Complete_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "llm.proto",
}
