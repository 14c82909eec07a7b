package chatpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ChatServer is the server API for the Chat service, hand-written in the
// shape protoc-gen-go-grpc would emit from chat.proto.
type ChatServer interface {
	LogIn(Chat_LogInServer) error
	LogOut(context.Context, *LogOutRequest) (*LogOutReply, error)
	List(context.Context, *ListRequest) (*ListReply, error)
	ReceiveMessage(*ReceiveMessageRequest, Chat_ReceiveMessageServer) error
	SendMessage(Chat_SendMessageServer) error
	Chat(Chat_ChatServer) error
}

// UnimplementedChatServer can be embedded for forward compatibility.
type UnimplementedChatServer struct{}

func (UnimplementedChatServer) LogIn(Chat_LogInServer) error {
	return status.Error(codes.Unimplemented, "method LogIn not implemented")
}
func (UnimplementedChatServer) LogOut(context.Context, *LogOutRequest) (*LogOutReply, error) {
	return nil, status.Error(codes.Unimplemented, "method LogOut not implemented")
}
func (UnimplementedChatServer) List(context.Context, *ListRequest) (*ListReply, error) {
	return nil, status.Error(codes.Unimplemented, "method List not implemented")
}
func (UnimplementedChatServer) ReceiveMessage(*ReceiveMessageRequest, Chat_ReceiveMessageServer) error {
	return status.Error(codes.Unimplemented, "method ReceiveMessage not implemented")
}
func (UnimplementedChatServer) SendMessage(Chat_SendMessageServer) error {
	return status.Error(codes.Unimplemented, "method SendMessage not implemented")
}
func (UnimplementedChatServer) Chat(Chat_ChatServer) error {
	return status.Error(codes.Unimplemented, "method Chat not implemented")
}

// --- LogIn stream ---

type Chat_LogInServer interface {
	Send(*LogInReply) error
	Recv() (*LogInRequest, error)
	grpc.ServerStream
}

type chatLogInServer struct{ grpc.ServerStream }

func (x *chatLogInServer) Send(m *LogInReply) error { return x.ServerStream.SendMsg(m) }
func (x *chatLogInServer) Recv() (*LogInRequest, error) {
	m := new(LogInRequest)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

type Chat_LogInClient interface {
	Send(*LogInRequest) error
	Recv() (*LogInReply, error)
	grpc.ClientStream
}

type chatLogInClient struct{ grpc.ClientStream }

func (x *chatLogInClient) Send(m *LogInRequest) error { return x.ClientStream.SendMsg(m) }
func (x *chatLogInClient) Recv() (*LogInReply, error) {
	m := new(LogInReply)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// --- ReceiveMessage stream (server-streaming) ---

type Chat_ReceiveMessageServer interface {
	Send(*ReceiveMessageReply) error
	grpc.ServerStream
}

type chatReceiveMessageServer struct{ grpc.ServerStream }

func (x *chatReceiveMessageServer) Send(m *ReceiveMessageReply) error {
	return x.ServerStream.SendMsg(m)
}

type Chat_ReceiveMessageClient interface {
	Recv() (*ReceiveMessageReply, error)
	grpc.ClientStream
}

type chatReceiveMessageClient struct{ grpc.ClientStream }

func (x *chatReceiveMessageClient) Recv() (*ReceiveMessageReply, error) {
	m := new(ReceiveMessageReply)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// --- SendMessage stream ---

type Chat_SendMessageServer interface {
	Send(*SendMessageReply) error
	Recv() (*SendMessageRequest, error)
	grpc.ServerStream
}

type chatSendMessageServer struct{ grpc.ServerStream }

func (x *chatSendMessageServer) Send(m *SendMessageReply) error { return x.ServerStream.SendMsg(m) }
func (x *chatSendMessageServer) Recv() (*SendMessageRequest, error) {
	m := new(SendMessageRequest)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

type Chat_SendMessageClient interface {
	Send(*SendMessageRequest) error
	Recv() (*SendMessageReply, error)
	grpc.ClientStream
}

type chatSendMessageClient struct{ grpc.ClientStream }

func (x *chatSendMessageClient) Send(m *SendMessageRequest) error { return x.ClientStream.SendMsg(m) }
func (x *chatSendMessageClient) Recv() (*SendMessageReply, error) {
	m := new(SendMessageReply)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// --- Chat stream ---

type Chat_ChatServer interface {
	Send(*ChatMessage) error
	Recv() (*ChatMessage, error)
	grpc.ServerStream
}

type chatChatServer struct{ grpc.ServerStream }

func (x *chatChatServer) Send(m *ChatMessage) error { return x.ServerStream.SendMsg(m) }
func (x *chatChatServer) Recv() (*ChatMessage, error) {
	m := new(ChatMessage)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

type Chat_ChatClient interface {
	Send(*ChatMessage) error
	Recv() (*ChatMessage, error)
	grpc.ClientStream
}

type chatChatClient struct{ grpc.ClientStream }

func (x *chatChatClient) Send(m *ChatMessage) error { return x.ClientStream.SendMsg(m) }
func (x *chatChatClient) Recv() (*ChatMessage, error) {
	m := new(ChatMessage)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// --- unary handlers ---

func _Chat_LogOut_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(LogOutRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChatServer).LogOut(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/chat.v1.Chat/LogOut"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ChatServer).LogOut(ctx, req.(*LogOutRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Chat_List_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChatServer).List(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/chat.v1.Chat/List"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ChatServer).List(ctx, req.(*ListRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// --- streaming handlers ---

func _Chat_LogIn_Handler(srv any, stream grpc.ServerStream) error {
	return srv.(ChatServer).LogIn(&chatLogInServer{stream})
}

func _Chat_ReceiveMessage_Handler(srv any, stream grpc.ServerStream) error {
	m := new(ReceiveMessageRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(ChatServer).ReceiveMessage(m, &chatReceiveMessageServer{stream})
}

func _Chat_SendMessage_Handler(srv any, stream grpc.ServerStream) error {
	return srv.(ChatServer).SendMessage(&chatSendMessageServer{stream})
}

func _Chat_Chat_Handler(srv any, stream grpc.ServerStream) error {
	return srv.(ChatServer).Chat(&chatChatServer{stream})
}

// Chat_ServiceDesc is the grpc.ServiceDesc for the Chat service, the same
// mechanism protoc-gen-go-grpc emits; stream indices below are referenced
// by position from the client stubs.
var Chat_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "chat.v1.Chat",
	HandlerType: (*ChatServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "LogOut", Handler: _Chat_LogOut_Handler},
		{MethodName: "List", Handler: _Chat_List_Handler},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "LogIn", Handler: _Chat_LogIn_Handler, ServerStreams: true, ClientStreams: true},
		{StreamName: "ReceiveMessage", Handler: _Chat_ReceiveMessage_Handler, ServerStreams: true},
		{StreamName: "SendMessage", Handler: _Chat_SendMessage_Handler, ServerStreams: true, ClientStreams: true},
		{StreamName: "Chat", Handler: _Chat_Chat_Handler, ServerStreams: true, ClientStreams: true},
	},
	Metadata: "chat.proto",
}

// RegisterChatServer registers srv with s, the same call shape
// protoc-gen-go-grpc generates.
func RegisterChatServer(s grpc.ServiceRegistrar, srv ChatServer) {
	s.RegisterService(&Chat_ServiceDesc, srv)
}

// ChatClient is the client API for the Chat service.
type ChatClient interface {
	LogIn(ctx context.Context, opts ...grpc.CallOption) (Chat_LogInClient, error)
	LogOut(ctx context.Context, in *LogOutRequest, opts ...grpc.CallOption) (*LogOutReply, error)
	List(ctx context.Context, in *ListRequest, opts ...grpc.CallOption) (*ListReply, error)
	ReceiveMessage(ctx context.Context, in *ReceiveMessageRequest, opts ...grpc.CallOption) (Chat_ReceiveMessageClient, error)
	SendMessage(ctx context.Context, opts ...grpc.CallOption) (Chat_SendMessageClient, error)
	Chat(ctx context.Context, opts ...grpc.CallOption) (Chat_ChatClient, error)
}

type chatClient struct {
	cc grpc.ClientConnInterface
}

// NewChatClient wraps cc in the ChatClient API. Used by integration tests
// to drive the server over a real grpc.ClientConn (typically bufconn-backed).
func NewChatClient(cc grpc.ClientConnInterface) ChatClient {
	return &chatClient{cc}
}

func (c *chatClient) LogIn(ctx context.Context, opts ...grpc.CallOption) (Chat_LogInClient, error) {
	stream, err := c.cc.NewStream(ctx, &Chat_ServiceDesc.Streams[0], "/chat.v1.Chat/LogIn", opts...)
	if err != nil {
		return nil, err
	}
	return &chatLogInClient{stream}, nil
}

func (c *chatClient) LogOut(ctx context.Context, in *LogOutRequest, opts ...grpc.CallOption) (*LogOutReply, error) {
	out := new(LogOutReply)
	if err := c.cc.Invoke(ctx, "/chat.v1.Chat/LogOut", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *chatClient) List(ctx context.Context, in *ListRequest, opts ...grpc.CallOption) (*ListReply, error) {
	out := new(ListReply)
	if err := c.cc.Invoke(ctx, "/chat.v1.Chat/List", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *chatClient) ReceiveMessage(ctx context.Context, in *ReceiveMessageRequest, opts ...grpc.CallOption) (Chat_ReceiveMessageClient, error) {
	stream, err := c.cc.NewStream(ctx, &Chat_ServiceDesc.Streams[1], "/chat.v1.Chat/ReceiveMessage", opts...)
	if err != nil {
		return nil, err
	}
	x := &chatReceiveMessageClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

func (c *chatClient) SendMessage(ctx context.Context, opts ...grpc.CallOption) (Chat_SendMessageClient, error) {
	stream, err := c.cc.NewStream(ctx, &Chat_ServiceDesc.Streams[2], "/chat.v1.Chat/SendMessage", opts...)
	if err != nil {
		return nil, err
	}
	return &chatSendMessageClient{stream}, nil
}

func (c *chatClient) Chat(ctx context.Context, opts ...grpc.CallOption) (Chat_ChatClient, error) {
	stream, err := c.cc.NewStream(ctx, &Chat_ServiceDesc.Streams[3], "/chat.v1.Chat/Chat", opts...)
	if err != nil {
		return nil, err
	}
	return &chatChatClient{stream}, nil
}
