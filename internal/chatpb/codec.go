package chatpb

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
)

// jsonCodec carries the plain Go structs in messages.go over the wire as
// JSON. There is no protoc toolchain available to generate real protobuf
// marshaling for this service, so the server and client both force this
// codec via grpc.ForceServerCodec / grpc.ForceCodec, bypassing gRPC's
// content-subtype negotiation entirely. The transport underneath — HTTP/2
// framing, stream half-close, flow control, status codes — is the real
// google.golang.org/grpc implementation; only the body encoding differs
// from what protoc-gen-go would produce.
type jsonCodec struct{}

// Name satisfies encoding.Codec. It intentionally does not collide with
// grpc-go's built-in "proto" codec name.
func (jsonCodec) Name() string { return "chat-json" }

func (jsonCodec) Marshal(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("chatpb: marshal %T: %w", v, err)
	}
	return b, nil
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("chatpb: unmarshal into %T: %w", v, err)
	}
	return nil
}

// Codec is the shared codec instance used by both the server
// (grpc.ForceServerCodec) and any in-process client (grpc.ForceCodec).
var Codec = jsonCodec{}

func init() {
	// Registering it is not strictly required when ForceCodec/ForceServerCodec
	// is used, but it keeps the codec discoverable by name for tooling that
	// inspects encoding.GetCodec, matching how real codecs are installed.
	encoding.RegisterCodec(Codec)
}
