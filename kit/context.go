package kit

import "context"

type contextKey string

const (
	RequestIDKey contextKey = "kit_request_id"
	TransportKey contextKey = "kit_transport" // "cli", "mcp_stdio"
	DocNameKey   contextKey = "kit_doc_name"
)

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}
func GetRequestID(ctx context.Context) string {
	v, _ := ctx.Value(RequestIDKey).(string)
	return v
}

func WithTransport(ctx context.Context, t string) context.Context {
	return context.WithValue(ctx, TransportKey, t)
}
func GetTransport(ctx context.Context) string {
	if v, ok := ctx.Value(TransportKey).(string); ok {
		return v
	}
	return "cli"
}

func WithDocName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, DocNameKey, name)
}
func GetDocName(ctx context.Context) string {
	v, _ := ctx.Value(DocNameKey).(string)
	return v
}
