package console

import "context"

type clientKey struct{}

// Client identifies where a command came from, for the audit trail
type Client struct {
	IP        string
	UserAgent string
}

// WithClient stores the caller of the current command in ctx
func WithClient(ctx context.Context, client Client) context.Context {
	return context.WithValue(ctx, clientKey{}, client)
}

func clientFrom(ctx context.Context) Client {
	client, _ := ctx.Value(clientKey{}).(Client)
	return client
}
