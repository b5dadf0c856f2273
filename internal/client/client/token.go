package client

import "context"

type accessTokenKey struct{}

// WithAccessToken returns a context whose requests carry token as a bearer
// credential. An empty token removes any credential set by a parent.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey{}, token)
}

// AccessToken returns the token stored by WithAccessToken, if any.
func AccessToken(ctx context.Context) string {
	token, _ := ctx.Value(accessTokenKey{}).(string)
	return token
}
