// Package common contains shared constants and small helpers used across
// InfoWise client components.
package common

const (
	// AuthorizationHeaderName carries the bearer token on outbound requests.
	AuthorizationHeaderName = "Authorization"

	// BearerPrefix precedes the token in AuthorizationHeaderName.
	BearerPrefix = "Bearer "

	// Placeholder is rendered wherever a label cannot be produced.
	Placeholder = "—"
)
