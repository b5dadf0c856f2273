// Package client talks to the two InfoWise backends over HTTP/JSON.
//
// # Overview
//
//  1. UserClient speaks to the identity service: login, register and the
//     stored category preferences.
//  2. NewsClient speaks to the news service: the category catalogs, the
//     per-user summaries and the health probe.
//
// Both are configured with their own base URL and never share state, so a
// single instance can be used from several goroutines.
//
// # Credentials
//
// Neither issuer keeps an auth header. The bearer token travels in the
// request context (see WithAccessToken) and is attached per request.
//
// # Error Handling
//
// Failures map onto sentinel errors that callers match with errors.Is:
// ErrUnauthorized, ErrConflict, ErrNotFound and ErrNetwork. Non-2xx
// responses are returned as *StatusError, which unwraps to the sentinel.
package client
