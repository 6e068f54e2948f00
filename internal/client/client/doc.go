// Package client contains the network request facade of the netops client.
//
// # Overview
//
// AuthClient is the transport-agnostic contract used by the state container:
// Register, Login and FetchProfile. HTTPClient implements it against the
// JSON-over-HTTP backend rooted at a base URL:
//
//	POST register          {"fullName","email","password"} -> identifier (text)
//	POST login             {"email","password"}            -> identifier (text)
//	GET  profile/{userId}                                   -> profile (JSON)
//
// Every request is a single exchange with Content-Type application/json. There
// is no retry and no timeout beyond the http.Client in use.
//
// # Error Handling
//
// Failures are returned, never panicked, and wrap one of two sentinels that
// callers match with errors.Is: ErrTransport (I/O failure or non-2xx status,
// the latter carrying a *StatusError) and ErrParse (malformed JSON or a
// missing/mistyped required profile field). The underlying cause is always
// kept in the chain.
package client
