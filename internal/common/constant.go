// Package common contains shared constants and sentinel errors used across
// netops components.
package common

// ContentTypeJSON is sent on every client request and on JSON responses.
const ContentTypeJSON = "application/json; charset=UTF-8"

// ContentTypeText is used for the plain identifier returned by register/login.
const ContentTypeText = "text/plain; charset=UTF-8"
