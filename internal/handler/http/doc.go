// Package http implements the REST API of go-matjip.
//
// It exposes route wiring, JSON handlers and the middleware chain: trace
// ids, access logging, request metrics, gzip and bearer authentication.
// Handlers decode requests, call the service layer and map the returned
// error kinds to status codes; no business rule lives here.
package http
