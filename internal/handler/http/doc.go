// Package http implements the HTTP transport of the bot backend.
//
// A chat gateway posts each incoming line to /api/commands with a bearer
// token naming the caller; the reply text goes back in the response body.
// Tracing, access logging, compression and metrics exposure are handled
// here before a line reaches the command dispatcher.
package http
