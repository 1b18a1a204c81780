// Package utils holds small helpers shared by the backend and the client:
// password digests, JWT signing and parsing, context keys, JSON responses
// and a preconfigured resty client.
package utils
