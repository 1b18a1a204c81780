// Package server runs the bot's HTTP transport until the process is asked
// to stop, then drains in-flight requests.
package server
