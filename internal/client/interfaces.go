package client

// Client is a runnable client process.
type Client interface {
	// Run blocks until the user leaves or the process is signalled.
	Run() error
}

var _ Client = (*App)(nil)
