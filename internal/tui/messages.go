package tui

type replyMsg struct {
	reply string
	err   error
}

type versionMsg struct {
	version string
	err     error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
