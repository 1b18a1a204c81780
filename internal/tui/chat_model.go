package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/adapter"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/logger"
	"github.com/NikunjSachdeva/DefiSensei-Bot/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	// chromeHeight is the number of rows around the transcript: header,
	// dividers, input, status and help.
	chromeHeight = 9
	statusTTL    = 2 * time.Second
)

// writeClipboard is swapped in tests; CI machines have no clipboard.
var writeClipboard = clipboard.WriteAll

type chatModel struct {
	ctx     context.Context
	adapter adapter.ServerAdapter
	logger  *logger.Logger

	buildInfo     models.AppBuildInfo
	serverVersion string

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	transcript []transcriptEntry
	lastReply  string
	sending    bool
	status     string
}

func newChatModel(ctx context.Context, serverAdapter adapter.ServerAdapter, buildInfo models.AppBuildInfo, log *logger.Logger) chatModel {
	input := textinput.New()
	input.Placeholder = "/help"
	input.Prompt = "> "
	input.CharLimit = 512
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return chatModel{
		ctx:       ctx,
		adapter:   serverAdapter,
		logger:    log,
		buildInfo: buildInfo,
		input:     input,
		viewport:  viewport.New(80, 20),
		spinner:   s,
	}
}

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdFetchVersion())
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = max(msg.Height-chromeHeight, 3)
		m.input.Width = msg.Width - 8
		m.refreshTranscript()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case replyMsg:
		m.sending = false
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("command failed")
			m.appendEntry(speakerError, humanizeServerError(msg.err))
			return m, nil
		}
		m.lastReply = msg.reply
		m.appendEntry(speakerBot, msg.reply)
		return m, nil

	case versionMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("error fetching server version")
			return m, nil
		}
		m.serverVersion = msg.version
		return m, nil

	case copiedMsg:
		m.status = "Reply copied to clipboard"
		return m, cmdClearStatus()

	case copyFailedMsg:
		m.status = fmt.Sprintf("Copy failed: %v", msg.err)
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.sending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit

	case key.Matches(msg, keys.copy):
		if m.lastReply == "" {
			m.status = "Nothing to copy yet"
			return m, cmdClearStatus()
		}
		return m, cmdCopyToClipboard(m.lastReply)

	case key.Matches(msg, keys.send):
		text := strings.TrimSpace(m.input.Value())
		if text == "" || m.sending {
			return m, nil
		}
		m.input.Reset()
		m.sending = true
		m.appendEntry(speakerUser, text)
		return m, tea.Batch(m.spinner.Tick, m.cmdSend(text))

	case key.Matches(msg, keys.scrollUp, keys.scrollDn):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) View() string {
	var b strings.Builder

	b.WriteString(renderHeader(m.buildInfo, m.serverVersion))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	switch {
	case m.sending:
		b.WriteString(statusStyle.Render(m.spinner.View() + " waiting for the bot..."))
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: send • ctrl+y: copy last reply • pgup/pgdown: scroll • esc: quit"))

	return appStyle.Render(b.String())
}

func (m *chatModel) appendEntry(from speaker, text string) {
	m.transcript = append(m.transcript, transcriptEntry{from: from, text: text})
	m.refreshTranscript()
}

func (m *chatModel) refreshTranscript() {
	m.viewport.SetContent(renderTranscript(m.transcript))
	m.viewport.GotoBottom()
}

func (m chatModel) cmdSend(text string) tea.Cmd {
	ctx := m.ctx
	a := m.adapter
	return func() tea.Msg {
		reply, err := a.SendCommand(ctx, text)
		return replyMsg{reply: reply, err: err}
	}
}

func (m chatModel) cmdFetchVersion() tea.Cmd {
	ctx := m.ctx
	a := m.adapter
	return func() tea.Msg {
		version, err := a.GetServerVersion(ctx)
		return versionMsg{version: version, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copyFailedMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
