// Package ui is the terminal chat surface: a transcript viewport, a
// single input line and a busy indicator. All conversation logic lives
// in the conversation service; this package only renders transcript
// entries and relays input.
package ui

import (
	"context"
	"fmt"
	"strings"

	"retireterm/app/client/simulation"
	"retireterm/app/config"
	"retireterm/app/service/conversation"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/do"
)

type Model struct {
	cfg       *config.Config
	convo     *conversation.Service
	simClient *simulation.Client

	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model
	styles   Styles

	entries       []conversation.Entry
	metadata      *simulation.Metadata
	quantilesOnly bool

	// inflight counts submissions the engine has not answered yet; the
	// input stays live while it is non-zero, only the indicator shows.
	inflight int

	width  int
	height int
	ready  bool
}

type submitDoneMsg struct {
	entries []conversation.Entry
}

type metadataMsg struct {
	metadata *simulation.Metadata
}

func New(di *do.Injector) (*Model, error) {
	cfg := do.MustInvoke[*config.Config](di)

	input := textinput.New()
	input.Placeholder = "Type response here"
	input.Prompt = "> "
	input.CharLimit = 0
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Line

	return &Model{
		cfg:           cfg,
		convo:         do.MustInvoke[*conversation.Service](di),
		simClient:     do.MustInvoke[*simulation.Client](di),
		input:         input,
		spinner:       sp,
		styles:        NewStyles(),
		entries:       nil,
		quantilesOnly: cfg.Display.QuantilesOnly,
	}, nil
}

func (m *Model) Init() tea.Cmd {
	m.entries = m.convo.Transcript()

	return tea.Batch(textinput.Blink, m.spinner.Tick, m.fetchMetadata())
}

func (m *Model) fetchMetadata() tea.Cmd {
	return func() tea.Msg {
		metadata, err := m.simClient.SeriesMetadata(context.Background())
		if err != nil {
			// The banner simply stays coverage-less.
			return metadataMsg{}
		}
		return metadataMsg{metadata: metadata}
	}
}

func (m *Model) submit(text string) tea.Cmd {
	return func() tea.Msg {
		return submitDoneMsg{entries: m.convo.Submit(context.Background(), text)}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = maxInt(20, msg.Width-4)

		headerHeight := 2
		footerHeight := 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width, maxInt(1, msg.Height-headerHeight-footerHeight))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = maxInt(1, msg.Height-headerHeight-footerHeight)
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit

		case tea.KeyCtrlQ:
			m.quantilesOnly = !m.quantilesOnly
			m.refresh()
			return m, nil

		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			m.input.Reset()
			m.inflight++
			return m, m.submit(text)
		}

	case submitDoneMsg:
		if m.inflight > 0 {
			m.inflight--
		}
		m.entries = append(m.entries, msg.entries...)
		m.refresh()
		return m, nil

	case metadataMsg:
		m.metadata = msg.metadata
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// refresh re-renders the whole transcript into the viewport. Chart
// entries depend on the quantile toggle, so they cannot be cached as
// flat text.
func (m *Model) refresh() {
	var content strings.Builder

	for _, entry := range m.entries {
		content.WriteString(m.renderEntry(entry))
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
	m.viewport.GotoBottom()
}

func (m *Model) renderEntry(entry conversation.Entry) string {
	switch e := entry.(type) {
	case conversation.Message:
		if e.Role == conversation.RoleUser {
			return m.styles.User.Render("> ") + e.Text
		}
		return m.styles.Brand.Render("$ ") + m.styles.System.Render(e.Text)

	case conversation.Chart:
		return m.renderRun(e.Run)

	case conversation.Structured:
		var b strings.Builder
		b.WriteString(m.styles.Brand.Render("$ ") + m.styles.System.Render(e.Summary))
		if len(e.Suggestions) > 0 {
			b.WriteString("\n" + m.styles.Accent.Render("Suggestions:"))
			for _, suggestion := range e.Suggestions {
				b.WriteString("\n" + m.styles.Accent.Render("  - ") + suggestion)
			}
		}
		return b.String()

	case conversation.Plain:
		return m.styles.Brand.Render("$ ") + m.styles.System.Render(e.Text)

	default:
		return ""
	}
}

func (m *Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.styles.Header.Render("$ Retirement Planner")
	if m.metadata != nil {
		header += m.styles.Dim.Render(fmt.Sprintf("  %d-%d | %s / %s",
			m.metadata.MinYear, m.metadata.MaxYear, m.metadata.Stocks, m.metadata.Bonds))
	}
	if m.quantilesOnly {
		header += m.styles.Accent.Render("  [quantiles]")
	}

	footer := m.input.View()
	if m.inflight > 0 {
		footer = m.spinner.View() + " " + m.styles.Dim.Render("Working...") + "\n" + footer
	} else {
		footer = "\n" + footer
	}

	return header + "\n\n" + m.viewport.View() + "\n" + footer
}
