package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/edgard/deliverybot/internal/responder"
)

// maxTranscript bounds the number of lines kept on screen.
const maxTranscript = 200

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	userStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	botStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	intentStyle = lipgloss.NewStyle().Faint(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

type line struct {
	user   bool
	text   string
	intent responder.Intent
}

type model struct {
	resp       *responder.Responder
	input      textinput.Model
	transcript []line
	height     int
}

func newModel(resp *responder.Responder) model {
	ti := textinput.New()
	ti.Placeholder = "Ask about your order, the menu, payment..."
	ti.Prompt = "> "
	ti.CharLimit = 500
	ti.Focus()

	return model{resp: resp, input: ti}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.input.Width = msg.Width - len(m.input.Prompt) - 1
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			m = m.submit(m.input.Value())
			m.input.SetValue("")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) submit(text string) model {
	match := m.resp.Match(text)
	m.transcript = append(m.transcript,
		line{user: true, text: text},
		line{text: match.Reply, intent: match.Intent},
	)
	if over := len(m.transcript) - maxTranscript; over > 0 {
		m.transcript = m.transcript[over:]
	}
	return m
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Food delivery assistant"))
	b.WriteString("\n\n")

	lines := m.transcript
	// Title, blank line, input and help take four rows.
	if visible := m.height - 4; m.height > 0 && visible < len(lines) {
		if visible < 0 {
			visible = 0
		}
		lines = lines[len(lines)-visible:]
	}
	for _, l := range lines {
		if l.user {
			b.WriteString(userStyle.Render("you: " + l.text))
		} else {
			b.WriteString(botStyle.Render("bot: " + l.text))
			b.WriteString(" ")
			b.WriteString(intentStyle.Render("[" + string(l.intent) + "]"))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: send • esc: quit"))
	return b.String()
}
