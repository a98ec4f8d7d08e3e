package chat

import (
	"context"
	"strings"

	"github.com/MuzzammilShah/pa-agent-cli/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const headerTitle = "PA Agent - Work Buddy"

// Sender runs one user turn and returns the messages it appended.
type Sender interface {
	Send(ctx context.Context, text string) ([]domain.ChatMessage, error)
}

type sendDoneMsg struct {
	appended []domain.ChatMessage
	err      error
}

type model struct {
	ctx      context.Context
	sender   Sender
	input    textinput.Model
	spinner  spinner.Model
	styles   styles
	messages []domain.ChatMessage
	sendErr  error
	waiting  bool
	quitting bool
}

func newModel(ctx context.Context, sender Sender, history []domain.ChatMessage) model {
	ti := textinput.New()
	ti.Placeholder = "Type a message"
	ti.Prompt = "> "
	ti.Focus()

	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	st := newStyles()
	s.Style = st.spinner

	return model{
		ctx:      ctx,
		sender:   sender,
		input:    ti,
		spinner:  s,
		styles:   st,
		messages: append([]domain.ChatMessage(nil), history...),
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.waiting {
				return m, nil
			}
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			m.input.Reset()
			m.sendErr = nil
			m.waiting = true
			return m, tea.Batch(m.spinner.Tick, m.sendCmd(text))
		}
	case spinner.TickMsg:
		if !m.waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case sendDoneMsg:
		m.waiting = false
		m.sendErr = msg.err
		m.messages = append(m.messages, msg.appended...)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) sendCmd(text string) tea.Cmd {
	return func() tea.Msg {
		appended, err := m.sender.Send(m.ctx, text)
		return sendDoneMsg{appended: appended, err: err}
	}
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.header.Render(headerTitle))
	b.WriteString("\n\n")

	for _, msg := range domain.VisibleMessages(m.messages) {
		b.WriteString(renderMessage(msg, m.styles))
	}

	if m.waiting {
		b.WriteString(m.spinner.View())
		b.WriteString(m.styles.hint.Render("PA Agent is thinking..."))
		b.WriteString("\n\n")
	}

	if m.sendErr != nil {
		b.WriteString(m.styles.errText.Render("send failed: " + m.sendErr.Error()))
		b.WriteString("\n\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.styles.hint.Render("enter to send, esc to quit"))
	b.WriteString("\n")

	return b.String()
}

func renderMessage(msg domain.ChatMessage, st styles) string {
	var b strings.Builder

	switch msg.Role {
	case domain.RoleUser:
		b.WriteString(st.user.Render("You"))
	case domain.RoleAssistant:
		b.WriteString(st.assistant.Render("PA Agent"))
	default:
		return ""
	}
	b.WriteString("\n")

	for _, call := range msg.ToolCalls {
		b.WriteString(st.tool.Render("using " + call.Name))
		b.WriteString("\n")
	}

	if msg.Content != "" {
		b.WriteString(st.body.Render(msg.Content))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	return b.String()
}

// Run drives the interactive chat session until the user quits.
func Run(ctx context.Context, sender Sender, history []domain.ChatMessage) error {
	p := tea.NewProgram(newModel(ctx, sender, history))
	_, err := p.Run()
	return err
}
