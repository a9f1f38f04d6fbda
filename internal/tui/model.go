package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"videorag/internal/domain"
)

// ChatPort is the TUI-facing subset of the ask pipeline.
type ChatPort interface {
	Ask(ctx context.Context, question, mode string) (domain.AnswerResult, error)
	Clear(ctx context.Context)
}

type turn struct {
	question string
	answer   string
	sources  []string
	err      error
}

// Model is the Bubble Tea model for the chat application.
type Model struct {
	service  ChatPort
	input    textinput.Model
	viewport viewport.Model
	turns    []turn
	mode     string
	title    string
	status   string
	ready    bool
}

// New creates a new chat model. title is shown in the header, typically the
// transcript file name; mode is the starting answer mode.
func New(service ChatPort, title, mode string) Model {
	ti := textinput.New()
	ti.Prompt = "? "
	ti.Placeholder = "Ask about the video and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	if mode != "detailed" {
		mode = "concise"
	}
	return Model{
		service:  service,
		input:    ti,
		viewport: vp,
		mode:     mode,
		title:    title,
		status:   "Indexed. Ask away. (tab: mode, ctrl+l: clear, ctrl+c: quit)",
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := chatBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 2 + 1 + qh + 1 // header, status, input frame, spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderConversation())
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			q := strings.TrimSpace(m.input.Value())
			if q == "" {
				break
			}
			res, err := m.service.Ask(context.Background(), q, m.mode)
			m.turns = append(m.turns, turn{question: q, answer: res.Answer, sources: res.Sources, err: err})
			if err != nil {
				m.status = "Error: " + err.Error()
			} else {
				m.status = fmt.Sprintf("Answered in %s mode", m.mode)
			}
			m.input.SetValue("")
			m.viewport.SetContent(m.renderConversation())
			m.viewport.GotoBottom()
			return m, nil
		case "tab":
			if m.mode == "concise" {
				m.mode = "detailed"
			} else {
				m.mode = "concise"
			}
			m.status = "Mode: " + m.mode
			return m, nil
		case "ctrl+l":
			m.service.Clear(context.Background())
			m.turns = nil
			m.status = "Session cleared. Re-index to ask again."
			m.viewport.SetContent(m.renderConversation())
			return m, nil
		case "up":
			m.viewport.LineUp(3)
			return m, nil
		case "down":
			m.viewport.LineDown(3)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the chat layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("videorag — " + m.title)
	modeLine := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render("mode: " + m.mode)
	chat := chatBoxStyle.Render(m.viewport.View())
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	return header + "\n" + modeLine + "\n" + chat + "\n" + input + "\n" + status
}

func (m Model) renderConversation() string {
	if len(m.turns) == 0 {
		return "No questions yet."
	}
	var b strings.Builder
	for i, t := range m.turns {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(questionStyle.Render("You: " + t.question))
		b.WriteString("\n")
		if t.err != nil {
			b.WriteString(errorStyle.Render("error: " + t.err.Error()))
			continue
		}
		b.WriteString(t.answer)
		if len(t.sources) > 0 {
			b.WriteString("\n")
			b.WriteString(sourceStyle.Render("sources: " + strings.Join(t.sources, ", ")))
		}
	}
	return b.String()
}

var (
	chatBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	questionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	sourceStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)
