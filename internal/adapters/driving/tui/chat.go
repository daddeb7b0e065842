// Package tui implements the interactive chat shell. The shell owns
// the conversation history; the answer pipeline is stateless and only
// ever sees the current question.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kaaval-labs/kaaval-cli/internal/core/domain"
	"github.com/kaaval-labs/kaaval-cli/internal/core/ports/driving"
)

// answerTimeout bounds a single question end to end, including
// translation, retrieval, reranking and generation.
const answerTimeout = 120 * time.Second

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Align(lipgloss.Center)
	chatBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	userStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	assistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	fallbackStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	hintStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// answerMsg carries a completed pipeline response back into Update.
type answerMsg struct {
	answer domain.Answer
	err    error
}

// Model is the Bubble Tea model for the chat session.
type Model struct {
	assistant driving.AssistantService
	lang      domain.Language
	input     textinput.Model
	viewport  viewport.Model
	turns     []domain.ConversationTurn
	waiting   bool
	errText   string
	ready     bool
}

// New creates a chat model in the given language.
func New(assistant driving.AssistantService, lang domain.Language) Model {
	if !lang.IsValid() {
		lang = domain.PipelineLanguage
	}
	text := UIText(lang)

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = text.Placeholder
	ti.CharLimit = 0
	ti.Focus()

	vp := viewport.New(0, 0)

	return Model{
		assistant: assistant,
		lang:      lang,
		input:     ti,
		viewport:  vp,
		turns: []domain.ConversationTurn{
			{Role: domain.RoleAssistant, Content: text.Welcome},
		},
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key, window and answer events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, ch := chatBoxStyle.GetFrameSize()
		_, ih := inputBoxStyle.GetFrameSize()
		reserved := 1 + ih + 1 + 1 // title, input frame, status, hint
		vh := msg.Height - reserved - ch
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = maxInt(20, msg.Width-chatBoxStyle.GetHorizontalFrameSize())
		m.viewport.Height = vh
		m.refreshViewport()
		return m, nil

	case answerMsg:
		m.waiting = false
		if msg.err != nil {
			m.errText = msg.err.Error()
		} else {
			m.turns = append(m.turns, domain.ConversationTurn{
				Role:    domain.RoleAssistant,
				Content: msg.answer.Text,
			})
		}
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			return m.submit(m.input.Value())
		case "ctrl+l":
			return m.toggleLanguage(), nil
		case "f1", "f2", "f3":
			buttons := UIText(m.lang).Buttons
			idx := int(msg.String()[1] - '1')
			return m.submit(buttons[idx])
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit sends a question through the pipeline asynchronously.
func (m Model) submit(query string) (tea.Model, tea.Cmd) {
	query = strings.TrimSpace(query)
	if query == "" || m.waiting {
		return m, nil
	}

	m.turns = append(m.turns, domain.ConversationTurn{
		Role:    domain.RoleUser,
		Content: query,
	})
	m.input.SetValue("")
	m.errText = ""
	m.waiting = true
	m.refreshViewport()

	assistant := m.assistant
	lang := m.lang
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), answerTimeout)
		defer cancel()
		answer, err := assistant.Answer(ctx, query, lang)
		return answerMsg{answer: answer, err: err}
	}
}

// toggleLanguage switches between English and Tamil. History stays;
// only the shell copy and future answers change language.
func (m Model) toggleLanguage() Model {
	if m.lang == domain.LanguageEnglish {
		m.lang = domain.LanguageTamil
	} else {
		m.lang = domain.LanguageEnglish
	}
	m.input.Placeholder = UIText(m.lang).Placeholder
	return m
}

// View renders the chat layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	text := UIText(m.lang)

	title := titleStyle.Width(m.viewport.Width).Render(text.Title)
	chat := chatBoxStyle.Render(m.viewport.View())
	input := inputBoxStyle.Render(m.input.View())

	status := ""
	switch {
	case m.waiting:
		status = fallbackStyle.Render(text.Thinking)
	case m.errText != "":
		status = errorStyle.Render(m.errText)
	}

	hint := hintStyle.Render(text.Hint)

	return title + "\n" + chat + "\n" + input + "\n" + status + "\n" + hint
}

// refreshViewport re-renders the conversation and scrolls to the
// latest turn.
func (m *Model) refreshViewport() {
	m.viewport.SetContent(m.renderConversation())
	m.viewport.GotoBottom()
}

func (m Model) renderConversation() string {
	wrap := lipgloss.NewStyle().Width(maxInt(20, m.viewport.Width))

	var sb strings.Builder
	for i, turn := range m.turns {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		label := assistantStyle.Render("Kaaval")
		if turn.Role == domain.RoleUser {
			label = userStyle.Render("You")
		}
		sb.WriteString(label + "\n" + wrap.Render(turn.Content))
	}
	return sb.String()
}

// Run starts the chat program and blocks until the user quits.
func Run(assistant driving.AssistantService, lang domain.Language) error {
	p := tea.NewProgram(New(assistant, lang), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
