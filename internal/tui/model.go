package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"text-summarizer/internal/domain"
)

// Model is the Bubble Tea model for the interactive summarizer. It
// keeps the loaded text and re-runs the engine whenever the method or
// sentence count changes.
type Model struct {
	engine   domain.Summarizer
	text     string
	methods  []domain.Method
	method   int
	count    int
	input    textinput.Model
	viewport viewport.Model
	summary  string
	status   string
	ready    bool
}

// New creates a TUI model over the given engine and document text.
func New(engine domain.Summarizer, text string, count int, method domain.Method) Model {
	ti := textinput.New()
	ti.Prompt = "sentences> "
	ti.Placeholder = strconv.Itoa(count)
	ti.Focus()
	ti.CharLimit = 4
	vp := viewport.New(0, 0)
	m := Model{
		engine:   engine,
		text:     text,
		methods:  domain.Methods(),
		count:    count,
		input:    ti,
		viewport: vp,
	}
	for i, mt := range m.methods {
		if mt == method {
			m.method = i
		}
	}
	m.refresh()
	return m
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := summaryBoxStyle.GetFrameSize()
		_, qh := countBoxStyle.GetFrameSize()
		reserved := 2 + 1 + qh + 1 // header + method line, status, input frame, spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.summary)
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			if v := strings.TrimSpace(m.input.Value()); v != "" {
				n, err := strconv.Atoi(v)
				if err != nil || n < 1 {
					m.status = fmt.Sprintf("Invalid sentence count %q", v)
					return m, nil
				}
				m.count = n
			}
			m.refresh()
			m.viewport.SetContent(m.summary)
			return m, nil
		case "tab":
			m.method = (m.method + 1) % len(m.methods)
			m.refresh()
			m.viewport.SetContent(m.summary)
			return m, nil
		case "shift+tab":
			m.method = (m.method - 1 + len(m.methods)) % len(m.methods)
			m.refresh()
			m.viewport.SetContent(m.summary)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout and the current summary.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Text Summarizer")
	methods := make([]string, len(m.methods))
	for i, mt := range m.methods {
		if i == m.method {
			methods[i] = activeMethodStyle.Render(string(mt))
		} else {
			methods[i] = string(mt)
		}
	}
	methodLine := "method (tab to cycle): " + strings.Join(methods, "  ")
	summary := summaryBoxStyle.Render(m.viewport.View())
	input := countBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + methodLine + "\n" + summary + "\n" + input + "\n" + status
}

func (m *Model) refresh() {
	summary, err := m.engine.Summarize(m.text, m.count, m.methods[m.method])
	if err != nil {
		m.status = "Error: " + err.Error()
		return
	}
	m.summary = summary
	st := m.engine.Stats(m.text, summary)
	m.status = fmt.Sprintf("Original: %d words, %d sentences | Summary: %d words, %d sentences | Compression: %s",
		st.OriginalWords, st.OriginalSentences, st.SummaryWords, st.SummarySentences, st.CompressionRatio)
}

var (
	summaryBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	countBoxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	activeMethodStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	statusStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
