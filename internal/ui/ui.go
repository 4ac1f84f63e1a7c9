package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aziis98/trim-margin/internal/util"
	"github.com/aziis98/trim-margin/margin"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	// Lipgloss styles
	docStyle = lipgloss.NewStyle().
			Margin(1, 2, 0, 2)
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63")).
			Bold(true)
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	markerBoxStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true).
			Padding(0, 1)
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)
	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	gutterStyles = map[margin.Status]lipgloss.Style{
		margin.Trimmed:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		margin.Unmarked: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		margin.Dropped:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
	gutterGlyphs = map[margin.Status]string{
		margin.Trimmed:  "│",
		margin.Unmarked: "!",
		margin.Dropped:  "×",
	}
	droppedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Strikethrough(true)
)

// UI handles the interactive terminal user interface
type UI struct {
	marker string
	strict bool
	text   string
}

// New creates a new UI handler. marker is the initial margin prefix and text
// the initial content of the editor.
func New(marker string, strict bool, text string) *UI {
	return &UI{
		marker: marker,
		strict: strict,
		text:   text,
	}
}

// HandleLivePreviewCommand starts the interactive live preview and returns the
// last trimmed text once the user quits.
func (u *UI) HandleLivePreviewCommand() (string, error) {
	model := u.initialModel()

	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return "", err
	}
	if m, ok := final.(previewModel); ok {
		return m.output, nil
	}
	return "", nil
}

// --- Bubble Tea Model for Live Preview ---

type focusArea int

const (
	focusEditor focusArea = iota
	focusMarker
)

type previewModel struct {
	editor   textarea.Model
	marker   textinput.Model
	viewport viewport.Model
	focus    focusArea
	strict   bool
	width    int
	height   int
	reports  []margin.LineReport
	output   string
	err      error
}

func (u *UI) initialModel() previewModel {
	ta := textarea.New()
	ta.Placeholder = "    |Type or paste text with a margin..."
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.SetWidth(50)
	ta.SetHeight(10)
	ta.SetValue(u.text)
	ta.Focus()

	ti := textinput.New()
	ti.Placeholder = string(margin.DefaultMarker)
	ti.CharLimit = 16
	ti.Width = 16
	ti.SetValue(u.marker)

	vp := viewport.New(50, 10) // Initial size, will be updated
	vp.Style = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		PaddingRight(2)

	m := previewModel{
		editor:   ta,
		marker:   ti,
		viewport: vp,
		strict:   u.strict,
		width:    100,
	}
	m.refresh()
	return m
}

func (m previewModel) Init() tea.Cmd {
	return textarea.Blink
}

// trimmer builds the trimmer for the marker field. One character is a
// marker, more is a prefix and nothing falls back to the default marker.
func (m previewModel) trimmer() margin.Trimmer {
	value := m.marker.Value()
	switch utf8.RuneCountInString(value) {
	case 0:
		return margin.Trimmer{}
	case 1:
		r, _ := utf8.DecodeRuneInString(value)
		return margin.NewTrimmer(r)
	default:
		return margin.NewPrefixTrimmer(value)
	}
}

// refresh recomputes the preview from the editor content.
func (m *previewModel) refresh() {
	t := m.trimmer()
	text := m.editor.Value()

	m.reports = t.Analyze(text)
	m.err = nil
	if m.strict {
		m.output, m.err = t.TrimStrict(text)
	} else {
		m.output = t.Trim(text)
	}
	m.viewport.SetContent(m.renderPreview())
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Editor and preview share the width side by side
		paneWidth := max(20, (msg.Width-8)/2)
		headerHeight := 4 // Title + marker box + spacing
		footerHeight := 2 // Help text
		paneHeight := max(5, m.height-headerHeight-footerHeight)
		m.editor.SetWidth(paneWidth)
		m.editor.SetHeight(paneHeight)
		m.viewport.Width = paneWidth
		m.viewport.Height = paneHeight
		m.viewport.SetContent(m.renderPreview())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.toggleFocus()
			return m, nil
		case "ctrl+t":
			m.strict = !m.strict
			m.refresh()
			return m, nil
		case "pgup":
			m.viewport.ViewUp()
			return m, nil
		case "pgdown":
			m.viewport.ViewDown()
			return m, nil
		}
	}

	var cmd tea.Cmd
	oldText, oldMarker := m.editor.Value(), m.marker.Value()
	if m.focus == focusEditor {
		m.editor, cmd = m.editor.Update(msg)
	} else {
		m.marker, cmd = m.marker.Update(msg)
	}
	cmds = append(cmds, cmd)

	if oldText != m.editor.Value() || oldMarker != m.marker.Value() {
		m.refresh()
	}

	return m, tea.Batch(cmds...)
}

func (m *previewModel) toggleFocus() {
	if m.focus == focusEditor {
		m.focus = focusMarker
		m.editor.Blur()
		m.marker.Focus()
		return
	}
	m.focus = focusEditor
	m.marker.Blur()
	m.editor.Focus()
}

func (m previewModel) View() string {
	mode := "lenient"
	if m.strict {
		mode = "strict"
	}
	content := titleStyle.Render("trim-margin live preview") + "  " +
		markerBoxStyle.Render(fmt.Sprintf("Marker: %s", m.marker.View())) +
		helpStyle.Render(" mode: "+mode) + "\n"

	// Status line
	if m.err != nil {
		content += errorStyle.Render(" "+m.err.Error()) + "\n"
	} else {
		counts := margin.Counts(m.reports)
		content += countStyle.Render(fmt.Sprintf(" %d trimmed", counts[margin.Trimmed])) +
			helpStyle.Render(fmt.Sprintf(" • %d unmarked • %d dropped", counts[margin.Unmarked], counts[margin.Dropped])) + "\n"
	}

	content += lipgloss.JoinHorizontal(lipgloss.Top, m.editor.View(), "  ", m.viewport.View())

	content += "\n\n" + helpStyle.Render("tab switch editor/marker • ctrl+t strict mode • pgup/pgdown scroll preview • ctrl+c/esc quit")

	return docStyle.Render(content)
}

// renderPreview renders every input line with a gutter showing what happened to it.
func (m previewModel) renderPreview() string {
	width := m.viewport.Width - 6
	var b strings.Builder
	for _, r := range m.reports {
		gutter := gutterStyles[r.Status].Render(gutterGlyphs[r.Status])
		var line string
		if r.Status == margin.Dropped {
			line = droppedStyle.Render(util.Truncate(util.Visible(r.Original), width))
		} else {
			line = util.Truncate(util.Visible(r.Result), width)
		}
		fmt.Fprintf(&b, "%s %s\n", gutter, line)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
