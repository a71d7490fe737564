package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/projectassist/internal/history"
	"github.com/diogo/projectassist/internal/models"
	"github.com/diogo/projectassist/internal/render"
	"github.com/diogo/projectassist/internal/session"
	"github.com/diogo/projectassist/internal/wizard"
)

// gridColumns is the number of option tiles per row
const gridColumns = 2

// Message types for the TUI
type (
	// replyDueMsg fires when a scheduled assistant reply may be delivered
	replyDueMsg time.Time

	exportDoneMsg struct {
		path string
		err  error
	}
)

// clipboardWrite is replaced in tests
var clipboardWrite = clipboard.WriteAll

// Options configures the wizard TUI
type Options struct {
	Render          render.Options
	CopyToClipboard bool
	// ExportDir is where /export writes when no path is given
	ExportDir string
	// Now stamps exported transcripts; defaults to time.Now
	Now func() time.Time
}

// DefaultOptions returns the options used when none are configured
func DefaultOptions() Options {
	return Options{
		Render:          render.DefaultOptions(),
		CopyToClipboard: true,
		ExportDir:       ".",
	}
}

// Model represents the TUI state. All session mutation happens in Update.
type Model struct {
	session *session.Session
	opts    Options
	keys    keyMap

	// UI components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	// State
	cursor   int
	ready    bool
	feedback string
	err      error

	// Dimensions
	width  int
	height int
}

// NewModel creates a wizard model driving sess
func NewModel(sess *session.Session, opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Render.Width == 0 {
		opts.Render = render.DefaultOptions()
	}

	ta := textarea.New()
	ta.Placeholder = "Type your message..."
	ta.CharLimit = 2000
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.KeyMap.InsertNewline.SetEnabled(false)

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(colorText)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(colorTextDim)
	ta.BlurredStyle = ta.FocusedStyle

	if sess.Step() == wizard.StepChat {
		ta.Focus()
	}

	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = loadingStyle

	return Model{
		session:  sess,
		opts:     opts,
		keys:     newKeyMap(),
		textarea: ta,
		spinner:  s,
	}
}

// Session returns the session driven by the model
func (m Model) Session() *session.Session {
	return m.session
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case replyDueMsg:
		if delivered := m.session.DeliverDue(time.Time(msg)); len(delivered) > 0 {
			m.updateViewport()
			m.viewport.GotoBottom()
		}
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			m.feedback = ""
		} else {
			m.err = nil
			m.feedback = "Transcript saved to " + msg.path
		}
		return m, nil

	case spinner.TickMsg:
		if m.session.Feed().Pending() > 0 {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.quit) || key.Matches(msg, m.keys.cancel) {
			return m, tea.Quit
		}
		if m.session.Step() == wizard.StepChat {
			return m.updateChat(msg)
		}
		return m.updateSelection(msg)
	}

	if m.session.Step() == wizard.StepChat {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	headerHeight := 4 // Header panel with border
	inputHeight := 6  // Input panel with border
	statusHeight := 2 // Status bar + feedback
	padding := 2

	vpHeight := m.height - headerHeight - inputHeight - statusHeight - padding
	if vpHeight < 5 {
		vpHeight = 5
	}

	contentWidth := m.contentWidth()

	if !m.ready {
		m.viewport = viewport.New(contentWidth, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = contentWidth
		m.viewport.Height = vpHeight
	}
	m.textarea.SetWidth(contentWidth - 4)
	m.updateViewport()
}

func (m Model) contentWidth() int {
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	return w
}

// continueIndex is the cursor position of the Continue control
func (m Model) continueIndex() int {
	return len(wizard.Options(m.session.Step()))
}

// updateSelection handles keys on the topics and sources steps
func (m Model) updateSelection(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := m.continueIndex()
	m.feedback = ""

	switch {
	case key.Matches(msg, m.keys.up):
		switch {
		case m.cursor == n:
			m.cursor = n - 1
		case m.cursor >= gridColumns:
			m.cursor -= gridColumns
		}

	case key.Matches(msg, m.keys.down):
		if m.cursor < n {
			if m.cursor+gridColumns < n {
				m.cursor += gridColumns
			} else {
				m.cursor = n
			}
		}

	case key.Matches(msg, m.keys.left):
		if m.cursor < n && m.cursor%gridColumns > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.right):
		if m.cursor < n && m.cursor%gridColumns < gridColumns-1 && m.cursor+1 < n {
			m.cursor++
		}

	case key.Matches(msg, m.keys.proceed):
		return m.pressContinue()

	case key.Matches(msg, m.keys.toggle):
		if m.cursor == n {
			return m.pressContinue()
		}
		opts := wizard.Options(m.session.Step())
		m.session.Toggle(opts[m.cursor].ID)
	}

	return m, nil
}

// pressContinue advances the wizard when the active selection is non-empty
func (m Model) pressContinue() (tea.Model, tea.Cmd) {
	if !m.session.Continue() {
		m.feedback = "Select at least one option to continue"
		return m, nil
	}

	m.cursor = 0
	if m.session.Step() == wizard.StepChat {
		m.textarea.Focus()
		m.updateViewport()
		m.viewport.GotoBottom()
		return m, textarea.Blink
	}
	return m, nil
}

// updateChat handles keys on the chat step
func (m Model) updateChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.copyLast):
		m.copyLastReply()
		return m, nil

	case key.Matches(msg, m.keys.send):
		return m.submit()
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// submit sends the textarea content. Blank input is ignored and left in place.
func (m Model) submit() (tea.Model, tea.Cmd) {
	input := m.textarea.Value()
	trimmed := strings.TrimSpace(input)

	switch {
	case trimmed == "exit" || trimmed == "quit" || trimmed == "/exit" || trimmed == "/quit":
		return m, tea.Quit

	case trimmed == "/export" || strings.HasPrefix(trimmed, "/export "):
		m.textarea.Reset()
		return m, m.exportTranscript(strings.TrimSpace(strings.TrimPrefix(trimmed, "/export")))
	}

	wasIdle := m.session.Feed().Pending() == 0
	if _, ok := m.session.Send(input); !ok {
		return m, nil
	}

	m.textarea.Reset()
	m.err = nil
	m.feedback = ""
	m.updateViewport()
	m.viewport.GotoBottom()

	cmds := []tea.Cmd{scheduleReply(m.session.Feed().Delay())}
	if wasIdle {
		cmds = append(cmds, m.spinner.Tick)
	}
	return m, tea.Batch(cmds...)
}

// scheduleReply wakes the model once the reply delay has passed
func scheduleReply(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return replyDueMsg(t)
	})
}

func (m *Model) copyLastReply() {
	if !m.opts.CopyToClipboard {
		m.feedback = "Clipboard copy is disabled"
		return
	}
	last, ok := m.session.Feed().LastAssistant()
	if !ok {
		m.feedback = "Nothing to copy yet"
		return
	}
	if err := clipboardWrite(last.Content); err != nil {
		m.err = fmt.Errorf("failed to copy to clipboard: %w", err)
		return
	}
	m.err = nil
	m.feedback = "Copied last reply to clipboard"
}

// exportTranscript snapshots the conversation and writes it off the event loop
func (m Model) exportTranscript(path string) tea.Cmd {
	now := m.opts.Now()
	st := m.session.State()
	tr := history.NewTranscript(st.SelectedTopics(), st.SelectedSources(), m.session.Messages(), now)

	if path == "" {
		name := fmt.Sprintf("transcript-%s.md", now.Format("20060102-150405"))
		path = filepath.Join(m.opts.ExportDir, name)
	}

	return func() tea.Msg {
		return exportDoneMsg{path: path, err: history.WriteTranscript(path, tr)}
	}
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	contentWidth := m.contentWidth()
	sections := []string{m.renderHeader(contentWidth)}

	if m.session.Step() == wizard.StepChat {
		sections = append(sections, m.renderChat(contentWidth)...)
	} else {
		sections = append(sections, m.renderTiles(contentWidth), m.renderContinue(contentWidth))
	}

	sections = append(sections, m.renderStatusBar(contentWidth))

	if m.feedback != "" {
		sections = append(sections, feedbackStyle.Render(m.feedback))
	}
	if m.err != nil {
		sections = append(sections, FormatError(m.err))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader(width int) string {
	var title, subtitle string
	switch m.session.Step() {
	case wizard.StepTopics:
		title, subtitle = "Project Documentation Assistant", "Select all relevant document types"
	case wizard.StepSources:
		title, subtitle = "Select Information Sources", "Choose where to search for information"
	default:
		title, subtitle = "Project Assistant", fmt.Sprintf("%d topics • %d sources",
			len(m.session.State().SelectedTopics()), len(m.session.State().SelectedSources()))
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("⛑ "+title),
		subtitleStyle.Render(subtitle),
	)
	return headerStyle.Width(width).Render(content)
}

// renderTiles lays the active catalog out in a grid
func (m Model) renderTiles(width int) string {
	step := m.session.Step()
	opts := wizard.Options(step)
	tileWidth := width/gridColumns - 2

	var rows []string
	for start := 0; start < len(opts); start += gridColumns {
		var row []string
		for i := start; i < start+gridColumns && i < len(opts); i++ {
			row = append(row, m.renderTile(opts[i], i, step, tileWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderTile(opt models.Option, index int, step wizard.Step, width int) string {
	selected := m.session.State().IsSelected(opt.ID, step)

	style := tileStyle
	icon := tileIconStyle.Render(opt.Icon)
	if selected {
		style = tileSelectedStyle
		icon = tileIconOnStyle.Render(opt.Icon)
	}
	if index == m.cursor {
		style = tileCursorStyle
	}

	check := "[ ]"
	if selected {
		check = "[x]"
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		icon+tileTitleStyle.Render(opt.Title)+" "+hintStyle.Render(check),
		tileDescStyle.Render(opt.Description),
	)
	return style.Width(width).Render(content)
}

func (m Model) renderContinue(width int) string {
	label := "Continue"
	switch {
	case !m.session.CanContinue():
		return continueDisabledStyle.Width(width).Render(label)
	case m.cursor == m.continueIndex():
		return continueFocusedStyle.Width(width).Render("▸ " + label)
	default:
		return continueStyle.Width(width).Render(label)
	}
}

func (m Model) renderChat(width int) []string {
	messagesPanel := messagesAreaStyle.
		Width(width).
		Height(m.viewport.Height).
		Render(m.viewport.View())

	var input string
	if m.session.Feed().Pending() > 0 {
		input = lipgloss.JoinVertical(
			lipgloss.Left,
			m.spinner.View()+loadingStyle.Render(" Assistant is typing"),
			inputLabelStyle.Render("You"),
			m.textarea.View(),
		)
	} else {
		input = lipgloss.JoinVertical(
			lipgloss.Left,
			inputLabelStyle.Render("You"),
			m.textarea.View(),
		)
	}

	return []string{messagesPanel, inputPanelStyle.Width(width).Render(input)}
}

// renderStatusBar renders the bottom status bar with shortcuts
func (m Model) renderStatusBar(width int) string {
	var bindings []key.Binding
	if m.session.Step() == wizard.StepChat {
		bindings = []key.Binding{m.keys.send, m.keys.copyLast, m.keys.cancel}
	} else {
		bindings = []key.Binding{m.keys.up, m.keys.toggle, m.keys.proceed, m.keys.cancel}
	}

	var items []string
	for _, b := range bindings {
		h := b.Help()
		items = append(items, statusKeyStyle.Render(h.Key)+statusDescStyle.Render(" "+h.Desc))
	}

	bar := strings.Join(items, "  │  ")
	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(bar)
}

// updateViewport refreshes the viewport content with styled messages
func (m *Model) updateViewport() {
	if !m.ready {
		return
	}

	var content strings.Builder
	bubbleWidth := m.viewport.Width - 6
	if bubbleWidth < 10 {
		bubbleWidth = 10
	}

	for i, msg := range m.session.Messages() {
		if i > 0 {
			content.WriteString("\n")
		}

		if msg.IsUser() {
			label := userLabelStyle.Render("⬤ You")
			bubble := userBubbleStyle.Width(bubbleWidth).Render(msg.Content)
			content.WriteString(label + "\n" + bubble)
		} else {
			label := assistantLabelStyle.Render("⛑ Assistant")
			rendered := render.MarkdownOrPlain(msg.Content, m.opts.Render.WithWidth(bubbleWidth-4))
			bubble := assistantBubbleStyle.Width(bubbleWidth).Render(rendered)
			content.WriteString(label + "\n" + bubble)
		}
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

// RunWizard starts the wizard TUI on sess
func RunWizard(sess *session.Session, opts Options) error {
	m := NewModel(sess, opts)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
