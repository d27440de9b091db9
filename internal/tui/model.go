package tui

import (
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/loadbutton/internal/anim"
	"github.com/ytget/loadbutton/internal/button"
	"github.com/ytget/loadbutton/internal/host"
	"github.com/ytget/loadbutton/internal/locale"
	"github.com/ytget/loadbutton/internal/model"
)

// Terminal sizing
const (
	ButtonHeight = 3
	buttonGutter = 4 // blank columns around label and arc
)

// frameMsg steps the animation loop
type frameMsg time.Time

// dispatchMsg carries work queued by the screen from another goroutine
type dispatchMsg struct {
	fn func()
}

// Model is the bubbletea model of the terminal host
type Model struct {
	button        *button.Button
	loop          *anim.Loop
	screen        *host.Screen
	localization  *locale.Localization
	frameInterval time.Duration
	pending       chan func()

	cursor   int
	status   string
	result   *model.Operation
	ticking  bool
	quitting bool
}

// NewModel creates the terminal screen. The button is sized in cells; labels
// left empty in opts come from the current language. A nil clock uses system
// time.
func NewModel(ops host.Operations, localization *locale.Localization, opts button.Options, frameInterval time.Duration, clock anim.Clock) *Model {
	if frameInterval <= 0 {
		frameInterval = anim.DefaultFrameInterval
	}
	if opts.InitialLabel == "" {
		opts.InitialLabel = localization.GetText(locale.KeyDownload)
	}
	if opts.LoadingLabel == "" {
		opts.LoadingLabel = localization.GetText(locale.KeyLoading)
	}
	opts = TerminalOptions(opts)

	m := &Model{
		loop:          anim.NewLoop(clock),
		localization:  localization,
		frameInterval: frameInterval,
		pending:       make(chan func(), 16),
	}
	m.button = button.New(opts, m.loop, clock, nil)
	m.button.Measure(button.ExactSize(opts.MinWidth+2*opts.Padding), button.ExactSize(ButtonHeight))

	m.screen = host.NewScreen(m.button, ops, localization, m.dispatch)
	m.screen.SetNoticeCallback(m.onNotice)
	return m
}

// TerminalOptions rescales opts to character cells: one row of text with a
// one cell padding, wide enough for either label and the arc.
func TerminalOptions(opts button.Options) button.Options {
	opts = opts.Normalize()
	opts.TextSize = 1
	opts.Padding = 1
	opts.MinHeight = ButtonHeight
	widest := lipgloss.Width(opts.InitialLabel)
	if w := lipgloss.Width(opts.LoadingLabel); w > widest {
		widest = w
	}
	// label, gap and arc glyph on both sides keep the label centered
	opts.MinWidth = widest + 4 + buttonGutter
	return opts
}

// Button exposes the underlying button for inspection
func (m *Model) Button() *button.Button {
	return m.button
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return m.waitForDispatch()
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKey(msg)
	case frameMsg:
		m.ticking = false
		m.loop.Step()
	case dispatchMsg:
		msg.fn()
		cmds = append(cmds, m.waitForDispatch())
	}

	if m.quitting {
		return m, tea.Quit
	}
	if cmd := m.scheduleFrame(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	repos := m.screen.Repositories()
	switch msg.String() {
	case "ctrl+c", "q":
		m.quit()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		m.selectCursor()
	case "down", "j":
		if m.cursor < len(repos)-1 {
			m.cursor++
		}
		m.selectCursor()
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		i := int(msg.String()[0] - '1')
		if i < len(repos) {
			m.cursor = i
			m.selectCursor()
		}
	case "enter", " ":
		m.screen.Click()
	}
}

func (m *Model) selectCursor() {
	repos := m.screen.Repositories()
	if m.cursor < 0 || m.cursor >= len(repos) {
		return
	}
	if err := m.screen.Select(repos[m.cursor].Key); err != nil {
		log.Printf("Select repository: %v", err)
	}
}

func (m *Model) quit() {
	m.screen.Close()
	m.button.Destroy()
	m.quitting = true
}

// scheduleFrame requests the next tick while the button animates
func (m *Model) scheduleFrame() tea.Cmd {
	if m.ticking || m.loop.Active() == 0 {
		return nil
	}
	m.ticking = true
	return tea.Tick(m.frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// dispatch is the screen's Dispatcher. It may be called from any goroutine.
func (m *Model) dispatch(fn func()) {
	m.pending <- fn
}

func (m *Model) waitForDispatch() tea.Cmd {
	return func() tea.Msg {
		return dispatchMsg{fn: <-m.pending}
	}
}

func (m *Model) onNotice(n host.Notice) {
	m.status = n.Text
	m.result = nil
	if n.Kind == host.NoticeResult {
		m.result = n.Operation
	}
}

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render(m.localization.GetText(locale.KeyAppTitle)))
	s.WriteString("\n")

	selected, hasSelection := m.screen.Selected()
	for i, repo := range m.screen.Repositories() {
		marker := "( )"
		style := itemStyle
		if hasSelection && repo.Key == selected.Key {
			marker = "(•)"
			style = selectedItemStyle
		}
		cursor := " "
		if i == m.cursor {
			cursor = ">"
		}
		s.WriteString(style.Render(cursor + " " + marker + " " + repo.Name))
		s.WriteString("\n")
	}

	s.WriteString(buttonMargin.Render(m.renderButton()))
	s.WriteString("\n")

	if m.status != "" {
		style := statusStyle
		if m.result != nil {
			style = successStyle
			if m.result.Status != model.OperationSucceeded {
				style = errorStyle
			}
		}
		s.WriteString(style.Render(m.status))
		s.WriteString("\n")
	}

	s.WriteString(helpStyle.Render(m.localization.GetText(locale.KeyTUIHelp)))
	s.WriteString("\n")
	return s.String()
}

func (m *Model) renderButton() string {
	v := m.button.Visual()
	c := NewCellCanvas(v.Width, v.Height)
	m.button.Render(c)
	return c.String()
}
