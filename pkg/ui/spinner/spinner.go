package spinner

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cloudposse/fngen/pkg/ui/theme"
)

// Spinner shows an animated progress line until Stop is called.
// On a non-TTY writer it prints nothing.
type Spinner struct {
	progressMsg string
	out         io.Writer
	tty         bool

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// New creates a spinner writing to out. tty reports whether out is a terminal.
func New(progressMsg string, out io.Writer, tty bool) *Spinner {
	return &Spinner{progressMsg: progressMsg, out: out, tty: tty}
}

// Start begins animating. Calling Start on a running spinner is a no-op.
func (s *Spinner) Start() {
	if !s.tty {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.program != nil {
		return
	}

	// No input: the terminal stays in cooked mode so Ctrl+C still raises SIGINT.
	s.program = tea.NewProgram(newManualSpinnerModel(s.progressMsg), tea.WithOutput(s.out), tea.WithInput(nil))
	s.done = make(chan struct{})

	program, done := s.program, s.done
	go func() {
		defer close(done)
		_, _ = program.Run()
	}()
}

// Stop ends the animation and replaces the line with message, or clears it
// when message is empty. It blocks until the line has been redrawn.
func (s *Spinner) Stop(message string, success bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.program == nil {
		return
	}

	s.program.Send(manualStopMsg{message: message, success: success})
	<-s.done
	s.program = nil
}

type manualStopMsg struct {
	message string
	success bool
}

// manualSpinnerModel runs until a manualStopMsg arrives.
type manualSpinnerModel struct {
	spinner     spinner.Model
	progressMsg string
	finalMsg    string
	done        bool
	success     bool
}

func newManualSpinnerModel(progressMsg string) manualSpinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorCyan))

	return manualSpinnerModel{
		spinner:     s,
		progressMsg: progressMsg,
	}
}

func (m manualSpinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m manualSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case manualStopMsg:
		m.done = true
		m.finalMsg = msg.message
		m.success = msg.success
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m manualSpinnerModel) View() string {
	if !m.done {
		return fmt.Sprintf("%s %s", m.spinner.View(), m.progressMsg)
	}
	if m.finalMsg == "" {
		return ""
	}

	icon := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorGreen)).Render("✓")
	if !m.success {
		icon = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorRed)).Render("✗")
	}
	return fmt.Sprintf("%s %s\n", icon, m.finalMsg)
}
