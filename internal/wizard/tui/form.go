package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jdk-manager/installer/internal/form"
	"github.com/jdk-manager/installer/internal/hostenv"
	"github.com/jdk-manager/installer/internal/logging"
)

// PostInstallNote is shown under the form.
const PostInstallNote = "After installation, please restart your terminal to use the `jdk` command. " +
	"On Linux/macOS the shell setup runs under sudo without prompting; " +
	"run `sudo -v` first or use `jdk-installer install` if it asks for a password."

var errNoInstaller = errors.New("no installer configured")

// installCompleteMsg carries the outcome of one install attempt.
type installCompleteMsg struct {
	message  string
	err      error
	duration time.Duration
}

// formKeyMap defines key bindings for the installer form
type formKeyMap struct {
	Install key.Binding
	Focus   key.Binding
	Quit    key.Binding
	Force   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Install, k.Focus, k.Quit, k.Force}
}

// FullHelp returns keybindings for the expanded help view
func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Install, k.Focus},
		{k.Quit, k.Force},
	}
}

func newFormKeyMap() formKeyMap {
	return formKeyMap{
		Install: key.NewBinding(
			key.WithKeys("enter", "i"),
			key.WithHelp("enter/i", "install"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "edit path"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q/esc", "quit"),
		),
		Force: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
	}
}

// FormModel is the single installer screen: a path input, the install
// control and the status or error message of the last attempt.
type FormModel struct {
	State form.State

	Input   textinput.Model
	Spinner spinner.Model
	Help    help.Model
	Keys    formKeyMap

	// InputFocused is the focus the user chose; the input is blurred while
	// an install runs regardless.
	InputFocused bool

	Width  int
	Height int

	installer form.Installer
	ctx       context.Context
	cancel    context.CancelFunc
	now       func() time.Time
}

// NewFormModel creates the form for host. A nil host leaves the path empty.
// Install attempts run under ctx and are cancelled when the form quits.
func NewFormModel(ctx context.Context, host *hostenv.Descriptor, inst form.Installer) FormModel {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)

	state := form.New(host)

	input := textinput.New()
	input.Placeholder = state.Placeholder()
	input.SetValue(state.InstallPath)
	input.CharLimit = 4096
	input.Width = 50
	input.Prompt = "› "
	input.PromptStyle = FocusedInputStyle
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	return FormModel{
		State:        state,
		Input:        input,
		Spinner:      s,
		Help:         help.New(),
		Keys:         newFormKeyMap(),
		InputFocused: true,
		installer:    inst,
		ctx:          ctx,
		cancel:       cancel,
		now:          time.Now,
	}
}

// Init starts the cursor blink.
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Input.Width = FormWidth(msg.Width) - 4
		m.Help.Width = msg.Width
		return m, nil

	case installCompleteMsg:
		return m.settle(msg)

	case spinner.TickMsg:
		if !m.State.Installing {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Clipboard pastes arrive here as the result of the input's own command.
	if m.InputFocused && !m.State.ControlDisabled() {
		var cmd tea.Cmd
		m.Input, cmd = m.Input.Update(msg)
		m.State.SetPath(m.Input.Value())
		return m, cmd
	}
	return m, nil
}

func (m FormModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.Keys.Force) {
		return m.quit()
	}

	// The path input and the install control are disabled while installing.
	if m.State.ControlDisabled() {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.Keys.Focus):
		m.InputFocused = !m.InputFocused
		if m.InputFocused {
			cmd := m.Input.Focus()
			return m, cmd
		}
		m.Input.Blur()
		return m, nil

	case msg.Type == tea.KeyEnter:
		return m.startInstall()

	case !m.InputFocused && key.Matches(msg, m.Keys.Install):
		return m.startInstall()

	case !m.InputFocused && key.Matches(msg, m.Keys.Quit):
		return m.quit()

	case m.InputFocused && msg.Type == tea.KeyEsc:
		m.InputFocused = false
		m.Input.Blur()
		return m, nil
	}

	if !m.InputFocused {
		return m, nil
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	m.State.SetPath(m.Input.Value())
	return m, cmd
}

// startInstall begins an attempt with the current path and runs the
// installer in the background.
func (m FormModel) startInstall() (tea.Model, tea.Cmd) {
	m.State.SetPath(m.Input.Value())
	dir, ok := m.State.Begin()
	if !ok {
		return m, nil
	}
	m.Input.Blur()

	logging.LogInstallAttempt(dir)
	return m, tea.Batch(m.Spinner.Tick, m.installCmd(dir))
}

func (m FormModel) installCmd(dir string) tea.Cmd {
	inst, ctx, now := m.installer, m.ctx, m.now
	return func() tea.Msg {
		start := now()
		if inst == nil {
			return installCompleteMsg{err: errNoInstaller}
		}
		message, err := inst.Install(ctx, dir)
		return installCompleteMsg{message: message, err: err, duration: now().Sub(start)}
	}
}

func (m FormModel) settle(msg installCompleteMsg) (FormModel, tea.Cmd) {
	dir := m.State.InstallPath
	if !m.State.Settle(msg.message, msg.err) {
		logging.Debug("dropping install result without an attempt in flight")
		return m, nil
	}
	logging.LogInstallResult(dir, msg.duration, msg.err)

	if m.InputFocused {
		cmd := m.Input.Focus()
		return m, cmd
	}
	return m, nil
}

func (m FormModel) quit() (tea.Model, tea.Cmd) {
	if m.cancel != nil {
		m.cancel()
	}
	return m, tea.Quit
}

// View renders the form inside the application container.
func (m FormModel) View() string {
	return RenderApplicationContainer(m.buildContent(), m.Help.View(m.Keys), m.Width, m.Height)
}

func (m FormModel) buildContent() string {
	width := FormWidth(m.Width)

	sections := []string{
		RenderTitle("JDK Manager Installer"),
		RenderSubtitle(Subtitle),
		"",
		LabelStyle.Render("Installation Directory:"),
		m.renderInput(width),
		"",
		m.renderButton(),
	}

	if msg := m.renderMessage(width); msg != "" {
		sections = append(sections, "", msg)
	}

	sections = append(sections, "", NoteStyle.Width(width).Render(PostInstallNote))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m FormModel) renderInput(width int) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Width(width - 2)

	if m.InputFocused && !m.State.ControlDisabled() {
		style = style.BorderForeground(PrimaryColor)
	} else {
		style = style.BorderForeground(SubtleColor)
	}
	return style.Render(m.Input.View())
}

func (m FormModel) renderButton() string {
	label := "[ " + m.State.ButtonLabel() + " ]"
	switch {
	case m.State.ControlDisabled():
		return DisabledButtonStyle.Render(label)
	case !m.InputFocused:
		return ButtonStyle.Render(label)
	default:
		return IdleButtonStyle.Render(label)
	}
}

// renderMessage shows either the status or the error, never both.
func (m FormModel) renderMessage(width int) string {
	switch m.State.Phase() {
	case form.PhaseInstalling:
		return m.Spinner.View() + " " + ProgressStyle.Render(m.State.Status)
	case form.PhaseSucceeded:
		return SuccessBoxStyle.Width(width - 2).Render(strings.TrimRight(m.State.Status, "\n"))
	case form.PhaseFailed:
		return ErrorBoxStyle.Width(width - 2).Render(strings.TrimRight(m.State.Error, "\n"))
	}
	return ""
}
