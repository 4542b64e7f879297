// Package tui provides a Bubble Tea terminal user interface for
// putemg-downloader.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/biolab-put/putemg-downloader/internal/config"
	"github.com/biolab-put/putemg-downloader/internal/download"
	"github.com/biolab-put/putemg-downloader/internal/putemg"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	recordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateResolving
	StateFetching
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   download.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	logs      []LogEntry
	records   []string
	err       error

	// Fetch context
	ctx    context.Context
	cancel context.CancelFunc

	// Fetch manager reference
	manager *download.Manager

	// Fetch progress
	totalFiles   int32
	storedFiles  int32
	skippedFiles int32
	failedFiles  int32
	received     int64

	// Options
	overwrite bool
	verbose   bool

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel() Model {
	ti := textinput.New()
	ti.Placeholder = "emg_gestures data-csv,video-1080p 03 04"
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  config.DefaultSettings(),
		logs:      make([]LogEntry, 0),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ProgressMsg is sent when fetch progress updates.
	ProgressMsg struct {
		Event download.ProgressEvent
	}

	// ResolveDoneMsg is sent when filter resolution completes.
	ResolveDoneMsg struct {
		Records []string
		Files   int
		Manager *download.Manager
		Err     error
	}

	// FetchDoneMsg is sent when all fetches complete.
	FetchDoneMsg struct {
		Stored   int32
		Skipped  int32
		Failed   int32
		Total    int32
		Received int64
		Err      error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateFetching || m.state == StateResolving {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "enter":
			if m.state == StateInput && m.textInput.Value() != "" {
				m.state = StateResolving
				return m, tea.Batch(m.resolveQuery(), m.spinner.Tick)
			}

		case "o":
			if m.state == StateInput {
				m.overwrite = !m.overwrite
			}

		case "v":
			if m.state == StateInput {
				m.verbose = !m.verbose
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for a new fetch
				m.state = StateInput
				m.logs = nil
				m.records = nil
				m.err = nil
				m.storedFiles = 0
				m.skippedFiles = 0
				m.failedFiles = 0
				m.totalFiles = 0
				m.received = 0
				m.manager = nil
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.textInput.SetValue("")
				m.textInput.Focus()
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		// Filter verbose messages if not in verbose mode
		if msg.Event.Level == download.LevelVerbose && !m.verbose {
			return m, nil
		}
		m.logs = append(m.logs, LogEntry{
			Message: msg.Event.Message,
			Level:   msg.Event.Level,
		})
		// Keep only last 10 logs
		if len(m.logs) > 10 {
			m.logs = m.logs[len(m.logs)-10:]
		}

	case ResolveDoneMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.records = msg.Records
			m.manager = msg.Manager
			m.totalFiles = int32(msg.Files)
			m.state = StateFetching
			// Start the actual fetch and tick for progress updates
			cmds = append(cmds, m.startFetch(), m.tickProgress())
		}

	case FetchDoneMsg:
		m.storedFiles = msg.Stored
		m.skippedFiles = msg.Skipped
		m.failedFiles = msg.Failed
		m.totalFiles = msg.Total
		m.received = msg.Received
		if msg.Err != nil && m.ctx.Err() == nil {
			m.state = StateError
			m.err = msg.Err
		} else if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else {
			m.state = StateComplete
		}

	case TickMsg:
		// Update progress from manager
		if m.manager != nil && m.state == StateFetching {
			stored, skipped, failed, total, received := m.manager.GetProgress()
			m.storedFiles = stored
			m.skippedFiles = skipped
			m.failedFiles = failed
			m.totalFiles = total
			m.received = received

			// Calculate percentage and animate progress bar
			var percent float64
			if total > 0 {
				percent = float64(stored+skipped+failed) / float64(total)
			}
			progressCmd := m.progress.SetPercent(percent)
			cmds = append(cmds, progressCmd, m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update text input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("putEMG Downloader"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Fetch records from the putEMG dataset"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateResolving:
		b.WriteString(m.viewResolving())
	case StateFetching:
		b.WriteString(m.viewFetching())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Enter filters: <experiment_types> <media_types> [id...]"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	// Options
	overwriteCheck := "[ ]"
	if m.overwrite {
		overwriteCheck = "[x]"
	}
	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[x]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Overwrite existing files (o)\n", overwriteCheck))
	b.WriteString(fmt.Sprintf("  %s Verbose/debug output (v)\n", verboseCheck))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Download directory: %s", m.settings.DownloadDir)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewResolving() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Resolving records..."))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewFetching() string {
	var b strings.Builder

	// Records matched
	if len(m.records) > 0 {
		b.WriteString(successStyle.Render(fmt.Sprintf("Matched %d record(s):", len(m.records))))
		b.WriteString("\n")
		shown := m.records
		if len(shown) > 5 {
			shown = shown[:5]
		}
		for _, rec := range shown {
			b.WriteString(recordStyle.Render(fmt.Sprintf("  %s", rec)))
			b.WriteString("\n")
		}
		if len(m.records) > len(shown) {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  ... and %d more", len(m.records)-len(shown))))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Progress bar
	done := m.storedFiles + m.skippedFiles + m.failedFiles
	var percent float64
	if m.totalFiles > 0 {
		percent = float64(done) / float64(m.totalFiles)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")

	b.WriteString(infoStyle.Render(fmt.Sprintf(
		"Files: %d/%d | Stored: %d | Skipped: %d | Failed: %d | %.2f MB",
		done,
		m.totalFiles,
		m.storedFiles,
		m.skippedFiles,
		m.failedFiles,
		float64(m.received)/1024/1024,
	)))
	b.WriteString("\n\n")

	// Logs
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	box := boxStyle.Render(fmt.Sprintf(
		"Fetch Complete\n\n"+
			"Records: %d\n"+
			"Stored:  %d\n"+
			"Skipped: %d\n"+
			"Failed:  %d\n"+
			"Size:    %.2f MB",
		len(m.records),
		m.storedFiles,
		m.skippedFiles,
		m.failedFiles,
		float64(m.received)/1024/1024,
	))
	b.WriteString(box)

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case download.LevelError:
			style = errorStyle
			prefix = "✗"
		case download.LevelWarning:
			style = warningStyle
			prefix = "!"
		case download.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case download.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: start • o: overwrite • v: verbose • esc: quit"
	case StateResolving, StateFetching:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: new fetch • q: quit"
	}
	return ""
}

// parseInput splits the input line into the query fields: experiment
// types, media types, then optional participant IDs.
func parseInput(input string) putemg.Query {
	fields := strings.Fields(input)

	q := putemg.Query{}
	if len(fields) > 0 {
		q.ExperimentTypes = splitList(fields[0])
	}
	if len(fields) > 1 {
		q.MediaTypes = splitList(fields[1])
	}
	if len(fields) > 2 {
		q.IDs = fields[2:]
	}
	return q
}

func splitList(s string) []string {
	var values []string
	for _, v := range strings.Split(s, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			values = append(values, v)
		}
	}
	return values
}

// resolveQuery fetches the manifest, resolves the filters and creates
// the manager.
func (m *Model) resolveQuery() tea.Cmd {
	return func() tea.Msg {
		query := parseInput(m.textInput.Value())

		settings := config.DefaultSettings()
		if m.overwrite {
			settings.OverwriteExisting = true
		}

		// Counters are polled via TickMsg; events feed the log pane.
		manager := download.NewManager(settings, func(event download.ProgressEvent) {
			if program != nil {
				program.Send(ProgressMsg{Event: event})
			}
		})

		if err := manager.Initialize(m.ctx, query); err != nil {
			return ResolveDoneMsg{Err: err}
		}

		var names []string
		for _, rec := range manager.Records() {
			names = append(names, rec.Name())
		}

		return ResolveDoneMsg{
			Records: names,
			Files:   len(manager.Artifacts()),
			Manager: manager,
			Err:     nil,
		}
	}
}

// startFetch starts the actual fetch in background.
func (m *Model) startFetch() tea.Cmd {
	return func() tea.Msg {
		if m.manager == nil {
			return FetchDoneMsg{Err: fmt.Errorf("no manager")}
		}

		err := m.manager.StartFetches(m.ctx)
		stored, skipped, failed, total, received := m.manager.GetProgress()

		return FetchDoneMsg{
			Stored:   stored,
			Skipped:  skipped,
			Failed:   failed,
			Total:    total,
			Received: received,
			Err:      err,
		}
	}
}

var program *tea.Program

// Run starts the TUI application.
func Run() error {
	program = tea.NewProgram(NewModel(), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
