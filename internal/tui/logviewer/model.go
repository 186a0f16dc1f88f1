// ============================================================================
// timetext - Date/time text utilities
// ============================================================================
//
// Package:     logviewer
// Description: Main Bubbletea model for the timetext LogViewer
// Author:      Mike Stoffels
// Created:     2025-12-07
// License:     MIT
// ============================================================================

package logviewer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/timetext/foundation/core/log"
	"github.com/msto63/timetext/foundation/utils/timex"
)

// Version is set during build
var Version = "0.2.0"

// timestampPattern is the short form shown in front of every record
const timestampPattern = "dd MMM HH:mm:ss"

// KindFilter tracks which record kinds are shown
type KindFilter struct {
	Info  bool
	Error bool
	Debug bool
	Test  bool
}

// AllKinds returns a filter that shows every kind
func AllKinds() KindFilter {
	return KindFilter{Info: true, Error: true, Debug: true, Test: true}
}

// Allows reports whether records of kind pass the filter
func (f KindFilter) Allows(kind log.Kind) bool {
	switch kind {
	case log.KindError:
		return f.Error
	case log.KindDebug:
		return f.Debug
	case log.KindTest:
		return f.Test
	default:
		return f.Info
	}
}

// Model is the main Bubbletea model for LogViewer
type Model struct {
	// State
	width      int
	height     int
	ready      bool
	loading    bool
	paused     bool
	autoScroll bool
	err        error

	// Components
	viewport viewport.Model
	spinner  spinner.Model

	// Record state
	allRecords      []log.Record
	filteredRecords []log.Record
	kindFilter      KindFilter
	totalRecords    int
	lastLoad        timex.Instant

	// Configuration
	dir        string
	refresh    time.Duration
	maxRecords int
	cal        *timex.Calendar
}

// Config holds LogViewer configuration
type Config struct {
	Dir        string
	Refresh    time.Duration
	MaxRecords int
	Calendar   *timex.Calendar
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Dir:        "log",
		Refresh:    2 * time.Second,
		MaxRecords: 1000,
		Calendar:   timex.Default(),
	}
}

// New creates a new LogViewer model. Zero values in cfg are replaced by
// DefaultConfig.
func New(cfg Config) Model {
	def := DefaultConfig()
	if cfg.Dir == "" {
		cfg.Dir = def.Dir
	}
	if cfg.Refresh <= 0 {
		cfg.Refresh = def.Refresh
	}
	if cfg.MaxRecords <= 0 {
		cfg.MaxRecords = def.MaxRecords
	}
	if cfg.Calendar == nil {
		cfg.Calendar = def.Calendar
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	return Model{
		spinner:    sp,
		loading:    true,
		autoScroll: true,
		kindFilter: AllKinds(),
		dir:        cfg.Dir,
		refresh:    cfg.Refresh,
		maxRecords: cfg.MaxRecords,
		cal:        cfg.Calendar,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadRecords,
		m.tick(),
	)
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func refresh() tea.Msg {
	return refreshMsg{}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4 // Title + filter bar
		footerHeight := 4 // Status bar + help
		viewportHeight := msg.Height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.updateViewportContent()

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case recordsLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.allRecords = msg.records
			m.totalRecords = msg.total
			m.lastLoad = m.cal.Now()
			m.applyFilters()
			m.updateViewportContent()
			if m.autoScroll {
				m.viewport.GotoBottom()
			}
		}

	case tickMsg:
		if !m.paused {
			cmds = append(cmds, m.loadRecords)
		}
		cmds = append(cmds, m.tick())

	case refreshMsg:
		m.loading = true
		cmds = append(cmds, m.loadRecords, m.spinner.Tick)
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			return m, tea.Quit

		// Kind filters - number keys
		case "1":
			m.kindFilter.Info = !m.kindFilter.Info
		case "2":
			m.kindFilter.Error = !m.kindFilter.Error
		case "3":
			m.kindFilter.Debug = !m.kindFilter.Debug
		case "4":
			m.kindFilter.Test = !m.kindFilter.Test
		case "0":
			m.kindFilter = AllKinds()

		case "p":
			m.paused = !m.paused
			return m, nil

		case "r":
			return m, refresh

		case "a":
			m.autoScroll = !m.autoScroll
			if m.autoScroll {
				m.viewport.GotoBottom()
			}
			return m, nil

		case "g":
			m.viewport.GotoTop()
			m.autoScroll = false
			return m, nil

		case "G":
			m.viewport.GotoBottom()
			m.autoScroll = true
			return m, nil

		default:
			return m, nil
		}
		m.applyFilters()
		m.updateViewportContent()
		return m, nil

	case tea.KeySpace:
		m.paused = !m.paused
		return m, nil

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		m.autoScroll = false
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil

	case tea.KeyUp:
		m.viewport.LineUp(1)
		m.autoScroll = false
		return m, nil

	case tea.KeyDown:
		m.viewport.LineDown(1)
		return m, nil
	}

	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Lade LogViewer..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderFilterBar())
	b.WriteString("\n")
	b.WriteString(m.renderLogArea())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())
	return b.String()
}

// renderHeader renders the header with logo, directory and pause state
func (m Model) renderHeader() string {
	logo := LogoStyle.Render(Logo)
	dir := DirStyle.Render(m.dir)

	pauseStatus := ""
	if m.paused {
		pauseStatus = "  " + StatusPausedStyle.Render(IconPaused+"PAUSIERT")
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		logo,
		strings.Repeat(" ", 3),
		dir,
		pauseStatus,
	)
	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

// renderFilterBar renders the kind filter bar
func (m Model) renderFilterBar() string {
	filters := []string{
		fmt.Sprintf("1:%s", RenderFilterStatus(log.KindInfo.Tag(), m.kindFilter.Info)),
		fmt.Sprintf("2:%s", RenderFilterStatus(log.KindError.Tag(), m.kindFilter.Error)),
		fmt.Sprintf("3:%s", RenderFilterStatus(log.KindDebug.Tag(), m.kindFilter.Debug)),
		fmt.Sprintf("4:%s", RenderFilterStatus(log.KindTest.Tag(), m.kindFilter.Test)),
	}

	filterStr := IconFilter + strings.Join(filters, "  ")
	countStr := HelpDescStyle.Render(fmt.Sprintf("[%d/%d Eintraege]", len(m.filteredRecords), len(m.allRecords)))

	scrollStr := ""
	if m.autoScroll {
		scrollStr = "  " + FilterActiveStyle.Render("[Auto-Scroll]")
	}

	return FilterBarStyle.Width(m.width - 2).Render(filterStr + "  " + countStr + scrollStr)
}

// renderLogArea renders the main record viewport
func (m Model) renderLogArea() string {
	style := LogPanelStyle.Width(m.width - 2).Height(m.viewport.Height + 2)
	return style.Render(m.viewport.View())
}

// renderStatusBar renders the status bar
func (m Model) renderStatusBar() string {
	leftPart := HelpDescStyle.Render(fmt.Sprintf("Eintraege: %d", m.totalRecords))
	centerPart := HelpDescStyle.Render("v" + Version)

	var rightPart string
	switch {
	case m.loading:
		rightPart = m.spinner.View() + " Lade..."
	case m.err != nil:
		rightPart = StatusErrorStyle.Render(IconFailed + m.err.Error())
	case m.lastLoad != 0:
		rightPart = StatusOkStyle.Render(IconOk + "Stand " + m.cal.FormatInstant(m.lastLoad, "HH:mm:ss"))
	}

	leftLen := lipgloss.Width(leftPart)
	centerLen := lipgloss.Width(centerPart)
	rightLen := lipgloss.Width(rightPart)
	availableSpace := m.width - leftLen - centerLen - rightLen - 4
	if availableSpace < 2 {
		availableSpace = 2
	}
	leftPadding := availableSpace / 2
	rightPadding := availableSpace - leftPadding

	content := leftPart + strings.Repeat(" ", leftPadding) + centerPart + strings.Repeat(" ", rightPadding) + rightPart
	return StatusBarStyle.Width(m.width - 2).Render(content)
}

// renderHelpBar renders the help shortcuts bar
func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("1-4", "Art"),
		RenderKeyHint("0", "Alle"),
		RenderKeyHint("p", "Pause"),
		RenderKeyHint("r", "Refresh"),
		RenderKeyHint("a", "AutoScroll"),
		RenderKeyHint("g/G", "Top/Bottom"),
		RenderKeyHint("q", "Beenden"),
	}
	return HelpStyle.Render(strings.Join(items, "  "))
}

// updateViewportContent renders the filtered records into the viewport
func (m *Model) updateViewportContent() {
	var content strings.Builder
	now := m.cal.Now()

	for _, r := range m.filteredRecords {
		lines := strings.Split(r.Message, "\n")

		// Format: TIME [KIND] (age) first line
		timeStr := LogTimestampStyle.Render(m.cal.FormatInstant(r.Time, timestampPattern))
		ageStr := LogAgeStyle.Render("(" + timex.RelativeTime(now, r.Time) + ")")
		fmt.Fprintf(&content, "%s %s %s %s\n", timeStr, RenderKindBadge(r.Kind), ageStr, LogMessageStyle.Render(lines[0]))

		for _, line := range lines[1:] {
			content.WriteString("    ")
			content.WriteString(LogContinuationStyle.Render(line))
			content.WriteString("\n")
		}
	}

	m.viewport.SetContent(content.String())
}

// applyFilters filters records based on the kind filter
func (m *Model) applyFilters() {
	m.filteredRecords = make([]log.Record, 0, len(m.allRecords))
	for _, r := range m.allRecords {
		if m.kindFilter.Allows(r.Kind) {
			m.filteredRecords = append(m.filteredRecords, r)
		}
	}
}

// loadRecords reads the log directory and keeps the newest maxRecords
func (m Model) loadRecords() tea.Msg {
	records, err := log.ReadRecords(m.dir, m.cal)
	if err != nil {
		return recordsLoadedMsg{err: err}
	}
	total := len(records)
	if total > m.maxRecords {
		records = records[total-m.maxRecords:]
	}
	return recordsLoadedMsg{records: records, total: total}
}

// Run starts the LogViewer TUI
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
