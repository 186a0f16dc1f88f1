// ============================================================================
// timetext - Date/time text utilities
// ============================================================================
//
// Package:     logviewer
// Description: Styles for the LogViewer TUI
// Author:      Mike Stoffels
// Created:     2025-12-07
// License:     MIT
// ============================================================================

package logviewer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/timetext/foundation/core/log"
)

// Color Palette
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorWarning   = lipgloss.Color("#F59E0B") // Amber
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray

	ColorBgPanel = lipgloss.Color("#1E293B") // Slate 800

	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500

	// Record kind colors
	ColorDebug = lipgloss.Color("#94A3B8") // Gray
	ColorInfo  = lipgloss.Color("#06B6D4") // Cyan
	ColorTest  = lipgloss.Color("#A78BFA") // Violet 400
)

// Logo/Header styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	DirStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)
)

// Record styles
var (
	LogTimestampStyle = lipgloss.NewStyle().
				Foreground(ColorTextDim)

	LogAgeStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	LogMessageStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	LogContinuationStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted)

	KindInfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo).
			Bold(true)

	KindErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	KindDebugStyle = lipgloss.NewStyle().
			Foreground(ColorDebug).
			Bold(true)

	KindTestStyle = lipgloss.NewStyle().
			Foreground(ColorTest).
			Bold(true)
)

// Panel/Box styles
var (
	LogPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1)

	FilterBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)
)

// Status bar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)

	StatusOkStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	StatusPausedStyle = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)
)

// Help styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Filter badge styles
var (
	FilterActiveStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess).
				Bold(true)

	FilterInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorTextDim)
)

var TitlePanelStyle = lipgloss.NewStyle().
	Border(lipgloss.DoubleBorder()).
	BorderForeground(ColorPrimary).
	Padding(0, 2).
	MarginBottom(1)

// Icons
const (
	IconOk     = "● "
	IconFailed = "✗ "
	IconPaused = "⏸ "
	IconFilter = "⚑ "
)

// Logo
const Logo = "timetext LogViewer"

// RenderKeyHint renders a keyboard shortcut hint
func RenderKeyHint(key, description string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(description)
}

// RenderKindBadge renders the badge of a record kind, e.g. "[ERR]"
func RenderKindBadge(kind log.Kind) string {
	badge := "[" + kind.Tag() + "]"
	switch kind {
	case log.KindError:
		return KindErrorStyle.Render(badge)
	case log.KindDebug:
		return KindDebugStyle.Render(badge)
	case log.KindTest:
		return KindTestStyle.Render(badge)
	default:
		return KindInfoStyle.Render(badge)
	}
}

// RenderFilterStatus renders a filter status indicator
func RenderFilterStatus(name string, active bool) string {
	if active {
		return FilterActiveStyle.Render(name)
	}
	return FilterInactiveStyle.Render(name)
}
