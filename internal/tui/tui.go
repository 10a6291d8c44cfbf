// Package tui provides the Bubble Tea terminal interface of the spiro command.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/spirotunes/internal/canvas"
	"github.com/handiism/spirotunes/internal/config"
	"github.com/handiism/spirotunes/internal/errmsg"
	"github.com/handiism/spirotunes/internal/logging"
	"github.com/handiism/spirotunes/internal/spiro"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))
)

// chromeRows is the number of terminal rows not used by the drawing:
// title, status line and help line.
const chromeRows = 3

// Mode selects what the screen draws.
type Mode int

const (
	// ModeAnimate draws several random curves step by step, forever.
	ModeAnimate Mode = iota

	// ModeSingle draws one fixed curve all at once.
	ModeSingle
)

// Options configures a new Model.
type Options struct {
	Settings *config.Settings

	// Params selects ModeSingle when set.
	Params *spiro.Params

	// Rand feeds the random curve generator. Nil means a random seed.
	Rand spiro.Rand

	// Now returns the snapshot timestamp. Nil means time.Now.
	Now func() time.Time
}

// Message types
type (
	// TickMsg advances the animation by one step.
	TickMsg struct{}
)

// Model is the Bubble Tea model for the TUI.
type Model struct {
	mode     Mode
	animator *spiro.Animator
	single   *spiro.Curve
	cursors  bool

	viewport spiro.Viewport
	braille  *canvas.Braille
	snapshot *canvas.Snapshot
	interval time.Duration
	now      func() time.Time

	keys keyMap
	help help.Model

	status    string
	statusErr bool
	ticks     int

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(opts Options) Model {
	settings := opts.Settings
	if settings == nil {
		settings = config.DefaultSettings()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	vp := settings.Viewport()
	m := Model{
		viewport: vp,
		braille:  canvas.NewBraille(80, 24-chromeRows),
		snapshot: canvas.NewSnapshot(settings.Spiro.SnapshotDir, vp, settings.Spiro.Supersample),
		interval: settings.TickInterval(),
		now:      now,
		help:     help.New(),
		cursors:  true,
	}

	if opts.Params != nil {
		m.mode = ModeSingle
		m.single = spiro.NewCurve(*opts.Params, settings.Spiro.StepDegrees)
		m.single.Draw()
	} else {
		m.mode = ModeAnimate
		gen := spiro.NewGenerator(opts.Rand, vp)
		m.animator = spiro.NewAnimator(gen, settings.Spiro.Curves, settings.Spiro.StepDegrees)
	}
	m.keys = newKeyMap(m.mode == ModeAnimate)

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.mode == ModeAnimate {
		return m.tick()
	}
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.braille = canvas.NewBraille(msg.Width, msg.Height-chromeRows)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Save):
			m.saveSnapshot()

		case key.Matches(msg, m.keys.Cursors):
			if m.animator != nil {
				m.animator.ToggleCursors()
			} else {
				m.cursors = !m.cursors
			}

		case key.Matches(msg, m.keys.Restart):
			m.animator.Restart()
			m.setStatus("restarted", false)
		}

	case TickMsg:
		if m.animator == nil {
			return m, nil
		}
		before := m.animator.Cycles()
		m.animator.Tick()
		m.ticks++
		if m.animator.Cycles() != before {
			logging.Debug("all curves closed after %d ticks, restarting", m.ticks)
		}
		return m, m.tick()
	}

	return m, nil
}

// tick schedules the next animation step.
func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// Strokes returns the current drawing.
func (m Model) Strokes() []canvas.Stroke {
	if m.animator != nil {
		return canvas.StrokesFromCurves(m.animator.Curves(), m.animator.CursorsVisible())
	}
	return canvas.StrokesFromCurves([]*spiro.Curve{m.single}, m.cursors)
}

// saveSnapshot writes the .eps/.png pair. Cursors are never part of a
// snapshot.
func (m *Model) saveSnapshot() {
	strokes := m.Strokes()
	for i := range strokes {
		strokes[i].Cursor = false
	}

	res, err := m.snapshot.Save(context.Background(), m.now(), strokes)
	if err != nil {
		logging.Error("%s", errmsg.Format(errmsg.OpSnapshotSave, err))
		m.setStatus(errmsg.Format(errmsg.OpSnapshotSave, err), true)
		return
	}
	logging.Info("saved drawing to %s and %s", res.EPSPath, res.PNGPath)
	m.setStatus(fmt.Sprintf("saved %s / %s", res.EPSPath, res.PNGPath), false)
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("Spirographs!"))
	b.WriteString("\n")

	b.WriteString(m.braille.Render(m.Strokes(), m.viewport))
	b.WriteString("\n")

	switch {
	case m.status == "":
		b.WriteString(dimStyle.Render(m.describe()))
	case m.statusErr:
		b.WriteString(errorStyle.Render(m.status))
	default:
		b.WriteString(successStyle.Render(m.status))
	}
	b.WriteString("\n")

	// Footer
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// describe summarizes the curves being drawn.
func (m Model) describe() string {
	if m.single != nil {
		p := m.single.Params()
		return fmt.Sprintf("R=%d r=%d l=%.2f, %d rotations", p.R, p.SmallR, p.L, p.Rotations())
	}
	curves := m.animator.Curves()
	done := 0
	for _, c := range curves {
		if c.Complete() {
			done++
		}
	}
	return fmt.Sprintf("%d/%d curves complete, cycle %d", done, len(curves), m.animator.Cycles()+1)
}

// Run starts the TUI application.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
