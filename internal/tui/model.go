// Package tui implements the interactive dashboard: live per-worker progress
// bars, system resource usage, and a final summary panel.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/primecalc/internal/config"
	apperrors "github.com/agbru/primecalc/internal/errors"
	"github.com/agbru/primecalc/internal/format"
	"github.com/agbru/primecalc/internal/metrics"
	"github.com/agbru/primecalc/internal/orchestration"
	appprogress "github.com/agbru/primecalc/internal/progress"
	"github.com/agbru/primecalc/internal/sysmon"
)

// refreshInterval drives the elapsed clock and resource sampling.
const refreshInterval = 250 * time.Millisecond

type (
	tickMsg     time.Time
	progressMsg appprogress.Update

	doneMsg struct {
		summary orchestration.Summary
		timings []orchestration.ChunkTiming
	}

	failMsg struct{ err error }
)

type keyMap struct {
	Quit key.Binding
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding { return []key.Binding{k.Quit} }

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Quit}} }

var defaultKeys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Model is the root bubbletea model for the dashboard.
type Model struct {
	cfg       config.AppConfig
	chunks    []orchestration.Chunk
	fractions []float64
	bar       progress.Model
	collector *metrics.MemoryCollector

	startTime time.Time
	elapsed   time.Duration
	sys       sysmon.Stats
	mem       metrics.MemorySnapshot

	summary *orchestration.Summary
	err     error

	keys   keyMap
	help   help.Model
	width  int
	height int

	exitCode int
}

func newModel(cfg config.AppConfig) Model {
	chunks := orchestration.Partition(cfg.Start, cfg.End, cfg.Workers)
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	return Model{
		cfg:       cfg,
		chunks:    chunks,
		fractions: make([]float64, len(chunks)),
		bar:       bar,
		collector: metrics.NewMemoryCollector(),
		startTime: time.Now(),
		keys:      defaultKeys,
		help:      help.New(),
		width:     80,
		exitCode:  apperrors.ExitErrorGeneric,
	}
}

// Init starts the refresh ticker.
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles dashboard events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			if m.summary == nil && m.err == nil {
				m.exitCode = apperrors.ExitErrorCanceled
			}
			return m, tea.Quit
		}
		return m, nil

	case tickMsg:
		if m.summary == nil && m.err == nil {
			m.elapsed = time.Since(m.startTime)
		}
		m.sys = sysmon.Sample()
		m.mem = m.collector.Snapshot()
		return m, tick()

	case progressMsg:
		if msg.WorkerIndex >= 0 && msg.WorkerIndex < len(m.fractions) {
			m.fractions[msg.WorkerIndex] = msg.Value
		}
		return m, nil

	case doneMsg:
		s := msg.summary
		m.summary = &s
		m.elapsed = s.Elapsed
		for i := range m.fractions {
			m.fractions[i] = 1.0
		}
		m.exitCode = apperrors.ExitSuccess
		return m, nil

	case failMsg:
		m.err = msg.err
		m.exitCode = apperrors.ExitCodeForError(msg.err)
		return m, tea.Quit
	}
	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewWorkers())
	b.WriteString("\n")
	if m.summary != nil {
		b.WriteString(m.viewSummary())
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(statusErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}
	b.WriteString(footerStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) viewHeader() string {
	title := titleStyle.Render("primecalc")
	info := headerInfoStyle.Render(fmt.Sprintf(
		"range [%s, %s] | %d workers | elapsed %s | %s | heap %s",
		format.GroupInt(m.cfg.Start), format.GroupInt(m.cfg.End),
		len(m.chunks),
		m.elapsed.Round(100*time.Millisecond),
		m.sys,
		metrics.FormatBytes(m.mem.HeapAllocBytes),
	))
	return panelStyle.Width(m.panelWidth()).Render(title + "  " + info)
}

func (m Model) viewWorkers() string {
	barWidth := m.panelWidth() - 16
	if barWidth < 10 {
		barWidth = 10
	}
	bar := m.bar
	bar.Width = barWidth

	rows := make([]string, len(m.fractions))
	for i, f := range m.fractions {
		label := workerLabelStyle.Render(fmt.Sprintf("worker %2d", i))
		rows[i] = fmt.Sprintf("%s %s %4.0f%%", label, bar.ViewAs(f), f*100)
	}
	return panelStyle.Width(m.panelWidth()).Render(strings.Join(rows, "\n"))
}

func (m Model) viewSummary() string {
	s := m.summary
	lines := []string{
		statusDoneStyle.Render("Sieve complete"),
		summaryKeyStyle.Render("Elapsed: ") + summaryValStyle.Render(format.FormatExecutionDuration(s.Elapsed)),
		summaryKeyStyle.Render("Primes:  ") + summaryValStyle.Render(format.GroupInt(int64(s.Count))),
		summaryKeyStyle.Render("Sum:     ") + summaryValStyle.Render(format.GroupBig(s.Sum)),
	}
	if len(s.TopK) > 0 {
		top := make([]string, len(s.TopK))
		for i, p := range s.TopK {
			top[i] = fmt.Sprintf("%d", p)
		}
		lines = append(lines, summaryKeyStyle.Render("Largest: ")+summaryValStyle.Render(strings.Join(top, " ")))
	}
	return panelStyle.Width(m.panelWidth()).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) panelWidth() int {
	w := m.width - 2
	if w < 40 {
		w = 40
	}
	return w
}
