// Package tui is an optional, out-of-core-semantics viewer for a parsed
// board: a per-layer ASCII grid and a calls-count heatmap. Nothing in
// board imports this package; it exists purely for verbose/interactive
// inspection, the same role hejops-gone/cpu/debugger.go plays for Cpu.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"chip/board"
)

type model struct {
	b       *board.Board
	layer   int
	heatmap bool
	quit    bool
}

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	headerStyle = lipgloss.NewStyle().Bold(true)

	// heatRamp buckets an element's call count into one of five ANSI
	// colors, coldest to hottest -- the same idea as chiplib.py's
	// Board.heatmap(), which buckets into escape-coded brightness tiers.
	heatRamp = []lipgloss.Color{"237", "24", "34", "178", "202"}
)

// Show launches an interactive board viewer. It blocks until the user
// quits ("q") and returns any bubbletea error.
func Show(b *board.Board) error {
	_, err := tea.NewProgram(model{b: b, heatmap: false}).Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quit = true
			return m, tea.Quit
		case "h":
			m.heatmap = !m.heatmap
		case "n", "right":
			if m.layer < m.b.Depth-1 {
				m.layer++
			}
		case "p", "left":
			if m.layer > 0 {
				m.layer--
			}
		}
	}
	return m, nil
}

func (m model) View() string {
	if m.quit {
		return ""
	}
	header := headerStyle.Render(fmt.Sprintf("layer %d/%d  age %d  [h]eatmap=%v  [n/p] page  [q]uit",
		m.layer, max(m.b.Depth-1, 0), m.b.Age, m.heatmap))
	return lipgloss.JoinVertical(lipgloss.Left, header, frameStyle.Render(m.renderLayer()))
}

func (m model) renderLayer() string {
	if m.b.Depth == 0 || m.layer >= m.b.Depth {
		return "(empty board)"
	}
	layer := m.b.Cells[m.layer]
	maxCalls := m.maxCalls()
	rows := make([]string, len(layer))
	for y, row := range layer {
		var line strings.Builder
		for _, e := range row {
			line.WriteString(m.renderCell(e, maxCalls))
		}
		rows[y] = line.String()
	}
	return strings.Join(rows, "\n")
}

func (m model) renderCell(e board.Element, maxCalls int) string {
	glyph := string(e.Lexeme)
	if !m.heatmap {
		return glyph
	}
	return lipgloss.NewStyle().Background(heatColor(e.Calls, maxCalls)).Render(glyph)
}

func (m model) maxCalls() int {
	best := 0
	for _, layer := range m.b.Cells {
		for _, row := range layer {
			for _, e := range row {
				if e.Calls > best {
					best = e.Calls
				}
			}
		}
	}
	return best
}

func heatColor(calls, maxCalls int) lipgloss.Color {
	if maxCalls == 0 || calls == 0 {
		return heatRamp[0]
	}
	bucket := calls * (len(heatRamp) - 1) / maxCalls
	if bucket >= len(heatRamp) {
		bucket = len(heatRamp) - 1
	}
	return heatRamp[bucket]
}
