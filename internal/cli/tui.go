package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/streemap/pkg/dataset"
	"github.com/matzehuels/streemap/pkg/render/sink"
	"github.com/matzehuels/streemap/pkg/render/styles"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorTeal)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	previewMinCols = 10
	previewMinRows = 4

	// previewChrome is the number of terminal rows used around the map.
	previewChrome = 7
)

// =============================================================================
// PreviewModel - Interactive terminal treemap
// =============================================================================

// PreviewModel is the bubbletea model drawing a layout with terminal cells.
// Left and right move the selection between leaf tiles.
type PreviewModel struct {
	Layout dataset.Layout
	Cursor int
	Cols   int
	Rows   int

	blocks []styles.Block
	leaves []int
	total  float64
}

// NewPreviewModel creates a preview of l sized for a cols×rows grid.
func NewPreviewModel(l dataset.Layout, cols, rows int) PreviewModel {
	m := PreviewModel{Layout: l, blocks: sink.Blocks(l)}
	for i, b := range l.Blocks {
		if !b.Group {
			m.leaves = append(m.leaves, i)
			m.total += b.Weight
		}
	}
	m.resize(cols, rows)
	return m
}

func (m *PreviewModel) resize(cols, rows int) {
	m.Cols = max(cols, previewMinCols)
	m.Rows = max(rows, previewMinRows)
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height-previewChrome)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h", "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "right", "l", "down", "j", "tab":
			if m.Cursor < len(m.leaves)-1 {
				m.Cursor++
			}
		case "home", "g":
			m.Cursor = 0
		case "end", "G":
			m.Cursor = max(len(m.leaves)-1, 0)
		}
	}
	return m, nil
}

// Selected returns the layout block under the cursor.
func (m PreviewModel) Selected() (dataset.Block, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.leaves) {
		return dataset.Block{}, false
	}
	return m.Layout.Blocks[m.leaves[m.Cursor]], true
}

func (m PreviewModel) View() string {
	var b strings.Builder

	title := m.Layout.Name
	if title == "" {
		title = "Treemap"
	}
	b.WriteString(StyleHighlight.Bold(true).Render(title))
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %s · %gx%g", m.Layout.Algorithm, m.Layout.Width, m.Layout.Height)))
	b.WriteString("\n\n")

	selected := -1
	if len(m.leaves) > 0 {
		selected = m.leaves[m.Cursor]
	}
	grid := rasterize(m.blocks, m.Layout.Width, m.Layout.Height, m.Cols, m.Rows)
	for _, row := range grid {
		b.WriteString(m.renderRow(row, selected))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if blk, ok := m.Selected(); ok {
		b.WriteString(m.details(blk))
		b.WriteString("\n")
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf("arrows: select  q: quit  [%d/%d]", m.Cursor+1, len(m.leaves))))

	return b.String()
}

// renderRow draws runs of cells that share a block with a single style.
func (m PreviewModel) renderRow(row []int, selected int) string {
	var b strings.Builder
	for start := 0; start < len(row); {
		end := start
		for end < len(row) && row[end] == row[start] {
			end++
		}
		idx := row[start]
		run := end - start
		switch {
		case idx < 0:
			b.WriteString(strings.Repeat(" ", run))
		case idx == selected:
			style := lipgloss.NewStyle().
				Background(lipgloss.Color(m.blocks[idx].Fill)).
				Foreground(lipgloss.Color(styles.TextColor(m.blocks[idx].Fill)))
			b.WriteString(style.Render(strings.Repeat("▒", run)))
		default:
			style := lipgloss.NewStyle().Background(lipgloss.Color(m.blocks[idx].Fill))
			b.WriteString(style.Render(strings.Repeat(" ", run)))
		}
		start = end
	}
	return b.String()
}

func (m PreviewModel) details(blk dataset.Block) string {
	share := 0.0
	if m.total > 0 {
		share = blk.Weight / m.total * 100
	}
	parent := blk.Parent
	if parent == "" {
		parent = "-"
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Tile", "Weight", "Share", "Rect", "Parent").
		Row(
			blk.DisplayLabel(),
			fmt.Sprintf("%g", blk.Weight),
			fmt.Sprintf("%.1f%%", share),
			fmt.Sprintf("%.1f,%.1f %.1fx%.1f", blk.X, blk.Y, blk.Width, blk.Height),
			parent,
		).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			}
			if col == 0 {
				return listSelectedStyle
			}
			return StyleValue
		})
	return t.Render()
}

// =============================================================================
// Helpers
// =============================================================================

// rasterize maps a cols×rows grid onto a w×h layout. Each cell holds the
// index of the deepest block containing the cell's center, or -1.
func rasterize(blocks []styles.Block, w, h float64, cols, rows int) [][]int {
	grid := make([][]int, max(rows, 0))
	if w <= 0 || h <= 0 || cols <= 0 {
		for r := range grid {
			grid[r] = make([]int, max(cols, 0))
			for c := range grid[r] {
				grid[r][c] = -1
			}
		}
		return grid
	}

	for r := range grid {
		grid[r] = make([]int, cols)
		y := (float64(r) + 0.5) * h / float64(rows)
		for c := range grid[r] {
			x := (float64(c) + 0.5) * w / float64(cols)
			grid[r][c] = blockAt(blocks, x, y)
		}
	}
	return grid
}

// blockAt relies on children following their parent in block order, so the
// last hit is the deepest.
func blockAt(blocks []styles.Block, x, y float64) int {
	hit := -1
	for i, b := range blocks {
		if x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H {
			hit = i
		}
	}
	return hit
}
