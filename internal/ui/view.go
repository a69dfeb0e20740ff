package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"region-explorer/internal/explorer"
)

const defaultWidth = 80

func (m *Model) View() string {
	if m.Quit {
		return ""
	}
	if m.Screen == screenDetail {
		return m.renderDetail()
	}
	return m.renderCards()
}

func (m *Model) width() int {
	if m.Width <= 0 {
		return defaultWidth
	}
	return m.Width
}

// listRows：列表可用行数；未知终端高度时不限制
func (m *Model) listRows(reserved int) int {
	if m.Height <= 0 {
		return 0
	}
	return max(3, m.Height-reserved)
}

// window：返回以光标为中心、长度不超过 size 的可见区间；size<=0 表示全部可见
func window(total, cursor, size int) (int, int) {
	if size <= 0 || total <= size {
		return 0, total
	}
	start := cursor - size/2
	if start < 0 {
		start = 0
	}
	if start+size > total {
		start = total - size
	}
	return start, start + size
}

func (m *Model) renderCards() string {
	var b strings.Builder
	w := m.width()

	b.WriteString(TitleStyle.Render("Departments of Colombia"))
	b.WriteString("\n\n")
	b.WriteString(m.Search.View())
	b.WriteString("\n\n")

	switch {
	case m.CardsLoading:
		b.WriteString(InfoStyle.Render("Loading..."))
		b.WriteString("\n")
	case m.CardsErr != nil:
		b.WriteString(ErrorStyle.Render(explorer.LoadErrorMessage))
		b.WriteString("\n")
	default:
		b.WriteString(renderGrid(m.Cards, m.CardCursor, w, m.listRows(8)))
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("↑↓: Move, Enter: Open, /: Search, Esc: Done typing, q: Quit"))
	return b.String()
}

// renderGrid：卡片区域；cursor<0 表示无光标（非交互输出）
func renderGrid(grid explorer.CardGrid, cursor, width, rows int) string {
	if grid.Empty {
		return DimStyle.Render(grid.Message) + "\n"
	}
	var b strings.Builder
	start, end := window(len(grid.Cards), cursor, rows)
	if start > 0 {
		b.WriteString(DimStyle.Render(fmt.Sprintf("  ↑ %d more", start)) + "\n")
	}
	for i := start; i < end; i++ {
		c := grid.Cards[i]
		line := ansi.Truncate(fmt.Sprintf("%s  ·  Capital: %s  ·  %s", c.Name, c.Capital, c.Image), max(10, width-4), "…")
		if i == cursor {
			b.WriteString("> " + SelectedStyle.Render(line) + "\n")
		} else {
			b.WriteString("  " + NormalStyle.Render(line) + "\n")
		}
	}
	if end < len(grid.Cards) {
		b.WriteString(DimStyle.Render(fmt.Sprintf("  ↓ %d more", len(grid.Cards)-end)) + "\n")
	}
	return b.String()
}

func (m *Model) renderDetail() string {
	w := m.width()
	var b strings.Builder

	switch m.DetailState {
	case detailLoading:
		b.WriteString(InfoStyle.Render(explorer.LoadingMessage))
		b.WriteString("\n\n")
		b.WriteString(HelpStyle.Render("Esc: Back, q: Quit"))
		return b.String()
	case detailFailed:
		b.WriteString(ErrorStyle.Render(explorer.DetailErrorMessage))
		b.WriteString("\n\n")
		b.WriteString(HelpStyle.Render("Esc: Back, q: Quit"))
		return b.String()
	}

	p := m.Panel
	b.WriteString(TitleStyle.Render(p.Title))
	b.WriteString("\n")
	b.WriteString(DimStyle.Render(ansi.Truncate(p.FlagURL, w, "…")))
	b.WriteString("\n")

	desc := lipgloss.NewStyle().Width(max(20, w-18)).Render(p.Description)
	info := lipgloss.JoinVertical(lipgloss.Left,
		"Capital:     "+p.Capital,
		"Population:  "+p.Population,
		lipgloss.JoinHorizontal(lipgloss.Top, "Description: ", desc),
	)
	b.WriteString(PanelStyle.Width(max(20, w-2)).Render(info))
	b.WriteString("\n\n")

	b.WriteString(TitleStyle.Render(fmt.Sprintf("Municipalities (%d)", p.Count())))
	b.WriteString("\n")
	b.WriteString(m.SubFilter.View())
	b.WriteString("\n")

	visible := p.Visible()
	start, end := window(len(visible), m.EntryCursor, m.listRows(18))
	for i := start; i < end; i++ {
		e := visible[i]
		marker := "▸"
		if e.Expanded {
			marker = "▾"
		}
		line := ansi.Truncate(marker+" "+e.SubRegion.Name, max(10, w-4), "…")
		if i == m.EntryCursor {
			b.WriteString("> " + SelectedStyle.Render(line) + "\n")
		} else {
			b.WriteString("  " + NormalStyle.Render(line) + "\n")
		}
		if !e.Expanded {
			continue
		}
		for _, l := range p.Body(e) {
			style := InfoStyle
			if e.Status == explorer.StatusFailed {
				style = ErrorStyle
			}
			b.WriteString("      " + style.Render(l) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("↑↓: Move, Enter: Expand, /: Filter, Esc: Back, q: Quit"))
	return b.String()
}

// PlainCards：非交互模式下的卡片输出
func PlainCards(grid explorer.CardGrid, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	return renderGrid(grid, -1, width, 0)
}
