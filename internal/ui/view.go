package ui

import (
	"strings"

	"github.com/atomicstack/linux-ref-guide/internal/logging/events"
	"github.com/atomicstack/linux-ref-guide/internal/menu"
	"github.com/atomicstack/linux-ref-guide/internal/nav"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

const (
	menuHeaderSeparator = " → "
	headerRows          = 1
	// sidebarChromeRows covers the menu title and the blank line under it.
	sidebarChromeRows = 2
	// sidebarDetailRows covers the blank line and description under the items.
	sidebarDetailRows = 2
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.viewSidebar(), m.viewContent())
	parts := []string{m.viewHeader(), body}
	if m.showFooter {
		parts = append(parts, m.viewFooter())
	}
	return strings.Join(parts, "\n")
}

func (m *Model) viewHeader() string {
	width := m.layoutWidth()
	crumb := styles.Header.Render(m.menuHeader())
	header := crumb + "  " + styles.Subtitle.Render(Subtitle)
	if lipgloss.Width(header) > width {
		header = crumb
	}
	if lipgloss.Width(header) > width {
		header = truncate.StringWithTail(header, uint(width), "…")
	}
	return header
}

// menuHeader is the breadcrumb for the current view.
func (m *Model) menuHeader() string {
	return strings.Join(m.headerSegments(), menuHeaderSeparator)
}

func (m *Model) headerSegments() []string {
	v := m.view
	segments := []string{menu.DefaultTitle}
	if v.Menu.IsSubmenu() {
		segments = append(segments, v.MenuTitle)
	}
	if v.State.Kind == menu.KindTopicView {
		label := v.State.Topic
		if idx := menu.IndexOf(v.Items, nav.TopicItemID(v.State.Level, v.State.Topic)); idx >= 0 {
			label = v.Items[idx].Label
		}
		segments = append(segments, label)
	}
	if v.Help {
		segments = append(segments, nav.HelpTitle)
	}
	return segments
}

func (m *Model) viewSidebar() string {
	inner := m.sidebarWidth - 1
	height := m.bodyHeight()
	current := m.sidebar
	lines := make([]styledLine, 0, height)
	lines = append(lines, styledLine{text: current.Title, style: styles.MenuTitle}, styledLine{})

	maxVisible := m.maxVisibleItems()
	current.EnsureCursorVisible(maxVisible)
	start, end := current.Visible(maxVisible)
	for idx := start; idx < end; idx++ {
		lines = append(lines, m.buildItemLine(current.Items[idx], idx, inner))
	}
	if item, ok := current.Current(); ok && item.Description != "" && len(lines)+sidebarDetailRows <= height {
		lines = append(lines, styledLine{}, styledLine{text: item.Description, style: styles.Description})
	}
	lines = limitHeight(applyWidth(lines, inner), height, inner)
	for len(lines) < height {
		lines = append(lines, styledLine{})
	}

	style := styles.Sidebar
	if m.focus == focusSidebar {
		style = styles.SidebarFocused
	}
	return style.Width(inner).Height(height).Render(renderLines(lines))
}

func (m *Model) buildItemLine(item menu.Item, idx, width int) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if item.ID == menu.IDBack {
		lineStyle = styles.BackItem
	}
	if idx == m.sidebar.Cursor {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	fullText := indicator + " " + item.Label
	if width > 0 {
		if pad := width - runewidth.StringWidth(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

func (m *Model) viewContent() string {
	height := m.bodyHeight()
	return styles.Content.
		Width(m.contentWidth() + 2).
		Height(height).
		MaxHeight(height).
		Render(m.viewport.View())
}

func (m *Model) viewFooter() string {
	m.help.Width = m.layoutWidth()
	return styles.Footer.Render(m.help.View(m.keys))
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	overSidebar := ev.X < m.sidebarWidth
	switch {
	case ev.Button == tea.MouseButtonWheelUp || ev.Button == tea.MouseButtonWheelDown:
		if overSidebar {
			delta := 1
			if ev.Button == tea.MouseButtonWheelUp {
				delta = -1
			}
			if m.sidebar.MoveCursor(delta) {
				m.sidebar.EnsureCursorVisible(m.maxVisibleItems())
				events.UI.Cursor(m.sidebar.ID, m.sidebar.Cursor)
			}
			return nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(ev)
		return cmd
	case ev.Action == tea.MouseActionPress && ev.Button == tea.MouseButtonLeft:
		if !overSidebar {
			if m.focus != focusContent {
				m.toggleFocus()
			}
			return nil
		}
		idx := m.sidebarIndexAt(ev.Y)
		if idx < 0 {
			return nil
		}
		if m.focus != focusSidebar {
			m.toggleFocus()
		}
		m.sidebar.Cursor = idx
		return m.activateCurrent()
	}
	return nil
}

// sidebarIndexAt maps a screen row to a sidebar item index, or -1.
func (m *Model) sidebarIndexAt(y int) int {
	row := y - headerRows - sidebarChromeRows
	if row < 0 {
		return -1
	}
	start, end := m.sidebar.Visible(m.maxVisibleItems())
	idx := start + row
	if idx >= end {
		return -1
	}
	return idx
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	events.UI.Resize(m.width, m.height)
	m.viewport.Width = m.contentWidth()
	m.viewport.Height = m.bodyHeight()
	if m.raw != "" {
		offset := m.viewport.YOffset
		m.viewport.SetContent(m.renderMarkdown(m.raw))
		m.viewport.SetYOffset(offset)
	}
	m.sidebar.EnsureCursorVisible(m.maxVisibleItems())
	return nil
}

func (m *Model) layoutWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultWidth
}

func (m *Model) layoutHeight() int {
	if m.height > 0 {
		return m.height
	}
	return defaultHeight
}

func (m *Model) bodyHeight() int {
	used := headerRows
	if m.showFooter {
		used++
	}
	return max(m.layoutHeight()-used, sidebarChromeRows+1)
}

// contentWidth is the text width of the content pane, inside its padding.
func (m *Model) contentWidth() int {
	return max(m.layoutWidth()-m.sidebarWidth-2, 1)
}

func (m *Model) maxVisibleItems() int {
	return max(m.bodyHeight()-sidebarChromeRows-sidebarDetailRows, 1)
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		line.text = truncateText(line.text, width)
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil && text != "" {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 || ansi.StringWidth(text) <= width {
		return text
	}
	return runewidth.Truncate(text, width, "…")
}
