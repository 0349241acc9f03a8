package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/stream-status/internal/card"
	"github.com/atomicstack/stream-status/internal/state"
)

const (
	previewPanelMinWidth = 36  // minimum cols for the detail panel; below this no split
	previewPanelFraction = 0.4 // fraction of total width given to the detail panel
)

var (
	previewBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// hasSidePreview reports whether the detail panel is drawn to the right of
// the list rather than inline below it.
func (m *Model) hasSidePreview() bool {
	if len(m.list.Items) == 0 {
		return false
	}
	return m.previewPanelWidth() > 0
}

// previewPanelWidth returns the width in columns for the right-hand panel.
// Returns 0 when the terminal is too narrow to split.
func (m *Model) previewPanelWidth() int {
	if m.width <= 0 {
		return 0
	}
	w := int(float64(m.width) * previewPanelFraction)
	if w < previewPanelMinWidth {
		return 0
	}
	return w
}

func (m *Model) listColumnWidth() int {
	return m.width - m.previewPanelWidth()
}

// View implements tea.Model.
func (m *Model) View() string {
	header := m.listHeader()
	if m.mode == ModeAddForm && m.addForm != nil {
		return m.viewAddFormWithHeader(header)
	}
	if m.hasSidePreview() {
		return m.viewSideBySide(header)
	}
	return m.viewVertical(header)
}

func (m *Model) itemLines(width int) []styledLine {
	m.syncViewport(m.list)
	if len(m.list.Items) == 0 {
		msg := "(no channels)"
		if m.list.Query != "" {
			msg = fmt.Sprintf("No matches for %q", m.list.Query)
		} else if m.tracked.Len() > 0 {
			msg = fmt.Sprintf("No %s channels", strings.ToLower(m.filter.Title()))
		}
		return []styledLine{{text: msg, style: styles.Info}}
	}
	start := 0
	rows := card.Rows(m.list.Items, m.glyph)
	if maxItems := m.maxVisibleItems(); maxItems > 0 && len(rows) > maxItems {
		start = m.list.ViewportOffset
		if start < 0 {
			start = 0
		}
		if start+maxItems > len(rows) {
			start = len(rows) - maxItems
			if start < 0 {
				start = 0
			}
			m.list.ViewportOffset = start
		}
		rows = rows[start : start+maxItems]
	}
	lines := make([]styledLine, 0, len(rows))
	for i, row := range rows {
		idx := start + i
		lines = append(lines, m.buildItemLine(row, m.list.Items[idx].Record, idx, width))
	}
	return lines
}

func (m *Model) glyph(rec state.Record) string {
	if rec.Status == state.StatusLoading {
		return m.spinner.View()
	}
	return card.Glyph(rec)
}

// viewVertical is the single-column layout with the selected card inline
// below the list.
func (m *Model) viewVertical(header string) string {
	lines := make([]styledLine, 0, 16)
	if header != "" {
		lines = append(lines, styledLine{text: header, raw: true})
	}
	lines = append(lines, m.itemLines(m.width)...)
	if preview := m.activePreview(); preview != nil {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: previewTitleText(preview), style: styles.PreviewTitle})
		for _, line := range preview.lines {
			lines = append(lines, styledLine{text: line, style: styles.PreviewBody})
		}
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.keys.footerHelp(), style: styles.Footer})
	}
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)
	lines = append(lines, m.bottomLines()...)
	return renderLines(lines)
}

// viewSideBySide renders the list on the left and the card panel on the right.
func (m *Model) viewSideBySide(header string) string {
	listW := m.listColumnWidth()
	prevW := m.previewPanelWidth()

	const bottomBarRows = 2

	contentLines := make([]styledLine, 0, 16)
	if header != "" {
		contentLines = append(contentLines, styledLine{text: header, raw: true})
	}
	contentLines = append(contentLines, m.itemLines(listW)...)
	if info := m.currentInfo(); info != "" {
		contentLines = append(contentLines, styledLine{})
		contentLines = append(contentLines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		contentLines = append(contentLines, styledLine{})
		contentLines = append(contentLines, styledLine{text: m.keys.footerHelp(), style: styles.Footer})
	}

	panelH := m.height - bottomBarRows
	if m.height <= 0 {
		panelH = len(contentLines)
	}
	if panelH < 3 {
		panelH = 3
	}
	if len(contentLines) > panelH {
		contentLines = contentLines[:panelH]
	}
	for len(contentLines) < panelH {
		contentLines = append(contentLines, styledLine{})
	}
	contentLines = applyWidth(contentLines, listW)
	leftRows := strings.Split(renderLines(contentLines), "\n")
	for i, row := range leftRows {
		w := lipgloss.Width(row)
		if w > listW {
			leftRows[i] = truncate.StringWithTail(row, uint(listW-1), "…")
		} else if w < listW {
			leftRows[i] = row + strings.Repeat(" ", listW-w)
		}
	}
	leftStr := strings.Join(leftRows, "\n")
	rightStr := m.renderPreviewPanel(m.activePreview(), prevW, panelH)
	topSection := lipgloss.JoinHorizontal(lipgloss.Top, leftStr, rightStr)

	bottom := renderLines(m.bottomLines())
	return topSection + "\n" + bottom
}

// bottomLines is the status/error line plus the search prompt.
func (m *Model) bottomLines() []styledLine {
	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	lines := []styledLine{statusLine, {text: m.filterPrompt(), raw: true}}
	return applyWidth(lines, m.width)
}

// buildItemLine constructs a single styledLine for a card row. width is the
// target column width; when > 0 the text is padded so the selected row's
// background spans the full column.
func (m *Model) buildItemLine(row string, rec state.Record, idx int, width int) styledLine {
	indicator := "▌"
	lineStyle := statusStyleFor(rec.Status)
	indicatorStyle := styles.ItemIndicator
	if idx == m.list.Cursor {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	fullText := indicator + " " + row
	if width > 0 {
		if pad := width - lipgloss.Width(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

// listHeader renders the filter tabs with the visible/tracked counts.
func (m *Model) listHeader() string {
	tabs := make([]string, 0, len(state.Filters()))
	for _, f := range state.Filters() {
		style := styles.Tab
		if f == m.filter {
			style = styles.ActiveTab
		}
		tabs = append(tabs, style.Render(f.Title()))
	}
	count := fmt.Sprintf(" %d/%d %s", len(m.list.Items), m.tracked.Len(), listTitle)
	return strings.Join(tabs, "") + styles.Header.Render(count)
}

// renderPreviewPanel builds the bordered card box with exactly height rows
// and totalWidth columns.
func (m *Model) renderPreviewPanel(preview *previewData, totalWidth, height int) string {
	const (
		tlc = "╭"
		trc = "╮"
		blc = "╰"
		brc = "╯"
		hz  = "─"
		vt  = "│"
	)

	innerW := totalWidth - 2
	innerH := height - 2
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}

	titleLabel := "Channel"
	var contentLines []string
	bodyStyle := styles.PreviewBody
	if preview != nil {
		titleLabel = previewTitleText(preview)
		contentLines = preview.lines
		if preview.status == state.StatusUnresolved {
			bodyStyle = styles.StatusUnresolved
		}
	}

	titleSeg := " " + titleLabel + " "
	dashes := totalWidth - 4 - lipgloss.Width(titleSeg)
	if dashes < 0 {
		titleSeg = truncate.StringWithTail(titleSeg, uint(totalWidth-4), "…")
		dashes = totalWidth - 4 - lipgloss.Width(titleSeg)
	}
	if dashes < 0 {
		dashes = 0
	}
	topLine := previewBorderStyle.Render(tlc+hz) +
		styles.PreviewTitle.Render(titleSeg) +
		previewBorderStyle.Render(strings.Repeat(hz, dashes)) +
		previewBorderStyle.Render(hz+trc)
	bottomLine := previewBorderStyle.Render(blc + strings.Repeat(hz, innerW) + brc)

	rows := make([]string, 0, height)
	rows = append(rows, topLine)
	for i := 0; i < innerH; i++ {
		var content string
		if i < len(contentLines) {
			content = contentLines[i]
		}
		w := lipgloss.Width(content)
		if w > innerW {
			content = truncate.StringWithTail(content, uint(innerW-1), "…")
			w = lipgloss.Width(content)
		}
		if w < innerW {
			content = content + strings.Repeat(" ", innerW-w)
		}
		if bodyStyle != nil {
			content = bodyStyle.Render(content)
		}
		rows = append(rows, previewBorderStyle.Render(vt)+content+previewBorderStyle.Render(vt))
	}
	rows = append(rows, bottomLine)
	return strings.Join(rows, "\n")
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
	m.syncViewport(m.list)
	return nil
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 3 // header + bottom bar: error/status + search prompt
	if info := m.currentInfo(); info != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	if !m.hasSidePreview() {
		if preview := m.activePreview(); preview != nil {
			used += 2 + len(preview.lines) // blank separator + title + body
		}
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
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
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		line.text = text
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
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
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	if lipgloss.Width(text) <= width {
		return text
	}
	if width == 1 {
		return string([]rune(text)[:1])
	}
	return truncate.StringWithTail(text, uint(width-1), "…")
}
