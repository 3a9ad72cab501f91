package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/ze/internal/format/table"
	"github.com/atomicstack/ze/internal/menu"
	"github.com/atomicstack/ze/internal/ui/state"
)

const (
	titleGlyph   = "⚡ "
	activeGlyph  = "●"
	selectedMark = "> "
	plainMark    = "  "
	// title + box border + box padding
	chromeRows = 1 + 2 + 2
)

// View implements tea.Model.
func (m *Model) View() string {
	var title string
	var body []string
	var below []string
	switch m.machine.Mode {
	case state.ModeNameInput:
		if m.nameForm == nil {
			return ""
		}
		title = m.renderTitle(m.nameForm.Title(), "")
		body = m.viewNameForm()
		below = append(below, m.renderFooter(m.nameForm.Help()))
	case state.ModeLayoutSelect:
		subtitle := ""
		if name := m.machine.Form.SessionName; name != "" {
			subtitle = fmt.Sprintf(" for session %q", name)
		}
		title = m.renderTitle("Select Layout", subtitle)
		body = m.viewItems()
	default:
		title = m.renderTitle("Select Session", "")
		body = m.viewItems()
	}
	if status := m.statusLine(); status != "" {
		below = append([]string{status}, below...)
	}
	box := m.renderBox(body)
	sections := append([]string{title, box}, below...)
	return strings.Join(sections, "\n")
}

func (m *Model) renderTitle(title, subtitle string) string {
	text := titleGlyph + title
	if styles.Title != nil {
		text = styles.Title.Render(text)
	}
	if subtitle != "" {
		if styles.Subtitle != nil {
			subtitle = styles.Subtitle.Render(subtitle)
		}
		text += subtitle
	}
	return clampWidth(text, m.width)
}

func (m *Model) renderBox(lines []string) string {
	inner := m.innerWidth()
	if inner > 0 {
		for i, line := range lines {
			lines[i] = clampWidth(line, inner)
		}
	}
	content := strings.Join(lines, "\n")
	if styles.Box == nil {
		return content
	}
	return styles.Box.Render(content)
}

// innerWidth is the usable width inside the box, or 0 when unconstrained.
func (m *Model) innerWidth() int {
	if m.width <= 0 || styles.Box == nil {
		return m.width
	}
	inner := m.width - styles.Box.GetHorizontalFrameSize()
	if inner < 1 {
		return 1
	}
	return inner
}

func (m *Model) viewItems() []string {
	lines := make([]string, 0, len(m.machine.Items)+4)
	if filter := m.filterLine(); filter != "" {
		lines = append(lines, filter, "")
	}
	if m.machine.Busy && len(m.machine.Items) == 0 {
		lines = append(lines, renderStyled(styles.Loading, "Loading…"))
	} else {
		lines = append(lines, m.itemLines()...)
	}
	if m.showFooter {
		lines = append(lines, "", m.renderFooter(m.footerText()))
	}
	return lines
}

// itemLines renders the visible window of items with their detail column
// aligned.
func (m *Model) itemLines() []string {
	items := m.machine.Items
	start, end := m.visibleRange()
	rows := make([][]string, 0, end-start)
	for _, item := range items[start:end] {
		rows = append(rows, []string{item.Label(), itemDetail(item)})
	}
	formatted := table.Format(rows, nil)
	lines := make([]string, len(formatted))
	for i, text := range formatted {
		idx := start + i
		item := items[idx]
		lines[i] = m.renderItem(item, text, idx == m.machine.Cursor.Index)
	}
	return lines
}

func itemDetail(item menu.Item) string {
	switch {
	case item.Kind == menu.KindSession && item.Active:
		return activeGlyph
	case item.Detail() != "":
		return "(" + item.Detail() + ")"
	default:
		return ""
	}
}

func (m *Model) renderItem(item menu.Item, text string, selected bool) string {
	if !item.Selectable() {
		return ""
	}
	mark := plainMark
	if selected {
		mark = selectedMark
	}
	label := item.Label()
	rest := strings.TrimPrefix(text, label)
	style := styles.Item
	switch {
	case item.Synthetic() && selected:
		style = styles.SelectedCreate
	case item.Synthetic():
		style = styles.CreateItem
	case selected:
		style = styles.SelectedItem
	}
	head := renderStyled(style, mark+label)
	if rest == "" {
		return head
	}
	detailStyle := styles.Detail
	if item.Kind == menu.KindSession && item.Active {
		detailStyle = styles.ActiveMarker
	}
	trimmed := strings.TrimLeft(rest, " ")
	pad := rest[:len(rest)-len(trimmed)]
	return head + pad + renderStyled(detailStyle, trimmed)
}

func (m *Model) footerText() string {
	k := m.keys
	switch m.machine.Mode {
	case state.ModeLayoutSelect:
		back := k.Back
		back.SetHelp("Esc", "Back")
		return helpLine(k.Up, k.Select, back)
	default:
		search := "Type: Search"
		if m.machine.Search.Active() {
			h := k.Backspace.Help()
			search = h.Key + ": " + h.Desc
		}
		return helpLine(k.Up, k.Select, k.Delete) + " • " + search + " • " + helpLine(k.Back)
	}
}

func (m *Model) renderFooter(text string) string {
	return clampWidth(renderStyled(styles.Footer, text), m.width)
}

func (m *Model) statusLine() string {
	st := m.machine
	switch {
	case st.Err != "":
		return clampWidth(renderStyled(styles.Error, "Error: "+st.Err), m.width)
	case st.Info != "":
		return clampWidth(renderStyled(styles.Info, st.Info), m.width)
	case st.Busy && len(st.Items) > 0:
		return clampWidth(renderStyled(styles.Loading, "Working…"), m.width)
	}
	return ""
}

// visibleRange returns the slice of items that fits the current height.
func (m *Model) visibleRange() (int, int) {
	total := len(m.machine.Items)
	maxItems := m.maxVisibleItems()
	if maxItems <= 0 || total <= maxItems {
		return 0, total
	}
	start := m.machine.Cursor.Offset
	if start < 0 {
		start = 0
	}
	if start+maxItems > total {
		start = total - maxItems
	}
	return start, start + maxItems
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := chromeRows
	if m.machine.Search.Active() {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	if m.machine.Err != "" || m.machine.Info != "" || m.machine.Busy {
		used++
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
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
	return nil
}

func renderStyled(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

// clampWidth truncates possibly styled text to width cells.
func clampWidth(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}
	if width == 1 {
		return truncate.String(text, 1)
	}
	return truncate.StringWithTail(text, uint(width-1), "…")
}
