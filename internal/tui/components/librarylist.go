package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"ludo/internal/domain"
	"ludo/internal/tui/styles"
)

// LibraryList is the bookmarked-titles pane with a ranked quick filter.
type LibraryList struct {
	entries []domain.FavoriteEntry

	cursor     int
	offset     int
	maxVisible int

	width  int
	height int

	filterActive bool
	filterInput  textinput.Model
	filteredIdx  []int // indices into entries, ranked when filtering
}

// NewLibraryList creates a library list component.
func NewLibraryList() *LibraryList {
	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	return &LibraryList{filterInput: ti}
}

// SetEntries replaces the collection, keeping the quick filter applied.
func (l *LibraryList) SetEntries(entries []domain.FavoriteEntry) {
	l.entries = entries
	l.applyFilter()
	if l.cursor >= len(l.filteredIdx) {
		l.cursor = len(l.filteredIdx) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	l.clampScroll()
}

// SetSize updates the component dimensions.
func (l *LibraryList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.maxVisible = height - 3
	if l.maxVisible < 1 {
		l.maxVisible = 1
	}
	l.clampScroll()
}

// Len returns the number of visible entries.
func (l *LibraryList) Len() int {
	return len(l.filteredIdx)
}

// Selected returns the entry under the cursor.
func (l *LibraryList) Selected() (domain.FavoriteEntry, bool) {
	if l.cursor < 0 || l.cursor >= len(l.filteredIdx) {
		return domain.FavoriteEntry{}, false
	}
	return l.entries[l.filteredIdx[l.cursor]], true
}

// CursorUp moves the selection up one row.
func (l *LibraryList) CursorUp() {
	if l.cursor > 0 {
		l.cursor--
	}
	l.clampScroll()
}

// CursorDown moves the selection down one row.
func (l *LibraryList) CursorDown() {
	if l.cursor < len(l.filteredIdx)-1 {
		l.cursor++
	}
	l.clampScroll()
}

// Filtering reports whether the quick-filter input is capturing keys.
func (l *LibraryList) Filtering() bool {
	return l.filterActive
}

// StartFilter opens the quick-filter input.
func (l *LibraryList) StartFilter() tea.Cmd {
	l.filterActive = true
	return l.filterInput.Focus()
}

// UpdateFilter feeds a key into the quick-filter input.
func (l *LibraryList) UpdateFilter(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		l.filterActive = false
		l.filterInput.Blur()
		l.filterInput.SetValue("")
		l.applyFilter()
		return nil
	case "enter":
		l.filterActive = false
		l.filterInput.Blur()
		return nil
	}
	var cmd tea.Cmd
	l.filterInput, cmd = l.filterInput.Update(msg)
	l.applyFilter()
	return cmd
}

// applyFilter recomputes filteredIdx, ranking matches by fuzzy score
// when a query is present.
func (l *LibraryList) applyFilter() {
	query := l.filterInput.Value()
	l.filteredIdx = l.filteredIdx[:0]

	if query == "" {
		for i := range l.entries {
			l.filteredIdx = append(l.filteredIdx, i)
		}
		return
	}

	names := make([]string, len(l.entries))
	for i, e := range l.entries {
		names[i] = e.Name
	}
	for _, match := range fuzzy.Find(query, names) {
		l.filteredIdx = append(l.filteredIdx, match.Index)
	}
	if l.cursor >= len(l.filteredIdx) {
		l.cursor = 0
	}
}

func (l *LibraryList) clampScroll() {
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.maxVisible > 0 && l.cursor >= l.offset+l.maxVisible {
		l.offset = l.cursor - l.maxVisible + 1
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

// View renders the list.
func (l *LibraryList) View() string {
	var b strings.Builder

	if l.filterActive || l.filterInput.Value() != "" {
		b.WriteString(l.filterInput.View())
		b.WriteString("\n")
	}

	if len(l.entries) == 0 {
		b.WriteString(styles.DimStyle.Render("Your library is empty. Bookmark games with 'b' while browsing."))
		return b.String()
	}
	if len(l.filteredIdx) == 0 {
		b.WriteString(styles.DimStyle.Render("No matches."))
		return b.String()
	}

	end := l.offset + l.maxVisible
	if end > len(l.filteredIdx) {
		end = len(l.filteredIdx)
	}
	for row := l.offset; row < end; row++ {
		e := l.entries[l.filteredIdx[row]]

		meta := []string{}
		if e.Rating > 0 {
			meta = append(meta, fmt.Sprintf("★ %.1f", e.Rating))
		}
		if e.Released != "" {
			meta = append(meta, e.Released)
		}
		if added, err := time.Parse(time.RFC3339, e.AddedAt); err == nil {
			meta = append(meta, "added "+added.Format("Jan 2, 2006"))
		}

		line := fmt.Sprintf("%s %s", styles.FavoriteMark, e.Name)
		if len(meta) > 0 {
			line += "  " + styles.DimStyle.Render(strings.Join(meta, "  "))
		}
		if row == l.cursor {
			line = styles.SelectedRowStyle.Width(l.width - 2).Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
