package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ludo/internal/domain"
	"ludo/internal/tui/styles"
)

// GameList is the scrollable catalog results pane.
type GameList struct {
	games []domain.Game

	cursor     int
	offset     int
	maxVisible int

	width   int
	height  int
	focused bool

	// isFavorite answers whether a title is bookmarked, for the row marker
	isFavorite func(id int) bool
}

// NewGameList creates a game list component.
func NewGameList(isFavorite func(id int) bool) *GameList {
	return &GameList{isFavorite: isFavorite}
}

// SetGames replaces the displayed page and resets the cursor.
func (l *GameList) SetGames(games []domain.Game) {
	l.games = games
	l.cursor = 0
	l.offset = 0
}

// SetSize updates the component dimensions.
func (l *GameList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.maxVisible = height - 2 // header + spacer
	if l.maxVisible < 1 {
		l.maxVisible = 1
	}
	l.clampScroll()
}

// SetFocused toggles keyboard focus styling.
func (l *GameList) SetFocused(focused bool) {
	l.focused = focused
}

// Selected returns the title under the cursor.
func (l *GameList) Selected() (domain.Game, bool) {
	if l.cursor < 0 || l.cursor >= len(l.games) {
		return domain.Game{}, false
	}
	return l.games[l.cursor], true
}

// Len returns the number of listed titles.
func (l *GameList) Len() int {
	return len(l.games)
}

// CursorUp moves the selection up one row.
func (l *GameList) CursorUp() {
	if l.cursor > 0 {
		l.cursor--
	}
	l.clampScroll()
}

// CursorDown moves the selection down one row.
func (l *GameList) CursorDown() {
	if l.cursor < len(l.games)-1 {
		l.cursor++
	}
	l.clampScroll()
}

func (l *GameList) clampScroll() {
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
func (l *GameList) View() string {
	var b strings.Builder

	if len(l.games) == 0 {
		b.WriteString(styles.DimStyle.Render("No games match the current filters."))
		return b.String()
	}

	end := l.offset + l.maxVisible
	if end > len(l.games) {
		end = len(l.games)
	}

	for i := l.offset; i < end; i++ {
		b.WriteString(l.renderRow(i))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (l *GameList) renderRow(i int) string {
	g := l.games[i]

	mark := styles.UnfavoriteChar
	if l.isFavorite != nil && l.isFavorite(g.ID) {
		mark = styles.FavoriteMark
	}

	meta := []string{}
	if year := g.ReleaseYear(); year > 0 {
		meta = append(meta, fmt.Sprintf("%d", year))
	}
	if g.Rating > 0 {
		meta = append(meta, fmt.Sprintf("★ %.1f", g.Rating))
	}
	if g.HasMetacritic() {
		meta = append(meta, fmt.Sprintf("MC %d", g.Metacritic))
	}

	name := g.Name
	metaStr := strings.Join(meta, "  ")

	// Truncate the name to fit: marker(2) + gap(2) + meta
	avail := l.width - lipgloss.Width(metaStr) - 6
	if avail > 3 && lipgloss.Width(name) > avail {
		name = truncate(name, avail)
	}

	row := fmt.Sprintf("%s %s", mark, name)
	if metaStr != "" {
		pad := l.width - lipgloss.Width(row) - lipgloss.Width(metaStr) - 2
		if pad < 1 {
			pad = 1
		}
		row += strings.Repeat(" ", pad) + styles.DimStyle.Render(metaStr)
	}

	if i == l.cursor && l.focused {
		return styles.SelectedRowStyle.Width(l.width).Render(row)
	}
	return row
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
