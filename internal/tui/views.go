package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ludo/internal/tui/styles"
)

// View renders the current application state.
func (m Model) View() string {
	if !m.Ready {
		return "starting..."
	}

	switch m.State {
	case StateDetail:
		return m.detailView()
	case StateLibrary:
		return m.libraryView()
	case StateAuth:
		return m.authView()
	case StateHelp:
		return m.helpView()
	}
	return m.browseView()
}

func (m Model) browseView() string {
	sidebar := styles.SidebarStyle.Render(m.FilterPanel.View())
	content := styles.BrowserStyle.Render(m.browseContent())
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		body,
		m.footerView(m.browseHints()),
	)
}

func (m Model) browseContent() string {
	if m.loadingList {
		return m.Spinner.View() + " loading catalog..."
	}
	if m.listErr != nil {
		return styles.ErrorStyle.Render("Could not load the catalog: "+m.listErr.Error()) +
			"\n" + styles.DimStyle.Render("press r to retry")
	}

	var b strings.Builder
	b.WriteString(m.GameList.View())
	if m.page != nil {
		b.WriteString("\n")
		b.WriteString(m.paginatorView())
	}
	return b.String()
}

// paginatorView renders a numbered page strip with a sliding window
// around the current page.
func (m Model) paginatorView() string {
	w := NewPageWindow(m.page.Page, m.page.TotalPages)
	if w.Empty() {
		return styles.DimStyle.Render(fmt.Sprintf("%d games", m.page.Count))
	}

	var parts []string
	if w.ShowFirst {
		parts = append(parts, styles.PageStyle.Render("1"))
	}
	if w.LeadingEllipsis {
		parts = append(parts, styles.PageEllipsisStyle.Render("…"))
	}
	for _, p := range w.Pages {
		label := fmt.Sprintf("%d", p)
		if p == m.page.Page {
			parts = append(parts, styles.PageCurrentStyle.Render(label))
		} else {
			parts = append(parts, styles.PageStyle.Render(label))
		}
	}
	if w.TrailingEllipsis {
		parts = append(parts, styles.PageEllipsisStyle.Render("…"))
	}
	if w.ShowLast {
		parts = append(parts, styles.PageStyle.Render(fmt.Sprintf("%d", m.page.TotalPages)))
	}

	strip := strings.Join(parts, " ")
	count := styles.DimStyle.Render(fmt.Sprintf("  %d games", m.page.Count))
	return strip + count
}

func (m Model) detailView() string {
	var content string
	switch {
	case m.loadingDetail:
		content = m.Spinner.View() + " loading title..."
	case m.detailErr != nil:
		content = styles.ErrorStyle.Render("Could not load this title: "+m.detailErr.Error()) +
			"\n" + styles.DimStyle.Render("press r to retry, esc to go back")
	default:
		content = m.Detail.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		styles.BrowserStyle.Render(content),
		m.footerView("esc back · n/p screenshots · j/k scroll · b bookmark"),
	)
}

func (m Model) libraryView() string {
	title := styles.TitleStyle.Render("Library")
	if user, ok := m.Session.Current(); ok {
		title += styles.DimStyle.Render(fmt.Sprintf("  %s's games", user.Username))
	}
	header := styles.SubtitleStyle.Render(fmt.Sprintf("%d bookmarked", m.Library.Len()))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		header,
		styles.BrowserStyle.Render(m.Library.View()),
		m.footerView("enter open · / filter · x remove · X clear · esc back"),
	)
}

func (m Model) authView() string {
	if m.AuthForm == nil {
		return m.browseView()
	}
	form := lipgloss.Place(m.Width, m.Height-1, lipgloss.Center, lipgloss.Center, m.AuthForm.View())
	return lipgloss.JoinVertical(lipgloss.Left, form, m.statusView())
}

func (m Model) helpView() string {
	rows := []struct{ keys, desc string }{
		{"j/k, ↓/↑", "move cursor"},
		{"h/l, ←/→", "previous / next page"},
		{"tab", "switch between filters and results"},
		{"enter", "open selected title"},
		{"/", "search the catalog"},
		{"f", "narrow a long filter list"},
		{"b", "bookmark the selected title"},
		{"L", "open your library"},
		{"B", "back to browsing"},
		{"i", "sign in"},
		{"O", "sign out"},
		{"R", "reset all filters"},
		{"r", "retry a failed load"},
		{"x / X", "remove one / all bookmarks"},
		{"n/p", "cycle screenshots"},
		{"?", "toggle this help"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Keyboard reference"))
	b.WriteString("\n\n")
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			styles.AccentStyle.Render(fmt.Sprintf("%-10s", r.keys)),
			r.desc))
	}
	b.WriteString("\n")
	b.WriteString(styles.DimStyle.Render("press esc to close"))
	return b.String()
}

func (m Model) headerView() string {
	title := styles.TitleStyle.Render("ludo")

	var middle string
	if m.searchActive {
		middle = m.SearchInput.View()
	} else {
		st, _ := m.Filters.Snapshot()
		var chips []string
		if st.Search != "" {
			chips = append(chips, styles.HighlightStyle.Render(`"`+st.Search+`"`))
		}
		if summary := m.FilterPanel.SelectionSummary(); summary != "" {
			chips = append(chips, styles.DimStyle.Render(summary))
		}
		middle = strings.Join(chips, "  ")
	}

	var who string
	if user, ok := m.Session.Current(); ok {
		who = styles.SuccessStyle.Render(user.Username)
	} else {
		who = styles.DimStyle.Render("not signed in")
	}

	left := title
	if middle != "" {
		left += "  " + middle
	}
	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(who) - 1
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + who
}

func (m Model) footerView(hints string) string {
	if status := m.statusView(); status != "" {
		return status
	}
	return styles.StatusBarStyle.Render(hints)
}

func (m Model) statusView() string {
	if m.StatusMsg == "" {
		return ""
	}
	if m.StatusIsErr {
		return styles.ErrorStyle.Render(m.StatusMsg)
	}
	return styles.SuccessStyle.Render(m.StatusMsg)
}

func (m Model) browseHints() string {
	if m.Focus == FocusPanel {
		return "←/→ section · enter toggle · f narrow · tab results · ? help"
	}
	return "/ search · tab filters · enter open · b bookmark · L library · ? help"
}
