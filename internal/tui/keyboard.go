package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"ludo/internal/domain"
	"ludo/internal/tui/components"
)

const statusTTL = 3 * time.Second

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.State {
	case StateHelp:
		if key.Matches(msg, Keys.Escape, Keys.Help, Keys.Quit) {
			m.State = StateBrowsing
		}
		return m, nil
	case StateAuth:
		return m.handleAuthKeys(msg)
	case StateDetail:
		return m.handleDetailKeys(msg)
	case StateLibrary:
		return m.handleLibraryKeys(msg)
	}
	return m.handleBrowseKeys(msg)
}

func (m Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Text inputs capture everything while active
	if m.searchActive {
		return m.handleSearchInput(msg)
	}
	if m.FilterPanel.Narrowing() {
		return m, m.FilterPanel.UpdateNarrow(msg)
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.Search):
		m.searchActive = true
		st, _ := m.Filters.Snapshot()
		m.SearchInput.SetValue(st.Search)
		return m, m.SearchInput.Focus()

	case key.Matches(msg, Keys.Tab):
		if m.Focus == FocusList {
			m.Focus = FocusPanel
		} else {
			m.Focus = FocusList
		}
		m.GameList.SetFocused(m.Focus == FocusList)
		m.FilterPanel.SetFocused(m.Focus == FocusPanel)
		return m, nil

	case key.Matches(msg, Keys.Up):
		if m.Focus == FocusPanel {
			m.FilterPanel.CursorUp()
		} else {
			m.GameList.CursorUp()
		}
		return m, nil

	case key.Matches(msg, Keys.Down):
		if m.Focus == FocusPanel {
			m.FilterPanel.CursorDown()
		} else {
			m.GameList.CursorDown()
		}
		return m, nil

	case key.Matches(msg, Keys.Left):
		if m.Focus == FocusPanel {
			m.FilterPanel.PrevSection()
			return m, nil
		}
		return m.gotoPage(-1)

	case key.Matches(msg, Keys.Right):
		if m.Focus == FocusPanel {
			m.FilterPanel.NextSection()
			return m, nil
		}
		return m.gotoPage(1)

	case key.Matches(msg, Keys.Enter):
		if m.Focus == FocusPanel {
			if mutation, ok := m.FilterPanel.Toggle(); ok {
				m.applyMutation(mutation)
			}
			return m, nil
		}
		if game, ok := m.GameList.Selected(); ok {
			return m.openDetail(game.ID, StateBrowsing)
		}
		return m, nil

	case key.Matches(msg, Keys.Filter):
		if m.Focus == FocusPanel {
			return m, m.FilterPanel.StartNarrow()
		}
		return m, nil

	case key.Matches(msg, Keys.Favorite):
		if game, ok := m.GameList.Selected(); ok {
			cmd := m.toggleFavorite(game)
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, Keys.Library):
		m.State = StateLibrary
		m.Library.SetEntries(m.Favorites.All())
		return m, nil

	case key.Matches(msg, Keys.SignIn):
		return m.openAuth(components.ModeSignIn, StateBrowsing)

	case key.Matches(msg, Keys.SignOut):
		if _, ok := m.Session.Current(); !ok {
			return m, nil
		}
		m.Session.SignOut()
		cmd := m.setStatus("Signed out", false)
		return m, cmd

	case key.Matches(msg, Keys.Retry):
		st, rev := m.Filters.Snapshot()
		m.loadingList = true
		m.listErr = nil
		return m, tea.Batch(m.Spinner.Tick, LoadGamesCmd(m.CatalogSvc, st, rev))

	case key.Matches(msg, Keys.Reset):
		m.Filters.ResetFilters()
		cmd := m.setStatus("Filters reset", false)
		return m, cmd

	case key.Matches(msg, Keys.Escape):
		// Drop the active search text, if any
		st, _ := m.Filters.Snapshot()
		if st.Search != "" {
			m.Filters.SetSearch("")
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searchActive = false
		m.SearchInput.Blur()
		return m, nil
	case "enter":
		m.searchActive = false
		m.SearchInput.Blur()
		m.Filters.SetSearch(m.SearchInput.Value())
		return m, nil
	}
	var cmd tea.Cmd
	m.SearchInput, cmd = m.SearchInput.Update(msg)
	return m, cmd
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Escape):
		m.State = m.returnState
		if m.State == StateLibrary {
			m.Library.SetEntries(m.Favorites.All())
		}
		return m, nil

	case key.Matches(msg, Keys.NextShot):
		m.Detail.NextScreenshot()
		return m, nil

	case key.Matches(msg, Keys.PrevShot):
		m.Detail.PrevScreenshot()
		return m, nil

	case key.Matches(msg, Keys.Up):
		m.Detail.ScrollUp()
		return m, nil

	case key.Matches(msg, Keys.Down):
		m.Detail.ScrollDown()
		return m, nil

	case key.Matches(msg, Keys.Favorite):
		if game, ok := m.Detail.Game(); ok {
			cmd := m.toggleFavorite(*game)
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, Keys.Retry):
		if m.detailErr == nil {
			return m, nil
		}
		m.loadingDetail = true
		m.detailErr = nil
		return m, tea.Batch(m.Spinner.Tick, LoadGameDetailCmd(m.CatalogSvc, m.detailID))

	case key.Matches(msg, Keys.Library):
		m.State = StateLibrary
		m.Library.SetEntries(m.Favorites.All())
		return m, nil
	}
	return m, nil
}

func (m Model) handleLibraryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Library.Filtering() {
		return m, m.Library.UpdateFilter(msg)
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Escape), key.Matches(msg, Keys.Browse):
		m.State = StateBrowsing
		return m, nil

	case key.Matches(msg, Keys.Search):
		return m, m.Library.StartFilter()

	case key.Matches(msg, Keys.Up):
		m.Library.CursorUp()
		return m, nil

	case key.Matches(msg, Keys.Down):
		m.Library.CursorDown()
		return m, nil

	case key.Matches(msg, Keys.Enter):
		if entry, ok := m.Library.Selected(); ok {
			return m.openDetail(entry.ID, StateLibrary)
		}
		return m, nil

	case key.Matches(msg, Keys.Delete):
		entry, ok := m.Library.Selected()
		if !ok {
			return m, nil
		}
		if _, signedIn := m.Session.Current(); !signedIn {
			cmd := m.rejectUnauthenticated()
			return m, cmd
		}
		m.Favorites.Remove(entry.ID)
		m.Library.SetEntries(m.Favorites.All())
		cmd := m.setStatus(entry.Name+" removed from your library", false)
		return m, cmd

	case key.Matches(msg, Keys.ClearAll):
		if _, signedIn := m.Session.Current(); !signedIn {
			cmd := m.rejectUnauthenticated()
			return m, cmd
		}
		m.Favorites.Clear()
		m.Library.SetEntries(nil)
		cmd := m.setStatus("Library cleared", false)
		return m, cmd

	case key.Matches(msg, Keys.SignIn):
		return m.openAuth(components.ModeSignIn, StateLibrary)

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil
	}
	return m, nil
}

func (m Model) handleAuthKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.State = m.returnState
		m.AuthForm = nil
		return m, nil
	case "ctrl+s":
		// Flip between sign-in and sign-up
		mode := components.ModeSignUp
		if m.AuthForm != nil && m.AuthForm.Mode() == components.ModeSignUp {
			mode = components.ModeSignIn
		}
		m.AuthForm = components.NewAuthForm(mode)
		return m, m.AuthForm.Focus()
	case "ctrl+c":
		return m, tea.Quit
	}

	cmd, creds := m.AuthForm.Update(msg)
	if creds == nil {
		return m, cmd
	}

	m.AuthForm.SetBusy()
	if m.AuthForm.Mode() == components.ModeSignUp {
		return m, SignUpCmd(m.Session, creds.Username, creds.Email, creds.Password)
	}
	return m, SignInCmd(m.Session, creds.Username, creds.Password)
}

// gotoPage moves delta pages within bounds.
func (m Model) gotoPage(delta int) (tea.Model, tea.Cmd) {
	if m.page == nil {
		return m, nil
	}
	st, _ := m.Filters.Snapshot()
	target := st.Page + delta
	if target < 1 || target > m.page.TotalPages {
		return m, nil
	}
	m.Filters.SetPage(target)
	return m, nil
}

// openDetail switches to the detail view and starts the fetch.
func (m Model) openDetail(id int, returnTo ApplicationState) (tea.Model, tea.Cmd) {
	m.State = StateDetail
	m.returnState = returnTo
	m.detailID = id
	m.loadingDetail = true
	m.detailErr = nil
	m.Detail.SetGame(nil, nil)
	return m, tea.Batch(m.Spinner.Tick, LoadGameDetailCmd(m.CatalogSvc, id))
}

// openAuth switches to the auth view.
func (m Model) openAuth(mode components.AuthMode, returnTo ApplicationState) (tea.Model, tea.Cmd) {
	m.State = StateAuth
	m.returnState = returnTo
	m.AuthForm = components.NewAuthForm(mode)
	return m, m.AuthForm.Focus()
}

// toggleFavorite adds or removes a bookmark, enforcing the sign-in
// policy before any state change.
func (m *Model) toggleFavorite(game domain.Game) tea.Cmd {
	if _, signedIn := m.Session.Current(); !signedIn {
		return m.rejectUnauthenticated()
	}
	if m.Favorites.Contains(game.ID) {
		m.Favorites.Remove(game.ID)
		return m.setStatus(game.Name+" removed from your library", false)
	}
	m.Favorites.Add(domain.NewFavorite(game))
	return m.setStatus(game.Name+" added to your library", false)
}

// rejectUnauthenticated reports a library mutation attempted without a
// session. Nothing changes; the prompt points at the sign-in key.
func (m *Model) rejectUnauthenticated() tea.Cmd {
	m.logger.Debug("library mutation rejected", "reason", domain.ErrNotSignedIn)
	return m.setStatus("Sign in to manage your library (press i)", true)
}

// applyMutation translates a panel change into a filter store intent.
func (m *Model) applyMutation(mut components.Mutation) {
	switch mut.Kind {
	case components.SectionOrdering:
		m.Filters.SetOrdering(mut.Value)
	case components.SectionGenres:
		m.Filters.SetGenres(mut.IDs)
	case components.SectionPlatforms:
		m.Filters.SetPlatforms(mut.IDs)
	case components.SectionTags:
		m.Filters.SetTags(mut.IDs)
	case components.SectionYears:
		m.Filters.SetDates(mut.Value)
	case components.SectionRating:
		m.Filters.SetRating(mut.Rating)
	}
}
