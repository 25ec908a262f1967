package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"ludo/internal/filter"
	"ludo/internal/service"
	"ludo/internal/session"
)

// Command factories for async operations

const requestTimeout = 30 * time.Second

// LoadGamesCmd fetches one page of catalog results for the given
// selection. The revision tags the response so stale results can be
// discarded.
func LoadGamesCmd(svc *service.CatalogService, st filter.State, revision uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		page, err := svc.ListPage(ctx, st)
		if err != nil {
			return GamesErrMsg{Err: err, Revision: revision}
		}
		return GamesLoadedMsg{Page: page, Revision: revision}
	}
}

// LoadGameDetailCmd fetches a title's detail record and screenshots
func LoadGameDetailCmd(svc *service.CatalogService, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		full, err := svc.GameFull(ctx, id)
		if err != nil {
			return GameDetailErrMsg{Err: err, ID: id}
		}
		return GameDetailLoadedMsg{Full: full, ID: id}
	}
}

// LoadFilterOptionsCmd fetches the taxonomy lists for the filter panel
func LoadFilterOptionsCmd(svc *service.CatalogService) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		options, err := svc.FilterOptions(ctx)
		if err != nil {
			return FilterOptionsErrMsg{Err: err}
		}
		return FilterOptionsLoadedMsg{Options: options}
	}
}

// SignInCmd authenticates against the identity provider
func SignInCmd(mgr *session.Manager, username, password string) tea.Cmd {
	return func() tea.Msg {
		user, err := mgr.SignIn(username, password)
		if err != nil {
			return AuthErrMsg{Err: err}
		}
		return AuthSuccessMsg{User: user}
	}
}

// SignUpCmd registers a new identity and signs it in
func SignUpCmd(mgr *session.Manager, username, email, password string) tea.Cmd {
	return func() tea.Msg {
		user, err := mgr.SignUp(username, email, password)
		if err != nil {
			return AuthErrMsg{Err: err}
		}
		return AuthSuccessMsg{User: user}
	}
}

// ClearStatusCmd expires a transient status line after d
func ClearStatusCmd(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return StatusExpiredMsg{ID: id}
	})
}
