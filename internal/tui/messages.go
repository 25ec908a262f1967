package tui

import (
	"ludo/internal/domain"
	"ludo/internal/filter"
	"ludo/internal/service"
)

// Message types for the TUI

// FiltersChangedMsg signals that the filter selection was mutated.
// Revision is the staleness token for the list request it triggers.
type FiltersChangedMsg struct {
	State    filter.State
	Revision uint64
}

// GamesLoadedMsg carries one page of catalog results. Revision echoes
// the filter revision the request was issued for; a response older
// than the current revision is stale and gets dropped.
type GamesLoadedMsg struct {
	Page     *service.GamePage
	Revision uint64
}

// GamesErrMsg signals a failed list request
type GamesErrMsg struct {
	Err      error
	Revision uint64
}

// GameDetailLoadedMsg carries a title's detail record and screenshots
type GameDetailLoadedMsg struct {
	Full *service.GameFull
	ID   int
}

// GameDetailErrMsg signals a failed detail fetch
type GameDetailErrMsg struct {
	Err error
	ID  int
}

// FilterOptionsLoadedMsg carries the taxonomy lists for the filter panel
type FilterOptionsLoadedMsg struct {
	Options *service.FilterOptions
}

// FilterOptionsErrMsg signals that the taxonomy fetch failed; the
// panel stays usable with ordering/year/rating sections only.
type FilterOptionsErrMsg struct {
	Err error
}

// AuthSuccessMsg signals a completed sign-in or sign-up
type AuthSuccessMsg struct {
	User *domain.User
}

// AuthErrMsg signals a failed sign-in or sign-up
type AuthErrMsg struct {
	Err error
}

// StatusExpiredMsg clears a transient status line
type StatusExpiredMsg struct {
	ID int
}
