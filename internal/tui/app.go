package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"ludo/internal/favorites"
	"ludo/internal/filter"
	"ludo/internal/service"
	"ludo/internal/session"
	"ludo/internal/tui/components"
	"ludo/internal/tui/styles"
)

// ApplicationState represents the current view of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateDetail
	StateLibrary
	StateAuth
	StateHelp
)

// FocusPane identifies which browse pane has keyboard focus
type FocusPane int

const (
	FocusList FocusPane = iota
	FocusPanel
)

// Layout proportions for the browse view
const (
	SidebarPercent  = 32
	MinSidebarWidth = 24
	ChromeHeight    = 3 // header + footer + status
)

// Model is the main Bubble Tea model for the application
type Model struct {
	State ApplicationState
	Ready bool

	// Collaborators
	CatalogSvc *service.CatalogService
	Filters    *filter.Store
	Favorites  *favorites.Store
	Session    *session.Manager

	// Components
	GameList    *components.GameList
	FilterPanel *components.FilterPanel
	Detail      *components.DetailPane
	Library     *components.LibraryList
	AuthForm    *components.AuthForm
	SearchInput textinput.Model
	Spinner     spinner.Model

	// Dimensions
	Width  int
	Height int

	// Browse state
	Focus        FocusPane
	searchActive bool
	page         *service.GamePage
	loadingList  bool
	listErr      error

	// Detail state
	detailID      int
	loadingDetail bool
	detailErr     error
	returnState   ApplicationState

	// Transient status line
	StatusMsg   string
	StatusIsErr bool
	statusID    int

	logger *slog.Logger
}

// NewModel creates the application model
func NewModel(
	catalogSvc *service.CatalogService,
	filters *filter.Store,
	favs *favorites.Store,
	sess *session.Manager,
	logger *slog.Logger,
) Model {
	if logger == nil {
		logger = slog.Default()
	}

	search := textinput.New()
	search.Placeholder = "search games..."
	search.Prompt = "/ "
	search.PromptStyle = styles.FilterPromptStyle
	search.TextStyle = styles.FilterStyle
	search.CharLimit = 80

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.AccentStyle

	m := Model{
		State:      StateBrowsing,
		CatalogSvc: catalogSvc,
		Filters:    filters,
		Favorites:  favs,
		Session:    sess,

		GameList:    components.NewGameList(favs.Contains),
		FilterPanel: components.NewFilterPanel(),
		Detail:      components.NewDetailPane(favs.Contains),
		Library:     components.NewLibraryList(),
		SearchInput: search,
		Spinner:     sp,

		returnState: StateBrowsing,
		loadingList: true, // Init issues the first list request
		logger:      logger,
	}

	st, _ := filters.Snapshot()
	m.FilterPanel.SyncState(st)
	return m
}

// Init starts the initial loads.
func (m Model) Init() tea.Cmd {
	st, rev := m.Filters.Snapshot()
	return tea.Batch(
		m.Spinner.Tick,
		LoadGamesCmd(m.CatalogSvc, st, rev),
		LoadFilterOptionsCmd(m.CatalogSvc),
	)
}

// Update routes messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case spinner.TickMsg:
		if !m.loadingList && !m.loadingDetail {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case FiltersChangedMsg:
		m.FilterPanel.SyncState(msg.State)
		m.loadingList = true
		m.listErr = nil
		return m, tea.Batch(m.Spinner.Tick, LoadGamesCmd(m.CatalogSvc, msg.State, msg.Revision))

	case GamesLoadedMsg:
		// A response for a superseded selection is stale; the request
		// for the newer revision is still in flight
		if msg.Revision < m.Filters.Revision() {
			m.logger.Debug("dropping stale list response", "revision", msg.Revision)
			return m, nil
		}
		m.loadingList = false
		m.listErr = nil
		m.page = msg.Page
		m.GameList.SetGames(msg.Page.Games)
		return m, nil

	case GamesErrMsg:
		if msg.Revision < m.Filters.Revision() {
			return m, nil
		}
		m.loadingList = false
		m.listErr = msg.Err
		m.logger.Error("game list load failed", "error", msg.Err)
		return m, nil

	case GameDetailLoadedMsg:
		if msg.ID != m.detailID {
			return m, nil
		}
		m.loadingDetail = false
		m.detailErr = nil
		m.Detail.SetGame(msg.Full.Game, msg.Full.Screenshots)
		return m, nil

	case GameDetailErrMsg:
		if msg.ID != m.detailID {
			return m, nil
		}
		m.loadingDetail = false
		m.detailErr = msg.Err
		m.logger.Error("detail load failed", "id", msg.ID, "error", msg.Err)
		return m, nil

	case FilterOptionsLoadedMsg:
		m.FilterPanel.SetOptions(msg.Options)
		st, _ := m.Filters.Snapshot()
		m.FilterPanel.SyncState(st)
		return m, nil

	case FilterOptionsErrMsg:
		m.logger.Warn("taxonomy load failed", "error", msg.Err)
		cmd := m.setStatus("Failed to load filter options", true)
		return m, cmd

	case AuthSuccessMsg:
		m.State = m.returnState
		m.AuthForm = nil
		if m.State == StateLibrary {
			m.Library.SetEntries(m.Favorites.All())
		}
		cmd := m.setStatus("Welcome back, "+msg.User.Username+"!", false)
		return m, cmd

	case AuthErrMsg:
		if m.AuthForm != nil {
			m.AuthForm.SetError(msg.Err.Error())
		}
		return m, nil

	case StatusExpiredMsg:
		if msg.ID == m.statusID {
			m.StatusMsg = ""
			m.StatusIsErr = false
		}
		return m, nil
	}

	return m, nil
}

// resize propagates new dimensions to the components.
func (m *Model) resize() {
	sidebarWidth := m.Width * SidebarPercent / 100
	if sidebarWidth < MinSidebarWidth {
		sidebarWidth = MinSidebarWidth
	}
	contentHeight := m.Height - ChromeHeight

	m.FilterPanel.SetSize(sidebarWidth, contentHeight)
	m.GameList.SetSize(m.Width-sidebarWidth-2, contentHeight)
	m.Detail.SetSize(m.Width-2, contentHeight)
	m.Library.SetSize(m.Width-2, contentHeight)
	m.SearchInput.Width = m.Width / 2
}

// setStatus shows a transient status line for a few seconds.
func (m *Model) setStatus(msg string, isErr bool) tea.Cmd {
	m.StatusMsg = msg
	m.StatusIsErr = isErr
	m.statusID++
	return ClearStatusCmd(m.statusID, statusTTL)
}
