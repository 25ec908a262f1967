package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"golang.org/x/term"

	"ludo/internal/config"
	"ludo/internal/favorites"
	"ludo/internal/filter"
	"ludo/internal/log"
	"ludo/internal/rawg"
	"ludo/internal/service"
	"ludo/internal/session"
	"ludo/internal/store"
	"ludo/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	// Handle version flag
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("ludo %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A local .env is the easiest place to keep the API key during
	// development; absence is not an error
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := log.Setup(cfg.Logging.File, cfg.Logging.Level)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting ludo", "version", Version)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("ludo must run in an interactive terminal")
	}

	if !cfg.HasAPIKey() {
		// Not fatal: requests go out without a key and fail upstream,
		// which the browse view reports with a retry hint
		fmt.Fprintln(os.Stderr, "Warning: no catalog API key configured.")
		fmt.Fprintln(os.Stderr, "Set LUDO_API_KEY (or RAWG_API_KEY), or add catalog.api_key to the config file.")
		fmt.Fprintln(os.Stderr, "Get a free key at https://rawg.io/apidocs")
	}

	db, err := store.Open(config.DataPath())
	if err != nil {
		// Keep running without persistence rather than refusing to start
		logger.Warn("could not open data file, bookmarks will not persist", "error", err)
		db, _ = store.Open("")
	}
	defer db.Close()

	favs := favorites.NewStore(db, logger)
	sess := session.NewManager(session.NewLocalProvider(db), db, logger)

	client := rawg.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.APIKey, logger)
	catalogSvc := service.NewCatalogService(client, logger)

	filters := filter.NewStore()
	if cfg.Catalog.PageSize > 0 && cfg.Catalog.PageSize != filter.DefaultPageSize {
		filters.SetPageSize(cfg.Catalog.PageSize)
	}

	model := tui.NewModel(catalogSvc, filters, favs, sess, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	// Every filter change is pushed into the program loop so the view
	// refetches without polling
	filters.Subscribe(func(st filter.State, rev uint64) {
		p.Send(tui.FiltersChangedMsg{State: st, Revision: rev})
	})

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
