package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ludo/internal/domain"
	"ludo/internal/tui/styles"
)

// DetailPane renders a title's full record with its screenshots.
type DetailPane struct {
	game  *domain.Game
	shots []domain.Screenshot

	shotIndex int
	scroll    int

	width  int
	height int

	isFavorite func(id int) bool
}

// NewDetailPane creates a detail pane.
func NewDetailPane(isFavorite func(id int) bool) *DetailPane {
	return &DetailPane{isFavorite: isFavorite}
}

// SetGame replaces the displayed title.
func (d *DetailPane) SetGame(game *domain.Game, shots []domain.Screenshot) {
	d.game = game
	d.shots = shots
	d.shotIndex = 0
	d.scroll = 0
}

// Game returns the displayed title.
func (d *DetailPane) Game() (*domain.Game, bool) {
	if d.game == nil {
		return nil, false
	}
	return d.game, true
}

// SetSize updates the component dimensions.
func (d *DetailPane) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// NextScreenshot cycles forward through the screenshot references.
func (d *DetailPane) NextScreenshot() {
	if len(d.shots) > 0 {
		d.shotIndex = (d.shotIndex + 1) % len(d.shots)
	}
}

// PrevScreenshot cycles backward.
func (d *DetailPane) PrevScreenshot() {
	if len(d.shots) > 0 {
		d.shotIndex = (d.shotIndex - 1 + len(d.shots)) % len(d.shots)
	}
}

// ScrollUp scrolls the description up.
func (d *DetailPane) ScrollUp() {
	if d.scroll > 0 {
		d.scroll--
	}
}

// ScrollDown scrolls the description down.
func (d *DetailPane) ScrollDown() {
	d.scroll++
}

// View renders the pane.
func (d *DetailPane) View() string {
	if d.game == nil {
		return styles.DimStyle.Render("no title loaded")
	}
	g := d.game

	var b strings.Builder

	title := styles.TitleStyle.Render(g.Name)
	if d.isFavorite != nil && d.isFavorite(g.ID) {
		title += " " + styles.FavoriteMark
	}
	b.WriteString(title)
	b.WriteString("\n")

	var facts []string
	facts = append(facts, "Released: "+g.FormattedReleased())
	if g.Rating > 0 {
		facts = append(facts, styles.RatingStyle.Render(fmt.Sprintf("★ %.1f", g.Rating))+
			fmt.Sprintf(" (%d ratings)", g.RatingsCount))
	}
	if g.HasMetacritic() {
		facts = append(facts, fmt.Sprintf("Metacritic %d", g.Metacritic))
	}
	if pt := g.FormattedPlaytime(); pt != "" {
		facts = append(facts, "Playtime "+pt)
	}
	if g.ESRB != "" {
		facts = append(facts, "ESRB "+g.ESRB)
	}
	b.WriteString(styles.SubtitleStyle.Render(strings.Join(facts, "  ·  ")))
	b.WriteString("\n\n")

	if len(g.Genres) > 0 {
		b.WriteString(styles.DimStyle.Render("Genres:    "))
		b.WriteString(joinNames(genreNames(g.Genres)))
		b.WriteString("\n")
	}
	if len(g.Platforms) > 0 {
		b.WriteString(styles.DimStyle.Render("Platforms: "))
		b.WriteString(joinNames(platformNames(g.Platforms)))
		b.WriteString("\n")
	}
	if len(g.Stores) > 0 {
		b.WriteString(styles.DimStyle.Render("Stores:    "))
		b.WriteString(joinNames(storeNames(g.Stores)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if g.Description != "" {
		b.WriteString(d.renderDescription(g.Description))
		b.WriteString("\n")
	}

	b.WriteString(d.renderScreenshots())
	return strings.TrimRight(b.String(), "\n")
}

func (d *DetailPane) renderDescription(text string) string {
	wrapped := lipgloss.NewStyle().Width(d.width - 2).Render(text)
	lines := strings.Split(wrapped, "\n")

	// Leave room for the header block and screenshot footer
	maxLines := d.height - 12
	if maxLines < 3 {
		maxLines = 3
	}
	if d.scroll > len(lines)-maxLines {
		d.scroll = len(lines) - maxLines
	}
	if d.scroll < 0 {
		d.scroll = 0
	}

	end := d.scroll + maxLines
	if end > len(lines) {
		end = len(lines)
	}
	out := strings.Join(lines[d.scroll:end], "\n")
	if end < len(lines) {
		out += "\n" + styles.DimStyle.Render("↓ more (j/k to scroll)")
	}
	return out + "\n"
}

func (d *DetailPane) renderScreenshots() string {
	if len(d.shots) == 0 {
		return styles.DimStyle.Render("No screenshots available.")
	}
	shot := d.shots[d.shotIndex]
	header := fmt.Sprintf("Screenshot %d/%d (n/p to cycle)", d.shotIndex+1, len(d.shots))
	return styles.SubtitleStyle.Render(header) + "\n" + styles.DimStyle.Render(shot.Image)
}

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}

func genreNames(genres []domain.Genre) []string {
	out := make([]string, len(genres))
	for i, g := range genres {
		out[i] = g.Name
	}
	return out
}

func platformNames(platforms []domain.Platform) []string {
	out := make([]string, len(platforms))
	for i, p := range platforms {
		out[i] = p.Name
	}
	return out
}

func storeNames(stores []domain.Store) []string {
	out := make([]string, len(stores))
	for i, s := range stores {
		out[i] = s.Name
	}
	return out
}
