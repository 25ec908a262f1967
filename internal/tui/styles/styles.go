package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	Violet     = lipgloss.Color("#8B5CF6")
	SlateDark  = lipgloss.Color("#1F2937")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Green      = lipgloss.Color("#10B981")
	Red        = lipgloss.Color("#EF4444")
	Yellow     = lipgloss.Color("#F59E0B")
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Violet)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)

	RatingStyle = lipgloss.NewStyle().
			Foreground(Yellow)

	HighlightStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(Violet).
			Padding(0, 1)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(SlateLight)
)

// Favorite markers
const (
	FavoriteChar   = "♥"
	UnfavoriteChar = " "
)

var FavoriteMark = lipgloss.NewStyle().Foreground(Red).Render(FavoriteChar)

// Pagination styles
var (
	PageCurrentStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(Violet).
				Padding(0, 1)

	PageStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Padding(0, 1)

	PageEllipsisStyle = lipgloss.NewStyle().
				Foreground(DimGray)
)

// Panel styles
var (
	SidebarStyle = lipgloss.NewStyle().
			Padding(0, 1)

	BrowserStyle = lipgloss.NewStyle().
			Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(Violet)

	FilterStyle = lipgloss.NewStyle().
			Foreground(White)
)
