package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"ludo/internal/filter"
	"ludo/internal/service"
	"ludo/internal/tui/styles"
)

// SectionKind identifies a filter panel section.
type SectionKind int

const (
	SectionOrdering SectionKind = iota
	SectionGenres
	SectionPlatforms
	SectionTags
	SectionYears
	SectionRating
)

// Mutation describes a committed change in one panel section. The
// receiver translates it into the matching filter store intent.
type Mutation struct {
	Kind   SectionKind
	IDs    []int  // Genres/Platforms/Tags: the full new selection
	Value  string // Ordering: sort key; Years: dates range ("" = cleared)
	Rating int    // Rating: new minimum threshold
}

// panelOption is one selectable row.
type panelOption struct {
	id       int
	value    string
	label    string
	selected bool
}

type panelSection struct {
	kind    SectionKind
	title   string
	radio   bool // single-select; toggling clears siblings
	options []panelOption
}

// FilterPanel is the sidebar that edits the catalog selection. Genre,
// platform and tag checklists arrive from the taxonomy fetch; ordering,
// year ranges and rating are fixed sets.
type FilterPanel struct {
	sections []panelSection
	active   int // active section index
	cursor   int // row within the visible options of the active section

	width   int
	height  int
	focused bool

	// Checklist narrowing
	narrowActive bool
	narrowInput  textinput.Model
	visible      []int // indices into the active section's options
}

// NewFilterPanel creates the panel with the fixed sections populated
// and the taxonomy sections empty until SetOptions.
func NewFilterPanel() *FilterPanel {
	ti := textinput.New()
	ti.Placeholder = "narrow..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle
	ti.CharLimit = 40

	p := &FilterPanel{narrowInput: ti}

	ordering := panelSection{kind: SectionOrdering, title: "Ordering", radio: true}
	for _, o := range filter.Orderings() {
		ordering.options = append(ordering.options, panelOption{
			value:    o.Value,
			label:    o.Label,
			selected: o.Value == filter.DefaultOrdering,
		})
	}

	years := panelSection{kind: SectionYears, title: "Release Years", radio: true}
	for _, o := range filter.YearRanges() {
		years.options = append(years.options, panelOption{value: o.Value, label: o.Label})
	}

	rating := panelSection{kind: SectionRating, title: "Min Rating", radio: true}
	for n := 0; n <= 5; n++ {
		label := strings.Repeat("★", n)
		if n == 0 {
			label = "Any"
		}
		rating.options = append(rating.options, panelOption{
			id:       n,
			value:    strconv.Itoa(n),
			label:    label,
			selected: n == 0,
		})
	}

	p.sections = []panelSection{
		ordering,
		{kind: SectionGenres, title: "Genres"},
		{kind: SectionPlatforms, title: "Platforms"},
		{kind: SectionTags, title: "Tags"},
		years,
		rating,
	}
	p.refreshVisible()
	return p
}

// SetOptions fills the taxonomy checklists.
func (p *FilterPanel) SetOptions(opts *service.FilterOptions) {
	genres := make([]panelOption, len(opts.Genres))
	for i, g := range opts.Genres {
		genres[i] = panelOption{id: g.ID, label: g.Name}
	}
	platforms := make([]panelOption, len(opts.Platforms))
	for i, pl := range opts.Platforms {
		platforms[i] = panelOption{id: pl.ID, label: pl.Name}
	}
	tags := make([]panelOption, len(opts.Tags))
	for i, t := range opts.Tags {
		tags[i] = panelOption{id: t.ID, label: t.Name}
	}

	for i := range p.sections {
		switch p.sections[i].kind {
		case SectionGenres:
			p.sections[i].options = genres
		case SectionPlatforms:
			p.sections[i].options = platforms
		case SectionTags:
			p.sections[i].options = tags
		}
	}
	p.refreshVisible()
}

// SyncState reconciles the check marks with the store's state, e.g.
// after a reset.
func (p *FilterPanel) SyncState(st filter.State) {
	for i := range p.sections {
		sec := &p.sections[i]
		switch sec.kind {
		case SectionOrdering:
			for j := range sec.options {
				sec.options[j].selected = sec.options[j].value == st.Ordering
			}
		case SectionGenres:
			syncIDs(sec, st.Genres)
		case SectionPlatforms:
			syncIDs(sec, st.Platforms)
		case SectionTags:
			syncIDs(sec, st.Tags)
		case SectionYears:
			for j := range sec.options {
				sec.options[j].selected = sec.options[j].value == st.Dates && st.Dates != ""
			}
		case SectionRating:
			for j := range sec.options {
				sec.options[j].selected = sec.options[j].id == st.Rating
			}
		}
	}
}

func syncIDs(sec *panelSection, ids []int) {
	want := make(map[int]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	for j := range sec.options {
		sec.options[j].selected = want[sec.options[j].id]
	}
}

// SetSize updates the component dimensions.
func (p *FilterPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetFocused toggles keyboard focus.
func (p *FilterPanel) SetFocused(focused bool) {
	p.focused = focused
	if !focused {
		p.closeNarrow()
	}
}

// Narrowing reports whether the checklist-narrowing input is active.
func (p *FilterPanel) Narrowing() bool {
	return p.narrowActive
}

// StartNarrow opens the narrowing input for the active section.
func (p *FilterPanel) StartNarrow() tea.Cmd {
	p.narrowActive = true
	p.narrowInput.SetValue("")
	p.refreshVisible()
	return p.narrowInput.Focus()
}

func (p *FilterPanel) closeNarrow() {
	p.narrowActive = false
	p.narrowInput.Blur()
	p.narrowInput.SetValue("")
	p.refreshVisible()
}

// UpdateNarrow feeds a key into the narrowing input.
func (p *FilterPanel) UpdateNarrow(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		p.closeNarrow()
		return nil
	case "enter":
		p.narrowActive = false
		p.narrowInput.Blur()
		return nil
	}
	var cmd tea.Cmd
	p.narrowInput, cmd = p.narrowInput.Update(msg)
	p.refreshVisible()
	return cmd
}

// NextSection activates the section to the right.
func (p *FilterPanel) NextSection() {
	p.active = (p.active + 1) % len(p.sections)
	p.cursor = 0
	p.closeNarrow()
}

// PrevSection activates the section to the left.
func (p *FilterPanel) PrevSection() {
	p.active = (p.active - 1 + len(p.sections)) % len(p.sections)
	p.cursor = 0
	p.closeNarrow()
}

// CursorUp moves up within the visible options.
func (p *FilterPanel) CursorUp() {
	if p.cursor > 0 {
		p.cursor--
	}
}

// CursorDown moves down within the visible options.
func (p *FilterPanel) CursorDown() {
	if p.cursor < len(p.visible)-1 {
		p.cursor++
	}
}

// Toggle flips the option under the cursor and reports the section's
// new selection.
func (p *FilterPanel) Toggle() (Mutation, bool) {
	if p.cursor < 0 || p.cursor >= len(p.visible) {
		return Mutation{}, false
	}
	sec := &p.sections[p.active]
	idx := p.visible[p.cursor]
	opt := &sec.options[idx]

	if sec.radio {
		was := opt.selected
		for j := range sec.options {
			sec.options[j].selected = false
		}
		// Year ranges may be deselected entirely; ordering and rating
		// always keep exactly one choice
		if sec.kind == SectionYears && was {
			opt.selected = false
		} else {
			opt.selected = true
		}
	} else {
		opt.selected = !opt.selected
	}

	return p.mutation(sec), true
}

func (p *FilterPanel) mutation(sec *panelSection) Mutation {
	m := Mutation{Kind: sec.kind}
	switch sec.kind {
	case SectionOrdering, SectionYears:
		for _, o := range sec.options {
			if o.selected {
				m.Value = o.value
				break
			}
		}
	case SectionRating:
		for _, o := range sec.options {
			if o.selected {
				m.Rating = o.id
				break
			}
		}
	default:
		for _, o := range sec.options {
			if o.selected {
				m.IDs = append(m.IDs, o.id)
			}
		}
	}
	return m
}

// refreshVisible recomputes the filtered option indices for the active
// section.
func (p *FilterPanel) refreshVisible() {
	sec := p.sections[p.active]
	query := p.narrowInput.Value()

	p.visible = p.visible[:0]
	for i, opt := range sec.options {
		if query == "" || fuzzy.MatchNormalizedFold(query, opt.label) {
			p.visible = append(p.visible, i)
		}
	}
	if p.cursor >= len(p.visible) {
		p.cursor = len(p.visible) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// SelectionSummary renders the active-filter chips shown under the
// panel, e.g. "3 Genres · 1 Platform".
func (p *FilterPanel) SelectionSummary() string {
	var chips []string
	for _, sec := range p.sections {
		switch sec.kind {
		case SectionGenres, SectionPlatforms, SectionTags:
			n := 0
			for _, o := range sec.options {
				if o.selected {
					n++
				}
			}
			if n > 0 {
				chips = append(chips, fmt.Sprintf("%d %s", n, sec.title))
			}
		}
	}
	if len(chips) == 0 {
		return ""
	}
	return styles.AccentStyle.Render(strings.Join(chips, " · "))
}

// View renders the panel.
func (p *FilterPanel) View() string {
	var b strings.Builder

	sec := p.sections[p.active]

	// Section tabs
	var tabs []string
	for i, s := range p.sections {
		if i == p.active {
			tabs = append(tabs, styles.HighlightStyle.Render(s.title))
		} else {
			tabs = append(tabs, styles.DimStyle.Render(s.title))
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n\n")

	if p.narrowActive || p.narrowInput.Value() != "" {
		b.WriteString(p.narrowInput.View())
		b.WriteString("\n")
	}

	if len(sec.options) == 0 {
		b.WriteString(styles.DimStyle.Render("loading..."))
		return b.String()
	}

	maxRows := p.height - 5
	if maxRows < 1 {
		maxRows = 1
	}
	start := 0
	if p.cursor >= maxRows {
		start = p.cursor - maxRows + 1
	}

	for row := start; row < len(p.visible) && row < start+maxRows; row++ {
		opt := sec.options[p.visible[row]]

		box := "( )"
		if sec.radio {
			if opt.selected {
				box = "(•)"
			}
		} else {
			box = "[ ]"
			if opt.selected {
				box = "[x]"
			}
		}

		line := fmt.Sprintf("%s %s", box, opt.label)
		if row == p.cursor && p.focused {
			line = styles.SelectedRowStyle.Width(p.width - 2).Render(line)
		} else if opt.selected {
			line = styles.AccentStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if summary := p.SelectionSummary(); summary != "" {
		b.WriteString("\n")
		b.WriteString(summary)
	}
	return strings.TrimRight(b.String(), "\n")
}
