package tui

// PageWindow is the set of page-number controls to render for the
// current position in a paged result set. The window is up to 5 pages
// wide, centered on the current page where possible, with first/last
// shortcuts and ellipses when the window does not touch the edges.
type PageWindow struct {
	Pages            []int // Page numbers inside the window
	ShowFirst        bool  // Render a leading "1" shortcut
	LeadingEllipsis  bool  // Render "…" between "1" and the window
	ShowLast         bool  // Render a trailing last-page shortcut
	TrailingEllipsis bool  // Render "…" between the window and the last page
}

// NewPageWindow computes the window for currentPage of totalPages.
// With one page or fewer there is nothing to navigate and the window
// is empty.
func NewPageWindow(currentPage, totalPages int) PageWindow {
	if totalPages <= 1 {
		return PageWindow{}
	}
	if currentPage < 1 {
		currentPage = 1
	}
	if currentPage > totalPages {
		currentPage = totalPages
	}

	start := currentPage - 2
	if start < 1 {
		start = 1
	}
	end := start + 4
	if end > totalPages {
		end = totalPages
	}
	// Pull the window back down when it hit the ceiling short of 5 wide
	if end-start < 4 {
		start = end - 4
		if start < 1 {
			start = 1
		}
	}

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}

	return PageWindow{
		Pages:            pages,
		ShowFirst:        start > 1,
		LeadingEllipsis:  start > 2,
		ShowLast:         end < totalPages,
		TrailingEllipsis: end < totalPages-1,
	}
}

// Empty reports whether there is nothing to render.
func (w PageWindow) Empty() bool {
	return len(w.Pages) == 0
}
