package rawg

import (
	"net/url"
	"strconv"
	"strings"

	"ludo/internal/filter"
)

// BuildQuery maps a filter selection onto the catalog's query-parameter
// contract. Empty and default fields are omitted entirely; page and
// page_size are always present. url.Values encodes keys in sorted
// order, so the same selection always yields the same query string.
func BuildQuery(st filter.State) url.Values {
	v := url.Values{}
	if st.Search != "" {
		v.Set("search", st.Search)
	}
	if len(st.Genres) > 0 {
		v.Set("genres", joinIDs(st.Genres))
	}
	if len(st.Platforms) > 0 {
		v.Set("platforms", joinIDs(st.Platforms))
	}
	if len(st.Tags) > 0 {
		v.Set("tags", joinIDs(st.Tags))
	}
	if st.Dates != "" {
		v.Set("dates", st.Dates)
	}
	// rating 0 means unrestricted; the parameter is omitted, not sent as 0
	if st.Rating > 0 {
		v.Set("rating", strconv.Itoa(st.Rating))
	}
	if st.Ordering != "" {
		v.Set("ordering", st.Ordering)
	}

	page := st.Page
	if page < 1 {
		page = 1
	}
	pageSize := st.PageSize
	if pageSize < 1 {
		pageSize = filter.DefaultPageSize
	}
	v.Set("page", strconv.Itoa(page))
	v.Set("page_size", strconv.Itoa(pageSize))
	return v
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
