package rawg

// Response shapes for the RAWG API. Every remote payload is decoded
// into one of these before anything downstream sees it; untyped maps
// never leave this package.

// listEnvelope is the paged wrapper shared by list endpoints.
type listEnvelope[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// gameDTO covers both list summaries and detail payloads; detail-only
// fields stay zero on list responses.
type gameDTO struct {
	ID              int                  `json:"id"`
	Slug            string               `json:"slug"`
	Name            string               `json:"name"`
	Released        string               `json:"released"`
	TBA             bool                 `json:"tba"`
	BackgroundImage string               `json:"background_image"`
	Rating          float64              `json:"rating"`
	RatingsCount    int                  `json:"ratings_count"`
	Metacritic      int                  `json:"metacritic"`
	Playtime        int                  `json:"playtime"`
	DescriptionRaw  string               `json:"description_raw"`
	ESRBRating      *esrbDTO             `json:"esrb_rating"`
	Genres          []genreDTO           `json:"genres"`
	ParentPlatforms []platformWrapperDTO `json:"parent_platforms"`
	Tags            []tagDTO             `json:"tags"`
	Stores          []storeWrapperDTO    `json:"stores"`
	Screenshots     []screenshotDTO      `json:"short_screenshots"`
}

type esrbDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type genreDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// platformWrapperDTO reflects the catalog's wrapped platform shape:
// each entry nests the platform record inside an inner object. The
// mapper unwraps it; the wrapper never reaches the domain model.
type platformWrapperDTO struct {
	Platform platformDTO `json:"platform"`
}

type platformDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type tagDTO struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Language string `json:"language"`
}

// storeWrapperDTO nests the storefront record the same way platforms
// are nested.
type storeWrapperDTO struct {
	ID    int      `json:"id"`
	Store storeDTO `json:"store"`
}

type storeDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type screenshotDTO struct {
	ID    int    `json:"id"`
	Image string `json:"image"`
}
