package rawg

import "ludo/internal/domain"

// Mapping from API DTOs to domain entities.

func mapGame(dto gameDTO) domain.Game {
	g := domain.Game{
		ID:              dto.ID,
		Slug:            dto.Slug,
		Name:            dto.Name,
		Released:        dto.Released,
		TBA:             dto.TBA,
		BackgroundImage: dto.BackgroundImage,
		Rating:          dto.Rating,
		RatingsCount:    dto.RatingsCount,
		Metacritic:      dto.Metacritic,
		Playtime:        dto.Playtime,
		Description:     dto.DescriptionRaw,
		Genres:          mapGenres(dto.Genres),
		Platforms:       mapPlatforms(dto.ParentPlatforms),
		Tags:            mapTags(dto.Tags),
		Stores:          mapStores(dto.Stores),
	}
	if dto.ESRBRating != nil {
		g.ESRB = dto.ESRBRating.Name
	}
	if len(dto.Screenshots) > 0 {
		g.ShortScreenshots = mapScreenshots(dto.Screenshots)
	}
	return g
}

func mapGames(dtos []gameDTO) []domain.Game {
	games := make([]domain.Game, len(dtos))
	for i, dto := range dtos {
		games[i] = mapGame(dto)
	}
	return games
}

func mapGenres(dtos []genreDTO) []domain.Genre {
	if len(dtos) == 0 {
		return nil
	}
	genres := make([]domain.Genre, len(dtos))
	for i, dto := range dtos {
		genres[i] = domain.Genre{ID: dto.ID, Name: dto.Name, Slug: dto.Slug}
	}
	return genres
}

// mapPlatforms unwraps the nested platform objects.
func mapPlatforms(dtos []platformWrapperDTO) []domain.Platform {
	if len(dtos) == 0 {
		return nil
	}
	platforms := make([]domain.Platform, len(dtos))
	for i, dto := range dtos {
		platforms[i] = domain.Platform{
			ID:   dto.Platform.ID,
			Name: dto.Platform.Name,
			Slug: dto.Platform.Slug,
		}
	}
	return platforms
}

func mapTags(dtos []tagDTO) []domain.Tag {
	if len(dtos) == 0 {
		return nil
	}
	tags := make([]domain.Tag, len(dtos))
	for i, dto := range dtos {
		tags[i] = domain.Tag{ID: dto.ID, Name: dto.Name, Slug: dto.Slug, Language: dto.Language}
	}
	return tags
}

func mapStores(dtos []storeWrapperDTO) []domain.Store {
	if len(dtos) == 0 {
		return nil
	}
	stores := make([]domain.Store, len(dtos))
	for i, dto := range dtos {
		stores[i] = domain.Store{ID: dto.Store.ID, Name: dto.Store.Name, Slug: dto.Store.Slug}
	}
	return stores
}

func mapScreenshots(dtos []screenshotDTO) []domain.Screenshot {
	shots := make([]domain.Screenshot, len(dtos))
	for i, dto := range dtos {
		shots[i] = domain.Screenshot{ID: dto.ID, Image: dto.Image}
	}
	return shots
}
