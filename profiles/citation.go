package profiles

import (
	"github.com/hollis-git/lineagebackend/locale"
	"github.com/hollis-git/lineagebackend/models"
	"github.com/hollis-git/lineagebackend/repository"
)

// CitationProfileForObject builds the profile of a citation: a nested
// source summary plus the citation's own date and page reference.
func CitationProfileForObject(db repository.ReadStore, citation *models.Citation, loc *locale.Locale) map[string]any {
	sourceProfile := map[string]any{}
	if source := resolveSource(db, citation.SourceHandle); source != nil {
		sourceProfile = map[string]any{
			"author":    source.Author,
			"title":     source.Title,
			"pubinfo":   source.PubInfo,
			"gramps_id": source.GrampsID,
		}
	}
	return map[string]any{
		"source":    sourceProfile,
		"gramps_id": citation.GrampsID,
		"date":      loc.DisplayDate(citation.Date),
		"page":      citation.Page,
	}
}

// CitationProfileForHandle builds the profile of a citation by handle,
// returning an empty profile when the handle does not resolve.
func CitationProfileForHandle(db repository.ReadStore, handle string, loc *locale.Locale) map[string]any {
	citation := resolveCitation(db, handle)
	if citation == nil {
		return map[string]any{}
	}
	return CitationProfileForObject(db, citation, loc)
}

// MediaProfileForObject builds the profile of a media item.
func MediaProfileForObject(media *models.Media, loc *locale.Locale) map[string]any {
	return map[string]any{
		"gramps_id": media.GrampsID,
		"date":      loc.DisplayDate(media.Date),
	}
}

// MediaProfileForHandle builds the profile of a media item by handle,
// returning an empty profile when the handle does not resolve.
func MediaProfileForHandle(db repository.ReadStore, handle string, loc *locale.Locale) map[string]any {
	media := resolveMedia(db, handle)
	if media == nil {
		return map[string]any{}
	}
	return MediaProfileForObject(media, loc)
}
