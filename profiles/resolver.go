package profiles

import (
	"github.com/hollis-git/lineagebackend/models"
	"github.com/hollis-git/lineagebackend/repository"
)

// The resolver functions shield profile assembly from missing or dangling
// handles: every lookup failure, including an empty handle, resolves to
// nil, and callers emit an empty profile in that case. Sibling fields of a
// profile still populate when one reference is broken.

func resolvePerson(db repository.ReadStore, handle string) *models.Person {
	if handle == "" {
		return nil
	}
	person, err := db.PersonFromHandle(handle)
	if err != nil {
		return nil
	}
	return person
}

func resolveFamily(db repository.ReadStore, handle string) *models.Family {
	if handle == "" {
		return nil
	}
	family, err := db.FamilyFromHandle(handle)
	if err != nil {
		return nil
	}
	return family
}

func resolveEvent(db repository.ReadStore, handle string) *models.Event {
	if handle == "" {
		return nil
	}
	event, err := db.EventFromHandle(handle)
	if err != nil {
		return nil
	}
	return event
}

func resolvePlace(db repository.ReadStore, handle string) *models.Place {
	if handle == "" {
		return nil
	}
	place, err := db.PlaceFromHandle(handle)
	if err != nil {
		return nil
	}
	return place
}

func resolveCitation(db repository.ReadStore, handle string) *models.Citation {
	if handle == "" {
		return nil
	}
	citation, err := db.CitationFromHandle(handle)
	if err != nil {
		return nil
	}
	return citation
}

func resolveSource(db repository.ReadStore, handle string) *models.Source {
	if handle == "" {
		return nil
	}
	source, err := db.SourceFromHandle(handle)
	if err != nil {
		return nil
	}
	return source
}

func resolveMedia(db repository.ReadStore, handle string) *models.Media {
	if handle == "" {
		return nil
	}
	media, err := db.MediaFromHandle(handle)
	if err != nil {
		return nil
	}
	return media
}

// ResolveObject resolves a handle of any kind, or nil when the handle is
// empty, unknown, or dangling.
func ResolveObject(db repository.ReadStore, kind repository.Kind, handle string) models.Object {
	if handle == "" {
		return nil
	}
	obj, err := db.ObjectFromHandle(kind, handle)
	if err != nil {
		return nil
	}
	return obj
}
