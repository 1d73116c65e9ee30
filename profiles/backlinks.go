package profiles

import (
	"strings"

	"github.com/hollis-git/lineagebackend/locale"
	"github.com/hollis-git/lineagebackend/models"
	"github.com/hollis-git/lineagebackend/repository"
)

// GetBacklinks groups the handles of every object referencing the given
// handle by lowercased class name.
func GetBacklinks(db repository.ReadStore, handle string) map[string][]string {
	backlinks := map[string][]string{}
	links, err := db.FindBacklinkHandles(handle, nil)
	if err != nil {
		return backlinks
	}
	for _, link := range links {
		key := strings.ToLower(link.Class)
		backlinks[key] = append(backlinks[key], link.Handle)
	}
	return backlinks
}

// ReferenceProfile builds bare profiles for every object referencing the
// given one, grouped by lowercased class name. Only classes with a profile
// shape are included.
func ReferenceProfile(db repository.ReadStore, obj models.Object, loc *locale.Locale) map[string]any {
	backlinks := GetBacklinks(db, obj.GetHandle())
	profile := map[string]any{}
	none := NewOptions()
	if handles, ok := backlinks["person"]; ok {
		people := make([]any, 0, len(handles))
		for _, h := range handles {
			people = append(people, PersonProfileForHandle(db, h, none, loc))
		}
		profile["person"] = people
	}
	if handles, ok := backlinks["family"]; ok {
		families := make([]any, 0, len(handles))
		for _, h := range handles {
			families = append(families, FamilyProfileForHandle(db, h, none, loc))
		}
		profile["family"] = families
	}
	if handles, ok := backlinks["event"]; ok {
		events := make([]any, 0, len(handles))
		for _, h := range handles {
			events = append(events, EventProfileForHandle(db, h, none, nil, "", loc, ""))
		}
		profile["event"] = events
	}
	if handles, ok := backlinks["media"]; ok {
		media := make([]any, 0, len(handles))
		for _, h := range handles {
			media = append(media, MediaProfileForHandle(db, h, loc))
		}
		profile["media"] = media
	}
	if handles, ok := backlinks["citation"]; ok {
		citations := make([]any, 0, len(handles))
		for _, h := range handles {
			citations = append(citations, CitationProfileForHandle(db, h, loc))
		}
		profile["citation"] = citations
	}
	if handles, ok := backlinks["place"]; ok {
		places := make([]any, 0, len(handles))
		for _, h := range handles {
			places = append(places, PlaceProfileForHandle(db, h, loc, true))
		}
		profile["place"] = places
	}
	return profile
}
