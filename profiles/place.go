package profiles

import (
	"github.com/hollis-git/lineagebackend/locale"
	"github.com/hollis-git/lineagebackend/models"
	"github.com/hollis-git/lineagebackend/repository"
)

// PlaceProfileForObject builds the profile of a place. With parentPlaces
// set, the enclosing-place chain is walked and each ancestor profiled with
// parentPlaces off, so recursion stops after one level. The walk detects
// cycles: a place seen twice terminates the chain.
func PlaceProfileForObject(db repository.ReadStore, place *models.Place, loc *locale.Locale, parentPlaces bool) map[string]any {
	lat, long, ok := ConvLatLon(place.Lat, place.Long)
	profile := map[string]any{
		"gramps_id": place.GrampsID,
		"type":      loc.TranslateType("PlaceType", place.PlaceType.XMLString()),
		"name":      place.Name.Value,
	}
	altNames := make([]any, 0, len(place.AltNames))
	for _, n := range place.AltNames {
		altNames = append(altNames, n.Value)
	}
	profile["alternate_names"] = altNames
	if ok {
		profile["lat"] = lat
		profile["long"] = long
	} else {
		profile["lat"] = nil
		profile["long"] = nil
	}
	if parentPlaces {
		var chain []string
		seen := make(map[string]bool)
		current := place
		for {
			handle := current.ParentHandle()
			if handle == "" || seen[handle] {
				break
			}
			parent := resolvePlace(db, handle)
			if parent == nil {
				break
			}
			seen[handle] = true
			chain = append(chain, handle)
			current = parent
		}
		parents := make([]any, 0, len(chain))
		for _, handle := range chain {
			parent := resolvePlace(db, handle)
			if parent == nil {
				continue
			}
			parents = append(parents, PlaceProfileForObject(db, parent, loc, false))
		}
		profile["parent_places"] = parents
	}
	return profile
}

// PlaceProfileForHandle builds the profile of a place by handle, returning
// an empty profile when the handle does not resolve.
func PlaceProfileForHandle(db repository.ReadStore, handle string, loc *locale.Locale, parentPlaces bool) map[string]any {
	place := resolvePlace(db, handle)
	if place == nil {
		return map[string]any{}
	}
	return PlaceProfileForObject(db, place, loc, parentPlaces)
}
