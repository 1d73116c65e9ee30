package profiles

import (
	"github.com/hollis-git/lineagebackend/locale"
	"github.com/hollis-git/lineagebackend/models"
	"github.com/hollis-git/lineagebackend/repository"
)

// MarriageProfile returns the best available marriage profile for a
// family, together with the event it was built from.
func MarriageProfile(db repository.ReadStore, family *models.Family, opts Options, loc *locale.Locale) (map[string]any, *models.Event) {
	event, err := db.MarriageOrFallback(family)
	if err != nil || event == nil {
		return map[string]any{}, nil
	}
	return EventProfileForObject(db, event, opts, nil, "", loc, ""), event
}

// DivorceProfile returns the best available divorce profile for a family,
// together with the event it was built from.
func DivorceProfile(db repository.ReadStore, family *models.Family, opts Options, loc *locale.Locale) (map[string]any, *models.Event) {
	event, err := db.DivorceOrFallback(family)
	if err != nil || event == nil {
		return map[string]any{}, nil
	}
	return EventProfileForObject(db, event, opts, nil, "", loc, ""), event
}

// FamilyProfileForObject builds the profile of a family: nested person
// profiles for the parents and children, marriage/divorce profiles, and a
// derived family surname.
func FamilyProfileForObject(db repository.ReadStore, family *models.Family, opts Options, loc *locale.Locale) map[string]any {
	forwarded := NewOptions()
	if opts.Has(OptRatings) {
		forwarded = forwarded.With(OptRatings)
	}
	marriage, marriageEvent := MarriageProfile(db, family, forwarded, loc)
	divorce, divorceEvent := DivorceProfile(db, family, forwarded, loc)
	if opts.Has(OptSpan) {
		if marriageEvent != nil {
			marriage["span"] = loc.ZeroDays()
			if divorceEvent != nil {
				divorce["span"] = spanText(marriageEvent.Date, divorceEvent.Date, loc)
			}
		}
	}
	if opts.Has(OptAge) {
		forwarded = forwarded.With(OptAge)
	}
	father := PersonProfileForHandle(db, family.FatherHandle, forwarded, loc)
	mother := PersonProfileForHandle(db, family.MotherHandle, forwarded, loc)
	children := make([]any, 0, len(family.ChildRefList))
	for _, ref := range family.ChildRefList {
		children = append(children, PersonProfileForHandle(db, ref.Ref, forwarded, loc))
	}
	profile := map[string]any{
		"handle":       family.Handle,
		"gramps_id":    family.GrampsID,
		"father":       father,
		"mother":       mother,
		"relationship": loc.TranslateType("FamilyRelType", family.Type.XMLString()),
		"marriage":     marriage,
		"divorce":      divorce,
		"children":     children,
	}
	profile["family_surname"] = familySurname(father, mother)
	if opts.Has(OptEvents) {
		// the marriage event seeds per-event spans only when spans were
		// asked for
		if !opts.Has(OptSpan) {
			marriageEvent = nil
		}
		events := make([]any, 0, len(family.EventRefList))
		for _, ref := range family.EventRefList {
			events = append(events, EventProfileForHandle(
				db, ref.Ref, forwarded, marriageEvent, "span", loc, ""))
		}
		profile["events"] = events
	}
	return profile
}

// familySurname derives the family's display surname: the father's when
// the father profile carries any name at all, else the mother's, else "".
func familySurname(father, mother map[string]any) string {
	fatherSurname, _ := father["name_surname"].(string)
	fatherGiven, _ := father["name_given"].(string)
	motherSurname, _ := mother["name_surname"].(string)
	if len(father) > 0 {
		if fatherSurname != "" || fatherGiven != "" {
			return fatherSurname
		}
		if len(mother) > 0 {
			return motherSurname
		}
		return ""
	}
	if len(mother) > 0 {
		return motherSurname
	}
	return ""
}

// FamilyProfileForHandle builds the profile of a family by handle,
// returning an empty profile when the handle does not resolve.
func FamilyProfileForHandle(db repository.ReadStore, handle string, opts Options, loc *locale.Locale) map[string]any {
	family := resolveFamily(db, handle)
	if family == nil {
		return map[string]any{}
	}
	return FamilyProfileForObject(db, family, opts, loc)
}
