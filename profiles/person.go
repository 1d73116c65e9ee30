package profiles

import (
	"github.com/hollis-git/lineagebackend/locale"
	"github.com/hollis-git/lineagebackend/models"
	"github.com/hollis-git/lineagebackend/repository"
)

// Single-character sex codes used in person profiles.
const (
	SexMale    = "M"
	SexFemale  = "F"
	SexUnknown = "U"
)

// SexProfile maps the stored gender code to its profile character.
func SexProfile(person *models.Person) string {
	switch person.Gender {
	case models.GenderMale:
		return SexMale
	case models.GenderFemale:
		return SexFemale
	default:
		return SexUnknown
	}
}

// displayName renders a person's full display name: given name followed by
// the primary surname.
func displayName(person *models.Person) string {
	given := person.PrimaryName.FirstName
	surname := person.PrimaryName.PrimarySurname()
	switch {
	case given == "":
		return surname
	case surname == "":
		return given
	default:
		return given + " " + surname
	}
}

// BirthProfile returns the best available birth profile for a person,
// together with the event it was built from. An empty profile and a nil
// event mean no birth-like event exists.
func BirthProfile(db repository.ReadStore, person *models.Person, opts Options, loc *locale.Locale) (map[string]any, *models.Event) {
	event, err := db.BirthOrFallback(person)
	if err != nil || event == nil {
		return map[string]any{}, nil
	}
	return EventProfileForObject(db, event, opts, nil, "", loc, ""), event
}

// DeathProfile returns the best available death profile for a person,
// together with the event it was built from.
func DeathProfile(db repository.ReadStore, person *models.Person, opts Options, loc *locale.Locale) (map[string]any, *models.Event) {
	event, err := db.DeathOrFallback(person)
	if err != nil || event == nil {
		return map[string]any{}, nil
	}
	return EventProfileForObject(db, event, opts, nil, "", loc, ""), event
}

// PersonProfileForObject builds the profile of a person. The forwarded
// option subset is constructed field by field; sub-profiles never see the
// caller's raw option set.
func PersonProfileForObject(db repository.ReadStore, person *models.Person, opts Options, loc *locale.Locale) map[string]any {
	forwarded := NewOptions()
	if opts.Has(OptRatings) {
		forwarded = forwarded.With(OptRatings)
	}
	birth, birthEvent := BirthProfile(db, person, forwarded, loc)
	death, deathEvent := DeathProfile(db, person, forwarded, loc)
	if opts.Has(OptAge) {
		forwarded = forwarded.With(OptAge)
		if birthEvent != nil {
			// age at birth is by definition zero
			birth["age"] = loc.ZeroDays()
			if deathEvent != nil {
				death["age"] = spanText(birthEvent.Date, deathEvent.Date, loc)
			}
		}
	}
	profile := map[string]any{
		"handle":       person.Handle,
		"gramps_id":    person.GrampsID,
		"sex":          SexProfile(person),
		"birth":        birth,
		"death":        death,
		"name_given":   person.PrimaryName.FirstName,
		"name_surname": person.PrimaryName.PrimarySurname(),
	}
	if opts.Has(OptSpan) {
		forwarded = forwarded.With(OptSpan)
	}
	if opts.Has(OptEvents) {
		forwarded = forwarded.With(OptEvents)
		// the birth event seeds per-event ages only when ages were asked for
		if !opts.Has(OptAge) {
			birthEvent = nil
		}
		events := make([]any, 0, len(person.EventRefList))
		for _, ref := range person.EventRefList {
			role := loc.TranslateType("EventRoleType", ref.Role.XMLString())
			events = append(events, EventProfileForHandle(
				db, ref.Ref, forwarded, birthEvent, "age", loc, role))
		}
		profile["events"] = events
	}
	if opts.Has(OptFamilies) {
		primaryHandle := person.MainParentFamilyHandle()
		profile["primary_parent_family"] = FamilyProfileForHandle(db, primaryHandle, forwarded, loc)
		otherParents := []any{}
		for _, handle := range person.ParentFamilyList {
			if handle != primaryHandle {
				otherParents = append(otherParents, FamilyProfileForHandle(db, handle, forwarded, loc))
			}
		}
		profile["other_parent_families"] = otherParents
		families := make([]any, 0, len(person.FamilyList))
		for _, handle := range person.FamilyList {
			families = append(families, FamilyProfileForHandle(db, handle, forwarded, loc))
		}
		profile["families"] = families
	}
	return profile
}

// PersonProfileForHandle builds the profile of a person by handle,
// returning an empty profile when the handle does not resolve.
func PersonProfileForHandle(db repository.ReadStore, handle string, opts Options, loc *locale.Locale) map[string]any {
	person := resolvePerson(db, handle)
	if person == nil {
		return map[string]any{}
	}
	return PersonProfileForObject(db, person, opts, loc)
}
